package engine

// KeyCode enumerates the input alphabet the core consumes: arrows (with
// shift/ctrl/alt modifiers), navigation (home/end/pgup/pgdn/del), mouse
// scroll, mouse click, and the editing/control keys.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySave
	KeyUndo
	KeyRedo
	KeyCopy
	KeyPaste
	KeyQuit
	KeyToggleTOC
	KeyToggleSearch
	KeyToggleHelp
	KeyToggleHistory
	KeyMouseScrollUp
	KeyMouseScrollDown
	KeyMouseClick
)

// Input is one decoded key/mouse event handed to Frame.
type Input struct {
	Code  KeyCode
	Rune  rune
	Shift bool
	Ctrl  bool
	Alt   bool
	Row   int // mouse row, for KeyMouseClick
	Col   int // mouse col, for KeyMouseClick
}
