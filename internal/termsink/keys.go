package termsink

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/2legit2git/dawn/internal/engine"
)

// DecodeKey turns a Bubble Tea key event into an engine.Input, a fixed
// set of ctrl-combo bindings expressed directly over tea.KeyType rather
// than bubbles/key matchers, since the core wants a decoded enum, not a
// matcher.
func DecodeKey(msg tea.KeyMsg) engine.Input {
	switch msg.Type {
	case tea.KeyCtrlQ:
		return engine.Input{Code: engine.KeyQuit}
	case tea.KeyCtrlS:
		return engine.Input{Code: engine.KeySave}
	case tea.KeyCtrlZ:
		return engine.Input{Code: engine.KeyUndo}
	case tea.KeyCtrlY:
		return engine.Input{Code: engine.KeyRedo}
	case tea.KeyCtrlC:
		return engine.Input{Code: engine.KeyCopy}
	case tea.KeyCtrlV:
		return engine.Input{Code: engine.KeyPaste}
	case tea.KeyCtrlT:
		return engine.Input{Code: engine.KeyToggleTOC}
	case tea.KeyCtrlF:
		return engine.Input{Code: engine.KeyToggleSearch}
	case tea.KeyCtrlG:
		return engine.Input{Code: engine.KeyToggleHelp}
	case tea.KeyCtrlR:
		return engine.Input{Code: engine.KeyToggleHistory}
	case tea.KeyEnter:
		return engine.Input{Code: engine.KeyEnter}
	case tea.KeyBackspace:
		return engine.Input{Code: engine.KeyBackspace}
	case tea.KeyDelete:
		return engine.Input{Code: engine.KeyDelete}
	case tea.KeyTab:
		return engine.Input{Code: engine.KeyTab}
	case tea.KeyEsc:
		return engine.Input{Code: engine.KeyEsc}
	case tea.KeyUp:
		return engine.Input{Code: engine.KeyUp}
	case tea.KeyDown:
		return engine.Input{Code: engine.KeyDown}
	case tea.KeyLeft:
		return engine.Input{Code: engine.KeyLeft}
	case tea.KeyRight:
		return engine.Input{Code: engine.KeyRight}
	case tea.KeyShiftUp:
		return engine.Input{Code: engine.KeyUp, Shift: true}
	case tea.KeyShiftDown:
		return engine.Input{Code: engine.KeyDown, Shift: true}
	case tea.KeyShiftLeft:
		return engine.Input{Code: engine.KeyLeft, Shift: true}
	case tea.KeyShiftRight:
		return engine.Input{Code: engine.KeyRight, Shift: true}
	case tea.KeyHome:
		return engine.Input{Code: engine.KeyHome}
	case tea.KeyEnd:
		return engine.Input{Code: engine.KeyEnd}
	case tea.KeyPgUp:
		return engine.Input{Code: engine.KeyPageUp}
	case tea.KeyPgDown:
		return engine.Input{Code: engine.KeyPageDown}
	case tea.KeySpace:
		return engine.Input{Code: engine.KeyRune, Rune: ' '}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return engine.Input{Code: engine.KeyRune, Rune: msg.Runes[0], Alt: msg.Alt}
		}
	}
	return engine.Input{Code: engine.KeyNone}
}

// DecodeMouse turns a Bubble Tea mouse event into an engine.Input:
// wheel scroll and a left-button press.
func DecodeMouse(msg tea.MouseMsg) engine.Input {
	m := tea.Mouse(msg)
	switch m.Button {
	case tea.MouseButtonWheelUp:
		return engine.Input{Code: engine.KeyMouseScrollUp}
	case tea.MouseButtonWheelDown:
		return engine.Input{Code: engine.KeyMouseScrollDown}
	case tea.MouseButtonLeft:
		if m.Action == tea.MouseActionPress {
			return engine.Input{Code: engine.KeyMouseClick, Row: m.Y, Col: m.X}
		}
	}
	return engine.Input{Code: engine.KeyNone}
}
