// Package engine implements the top-level editor core exposed to a host
// frontend: document lifecycle, the mode stack, one
// input-wait→mutate→render step per Frame call, and idle-triggered
// autosave. It owns the gap buffer, undo ring, and block cache, and
// drives internal/render against the sinks a host assembles for it.
package engine

import (
	"time"

	"github.com/2legit2git/dawn/internal/block"
	"github.com/2legit2git/dawn/internal/gapbuffer"
	"github.com/2legit2git/dawn/internal/overlay"
	"github.com/2legit2git/dawn/internal/persist"
	"github.com/2legit2git/dawn/internal/preview"
	"github.com/2legit2git/dawn/internal/render"
	"github.com/2legit2git/dawn/internal/smartedit"
	"github.com/2legit2git/dawn/internal/undo"
)

// Clipboard is the copy/paste collaborator consumed by the core.
type Clipboard interface {
	Copy(b []byte)
	Paste() []byte
}

// Options configures a new Engine.
type Options struct {
	Sinks           render.Sinks
	Clipboard       Clipboard
	Palette         render.Palette
	Cols, Rows      int
	SidePanelCols   int
	WrapWidth       int // 0 means fill layout.TextWidth
	AutosaveSeconds int
}

// Engine is the editor core.
type Engine struct {
	sinks     render.Sinks
	clipboard Clipboard
	palette   render.Palette
	geo       block.Geometry

	cols, rows    int
	sidePanelCols int
	wrapWidth     int

	buf       *gapbuffer.Buffer
	cache     block.Cache
	undoRing  *undo.Ring
	cursor    int
	selection render.Selection
	scrollY   int

	mode      Mode
	modeStack []Mode

	path        string
	frontmatter []byte
	dirty       bool
	quit        bool

	autosaveSeconds int
	lastEditAt      time.Time
	lastSavedAt     time.Time

	toc    *overlay.TOCState
	search *overlay.SearchState

	lastCursorVRow, lastCursorCol int
}

// New allocates an engine in welcome mode with an empty document.
func New(opts Options) *Engine {
	e := &Engine{
		sinks:           opts.Sinks,
		clipboard:       opts.Clipboard,
		palette:         opts.Palette,
		geo:             block.Geometry{Image: opts.Sinks.Image, Math: opts.Sinks.Math, TextSizing: opts.Sinks.Display != nil && opts.Sinks.Display.TextSizing()},
		cols:            opts.Cols,
		rows:            opts.Rows,
		sidePanelCols:   opts.SidePanelCols,
		wrapWidth:       opts.WrapWidth,
		buf:             gapbuffer.New(256),
		autosaveSeconds: opts.AutosaveSeconds,
		mode:            ModeWelcome,
	}
	e.undoRing = undo.New(e.buf.Bytes(), 0)
	return e
}

// Shutdown flushes a pending autosave and releases owned resources. The
// gap buffer and caches need no explicit release in Go; the only owned
// external effect is a save.
func (e *Engine) Shutdown() error {
	if e.dirty && e.path != "" {
		return e.SaveDocument()
	}
	return nil
}

// RequestQuit marks the engine for shutdown on the next ShouldQuit
// check.
func (e *Engine) RequestQuit() { e.quit = true }

// ShouldQuit reports whether quit has been requested.
func (e *Engine) ShouldQuit() bool { return e.quit }

// UpdateSize re-queries the terminal geometry and invalidates the block
// cache.
func (e *Engine) UpdateSize(cols, rows int) {
	e.cols, e.rows = cols, rows
	e.cache.Invalidate()
}

// NewDocument resets the engine to an empty, untitled buffer.
func (e *Engine) NewDocument() {
	e.buf = gapbuffer.New(256)
	e.undoRing = undo.New(nil, 0)
	e.cursor = 0
	e.selection = render.Selection{}
	e.scrollY = 0
	e.path = ""
	e.dirty = false
	e.cache.Invalidate()
	e.mode = ModeWriting
}

// LoadDocument loads path through the persistence collaborator
// (frontmatter strip, CRLF normalize) and opens it in writing mode.
func (e *Engine) LoadDocument(path string) error {
	doc, err := persist.Load(path)
	if err != nil {
		return err
	}
	e.buf = gapbuffer.NewFromBytes(doc.Body)
	e.frontmatter = doc.Frontmatter
	e.undoRing = undo.New(e.buf.Bytes(), 0)
	e.cursor = 0
	e.selection = render.Selection{}
	e.scrollY = 0
	e.path = path
	e.dirty = false
	e.cache.Invalidate()
	e.mode = ModeWriting
	return nil
}

// SaveDocument writes the current buffer back to e.path, reattaching
// any stripped frontmatter.
func (e *Engine) SaveDocument() error {
	if e.path == "" {
		return nil
	}
	doc := &persist.Document{Path: e.path, Frontmatter: e.frontmatter, Body: e.buf.Bytes()}
	if err := persist.Save(doc); err != nil {
		return err
	}
	e.dirty = false
	e.lastSavedAt = time.Now()
	return nil
}

// PreviewDocument renders path as read-only, syntax-highlighted output,
// independent of the live editing buffer.
func (e *Engine) PreviewDocument(path string) (string, error) {
	doc, err := persist.Load(path)
	if err != nil {
		return "", err
	}
	width := e.layout().TextWidth
	return preview.RenderWithError(string(doc.Body), width)
}

// Dirty reports whether the buffer has unsaved edits.
func (e *Engine) Dirty() bool { return e.dirty }

// Path returns the current document's path, or "" if untitled.
func (e *Engine) Path() string { return e.path }

// SetPath assigns the path a save will write to, without loading or
// changing the current buffer — for opening a name that doesn't exist
// on disk yet; a missing path starts an untitled buffer bound to that
// name.
func (e *Engine) SetPath(path string) { e.path = path }

// TOCState exposes the active table-of-contents dialog state (nil
// outside ModeTOC) so a host can draw it.
func (e *Engine) TOCState() *overlay.TOCState { return e.toc }

// SearchState exposes the active search dialog state (nil outside
// ModeSearch) so a host can draw it.
func (e *Engine) SearchState() *overlay.SearchState { return e.search }

// CursorScreenPosition returns the terminal row/col the cursor was last
// rendered at, for a host to park the hardware cursor.
func (e *Engine) CursorScreenPosition() (row, col int) {
	return e.lastCursorVRow, e.lastCursorCol
}

func (e *Engine) layout() render.Layout {
	return render.ComputeLayout(e.cols, e.rows, e.sidePanelCols)
}

func (e *Engine) markEdited(now time.Time) {
	e.dirty = true
	e.lastEditAt = now
	e.cache.Invalidate()
}

// snapshotBeforeEdit records the pre-edit state on the undo ring.
func (e *Engine) snapshotBeforeEdit() {
	e.undoRing.SaveSnapshot(e.buf.Bytes(), e.cursor)
}

func (e *Engine) applyUndo() {
	if snap, ok := e.undoRing.Undo(); ok {
		e.buf.Reset(snap.Bytes)
		e.cursor = clamp(snap.Cursor, 0, e.buf.Len())
		e.cache.Invalidate()
	}
}

func (e *Engine) applyRedo() {
	if snap, ok := e.undoRing.Redo(); ok {
		e.buf.Reset(snap.Bytes)
		e.cursor = clamp(snap.Cursor, 0, e.buf.Len())
		e.cache.Invalidate()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// smartDeleteBackward tries the smart-edit collaborators (autotypography
// artifact, closing-construct deletion, plain backspace) in priority
// order.
func (e *Engine) smartDeleteBackward() {
	if newCursor, ok := smartedit.SmartBackspace(e.buf, e.cursor); ok {
		e.cursor = newCursor
		return
	}
	if e.cursor > 0 {
		prev := e.buf.Utf8Prev(e.cursor)
		e.buf.Delete(prev, e.cursor-prev)
		e.cursor = prev
	}
}
