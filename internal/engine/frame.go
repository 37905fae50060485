package engine

import (
	"time"
	"unicode/utf8"

	"github.com/2legit2git/dawn/internal/block"
	"github.com/2legit2git/dawn/internal/overlay"
	"github.com/2legit2git/dawn/internal/render"
	"github.com/2legit2git/dawn/internal/smartedit"
)

// Frame performs one input-wait→mutate→render step: apply in (the zero
// Input is a pure render/idle tick), check autosave, render, and report
// whether the caller should keep looping.
func (e *Engine) Frame(in Input, now time.Time) bool {
	e.handleInput(in, now)
	e.maybeAutosave(now)
	e.render()
	return !e.quit
}

func (e *Engine) maybeAutosave(now time.Time) {
	if e.mode != ModeWriting || !e.dirty || e.path == "" || e.autosaveSeconds <= 0 {
		return
	}
	if now.Sub(e.lastEditAt) >= time.Duration(e.autosaveSeconds)*time.Second {
		_ = e.SaveDocument()
	}
}

func (e *Engine) handleInput(in Input, now time.Time) {
	if in.Code == KeyNone {
		return
	}
	if in.Code == KeyQuit {
		e.RequestQuit()
		return
	}

	switch e.mode {
	case ModeTOC:
		e.handleTOCInput(in)
	case ModeSearch:
		e.handleSearchInput(in)
	case ModeHistory, ModeHelp, ModeWelcome, ModeTimer, ModeFinished:
		e.handleOverlayDismiss(in)
	default:
		e.handleWritingInput(in, now)
	}
}

func (e *Engine) handleOverlayDismiss(in Input) {
	switch in.Code {
	case KeyEsc, KeyEnter:
		if e.mode == ModeWelcome {
			e.mode = ModeWriting
			return
		}
		e.popMode()
	}
}

func (e *Engine) handleTOCInput(in Input) {
	switch in.Code {
	case KeyEsc:
		e.popMode()
	case KeyUp:
		e.toc.MoveSelection(-1)
	case KeyDown:
		e.toc.MoveSelection(1)
	case KeyEnter:
		if pos, ok := e.toc.Accept(); ok {
			e.cursor = pos
			e.popMode()
		}
	case KeyBackspace:
		if q := e.toc.Query; len(q) > 0 {
			e.toc.SetQuery(q[:len(q)-1])
		}
	case KeyRune:
		e.toc.SetQuery(e.toc.Query + string(in.Rune))
	}
}

func (e *Engine) handleSearchInput(in Input) {
	switch in.Code {
	case KeyEsc:
		e.popMode()
	case KeyUp:
		e.search.MoveSelection(-1)
	case KeyDown:
		e.search.MoveSelection(1)
	case KeyEnter:
		if pos, ok := e.search.Accept(); ok {
			e.cursor = pos
			e.popMode()
		}
	case KeyBackspace:
		if q := e.search.Query; len(q) > 0 {
			e.search = overlay.NewSearchState(e.buf, q[:len(q)-1])
		}
	case KeyRune:
		e.search = overlay.NewSearchState(e.buf, e.search.Query+string(in.Rune))
	}
}

func (e *Engine) handleWritingInput(in Input, now time.Time) {
	switch in.Code {
	case KeyToggleTOC:
		e.toc = overlay.NewTOCState(overlay.BuildTOC(e.buf, e.blocks()))
		e.pushMode(ModeTOC)
		return
	case KeyToggleSearch:
		e.search = overlay.NewSearchState(e.buf, "")
		e.pushMode(ModeSearch)
		return
	case KeyToggleHelp:
		e.pushMode(ModeHelp)
		return
	case KeyToggleHistory:
		e.pushMode(ModeHistory)
		return
	case KeySave:
		_ = e.SaveDocument()
		return
	case KeyUndo:
		e.applyUndo()
		return
	case KeyRedo:
		e.applyRedo()
		return
	case KeyCopy:
		if e.selection.Active && e.clipboard != nil {
			start, end := e.selection.Start, e.selection.End
			if start > end {
				start, end = end, start
			}
			e.clipboard.Copy(e.buf.Substr(start, end))
		}
		return
	case KeyPaste:
		if e.clipboard == nil {
			return
		}
		text := e.clipboard.Paste()
		if len(text) > 0 {
			e.snapshotBeforeEdit()
			e.deleteSelectionIfAny()
			e.buf.InsertStr(e.cursor, text)
			e.cursor += len(text)
			e.markEdited(now)
		}
		return
	}

	switch in.Code {
	case KeyUp:
		e.moveCursorVertical(-1, in.Shift)
	case KeyDown:
		e.moveCursorVertical(1, in.Shift)
	case KeyLeft:
		e.moveCursorHorizontal(-1, in.Shift)
	case KeyRight:
		e.moveCursorHorizontal(1, in.Shift)
	case KeyHome:
		e.moveCursorTo(lineStartOf(e.buf, e.cursor), in.Shift)
	case KeyEnd:
		e.moveCursorTo(lineEndOf(e.buf, e.cursor), in.Shift)
	case KeyPageUp:
		e.scrollY = clamp(e.scrollY-e.layout().TextHeight, 0, e.scrollY)
	case KeyPageDown:
		e.scrollY += e.layout().TextHeight
	case KeyMouseScrollUp:
		if e.scrollY > 0 {
			e.scrollY--
		}
	case KeyMouseScrollDown:
		e.scrollY++
	case KeyEnter:
		e.snapshotBeforeEdit()
		e.deleteSelectionIfAny()
		if newCursor, ok := smartedit.AutoContinueEnter(e.buf, e.cursor); ok {
			e.cursor = newCursor
		} else {
			e.buf.Insert(e.cursor, '\n')
			e.cursor++
		}
		e.markEdited(now)
	case KeyBackspace:
		e.snapshotBeforeEdit()
		if e.deleteSelectionIfAny() {
			e.markEdited(now)
			return
		}
		e.smartDeleteBackward()
		e.markEdited(now)
	case KeyDelete:
		e.snapshotBeforeEdit()
		if e.deleteSelectionIfAny() {
			e.markEdited(now)
			return
		}
		if newCursor, deleted := smartedit.DeleteElement(e.buf, e.cursor); deleted {
			e.cursor = newCursor
		} else if e.cursor < e.buf.Len() {
			next := e.buf.Utf8Next(e.cursor)
			e.buf.Delete(e.cursor, next-e.cursor)
		}
		e.markEdited(now)
	case KeyTab:
		e.snapshotBeforeEdit()
		e.deleteSelectionIfAny()
		e.buf.InsertStr(e.cursor, []byte("    "))
		e.cursor += 4
		e.markEdited(now)
	case KeyRune:
		e.snapshotBeforeEdit()
		e.deleteSelectionIfAny()
		runeBuf := make([]byte, 4)
		n := encodeRune(runeBuf, in.Rune)
		e.buf.InsertStr(e.cursor, runeBuf[:n])
		e.cursor += n
		if newCursor, ok := smartedit.AutoNewlineAfter(e.buf, e.cursor); ok {
			e.cursor = newCursor
		}
		e.markEdited(now)
	}
}

func (e *Engine) deleteSelectionIfAny() bool {
	if !e.selection.Active || e.selection.Start == e.selection.End {
		e.selection = render.Selection{}
		return false
	}
	start, end := e.selection.Start, e.selection.End
	if start > end {
		start, end = end, start
	}
	e.buf.Delete(start, end-start)
	e.cursor = start
	e.selection = render.Selection{}
	return true
}

func (e *Engine) moveCursorTo(pos int, shift bool) {
	pos = clamp(pos, 0, e.buf.Len())
	e.updateSelection(shift, pos)
	e.cursor = pos
}

func (e *Engine) updateSelection(shift bool, newCursor int) {
	if !shift {
		e.selection = render.Selection{}
		return
	}
	if !e.selection.Active {
		e.selection = render.Selection{Active: true, Start: e.cursor, End: newCursor}
		return
	}
	e.selection.End = newCursor
}

func (e *Engine) moveCursorHorizontal(delta int, shift bool) {
	var pos int
	if delta < 0 {
		pos = e.buf.Utf8Prev(e.cursor)
	} else {
		pos = e.buf.Utf8Next(e.cursor)
	}
	e.moveCursorTo(pos, shift)
}

func (e *Engine) moveCursorVertical(delta int, shift bool) {
	blocks := e.blocks()
	b, ok := block.BlockAtPos(blocks, e.cursor)
	if !ok {
		return
	}
	vrow := block.CursorVRowInBlock(e.buf, b, e.cursor, e.effectiveWrapWidth(), e.geo)
	targetVRow := vrow + delta
	if tb, ok := block.BlockAtVRow(blocks, targetVRow); ok {
		// Land on the start of the block holding the target virtual row;
		// the originating column is not kept.
		e.moveCursorTo(tb.Start, shift)
	}
}

func (e *Engine) blocks() []block.Block {
	return e.cache.EnsureParsed(e.buf, e.effectiveWrapWidth(), e.layout().TextHeight, e.geo)
}

func (e *Engine) effectiveWrapWidth() int {
	if e.wrapWidth > 0 {
		return e.wrapWidth
	}
	return e.layout().TextWidth
}

func (e *Engine) render() {
	if e.mode != ModeWriting {
		return
	}
	blocks := e.blocks()
	layout := e.layout()
	totalVRows := e.cache.TotalVRows()
	cursorVRow, _ := cursorVRowOf(e.buf, blocks, e.cursor, e.effectiveWrapWidth(), e.geo)
	e.scrollY = render.ClampScroll(e.scrollY, cursorVRow, totalVRows, layout.TextHeight)

	frame := render.Frame{
		Blocks: blocks, Source: e.buf, Cursor: e.cursor,
		Selection: e.selection, ScrollY: e.scrollY, Layout: layout,
		RawReveal: true, Palette: e.palette,
	}
	row, col := render.Render(e.sinks, frame)
	e.lastCursorVRow, e.lastCursorCol = row, col
}

func cursorVRowOf(buf interface {
	Len() int
	At(int) byte
}, blocks []block.Block, cursor, wrapWidth int, geo block.Geometry) (int, int) {
	b, ok := block.BlockAtPos(blocks, cursor)
	if !ok {
		return 0, 0
	}
	vrow := block.CursorVRowInBlock(buf, b, cursor, wrapWidth, geo)
	return vrow, 0
}

func lineEndOf(buf interface {
	Len() int
	At(int) byte
}, pos int) int {
	n := buf.Len()
	for pos < n && buf.At(pos) != '\n' {
		pos++
	}
	return pos
}

func lineStartOf(buf interface {
	Len() int
	At(int) byte
}, pos int) int {
	for pos > 0 && buf.At(pos-1) != '\n' {
		pos--
	}
	return pos
}

func encodeRune(dst []byte, r rune) int {
	return utf8.EncodeRune(dst, r)
}
