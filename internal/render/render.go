package render

import (
	"github.com/2legit2git/dawn/internal/block"
	"github.com/2legit2git/dawn/internal/recognize"
	"github.com/2legit2git/dawn/internal/sink"
)

// Sinks bundles the collaborators the renderer draws against
//. Image/Math/Highlight may be nil: a nil Image draws an "[image]"
// placeholder row, and a nil Highlight draws code blocks as plain text.
type Sinks struct {
	Display   sink.Display
	Image     sink.Image
	Math      sink.Math
	Highlight sink.Highlight
}

// Frame is everything one Render call needs: the parsed block model, the
// source it was parsed from, cursor/selection state, and the computed
// layout for this terminal size.
type Frame struct {
	Blocks     []block.Block
	Source     recognize.Source
	Cursor     int
	Selection  Selection
	ScrollY    int
	Layout     Layout
	RawReveal  bool
	Palette    Palette
}

// cursorTracker records the last (virtual row, column) visited at or
// before Cursor.
type cursorTracker struct {
	cursor   int
	row, col int
	found    bool
}

func (c *cursorTracker) visit(pos, row, col int) {
	if pos > c.cursor {
		return
	}
	c.row, c.col = row, col
	c.found = true
}

// emitCtx threads the shared state through one Render pass: the sink
// bundle, style/selection policy, and the running cursor tracker.
type emitCtx struct {
	s     recognize.Source
	disp  sink.Display
	img   sink.Image
	math  sink.Math
	hl    sink.Highlight
	pal   Palette
	sel   Selection
	raw   bool
	cur   *cursorTracker
}

// Render walks the visible blocks of f and draws them against s,
// returning the cursor's final (virtual row, column).
func Render(s Sinks, f Frame) (cursorVRow, cursorCol int) {
	ctx := &emitCtx{
		s: f.Source, disp: s.Display, img: s.Image, math: s.Math, hl: s.Highlight,
		pal: f.Palette, sel: f.Selection, raw: f.RawReveal,
		cur: &cursorTracker{cursor: f.Cursor},
	}

	top := f.ScrollY
	bottom := f.ScrollY + f.Layout.TextHeight

	runningVRow := 0
	for i, b := range f.Blocks {
		runningVRow = b.VRowStart
		if runningVRow >= bottom {
			break
		}
		if runningVRow+b.VRowCount <= top {
			continue
		}
		screenRow := f.Layout.TopMargin + (runningVRow - f.ScrollY)
		actualRows := dispatchBlock(ctx, f.Blocks, i, screenRow, f.Layout)
		_ = actualRows
	}

	if !ctx.cur.found {
		// Cursor beyond every rendered byte: one cell past the last block.
		lastRow := f.Layout.TopMargin + (f.Layout.TextHeight - 1)
		if len(f.Blocks) > 0 {
			last := f.Blocks[len(f.Blocks)-1]
			lastRow = f.Layout.TopMargin + (last.VRowStart + last.VRowCount - 1 - f.ScrollY)
		}
		ctx.cur.row, ctx.cur.col = lastRow, f.Layout.LeftMargin
	}

	s.Display.MoveTo(ctx.cur.row, ctx.cur.col)
	s.Display.Flush()
	return ctx.cur.row, ctx.cur.col
}

// dispatchBlock routes blocks[i] to its specialized emitter and returns
// the number of screen rows it actually occupied.
func dispatchBlock(ctx *emitCtx, blocks []block.Block, i, screenRow int, layout Layout) int {
	b := blocks[i]
	switch b.Kind {
	case block.KindHR:
		return emitHR(ctx, b, screenRow, layout)
	case block.KindImage:
		return emitImage(ctx, b, screenRow, layout)
	case block.KindHeader:
		return emitHeader(ctx, b, screenRow, layout)
	case block.KindCode:
		return emitCode(ctx, b, screenRow, layout)
	case block.KindMath:
		return emitMath(ctx, b, screenRow, layout)
	case block.KindTable:
		return emitTable(ctx, b, screenRow, layout)
	default:
		return emitTextBlock(ctx, blocks, i, screenRow, layout)
	}
}

// cursorInside reports whether cursor lies within [start,end) and
// raw-reveal is toggled on.
func (c *emitCtx) cursorInside(start, end int) bool {
	return c.raw && c.cur.cursor >= start && c.cur.cursor < end
}

func (c *emitCtx) selBG(start, end int) (sink.RGB, bool) {
	if c.sel.intersects(start, end) {
		return c.pal.SelectionBG, true
	}
	return sink.RGB{}, false
}
