package render

import (
	"github.com/2legit2git/dawn/internal/block"
	"github.com/2legit2git/dawn/internal/wrap"
)

func headerScale(level int) int {
	if level == 1 {
		return 2
	}
	return 1
}

// emitHeader centers a 1-2 line header scaled by its level, choosing the
// single break (after a space) that minimizes the width difference
// between the two resulting lines.
func emitHeader(ctx *emitCtx, b block.Block, row int, layout Layout) int {
	contentEnd := b.End
	if contentEnd > b.Start && ctx.s.At(contentEnd-1) == '\n' {
		contentEnd--
	}
	contentStart := b.HeaderContentStart
	if b.HasHeadingID && b.HeadingIDEnd <= contentEnd {
		contentEnd = headingIDTrimEnd(ctx.s, contentStart, contentEnd, b)
	}

	if ctx.cursorInside(b.Start, b.End) {
		ctx.disp.MoveTo(row, layout.LeftMargin)
		ctx.disp.SetDim(true)
		col := layout.LeftMargin
		for i := b.Start; i < contentEnd; i++ {
			ctx.cur.visit(i, b.VRowStart, col)
			ctx.disp.WriteChar(ctx.s.At(i))
			col++
		}
		ctx.disp.ResetAttrs()
		return 1
	}

	ctx.cur.visit(b.Start, b.VRowStart, layout.LeftMargin)

	scale := headerScale(b.HeaderLevel)
	available := layout.TextWidth / scale
	if available < 1 {
		available = 1
	}

	line1End, line2End := bestHeaderBreak(ctx.s, contentStart, contentEnd, available)

	ctx.disp.SetFG(ctx.pal.HeaderColor)
	ctx.disp.SetBold(true)

	emitScaledCentered(ctx, contentStart, line1End, row, scale, layout)
	outRow := row + 1
	if line2End > line1End {
		emitScaledCentered(ctx, line1End, line2End, outRow, scale, layout)
		outRow++
	}
	ctx.disp.ResetAttrs()

	rows := outRow - row
	if b.HeaderLevel >= 2 {
		underlineWidth := (line2Width(ctx, contentStart, line1End, line2End, scale)) / 3
		if underlineWidth < 4 {
			underlineWidth = 4
		}
		lead := (layout.TextWidth - underlineWidth) / 2
		if lead < 0 {
			lead = 0
		}
		ctx.disp.MoveTo(row+rows, layout.LeftMargin+lead)
		ctx.disp.SetDim(true)
		for i := 0; i < underlineWidth; i++ {
			ctx.disp.WriteStr([]byte("─"))
		}
		ctx.disp.ResetAttrs()
		rows++
	}
	return rows
}

// bestHeaderBreak finds the break (after a space, within available on
// both resulting lines) that minimizes |first-width - second-width|. If
// the content fits on one line it returns the same end for both.
func bestHeaderBreak(s interface {
	At(int) byte
}, start, end, available int) (line1End, line2End int) {
	full := wrapWidthOf(s, start, end)
	if full <= available {
		return end, end
	}

	bestDiff := -1
	bestBreak := -1
	for i := start; i < end; i++ {
		if s.At(i) != ' ' {
			continue
		}
		w1 := wrapWidthOf(s, start, i)
		w2 := wrapWidthOf(s, i+1, end)
		if w1 > available || w2 > available {
			continue
		}
		diff := w1 - w2
		if diff < 0 {
			diff = -diff
		}
		if bestDiff == -1 || diff < bestDiff {
			bestDiff = diff
			bestBreak = i
		}
	}
	if bestBreak == -1 {
		// No break keeps both halves within available: wrap normally.
		lines := wrap.WrapLines(sourceAdapter{s: s, length: end}, start, end, available)
		if len(lines) == 0 {
			return end, end
		}
		line1End = lines[0].End
		if len(lines) > 1 {
			line2End = lines[len(lines)-1].End
		} else {
			line2End = line1End
		}
		return line1End, line2End
	}
	return bestBreak, end
}

func wrapWidthOf(s interface{ At(int) byte }, start, end int) int {
	return wrap.DisplayWidth(sourceAdapter{s: s, length: end}, start, end)
}

func line2Width(ctx *emitCtx, start, line1End, line2End, scale int) int {
	w := wrapWidthOf(ctx.s, start, line1End)
	if line2End > line1End {
		w2 := wrapWidthOf(ctx.s, line1End, line2End)
		if w2 > w {
			w = w2
		}
	}
	return w * scale
}

func emitScaledCentered(ctx *emitCtx, start, end, row, scale int, layout Layout) {
	width := wrapWidthOf(ctx.s, start, end)
	scaledWidth := width * scale
	lead := (layout.TextWidth - scaledWidth) / 2
	if lead < 0 {
		lead = 0
	}
	col := layout.LeftMargin + lead
	ctx.disp.MoveTo(row, col)
	for i := start; i < end; i++ {
		ctx.cur.visit(i, row, col)
		b := []byte{ctx.s.At(i)}
		if scale > 1 {
			ctx.disp.WriteScaled(b, scale)
		} else {
			ctx.disp.WriteStr(b)
		}
		col += scale
	}
}

// sourceAdapter exposes an At(int) byte-only source as a wrap.Source,
// reporting length as the caller-supplied upper bound since these byte
// ranges are always a sub-window of a larger real source.
type sourceAdapter struct {
	s      interface{ At(int) byte }
	length int
}

func (a sourceAdapter) Len() int      { return a.length }
func (a sourceAdapter) At(i int) byte { return a.s.At(i) }

func headingIDTrimEnd(s interface{ At(int) byte }, contentStart, contentEnd int, b block.Block) int {
	end := b.HeadingIDStart
	for end > contentStart && s.At(end-1) == ' ' {
		end--
	}
	if end < contentStart {
		end = contentStart
	}
	return end
}
