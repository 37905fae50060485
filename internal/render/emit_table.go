package render

import (
	"github.com/2legit2git/dawn/internal/block"
	"github.com/2legit2git/dawn/internal/recognize"
	"github.com/2legit2git/dawn/internal/wrap"
)

// emitTable draws the bordered grid, padding each cell
// according to its column alignment and wrapping cell content at the
// computed column width.
func emitTable(ctx *emitCtx, b block.Block, row int, layout Layout) int {
	ctx.cur.visit(b.Start, b.VRowStart, layout.LeftMargin)

	if ctx.cursorInside(b.Start, b.End) {
		ctx.disp.MoveTo(row, layout.LeftMargin)
		ctx.disp.SetDim(true)
		r := row
		col := layout.LeftMargin
		for i := b.Start; i < b.End; i++ {
			ch := ctx.s.At(i)
			if ch == '\n' {
				r++
				col = layout.LeftMargin
				ctx.disp.MoveTo(r, col)
				continue
			}
			ctx.disp.WriteChar(ch)
			col++
		}
		ctx.disp.ResetAttrs()
		return r - row + 1
	}

	cols := b.ColCount
	if cols < 1 {
		cols = 1
	}
	colWidth := (layout.TextWidth - (cols*3 + 1)) / cols
	if colWidth < 8 {
		colWidth = 8
	}
	if colWidth > 30 {
		colWidth = 30
	}

	r := row
	writeBorder(ctx, r, layout.LeftMargin, cols, colWidth, "┌", "┬", "┐")
	r++

	if len(b.Rows) == 0 {
		return r - row
	}

	r += writeTableRow(ctx, b.Rows[0], b.Aligns, r, layout.LeftMargin, cols, colWidth)
	writeBorder(ctx, r, layout.LeftMargin, cols, colWidth, "├", "┼", "┤")
	r++

	dataRows := b.Rows[1:]
	for i, dr := range dataRows {
		r += writeTableRow(ctx, dr, b.Aligns, r, layout.LeftMargin, cols, colWidth)
		if i < len(dataRows)-1 {
			writeBorder(ctx, r, layout.LeftMargin, cols, colWidth, "├", "┼", "┤")
			r++
		}
	}
	writeBorder(ctx, r, layout.LeftMargin, cols, colWidth, "└", "┴", "┘")
	r++
	return r - row
}

func writeBorder(ctx *emitCtx, row, col, cols, colWidth int, left, mid, right string) {
	ctx.disp.MoveTo(row, col)
	ctx.disp.SetDim(true)
	ctx.disp.WriteStr([]byte(left))
	for c := 0; c < cols; c++ {
		for i := 0; i < colWidth; i++ {
			ctx.disp.WriteStr([]byte("─"))
		}
		if c < cols-1 {
			ctx.disp.WriteStr([]byte(mid))
		}
	}
	ctx.disp.WriteStr([]byte(right))
	ctx.disp.ResetAttrs()
}

func writeTableRow(ctx *emitCtx, tr block.TableRow, aligns []recognize.Align, row, col, cols, colWidth int) int {
	height := 1
	cellLines := make([][]wrap.Line, cols)
	for c := 0; c < cols && c < len(tr.Cells); c++ {
		cell := tr.Cells[c]
		lines := wrap.WrapLines(sourceAdapter{s: ctx.s, length: cell.End}, cell.Start, cell.End, colWidth)
		if len(lines) == 0 {
			lines = []wrap.Line{{Start: cell.Start, End: cell.End}}
		}
		cellLines[c] = lines
		if len(lines) > height {
			height = len(lines)
		}
	}

	for ln := 0; ln < height; ln++ {
		ctx.disp.MoveTo(row+ln, col)
		ctx.disp.SetDim(true)
		ctx.disp.WriteStr([]byte("│"))
		ctx.disp.ResetAttrs()
		x := col + 1
		for c := 0; c < cols; c++ {
			var lineStart, lineEnd int
			if c < len(cellLines) && ln < len(cellLines[c]) {
				lineStart, lineEnd = cellLines[c][ln].Start, cellLines[c][ln].End
			}
			align := recognize.AlignDefault
			if c < len(aligns) {
				align = aligns[c]
			}
			writeCellContent(ctx, lineStart, lineEnd, x, row+ln, colWidth, align)
			x += colWidth
			ctx.disp.MoveTo(row+ln, x)
			ctx.disp.SetDim(true)
			ctx.disp.WriteStr([]byte("│"))
			ctx.disp.ResetAttrs()
			x++
		}
	}
	return height
}

func writeCellContent(ctx *emitCtx, start, end, col, row, width int, align recognize.Align) {
	w := wrapWidthOf(ctx.s, start, end)
	if w > width {
		w = width
	}
	pad := width - w
	leftPad, rightPad := 0, pad
	switch align {
	case recognize.AlignRight:
		leftPad, rightPad = pad, 0
	case recognize.AlignCenter:
		leftPad = pad / 2
		rightPad = pad - leftPad
	}

	c := col
	for i := 0; i < leftPad; i++ {
		ctx.disp.MoveTo(row, c)
		ctx.disp.WriteChar(' ')
		c++
	}
	ctx.disp.MoveTo(row, c)
	for i := start; i < end; i++ {
		ctx.cur.visit(i, row, c)
		ctx.disp.WriteChar(ctx.s.At(i))
		c++
	}
	for i := 0; i < rightPad; i++ {
		ctx.disp.MoveTo(row, c)
		ctx.disp.WriteChar(' ')
		c++
	}
}
