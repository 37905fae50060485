package render

import (
	"github.com/2legit2git/dawn/internal/block"
)

// emitHR draws a full-width dim horizontal rule, or its raw source when
// the cursor sits inside it.
func emitHR(ctx *emitCtx, b block.Block, row int, layout Layout) int {
	ctx.disp.MoveTo(row, layout.LeftMargin)
	ctx.disp.SetDim(true)
	ctx.cur.visit(b.Start, b.VRowStart, layout.LeftMargin)

	if ctx.cursorInside(b.Start, b.End) {
		for i := b.Start; i < b.End && ctx.s.At(i) != '\n'; i++ {
			ctx.disp.WriteChar(ctx.s.At(i))
		}
	} else {
		for i := 0; i < layout.TextWidth; i++ {
			ctx.disp.WriteStr([]byte("─"))
		}
	}
	ctx.disp.ResetAttrs()
	return 1
}

// emitImage asks the image sink to place the decoded image, clamped to
// the text width and cropped to the visible rows.
func emitImage(ctx *emitCtx, b block.Block, row int, layout Layout) int {
	ctx.cur.visit(b.Start, b.VRowStart, layout.LeftMargin)
	if ctx.cursorInside(b.Start, b.End) {
		ctx.disp.MoveTo(row, layout.LeftMargin)
		ctx.disp.SetDim(true)
		for i := b.Start; i < b.End && ctx.s.At(i) != '\n'; i++ {
			ctx.disp.WriteChar(ctx.s.At(i))
		}
		ctx.disp.ResetAttrs()
		return 1
	}

	if ctx.img == nil {
		ctx.disp.MoveTo(row, layout.LeftMargin)
		ctx.disp.WriteStr([]byte("[image]"))
		return 1
	}
	path := sliceBytes(ctx.s, b.PathStart, b.PathEnd)
	resolved := ctx.img.ResolvePath(string(path), "")
	size, err := ctx.img.GetSize(resolved)
	if err != nil {
		ctx.disp.MoveTo(row, layout.LeftMargin)
		ctx.disp.WriteStr([]byte("[unresolved image]"))
		return 1
	}
	maxRows := layout.TopMargin + layout.TextHeight - row
	rows := ctx.img.CalcRows(size.W, size.H, layout.TextWidth, 0)
	if rows < 1 {
		rows = 1
	}
	if rows <= maxRows {
		_ = ctx.img.DisplayAt(resolved, row, layout.LeftMargin, layout.TextWidth, rows)
		return rows
	}
	_ = ctx.img.DisplayCropped(resolved, row, layout.LeftMargin, layout.TextWidth, 0, maxRows)
	return maxRows
}

// emitCode passes the content through the highlighter sink and emits the
// language label right-aligned on the first row.
func emitCode(ctx *emitCtx, b block.Block, row int, layout Layout) int {
	ctx.cur.visit(b.Start, b.VRowStart, layout.LeftMargin)
	ctx.disp.SetBG(ctx.pal.CodeBG)

	if ctx.cursorInside(b.Start, b.End) {
		ctx.disp.SetDim(true)
		r := row
		col := layout.LeftMargin
		ctx.disp.MoveTo(r, col)
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

	content := sliceBytes(ctx.s, b.CodeContentStart, b.CodeContentEnd)
	lang := string(sliceBytes(ctx.s, b.LangStart, b.LangEnd))
	out := content
	if ctx.hl != nil {
		if highlighted, err := ctx.hl.Highlight(content, lang); err == nil {
			out = highlighted
		}
	}

	r := row
	col := layout.LeftMargin
	ctx.disp.MoveTo(r, col)
	for _, ch := range out {
		if ch == '\n' {
			r++
			col = layout.LeftMargin
			ctx.disp.MoveTo(r, col)
			continue
		}
		if ch == '\t' {
			next := ((col - layout.LeftMargin) + 4) / 4 * 4
			for col-layout.LeftMargin < next {
				ctx.disp.WriteChar(' ')
				col++
			}
			continue
		}
		ctx.disp.WriteChar(ch)
		col++
	}
	if lang != "" {
		labelCol := layout.LeftMargin + layout.TextWidth - len(lang)
		if labelCol > layout.LeftMargin {
			ctx.disp.MoveTo(row, labelCol)
			ctx.disp.SetDim(true)
			ctx.disp.WriteStr([]byte(lang))
			ctx.disp.ResetAttrs()
		}
	}
	ctx.disp.ResetAttrs()
	return r - row + 1
}

// emitMath renders a TeX sketch at the current column in accent color.
func emitMath(ctx *emitCtx, b block.Block, row int, layout Layout) int {
	ctx.cur.visit(b.Start, b.VRowStart, layout.LeftMargin)

	if ctx.cursorInside(b.Start, b.End) {
		ctx.disp.MoveTo(row, layout.LeftMargin)
		ctx.disp.SetDim(true)
		for i := b.Start; i < b.End && ctx.s.At(i) != '\n'; i++ {
			ctx.disp.WriteChar(ctx.s.At(i))
		}
		ctx.disp.ResetAttrs()
		return 1
	}

	if ctx.math == nil {
		ctx.disp.MoveTo(row, layout.LeftMargin)
		ctx.disp.WriteStr([]byte("[math]"))
		return 1
	}
	latex := string(sliceBytes(ctx.s, b.MathContentStart, b.MathContentEnd))
	sk, err := ctx.math.RenderBlock(latex)
	if err != nil || sk == nil {
		ctx.disp.MoveTo(row, layout.LeftMargin)
		ctx.disp.WriteStr([]byte("[math error]"))
		return 1
	}
	defer ctx.math.Free(sk)

	ctx.disp.SetFG(ctx.pal.Accent)
	for y := 0; y < sk.Height; y++ {
		ctx.disp.MoveTo(row+y, layout.LeftMargin)
		for x := 0; x < sk.Width && x < len(sk.Rows[y]); x++ {
			ctx.disp.WriteStr(sk.Rows[y][x].Data)
		}
	}
	ctx.disp.ResetAttrs()
	if sk.Height < 1 {
		return 1
	}
	return sk.Height
}

func sliceBytes(s interface{ At(int) byte }, start, end int) []byte {
	out := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, s.At(i))
	}
	return out
}
