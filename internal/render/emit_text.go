package render

import (
	"strconv"

	"github.com/2legit2git/dawn/internal/block"
	"github.com/2legit2git/dawn/internal/mdstyle"
	"github.com/2legit2git/dawn/internal/recognize"
	"github.com/2legit2git/dawn/internal/sink"
	"github.com/2legit2git/dawn/internal/wrap"
)

// emitTextBlock renders Paragraph/Blockquote/ListItem/FootnoteDef blocks:
// a prefix (task box, bullet, quote bars, footnote id) followed by wrapped
// inline content drawn from the block's precomputed runs.
func emitTextBlock(ctx *emitCtx, blocks []block.Block, idx int, row int, layout Layout) int {
	b := blocks[idx]
	start := b.ContentStart
	if start == 0 && b.Kind == block.KindParagraph {
		start = b.Start
	}
	end := b.End
	if end > start && ctx.s.At(end-1) == '\n' {
		end--
	}

	ctx.cur.visit(b.Start, b.VRowStart, layout.LeftMargin)

	prefix, prefixRaw := blockPrefix(ctx, blocks, idx)
	availWidth := layout.TextWidth - len(prefix)
	if availWidth < 1 {
		availWidth = 1
	}

	lines := wrap.WrapLines(sourceAdapter{s: ctx.s, length: end}, start, end, availWidth)
	if len(lines) == 0 {
		lines = []wrap.Line{{Start: start, End: start}}
	}

	runIdx := 0
	r := row
	for li, ln := range lines {
		col := layout.LeftMargin
		ctx.disp.MoveTo(r, col)
		if li == 0 {
			if ctx.raw && ctx.cur.cursor >= b.Start && ctx.cur.cursor < start {
				ctx.disp.SetDim(true)
				ctx.disp.WriteStr(prefixRaw)
				ctx.disp.ResetAttrs()
			} else {
				ctx.disp.WriteStr(prefix)
			}
			col += len(prefix)
		} else {
			for i := 0; i < len(prefix); i++ {
				ctx.disp.WriteChar(' ')
			}
			col += len(prefix)
		}

		pos := ln.Start
		for pos < ln.End {
			for runIdx < len(b.Runs)-1 && pos >= b.Runs[runIdx].End {
				runIdx++
			}
			var run block.Run
			if runIdx < len(b.Runs) {
				run = b.Runs[runIdx]
			} else {
				run = block.Run{Start: pos, End: ln.End, Kind: block.RunText}
			}
			segEnd := run.End
			if segEnd > ln.End {
				segEnd = ln.End
			}
			pos = emitRun(ctx, run, pos, segEnd, r, &col)
		}
		r++
	}
	return r - row
}

// blockPrefix returns the pretty-rendered prefix bytes and the raw source
// bytes for it (shown instead when the cursor sits in the prefix range and
// raw-reveal is on).
func blockPrefix(ctx *emitCtx, blocks []block.Block, idx int) (pretty, raw []byte) {
	b := blocks[idx]
	switch b.Kind {
	case block.KindFootnoteDef:
		id := sliceBytes(ctx.s, b.FootnoteIDStart, b.FootnoteIDEnd)
		pretty = append([]byte("["), append(append([]byte{}, id...), []byte("] ")...)...)
		return pretty, pretty

	case block.KindBlockquote:
		out := make([]byte, 0, b.QuoteLevel*2)
		for i := 0; i < b.QuoteLevel; i++ {
			out = append(out, []byte("┃ ")...)
		}
		return out, out

	case block.KindListItem:
		indent := make([]byte, b.Indent)
		for i := range indent {
			indent[i] = ' '
		}
		if b.TaskState != recognize.TaskNone {
			box := "☐ "
			if b.TaskState == recognize.TaskChecked {
				box = "☑ "
			}
			return append(indent, []byte(box)...), append(indent, []byte(box)...)
		}
		if b.Ordered {
			n := listOrdinal(blocks, idx, ctx.s)
			return append(indent, []byte(strconv.Itoa(n)+". ")...), append(indent, []byte(strconv.Itoa(n)+". ")...)
		}
		return append(indent, []byte("• ")...), append(indent, []byte("- ")...)

	default:
		return nil, nil
	}
}

func listOrdinal(blocks []block.Block, idx int, s recognize.Source) int {
	b := blocks[idx]
	runStart := idx
	for runStart > 0 {
		p := blocks[runStart-1]
		if p.Kind == block.KindListItem && p.Ordered && p.Indent == b.Indent {
			runStart--
			continue
		}
		break
	}
	base := literalOrderedNumber(s, blocks[runStart])
	return base + (idx - runStart)
}

func literalOrderedNumber(s recognize.Source, b block.Block) int {
	i := b.Start + b.Indent
	n := 0
	any := false
	for i < b.ContentStart && s.At(i) >= '0' && s.At(i) <= '9' {
		n = n*10 + int(s.At(i)-'0')
		i++
		any = true
	}
	if !any {
		return 1
	}
	return n
}

// emitRun draws run's content in [from, to), returning the next byte
// position. Non-text runs render their pretty form unless the cursor is
// inside them with raw-reveal on, in which case the raw source bytes are
// dimmed instead.
func emitRun(ctx *emitCtx, run block.Run, from, to, row int, col *int) int {
	applyStyle(ctx, run.Style)
	bg, hasSel := ctx.selBG(from, to)
	if hasSel && !run.Style.Has(mdstyle.Mark) {
		ctx.disp.SetBG(bg)
	}

	raw := ctx.cursorInside(run.Start, run.End) && run.Kind != block.RunText

	switch {
	case run.Kind == block.RunText || raw:
		for i := from; i < to; i++ {
			ctx.cur.visit(i, row, *col)
			if raw {
				ctx.disp.SetDim(true)
			}
			ctx.disp.WriteChar(ctx.s.At(i))
			*col++
		}
		if raw {
			ctx.disp.ResetAttrs()
		}

	case run.Kind == block.RunLink:
		ctx.cur.visit(run.Start, row, *col)
		ctx.disp.SetFG(ctx.pal.LinkColor)
		ctx.disp.SetUnderline(sink.UnderlineSingle)
		for i := run.TextStart; i < run.TextEnd; i++ {
			ctx.disp.WriteChar(ctx.s.At(i))
			*col++
		}
		ctx.disp.ClearUnderline()

	case run.Kind == block.RunAutolink:
		ctx.cur.visit(run.Start, row, *col)
		ctx.disp.SetFG(ctx.pal.LinkColor)
		ctx.disp.SetUnderline(sink.UnderlineSingle)
		for i := run.URLStart; i < run.URLEnd; i++ {
			ctx.disp.WriteChar(ctx.s.At(i))
			*col++
		}
		ctx.disp.ClearUnderline()

	case run.Kind == block.RunFootnoteRef:
		ctx.cur.visit(run.Start, row, *col)
		ctx.disp.SetFG(ctx.pal.Accent)
		ctx.disp.WriteChar('[')
		*col++
		for i := run.FootnoteIDStart; i < run.FootnoteIDEnd; i++ {
			ctx.disp.WriteChar(ctx.s.At(i))
			*col++
		}
		ctx.disp.WriteChar(']')
		*col++

	case run.Kind == block.RunInlineMath:
		ctx.cur.visit(run.Start, row, *col)
		if ctx.math != nil {
			latex := string(sliceBytes(ctx.s, run.MathStart, run.MathEnd))
			if sk, err := ctx.math.RenderInline(latex); err == nil && sk != nil {
				if len(sk.Rows) > 0 {
					for _, cell := range sk.Rows[0] {
						ctx.disp.WriteStr(cell.Data)
						*col++
					}
				}
				ctx.math.Free(sk)
				break
			}
		}
		for i := run.MathStart; i < run.MathEnd; i++ {
			ctx.disp.WriteChar(ctx.s.At(i))
			*col++
		}

	case run.Kind == block.RunEmoji:
		ctx.cur.visit(run.Start, row, *col)
		ctx.disp.WriteStr([]byte(run.EmojiGlyph))
		*col += wrap.PlainStringWidth(run.EmojiGlyph)

	case run.Kind == block.RunEntity:
		ctx.cur.visit(run.Start, row, *col)
		ctx.disp.WriteStr([]byte(run.EntityText))
		*col += wrap.PlainStringWidth(run.EntityText)

	case run.Kind == block.RunHeadingID:
		ctx.cur.visit(run.Start, row, *col)
		// Rendered invisibly: a heading id is metadata, not display text.

	case run.Kind == block.RunEscape:
		ctx.cur.visit(run.Start, row, *col)
		ctx.disp.WriteChar(run.EscapedByte)
		*col++
	}

	ctx.disp.ResetAttrs()
	return to
}

func applyStyle(ctx *emitCtx, st mdstyle.Style) {
	ctx.disp.SetBold(st.Has(mdstyle.Bold))
	ctx.disp.SetItalic(st.Has(mdstyle.Italic))
	ctx.disp.SetStrikethrough(st.Has(mdstyle.Strike))
	if st.Has(mdstyle.Code) {
		ctx.disp.SetBG(ctx.pal.CodeBG)
	}
	if st.Has(mdstyle.Mark) {
		ctx.disp.SetBG(ctx.pal.MarkBG)
	}
}
