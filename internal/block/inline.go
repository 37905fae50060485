package block

import (
	"github.com/2legit2git/dawn/internal/mdstyle"
	"github.com/2legit2git/dawn/internal/recognize"
)

// styleFrame is one entry on the bounded inline style stack used while
// pre-parsing a paragraph-like block into runs.
type styleFrame struct {
	style Style
	delim string
	open  int // byte offset of the opening delimiter
}

// Style is a re-export convenience so callers of this package don't need
// to import mdstyle separately just to read Run.Style.
type Style = mdstyle.Style

// parseInlineRuns decomposes [start, end) into a sequence of inline runs
// by scanning left-to-right with a bounded style stack (max depth 8).
func parseInlineRuns(s recognize.Source, start, end int, lineIsHeader bool) []Run {
	var runs []Run
	var stack []styleFrame
	combined := func() mdstyle.Style {
		var st mdstyle.Style
		for _, f := range stack {
			st = st.Add(f.style)
		}
		return st
	}

	textStart := start
	flushText := func(upTo int) {
		if upTo > textStart {
			runs = append(runs, Run{Start: textStart, End: upTo, Style: combined(), Kind: RunText})
		}
	}

	pos := start
	for pos < end {
		if s.At(pos) == '\n' {
			flushText(pos)
			textStart = pos + 1
			pos++
			continue
		}

		// 1. Inline math.
		if cstart, cend, total, ok := recognize.CheckInlineMath(s, pos); ok && pos+total <= end {
			flushText(pos)
			runs = append(runs, Run{Start: pos, End: pos + total, Style: combined(), Kind: RunInlineMath,
				MathStart: cstart, MathEnd: cend})
			pos += total
			textStart = pos
			continue
		}
		// 2. Link.
		if m, ok := recognize.CheckLink(s, pos); ok && pos+m.Total <= end {
			flushText(pos)
			runs = append(runs, Run{Start: pos, End: pos + m.Total, Style: combined(), Kind: RunLink,
				URLStart: m.URLStart, URLEnd: m.URLEnd, TextStart: m.TextStart, TextEnd: m.TextEnd})
			pos += m.Total
			textStart = pos
			continue
		}
		// 3. Autolink.
		if us, ue, total, isEmail, ok := recognize.CheckAutolink(s, pos); ok && pos+total <= end {
			flushText(pos)
			runs = append(runs, Run{Start: pos, End: pos + total, Style: combined(), Kind: RunAutolink,
				URLStart: us, URLEnd: ue, IsEmailAutolink: isEmail})
			pos += total
			textStart = pos
			continue
		}
		// 4. Footnote ref.
		if idS, idE, total, ok := recognize.CheckFootnoteRef(s, pos); ok && pos+total <= end {
			flushText(pos)
			runs = append(runs, Run{Start: pos, End: pos + total, Style: combined(), Kind: RunFootnoteRef,
				FootnoteIDStart: idS, FootnoteIDEnd: idE})
			pos += total
			textStart = pos
			continue
		}
		// 5. Heading id (only when the line is a header line).
		if lineIsHeader {
			if idS, idE, total, ok := recognize.CheckHeadingID(s, pos); ok && pos+total <= end {
				flushText(pos)
				runs = append(runs, Run{Start: pos, End: pos + total, Style: combined(), Kind: RunHeadingID,
					HeadingIDStart: idS, HeadingIDEnd: idE})
				pos += total
				textStart = pos
				continue
			}
		}
		// 6. Emoji.
		if glyph, _, _, total, ok := recognize.CheckEmoji(s, pos); ok && pos+total <= end {
			flushText(pos)
			runs = append(runs, Run{Start: pos, End: pos + total, Style: combined(), Kind: RunEmoji, EmojiGlyph: glyph})
			pos += total
			textStart = pos
			continue
		}
		// 7. HTML entity.
		if decoded, total, ok := recognize.CheckEntity(s, pos); ok && pos+total <= end {
			flushText(pos)
			runs = append(runs, Run{Start: pos, End: pos + total, Style: combined(), Kind: RunEntity, EntityText: decoded})
			pos += total
			textStart = pos
			continue
		}
		// 8. Backslash escape.
		if b, total, ok := recognize.CheckEscape(s, pos); ok && pos+total <= end {
			flushText(pos)
			runs = append(runs, Run{Start: pos, End: pos + total, Style: combined(), Kind: RunEscape, EscapedByte: b})
			pos += total
			textStart = pos
			continue
		}
		// 9. Style delimiter.
		if style, dlen, ok := recognize.CheckDelim(s, pos); ok {
			delimText := delimBytesAt(s, pos, dlen)
			// Does it close the innermost matching style?
			closedAt := -1
			for k := len(stack) - 1; k >= 0; k-- {
				if stack[k].delim == delimText {
					closedAt = k
					break
				}
			}
			if closedAt >= 0 {
				flushText(pos)
				stack = stack[:closedAt]
				pos += dlen
				textStart = pos
				continue
			}
			// Not closing: try to open, bounded by stack depth and
			// requiring a same-line matching close to exist.
			if len(stack) < mdstyle.MaxStyleStackDepth {
				if _, hasClose := recognize.FindClosing(s, pos+dlen, delimText); hasClose {
					flushText(pos)
					stack = append(stack, styleFrame{style: style, delim: delimText, open: pos})
					pos += dlen
					textStart = pos
					continue
				}
			}
			// Unmatched delimiter: literal passthrough, falls to default.
		}

		// 10. Otherwise, extend current text run by one grapheme-ish step
		// (byte-wise is fine here; display grouping happens in the
		// renderer which owns grapheme/width concerns).
		pos++
	}
	flushText(end)
	return runs
}

func delimBytesAt(s recognize.Source, pos, n int) string {
	b := make([]byte, n)
	for k := 0; k < n; k++ {
		b[k] = s.At(pos + k)
	}
	return string(b)
}
