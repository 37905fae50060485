package block

import (
	"github.com/2legit2git/dawn/internal/recognize"
)

// Parse walks src from byte 0 and partitions it into a tiling sequence of
// blocks, assigning each a virtual-row range using geo
// for any external measurement it needs (image pixel size, math sketch
// height). wrapWidth/textHeight mirror the cache's invalidation keys.
func Parse(src recognize.Source, wrapWidth, textHeight int, geo Geometry) []Block {
	l := src.Len()
	var blocks []Block
	pos := 0
	vrow := 0

	for pos < l {
		b, next := parseOneBlock(src, pos, l)
		b.VRowStart = vrow
		b.VRowCount = vrowCount(src, &b, wrapWidth, textHeight, geo)
		if b.VRowCount < 1 {
			b.VRowCount = 1
		}
		vrow += b.VRowCount
		blocks = append(blocks, b)
		pos = next
	}

	if len(blocks) == 0 {
		// An empty document has no blocks at all, rather than one block
		// whose source range is empty.
		return blocks
	}
	return blocks
}

// parseOneBlock attempts recognizers in priority order at pos, falling
// back to a paragraph run ending at a blank line, a recognized block
// start, or EOF.
func parseOneBlock(s recognize.Source, pos, l int) (Block, int) {
	if m, ok := recognize.CheckImage(s, pos); ok && recognize.IsBlockImage(s, pos, m) {
		end := pos + m.Total
		if end < l && s.At(end) == '\n' {
			end++
		}
		return Block{
			Kind: KindImage, Start: pos, End: end,
			AltStart: m.AltStart, AltEnd: m.AltEnd,
			PathStart: m.PathStart, PathEnd: m.PathEnd,
			Width: m.Width, Height: m.Height, WidthSet: m.WidthSet, HeightSet: m.HeightSet,
		}, end
	}
	if cb, ok := recognize.CheckCodeBlock(s, pos); ok {
		end := pos + cb.Total
		return Block{
			Kind: KindCode, Start: pos, End: end,
			LangStart: cb.LangStart, LangEnd: cb.LangEnd,
			CodeContentStart: cb.ContentStart, CodeContentEnd: cb.ContentEnd,
		}, end
	}
	if cstart, cend, total, ok := recognize.CheckBlockMathFull(s, pos); ok {
		end := pos + total
		return Block{Kind: KindMath, Start: pos, End: end, MathContentStart: cstart, MathContentEnd: cend}, end
	}
	if tm, ok := recognize.CheckTable(s, pos); ok {
		end := pos + tm.Total
		rows := parseTableRows(s, pos, tm)
		return Block{
			Kind: KindTable, Start: pos, End: end,
			ColCount: tm.ColCount, Aligns: tm.Aligns, Rows: rows,
		}, end
	}
	if n, ok := recognize.CheckHR(s, pos); ok {
		end := pos + n
		return Block{Kind: KindHR, Start: pos, End: end}, end
	}
	if hm, ok := recognize.CheckHeaderContent(s, pos); ok {
		end := pos
		for end < l && s.At(end) != '\n' {
			end++
		}
		hasID, idS, idE := false, 0, 0
		idPos := findHeadingIDPos(s, hm.ContentStart, end)
		if _, _, total, ok := recognize.CheckHeadingID(s, idPos); ok {
			hasID, idS, idE = true, idPos, idPos+total
		}
		if end < l && s.At(end) == '\n' {
			end++
		}
		runs := parseInlineRuns(s, hm.ContentStart, trimTrailingNewline(s, end), true)
		return Block{
			Kind: KindHeader, Start: pos, End: end,
			HeaderLevel: hm.Level, HeaderContentStart: hm.ContentStart,
			HasHeadingID: hasID, HeadingIDStart: idS, HeadingIDEnd: idE,
			Runs: runs,
		}, end
	}
	if idS, idE, cstart, total, ok := recognize.CheckFootnoteDef(s, pos); ok {
		end := pos + total
		runs := parseInlineRuns(s, cstart, trimTrailingNewline(s, end), false)
		return Block{
			Kind: KindFootnoteDef, Start: pos, End: end,
			FootnoteIDStart: idS, FootnoteIDEnd: idE, ContentStart: cstart, Runs: runs,
		}, end
	}
	if level, cstart, ok := recognize.CheckBlockquote(s, pos); ok {
		end := cstart
		for end < l && s.At(end) != '\n' {
			end++
		}
		if end < l && s.At(end) == '\n' {
			end++
		}
		runs := parseInlineRuns(s, cstart, trimTrailingNewline(s, end), false)
		return Block{Kind: KindBlockquote, Start: pos, End: end, QuoteLevel: level, ContentStart: cstart, Runs: runs}, end
	}
	if state, indent, cstart, ok := recognize.CheckTask(s, pos); ok {
		end := cstart
		for end < l && s.At(end) != '\n' {
			end++
		}
		if end < l && s.At(end) == '\n' {
			end++
		}
		runs := parseInlineRuns(s, cstart, trimTrailingNewline(s, end), false)
		return Block{
			Kind: KindListItem, Start: pos, End: end, TaskState: state,
			Indent: indent, ContentStart: cstart, Runs: runs,
		}, end
	}
	if ordered, indent, cstart, ok := recognize.CheckList(s, pos); ok {
		end := cstart
		for end < l && s.At(end) != '\n' {
			end++
		}
		if end < l && s.At(end) == '\n' {
			end++
		}
		runs := parseInlineRuns(s, cstart, trimTrailingNewline(s, end), false)
		return Block{
			Kind: KindListItem, Start: pos, End: end, Ordered: ordered,
			Indent: indent, ContentStart: cstart, Runs: runs,
		}, end
	}

	// Paragraph: consume until a blank line (inclusive of the first
	// newline), a recognized block start, or EOF.
	end := pos
	for end < l {
		if end > pos && s.At(end-1) == '\n' && s.At(end) == '\n' {
			end++ // swallow the blank line's own newline
			break
		}
		if end > pos && s.At(end-1) == '\n' && recognize.IsBlockStart(s, end) {
			break
		}
		end++
	}
	runs := parseInlineRuns(s, pos, trimTrailingNewline(s, end), false)
	return Block{Kind: KindParagraph, Start: pos, End: end, Runs: runs}, end
}

func trimTrailingNewline(s recognize.Source, end int) int {
	if end > 0 && s.At(end-1) == '\n' {
		return end - 1
	}
	return end
}

// findHeadingIDPos locates a "{#id}" immediately preceding the line's end.
func findHeadingIDPos(s recognize.Source, contentStart, lineEnd int) int {
	// Scan backward from lineEnd for a '{' that opens a valid heading id
	// ending exactly at lineEnd (ignoring trailing spaces).
	i := lineEnd
	for i > contentStart && s.At(i-1) == ' ' {
		i--
	}
	if i == 0 || s.At(i-1) != '}' {
		return lineEnd
	}
	j := i - 1
	for j > contentStart && s.At(j) != '{' {
		j--
	}
	if s.At(j) != '{' {
		return lineEnd
	}
	return j
}

func parseTableRows(s recognize.Source, pos int, tm recognize.TableMatch) []TableRow {
	var rows []TableRow
	i := pos
	rowIdx := 0
	end := pos + tm.Total
	for i < end {
		le := i
		for le < end && s.At(le) != '\n' {
			le++
		}
		if rowIdx != 1 { // skip the delimiter row's cells; alignment already captured
			cells := recognize.ParseTableRow(s, i, le-i)
			rows = append(rows, TableRow{Cells: cells})
		}
		i = le
		if i < end && s.At(i) == '\n' {
			i++
		}
		rowIdx++
	}
	return rows
}
