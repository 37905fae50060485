package block

import (
	"github.com/2legit2git/dawn/internal/recognize"
	"github.com/2legit2git/dawn/internal/wrap"
)

// vrowCount computes a block's vrow_count from its own geometry.
func vrowCount(s recognize.Source, b *Block, wrapWidth, textHeight int, geo Geometry) int {
	switch b.Kind {
	case KindHR:
		return 1

	case KindImage:
		if geo.Image == nil {
			return 1
		}
		path := sliceSrc(s, b.PathStart, b.PathEnd)
		size, err := geo.Image.GetSize(path)
		if err != nil {
			return 1
		}
		pw, ph := size.W, size.H
		if b.WidthSet {
			pw = resolveDim(b.Width, wrapWidth)
		}
		if b.HeightSet {
			ph = resolveDim(b.Height, textHeight)
		}
		rows := geo.Image.CalcRows(pw, ph, wrapWidth, 0)
		if rows < 1 {
			return 1
		}
		return rows

	case KindHeader:
		return headerVRows(s, b, wrapWidth, geo)

	case KindCode:
		n := 1
		for i := b.CodeContentStart; i < b.CodeContentEnd; i++ {
			if s.At(i) == '\n' {
				n++
			}
		}
		return n

	case KindMath:
		if geo.Math == nil {
			return 1
		}
		latex := sliceSrc(s, b.MathContentStart, b.MathContentEnd)
		sk, err := geo.Math.RenderBlock(latex)
		if err != nil || sk == nil {
			return 1
		}
		h := sk.Height
		geo.Math.Free(sk)
		if h < 1 {
			return 1
		}
		return h

	case KindTable:
		return tableVRows(s, b, wrapWidth)

	default: // Paragraph, Blockquote, ListItem, FootnoteDef
		return logicalLineVRows(s, b, wrapWidth)
	}
}

// resolveDim turns a spec-encoded width/height (positive = pixels,
// negative = percent of available) into pixels.
func resolveDim(spec, available int) int {
	if spec >= 0 {
		return spec
	}
	pct := -spec
	return available * pct / 100
}

func sliceSrc(s recognize.Source, start, end int) string {
	b := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		b = append(b, s.At(i))
	}
	return string(b)
}

// headerScale returns the header's rendering scale: H1
// renders at scale 2, all other levels at scale 1.
func headerScale(level int) int {
	if level == 1 {
		return 2
	}
	return 1
}

func headerVRows(s recognize.Source, b *Block, wrapWidth int, geo Geometry) int {
	contentEnd := b.End
	if contentEnd > b.Start && s.At(contentEnd-1) == '\n' {
		contentEnd--
	}
	contentStart := b.HeaderContentStart
	if b.HasHeadingID && b.HeadingIDEnd <= contentEnd {
		contentEnd = headingIDTrimEnd(s, contentStart, contentEnd, b)
	}

	if !geo.TextSizing {
		// No text-sizing capability: renders as a plain wrapped paragraph
		// with a line style.
		return logicalLineVRowsRange(s, contentStart, contentEnd, wrapWidth)
	}

	scale := headerScale(b.HeaderLevel)
	available := wrapWidth / scale
	if available < 1 {
		available = 1
	}
	lines := wrap.WrapLines(s, contentStart, contentEnd, available)
	contentRows := len(lines)
	if contentRows < 1 {
		contentRows = 1
	}
	rows := contentRows
	if b.HeaderLevel >= 2 {
		rows++ // decorative underline row
	}
	return rows
}

func headingIDTrimEnd(s recognize.Source, contentStart, contentEnd int, b *Block) int {
	// The heading-id construct occupies the tail of the line; exclude it
	// and any space immediately preceding it from the wrapped content.
	end := b.HeadingIDStart
	for end > contentStart && end-1 >= 0 && s.At(end-1) == '{' {
		end--
		break
	}
	for end > contentStart && s.At(end-1) == ' ' {
		end--
	}
	if end < contentStart {
		end = contentStart
	}
	return end
}

func logicalLineVRows(s recognize.Source, b *Block, wrapWidth int) int {
	start := b.ContentStart
	if start == 0 && b.Kind == KindParagraph {
		start = b.Start
	}
	end := b.End
	if end > start && s.At(end-1) == '\n' {
		end--
	}
	return logicalLineVRowsRange(s, start, end, wrapWidth)
}

func logicalLineVRowsRange(s recognize.Source, start, end, wrapWidth int) int {
	if end <= start {
		return 1
	}
	lines := wrap.WrapLines(s, start, end, wrapWidth)
	if len(lines) < 1 {
		return 1
	}
	return len(lines)
}

// tableVRows sizes a table block: top border + each source row sized
// by its tallest wrapped cell + inter-row dividers + delimiter row +
// bottom border.
func tableVRows(s recognize.Source, b *Block, wrapWidth int) int {
	cols := b.ColCount
	if cols < 1 {
		cols = 1
	}
	colWidth := (wrapWidth - (cols*3 + 1)) / cols
	if colWidth < 8 {
		colWidth = 8
	}
	if colWidth > 30 {
		colWidth = 30
	}

	if len(b.Rows) == 0 {
		return 1
	}

	rowHeight := func(row TableRow) int {
		h := 1
		for _, c := range row.Cells {
			lines := wrap.WrapLines(s, c.Start, c.End, colWidth)
			if len(lines) > h {
				h = len(lines)
			}
		}
		return h
	}

	rows := 1                    // top border
	rows += rowHeight(b.Rows[0])  // header row
	rows++                        // delimiter row
	dataRows := b.Rows[1:]
	for i, row := range dataRows {
		rows += rowHeight(row)
		if i < len(dataRows)-1 {
			rows++ // inter-row divider between data rows
		}
	}
	rows++ // bottom border
	return rows
}
