package block

import (
	"sort"

	"github.com/2legit2git/dawn/internal/recognize"
	"github.com/2legit2git/dawn/internal/wrap"
)

// BlockAtPos returns the block whose [Start, End) range contains byte,
// or the last block if byte is at or beyond the document end.
func BlockAtPos(blocks []Block, byteOffset int) (Block, bool) {
	if len(blocks) == 0 {
		return Block{}, false
	}
	i := sort.Search(len(blocks), func(i int) bool {
		return blocks[i].End > byteOffset
	})
	if i >= len(blocks) {
		return blocks[len(blocks)-1], true
	}
	return blocks[i], true
}

// BlockAtVRow returns the block whose [VRowStart, VRowStart+VRowCount)
// range contains vrow.
func BlockAtVRow(blocks []Block, vrow int) (Block, bool) {
	if len(blocks) == 0 {
		return Block{}, false
	}
	i := sort.Search(len(blocks), func(i int) bool {
		return blocks[i].VRowStart+blocks[i].VRowCount > vrow
	})
	if i >= len(blocks) {
		return blocks[len(blocks)-1], true
	}
	return blocks[i], true
}

// CursorVRowInBlock computes the document-wide virtual row the cursor
// occupies inside b (b.VRowStart plus the cursor's row offset within b),
// mirroring how the renderer wraps that block variant.
func CursorVRowInBlock(s recognize.Source, b Block, cursor, wrapWidth int, geo Geometry) int {
	if cursor <= b.Start {
		return b.VRowStart
	}

	switch b.Kind {
	case KindHR, KindImage, KindMath, KindCode:
		return b.VRowStart

	case KindTable:
		// Cursor-in-table editing is raw-reveal only; treat the whole
		// block as occupying its first row for scroll purposes.
		return b.VRowStart

	case KindHeader:
		contentEnd := b.End
		if contentEnd > b.Start && s.At(contentEnd-1) == '\n' {
			contentEnd--
		}
		if !geo.TextSizing {
			return b.VRowStart + rowOffsetInRange(s, b.HeaderContentStart, contentEnd, cursor, wrapWidth)
		}
		scale := headerScale(b.HeaderLevel)
		available := wrapWidth / scale
		if available < 1 {
			available = 1
		}
		return b.VRowStart + rowOffsetInRange(s, b.HeaderContentStart, contentEnd, cursor, available)

	default: // Paragraph, Blockquote, ListItem, FootnoteDef
		start := b.ContentStart
		if start == 0 && b.Kind == KindParagraph {
			start = b.Start
		}
		end := b.End
		if end > start && s.At(end-1) == '\n' {
			end--
		}
		return b.VRowStart + rowOffsetInRange(s, start, end, cursor, wrapWidth)
	}
}

func rowOffsetInRange(s recognize.Source, start, end, cursor, width int) int {
	if cursor <= start {
		return 0
	}
	if cursor > end {
		cursor = end
	}
	lines := wrap.WrapLines(s, start, end, width)
	row := 0
	for _, ln := range lines {
		if cursor <= ln.End {
			return row
		}
		row++
	}
	if row > 0 {
		return row - 1
	}
	return 0
}
