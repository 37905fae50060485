package block

import "testing"

func TestBlockAtPos(t *testing.T) {
	src := strSource("# H\n\npara")
	blocks := Parse(src, 80, 24, Geometry{})
	b, ok := BlockAtPos(blocks, 0)
	if !ok || b.Kind != KindHeader {
		t.Fatalf("expected header block at pos 0, got %+v", b)
	}
	b, ok = BlockAtPos(blocks, len(src))
	if !ok || b.Kind != blocks[len(blocks)-1].Kind {
		t.Fatalf("expected last block at EOF, got %+v", b)
	}
}

func TestBlockAtVRow(t *testing.T) {
	src := strSource("# H\n\npara\n\nmore text here\n")
	blocks := Parse(src, 80, 24, Geometry{})
	last := blocks[len(blocks)-1]
	b, ok := BlockAtVRow(blocks, last.VRowStart)
	if !ok || b.Start != last.Start {
		t.Fatalf("expected to find last block by its own vrow_start, got %+v", b)
	}
}

func TestCursorVRowInBlockParagraph(t *testing.T) {
	src := strSource("aaaa bbbb cccc dddd\n")
	blocks := Parse(src, 10, 24, Geometry{})
	b := blocks[0]
	atStart := CursorVRowInBlock(src, b, b.Start, 10, Geometry{})
	if atStart != b.VRowStart {
		t.Fatalf("cursor at block start should be on its first vrow, got %d want %d", atStart, b.VRowStart)
	}
	atEnd := CursorVRowInBlock(src, b, b.End, 10, Geometry{})
	if atEnd < b.VRowStart {
		t.Fatalf("cursor at block end should be within the block's vrow range, got %d", atEnd)
	}
}
