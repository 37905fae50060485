package block

import "testing"

func TestParseTilesDocument(t *testing.T) {
	src := strSource("# H\n\npara")
	blocks := Parse(src, 80, 24, Geometry{})
	if len(blocks) == 0 {
		t.Fatal("expected at least one block")
	}
	if blocks[0].Start != 0 {
		t.Fatalf("first block must start at 0, got %d", blocks[0].Start)
	}
	if blocks[len(blocks)-1].End != len(src) {
		t.Fatalf("last block must end at document length, got %d want %d", blocks[len(blocks)-1].End, len(src))
	}
	for i := 0; i < len(blocks)-1; i++ {
		if blocks[i].End != blocks[i+1].Start {
			t.Fatalf("tiling broken at %d: block[%d].End=%d block[%d].Start=%d",
				i, i, blocks[i].End, i+1, blocks[i+1].Start)
		}
	}
}

func TestParseVRowMonotonicity(t *testing.T) {
	src := strSource("# Title\n\nSome paragraph text that is reasonably long to wrap.\n\n- item one\n- item two\n")
	blocks := Parse(src, 20, 24, Geometry{})
	for i := 0; i < len(blocks)-1; i++ {
		if blocks[i].VRowStart+blocks[i].VRowCount > blocks[i+1].VRowStart {
			t.Fatalf("vrow monotonicity violated between block %d and %d", i, i+1)
		}
	}
}

func TestParseHeaderBlock(t *testing.T) {
	src := strSource("# H\n\npara")
	blocks := Parse(src, 80, 24, Geometry{})
	if blocks[0].Kind != KindHeader {
		t.Fatalf("expected header block, got %v", blocks[0].Kind)
	}
	if blocks[0].HeaderLevel != 1 {
		t.Fatalf("expected level 1, got %d", blocks[0].HeaderLevel)
	}
	if blocks[0].End != 4 {
		t.Fatalf("expected header block to end at 4 (includes trailing newline), got %d", blocks[0].End)
	}
}

func TestParseParagraphRunsTileContiguously(t *testing.T) {
	src := strSource("hello **world** and [a link](http://x) done\n")
	blocks := Parse(src, 80, 24, Geometry{})
	var p *Block
	for i := range blocks {
		if blocks[i].Kind == KindParagraph {
			p = &blocks[i]
			break
		}
	}
	if p == nil {
		t.Fatal("expected a paragraph block")
	}
	if len(p.Runs) == 0 {
		t.Fatal("expected inline runs")
	}
	if p.Runs[0].Start != p.Start {
		t.Fatalf("first run must start at block start: got %d want %d", p.Runs[0].Start, p.Start)
	}
	for i := 0; i < len(p.Runs)-1; i++ {
		if p.Runs[i].End != p.Runs[i+1].Start {
			t.Fatalf("run tiling broken at %d: %d != %d", i, p.Runs[i].End, p.Runs[i+1].Start)
		}
	}
}

func TestParseListItemAndTask(t *testing.T) {
	src := strSource("- [ ] todo\n- [x] done\n")
	blocks := Parse(src, 80, 24, Geometry{})
	if len(blocks) != 2 {
		t.Fatalf("expected 2 list item blocks, got %d", len(blocks))
	}
	if blocks[0].TaskState != 1 { // TaskUnchecked
		t.Fatalf("expected unchecked, got %v", blocks[0].TaskState)
	}
	if blocks[1].TaskState != 2 { // TaskChecked
		t.Fatalf("expected checked, got %v", blocks[1].TaskState)
	}
}

func TestParseTableBlock(t *testing.T) {
	src := strSource("| a | b |\n|---|---|\n| 1 | 22 |\n")
	blocks := Parse(src, 40, 24, Geometry{})
	if len(blocks) != 1 || blocks[0].Kind != KindTable {
		t.Fatalf("expected single table block, got %+v", blocks)
	}
	if blocks[0].ColCount != 2 {
		t.Fatalf("expected 2 columns, got %d", blocks[0].ColCount)
	}
	if blocks[0].VRowCount != 5 {
		t.Fatalf("expected 5 vrows per S6, got %d", blocks[0].VRowCount)
	}
}

func TestParseLinkBeatsFootnoteRef(t *testing.T) {
	src := strSource("see [^1](http://x) there\n")
	blocks := Parse(src, 80, 24, Geometry{})
	p := blocks[0]
	found := false
	for _, r := range p.Runs {
		if r.Kind == RunLink {
			found = true
		}
		if r.Kind == RunFootnoteRef {
			t.Fatal("expected link to win recognition priority over footnote ref")
		}
	}
	if !found {
		t.Fatal("expected a link run")
	}
}
