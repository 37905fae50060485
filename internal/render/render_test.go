package render

import (
	"testing"

	"github.com/2legit2git/dawn/internal/block"
)

func TestComputeLayoutReservesMargins(t *testing.T) {
	l := ComputeLayout(100, 40, 0)
	if l.TopMargin != 2 || l.BottomMargin != 2 {
		t.Fatalf("expected 2-row top/bottom margins, got %+v", l)
	}
	if l.TextHeight != 36 {
		t.Fatalf("expected text height 36, got %d", l.TextHeight)
	}
}

func TestComputeLayoutCentersWideTerminal(t *testing.T) {
	l := ComputeLayout(120, 40, 0)
	want := (120 - 70) / 2
	if l.LeftMargin != want {
		t.Fatalf("expected margin %d, got %d", want, l.LeftMargin)
	}
}

func TestComputeLayoutNarrowTerminalFixedMargin(t *testing.T) {
	l := ComputeLayout(60, 40, 0)
	if l.LeftMargin != 4 {
		t.Fatalf("expected fixed margin 4, got %d", l.LeftMargin)
	}
}

func TestClampScrollKeepsCursorWithinBand(t *testing.T) {
	// Cursor near the bottom edge should push scroll forward.
	scroll := ClampScroll(0, 30, 100, 20)
	band := ScrollBand(20)
	if scroll+20-1-band < 30 {
		t.Fatalf("cursor not kept within band: scroll=%d", scroll)
	}
}

func TestClampScrollNeverNegativeOrPastMax(t *testing.T) {
	scroll := ClampScroll(0, 0, 5, 20)
	if scroll < 0 {
		t.Fatal("scroll must not go negative")
	}
	scroll = ClampScroll(0, 1000, 10, 20)
	if scroll > 0 {
		t.Fatalf("expected scroll clamped to 0 when doc shorter than viewport, got %d", scroll)
	}
}

func TestRenderParagraphPlacesCursor(t *testing.T) {
	src := strSource("hello world\n")
	geo := block.Geometry{}
	blocks := block.Parse(src, 40, 20, geo)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}

	disp := &fakeDisplay{textSizing: true}
	layout := ComputeLayout(48, 24, 0)
	row, col := Render(Sinks{Display: disp}, Frame{
		Blocks: blocks, Source: src, Cursor: 5, Layout: layout,
	})
	if row < layout.TopMargin {
		t.Fatalf("expected cursor row >= top margin, got %d", row)
	}
	if col < layout.LeftMargin {
		t.Fatalf("expected cursor col >= left margin, got %d", col)
	}
	if len(disp.written) == 0 {
		t.Fatal("expected the paragraph's text to be written")
	}
}

func TestRenderHRRawReveal(t *testing.T) {
	src := strSource("---\n")
	blocks := block.Parse(src, 40, 20, block.Geometry{})
	disp := &fakeDisplay{}
	layout := ComputeLayout(48, 24, 0)
	Render(Sinks{Display: disp}, Frame{
		Blocks: blocks, Source: src, Cursor: 1, Layout: layout, RawReveal: true,
	})
	if string(disp.written) != "---" {
		t.Fatalf("expected raw HR source, got %q", disp.written)
	}
}

func TestRenderHeaderCentersAndScales(t *testing.T) {
	src := strSource("# Title\n")
	blocks := block.Parse(src, 40, 20, block.Geometry{TextSizing: true})
	disp := &fakeDisplay{textSizing: true}
	layout := ComputeLayout(48, 24, 0)
	Render(Sinks{Display: disp}, Frame{
		Blocks: blocks, Source: src, Cursor: 0, Layout: layout,
	})
	if len(disp.written) == 0 {
		t.Fatal("expected header text to be written")
	}
}

func TestRenderTableBorders(t *testing.T) {
	src := strSource("| a | b |\n| - | - |\n| 1 | 2 |\n")
	blocks := block.Parse(src, 40, 20, block.Geometry{})
	if len(blocks) != 1 || blocks[0].Kind != block.KindTable {
		t.Fatalf("expected a single table block, got %+v", blocks)
	}
	disp := &fakeDisplay{}
	layout := ComputeLayout(48, 24, 0)
	Render(Sinks{Display: disp}, Frame{
		Blocks: blocks, Source: src, Cursor: -1, Layout: layout,
	})
	if len(disp.written) == 0 {
		t.Fatal("expected table borders to be written")
	}
}
