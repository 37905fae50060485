package texsink

import "testing"

func TestRenderInlineProducesOneRowPerRune(t *testing.T) {
	f := New()
	sk, err := f.RenderInline(`x^2`)
	if err != nil {
		t.Fatal(err)
	}
	if sk.Height != 1 {
		t.Fatalf("expected 1 row, got %d", sk.Height)
	}
	if sk.Width != 3 {
		t.Fatalf("expected 3 cells, got %d", sk.Width)
	}
	if string(sk.Rows[0][0].Data) != "x" {
		t.Fatalf("unexpected first cell: %q", sk.Rows[0][0].Data)
	}
}

func TestRenderBlockHandlesMultiByteRunes(t *testing.T) {
	f := New()
	sk, err := f.RenderBlock(`\alpha ∈ ℝ`)
	if err != nil {
		t.Fatal(err)
	}
	if sk.Width != len([]rune(`\alpha ∈ ℝ`)) {
		t.Fatalf("expected one cell per rune, got width %d", sk.Width)
	}
}

func TestFreeIsSafeOnNilAndRealSketch(t *testing.T) {
	f := New()
	f.Free(nil)
	sk, _ := f.RenderInline("x")
	f.Free(sk)
}
