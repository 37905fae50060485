package block

import "testing"

func TestFootnoteIndexDefinitionAndReferences(t *testing.T) {
	src := strSource("see [^1] and [^2]\n\n[^1]: the first note\n")
	blocks := Parse(src, 80, 24, Geometry{})
	idx := BuildFootnoteIndex(src, blocks)

	if _, ok := idx.Definition("1"); !ok {
		t.Fatal("expected a definition for footnote 1")
	}
	if _, ok := idx.Definition("2"); ok {
		t.Fatal("did not expect a definition for footnote 2")
	}
	if !idx.HasAnyDefinition() {
		t.Fatal("expected HasAnyDefinition to be true")
	}

	refs1 := idx.References("1")
	if len(refs1) != 1 {
		t.Fatalf("expected 1 reference to footnote 1, got %d", len(refs1))
	}
	refs2 := idx.References("2")
	if len(refs2) != 1 {
		t.Fatalf("expected 1 reference to footnote 2, got %d", len(refs2))
	}
}

func TestFootnoteIndexEmptyDocument(t *testing.T) {
	src := strSource("no footnotes here\n")
	blocks := Parse(src, 80, 24, Geometry{})
	idx := BuildFootnoteIndex(src, blocks)
	if idx.HasAnyDefinition() {
		t.Fatal("expected no definitions")
	}
}
