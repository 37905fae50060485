package overlay

import "testing"

func TestSearchFindsCaseInsensitiveMatches(t *testing.T) {
	src := strSource("The Quick fox\njumped over the lazy dog\nQUICKLY\n")
	results, truncated := Search(src, "quick")
	if truncated {
		t.Fatal("did not expect truncation")
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(results), results)
	}
	if results[0].Snippet != "The Quick fox" {
		t.Fatalf("unexpected snippet: %q", results[0].Snippet)
	}
}

func TestSearchCapsResultsAtMax(t *testing.T) {
	var b []byte
	for i := 0; i < MaxSearchResults+20; i++ {
		b = append(b, []byte("x\n")...)
	}
	results, truncated := Search(strSource(b), "x")
	if !truncated {
		t.Fatal("expected truncation past the cap")
	}
	if len(results) != MaxSearchResults {
		t.Fatalf("expected exactly %d results, got %d", MaxSearchResults, len(results))
	}
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	results, truncated := Search(strSource("anything"), "")
	if results != nil || truncated {
		t.Fatal("expected no results for an empty query")
	}
}

func TestSearchStateAcceptJumpsToOffset(t *testing.T) {
	st := NewSearchState(strSource("abc def abc"), "abc")
	if len(st.Results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(st.Results))
	}
	st.MoveSelection(1)
	cursor, ok := st.Accept()
	if !ok || cursor != st.Results[1].Offset {
		t.Fatalf("expected accept to return second match offset, got %d ok=%v", cursor, ok)
	}
}
