package recognize

import "testing"

func TestCheckTable(t *testing.T) {
	s := strSource("| a | b |\n|---|---|\n| 1 | 22 |\n")
	m, ok := CheckTable(s, 0)
	if !ok {
		t.Fatal("expected match")
	}
	if m.ColCount != 2 {
		t.Errorf("colCount = %d, want 2", m.ColCount)
	}
	if m.RowCount != 3 {
		t.Errorf("rowCount = %d, want 3", m.RowCount)
	}
	if m.Total != len(s) {
		t.Errorf("total = %d, want %d", m.Total, len(s))
	}
}

func TestCheckTableAlignments(t *testing.T) {
	s := strSource("| a | b | c |\n|:--|--:|:-:|\n")
	aligns, ok := CheckTableDelimiter(s, 14)
	if !ok {
		t.Fatal("expected delimiter match")
	}
	want := []Align{AlignLeft, AlignRight, AlignCenter}
	for i, a := range want {
		if aligns[i] != a {
			t.Errorf("col %d align = %d, want %d", i, aligns[i], a)
		}
	}
}

func TestCheckTableRequiresDelimiterRow(t *testing.T) {
	s := strSource("| a | b |\nnot a delimiter\n")
	if _, ok := CheckTable(s, 0); ok {
		t.Fatal("should not match without a valid delimiter row")
	}
}

func TestParseTableRowTrimsOuterPipes(t *testing.T) {
	cells := ParseTableRow(strSource("| a | bb |"), 0, 10)
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
}
