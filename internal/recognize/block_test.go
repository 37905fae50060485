package recognize

import "testing"

func TestCheckHeaderContent(t *testing.T) {
	s := strSource("## Title\npara")
	m, ok := CheckHeaderContent(s, 0)
	if !ok || m.Level != 2 || m.ContentStart != 3 {
		t.Fatalf("got %+v ok=%v", m, ok)
	}
	if _, ok := CheckHeaderContent(s, 9); ok {
		t.Fatal("should not match mid-document non-line-start")
	}
}

func TestCheckHeaderRejectsSevenHashes(t *testing.T) {
	s := strSource("####### nope\n")
	if _, ok := CheckHeaderContent(s, 0); ok {
		t.Fatal("7 hashes should not be a header")
	}
}

func TestCheckHR(t *testing.T) {
	for _, tc := range []struct {
		in string
		ok bool
	}{
		{"---\n", true},
		{"***\n", true},
		{"___\n", true},
		{"-- \n", false},
		{"- - -\n", true},
		{"----text\n", false},
	} {
		_, ok := CheckHR(strSource(tc.in), 0)
		if ok != tc.ok {
			t.Errorf("CheckHR(%q) ok=%v, want %v", tc.in, ok, tc.ok)
		}
	}
}

func TestCheckBlockquote(t *testing.T) {
	s := strSource(">> nested\n")
	level, cstart, ok := CheckBlockquote(s, 0)
	if !ok || level != 2 || cstart != 3 {
		t.Fatalf("got level=%d cstart=%d ok=%v", level, cstart, ok)
	}
}

func TestCheckListAndTask(t *testing.T) {
	ordered, indent, cstart, ok := CheckList(strSource("1. item\n"), 0)
	if !ok || !ordered || indent != 0 || cstart != 3 {
		t.Fatalf("ordered list: got %v %d %d %v", ordered, indent, cstart, ok)
	}
	ordered, _, cstart, ok = CheckList(strSource("- item\n"), 0)
	if !ok || ordered || cstart != 2 {
		t.Fatalf("bullet list: got %v %d %v", ordered, cstart, ok)
	}
	state, _, cstart, ok := CheckTask(strSource("- [x] done\n"), 0)
	if !ok || state != TaskChecked || cstart != 6 {
		t.Fatalf("task: got state=%d cstart=%d ok=%v", state, cstart, ok)
	}
	state, _, _, ok = CheckTask(strSource("- [ ] todo\n"), 0)
	if !ok || state != TaskUnchecked {
		t.Fatalf("unchecked task: got state=%d ok=%v", state, ok)
	}
}

func TestCheckFootnoteDef(t *testing.T) {
	s := strSource("[^1]: the note\nmore text\n\npara")
	idS, idE, cstart, total, ok := CheckFootnoteDef(s, 0)
	if !ok {
		t.Fatal("expected match")
	}
	if string(s[idS:idE]) != "1" {
		t.Errorf("id = %q", s[idS:idE])
	}
	if string(s[cstart:cstart+8]) != "the note" {
		t.Errorf("content = %q", s[cstart:])
	}
	if string(s[:total]) != "[^1]: the note\nmore text\n\n" {
		t.Errorf("total range = %q", s[:total])
	}
}

func TestCheckCodeBlockFirstMatchFence(t *testing.T) {
	s := strSource("```go\nfmt.Println(1)\n```\nafter")
	m, ok := CheckCodeBlock(s, 0)
	if !ok {
		t.Fatal("expected match")
	}
	if string(s[m.LangStart:m.LangEnd]) != "go" {
		t.Errorf("lang = %q", s[m.LangStart:m.LangEnd])
	}
	if string(s[m.ContentStart:m.ContentEnd]) != "fmt.Println(1)\n" {
		t.Errorf("content = %q", s[m.ContentStart:m.ContentEnd])
	}
	if string(s[:m.Total]) != "```go\nfmt.Println(1)\n```\n" {
		t.Errorf("total = %q", s[:m.Total])
	}
}

func TestCheckCodeBlockUnterminatedRunsToEOF(t *testing.T) {
	s := strSource("```\nno close")
	m, ok := CheckCodeBlock(s, 0)
	if !ok || m.Total != len(s) {
		t.Fatalf("got total=%d ok=%v, want %d", m.Total, ok, len(s))
	}
}

func TestCheckBlockMathFull(t *testing.T) {
	s := strSource("$$\nx^2\n$$\nafter")
	cstart, cend, total, ok := CheckBlockMathFull(s, 0)
	if !ok {
		t.Fatal("expected match")
	}
	if string(s[cstart:cend]) != "x^2\n" {
		t.Errorf("content = %q", s[cstart:cend])
	}
	if string(s[:total]) != "$$\nx^2\n$$\n" {
		t.Errorf("total = %q", s[:total])
	}
}

func TestIsBlockStart(t *testing.T) {
	cases := map[string]bool{
		"# h\n":      true,
		"- li\n":     true,
		"> q\n":      true,
		"plain text": false,
		"```\n":      true,
		"---\n":      true,
	}
	for in, want := range cases {
		if got := IsBlockStart(strSource(in), 0); got != want {
			t.Errorf("IsBlockStart(%q) = %v, want %v", in, got, want)
		}
	}
}
