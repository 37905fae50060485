package recognize

import (
	"testing"

	"github.com/2legit2git/dawn/internal/mdstyle"
)

func TestCheckLink(t *testing.T) {
	s := strSource("[text](http://example.com) after")
	m, ok := CheckLink(s, 0)
	if !ok {
		t.Fatal("expected match")
	}
	if string(s[m.TextStart:m.TextEnd]) != "text" {
		t.Errorf("text = %q", s[m.TextStart:m.TextEnd])
	}
	if string(s[m.URLStart:m.URLEnd]) != "http://example.com" {
		t.Errorf("url = %q", s[m.URLStart:m.URLEnd])
	}
	if m.Total != len("[text](http://example.com)") {
		t.Errorf("total = %d", m.Total)
	}
}

func TestCheckLinkRejectsNewlineInText(t *testing.T) {
	s := strSource("[te\nxt](url)")
	if _, ok := CheckLink(s, 0); ok {
		t.Fatal("should reject newline inside link text")
	}
}

func TestCheckFootnoteRef(t *testing.T) {
	s := strSource("[^note] tail")
	idS, idE, total, ok := CheckFootnoteRef(s, 0)
	if !ok || string(s[idS:idE]) != "note" || total != 7 {
		t.Fatalf("got %d %d %d %v", idS, idE, total, ok)
	}
}

func TestLinkBeatsFootnoteRefAtSamePosition(t *testing.T) {
	// [^id](url) is recognized as a link, not footnote-ref+paren, because
	// link is tried first in the recognition order. This test documents
	// that CheckLink matches "[^id](url)" as a link whose text is "^id".
	s := strSource("[^id](url)")
	m, ok := CheckLink(s, 0)
	if !ok {
		t.Fatal("expected CheckLink to match")
	}
	if string(s[m.TextStart:m.TextEnd]) != "^id" {
		t.Errorf("link text = %q", s[m.TextStart:m.TextEnd])
	}
}

func TestCheckInlineMath(t *testing.T) {
	s := strSource("before $x^2+1$ after")
	cstart, cend, total, ok := CheckInlineMath(s, 7)
	if !ok {
		t.Fatal("expected match")
	}
	if string(s[cstart:cend]) != "x^2+1" {
		t.Errorf("content = %q", s[cstart:cend])
	}
	if string(s[7:7+total]) != "$x^2+1$" {
		t.Errorf("total = %q", s[7:7+total])
	}
}

func TestCheckInlineMathRejectsUnclosed(t *testing.T) {
	s := strSource("$unclosed and a newline\nafter")
	if _, _, _, ok := CheckInlineMath(s, 0); ok {
		t.Fatal("should not match across newline")
	}
}

func TestCheckAutolink(t *testing.T) {
	s := strSource("<https://example.com> x")
	us, ue, total, isEmail, ok := CheckAutolink(s, 0)
	if !ok || isEmail {
		t.Fatalf("got ok=%v isEmail=%v", ok, isEmail)
	}
	if string(s[us:ue]) != "https://example.com" || total != len("<https://example.com>") {
		t.Errorf("url=%q total=%d", s[us:ue], total)
	}

	s2 := strSource("<user@example.com>")
	_, _, _, isEmail2, ok2 := CheckAutolink(s2, 0)
	if !ok2 || !isEmail2 {
		t.Fatalf("email autolink: ok=%v isEmail=%v", ok2, isEmail2)
	}
}

func TestCheckEmoji(t *testing.T) {
	s := strSource(":fire: rest")
	glyph, _, _, total, ok := CheckEmoji(s, 0)
	if !ok || glyph != "\U0001F525" || total != 6 {
		t.Fatalf("got glyph=%q total=%d ok=%v", glyph, total, ok)
	}
	if _, _, _, _, ok := CheckEmoji(strSource(":notashortcode: x"), 0); ok {
		t.Fatal("unknown shortcode should not match")
	}
}

func TestCheckHeadingID(t *testing.T) {
	s := strSource("{#my-id} rest")
	idS, idE, total, ok := CheckHeadingID(s, 0)
	if !ok || string(s[idS:idE]) != "my-id" || total != 8 {
		t.Fatalf("got %d %d %d %v", idS, idE, total, ok)
	}
}

func TestCheckEntityNamedAndNumeric(t *testing.T) {
	dec, total, ok := CheckEntity(strSource("&amp; x"), 0)
	if !ok || dec != "&" || total != 5 {
		t.Fatalf("named: got %q %d %v", dec, total, ok)
	}
	dec, total, ok = CheckEntity(strSource("&#65; x"), 0)
	if !ok || dec != "A" || total != 5 {
		t.Fatalf("decimal: got %q %d %v", dec, total, ok)
	}
	dec, total, ok = CheckEntity(strSource("&#x41; x"), 0)
	if !ok || dec != "A" || total != 6 {
		t.Fatalf("hex: got %q %d %v", dec, total, ok)
	}
}

func TestCheckDelimAndFindClosing(t *testing.T) {
	style, n, ok := CheckDelim(strSource("**bold**"), 0)
	if !ok || style != mdstyle.Bold || n != 2 {
		t.Fatalf("got style=%d n=%d ok=%v", style, n, ok)
	}
	closePos, ok := FindClosing(strSource("**bold** tail"), 2, "**")
	if !ok || closePos != 6 {
		t.Fatalf("got closePos=%d ok=%v", closePos, ok)
	}
}

func TestCheckEscape(t *testing.T) {
	b, total, ok := CheckEscape(strSource(`\*literal`), 0)
	if !ok || b != '*' || total != 2 {
		t.Fatalf("got b=%q total=%d ok=%v", b, total, ok)
	}
	if _, _, ok := CheckEscape(strSource(`\Qno`), 0); ok {
		t.Fatal("non-punctuation escape should not match")
	}
}
