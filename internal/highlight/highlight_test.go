package highlight

import (
	"bytes"
	"testing"
)

func TestHighlightReturnsOriginalForUnknownLang(t *testing.T) {
	h := New("monokai")
	code := []byte("some plain text")
	out, err := h.Highlight(code, "not-a-real-language-xyz")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, code) {
		t.Fatalf("expected passthrough, got %q", out)
	}
}

func TestHighlightEmptyLangPassesThrough(t *testing.T) {
	h := New("")
	code := []byte("x := 1")
	out, err := h.Highlight(code, "")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, code) {
		t.Fatalf("expected passthrough for empty lang, got %q", out)
	}
}

func TestHighlightGoEmitsEscapes(t *testing.T) {
	h := New("monokai")
	out, err := h.Highlight([]byte("package main\n\nfunc main() {}\n"), "go")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte("\x1b[")) {
		t.Fatalf("expected ANSI escapes in highlighted output, got %q", out)
	}
	if !bytes.Contains(out, []byte("package")) {
		t.Fatalf("expected token text preserved, got %q", out)
	}
}
