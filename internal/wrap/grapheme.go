package wrap

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// GraphemeWidthNext returns the display width of the grapheme cluster
// starting at pos and the byte position immediately after it. Zero-width
// joiners, variation selectors, and combining marks are folded into the
// preceding cluster and contribute 0 additional width; wide codepoints
// (CJK, emoji) contribute 2; everything else contributes their
// go-runewidth width (usually 0 or 1).
func GraphemeWidthNext(s Source, pos int) (width, next int) {
	if pos >= s.Len() {
		return 0, pos
	}
	// uniseg needs a contiguous window; a grapheme cluster is bounded in
	// practice, so a bounded lookahead window is sufficient and keeps this
	// an O(1)-ish operation regardless of document size.
	const lookahead = 64
	end := pos + lookahead
	if end > s.Len() {
		end = s.Len()
	}
	window := extract(s, pos, end)

	cluster, rest, w, _ := uniseg.FirstGraphemeCluster(window, -1)
	if len(cluster) == 0 {
		return 0, pos + 1
	}
	_ = rest
	return w, pos + len(cluster)
}

// DisplayWidth sums the display width of every grapheme cluster in
// [start, end).
func DisplayWidth(s Source, start, end int) int {
	total := 0
	for i := start; i < end; {
		w, next := GraphemeWidthNext(s, i)
		total += w
		if next <= i {
			next = i + 1
		}
		i = next
	}
	return total
}

// GraphemeIsWordy reports whether the grapheme cluster's first codepoint
// is a letter or digit, the "wordy" helper used by smart-edit
// word-boundary checks rather than the wrap algorithm itself.
func GraphemeIsWordy(s Source, pos int) bool {
	if pos >= s.Len() {
		return false
	}
	b := s.At(pos)
	if b < 0x80 {
		return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
	}
	// Non-ASCII: treat as wordy unless it decodes as punctuation/space;
	// a coarse approximation is sufficient for word-boundary heuristics.
	return true
}

// IsBreakChar reports whether b is a word-break character: space, tab, or
// hyphen: the preferred break points, after spaces before a hyphen.
func IsBreakChar(b byte) bool {
	return b == ' ' || b == '\t' || b == '-'
}

// PlainStringWidth measures the display width of an already-materialized
// Go string (as opposed to a gap-buffer range): used by the renderer when
// measuring output handed back by an external collaborator (highlighter
// escape-interleaved code, a rasterized math sketch's cell text) rather
// than document bytes.
func PlainStringWidth(s string) int {
	return runewidth.StringWidth(s)
}
