// Package wrap implements the word-wrap service: it turns
// a byte range plus a target display-column width into wrap points that
// respect grapheme clusters and display width, never splitting inside a
// URL autolink or math span, and falling back to a single-grapheme line
// when nothing else fits.
package wrap

// Source is the minimal read-only byte-addressable view the wrap service
// needs. *gapbuffer.Buffer satisfies this directly.
type Source interface {
	Len() int
	At(i int) byte
}

func byteAt(s Source, i int) byte {
	if i < 0 || i >= s.Len() {
		return 0
	}
	return s.At(i)
}

// extract copies bytes [start, end) into a fresh slice. Used to hand a
// contiguous window to uniseg, which needs a real []byte/string.
func extract(s Source, start, end int) []byte {
	if end > s.Len() {
		end = s.Len()
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	out := make([]byte, end-start)
	for i := start; i < end; i++ {
		out[i-start] = s.At(i)
	}
	return out
}
