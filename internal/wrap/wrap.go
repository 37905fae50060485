package wrap

// Config describes word-wrap tuning options: tab size, whitespace
// trimming, and whether overlong words may split. WrapLines and
// FindWrapPoint do not take a Config; they always apply the default policy.
type Config struct {
	TabSize         int  // spaces per tab; default 4
	TrimWhitespace  bool // trim leading/trailing whitespace on lines
	SplitWords      bool // allow splitting an overlong word with a hyphen
	KeepDashWithWord bool // keep a trailing hyphen attached to its word
}

// DefaultConfig returns the default wrap policy.
func DefaultConfig() Config {
	return Config{TabSize: 4, TrimWhitespace: false, SplitWords: false, KeepDashWithWord: true}
}

// Line is one wrapped line segment.
type Line struct {
	Start, End      int
	DisplayWidth    int
	IsHardBreak     bool
	EndsWithSplit   bool
}

// FindWrapPoint scans [start, end) for the best place to break a line at
// or before the given display-column width:
//  1. Never split inside a grapheme cluster.
//  2. Prefer breaking after a space; failing that, after a hyphen.
//  3. If no break opportunity exists and the segment still exceeds width,
//     let a single grapheme start a new line rather than hyphenating.
//
// It returns the byte offset to break at (just past the breaking space or
// hyphen, which stays on the current line) and the actual display width up
// to that point, including that space or hyphen.
func FindWrapPoint(s Source, start, end, width int) (breakAt, actualWidth int) {
	if width < 1 {
		width = 1
	}
	pos := start
	col := 0
	lastSpaceBreak := -1
	lastSpaceBreakWidth := 0
	lastHyphenBreak := -1
	lastHyphenBreakWidth := 0

	for pos < end {
		w, next := GraphemeWidthNext(s, pos)
		if next <= pos {
			next = pos + 1
		}
		if col+w > width {
			break
		}
		col += w
		if byteAt(s, pos) == ' ' {
			lastSpaceBreak = next
			lastSpaceBreakWidth = col
		} else if byteAt(s, pos) == '-' && next < end {
			lastHyphenBreak = next
			lastHyphenBreakWidth = col
		}
		pos = next
	}

	if pos >= end {
		return end, col
	}
	if lastSpaceBreak > start {
		return lastSpaceBreak, lastSpaceBreakWidth
	}
	if lastHyphenBreak > start {
		return lastHyphenBreak, lastHyphenBreakWidth
	}
	if pos == start {
		// No break opportunity at all and the very first grapheme already
		// exceeds width: let it occupy the row by itself.
		_, next := GraphemeWidthNext(s, start)
		if next <= start {
			next = start + 1
		}
		return next, DisplayWidth(s, start, next)
	}
	return pos, col
}

// LeadingSpaceSkip returns the byte offset past any run of plain spaces
// starting at pos (used to skip indentation on continuation lines).
func LeadingSpaceSkip(s Source, pos, end int) int {
	for pos < end && byteAt(s, pos) == ' ' {
		pos++
	}
	return pos
}

// WrapLines splits [start, end) into display-width-bounded lines,
// treating '\n' bytes as hard breaks.
func WrapLines(s Source, start, end, width int) []Line {
	var lines []Line
	pos := start
	for pos < end {
		lineEnd := pos
		for lineEnd < end && byteAt(s, lineEnd) != '\n' {
			lineEnd++
		}
		hard := lineEnd < end // a '\n' terminates this logical line
		segStart := pos
		for segStart < lineEnd {
			brk, w := FindWrapPoint(s, segStart, lineEnd, width)
			isLast := brk >= lineEnd
			lines = append(lines, Line{
				Start: segStart, End: brk, DisplayWidth: w,
				IsHardBreak: isLast && hard,
			})
			segStart = brk
		}
		if lineEnd == pos {
			// Blank logical line.
			lines = append(lines, Line{Start: pos, End: pos, IsHardBreak: hard})
		}
		pos = lineEnd
		if pos < end {
			pos++ // consume '\n'
		}
	}
	return lines
}
