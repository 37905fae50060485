package recognize

import "github.com/2legit2git/dawn/internal/mdstyle"

// HeaderMatch is the result of CheckHeader / CheckHeaderContent.
type HeaderMatch struct {
	Level        int
	ContentStart int
}

// CheckHeader accepts a line-start position followed by 1..6 '#' then a
// space. It does not itself return the content start; use
// CheckHeaderContent when that's needed.
func CheckHeader(s Source, pos int) (mdstyle.LineStyle, bool) {
	m, ok := CheckHeaderContent(s, pos)
	if !ok {
		return mdstyle.NoHeader, false
	}
	return mdstyle.LineStyle(m.Level), true
}

// CheckHeaderContent additionally returns the byte offset where the
// header's text begins (after the '#'s and the mandatory space).
func CheckHeaderContent(s Source, pos int) (HeaderMatch, bool) {
	if !IsLineStart(s, pos) {
		return HeaderMatch{}, false
	}
	level := 0
	i := pos
	for i < s.Len() && s.At(i) == '#' && level < 6 {
		level++
		i++
	}
	if level == 0 || level > 6 {
		return HeaderMatch{}, false
	}
	// A 7th '#' disqualifies: this is not a valid header line.
	if i < s.Len() && s.At(i) == '#' {
		return HeaderMatch{}, false
	}
	if i >= s.Len() || s.At(i) != ' ' {
		return HeaderMatch{}, false
	}
	i++
	return HeaderMatch{Level: level, ContentStart: i}, true
}

// CheckHR accepts a line of >=3 of the same rule character ('-', '*', or
// '_'), optionally interspersed with spaces, and returns the byte length
// of the whole rule line (including its trailing newline, if any).
func CheckHR(s Source, pos int) (int, bool) {
	if !IsLineStart(s, pos) {
		return 0, false
	}
	end := lineEnd(s, pos)
	var rule byte
	count := 0
	for i := pos; i < end; i++ {
		b := s.At(i)
		if b == ' ' {
			continue
		}
		if b != '-' && b != '*' && b != '_' {
			return 0, false
		}
		if rule == 0 {
			rule = b
		} else if b != rule {
			return 0, false
		}
		count++
	}
	if count < 3 {
		return 0, false
	}
	total := end - pos
	if end < s.Len() && s.At(end) == '\n' {
		total++
	}
	return total, true
}

// CheckBlockquote accepts a line-start position with >=1 '>' (each
// optionally followed by a space), returning the nesting level and the
// byte offset where the quoted content begins.
func CheckBlockquote(s Source, pos int) (level, contentStart int, ok bool) {
	if !IsLineStart(s, pos) {
		return 0, 0, false
	}
	i := pos
	for i < s.Len() && s.At(i) == '>' {
		level++
		i++
		if i < s.Len() && s.At(i) == ' ' {
			i++
		}
	}
	if level == 0 {
		return 0, 0, false
	}
	return level, i, true
}

// CheckList accepts a line-start position with optional leading spaces,
// then a bullet ('-', '*', '+') or an ordered marker (digits followed by
// '.' or ')'), then a space.
func CheckList(s Source, pos int) (ordered bool, indent, contentStart int, ok bool) {
	if !IsLineStart(s, pos) {
		return false, 0, 0, false
	}
	i := pos
	for i < s.Len() && s.At(i) == ' ' {
		indent++
		i++
	}
	if i < s.Len() {
		b := s.At(i)
		if b == '-' || b == '*' || b == '+' {
			if i+1 < s.Len() && s.At(i+1) == ' ' {
				return false, indent, i + 2, true
			}
			return false, indent, 0, false
		}
	}
	digitsStart := i
	for i < s.Len() && isDigit(s.At(i)) {
		i++
	}
	if i > digitsStart && i < s.Len() && (s.At(i) == '.' || s.At(i) == ')') {
		if i+1 < s.Len() && s.At(i+1) == ' ' {
			return true, indent, i + 2, true
		}
	}
	return false, 0, 0, false
}

// TaskState enumerates a list item's checkbox state.
type TaskState int

const (
	TaskNone TaskState = iota
	TaskUnchecked
	TaskChecked
)

// CheckTask accepts a list item (per CheckList) whose content begins with
// "[ ]", "[x]", or "[X]".
func CheckTask(s Source, pos int) (state TaskState, indent, contentStart int, ok bool) {
	_, indent, cstart, ok := CheckList(s, pos)
	if !ok {
		return TaskNone, 0, 0, false
	}
	if cstart+3 > s.Len() {
		return TaskNone, 0, 0, false
	}
	if s.At(cstart) != '[' || s.At(cstart+2) != ']' {
		return TaskNone, 0, 0, false
	}
	box := s.At(cstart + 1)
	var st TaskState
	switch box {
	case ' ':
		st = TaskUnchecked
	case 'x', 'X':
		st = TaskChecked
	default:
		return TaskNone, 0, 0, false
	}
	after := cstart + 3
	if after < s.Len() && s.At(after) == ' ' {
		after++
	}
	return st, indent, after, true
}

// CheckFootnoteDef accepts a line-start "[^id]:" marker and returns the
// id's byte range, the content start, and the total length of the
// definition (through its terminating blank line or the next footnote
// definition, or EOF).
func CheckFootnoteDef(s Source, pos int) (idStart, idEnd, contentStart, total int, ok bool) {
	if !IsLineStart(s, pos) {
		return 0, 0, 0, 0, false
	}
	i := pos
	if i >= s.Len() || s.At(i) != '[' || i+1 >= s.Len() || s.At(i+1) != '^' {
		return 0, 0, 0, 0, false
	}
	i += 2
	idS := i
	for i < s.Len() && s.At(i) != ']' && s.At(i) != '\n' {
		i++
	}
	if i >= s.Len() || s.At(i) != ']' || i == idS {
		return 0, 0, 0, 0, false
	}
	idE := i
	i++
	if i >= s.Len() || s.At(i) != ':' {
		return 0, 0, 0, 0, false
	}
	i++
	if i < s.Len() && s.At(i) == ' ' {
		i++
	}
	cstart := i
	// Extends line by line until a blank line (consumed) or the start of
	// another footnote definition (not consumed) or EOF.
	lineS := cstart
	for lineS < s.Len() {
		if s.At(lineS) == '\n' { // blank line: consume it, stop.
			lineS++
			break
		}
		if lineS != cstart {
			if _, _, _, _, isDef := CheckFootnoteDef(s, lineS); isDef {
				break
			}
		}
		le := lineEnd(s, lineS)
		lineS = le
		if lineS < s.Len() && s.At(lineS) == '\n' {
			lineS++
		} else {
			break
		}
	}
	return idS, idE, cstart, lineS - pos, true
}

// CodeBlockMatch is the result of CheckCodeBlock.
type CodeBlockMatch struct {
	LangStart, LangEnd       int
	ContentStart, ContentEnd int
	Total                    int
}

// CheckCodeBlock accepts a fenced code block: "```lang?\n...\n```" with
// the opening fence at line-start and column 0. The block terminates at
// the first matching "```" found at line-start (not the
// longest/matching-length CommonMark rule); if no closing fence exists,
// the block runs to EOF.
func CheckCodeBlock(s Source, pos int) (CodeBlockMatch, bool) {
	if !IsLineStart(s, pos) {
		return CodeBlockMatch{}, false
	}
	if pos+3 > s.Len() || s.At(pos) != '`' || s.At(pos+1) != '`' || s.At(pos+2) != '`' {
		return CodeBlockMatch{}, false
	}
	i := pos + 3
	langStart := i
	for i < s.Len() && s.At(i) != '\n' {
		i++
	}
	langEnd := i
	if i < s.Len() {
		i++ // skip newline after fence line
	}
	contentStart := i
	for i < s.Len() {
		if s.At(i) == '`' && (i == 0 || s.At(i-1) == '\n') && i+3 <= s.Len() && s.At(i+1) == '`' && s.At(i+2) == '`' {
			contentEnd := i
			closeEnd := i + 3
			if closeEnd < s.Len() && s.At(closeEnd) == '\n' {
				closeEnd++
			}
			return CodeBlockMatch{
				LangStart: langStart, LangEnd: langEnd,
				ContentStart: contentStart, ContentEnd: contentEnd,
				Total: closeEnd - pos,
			}, true
		}
		i++
	}
	return CodeBlockMatch{
		LangStart: langStart, LangEnd: langEnd,
		ContentStart: contentStart, ContentEnd: s.Len(),
		Total: s.Len() - pos,
	}, true
}

// CheckBlockMathFull accepts "$$" alone on a line through the next "$$"
// alone on a line (or EOF if unterminated).
func CheckBlockMathFull(s Source, pos int) (contentStart, contentEnd, total int, ok bool) {
	if !IsLineStart(s, pos) {
		return 0, 0, 0, false
	}
	end := lineEnd(s, pos)
	if end-pos != 2 || s.At(pos) != '$' || s.At(pos+1) != '$' {
		return 0, 0, 0, false
	}
	i := end
	if i < s.Len() {
		i++
	}
	cstart := i
	for i < s.Len() {
		if IsLineStart(s, i) {
			le := lineEnd(s, i)
			if le-i == 2 && s.At(i) == '$' && s.At(i+1) == '$' {
				cend := i
				closeEnd := le
				if closeEnd < s.Len() && s.At(closeEnd) == '\n' {
					closeEnd++
				}
				return cstart, cend, closeEnd - pos, true
			}
		}
		i++
	}
	return cstart, s.Len(), s.Len() - pos, true
}

// IsBlockStart reports whether pos begins one of the recognized
// block-level constructs (used by the paragraph scanner to know where to
// stop consuming text).
func IsBlockStart(s Source, pos int) bool {
	if !IsLineStart(s, pos) {
		return false
	}
	if _, ok := CheckImage(s, pos); ok {
		return true
	}
	if _, ok := CheckCodeBlock(s, pos); ok {
		return true
	}
	if _, _, _, ok := CheckBlockMathFull(s, pos); ok {
		return true
	}
	if _, ok := CheckTable(s, pos); ok {
		return true
	}
	if _, ok := CheckHR(s, pos); ok {
		return true
	}
	if _, ok := CheckHeader(s, pos); ok {
		return true
	}
	if _, _, _, _, ok := CheckFootnoteDef(s, pos); ok {
		return true
	}
	if _, _, ok := CheckBlockquote(s, pos); ok {
		return true
	}
	if _, _, _, ok := CheckList(s, pos); ok {
		return true
	}
	return false
}
