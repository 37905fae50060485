package recognize

import "github.com/2legit2git/dawn/internal/mdstyle"

// LinkMatch is the result of CheckLink.
type LinkMatch struct {
	TextStart, TextEnd int
	URLStart, URLEnd   int
	Total              int
}

// CheckLink accepts "[text](url)" where text is balanced (bracket
// nesting inside text is not supported) with no newline, and url has
// no unescaped ')'.
func CheckLink(s Source, pos int) (LinkMatch, bool) {
	i := pos
	if i >= s.Len() || s.At(i) != '[' {
		return LinkMatch{}, false
	}
	i++
	textStart := i
	depth := 1
	for i < s.Len() && s.At(i) != '\n' {
		switch s.At(i) {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				goto foundClose
			}
		}
		i++
	}
	return LinkMatch{}, false
foundClose:
	textEnd := i
	i++
	if i >= s.Len() || s.At(i) != '(' {
		return LinkMatch{}, false
	}
	i++
	urlStart := i
	for i < s.Len() && s.At(i) != ')' && s.At(i) != '\n' {
		i++
	}
	if i >= s.Len() || s.At(i) != ')' {
		return LinkMatch{}, false
	}
	urlEnd := i
	i++
	return LinkMatch{TextStart: textStart, TextEnd: textEnd, URLStart: urlStart, URLEnd: urlEnd, Total: i - pos}, true
}

// CheckFootnoteRef accepts inline "[^id]".
func CheckFootnoteRef(s Source, pos int) (idStart, idEnd, total int, ok bool) {
	i := pos
	if i >= s.Len() || s.At(i) != '[' || i+1 >= s.Len() || s.At(i+1) != '^' {
		return 0, 0, 0, false
	}
	i += 2
	idS := i
	for i < s.Len() && s.At(i) != ']' && s.At(i) != '\n' {
		i++
	}
	if i >= s.Len() || s.At(i) != ']' || i == idS {
		return 0, 0, 0, false
	}
	idE := i
	i++
	return idS, idE, i - pos, true
}

// CheckInlineMath accepts "$ ... $" on a single line, where the content
// is non-empty, not starting/ending with a space (common '$' escape
// disambiguation), and the opening '$' is not itself escaped.
func CheckInlineMath(s Source, pos int) (contentStart, contentEnd, total int, ok bool) {
	if byteAt(s, pos) != '$' {
		return 0, 0, 0, false
	}
	if pos > 0 && s.At(pos-1) == '\\' {
		return 0, 0, 0, false
	}
	i := pos + 1
	if i >= s.Len() || s.At(i) == ' ' || s.At(i) == '$' {
		return 0, 0, 0, false
	}
	cstart := i
	for i < s.Len() && s.At(i) != '\n' {
		if s.At(i) == '\\' {
			i += 2
			continue
		}
		if s.At(i) == '$' {
			if s.At(i-1) == ' ' {
				return 0, 0, 0, false
			}
			return cstart, i, i + 1 - pos, true
		}
		i++
	}
	return 0, 0, 0, false
}

// CheckAutolink accepts "<https://...>" or "<user@host>".
func CheckAutolink(s Source, pos int) (urlStart, urlEnd, total int, isEmail, ok bool) {
	if byteAt(s, pos) != '<' {
		return 0, 0, 0, false, false
	}
	i := pos + 1
	start := i
	for i < s.Len() && s.At(i) != '>' && s.At(i) != '\n' && s.At(i) != ' ' {
		i++
	}
	if i >= s.Len() || s.At(i) != '>' {
		return 0, 0, 0, false, false
	}
	end := i
	content := sliceString(s, start, end)
	if end == start {
		return 0, 0, 0, false, false
	}
	if hasScheme(content) {
		return start, end, end + 1 - pos, false, true
	}
	if isEmailLike(content) {
		return start, end, end + 1 - pos, true, true
	}
	return 0, 0, 0, false, false
}

func hasScheme(s string) bool {
	for _, scheme := range []string{"https://", "http://", "ftp://", "mailto:"} {
		if len(s) >= len(scheme) && s[:len(scheme)] == scheme {
			return true
		}
	}
	return false
}

func isEmailLike(s string) bool {
	at := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '@' {
			at = i
			break
		}
		if s[i] == ' ' || s[i] == '/' {
			return false
		}
	}
	if at <= 0 || at == len(s)-1 {
		return false
	}
	dot := false
	for i := at + 1; i < len(s); i++ {
		if s[i] == '.' {
			dot = true
		}
	}
	return dot
}

// CheckHeadingID accepts "{#id}" with an ASCII identifier.
func CheckHeadingID(s Source, pos int) (idStart, idEnd, total int, ok bool) {
	i := pos
	if byteAt(s, i) != '{' || byteAt(s, i+1) != '#' {
		return 0, 0, 0, false
	}
	i += 2
	idS := i
	for i < s.Len() && (isAsciiAlnum(s.At(i)) || s.At(i) == '-' || s.At(i) == '_') {
		i++
	}
	if i == idS || byteAt(s, i) != '}' {
		return 0, 0, 0, false
	}
	idE := i
	i++
	return idS, idE, i - pos, true
}

// CheckDelim reports whether pos sits at one of the recognized inline
// style delimiters, returning the matched style and its
// byte length. Longer delimiters are tried first so "**" wins over "*".
func CheckDelim(s Source, pos int) (mdstyle.Style, int, bool) {
	for _, d := range mdstyle.Delims {
		n := len(d.Text)
		if pos+n > s.Len() {
			continue
		}
		match := true
		for k := 0; k < n; k++ {
			if s.At(pos+k) != d.Text[k] {
				match = false
				break
			}
		}
		if match {
			return d.Style, n, true
		}
	}
	return 0, 0, false
}

// FindClosing scans forward from pos (just past an opening delimiter) for
// the matching closing delimiter text on the SAME line (delimiter
// scanning never crosses a newline). Returns the byte offset of the
// closing delimiter's first byte, or ok=false.
func FindClosing(s Source, pos int, delim string) (int, bool) {
	i := pos
	n := len(delim)
	for i+n <= s.Len() && byteAt(s, i) != '\n' {
		if s.At(i) == '\\' {
			i += 2
			continue
		}
		match := true
		for k := 0; k < n; k++ {
			if s.At(i+k) != delim[k] {
				match = false
				break
			}
		}
		if match {
			return i, true
		}
		i++
	}
	return 0, false
}

// CheckEscape accepts a backslash followed by a CommonMark-escapable
// punctuation byte or a newline.
func CheckEscape(s Source, pos int) (escaped byte, total int, ok bool) {
	if byteAt(s, pos) != '\\' {
		return 0, 0, false
	}
	if pos+1 >= s.Len() {
		return 0, 0, false
	}
	b := s.At(pos + 1)
	if b == '\n' || isEscapablePunct(b) {
		return b, 2, true
	}
	return 0, 0, false
}

func isEscapablePunct(b byte) bool {
	switch b {
	case '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-',
		'.', '/', ':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^',
		'_', '`', '{', '|', '}', '~':
		return true
	}
	return false
}
