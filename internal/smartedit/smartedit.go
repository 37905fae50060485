// Package smartedit implements structural edit behaviors: auto-
// continuation of lists/quotes on Enter, paired-delimiter smart
// backspace, auto-newline after completed constructs, auto footnote
// definition insertion, and the delete-element command.
package smartedit

import (
	"github.com/2legit2git/dawn/internal/gapbuffer"
	"github.com/2legit2git/dawn/internal/recognize"
)

// BackScanWindow bounds how far smart edits look backward from the
// cursor to locate an enclosing element: a tunable constant, not a
// magic number.
const BackScanWindow = 100

func lineStart(b *gapbuffer.Buffer, pos int) int {
	for pos > 0 && b.At(pos-1) != '\n' {
		pos--
	}
	return pos
}

func lineEnd(b *gapbuffer.Buffer, pos int) int {
	l := b.Len()
	for pos < l && b.At(pos) != '\n' {
		pos++
	}
	return pos
}

// AutoContinueEnter implements auto-continuation on Enter: called
// when the user inserts a newline at cursor (cursor is
// the position BEFORE the newline is inserted). It performs the full
// mutation (including inserting the newline and any continuation
// prefix, or converting an empty item to a blank line) and returns the
// new cursor position. ok reports whether a list/task/blockquote
// continuation rule applied; if false, the caller should perform a
// plain newline insertion itself.
func AutoContinueEnter(b *gapbuffer.Buffer, cursor int) (newCursor int, ok bool) {
	// If cursor already sits right after the line's own trailing newline,
	// the relevant line to inspect is the one that newline terminates, not
	// an empty line following it; step back over it for recognition.
	stepBack := cursor > 0 && b.At(cursor-1) == '\n'
	refPos := cursor
	if stepBack {
		refPos = cursor - 1
	}
	ls := lineStart(b, refPos)
	le := lineEnd(b, ls)

	insertContinuation := func(prefix []byte) (int, bool) {
		if stepBack {
			// The existing trailing newline already separates the new
			// line; don't double it.
			b.InsertStr(cursor, prefix)
			return cursor + len(prefix), true
		}
		full := append([]byte("\n"), prefix...)
		b.InsertStr(cursor, full)
		return cursor + len(full), true
	}
	endEmptyItem := func() (int, bool) {
		b.Delete(ls, le-ls)
		b.InsertStr(ls, []byte("\n"))
		return ls + 1, true
	}

	if _, indent, cstart, isTask := recognize.CheckTask(b, ls); isTask {
		if cstart >= le {
			return endEmptyItem()
		}
		return insertContinuation(taskPrefix(indent))
	}

	if ordered, indent, cstart, isList := recognize.CheckList(b, ls); isList {
		if cstart >= le {
			return endEmptyItem()
		}
		var prefix []byte
		if ordered {
			n := itemNumber(b, ls) + 1
			prefix = append(spaces(indent), []byte(itoa(n)+". ")...)
		} else {
			marker := b.At(ls + indent)
			prefix = append(spaces(indent), marker, ' ')
		}
		return insertContinuation(prefix)
	}

	if level, cstart, isQuote := recognize.CheckBlockquote(b, ls); isQuote {
		if cstart >= le {
			return endEmptyItem()
		}
		return insertContinuation(quotePrefix(level))
	}

	return cursor, false
}

func taskPrefix(indent int) []byte {
	return append(spaces(indent), []byte("- [ ] ")...)
}

func quotePrefix(level int) []byte {
	out := make([]byte, 0, level*2)
	for i := 0; i < level; i++ {
		out = append(out, '>', ' ')
	}
	return out
}

func spaces(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return out
}

// itemNumber reads the integer marker of an ordered list item starting
// at the line's first non-space byte.
func itemNumber(b *gapbuffer.Buffer, ls int) int {
	i := ls
	l := b.Len()
	for i < l && b.At(i) == ' ' {
		i++
	}
	n := 0
	for i < l && b.At(i) >= '0' && b.At(i) <= '9' {
		n = n*10 + int(b.At(i)-'0')
		i++
	}
	return n
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}

// SmartBackspace implements paired-delimiter smart delete: if the byte
// left of cursor closes a recognized construct, the whole
// construct is deleted atomically and the new cursor is returned with
// deleted=true. Otherwise deleted=false and the caller should fall back
// to a plain single-grapheme backspace.
func SmartBackspace(b *gapbuffer.Buffer, cursor int) (newCursor int, deleted bool) {
	if cursor <= 0 {
		return cursor, false
	}

	if start, ok := matchAutotypographySuffix(b, cursor); ok {
		b.Delete(start, cursor-start)
		return start, true
	}

	if start, ok := matchClosingConstruct(b, cursor); ok {
		b.Delete(start, cursor-start)
		return start, true
	}

	return cursor, false
}

// matchAutotypographySuffix recognizes the autotypography artifacts
// "(c)", "(r)", "(tm)" immediately before cursor.
func matchAutotypographySuffix(b *gapbuffer.Buffer, cursor int) (start int, ok bool) {
	for _, suf := range []string{"(c)", "(r)", "(tm)", "(C)", "(R)", "(TM)"} {
		n := len(suf)
		if cursor-n < 0 {
			continue
		}
		if matchesAt(b, cursor-n, suf) {
			return cursor - n, true
		}
	}
	return 0, false
}

func matchesAt(b *gapbuffer.Buffer, pos int, s string) bool {
	for i := 0; i < len(s); i++ {
		if b.At(pos+i) != s[i] {
			return false
		}
	}
	return true
}

// matchClosingConstruct scans backward up to BackScanWindow bytes for a
// construct whose closing byte sits immediately left of cursor.
func matchClosingConstruct(b *gapbuffer.Buffer, cursor int) (start int, ok bool) {
	last := b.At(cursor - 1)

	windowStart := cursor - BackScanWindow
	if windowStart < 0 {
		windowStart = 0
	}
	// Constructs whose closing byte is ')': link, image.
	if last == ')' {
		for p := windowStart; p < cursor; p++ {
			if b.At(p) == '!' {
				if m, ok := recognize.CheckImage(b, p); ok && p+m.Total == cursor {
					return p, true
				}
			}
			if b.At(p) == '[' {
				if m, ok := recognize.CheckLink(b, p); ok && p+m.Total == cursor {
					return p, true
				}
			}
		}
		return 0, false
	}
	// Footnote reference: closing ']'.
	if last == ']' {
		for p := windowStart; p < cursor; p++ {
			if b.At(p) == '[' {
				if _, _, total, ok := recognize.CheckFootnoteRef(b, p); ok && p+total == cursor {
					return p, true
				}
			}
		}
		return 0, false
	}
	// Inline math: closing '$'.
	if last == '$' {
		for p := windowStart; p < cursor; p++ {
			if b.At(p) == '$' {
				if _, _, total, ok := recognize.CheckInlineMath(b, p); ok && p+total == cursor {
					return p, true
				}
			}
		}
		return 0, false
	}
	// Inline style delimiter tail: '*', '_', '`', '~', '='.
	switch last {
	case '*', '_', '`', '~', '=':
		for p := windowStart; p < cursor; p++ {
			style, dlen, ok := recognize.CheckDelim(b, p)
			if !ok || p+dlen > cursor {
				continue
			}
			_ = style
			if close, hasClose := recognize.FindClosing(b, p+dlen, delimTextOf(b, p, dlen)); hasClose && close == cursor-dlen {
				return p, true
			}
		}
	}
	return 0, false
}

func delimTextOf(b *gapbuffer.Buffer, pos, n int) string {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = b.At(pos + i)
	}
	return string(out)
}

// AutoNewlineAfter implements auto-newline after completed blocks:
// called immediately after a byte has been inserted at cursor-1..cursor
// (i.e. cursor is just past the newly typed byte). If that byte
// completes a link/image, a closing code fence, block math, or an HR —
// and cursor sits exactly at the end of that construct — it inserts a
// trailing newline and returns the advanced cursor.
func AutoNewlineAfter(b *gapbuffer.Buffer, cursor int) (newCursor int, inserted bool) {
	if cursor <= 0 {
		return cursor, false
	}
	ls := lineStart(b, cursor-1)

	switch b.At(cursor - 1) {
	case ')':
		for p := ls; p < cursor; p++ {
			if b.At(p) == '!' {
				if m, ok := recognize.CheckImage(b, p); ok && p+m.Total == cursor {
					return insertNewline(b, cursor), true
				}
			}
			if b.At(p) == '[' {
				if m, ok := recognize.CheckLink(b, p); ok && p+m.Total == cursor {
					return insertNewline(b, cursor), true
				}
			}
		}
	case '`':
		if m, ok := recognize.CheckCodeBlock(b, ls); ok && ls+m.Total == cursor {
			return insertNewline(b, cursor), true
		}
	case '$':
		if cstart, _, total, ok := recognize.CheckBlockMathFull(b, ls); ok && ls+total == cursor {
			_ = cstart
			return insertNewline(b, cursor), true
		}
	case '-':
		if n, ok := recognize.CheckHR(b, ls); ok && ls+n == cursor {
			return insertNewline(b, cursor), true
		}
	}
	return cursor, false
}

func insertNewline(b *gapbuffer.Buffer, at int) int {
	b.InsertStr(at, []byte("\n"))
	return at + 1
}

// AutoFootnoteDefinition runs immediately after the closing ']' of a
// "[^id]" reference is typed. hasDefinition reports whether a definition
// for id already exists; anyDefinitionExists reports whether the
// document has any footnote definition at all (decides the "---"
// separator). Returns whether an insertion happened.
func AutoFootnoteDefinition(b *gapbuffer.Buffer, cursor int, id string, hasDefinition, anyDefinitionExists bool) bool {
	if hasDefinition {
		return false
	}
	var suffix []byte
	if !anyDefinitionExists {
		suffix = append(suffix, []byte("\n---\n")...)
	} else {
		suffix = append(suffix, '\n')
	}
	suffix = append(suffix, []byte("[^"+id+"]: ")...)
	b.InsertStr(b.Len(), suffix)
	return true
}

// DeleteElement deletes the element under the cursor (image, link,
// footnote ref, or inline math) if cursor lies within one; otherwise
// deletes one grapheme forward at cursor via the provided fallback.
// Returns the new cursor and whether an element (rather than the
// fallback) was deleted.
func DeleteElement(b *gapbuffer.Buffer, cursor int) (newCursor int, deletedElement bool) {
	windowStart := cursor - BackScanWindow
	if windowStart < 0 {
		windowStart = 0
	}
	windowEnd := cursor + BackScanWindow
	if l := b.Len(); windowEnd > l {
		windowEnd = l
	}

	for p := windowStart; p < windowEnd; p++ {
		if b.At(p) == '!' {
			if m, ok := recognize.CheckImage(b, p); ok && p <= cursor && cursor < p+m.Total {
				b.Delete(p, m.Total)
				return p, true
			}
		}
		if b.At(p) == '[' {
			if m, ok := recognize.CheckLink(b, p); ok && p <= cursor && cursor < p+m.Total {
				b.Delete(p, m.Total)
				return p, true
			}
			if _, _, total, ok := recognize.CheckFootnoteRef(b, p); ok && p <= cursor && cursor < p+total {
				b.Delete(p, total)
				return p, true
			}
		}
		if b.At(p) == '$' {
			if _, _, total, ok := recognize.CheckInlineMath(b, p); ok && p <= cursor && cursor < p+total {
				b.Delete(p, total)
				return p, true
			}
		}
	}
	return cursor, false
}
