// Package highlight implements the sink.Highlight contract with chroma,
// using a foreground-only formatter so the background stays whatever
// the code block cell already painted.
package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/2legit2git/dawn/internal/sink"
)

// Highlighter tokenizes code with chroma and re-emits it as 24-bit-color
// ANSI escapes, the opaque "bytes-with-opaque-escapes" contract in
// sink.Highlight.
type Highlighter struct {
	styleName string
}

// New returns a Highlighter using the named chroma style. An empty name
// selects "monokai"; a name that isn't registered gets styles.Fallback.
func New(styleName string) *Highlighter {
	if styleName == "" {
		styleName = "monokai"
	}
	return &Highlighter{styleName: styleName}
}

var _ sink.Highlight = (*Highlighter)(nil)

// Highlight implements sink.Highlight.
func (h *Highlighter) Highlight(code []byte, lang string) ([]byte, error) {
	lexer := lexerFor(lang)
	if lexer == nil {
		return code, nil
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(h.styleName)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(code))
	if err != nil {
		return code, nil
	}

	var buf strings.Builder
	if err := format(&buf, iterator, style); err != nil {
		return code, nil
	}
	return []byte(buf.String()), nil
}

func lexerFor(lang string) chroma.Lexer {
	if lang == "" {
		return nil
	}
	if l := lexers.Get(lang); l != nil {
		return l
	}
	return lexers.Match("file." + lang)
}

// format emits foreground color plus
// bold/italic/underline attributes, no background so the enclosing code
// block's own background cell shows through.
func format(w io.Writer, iterator chroma.Iterator, style *chroma.Style) error {
	for token := iterator(); token != chroma.EOF; token = iterator() {
		value := token.Value
		if value == "" {
			continue
		}

		entry := style.Get(token.Type)
		var codes []string
		if entry.Colour.IsSet() {
			codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
		}
		if entry.Bold == chroma.Yes {
			codes = append(codes, "1")
		}
		if entry.Italic == chroma.Yes {
			codes = append(codes, "3")
		}
		if entry.Underline == chroma.Yes {
			codes = append(codes, "4")
		}

		if len(codes) > 0 {
			fmt.Fprintf(w, "\x1b[%sm%s\x1b[0m", strings.Join(codes, ";"), value)
		} else {
			fmt.Fprint(w, value)
		}
	}
	return nil
}
