// Package persist loads and saves documents from disk on the core's
// behalf: it normalizes line endings, strips a leading YAML frontmatter
// block before the bytes reach the editor, and reattaches that
// frontmatter verbatim on save.
package persist

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a loaded file split into its frontmatter (raw, including
// the delimiter lines, or nil if absent) and its body — the bytes the
// gap buffer actually holds.
type Document struct {
	Path        string
	Frontmatter []byte // nil if the file had none
	Body        []byte
}

// frontmatterDelim is the line that opens and closes a YAML frontmatter
// block at the top of a document.
const frontmatterDelim = "---"

// Load reads path, normalizes CRLF/CR to LF, and strips a leading
// frontmatter block.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("persist: read %s: %w", path, err)
	}
	body := Normalize(raw)
	front, rest := splitFrontmatter(body)
	return &Document{Path: path, Frontmatter: front, Body: rest}, nil
}

// Normalize converts CRLF and lone CR line endings to LF, idempotently:
// running it twice on its own output yields the same bytes.
func Normalize(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	b = bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
	return b
}

// splitFrontmatter extracts a leading "---\n...\n---\n" block, returning
// the block (delimiters included) and the remaining body. Returns a nil
// frontmatter when the document doesn't open with one.
func splitFrontmatter(body []byte) (frontmatter, rest []byte) {
	if !bytes.HasPrefix(body, []byte(frontmatterDelim+"\n")) {
		return nil, body
	}
	afterOpen := body[len(frontmatterDelim)+1:]
	closeIdx := bytes.Index(afterOpen, []byte("\n"+frontmatterDelim+"\n"))
	if closeIdx < 0 {
		// also allow the delimiter as the very last line with no trailing \n
		if bytes.HasSuffix(afterOpen, []byte("\n"+frontmatterDelim)) {
			end := len(afterOpen) - len(frontmatterDelim)
			return body[:len(frontmatterDelim)+1+end], nil
		}
		return nil, body
	}
	end := len(frontmatterDelim) + 1 + closeIdx + len(frontmatterDelim) + 2
	return body[:end], body[end:]
}

// ValidateFrontmatter reports whether raw parses as well-formed YAML
// (used before a save to avoid silently persisting a corrupted header).
func ValidateFrontmatter(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	inner := bytes.TrimSuffix(bytes.TrimPrefix(raw, []byte(frontmatterDelim+"\n")), []byte(frontmatterDelim+"\n"))
	var probe map[string]any
	if err := yaml.Unmarshal(inner, &probe); err != nil {
		return fmt.Errorf("persist: invalid frontmatter: %w", err)
	}
	return nil
}

// Save writes doc.Frontmatter (if any) followed by doc.Body back to
// doc.Path.
func Save(doc *Document) error {
	var out bytes.Buffer
	out.Write(doc.Frontmatter)
	out.Write(doc.Body)
	if err := os.WriteFile(doc.Path, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("persist: write %s: %w", doc.Path, err)
	}
	return nil
}
