// Package clipboardsink implements the clipboard collaborator consumed
// by the core, backed by the system clipboard via atotto/clipboard.
package clipboardsink

import "github.com/atotto/clipboard"

// Clipboard wraps the system clipboard.
type Clipboard struct{}

// New returns a system-backed Clipboard.
func New() *Clipboard { return &Clipboard{} }

// Copy writes b to the system clipboard. Failures (e.g. no clipboard
// utility available in a headless environment) are swallowed: clipboard
// access is a convenience, not something the editor can recover from
// failing.
func (c *Clipboard) Copy(b []byte) {
	_ = clipboard.WriteAll(string(b))
}

// Paste reads the system clipboard, returning nil on failure.
func (c *Clipboard) Paste() []byte {
	s, err := clipboard.ReadAll()
	if err != nil {
		return nil
	}
	return []byte(s)
}
