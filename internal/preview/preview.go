// Package preview implements the read-only preview_document surface
// with glamour, keeping a width-keyed renderer cache to avoid rebuilding
// a glamour.TermRenderer on every call.
package preview

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Render produces a read-only, syntax-highlighted rendering of content
// at the given terminal width. On error it falls back to the raw
// content unchanged, matching the core's silent-degradation policy.
func Render(content string, width int) string {
	out, err := RenderWithError(content, width)
	if err != nil {
		return content
	}
	return out
}

// RenderWithError is Render's variant that surfaces the glamour error
// instead of swallowing it.
func RenderWithError(content string, width int) (string, error) {
	if content == "" {
		return "", nil
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return "", fmt.Errorf("preview: build renderer: %w", err)
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("preview: render: %w", err)
	}
	return strings.TrimSpace(rendered), nil
}
