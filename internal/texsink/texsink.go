// Package texsink implements sink.Math with a literal fallback renderer:
// it renders the raw LaTeX source as a one-row sketch, which
// internal/render then draws in the document's accent color rather
// than attempting to typeset it.
package texsink

import (
	"unicode/utf8"

	"github.com/2legit2git/dawn/internal/sink"
)

// Fallback is the stand-in sink.Math implementation.
type Fallback struct{}

// New returns a Fallback math sink.
func New() *Fallback { return &Fallback{} }

var _ sink.Math = (*Fallback)(nil)

// RenderInline renders a $...$ expression as its literal source text.
func (f *Fallback) RenderInline(latex string) (*sink.Sketch, error) {
	return literalSketch(latex), nil
}

// RenderBlock renders a $$...$$ expression as its literal source text.
func (f *Fallback) RenderBlock(latex string) (*sink.Sketch, error) {
	return literalSketch(latex), nil
}

// Free releases resources held by a sketch. The fallback sketch holds no
// external resources, so this is a no-op.
func (f *Fallback) Free(s *sink.Sketch) {}

func literalSketch(latex string) *sink.Sketch {
	cells := make([]sink.SketchCell, 0, len(latex))
	for _, r := range latex {
		buf := make([]byte, utf8.RuneLen(r))
		utf8.EncodeRune(buf, r)
		cells = append(cells, sink.SketchCell{Data: buf})
	}
	return &sink.Sketch{
		Width:  len(cells),
		Height: 1,
		Rows:   [][]sink.SketchCell{cells},
	}
}
