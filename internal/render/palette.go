package render

import "github.com/2legit2git/dawn/internal/sink"

// Palette supplies the colors the renderer applies; a host assembles one
// from its theme configuration. The display sink only carries capability
// queries, not color policy — that lives here, centralized rather than
// inlined at every call site.
type Palette struct {
	FG          sink.RGB
	BG          sink.RGB
	Dim         sink.RGB
	Accent      sink.RGB
	CodeBG      sink.RGB
	SelectionBG sink.RGB
	LinkColor   sink.RGB
	HeaderColor sink.RGB
	HRColor     sink.RGB
	MarkBG      sink.RGB
}

// Selection describes the active text selection, if any.
type Selection struct {
	Active     bool
	Start, End int
}

func (s Selection) intersects(start, end int) bool {
	if !s.Active {
		return false
	}
	lo, hi := s.Start, s.End
	if lo > hi {
		lo, hi = hi, lo
	}
	return start < hi && end > lo
}
