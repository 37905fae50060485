package block

import "github.com/2legit2git/dawn/internal/sink"

// Geometry is the subset of external collaborators the block parser
// needs to size blocks into virtual rows: image pixel
// measurement and math sketch rasterization. Display-sink text-sizing
// capability gates header scaling.
type Geometry struct {
	Image sink.Image
	Math  sink.Math
	// TextSizing reports whether the display sink can render scaled
	// glyphs.
	TextSizing bool
}
