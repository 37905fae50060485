// Package sink defines the abstract collaborator contracts the core
// consumes: a display sink for styled cell output,
// an image sink, a math (TeX) sink, and a syntax highlighter sink. The
// core never talks to a terminal, an image protocol, or a LaTeX
// rasterizer directly — it only calls these interfaces, which a host
// (cmd/dawn's termsink/imagesink/texsink/highlight packages) implements.
package sink

// RGB is a 24-bit color triple.
type RGB struct{ R, G, B uint8 }

// UnderlineStyle enumerates the decorative underline styles a capable
// terminal can render.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Display is the cell-emission contract the renderer draws against.
type Display interface {
	MoveTo(row, col int)

	SetFG(c RGB)
	SetBG(c RGB)
	SetBold(on bool)
	SetItalic(on bool)
	SetDim(on bool)
	SetStrikethrough(on bool)
	ResetAttrs()

	SetUnderline(style UnderlineStyle)
	SetUnderlineColor(c RGB)
	ClearUnderline()

	WriteStr(b []byte)
	WriteChar(b byte)
	WriteScaled(b []byte, scale int)
	WriteScaledFrac(b []byte, scale, num, denom int)

	SyncBegin()
	SyncEnd()
	Flush()

	// Capability queries.
	TrueColor() bool
	StyledUnderline() bool
	TextSizing() bool
	ImageProtocol() bool
}

// ImageSize is a decoded image's pixel dimensions.
type ImageSize struct {
	W, H int
}

// Image is the image-placement contract.
type Image interface {
	DisplayAt(path string, row, col, maxCols, maxRows int) error
	DisplayCropped(path string, row, col, maxCols, cropTop, visible int) error
	FrameStart()
	FrameEnd()
	GetSize(path string) (ImageSize, error)
	CalcRows(w, h, cols, rowsSpec int) int
	MaskRegion(col, row, cols, rows int, bg RGB)
	ResolvePath(raw, baseDir string) string
}

// SketchCell is one cell of a rasterized math sketch.
type SketchCell struct {
	Data []byte
}

// Sketch is a 2D grid of style-tagged cells produced by an external
// renderer.
type Sketch struct {
	Width, Height int
	Rows          [][]SketchCell
}

// Math is the TeX rasterization contract.
type Math interface {
	RenderInline(latex string) (*Sketch, error)
	RenderBlock(latex string) (*Sketch, error)
	Free(s *Sketch)
}

// Highlight is the syntax-highlighter contract: it returns a byte string
// containing opaque escape sequences interleaved with the code, which the
// core passes through literally while counting only display cells.
type Highlight interface {
	Highlight(code []byte, lang string) ([]byte, error)
}
