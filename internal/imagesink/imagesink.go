// Package imagesink implements the sink.Image contract with rasterm,
// following the capability-detection and scale-then-encode pipeline the
// terminal image renderers use for inline image previews.
package imagesink

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BourgeoisBear/rasterm"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/2legit2git/dawn/internal/sink"
)

// Capability is the terminal's inline-image protocol.
type Capability int

const (
	CapNone Capability = iota
	CapKitty
	CapITerm
	CapSixel
)

// DetectCapability inspects the environment for graphics-protocol
// support, checking Kitty, then iTerm2/WezTerm/Ghostty, then Sixel.
func DetectCapability() Capability {
	if os.Getenv("KITTY_WINDOW_ID") != "" || strings.Contains(os.Getenv("TERM"), "kitty") {
		return CapKitty
	}
	termProgram := os.Getenv("TERM_PROGRAM")
	if termProgram == "iTerm.app" || termProgram == "WezTerm" || os.Getenv("LC_TERMINAL") == "iTerm2" {
		return CapITerm
	}
	if termProgram == "ghostty" {
		return CapKitty
	}
	term := os.Getenv("TERM")
	if strings.Contains(term, "sixel") || strings.Contains(term, "mlterm") {
		return CapSixel
	}
	return CapNone
}

// maxWidthPixels bounds how large a decoded image is before it's
// downscaled for terminal display.
const maxWidthPixels = 1600

// cellPixelsW/cellPixelsH approximate a terminal cell's pixel footprint,
// used only to convert an image's pixel size into a row count.
const cellPixelsW = 10
const cellPixelsH = 20

// Sink implements sink.Image, writing escape sequences to w (the live
// terminal output stream).
type Sink struct {
	w   io.Writer
	cap Capability
}

// New returns an image sink writing to w, auto-detecting the terminal's
// image capability.
func New(w io.Writer) *Sink {
	return &Sink{w: w, cap: DetectCapability()}
}

var _ sink.Image = (*Sink)(nil)

// ResolvePath resolves a Markdown image's raw path against baseDir,
// passing absolute/URL-like paths through unchanged.
func (s *Sink) ResolvePath(raw, baseDir string) string {
	if raw == "" {
		return raw
	}
	if filepath.IsAbs(raw) || strings.Contains(raw, "://") {
		return raw
	}
	return filepath.Join(baseDir, raw)
}

// GetSize decodes just enough of path to report its pixel dimensions.
func (s *Sink) GetSize(path string) (sink.ImageSize, error) {
	f, err := os.Open(path)
	if err != nil {
		return sink.ImageSize{}, fmt.Errorf("imagesink: open %s: %w", path, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return sink.ImageSize{}, fmt.Errorf("imagesink: decode %s: %w", path, err)
	}
	return sink.ImageSize{W: cfg.Width, H: cfg.Height}, nil
}

// CalcRows converts a w x h pixel image into a terminal row count that
// fits within cols columns, honoring an explicit rowsSpec override (from
// a `{height=N}` attribute) when positive.
func (s *Sink) CalcRows(w, h, cols, rowsSpec int) int {
	if rowsSpec > 0 {
		return rowsSpec
	}
	if w <= 0 || h <= 0 {
		return 1
	}
	displayCols := cols
	pixelWidth := displayCols * cellPixelsW
	scaledHeight := (h * pixelWidth) / w
	rows := (scaledHeight + cellPixelsH - 1) / cellPixelsH
	if rows < 1 {
		rows = 1
	}
	return rows
}

// DisplayAt renders the full image at (row, col), bounded to maxCols x
// maxRows.
func (s *Sink) DisplayAt(path string, row, col, maxCols, maxRows int) error {
	img, err := loadImage(path)
	if err != nil {
		return s.placeholder(row, col, "[unresolved image]")
	}
	img = scaleToFit(img, maxCols*cellPixelsW, maxRows*cellPixelsH)
	return s.emit(row, col, img)
}

// DisplayCropped renders a vertically cropped window of the image,
// showing `visible` rows starting cropTop cells down — used when the
// image's full height would overflow the visible scroll band.
func (s *Sink) DisplayCropped(path string, row, col, maxCols, cropTop, visible int) error {
	img, err := loadImage(path)
	if err != nil {
		return s.placeholder(row, col, "[unresolved image]")
	}
	img = scaleToFit(img, maxCols*cellPixelsW, 0)
	bounds := img.Bounds()
	top := cropTop * cellPixelsH
	height := visible * cellPixelsH
	if top >= bounds.Dy() {
		return s.placeholder(row, col, "[image]")
	}
	bottom := top + height
	if bottom > bounds.Dy() {
		bottom = bounds.Dy()
	}
	cropped := cropImage(img, top, bottom)
	return s.emit(row, col, cropped)
}

// FrameStart/FrameEnd bracket a render pass the way a terminal
// synchronized-output writer brackets a batch of image placements.
func (s *Sink) FrameStart() {}
func (s *Sink) FrameEnd()   {}

// MaskRegion paints over a region with a solid color, used to blank a
// previously drawn image before the cell grid underneath it changes.
func (s *Sink) MaskRegion(col, row, cols, rows int, bg sink.RGB) {
	fmt.Fprintf(s.w, "\x1b[48;2;%d;%d;%dm", bg.R, bg.G, bg.B)
	blank := strings.Repeat(" ", cols)
	for r := 0; r < rows; r++ {
		fmt.Fprintf(s.w, "\x1b[%d;%dH%s", row+r+1, col+1, blank)
	}
	fmt.Fprint(s.w, "\x1b[0m")
}

func (s *Sink) placeholder(row, col int, text string) error {
	fmt.Fprintf(s.w, "\x1b[%d;%dH%s", row+1, col+1, text)
	return nil
}

func (s *Sink) emit(row, col int, img image.Image) error {
	fmt.Fprintf(s.w, "\x1b[%d;%dH", row+1, col+1)
	switch s.cap {
	case CapKitty:
		return rasterm.KittyWriteImage(s.w, img, rasterm.KittyImgOpts{})
	case CapITerm:
		return rasterm.ItermWriteImage(s.w, img)
	case CapSixel:
		return rasterm.SixelWriteImage(s.w, convertToPaletted(img))
	default:
		return s.placeholder(row, col, "[image]")
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func scaleToFit(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return img
	}
	if maxW <= 0 {
		maxW = maxWidthPixels
	}
	scale := 1.0
	if w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && int(float64(h)*scale) > maxH {
		scale = float64(maxH) / float64(h)
	}
	if scale >= 1.0 {
		return img
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func cropImage(img image.Image, top, bottom int) image.Image {
	bounds := img.Bounds()
	rect := image.Rect(bounds.Min.X, bounds.Min.Y+top, bounds.Max.X, bounds.Min.Y+bottom)
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), img, rect.Min, draw.Src)
	return dst
}

func convertToPaletted(img image.Image) *image.Paletted {
	bounds := img.Bounds()
	palette := make(color.Palette, 256)
	idx := 0
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette[idx] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				idx++
			}
		}
	}
	for i := 0; i < 40; i++ {
		gray := uint8(i * 255 / 39)
		palette[idx] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
		idx++
	}
	paletted := image.NewPaletted(bounds, palette)
	draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)
	return paletted
}
