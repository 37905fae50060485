// Package termsink implements sink.Display directly against a real
// terminal with raw ANSI escapes, and bridges Bubble Tea's event loop
// into engine.Input/engine.Frame.
//
// The writing-mode frame is composed as a single escape-laden buffer and
// flushed in one write, the same direct-terminal-control idiom the
// image sink uses for Kitty/iTerm/Sixel payloads rather than going
// through Bubble Tea's own diffing renderer.
package termsink

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/2legit2git/dawn/internal/imagesink"
	"github.com/2legit2git/dawn/internal/sink"
	"github.com/muesli/termenv"
)

// Display is a sink.Display that writes raw ANSI directly to out.
type Display struct {
	out        io.Writer
	buf        bytes.Buffer
	trueColor  bool
	styledUnd  bool
	imageProto bool
}

var _ sink.Display = (*Display)(nil)

// NewDisplay builds a Display writing to out, detecting truecolor and
// image protocol support from the environment (capability queries gate
// graceful degradation for dumb terminals).
func NewDisplay(out io.Writer) *Display {
	profile := termenv.EnvColorProfile()
	return &Display{
		out:        out,
		trueColor:  profile == termenv.TrueColor,
		styledUnd:  profile == termenv.TrueColor,
		imageProto: imagesink.DetectCapability() != imagesink.CapNone,
	}
}

// EnterAltScreen switches the terminal to the alternate buffer and hides
// the hardware cursor, matching the image sink's direct-escape style
// rather than relying on Bubble Tea's renderer for screen setup.
func EnterAltScreen(w io.Writer) { fmt.Fprint(w, "\x1b[?1049h\x1b[?25l") }

// LeaveAltScreen restores the primary buffer and the hardware cursor.
func LeaveAltScreen(w io.Writer) { fmt.Fprint(w, "\x1b[?25h\x1b[?1049l") }

func (d *Display) MoveTo(row, col int) {
	fmt.Fprintf(&d.buf, "\x1b[%d;%dH", row+1, col+1)
}

func (d *Display) SetFG(c sink.RGB) {
	fmt.Fprintf(&d.buf, "\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (d *Display) SetBG(c sink.RGB) {
	fmt.Fprintf(&d.buf, "\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (d *Display) SetBold(on bool) {
	if on {
		d.buf.WriteString("\x1b[1m")
	} else {
		d.buf.WriteString("\x1b[22m")
	}
}

func (d *Display) SetItalic(on bool) {
	if on {
		d.buf.WriteString("\x1b[3m")
	} else {
		d.buf.WriteString("\x1b[23m")
	}
}

func (d *Display) SetDim(on bool) {
	if on {
		d.buf.WriteString("\x1b[2m")
	} else {
		d.buf.WriteString("\x1b[22m")
	}
}

func (d *Display) SetStrikethrough(on bool) {
	if on {
		d.buf.WriteString("\x1b[9m")
	} else {
		d.buf.WriteString("\x1b[29m")
	}
}

func (d *Display) ResetAttrs() {
	d.buf.WriteString("\x1b[0m")
}

func (d *Display) SetUnderline(style sink.UnderlineStyle) {
	if !d.styledUnd {
		if style == sink.UnderlineNone {
			d.buf.WriteString("\x1b[24m")
		} else {
			d.buf.WriteString("\x1b[4m")
		}
		return
	}
	switch style {
	case sink.UnderlineNone:
		d.buf.WriteString("\x1b[4:0m")
	case sink.UnderlineSingle:
		d.buf.WriteString("\x1b[4:1m")
	case sink.UnderlineDouble:
		d.buf.WriteString("\x1b[4:2m")
	case sink.UnderlineCurly:
		d.buf.WriteString("\x1b[4:3m")
	case sink.UnderlineDotted:
		d.buf.WriteString("\x1b[4:4m")
	case sink.UnderlineDashed:
		d.buf.WriteString("\x1b[4:5m")
	}
}

func (d *Display) SetUnderlineColor(c sink.RGB) {
	fmt.Fprintf(&d.buf, "\x1b[58;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (d *Display) ClearUnderline() {
	d.buf.WriteString("\x1b[59m\x1b[24m")
}

func (d *Display) WriteStr(b []byte) { d.buf.Write(b) }
func (d *Display) WriteChar(b byte)  { d.buf.WriteByte(b) }

// WriteScaled and WriteScaledFrac degrade to plain cell-width output:
// this terminal doesn't advertise a text-sizing protocol (TextSizing
// reports false), so scaled glyphs get their unscaled form.
func (d *Display) WriteScaled(b []byte, scale int)                { d.buf.Write(b) }
func (d *Display) WriteScaledFrac(b []byte, scale, num, denom int) { d.buf.Write(b) }

func (d *Display) SyncBegin() { d.buf.WriteString("\x1b[?2026h") }
func (d *Display) SyncEnd()   { d.buf.WriteString("\x1b[?2026l") }

func (d *Display) Flush() {
	d.out.Write(d.buf.Bytes())
	d.buf.Reset()
	if f, ok := d.out.(interface{ Sync() error }); ok {
		_ = f.Sync()
	}
}

func (d *Display) TrueColor() bool     { return d.trueColor }
func (d *Display) StyledUnderline() bool { return d.styledUnd }
func (d *Display) TextSizing() bool    { return false }
func (d *Display) ImageProtocol() bool { return d.imageProto }

// Stdout is the Display a host normally wires up.
func Stdout() *Display { return NewDisplay(os.Stdout) }
