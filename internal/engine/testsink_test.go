package engine

import (
	"github.com/2legit2git/dawn/internal/render"
	"github.com/2legit2git/dawn/internal/sink"
)

type fakeDisplay struct{}

func (f *fakeDisplay) MoveTo(row, col int)                            {}
func (f *fakeDisplay) SetFG(sink.RGB)                                 {}
func (f *fakeDisplay) SetBG(sink.RGB)                                 {}
func (f *fakeDisplay) SetBold(bool)                                   {}
func (f *fakeDisplay) SetItalic(bool)                                 {}
func (f *fakeDisplay) SetDim(bool)                                    {}
func (f *fakeDisplay) SetStrikethrough(bool)                          {}
func (f *fakeDisplay) ResetAttrs()                                    {}
func (f *fakeDisplay) SetUnderline(sink.UnderlineStyle)               {}
func (f *fakeDisplay) SetUnderlineColor(sink.RGB)                     {}
func (f *fakeDisplay) ClearUnderline()                                {}
func (f *fakeDisplay) WriteStr(b []byte)                              {}
func (f *fakeDisplay) WriteChar(b byte)                               {}
func (f *fakeDisplay) WriteScaled(b []byte, scale int)                {}
func (f *fakeDisplay) WriteScaledFrac(b []byte, scale, num, denom int) {}
func (f *fakeDisplay) SyncBegin()                                     {}
func (f *fakeDisplay) SyncEnd()                                       {}
func (f *fakeDisplay) Flush()                                         {}
func (f *fakeDisplay) TrueColor() bool                                { return true }
func (f *fakeDisplay) StyledUnderline() bool                          { return true }
func (f *fakeDisplay) TextSizing() bool                               { return false }
func (f *fakeDisplay) ImageProtocol() bool                            { return false }

type fakeClipboard struct{ data []byte }

func (c *fakeClipboard) Copy(b []byte) { c.data = append([]byte(nil), b...) }
func (c *fakeClipboard) Paste() []byte { return c.data }

func newTestEngine() *Engine {
	return New(Options{
		Sinks:           render.Sinks{Display: &fakeDisplay{}},
		Clipboard:       &fakeClipboard{},
		Palette:         render.Palette{},
		Cols:            100,
		Rows:            30,
		AutosaveSeconds: 60,
	})
}
