package render

import "github.com/2legit2git/dawn/internal/sink"

// fakeDisplay is a minimal recording sink.Display used by render tests.
type fakeDisplay struct {
	row, col   int
	written    []byte
	moves      int
	trueColor  bool
	textSizing bool
}

func (f *fakeDisplay) MoveTo(row, col int) { f.row, f.col = row, col; f.moves++ }
func (f *fakeDisplay) SetFG(sink.RGB)      {}
func (f *fakeDisplay) SetBG(sink.RGB)      {}
func (f *fakeDisplay) SetBold(bool)        {}
func (f *fakeDisplay) SetItalic(bool)      {}
func (f *fakeDisplay) SetDim(bool)         {}
func (f *fakeDisplay) SetStrikethrough(bool) {}
func (f *fakeDisplay) ResetAttrs()         {}
func (f *fakeDisplay) SetUnderline(sink.UnderlineStyle) {}
func (f *fakeDisplay) SetUnderlineColor(sink.RGB)       {}
func (f *fakeDisplay) ClearUnderline()                  {}
func (f *fakeDisplay) WriteStr(b []byte)   { f.written = append(f.written, b...); f.col += len(b) }
func (f *fakeDisplay) WriteChar(b byte)    { f.written = append(f.written, b); f.col++ }
func (f *fakeDisplay) WriteScaled(b []byte, scale int)               { f.WriteStr(b) }
func (f *fakeDisplay) WriteScaledFrac(b []byte, scale, num, denom int) { f.WriteStr(b) }
func (f *fakeDisplay) SyncBegin()          {}
func (f *fakeDisplay) SyncEnd()            {}
func (f *fakeDisplay) Flush()              {}
func (f *fakeDisplay) TrueColor() bool     { return f.trueColor }
func (f *fakeDisplay) StyledUnderline() bool { return true }
func (f *fakeDisplay) TextSizing() bool    { return f.textSizing }
func (f *fakeDisplay) ImageProtocol() bool { return false }

type strSource string

func (s strSource) Len() int      { return len(s) }
func (s strSource) At(i int) byte { return s[i] }
