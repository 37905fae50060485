package termsink

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2legit2git/dawn/internal/engine"
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

func newTestModel() (*Model, *bytes.Buffer) {
	eng := engine.New(engine.Options{
		Sinks:           render.Sinks{Display: &fakeDisplay{}},
		Palette:         render.Palette{},
		Cols:            80,
		Rows:            24,
		AutosaveSeconds: 60,
	})
	var out bytes.Buffer
	return New(eng, &out), &out
}

func TestInitDrawsWelcomeChrome(t *testing.T) {
	m, out := newTestModel()
	m.Init()
	if !strings.Contains(out.String(), "dawn") {
		t.Fatalf("Init() did not draw welcome chrome: %q", out.String())
	}
}

func TestUpdateKeyMsgDismissesWelcomeIntoWritingMode(t *testing.T) {
	m, out := newTestModel()
	m.Init()
	out.Reset()

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.eng.Mode() != engine.ModeWriting {
		t.Fatalf("expected writing mode after dismissing welcome, got %v", m.eng.Mode())
	}
	// In writing mode, draw is a no-op: the Display sink already drew
	// the frame inside Frame, so nothing further goes to out.
	if out.Len() != 0 {
		t.Fatalf("expected no chrome output in writing mode, got %q", out.String())
	}
}

func TestUpdateWindowSizeMsgResizesEngineWithoutPanicking(t *testing.T) {
	m, _ := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestUpdateSpinnerTickReturnsFollowUpCmd(t *testing.T) {
	m, _ := newTestModel()
	// Generate a tick message carrying this spinner's own ID, rather than
	// a zero-value spinner.TickMsg that might not match it.
	tickCmd := m.spinner.Tick
	msg := tickCmd()
	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatalf("expected a follow-up tick command from the spinner")
	}
}

func TestUpdateQuitKeyReturnsQuitCmd(t *testing.T) {
	m, _ := newTestModel()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // leave welcome mode first
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("expected tea.Quit after ctrl+q")
	}
}

func TestUpdateMouseUnmappedButtonIsIgnored(t *testing.T) {
	m, out := newTestModel()
	out.Reset()
	model, cmd := m.Update(tea.MouseMsg{Button: tea.MouseButtonMiddle, Action: tea.MouseActionPress})
	if model != m || cmd != nil {
		t.Fatalf("unmapped mouse event should be a no-op")
	}
}
