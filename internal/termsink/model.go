package termsink

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/2legit2git/dawn/internal/engine"
)

// Model is the Bubble Tea adapter driving an engine.Engine. It disables
// Bubble Tea's own screen renderer (tea.WithoutRenderer): the
// writing-mode frame is drawn straight to the terminal by the Display
// sink inside Frame, and overlay modes (welcome, help, TOC, search,
// history) are drawn straight to out too, right after handling the
// message that produced them — the same direct-terminal-control idiom
// throughout, rather than splitting drawing between the Display sink
// and Bubble Tea's own renderer.
type Model struct {
	eng     *engine.Engine
	spinner spinner.Model
	out     io.Writer
}

// New wraps an already-configured engine for use as a tea.Model, drawing
// overlay chrome directly to out.
func New(eng *engine.Engine, out io.Writer) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &Model{eng: eng, spinner: s, out: out}
}

func (m *Model) Init() tea.Cmd {
	m.draw()
	return tea.Batch(tick(), m.spinner.Tick)
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type tickMsg time.Time

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.eng.UpdateSize(msg.Width, msg.Height)
		m.draw()
		return m, nil

	case tea.KeyMsg:
		cont := m.eng.Frame(DecodeKey(msg), time.Now())
		m.draw()
		if !cont {
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		in := DecodeMouse(msg)
		if in.Code == engine.KeyNone {
			return m, nil
		}
		cont := m.eng.Frame(in, time.Now())
		m.draw()
		if !cont {
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		cont := m.eng.Frame(engine.Input{}, time.Time(msg))
		m.draw()
		if !cont {
			return m, tea.Quit
		}
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.draw()
		return m, cmd
	}
	return m, nil
}

// draw paints whatever the current mode calls for. Frame already drew
// the writing-mode frame straight to the terminal through the Display
// sink; every other mode's chrome is drawn here, directly to out, since
// Bubble Tea's own renderer is disabled (tea.WithoutRenderer).
func (m *Model) draw() {
	if m.eng.Mode() == engine.ModeWriting {
		return
	}
	io.WriteString(m.out, "\x1b[2J\x1b[H")
	io.WriteString(m.out, m.renderChrome())
}

// View is unused: Bubble Tea's own renderer is disabled, and draw
// writes overlay chrome straight to out instead.
func (m *Model) View() string { return "" }
