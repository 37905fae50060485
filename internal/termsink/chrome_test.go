package termsink

import (
	"strings"
	"testing"
	"time"

	"github.com/2legit2git/dawn/internal/engine"
)

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.eng.Frame(engine.Input{Code: engine.KeyRune, Rune: r}, time.Now())
	}
}

func TestRenderChromeHelpListsBindings(t *testing.T) {
	m, _ := newTestModel()
	m.eng.Frame(engine.Input{Code: engine.KeyEnter}, time.Now()) // leave welcome
	m.eng.Frame(engine.Input{Code: engine.KeyToggleHelp}, time.Now())

	out := m.renderChrome()
	if !strings.Contains(out, "save") || !strings.Contains(out, "undo") {
		t.Fatalf("help chrome missing expected bindings: %q", out)
	}
}

func TestRenderChromeTOCListsHeadersAndHighlightsSelection(t *testing.T) {
	m, _ := newTestModel()
	m.eng.Frame(engine.Input{Code: engine.KeyEnter}, time.Now())
	typeRunes(m, "# First\n\nbody\n\n## Second\n")
	m.eng.Frame(engine.Input{Code: engine.KeyToggleTOC}, time.Now())

	out := m.renderChrome()
	if !strings.Contains(out, "First") || !strings.Contains(out, "Second") {
		t.Fatalf("TOC chrome missing headers: %q", out)
	}
}

func TestRenderChromeTOCEmptyDocumentShowsNoHeaders(t *testing.T) {
	m, _ := newTestModel()
	m.eng.Frame(engine.Input{Code: engine.KeyEnter}, time.Now())
	m.eng.Frame(engine.Input{Code: engine.KeyToggleTOC}, time.Now())

	out := m.renderChrome()
	if !strings.Contains(out, "no headers") {
		t.Fatalf("expected an empty-TOC message, got %q", out)
	}
}

func TestRenderChromeSearchShowsPromptBeforeQuery(t *testing.T) {
	m, _ := newTestModel()
	m.eng.Frame(engine.Input{Code: engine.KeyEnter}, time.Now())
	m.eng.Frame(engine.Input{Code: engine.KeyToggleSearch}, time.Now())

	out := m.renderChrome()
	if !strings.Contains(out, "type to search") {
		t.Fatalf("expected a prompt before any query, got %q", out)
	}
}

func TestRenderChromeSearchListsMatches(t *testing.T) {
	m, _ := newTestModel()
	m.eng.Frame(engine.Input{Code: engine.KeyEnter}, time.Now())
	typeRunes(m, "alpha beta gamma\nbeta again\n")
	m.eng.Frame(engine.Input{Code: engine.KeyToggleSearch}, time.Now())
	typeRunes(m, "beta")

	out := m.renderChrome()
	if strings.Count(out, "beta") < 2 {
		t.Fatalf("expected both matches rendered, got %q", out)
	}
}

func TestRenderChromeHistoryShowsSpinnerWhenDirty(t *testing.T) {
	m, _ := newTestModel()
	m.eng.Frame(engine.Input{Code: engine.KeyEnter}, time.Now())
	typeRunes(m, "x")
	m.eng.Frame(engine.Input{Code: engine.KeyToggleHistory}, time.Now())

	out := m.renderChrome()
	if !strings.Contains(out, "saving") {
		t.Fatalf("expected a saving indicator while dirty, got %q", out)
	}
}
