package termsink

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/2legit2git/dawn/internal/engine"
)

// chromeStyles holds a handful of reusable lipgloss styles built once,
// rather than constructing style objects inline at every render call.
type chromeStyles struct {
	title   lipgloss.Style
	item    lipgloss.Style
	active  lipgloss.Style
	help    lipgloss.Style
	box     lipgloss.Style
}

func newChromeStyles() chromeStyles {
	return chromeStyles{
		title:  lipgloss.NewStyle().Bold(true).Underline(true),
		item:   lipgloss.NewStyle(),
		active: lipgloss.NewStyle().Reverse(true),
		help:   lipgloss.NewStyle().Faint(true),
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// renderChrome draws the overlay text for every non-writing mode: the
// writing-mode frame itself is drawn straight to the terminal by the
// Display sink inside Frame, never through View.
func (m *Model) renderChrome() string {
	styles := newChromeStyles()
	switch m.eng.Mode() {
	case engine.ModeWelcome:
		return styles.box.Render(styles.title.Render("dawn") + "\n\n" +
			"Press any key to start writing.\n" +
			styles.help.Render("ctrl+g help · ctrl+q quit"))
	case engine.ModeHelp:
		return styles.box.Render(styles.title.Render("Keys") + "\n" + helpText(styles))
	case engine.ModeTOC:
		return styles.box.Render(styles.title.Render("Table of contents") + "\n" + m.tocText(styles))
	case engine.ModeSearch:
		return styles.box.Render(styles.title.Render("Search") + "\n" + m.searchText(styles))
	case engine.ModeHistory:
		return styles.box.Render(styles.title.Render("History") + "\n" + m.spinnerLine(styles))
	}
	return ""
}

func helpText(styles chromeStyles) string {
	lines := []string{
		"ctrl+s  save", "ctrl+z  undo", "ctrl+y  redo",
		"ctrl+c  copy", "ctrl+v  paste",
		"ctrl+t  table of contents", "ctrl+f  search",
		"ctrl+r  history", "esc     close this panel",
	}
	return strings.Join(lines, "\n")
}

func (m *Model) spinnerLine(styles chromeStyles) string {
	if !m.eng.Dirty() {
		return styles.help.Render("nothing pending")
	}
	return fmt.Sprintf("%s saving…", m.spinner.View())
}

// tocText lists the headers currently matching the open TOC dialog's
// query, highlighting the selected entry the way the chat transcript
// highlights its active row.
func (m *Model) tocText(styles chromeStyles) string {
	toc := m.eng.TOCState()
	if toc == nil {
		return ""
	}
	if len(toc.Filtered) == 0 {
		return styles.help.Render("no headers")
	}
	lines := make([]string, 0, len(toc.Filtered)+1)
	if toc.Query != "" {
		lines = append(lines, styles.help.Render("filter: "+toc.Query))
	}
	for i, entry := range toc.Filtered {
		line := strings.Repeat("  ", entry.Level-1) + entry.Text
		if i == toc.Selected {
			lines = append(lines, styles.active.Render(line))
		} else {
			lines = append(lines, styles.item.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// searchText lists the matches of the open search dialog's query, one
// line of context per result, highlighting the selected match.
func (m *Model) searchText(styles chromeStyles) string {
	search := m.eng.SearchState()
	if search == nil {
		return ""
	}
	if search.Query == "" {
		return styles.help.Render("type to search")
	}
	if len(search.Results) == 0 {
		return styles.help.Render("no matches")
	}
	lines := make([]string, 0, len(search.Results)+1)
	for i, res := range search.Results {
		line := fmt.Sprintf("%4d  %s", res.LineStart, res.Snippet)
		if i == search.Selected {
			lines = append(lines, styles.active.Render(line))
		} else {
			lines = append(lines, styles.item.Render(line))
		}
	}
	if search.Truncated {
		lines = append(lines, styles.help.Render("(more matches not shown)"))
	}
	return strings.Join(lines, "\n")
}
