// Package overlay implements the read-only TOC and search dialogs. The TOC
// is built from the already-parsed header blocks; search scans the
// document bytes directly.
package overlay

import (
	"github.com/sahilm/fuzzy"

	"github.com/2legit2git/dawn/internal/block"
	"github.com/2legit2git/dawn/internal/recognize"
)

// TOCEntry is one header block surfaced to the table-of-contents dialog.
type TOCEntry struct {
	Level        int
	Text         string
	ContentStart int
}

// tocSource adapts a []TOCEntry to fuzzy.Source for incremental filtering.
type tocSource []TOCEntry

func (t tocSource) String(i int) string { return t[i].Text }
func (t tocSource) Len() int            { return len(t) }

// BuildTOC collects every Header block's source text after the '#'
// markers, without any trailing heading id; inline markup is kept as typed.
func BuildTOC(s recognize.Source, blocks []block.Block) []TOCEntry {
	var entries []TOCEntry
	for _, b := range blocks {
		if b.Kind != block.KindHeader {
			continue
		}
		entries = append(entries, TOCEntry{
			Level:        b.HeaderLevel,
			Text:         headerPlainText(s, b),
			ContentStart: b.HeaderContentStart,
		})
	}
	return entries
}

func headerPlainText(s recognize.Source, b block.Block) string {
	end := b.End
	if end > b.Start && s.At(end-1) == '\n' {
		end--
	}
	start := b.HeaderContentStart
	if b.HasHeadingID && b.HeadingIDEnd <= end {
		trimEnd := b.HeadingIDStart
		for trimEnd > start && s.At(trimEnd-1) == ' ' {
			trimEnd--
		}
		end = trimEnd
	}
	out := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, s.At(i))
	}
	return string(out)
}

// TOCState is the incremental state of an open TOC dialog: the current
// filter query plus a selected/scroll cursor over the filtered entries.
type TOCState struct {
	All      []TOCEntry
	Query    string
	Filtered []TOCEntry
	Selected int
	Scroll   int
}

// NewTOCState opens a TOC dialog over the document's current headers.
func NewTOCState(entries []TOCEntry) *TOCState {
	return &TOCState{All: entries, Filtered: entries}
}

// SetQuery re-filters the entry list by a case-insensitive fuzzy query,
// ranked by match score the way an incremental command palette filters
// its entries. An entry matches when the query's characters appear in its
// text in order; they need not be adjacent.
func (t *TOCState) SetQuery(query string) {
	t.Query = query
	if query == "" {
		t.Filtered = t.All
		t.Selected = 0
		t.Scroll = 0
		return
	}
	matches := fuzzy.FindFrom(query, tocSource(t.All))
	filtered := make([]TOCEntry, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, t.All[m.Index])
	}
	t.Filtered = filtered
	t.Selected = 0
	t.Scroll = 0
}

// MoveSelection shifts the selected entry by delta, clamped to range.
func (t *TOCState) MoveSelection(delta int) {
	if len(t.Filtered) == 0 {
		t.Selected = 0
		return
	}
	t.Selected += delta
	if t.Selected < 0 {
		t.Selected = 0
	}
	if t.Selected >= len(t.Filtered) {
		t.Selected = len(t.Filtered) - 1
	}
}

// Accept returns the cursor position to jump to for the selected entry,
// or ok=false if nothing is selectable.
func (t *TOCState) Accept() (cursor int, ok bool) {
	if t.Selected < 0 || t.Selected >= len(t.Filtered) {
		return 0, false
	}
	return t.Filtered[t.Selected].ContentStart, true
}
