package overlay

import (
	"strings"

	"github.com/2legit2git/dawn/internal/recognize"
)

// MaxSearchResults caps the result set of a document search.
const MaxSearchResults = 200

// SearchResult is one match with a one-line context snippet.
type SearchResult struct {
	Offset       int // byte offset of the match in the document
	LineStart    int
	Snippet      string
	MatchInLine  int // byte offset of the match within Snippet
}

// Search performs a case-insensitive substring search over the document,
// returning up to MaxSearchResults matches with one-line context
//. A result set larger than the cap is truncated;
// truncated is true when that happened.
func Search(s recognize.Source, query string) (results []SearchResult, truncated bool) {
	if query == "" {
		return nil, false
	}
	doc := sourceToString(s)
	lowerDoc := strings.ToLower(doc)
	lowerQuery := strings.ToLower(query)

	pos := 0
	for {
		idx := strings.Index(lowerDoc[pos:], lowerQuery)
		if idx < 0 {
			break
		}
		offset := pos + idx
		if len(results) >= MaxSearchResults {
			truncated = true
			break
		}
		lineStart := strings.LastIndexByte(doc[:offset], '\n') + 1
		lineEnd := strings.IndexByte(doc[offset:], '\n')
		if lineEnd < 0 {
			lineEnd = len(doc)
		} else {
			lineEnd += offset
		}
		results = append(results, SearchResult{
			Offset:      offset,
			LineStart:   lineStart,
			Snippet:     doc[lineStart:lineEnd],
			MatchInLine: offset - lineStart,
		})
		pos = offset + len(query)
		if pos > len(doc) {
			break
		}
	}
	return results, truncated
}

func sourceToString(s recognize.Source) string {
	n := s.Len()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = s.At(i)
	}
	return string(out)
}

// SearchState is the incremental state of an open search dialog.
type SearchState struct {
	Query     string
	Results   []SearchResult
	Truncated bool
	Selected  int
}

// NewSearchState runs query against s and returns the initialized dialog
// state.
func NewSearchState(s recognize.Source, query string) *SearchState {
	results, truncated := Search(s, query)
	return &SearchState{Query: query, Results: results, Truncated: truncated}
}

// MoveSelection shifts the selected result by delta, clamped to range.
func (st *SearchState) MoveSelection(delta int) {
	if len(st.Results) == 0 {
		st.Selected = 0
		return
	}
	st.Selected += delta
	if st.Selected < 0 {
		st.Selected = 0
	}
	if st.Selected >= len(st.Results) {
		st.Selected = len(st.Results) - 1
	}
}

// Accept returns the cursor position to jump to for the selected result.
func (st *SearchState) Accept() (cursor int, ok bool) {
	if st.Selected < 0 || st.Selected >= len(st.Results) {
		return 0, false
	}
	return st.Results[st.Selected].Offset, true
}
