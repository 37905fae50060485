package block

import "github.com/2legit2git/dawn/internal/recognize"

// FootnoteIndex answers "does a definition for id exist" and "where are
// all the references to id" queries in O(1) after a single O(n) scan,
// supporting the auto-footnote-placement smart edit, which needs a fast
// existence check on every closing "]" keystroke rather than a fresh
// document scan each time.
type FootnoteIndex struct {
	defs map[string]int   // id -> byte offset of the FootnoteDef block's id start
	refs map[string][]int // id -> byte offsets of each [^id] reference's id start
}

// BuildFootnoteIndex scans blocks (FootnoteDef) and their paragraph-like
// inline runs (RunFootnoteRef) to build the index.
func BuildFootnoteIndex(s recognize.Source, blocks []Block) *FootnoteIndex {
	idx := &FootnoteIndex{defs: map[string]int{}, refs: map[string][]int{}}
	for _, b := range blocks {
		if b.Kind == KindFootnoteDef {
			id := sliceSrc(s, b.FootnoteIDStart, b.FootnoteIDEnd)
			idx.defs[id] = b.FootnoteIDStart
		}
		for _, r := range b.Runs {
			if r.Kind == RunFootnoteRef {
				id := sliceSrc(s, r.FootnoteIDStart, r.FootnoteIDEnd)
				idx.refs[id] = append(idx.refs[id], r.FootnoteIDStart)
			}
		}
	}
	return idx
}

// Definition reports the byte offset of id's definition, if any.
func (idx *FootnoteIndex) Definition(id string) (int, bool) {
	pos, ok := idx.defs[id]
	return pos, ok
}

// References returns the byte offsets of every [^id] reference to id, in
// document order.
func (idx *FootnoteIndex) References(id string) []int {
	return idx.refs[id]
}

// HasAnyDefinition reports whether the document has at least one
// footnote definition anywhere, used to decide whether the auto-footnote
// smart edit needs to prepend a "---" separator: only when no other
// footnote definition exists in the document at the time of insertion.
func (idx *FootnoteIndex) HasAnyDefinition() bool {
	return len(idx.defs) > 0
}
