// Package undo implements a bounded undo/redo snapshot ring of at most
// Capacity entries, each a full copy of the document bytes and the
// cursor position at snapshot time.
package undo

// Capacity bounds how many undo snapshots are kept at once.
const Capacity = 100

// Snapshot is one entry in the ring: a full copy of the document bytes
// and the cursor position at the time it was taken.
type Snapshot struct {
	Bytes  []byte
	Cursor int
}

// Ring is a bounded history of snapshots with a movable position. Redo
// is available iff Position < len(entries)-1.
type Ring struct {
	entries  []Snapshot
	position int // index of the current state within entries
}

// New returns an empty ring seeded with the initial document state, so
// Undo always has something to restore to even before the first edit.
func New(initialBytes []byte, initialCursor int) *Ring {
	return &Ring{
		entries:  []Snapshot{{Bytes: cloneBytes(initialBytes), Cursor: initialCursor}},
		position: 0,
	}
}

// SaveSnapshot records the pre-edit state: snapshots are taken before a
// mutating edit, not after. If the position is behind the end of the
// ring (prior undos happened), later entries are dropped. At capacity,
// the oldest entry is dropped and position shifts left to keep it
// pointing at the same logical state.
func (r *Ring) SaveSnapshot(bytes []byte, cursor int) {
	if r.position < len(r.entries)-1 {
		r.entries = r.entries[:r.position+1]
	}
	r.entries = append(r.entries, Snapshot{Bytes: cloneBytes(bytes), Cursor: cursor})
	r.position++
	if len(r.entries) > Capacity {
		r.entries = r.entries[1:]
		r.position--
	}
}

// Undo moves the position back one step and returns the snapshot to
// restore, clamping the cursor to the snapshot's byte length. Returns
// ok=false if already at the oldest entry.
func (r *Ring) Undo() (Snapshot, bool) {
	if r.position <= 0 {
		return Snapshot{}, false
	}
	r.position--
	return r.clampedEntry(r.position), true
}

// Redo moves the position forward one step and returns the snapshot to
// restore. Returns ok=false if already at the newest entry.
func (r *Ring) Redo() (Snapshot, bool) {
	if r.position >= len(r.entries)-1 {
		return Snapshot{}, false
	}
	r.position++
	return r.clampedEntry(r.position), true
}

// CanUndo/CanRedo expose availability without mutating position, used by
// a host UI to gray out menu items.
func (r *Ring) CanUndo() bool { return r.position > 0 }
func (r *Ring) CanRedo() bool { return r.position < len(r.entries)-1 }

func (r *Ring) clampedEntry(i int) Snapshot {
	e := r.entries[i]
	out := Snapshot{Bytes: e.Bytes, Cursor: e.Cursor}
	if out.Cursor < 0 {
		out.Cursor = 0
	}
	if out.Cursor > len(out.Bytes) {
		out.Cursor = len(out.Bytes)
	}
	return out
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
