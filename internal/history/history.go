// Package history lists and stamps editing sessions for the history
// browser mode, each session keyed by a uuid.UUID, with human-readable
// timestamps for its listings.
package history

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Entry is one saved document session available for the history browser.
type Entry struct {
	ID         uuid.UUID
	Path       string
	Title      string
	ModTime    time.Time
	SizeBytes  int64
}

// HumanModTime renders ModTime the way the history list shows it to the
// user, e.g. "3 hours ago".
func (e Entry) HumanModTime() string {
	return humanize.Time(e.ModTime)
}

// HumanSize renders SizeBytes as e.g. "4.2 kB".
func (e Entry) HumanSize() string {
	return humanize.Bytes(uint64(e.SizeBytes))
}

// NewID mints a session identifier the way a freshly created document
// gets stamped on first save.
func NewID() uuid.UUID {
	return uuid.New()
}

// List scans dir for Markdown files and returns Entry records sorted
// newest-first, capped at maxCount (0 means unlimited) and excluding
// files older than maxAge (0 means unlimited).
func List(dir string, maxCount int, maxAge time.Duration) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	cutoff := time.Time{}
	if maxAge > 0 {
		cutoff = time.Now().Add(-maxAge)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".md" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if !cutoff.IsZero() && info.ModTime().Before(cutoff) {
			continue
		}
		entries = append(entries, Entry{
			ID:        deriveID(filepath.Join(dir, f.Name())),
			Path:      filepath.Join(dir, f.Name()),
			Title:     titleFromName(f.Name()),
			ModTime:   info.ModTime(),
			SizeBytes: info.Size(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ModTime.After(entries[j].ModTime) })
	if maxCount > 0 && len(entries) > maxCount {
		entries = entries[:maxCount]
	}
	return entries, nil
}

// deriveID produces a stable identifier for a path that doesn't carry its
// own stamped session id, by hashing the path into the UUID v5 namespace.
func deriveID(path string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+path))
}

func titleFromName(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
