// Package mdstyle defines the inline style bitset and header-level
// encoding shared by the recognizer, block, and renderer packages.
package mdstyle

// Style is a bitset of inline styles. Header levels are tracked
// separately via LineStyle since they are line-level and mutually
// exclusive with each other (but not with inline styles).
type Style uint16

const (
	Bold Style = 1 << iota
	Italic
	Code
	Strike
	Mark
	Sub
	Sup
)

// Has reports whether s contains all bits of other.
func (s Style) Has(other Style) bool { return s&other == other }

// Add returns s with other's bits set.
func (s Style) Add(other Style) Style { return s | other }

// Remove returns s with other's bits cleared.
func (s Style) Remove(other Style) Style { return s &^ other }

// LineStyle encodes the header level of a line: 0 means "no header",
// 1..6 correspond to H1..H6.
type LineStyle int

const (
	NoHeader LineStyle = 0
)

// IsHeader reports whether ls names an H1..H6 level.
func (ls LineStyle) IsHeader() bool { return ls >= 1 && ls <= 6 }

// Delim describes one recognized inline style delimiter.
type Delim struct {
	Text  string
	Style Style
}

// Delims lists every recognized inline delimiter, longest-match first so
// a scanner trying each entry in order naturally prefers "**" over "*".
var Delims = []Delim{
	{"**", Bold},
	{"~~", Strike},
	{"==", Mark},
	{"*", Italic},
	{"_", Italic},
	{"`", Code},
}

// MaxStyleStackDepth bounds inline style nesting: a parse that would
// push a 9th open style instead renders the remainder of that span
// literally.
const MaxStyleStackDepth = 8
