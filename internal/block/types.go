// Package block implements the block-structured incremental parser: it
// partitions a document into a typed sequence of top-level blocks,
// pre-parses paragraph-like blocks into inline runs, and caches each
// block's virtual-row layout.
package block

import (
	"github.com/2legit2git/dawn/internal/mdstyle"
	"github.com/2legit2git/dawn/internal/recognize"
	"github.com/2legit2git/dawn/internal/sink"
)

// Kind tags a Block's variant.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeader
	KindCode
	KindMath
	KindTable
	KindImage
	KindHR
	KindBlockquote
	KindListItem
	KindFootnoteDef
)

// RunKind tags an inline run's type.
type RunKind int

const (
	RunText RunKind = iota
	RunLink
	RunFootnoteRef
	RunInlineMath
	RunEmoji
	RunHeadingID
	RunAutolink
	RunEntity
	RunEscape
)

// Run is one styled inline span within a paragraph-like block.
type Run struct {
	Start, End int
	Style      mdstyle.Style
	Kind       RunKind

	// Payloads, populated according to Kind.
	URLStart, URLEnd       int // RunLink, RunAutolink
	TextStart, TextEnd     int // RunLink: the bracketed display text
	FootnoteIDStart, FootnoteIDEnd int // RunFootnoteRef
	MathStart, MathEnd     int // RunInlineMath
	EmojiGlyph             string // RunEmoji
	HeadingIDStart, HeadingIDEnd int // RunHeadingID
	EntityText              string // RunEntity
	IsEmailAutolink          bool   // RunAutolink
	EscapedByte              byte   // RunEscape
}

// TableRow is one row's cells within a Table block's source range.
type TableRow struct {
	Cells []recognize.Cell
}

// Block is a tagged-variant document element tiling a byte range.
type Block struct {
	Kind       Kind
	Start, End int

	// Virtual-row cache.
	VRowStart int
	VRowCount int

	// Paragraph / Blockquote / ListItem / FootnoteDef share the "runs"
	// field for their pre-parsed inline content.
	Runs []Run

	// Header
	HeaderLevel        int
	HeaderContentStart int
	HeadingIDStart     int
	HeadingIDEnd       int
	HasHeadingID       bool

	// Code
	LangStart, LangEnd       int
	CodeContentStart, CodeContentEnd int
	// Lazily computed highlight output; each block owns its own cache.
	HighlightCache []byte

	// Math
	MathContentStart, MathContentEnd int
	SketchCache *sink.Sketch

	// Table
	ColCount int
	Aligns   []recognize.Align
	Rows     []TableRow

	// Image
	AltStart, AltEnd   int
	PathStart, PathEnd int
	Width, Height      int
	WidthSet, HeightSet bool
	ResolvedPath        string

	// Blockquote
	QuoteLevel int

	// ListItem
	Ordered      bool
	Indent       int
	TaskState    recognize.TaskState
	ItemNumber   int
	ContentStart int

	// FootnoteDef
	FootnoteIDStart, FootnoteIDEnd int
}
