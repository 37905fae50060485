package block

import "github.com/2legit2git/dawn/internal/recognize"

// Cache holds the parsed block sequence together with the keys it was
// computed from: it is invalidated wholesale on any text
// mutation or a (wrap_width, text_height) change, and reparses from byte
// 0 on demand.
type Cache struct {
	blocks     []Block
	totalVrows int
	wrapWidth  int
	textHeight int
	textLen    int
	valid      bool
}

// Invalidate marks the cache stale; the next EnsureParsed call reparses
// from scratch. Every block's lazily computed artifacts (highlight
// buffer, sketch, resolved path) are released by dropping the whole
// slice.
func (c *Cache) Invalidate() {
	c.valid = false
	c.blocks = nil
	c.totalVrows = 0
}

// EnsureParsed reparses src if the cache is invalid or the geometry keys
// (wrapWidth, textHeight) changed since the last parse, and returns the
// resulting blocks.
func (c *Cache) EnsureParsed(src recognize.Source, wrapWidth, textHeight int, geo Geometry) []Block {
	l := src.Len()
	if c.valid && c.wrapWidth == wrapWidth && c.textHeight == textHeight && c.textLen == l {
		return c.blocks
	}
	c.blocks = Parse(src, wrapWidth, textHeight, geo)
	c.wrapWidth = wrapWidth
	c.textHeight = textHeight
	c.textLen = l
	c.totalVrows = 0
	for _, b := range c.blocks {
		end := b.VRowStart + b.VRowCount
		if end > c.totalVrows {
			c.totalVrows = end
		}
	}
	c.valid = true
	return c.blocks
}

// Valid reports whether the cache currently holds a parse consistent with
// its last-seen keys (callers typically don't need this directly; it's
// exposed for tests of the invalidation contract).
func (c *Cache) Valid() bool { return c.valid }

// Blocks returns the most recently parsed block slice without
// reparsing, which may be stale if the cache is invalid.
func (c *Cache) Blocks() []Block { return c.blocks }

// TotalVRows returns the document's total virtual-row count from the
// last parse.
func (c *Cache) TotalVRows() int { return c.totalVrows }
