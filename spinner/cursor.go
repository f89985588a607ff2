package spinner

// Cursor is an endless cyclic index over a glyph sequence of fixed length
type Cursor struct {
	pos int
	n   int
}

// NewCursor creates a cursor at position 0 over n glyphs
// n < 1 is treated as 1
func NewCursor(n int) *Cursor {
	if n < 1 {
		n = 1
	}
	return &Cursor{n: n}
}

// Len returns the cycle length
func (c *Cursor) Len() int { return c.n }

// Pos returns the index the next call to Next will yield
func (c *Cursor) Pos() int { return c.pos }

// Advance moves the cursor k steps forward, wrapping; negative k moves back
func (c *Cursor) Advance(k int) {
	c.pos = ((c.pos+k)%c.n + c.n) % c.n
}

// Next yields the current index and advances by one
func (c *Cursor) Next() int {
	i := c.pos
	c.Advance(1)
	return i
}

// Rewind prepares a backward step: the following Next yields the glyph
// before the one last yielded, and leaves the cursor one position behind
// where a pure forward sequence would be. Assumes exactly one Next per
// forward keystroke.
func (c *Cursor) Rewind() {
	c.Advance(c.n - 2)
}
