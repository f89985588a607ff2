package spinner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_Wraps(t *testing.T) {
	c := NewCursor(3)
	var got []int
	for range 7 {
		got = append(got, c.Next())
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, got)
	assert.Equal(t, 1, c.Pos())
}

func TestCursor_AdvanceNegative(t *testing.T) {
	c := NewCursor(5)
	c.Advance(-1)
	assert.Equal(t, 4, c.Pos())
	c.Advance(-12)
	assert.Equal(t, 2, c.Pos())
}

func TestCursor_ZeroLength(t *testing.T) {
	c := NewCursor(0)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Next())
}

// A backward step after k forward steps leaves the cursor at (k + N-1) mod N
func TestCursor_BackwardMath(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 24} {
		for k := 0; k < 3*n; k++ {
			c := NewCursor(n)
			for range k {
				c.Next()
			}
			c.Rewind()
			drawn := c.Next()

			assert.Equal(t, (k+n-1)%n, c.Pos(), "n=%d k=%d", n, k)
			if n > 1 {
				// The drawn glyph precedes the last forward glyph
				assert.Equal(t, ((k-2)%n+n)%n, drawn, "n=%d k=%d", n, k)
			}
		}
	}
}

func TestCursor_ForwardAfterBackwardResumes(t *testing.T) {
	c := NewCursor(24)
	for range 5 {
		c.Next()
	}
	// glyph 4 is on screen; one backspace shows glyph 3
	c.Rewind()
	assert.Equal(t, 3, c.Next())
	// typing again shows glyph 4, as if the backspace never happened
	assert.Equal(t, 4, c.Next())
}
