package spinner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/askpass/terminal"
)

var testSet = Set{
	Glyphs: []rune{'a', 'b', 'c'},
	Empty:  'E',
	Secure: 'S',
	Color:  36,
}

func TestEffectiveOffset(t *testing.T) {
	assert.Equal(t, 4, EffectiveOffset(KindEmpty, 4, 0))
	assert.Equal(t, 7, EffectiveOffset(KindForward, 4, 3))
	assert.Equal(t, 6, EffectiveOffset(KindBackward, 4, 2))
	assert.Equal(t, 4, EffectiveOffset(KindSecure, 4, 10))
}

func TestRenderer_Sequence(t *testing.T) {
	var buf bytes.Buffer
	out := terminal.NewOutput(&buf)
	r := New(testSet, out)

	r.Render(KindForward, 4, 1)
	require.NoError(t, out.Flush())

	// hide, save, move, colored glyph, restore, show
	assert.Equal(t, "\x1b[?25l\x1b7\x1b[5D\x1b[36ma\x1b[0m\x1b8\x1b[?25h", buf.String())
}

func TestRenderer_GlyphSelection(t *testing.T) {
	r := New(testSet, terminal.NewOutput(&bytes.Buffer{}))

	var got []rune
	for _, k := range []Kind{
		KindEmpty, KindForward, KindForward, KindForward,
		KindBackward, KindForward, KindSecure, KindForward,
	} {
		got = append(got, r.Glyph(k))
	}
	assert.Equal(t, []rune{'E', 'a', 'b', 'c', 'b', 'c', 'S', 'a'}, got)
}

func TestRenderer_FixedGlyphsDoNotAdvance(t *testing.T) {
	r := New(testSet, terminal.NewOutput(&bytes.Buffer{}))
	r.Glyph(KindForward)
	for range 5 {
		r.Glyph(KindEmpty)
		r.Glyph(KindSecure)
	}
	assert.Equal(t, 1, r.Cursor().Pos())
}

func TestRenderer_SecurePinsColumn(t *testing.T) {
	var buf bytes.Buffer
	out := terminal.NewOutput(&buf)
	r := New(testSet, out)

	for n := 1; n <= 3; n++ {
		r.Render(KindSecure, 4, n)
	}
	require.NoError(t, out.Flush())

	one := "\x1b[?25l\x1b7\x1b[4D\x1b[36mS\x1b[0m\x1b8\x1b[?25h"
	assert.Equal(t, one+one+one, buf.String())
}
