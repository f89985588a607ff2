package spinner

import (
	"github.com/lixenwraith/askpass/terminal"
)

// Set is the glyph configuration of one prompt session
type Set struct {
	Glyphs []rune // animation cycle, non-empty
	Empty  rune   // shown while the buffer is empty
	Secure rune   // shown for every keystroke in secure mode
	Color  int    // SGR color code for the glyph
}

// Renderer draws indicator glyphs onto a terminal output
// Owns the cycle position for the session
type Renderer struct {
	set    Set
	cursor *Cursor
	out    *terminal.Output
}

// New creates a renderer writing to out
func New(set Set, out *terminal.Output) *Renderer {
	return &Renderer{
		set:    set,
		cursor: NewCursor(len(set.Glyphs)),
		out:    out,
	}
}

// Cursor exposes the cycle position
func (r *Renderer) Cursor() *Cursor {
	return r.cursor
}

// Glyph picks the glyph for kind, advancing the cycle for forward and
// backward steps only
func (r *Renderer) Glyph(kind Kind) rune {
	switch kind {
	case KindEmpty:
		return r.set.Empty
	case KindSecure:
		return r.set.Secure
	case KindBackward:
		r.cursor.Rewind()
	}
	if len(r.set.Glyphs) == 0 {
		return r.set.Empty
	}
	return r.set.Glyphs[r.cursor.Next()]
}

// Render draws the glyph for kind at the indicator column.
// offset is the distance from the end of the prompt back to the placeholder;
// bufLen is the number of characters typed so far.
// Bytes are buffered; the caller flushes.
func (r *Renderer) Render(kind Kind, offset, bufLen int) {
	col := EffectiveOffset(kind, offset, bufLen)
	glyph := r.Glyph(kind)

	r.out.HideCursor()
	r.out.SaveCursor()
	r.out.CursorBackward(col)
	r.out.ColoredRune(r.set.Color, glyph)
	r.out.RestoreCursor()
	r.out.ShowCursor()
}
