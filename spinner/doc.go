// Package spinner draws the animated indicator glyph next to the prompt.
//
// A render hides the cursor, saves its position, moves left to the indicator
// column, draws one colored glyph and restores position and visibility, so
// the text cursor is never displaced. Glyph selection is split from drawing:
// Cursor is a plain cyclic index and Renderer.Glyph advances it.
package spinner
