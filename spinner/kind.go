package spinner

// Kind selects what a render step shows
type Kind uint8

const (
	KindEmpty    Kind = iota // buffer empty: fixed empty glyph
	KindForward              // character added: next glyph in the cycle
	KindBackward             // character removed: previous glyph in the cycle
	KindSecure               // secure mode: fixed glyph, pinned column
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindForward:
		return "forward"
	case KindBackward:
		return "backward"
	case KindSecure:
		return "secure"
	}
	return "unknown"
}

// EffectiveOffset returns how many columns left of the text cursor the glyph
// is drawn. Secure mode ignores the buffer length so typing reveals nothing.
func EffectiveOffset(kind Kind, offset, bufLen int) int {
	if kind == KindSecure {
		return offset
	}
	return offset + bufLen
}
