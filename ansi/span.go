package ansi

import "iter"

// Span is a contiguous slice of the input that is either plain text or a
// single escape sequence
type Span struct {
	Text   string
	Escape bool
}

// Spans partitions a string into plain and escape spans.
// Concatenating every span's Text in order reproduces the input exactly;
// no span is empty.
type Spans struct {
	s       string
	matches *Matches
	last    int // end of the most recently emitted region

	pending    Span
	hasPending bool
}

// NewSpans creates a span iterator over s
// Iteration is single-pass; construct a new iterator to restart
func NewSpans(s string) *Spans {
	return &Spans{s: s, matches: NewMatches(s)}
}

// Next returns the next span, false when the input is fully covered
func (it *Spans) Next() (Span, bool) {
	if it.hasPending {
		it.hasPending = false
		return it.pending, true
	}

	if m, ok := it.matches.Next(); ok {
		plain := it.s[it.last:m.Start]
		it.last = m.End
		esc := Span{Text: m.String(), Escape: true}
		if plain == "" {
			return esc, true
		}
		it.pending, it.hasPending = esc, true
		return Span{Text: plain}, true
	}

	if it.last < len(it.s) {
		rest := it.s[it.last:]
		it.last = len(it.s)
		return Span{Text: rest}, true
	}
	return Span{}, false
}

// All adapts the iterator for range-over-func
func (it *Spans) All() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for {
			sp, ok := it.Next()
			if !ok || !yield(sp) {
				return
			}
		}
	}
}
