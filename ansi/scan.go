package ansi

import "unicode/utf8"

// Match is one recognized escape sequence within a scanned string
type Match struct {
	text  string
	Start int // byte offset of the introducer
	End   int // exclusive byte offset past the last accepted scalar
}

// String returns the escape sequence text
func (m Match) String() string {
	return m.text[m.Start:m.End]
}

// Len returns the byte length of the sequence
func (m Match) Len() int {
	return m.End - m.Start
}

// Scan finds the next escape sequence in s at or after byte offset pos.
// It returns the match, the offset the following search must resume from,
// and whether a match was found. The resume offset is never less than
// pos+1 once an introducer has been examined, so repeated calls terminate.
func Scan(s string, pos int) (Match, int, bool) {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if Classify(r) != ClassIntroducer {
			pos += size
			continue
		}

		start := pos
		state := StateStart
		end := -1

		// Greedy: run until trapped or out of input, remembering the last
		// accepting position
		for pos < len(s) {
			r, size = utf8.DecodeRuneInString(s[pos:])
			state = state.Next(r)
			if state.IsTrapped() {
				break
			}
			pos += size
			if state.IsFinal() {
				end = pos
			}
		}

		if end >= 0 {
			return Match{text: s, Start: start, End: end}, pos, true
		}
		// No accepting state reached: the trapping scalar has not been
		// consumed and may itself start a sequence
	}
	return Match{}, len(s), false
}

// Contains reports whether s holds at least one escape sequence
func Contains(s string) bool {
	_, _, ok := Scan(s, 0)
	return ok
}

// Matches iterates non-overlapping escape sequences of one string in order
type Matches struct {
	s   string
	pos int
}

// NewMatches creates a match iterator over s
func NewMatches(s string) *Matches {
	return &Matches{s: s}
}

// Next returns the next match, false once input is exhausted
func (m *Matches) Next() (Match, bool) {
	if m.pos >= len(m.s) {
		return Match{}, false
	}
	match, next, ok := Scan(m.s, m.pos)
	m.pos = next
	return match, ok
}
