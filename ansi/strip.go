package ansi

import "strings"

// Strip removes every escape sequence from s.
// When s holds none, s itself is returned without copying.
//
// Removing a sequence can splice a dangling introducer onto text that
// completes it (ESC ESC[0m [0m), so stripping repeats until no sequence
// remains; this keeps Strip idempotent.
func Strip(s string) string {
	for Contains(s) {
		s = stripOnce(s)
	}
	return s
}

// stripOnce concatenates the plain spans of s
func stripOnce(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for sp := range NewSpans(s).All() {
		if !sp.Escape {
			b.WriteString(sp.Text)
		}
	}
	return b.String()
}
