// @focus: #text { ansi }
// Package ansi recognizes and strips ANSI/VT escape sequences embedded in text.
//
// Recognition is a deterministic finite automaton over Unicode scalar values.
// A candidate sequence starts at ESC (U+001B) or CSI (U+009B) and is matched
// greedily: the automaton keeps consuming until it traps, and the match ends
// at the last accepting position seen on the way.
//
// Three layers are exposed:
//   - Scan / Matches: locate the next escape sequence
//   - Spans: partition text into alternating plain and escape spans
//   - Strip: drop escape spans, returning the input untouched if none exist
//
// All functions are pure and allocation-free except Strip on inputs that
// actually contain escape sequences.
package ansi
