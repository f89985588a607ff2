package ansi

import "strconv"

// State is a position in the escape-sequence automaton
// Carries no data; identity alone determines behavior
type State uint8

const (
	StateStart State = iota
	State1           // introducer seen
	State2           // charset designator ( or )
	State3           // designator + 0-2 (accepting)
	State4           // intermediate run: [ # ? ; after introducer
	State5           // first digit of a parameter (accepting)
	State6           // second digit (accepting)
	State7           // third digit (accepting)
	State8           // fourth digit (accepting)
	State9           // fifth digit, no further digits allowed (accepting)
	State10          // parameter separator ;
	State11          // final byte consumed (accepting)
	StateTrap        // no valid continuation

	stateCount
)

// Class is the character class an input scalar belongs to
// The automaton only ever looks at classes, never at raw scalars
type Class uint8

const (
	ClassOther      Class = iota
	ClassIntroducer       // ESC, CSI
	ClassParen            // ( )
	ClassSemicolon        // ;
	ClassBracket          // [ # ?
	ClassDigitLow         // 0-2
	ClassDigitHigh        // 3-9
	ClassFinal            // A-P R Z c f-n q r y = > <

	classCount
)

// Classify maps a scalar to its automaton character class
func Classify(r rune) Class {
	switch {
	case r == 0x1b || r == 0x9b:
		return ClassIntroducer
	case r == '(' || r == ')':
		return ClassParen
	case r == ';':
		return ClassSemicolon
	case r == '[' || r == '#' || r == '?':
		return ClassBracket
	case r >= '0' && r <= '2':
		return ClassDigitLow
	case r >= '3' && r <= '9':
		return ClassDigitHigh
	case r >= 'A' && r <= 'P', r == 'R', r == 'Z',
		r == 'c', r >= 'f' && r <= 'n', r == 'q', r == 'r', r == 'y',
		r == '=', r == '>', r == '<':
		return ClassFinal
	}
	return ClassOther
}

// transitions[state][class] -> next state
// Missing entries are the zero value, which is remapped to StateTrap in init
var transitions [stateCount][classCount]State

func init() {
	for s := range transitions {
		for c := range transitions[s] {
			transitions[s][c] = StateTrap
		}
	}

	set := func(c Class, next State, from ...State) {
		for _, s := range from {
			transitions[s][c] = next
		}
	}

	set(ClassIntroducer, State1, StateStart)

	set(ClassParen, State2, State1)
	set(ClassParen, State4, State2, State4)

	set(ClassSemicolon, State4, State1, State2, State4)
	set(ClassSemicolon, State10, State5, State6, State7, State8, State10)

	set(ClassBracket, State4, State1, State2, State4)

	// Digit runs: up to five digits per parameter, separators restart the run
	for _, c := range []Class{ClassDigitLow, ClassDigitHigh} {
		set(c, State5, State1, State4, State10)
		set(c, State6, State5)
		set(c, State7, State6)
		set(c, State8, State7)
		set(c, State9, State8)
	}
	// Charset designators take a single low digit as their final
	set(ClassDigitLow, State3, State2)
	set(ClassDigitHigh, State5, State2)

	set(ClassFinal, State11, State1, State2, State4, State5, State6, State7, State8, State10)
}

// Next returns the state reached by consuming r
func (s State) Next(r rune) State {
	if s >= stateCount {
		return StateTrap
	}
	return transitions[s][Classify(r)]
}

// IsFinal reports whether the sequence consumed so far is a complete escape
func (s State) IsFinal() bool {
	switch s {
	case State3, State5, State6, State7, State8, State9, State11:
		return true
	}
	return false
}

// IsTrapped reports whether no further transition can lead to acceptance
func (s State) IsTrapped() bool {
	return s == StateTrap
}

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateTrap:
		return "trap"
	}
	if s < stateCount {
		return "s" + strconv.Itoa(int(s))
	}
	return "invalid"
}
