package domain

// State is a named node of an automaton.
// It is an immutable value: the constructor copies the transition table and
// accessors never hand out the internal map.
type State struct {
	name        string
	transitions map[Symbol]string
	accepting   bool
}

// NewState creates a state. transitions maps every alphabet symbol to the
// name of the next state; gaps are only detected when a walk hits them.
func NewState(name string, transitions map[Symbol]string, accepting bool) State {
	t := make(map[Symbol]string, len(transitions))
	for sym, next := range transitions {
		t[sym] = next
	}
	return State{
		name:        name,
		transitions: t,
		accepting:   accepting,
	}
}

// Name returns the state identifier.
func (s State) Name() string {
	return s.name
}

// Accepting reports whether words ending here are in the language.
func (s State) Accepting() bool {
	return s.accepting
}

// Next returns the name of the state reached on sym.
func (s State) Next(sym Symbol) (string, bool) {
	next, ok := s.transitions[sym]
	return next, ok
}

// Transitions returns a copy of the transition table.
func (s State) Transitions() map[Symbol]string {
	out := make(map[Symbol]string, len(s.transitions))
	for sym, next := range s.transitions {
		out[sym] = next
	}
	return out
}
