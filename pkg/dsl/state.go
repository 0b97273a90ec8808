package dsl

import "github.com/aretw0/fae/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name        string
	transitions map[domain.Symbol]string
	accepting   bool
	builder     *Builder
}

// On adds the transition taken on symbol.
func (s *StateBuilder) On(symbol domain.Symbol, target string) *StateBuilder {
	s.transitions[symbol] = target
	return s
}

// Loop makes every given symbol stay in this state.
func (s *StateBuilder) Loop(symbols ...domain.Symbol) *StateBuilder {
	for _, sym := range symbols {
		s.transitions[sym] = s.name
	}
	return s
}

// Otherwise sends every alphabet symbol without a transition yet to target.
func (s *StateBuilder) Otherwise(target string) *StateBuilder {
	for _, sym := range s.builder.alphabet.Symbols() {
		if _, ok := s.transitions[sym]; !ok {
			s.transitions[sym] = target
		}
	}
	return s
}

// Accepting marks the state as accepting.
func (s *StateBuilder) Accepting() *StateBuilder {
	s.accepting = true
	return s
}

// State continues with another state declaration.
func (s *StateBuilder) State(name string) *StateBuilder {
	return s.builder.State(name)
}

// Build returns the underlying domain.State.
// This is primarily used by the Builder, but exposed for advanced usage.
func (s *StateBuilder) Build() domain.State {
	return domain.NewState(s.name, s.transitions, s.accepting)
}
