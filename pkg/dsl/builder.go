package dsl

import (
	"fmt"

	"github.com/aretw0/fae/pkg/automaton"
	"github.com/aretw0/fae/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	alphabet    *domain.Alphabet
	description string
	states      map[string]*StateBuilder
	order       []string
	start       string
	cases       []domain.TestCase
}

// New creates a new builder over the given symbols.
func New(description string, symbols ...domain.Symbol) *Builder {
	return &Builder{
		alphabet:    domain.NewAlphabet(symbols...),
		description: description,
		states:      make(map[string]*StateBuilder),
	}
}

// State declares a state, or returns the existing builder for that name.
// Declaration order is kept; the first declared state is the start state.
func (b *Builder) State(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{
		name:        name,
		transitions: make(map[domain.Symbol]string),
		builder:     b,
	}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Start overrides the start state.
func (b *Builder) Start(name string) *Builder {
	b.start = name
	return b
}

// Valid adds words that must be accepted.
func (b *Builder) Valid(values ...string) *Builder {
	for _, v := range values {
		b.cases = append(b.cases, domain.NewTestCase(v, true))
	}
	return b
}

// Invalid adds words that must be rejected.
func (b *Builder) Invalid(values ...string) *Builder {
	for _, v := range values {
		b.cases = append(b.cases, domain.NewTestCase(v, false))
	}
	return b
}

// Build compiles the declarations into an Automaton.
func (b *Builder) Build(opts ...automaton.Option) (*automaton.Automaton, error) {
	fa := automaton.New(b.alphabet, b.description, opts...)

	for _, name := range b.order {
		if err := fa.AddState(b.states[name].Build()); err != nil {
			return nil, fmt.Errorf("failed to build automaton: %w", err)
		}
	}
	if b.start != "" {
		if err := fa.SetStart(b.start); err != nil {
			return nil, fmt.Errorf("failed to build automaton: %w", err)
		}
	}
	fa.AddStrings(b.cases...)
	return fa, nil
}
