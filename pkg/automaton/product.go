package automaton

import (
	"fmt"

	"github.com/aretw0/fae/pkg/domain"
)

// Operation selects how product states decide acceptance.
type Operation int

const (
	OpIntersection Operation = iota
	OpUnion
	OpDifference
)

func (op Operation) String() string {
	switch op {
	case OpIntersection:
		return "intersection"
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// ParseOperation maps "intersection", "union" or "difference" to an Operation.
func ParseOperation(s string) (Operation, error) {
	for _, op := range []Operation{OpIntersection, OpUnion, OpDifference} {
		if op.String() == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

func (op Operation) accepting(a, b bool) bool {
	switch op {
	case OpIntersection:
		return a && b
	case OpUnion:
		return a || b
	case OpDifference:
		return a && !b
	}
	return false
}

// Intersection returns an automaton accepting words accepted by both a and other.
func (a *Automaton) Intersection(other *Automaton) (*Automaton, error) {
	return Combine(OpIntersection, a, other)
}

// Union returns an automaton accepting words accepted by a or other.
func (a *Automaton) Union(other *Automaton) (*Automaton, error) {
	return Combine(OpUnion, a, other)
}

// Difference returns an automaton accepting words accepted by a but not by other.
func (a *Automaton) Difference(other *Automaton) (*Automaton, error) {
	return Combine(OpDifference, a, other)
}

// Combine builds the synchronized product of a and b.
//
// Every pair (sA, sB) becomes a state named sA+sB, iterating a's states in
// the outer loop and b's in the inner loop. Transitions concatenate the
// targets the same way, so composite lookups always resolve to composite
// names. The start state is the pair of both start states. Neither input is
// modified and the result has no test cases. The result inherits a's logger,
// hooks and reporter; opts are applied after those, and without WithRand or
// WithSeed the result gets its own unseeded random source.
func Combine(op Operation, a, b *Automaton, opts ...Option) (*Automaton, error) {
	if !a.alphabet.Equal(b.alphabet) {
		return nil, fmt.Errorf("%w: %s vs %s", domain.ErrLanguageMismatch, a.alphabet, b.alphabet)
	}

	desc := fmt.Sprintf("the %s of %s and %s", op, a.description, b.description)
	inherited := []Option{
		WithLogger(a.logger),
		WithLifecycleHooks(a.hooks),
		WithReporter(a.reporter),
	}
	product := New(a.alphabet, desc, append(inherited, opts...)...)

	symbols := a.alphabet.Symbols()
	for _, sa := range a.States() {
		for _, sb := range b.States() {
			transitions := make(map[domain.Symbol]string, len(symbols))
			for _, sym := range symbols {
				na, okA := sa.Next(sym)
				nb, okB := sb.Next(sym)
				if !okA || !okB {
					// Left undefined; a walk over sym fails with ErrStateNotFound.
					continue
				}
				transitions[sym] = na + nb
			}
			state := domain.NewState(sa.Name()+sb.Name(), transitions, op.accepting(sa.Accepting(), sb.Accepting()))
			if err := product.AddState(state); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	if a.start != "" && b.start != "" {
		if err := product.SetStart(a.start + b.start); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	product.logger.Debug("product constructed", "automaton", desc, "operation", op.String(), "states", product.Len())
	return product, nil
}
