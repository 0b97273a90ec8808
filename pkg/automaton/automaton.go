package automaton

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/fae/pkg/domain"
)

// Automaton is a deterministic finite automaton together with the test cases
// it is checked against.
type Automaton struct {
	alphabet    *domain.Alphabet
	description string

	states map[string]domain.State
	order  []string
	start  string

	cases     []domain.TestCase
	predicate domain.Predicate

	rand     *rand.Rand
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	reporter Reporter

	last *domain.Result
}

// New creates an empty automaton over alphabet.
func New(alphabet *domain.Alphabet, description string, opts ...Option) *Automaton {
	a := &Automaton{
		alphabet:    alphabet,
		description: description,
		states:      make(map[string]domain.State),
		logger:      discardLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rand == nil {
		a.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return a
}

// Alphabet returns the shared alphabet.
func (a *Automaton) Alphabet() *domain.Alphabet {
	return a.alphabet
}

// Description returns the human description of the language.
func (a *Automaton) Description() string {
	return a.description
}

// Start returns the start state name, or "" when no state was added yet.
func (a *Automaton) Start() string {
	return a.start
}

// Len returns the number of states.
func (a *Automaton) Len() int {
	return len(a.order)
}

// AddState registers a state. The first state added becomes the start state
// unless one was set explicitly.
func (a *Automaton) AddState(s domain.State) error {
	if _, exists := a.states[s.Name()]; exists {
		return fmt.Errorf("%w: %q in %q", domain.ErrDuplicateState, s.Name(), a.description)
	}
	a.states[s.Name()] = s
	a.order = append(a.order, s.Name())
	if a.start == "" {
		a.start = s.Name()
	}
	a.logger.Debug("state added", "automaton", a.description, "state", s.Name(), "accepting", s.Accepting())
	return nil
}

// AddStates adds states in order and stops at the first failure.
// States added before the failure are kept.
func (a *Automaton) AddStates(states ...domain.State) error {
	for _, s := range states {
		if err := a.AddState(s); err != nil {
			return err
		}
	}
	return nil
}

// State looks a state up by name.
func (a *Automaton) State(name string) (domain.State, error) {
	s, ok := a.states[name]
	if !ok {
		return domain.State{}, fmt.Errorf("%w: %q in %q", domain.ErrStateNotFound, name, a.description)
	}
	return s, nil
}

// States returns the states in insertion order.
func (a *Automaton) States() []domain.State {
	out := make([]domain.State, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.states[name])
	}
	return out
}

// SetStart makes name the start state.
func (a *Automaton) SetStart(name string) error {
	if _, err := a.State(name); err != nil {
		return err
	}
	a.start = name
	return nil
}

// AddString appends a test case to the evaluation set.
func (a *Automaton) AddString(tc domain.TestCase) {
	a.cases = append(a.cases, tc)
}

// AddStrings appends test cases to the evaluation set.
func (a *Automaton) AddStrings(tcs ...domain.TestCase) {
	a.cases = append(a.cases, tcs...)
}

// TestCases returns a copy of the evaluation set.
func (a *Automaton) TestCases() []domain.TestCase {
	out := make([]domain.TestCase, len(a.cases))
	copy(out, a.cases)
	return out
}

// SetPredicate installs the membership predicate used by GenerateStrings.
func (a *Automaton) SetPredicate(p domain.Predicate) {
	a.predicate = p
}

// LastResult returns the result of the latest Evaluate call, or nil.
func (a *Automaton) LastResult() *domain.Result {
	return a.last
}
