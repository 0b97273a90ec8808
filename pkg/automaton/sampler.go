package automaton

import (
	"fmt"

	"github.com/aretw0/fae/pkg/domain"
)

// GenerateStrings draws count random words of exactly length symbols,
// labels each with the predicate, and appends them to the evaluation set.
// The generated cases are also returned.
func (a *Automaton) GenerateStrings(count, length int) ([]domain.TestCase, error) {
	if a.predicate == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrMissingPredicate, a.description)
	}
	if count < 0 || length < 0 {
		return nil, fmt.Errorf("%w: count=%d length=%d", domain.ErrInvalidSample, count, length)
	}
	symbols := a.alphabet.Symbols()
	if len(symbols) == 0 && length > 0 {
		return nil, fmt.Errorf("%w: empty alphabet cannot produce words of length %d", domain.ErrInvalidSample, length)
	}

	generated := make([]domain.TestCase, 0, count)
	for range count {
		w := make(domain.Word, length)
		for i := range w {
			w[i] = symbols[a.rand.IntN(len(symbols))]
		}
		generated = append(generated, domain.TestCase{Value: w, Expected: a.predicate(w)})
	}

	a.cases = append(a.cases, generated...)
	a.logger.Debug("strings generated", "automaton", a.description, "count", count, "length", length)
	return generated, nil
}
