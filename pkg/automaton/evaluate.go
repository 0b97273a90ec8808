package automaton

import (
	"fmt"
	"time"

	"github.com/aretw0/fae/pkg/domain"
)

// Evaluate checks every test case and reports whether the diagram matched all
// expectations. Unless suppressOutput is set, the result is handed to the
// configured Reporter. Mismatches are not errors; errors are reserved for a
// broken automaton (no states, incomplete transition table).
func (a *Automaton) Evaluate(suppressOutput bool) (bool, error) {
	a.last = nil
	result, err := a.Check()
	if err != nil {
		return false, err
	}
	a.last = result

	if !suppressOutput && a.reporter != nil {
		if err := a.reporter.Report(result); err != nil {
			return result.Passed, fmt.Errorf("failed to render result: %w", err)
		}
	}
	return result.Passed, nil
}

// Check computes a fresh Result without rendering it.
func (a *Automaton) Check() (*domain.Result, error) {
	if len(a.order) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrEmptyStates, a.description)
	}
	if _, err := a.State(a.start); err != nil {
		return nil, fmt.Errorf("start state: %w", err)
	}

	if a.hooks.OnEvaluationStart != nil {
		a.hooks.OnEvaluationStart(&domain.EvaluationEvent{
			EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventEvaluationStart},
			Description: a.description,
			Cases:       len(a.cases),
		})
	}

	result := &domain.Result{
		Description: a.description,
		Alphabet:    a.alphabet.Symbols(),
		Start:       a.start,
		Traces:      make([]domain.Trace, 0, len(a.cases)),
	}

	for _, tc := range a.cases {
		trace, err := a.evaluateCase(tc)
		if err != nil {
			a.endEvaluation(result, err)
			return nil, err
		}
		result.Traces = append(result.Traces, trace)

		outcome := domain.OutcomeMatch
		switch {
		case trace.Foreign:
			outcome = domain.OutcomeForeign
			result.Foreign = append(result.Foreign, tc)
		case trace.Mismatch():
			outcome = domain.OutcomeMismatch
			result.Mismatches = append(result.Mismatches, tc)
		}

		if a.hooks.OnStringEvaluated != nil {
			a.hooks.OnStringEvaluated(&domain.StringEvent{
				EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventStringEvaluated},
				Description: a.description,
				Value:       tc.Value.String(),
				Steps:       len(tc.Value),
				Outcome:     outcome,
			})
		}
	}
	result.Passed = len(result.Mismatches) == 0

	a.logger.Debug("evaluation finished",
		"automaton", a.description,
		"cases", len(a.cases),
		"mismatches", len(result.Mismatches),
		"foreign", len(result.Foreign),
		"passed", result.Passed,
	)

	a.endEvaluation(result, nil)
	return result, nil
}

// endEvaluation closes the bracket opened by OnEvaluationStart. A failed
// evaluation reports the counts reached so far and never passes.
func (a *Automaton) endEvaluation(result *domain.Result, err error) {
	if a.hooks.OnEvaluationEnd == nil {
		return
	}
	e := &domain.EvaluationEvent{
		EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventEvaluationEnd},
		Description: a.description,
		Cases:       len(a.cases),
		Mismatches:  len(result.Mismatches),
		Foreign:     len(result.Foreign),
		Passed:      err == nil && result.Passed,
	}
	if err != nil {
		e.Error = err.Error()
	}
	a.hooks.OnEvaluationEnd(e)
}

// Accepts walks w from the start state and returns the verdict.
// Words outside the alphabet are rejected without a walk.
func (a *Automaton) Accepts(w domain.Word) (bool, error) {
	if len(a.order) == 0 {
		return false, fmt.Errorf("%w: %q", domain.ErrEmptyStates, a.description)
	}
	if !a.alphabet.Accepts(w) {
		return false, nil
	}
	final, _, err := a.walk(w, false)
	if err != nil {
		return false, err
	}
	return final.Accepting(), nil
}

// Trace walks w and records the visited states. Expected is left false, so
// only Path, Verdict and Foreign are meaningful.
func (a *Automaton) Trace(w domain.Word) (domain.Trace, error) {
	if len(a.order) == 0 {
		return domain.Trace{}, fmt.Errorf("%w: %q", domain.ErrEmptyStates, a.description)
	}
	return a.evaluateCase(domain.TestCase{Value: w})
}

func (a *Automaton) evaluateCase(tc domain.TestCase) (domain.Trace, error) {
	trace := domain.Trace{
		Value:    tc.Value,
		Expected: tc.Expected,
	}
	if !a.alphabet.Accepts(tc.Value) {
		trace.Foreign = true
		return trace, nil
	}

	final, path, err := a.walk(tc.Value, true)
	if err != nil {
		return domain.Trace{}, err
	}
	trace.Path = path
	trace.Verdict = final.Accepting()
	return trace, nil
}

// walk consumes w symbol by symbol from the start state.
func (a *Automaton) walk(w domain.Word, record bool) (domain.State, []string, error) {
	current, err := a.State(a.start)
	if err != nil {
		return domain.State{}, nil, err
	}

	var path []string
	if record {
		path = make([]string, 0, len(w)+1)
		path = append(path, current.Name())
	}

	for i, sym := range w {
		nextName, ok := current.Next(sym)
		if !ok {
			return domain.State{}, nil, fmt.Errorf("%w: state %q has no transition on %q (position %d of %q)",
				domain.ErrStateNotFound, current.Name(), sym, i, w.String())
		}
		next, err := a.State(nextName)
		if err != nil {
			return domain.State{}, nil, fmt.Errorf("transition %q --%s--> %q: %w", current.Name(), sym, nextName, err)
		}
		current = next
		if record {
			path = append(path, current.Name())
		}
	}
	return current, path, nil
}
