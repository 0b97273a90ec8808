package automaton

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/fae/pkg/domain"
)

// Reporter renders an evaluation result.
type Reporter interface {
	Report(result *domain.Result) error
}

// Option defines a functional option for configuring an Automaton.
type Option func(*Automaton)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Automaton) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Automaton) {
		a.hooks = hooks
	}
}

// WithReporter sets the renderer used by Evaluate when output is not suppressed.
func WithReporter(r Reporter) Option {
	return func(a *Automaton) {
		a.reporter = r
	}
}

// WithRand injects the random source used by the sampler.
func WithRand(r *rand.Rand) Option {
	return func(a *Automaton) {
		if r != nil {
			a.rand = r
		}
	}
}

// WithSeed seeds the sampler deterministically.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithPredicate installs the sampler's membership predicate.
func WithPredicate(p domain.Predicate) Option {
	return func(a *Automaton) {
		a.predicate = p
	}
}

// WithStart fixes the start state name. The state itself may be added later.
func WithStart(name string) Option {
	return func(a *Automaton) {
		a.start = name
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
