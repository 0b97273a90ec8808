package fae

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/fae/pkg/automaton"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/loader"
	"github.com/aretw0/fae/pkg/ports"
	"github.com/google/uuid"
)

// Checker is the high-level entry point of the library.
// It loads diagram documents, evaluates every diagram and turns the results
// into reports, persisting them when a store is configured.
// A Checker is safe for concurrent use as long as its store and reporter are.
type Checker struct {
	logger   *slog.Logger
	store    ports.ReportStore
	hooks    domain.LifecycleHooks
	reporter automaton.Reporter
	seed     *uint64
	now      func() time.Time
}

// Option defines a functional option for configuring the Checker.
type Option func(*Checker)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStore persists every report to store.
func WithStore(store ports.ReportStore) Option {
	return func(c *Checker) {
		c.store = store
	}
}

// WithHooks registers lifecycle hooks on every loaded automaton.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Checker) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithSeed makes sampled strings reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Checker) {
		c.seed = &seed
	}
}

// WithReporter renders every result as it is produced.
func WithReporter(r automaton.Reporter) Option {
	return func(c *Checker) {
		c.reporter = r
	}
}

// New creates a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the configured report store, or nil.
func (c *Checker) Store() ports.ReportStore {
	return c.store
}

// Check parses a diagram document and evaluates every diagram in it.
// A load error aborts before anything is evaluated. A broken diagram (for
// example an incomplete transition table) stops the batch; the reports
// produced so far are returned with the error.
func (c *Checker) Check(ctx context.Context, data []byte) ([]*domain.Report, error) {
	diagrams, err := loader.Parse(data, c.loaderOptions()...)
	if err != nil {
		return nil, err
	}
	return c.checkDiagrams(ctx, diagrams)
}

// CheckFile is like Check but reads the document from path.
func (c *Checker) CheckFile(ctx context.Context, path string) ([]*domain.Report, error) {
	diagrams, err := loader.LoadFile(path, c.loaderOptions()...)
	if err != nil {
		return nil, err
	}
	return c.checkDiagrams(ctx, diagrams)
}

// CheckAutomaton evaluates an automaton built elsewhere, such as with the dsl
// package. The automaton keeps its own hooks.
func (c *Checker) CheckAutomaton(ctx context.Context, name string, fa *automaton.Automaton) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report, err := c.evaluate(name, fa)
	if err != nil {
		return nil, err
	}
	return report, c.record(ctx, report)
}

// evaluate runs the automaton's test cases. Its errors describe the diagram.
func (c *Checker) evaluate(name string, fa *automaton.Automaton) (*domain.Report, error) {
	if _, err := fa.Evaluate(true); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: c.now().UTC(),
		Result:    *fa.LastResult(),
	}
	c.logger.Debug("diagram checked",
		"report", report.ID,
		"name", name,
		"passed", report.Passed(),
		"mismatches", len(report.Result.Mismatches))
	return report, nil
}

// record renders and stores a report. Its errors describe the environment.
func (c *Checker) record(ctx context.Context, report *domain.Report) error {
	if c.reporter != nil {
		if err := c.reporter.Report(&report.Result); err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
	}
	if c.store != nil {
		if err := c.store.Save(ctx, report.ID, report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}
	return nil
}

// Report loads a stored report.
func (c *Checker) Report(ctx context.Context, id string) (*domain.Report, error) {
	if c.store == nil {
		return nil, fmt.Errorf("%w: %s (no store configured)", domain.ErrReportNotFound, id)
	}
	return c.store.Load(ctx, id)
}

// Reports lists stored report IDs.
func (c *Checker) Reports(ctx context.Context) ([]string, error) {
	if c.store == nil {
		return []string{}, nil
	}
	return c.store.List(ctx)
}

// AutomatonOptions returns the logger, hooks and seed the checker applies to
// the automata it loads, for automata built elsewhere.
func (c *Checker) AutomatonOptions() []automaton.Option {
	opts := []automaton.Option{
		automaton.WithLogger(c.logger),
		automaton.WithLifecycleHooks(c.hooks),
	}
	// Seeded per call, so concurrent checks never share a random source.
	if c.seed != nil {
		opts = append(opts, automaton.WithSeed(*c.seed))
	}
	return opts
}

func (c *Checker) loaderOptions() []loader.Option {
	return []loader.Option{
		loader.WithLogger(c.logger),
		loader.WithAutomatonOptions(c.AutomatonOptions()...),
	}
}

// checkDiagrams attributes only evaluation failures to a diagram, as a
// *loader.Error. Cancellation, render and store failures are returned as is.
func (c *Checker) checkDiagrams(ctx context.Context, diagrams []loader.Diagram) ([]*domain.Report, error) {
	reports := make([]*domain.Report, 0, len(diagrams))
	for i, d := range diagrams {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := c.evaluate(d.Name, d.Automaton)
		if err != nil {
			return reports, &loader.Error{Index: i, Name: d.Name, Err: err}
		}
		reports = append(reports, report)
		if err := c.record(ctx, report); err != nil {
			return reports, err
		}
	}
	return reports, nil
}
