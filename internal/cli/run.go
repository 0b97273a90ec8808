package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fae"
	"github.com/aretw0/fae/internal/presentation/report"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/ports"
)

// CheckOptions contains all the configuration for the check command.
type CheckOptions struct {
	Paths  []string
	Format report.Format
	Color  bool
	Seed   *uint64
	Store  ports.ReportStore
	Hooks  domain.LifecycleHooks
	Logger *slog.Logger
}

func (o CheckOptions) checker(reporter fae.Option) *fae.Checker {
	opts := []fae.Option{
		fae.WithLogger(o.Logger),
		fae.WithStore(o.Store),
		fae.WithHooks(o.Hooks),
		reporter,
	}
	if o.Seed != nil {
		opts = append(opts, fae.WithSeed(*o.Seed))
	}
	return fae.New(opts...)
}

// RunCheck checks every diagram file in order and reports whether all
// diagrams passed. Text and markdown output are streamed per diagram; JSON
// output is a single array of reports written at the end.
func RunCheck(ctx context.Context, opts CheckOptions, out io.Writer) (bool, error) {
	if len(opts.Paths) == 0 {
		return false, fmt.Errorf("no diagram files given")
	}

	reporter := fae.WithReporter(nil)
	if opts.Format != report.FormatJSON {
		r, err := report.New(opts.Format, out, opts.Color)
		if err != nil {
			return false, err
		}
		reporter = fae.WithReporter(r)
	}
	checker := opts.checker(reporter)

	passed := true
	var all []*domain.Report
	for _, path := range opts.Paths {
		reports, err := checker.CheckFile(ctx, path)
		all = append(all, reports...)
		if err != nil {
			return false, err
		}
		for _, r := range reports {
			passed = passed && r.Passed()
		}
	}

	if opts.Format == report.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(all); err != nil {
			return false, err
		}
	}
	return passed, nil
}
