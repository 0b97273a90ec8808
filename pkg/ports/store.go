package ports

import (
	"context"

	"github.com/aretw0/fae/pkg/domain"
)

// ReportStore persists evaluation reports so they can be fetched later by ID.
type ReportStore interface {
	// Save persists the report under the given ID, replacing any previous one.
	Save(ctx context.Context, id string, report *domain.Report) error

	// Load retrieves a report.
	// Returns domain.ErrReportNotFound if the report does not exist.
	Load(ctx context.Context, id string) (*domain.Report, error)

	// Delete removes a report. Deleting a missing report is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored reports.
	List(ctx context.Context) ([]string, error)
}
