package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/fae/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunReportStoreContract runs a suite of tests to verify that a ReportStore
// implementation adheres to the defined interface contract.
func RunReportStoreContract(t *testing.T, store ReportStore) {
	ctx := context.Background()
	reportID := "contract-test-report-" + time.Now().Format("20060102150405")

	newReport := func(id string, passed bool) *domain.Report {
		return &domain.Report{
			ID:        id,
			Name:      "two_as",
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			Result: domain.Result{
				Description: "at least two a's",
				Alphabet:    []domain.Symbol{"a", "b"},
				Start:       "A",
				Passed:      passed,
				Traces: []domain.Trace{
					{Value: domain.ParseWord("aa"), Path: []string{"A", "B", "C"}, Verdict: true, Expected: true},
					{Value: domain.ParseWord("ab"), Path: []string{"A", "B", "B"}, Verdict: false, Expected: passed},
				},
			},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		report := newReport(reportID, false)
		report.Result.Mismatches = []domain.TestCase{domain.NewTestCase("ab", false)}

		err := store.Save(ctx, reportID, report)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, reportID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, reportID, loaded.ID)
		assert.Equal(t, "two_as", loaded.Name)
		assert.True(t, report.CreatedAt.Equal(loaded.CreatedAt))
		assert.False(t, loaded.Passed())
		assert.Equal(t, report.Result.Alphabet, loaded.Result.Alphabet)
		assert.Equal(t, report.Result.Traces, loaded.Result.Traces)
		assert.Equal(t, report.Result.Mismatches, loaded.Result.Mismatches)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, reportID, newReport(reportID, true)))

		loaded, err := store.Load(ctx, reportID)
		require.NoError(t, err)
		assert.True(t, loaded.Passed())
		assert.Empty(t, loaded.Result.Mismatches)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+reportID)
		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, reportID, newReport(reportID, true))
		require.NoError(t, err)

		err = store.Delete(ctx, reportID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, reportID)
		assert.ErrorIs(t, err, domain.ErrReportNotFound, "Load after Delete should return ErrReportNotFound")

		assert.NoError(t, store.Delete(ctx, reportID), "Deleting twice should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		id1 := reportID + "-1"
		id2 := reportID + "-2"
		require.NoError(t, store.Save(ctx, id1, newReport(id1, true)))
		require.NoError(t, store.Save(ctx, id2, newReport(id2, false)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
