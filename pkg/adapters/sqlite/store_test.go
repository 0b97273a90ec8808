package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/fae/pkg/adapters/sqlite"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_Contract(t *testing.T) {
	ports.RunReportStoreContract(t, openStore(t))
}

func TestSQLiteStore_InMemory(t *testing.T) {
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ports.RunReportStoreContract(t, store)
}

func TestSQLiteStore_OrderAndFailing(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	save := func(id string, offset time.Duration, passed bool) {
		require.NoError(t, store.Save(ctx, id, &domain.Report{
			ID:        id,
			CreatedAt: base.Add(offset),
			Result:    domain.Result{Passed: passed},
		}))
	}
	save("late", 2*time.Hour, false)
	save("early", 0, true)
	save("middle", time.Hour, false)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "middle", "late"}, ids)

	failing, err := store.Failing(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"middle", "late"}, failing)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.db")
	ctx := context.Background()

	store, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "r1", &domain.Report{ID: "r1", Name: "kept"}))
	require.NoError(t, store.Close())

	store, err = sqlite.Open(path)
	require.NoError(t, err)
	defer store.Close()

	report, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "kept", report.Name)
}
