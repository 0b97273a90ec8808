package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/fae/pkg/adapters/memory"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunReportStoreContract(t, memory.NewStore())
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	report := &domain.Report{ID: "r1", Result: domain.Result{Alphabet: []domain.Symbol{"a"}}}
	require.NoError(t, store.Save(ctx, "r1", report))

	// Mutating the saved value does not leak into the store.
	report.Result.Alphabet[0] = "z"
	loaded, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.Symbol("a"), loaded.Result.Alphabet[0])

	// Nor does mutating a loaded value.
	loaded.Result.Alphabet[0] = "y"
	again, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.Symbol("a"), again.Result.Alphabet[0])
}

func TestMemoryStore_ListSorted(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Save(ctx, id, &domain.Report{ID: id}))
	}

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}
