package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/fae/pkg/adapters/file"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	ports.RunReportStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_Layout(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "r1", &domain.Report{ID: "r1"}))

	_, err := os.Stat(filepath.Join(dir, "r1.json"))
	assert.NoError(t, err)

	// Leftover temp files are not reports.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-r2-123.json"), []byte("{"), 0o644))
	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, ids)
}

func TestFileStore_MissingDirectory(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "not-yet"))

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStore_InvalidID(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"", "../escape", `a\b`, ".."} {
		assert.Error(t, store.Save(ctx, id, &domain.Report{}), id)
		_, err := store.Load(ctx, id)
		assert.Error(t, err, id)
		assert.NotErrorIs(t, err, domain.ErrReportNotFound, id)
	}
}

func TestFileStore_DefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".fae", "reports"), file.New("").BasePath)
}
