package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/fae/internal/presentation/report"
	"github.com/aretw0/fae/pkg/adapters/memory"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingDoc = `
- name: ends_b
  language: a, b
  description: strings ending in b
  states:
    X: a -> X, b -> Y
    Y: a -> X, b -> Y, accepting
  strings:
    ab: valid
    ba: invalid
`

const failingDoc = `
- name: ends_b_wrong
  language: a, b
  description: strings ending in b
  states:
    X: a -> X, b -> Y
    Y: a -> X, b -> Y, accepting
  strings:
    ba: valid
`

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCheck_Text(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	passed, err := RunCheck(context.Background(), CheckOptions{
		Paths:  []string{writeDoc(t, dir, "ok.yaml", passingDoc)},
		Format: report.FormatText,
	}, &out)
	require.NoError(t, err)
	assert.True(t, passed)
	assert.Contains(t, out.String(), "Evaluating strings for strings ending in b using language {a, b}")
	assert.Contains(t, out.String(), "State diagram is correct.")
}

func TestRunCheck_JSONAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	store := memory.NewStore()
	var out bytes.Buffer

	passed, err := RunCheck(context.Background(), CheckOptions{
		Paths: []string{
			writeDoc(t, dir, "ok.yaml", passingDoc),
			writeDoc(t, dir, "bad.yaml", failingDoc),
		},
		Format: report.FormatJSON,
		Store:  store,
	}, &out)
	require.NoError(t, err)
	assert.False(t, passed)

	var reports []domain.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "ends_b", reports[0].Name)
	assert.Equal(t, "ends_b_wrong", reports[1].Name)

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestRunCheck_Errors(t *testing.T) {
	_, err := RunCheck(context.Background(), CheckOptions{}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = RunCheck(context.Background(), CheckOptions{
		Paths: []string{filepath.Join(t.TempDir(), "missing.yaml")},
	}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = RunCheck(context.Background(), CheckOptions{
		Paths:  []string{writeDoc(t, t.TempDir(), "ok.yaml", passingDoc)},
		Format: "xml",
	}, &bytes.Buffer{})
	assert.Error(t, err)
}
