package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/fae/internal/presentation/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunWatch_RechecksOnChange(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "diagram.yaml", passingDoc)
	out := &lockedBuffer{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- RunWatch(ctx, CheckOptions{Paths: []string{path}, Format: report.FormatText}, out)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Waiting for changes...")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, out.String(), "All diagrams passed.")

	require.NoError(t, os.WriteFile(path, []byte(failingDoc), 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Some diagrams did not meet expectations.")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, out.String(), "Change detected in")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
