package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterruptibleReader(t *testing.T) {
	cancel := make(chan struct{})
	r := NewInterruptibleReader(strings.NewReader("abc"), cancel)

	buf := make([]byte, 2)
	n, err := r.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	close(cancel)
	_, err = r.Read(buf)
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestIsInterrupted(t *testing.T) {
	assert.True(t, IsInterrupted(context.Canceled))
	assert.True(t, IsInterrupted(fmt.Errorf("reading answer: %w", io.EOF)))
	assert.True(t, IsInterrupted(fmt.Errorf("wrapped: %w", ErrInterrupted)))
	assert.False(t, IsInterrupted(errors.New("boom")))
	assert.False(t, IsInterrupted(nil))
}

func TestNewSignalContext_Cancel(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()
	<-sc.Done()
	assert.Nil(t, sc.Signal())
}
