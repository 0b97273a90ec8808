package observability_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/fae/pkg/automaton"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/dsl"
	"github.com/aretw0/fae/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, hooks domain.LifecycleHooks, valid, invalid []string) bool {
	t.Helper()
	b := dsl.New("ends in b", "a", "b")
	b.State("X").On("a", "X").On("b", "Y")
	b.State("Y").On("a", "X").On("b", "Y").Accepting()
	b.Valid(valid...).Invalid(invalid...)

	fa, err := b.Build(automaton.WithLifecycleHooks(hooks))
	require.NoError(t, err)
	ok, err := fa.Evaluate(true)
	require.NoError(t, err)
	return ok
}

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics()

	assert.True(t, evaluate(t, m.Hooks(), []string{"ab", "abb"}, []string{"ba"}))
	// "c" is foreign, "a" is a mismatch.
	assert.False(t, evaluate(t, m.Hooks(), []string{"a", "c"}, nil))

	expected := `
# HELP fae_evaluations_total Total number of automaton evaluations by verdict
# TYPE fae_evaluations_total counter
fae_evaluations_total{verdict="failed"} 1
fae_evaluations_total{verdict="passed"} 1
# HELP fae_strings_total Total number of evaluated test strings by outcome
# TYPE fae_strings_total counter
fae_strings_total{outcome="foreign"} 1
fae_strings_total{outcome="match"} 3
fae_strings_total{outcome="mismatch"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"fae_evaluations_total", "fae_strings_total")
	assert.NoError(t, err)

	// Foreign words are not walked: ab, abb, ba and a take 8 steps in total.
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "fae_walk_length_count 4")
	assert.Contains(t, rec.Body.String(), "fae_walk_length_sum 8")
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics()
	evaluate(t, m.Hooks(), []string{"b"}, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `fae_evaluations_total{verdict="passed"} 1`)
	assert.Contains(t, string(body), "fae_walk_length_count 1")
}

func TestAuditHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	evaluate(t, observability.AuditHooks(logger), []string{"b"}, []string{"a"})

	out := buf.String()
	assert.Contains(t, out, "msg=evaluation_start")
	assert.Contains(t, out, "value=b outcome=match")
	assert.Contains(t, out, "msg=evaluation_end")
	assert.Contains(t, out, "passed=true")
}

func TestHooks_FailedWalk(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m := observability.NewMetrics()

	b := dsl.New("missing b", "a", "b")
	b.State("X").On("a", "X").Accepting()
	b.Valid("ab")
	fa, err := b.Build(automaton.WithLifecycleHooks(
		m.Hooks().Merge(observability.AuditHooks(logger)),
	))
	require.NoError(t, err)
	_, err = fa.Evaluate(true)
	require.ErrorIs(t, err, domain.ErrStateNotFound)

	expected := `
# HELP fae_evaluations_total Total number of automaton evaluations by verdict
# TYPE fae_evaluations_total counter
fae_evaluations_total{verdict="error"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "fae_evaluations_total"))
	assert.Contains(t, buf.String(), "level=WARN msg=evaluation_end")
}
