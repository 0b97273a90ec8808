package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/dsl"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}

// twoAs checks the at-least-two-a's diagram against cases, in order.
func twoAs(t *testing.T, cases ...domain.TestCase) *domain.Result {
	t.Helper()
	b := dsl.New("at least two a's", "a", "b")
	b.State("A").On("a", "B").Loop("b")
	b.State("B").On("a", "C").Loop("b")
	b.State("C").Loop("a", "b").Accepting()

	fa, err := b.Build()
	require.NoError(t, err)
	fa.AddStrings(cases...)

	_, err = fa.Evaluate(true)
	require.NoError(t, err)
	return fa.LastResult()
}

func failing(t *testing.T) *domain.Result {
	return twoAs(t,
		domain.NewTestCase("a", false),
		domain.NewTestCase("aa", true),
		domain.NewTestCase("ba", false),
		domain.NewTestCase("bab", true),
		domain.NewTestCase("", false),
		domain.NewTestCase("c", true),
	)
}

func passing(t *testing.T) *domain.Result {
	return twoAs(t,
		domain.NewTestCase("a", false),
		domain.NewTestCase("aa", true),
	)
}

func TestText_Golden(t *testing.T) {
	tests := []struct {
		name   string
		result func(*testing.T) *domain.Result
	}{
		{"text_failing", failing},
		{"text_passing", passing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewText(&buf, termenv.Ascii).Report(tt.result(t)))
			golden(t).Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestText_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewText(&buf, termenv.ANSI).Report(failing(t)))

	out := buf.String()
	assert.Contains(t, out, "\x1b[", "ANSI profile emits escape codes")
	assert.Contains(t, out, "bab")
}

func TestMarkdown_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdown(&buf).Report(failing(t)))
	golden(t).Assert(t, "markdown_failing", buf.Bytes())
}

func TestMarkdown_Passing(t *testing.T) {
	doc := MarkdownDocument(passing(t))
	assert.Contains(t, doc, "**passed**")
	assert.NotContains(t, doc, "Unmet expectations")
}

func TestRenderedMarkdown(t *testing.T) {
	var buf bytes.Buffer
	m, err := NewRenderedMarkdown(&buf, false, 100)
	require.NoError(t, err)
	require.NoError(t, m.Report(failing(t)))

	out := buf.String()
	assert.Contains(t, out, "at least two a's")
	assert.Contains(t, out, "bab")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSON(&buf).Report(failing(t)))

	var got domain.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.Passed)
	assert.Equal(t, "A", got.Start)
	assert.Len(t, got.Traces, 6)
	assert.Len(t, got.Mismatches, 1)
	assert.Len(t, got.Foreign, 1)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	for _, f := range []Format{"", FormatText, FormatMarkdown, "md", FormatJSON} {
		r, err := New(f, &buf, false)
		require.NoError(t, err, f)
		assert.NotNil(t, r)
	}

	r, err := New(FormatMarkdown, &buf, true)
	require.NoError(t, err)
	assert.IsType(t, &Markdown{}, r)

	_, err = New("yaml", &buf, false)
	assert.Error(t, err)
}
