package loader_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aretw0/fae/pkg/automaton"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_TwoAs(t *testing.T) {
	diagrams, err := loader.LoadFile(filepath.Join("testdata", "two_as.yaml"))
	require.NoError(t, err)
	require.Len(t, diagrams, 1)

	fa := diagrams[0].Automaton
	assert.Equal(t, "The language of all strings containing at least two a's", fa.Description())
	assert.Equal(t, "A", fa.Start())
	assert.Equal(t, 3, fa.Len())
	assert.True(t, fa.Alphabet().Equal(domain.NewAlphabet("a", "b")))

	c, err := fa.State("C")
	require.NoError(t, err)
	assert.True(t, c.Accepting())

	assert.Equal(t, []domain.TestCase{
		domain.NewTestCase("a", false),
		domain.NewTestCase("aa", true),
		domain.NewTestCase("ba", false),
		domain.NewTestCase("bab", true),
	}, fa.TestCases())

	ok, err := fa.Evaluate(true)
	require.NoError(t, err)
	assert.False(t, ok, "bab is wrongly expected to be valid")
	require.Len(t, fa.LastResult().Mismatches, 1)
	assert.Equal(t, "bab", fa.LastResult().Mismatches[0].Value.String())
}

func TestLoadFile_SetOperations(t *testing.T) {
	diagrams, err := loader.LoadFile(
		filepath.Join("testdata", "intersection_union_difference.yaml"),
		loader.WithAutomatonOptions(automaton.WithSeed(11)),
	)
	require.NoError(t, err)
	require.Len(t, diagrams, 4)

	names := []string{}
	for _, d := range diagrams {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"odd_a", "has_bb", "both", ""}, names)

	assert.Len(t, diagrams[0].Automaton.TestCases(), 50, "sampled strings")
	assert.Equal(t, "AC", diagrams[2].Automaton.Start())
	assert.Equal(t, "the intersection of the language of all strings where the number of a's is odd and the language of all strings that include the substring 'bb'",
		diagrams[2].Automaton.Description())
	assert.Equal(t, "odd a's without bb", diagrams[3].Automaton.Description())
	assert.Equal(t, "AC", diagrams[3].Automaton.Start())

	for _, d := range diagrams {
		ok, err := d.Automaton.Evaluate(true)
		require.NoError(t, err, d.Name)
		assert.True(t, ok, "%s: %v", d.Name, d.Automaton.LastResult().Mismatches)
	}
}

func TestParse_LongFormAndListLanguage(t *testing.T) {
	doc := `
- language: [x, y]
  start: Q1
  states:
    Q0: {on: {x: Q0, y: Q1}}
    Q1:
      on: {x: Q0, y: Q1}
      accepting: true
  strings:
    "": valid
    xy: valid
    yx: invalid
`
	diagrams, err := loader.Parse([]byte(doc))
	require.NoError(t, err)
	fa := diagrams[0].Automaton

	assert.Equal(t, "Q1", fa.Start())
	q0, err := fa.State("Q0")
	require.NoError(t, err)
	assert.False(t, q0.Accepting())
	assert.Equal(t, map[domain.Symbol]string{"x": "Q0", "y": "Q1"}, q0.Transitions())

	ok, err := fa.Evaluate(true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParse_JSONDocument(t *testing.T) {
	doc := `[{"language": "0, 1", "description": "ends in 1",
	  "states": {"S": "0 -> S, 1 -> T", "T": "0 -> S, 1 -> T, accepting"},
	  "strings": {"01": "valid", "10": "invalid"}}]`

	diagrams, err := loader.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, diagrams, 1)

	ok, err := diagrams[0].Automaton.Evaluate(true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParse_SingleMapping(t *testing.T) {
	doc := `
language: a
states:
  A: a -> A, accepting
`
	diagrams, err := loader.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Len(t, diagrams, 1)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantIs  error
		wantIdx int
	}{
		{
			name:    "Duplicate State",
			doc:     "- language: a\n  states:\n    A: a -> A\n    A: a -> A\n",
			wantIs:  domain.ErrDuplicateState,
			wantIdx: 0,
		},
		{
			name:    "Language Mismatch",
			doc:     "- name: x\n  language: a\n  states:\n    A: a -> A\n- name: y\n  language: b\n  states:\n    B: b -> B\n- combine: union\n  operands: [x, y]\n",
			wantIs:  domain.ErrLanguageMismatch,
			wantIdx: 2,
		},
		{
			name:    "Unknown Start",
			doc:     "- language: a\n  start: Z\n  states:\n    A: a -> A\n",
			wantIs:  domain.ErrStateNotFound,
			wantIdx: 0,
		},
		{
			name:    "Sample Without Pattern",
			doc:     "- language: a\n  states:\n    A: a -> A\n  sample: {count: 1, length: 1}\n",
			wantIs:  domain.ErrMissingPredicate,
			wantIdx: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)

			var lerr *loader.Error
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.wantIdx, lerr.Index)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	docs := map[string]string{
		"Not YAML":          "- [unclosed",
		"Scalar Document":   "hello",
		"Missing Language":  "- states:\n    A: a -> A\n",
		"Missing States":    "- language: a\n",
		"Bad Transition":    "- language: a\n  states:\n    A: a ->\n",
		"Unknown Token":     "- language: a\n  states:\n    A: a -> A, final\n",
		"Unknown Key":       "- language: a\n  colour: red\n  states:\n    A: a -> A\n",
		"Bad Expectation":   "- language: a\n  states:\n    A: a -> A\n  strings:\n    a: maybe\n",
		"Unknown Operand":   "- combine: union\n  operands: [p, q]\n",
		"Unknown Operation": "- combine: complement\n  operands: [p, q]\n",
		"Long Form Extra":   "- language: a\n  states:\n    A: {on: {a: A}, final: true}\n",
		"Bad Pattern":       "- language: a\n  states:\n    A: a -> A\n  sample: {count: 1, length: 1, pattern: '('}\n",
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := loader.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_MultiCharacterSymbol(t *testing.T) {
	docs := map[string]string{
		"Scalar":   "- language: a, bc\n  states:\n    A: a -> A\n",
		"Sequence": "- language: [a, bc]\n  states:\n    A: a -> A\n",
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := loader.Parse([]byte(doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), `symbol "bc" must be a single character`)

			var lerr *loader.Error
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, 0, lerr.Index)
		})
	}
}

func TestParse_SamplePatternMatchesWholeWord(t *testing.T) {
	doc := `
- language: a
  states:
    A: a -> A, accepting
  sample: {count: 3, length: 2, pattern: "a"}
`
	diagrams, err := loader.Parse([]byte(doc))
	require.NoError(t, err)

	cases := diagrams[0].Automaton.TestCases()
	require.Len(t, cases, 3)
	for _, tc := range cases {
		assert.Equal(t, "aa", tc.Value.String())
		assert.False(t, tc.Expected, "pattern a must not match inside aa")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := loader.LoadFile(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	diagrams, err := loader.LoadFile("testdata/intersection_union_difference.yaml")
	require.NoError(t, err)

	d, err := loader.Select(diagrams, "")
	require.NoError(t, err)
	assert.Equal(t, "odd_a", d.Name)

	d, err = loader.Select(diagrams, "has_bb")
	require.NoError(t, err)
	assert.Equal(t, "has_bb", d.Name)

	_, err = loader.Select(diagrams, "nope")
	assert.ErrorContains(t, err, `no diagram named "nope"`)

	_, err = loader.Select(nil, "")
	assert.Error(t, err)
}
