package dsl

import (
	"testing"

	"github.com/aretw0/fae/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AtLeastTwoAs(t *testing.T) {
	// 1. Build the automaton using DSL
	b := New("at least two a's", "a", "b")

	b.State("A").On("a", "B").Loop("b")
	b.State("B").On("a", "C").Loop("b")
	b.State("C").Loop("a", "b").Accepting()

	b.Invalid("a", "ba").Valid("aa")

	// 2. Compile
	fa, err := b.Build()
	require.NoError(t, err)

	// 3. Verify structure
	assert.Equal(t, "A", fa.Start())
	assert.Equal(t, 3, fa.Len())
	c, err := fa.State("C")
	require.NoError(t, err)
	assert.True(t, c.Accepting())
	next, _ := c.Next("b")
	assert.Equal(t, "C", next)

	// 4. Evaluate
	ok, err := fa.Evaluate(true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, fa.TestCases(), 3)
}

func TestBuilder_StateIsIdempotent(t *testing.T) {
	b := New("loop", "a")
	b.State("A").On("a", "A")
	b.State("A").Accepting()

	fa, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, fa.Len())

	a, err := fa.State("A")
	require.NoError(t, err)
	assert.True(t, a.Accepting())
}

func TestBuilder_Otherwise(t *testing.T) {
	b := New("ends in c", "a", "b", "c")
	b.State("X").On("c", "Y").Otherwise("X")
	b.State("Y").On("c", "Y").Otherwise("X").Accepting()

	fa, err := b.Build()
	require.NoError(t, err)

	x, _ := fa.State("X")
	assert.Equal(t, map[domain.Symbol]string{"a": "X", "b": "X", "c": "Y"}, x.Transitions())
}

func TestBuilder_ExplicitStart(t *testing.T) {
	b := New("start at B", "a")
	b.State("A").Loop("a")
	b.State("B").Loop("a").Accepting()
	b.Start("B").Valid("", "aaa")

	fa, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "B", fa.Start())

	ok, err := fa.Evaluate(true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuilder_UnknownStart(t *testing.T) {
	b := New("bad start", "a")
	b.State("A").Loop("a")
	b.Start("Z")

	_, err := b.Build()
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestBuilder_Chaining(t *testing.T) {
	b := New("chain", "a")
	b.State("A").On("a", "B").
		State("B").On("a", "A").Accepting()

	fa, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, fa.Len())
}
