package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecsl/internal/ast"
)

// failAfter consumes n scalar values and then fails.
func failAfter(n int) Alternative[int] {
	return Alternative[int]{
		Name: fmt.Sprintf("fail after %d", n),
		Parse: func(s *Stream) (int, error) {
			s.offsetBy(n)
			return 0, s.failAt(1, fmt.Sprintf("depth %d", n))
		},
	}
}

// succeedAfter consumes n scalar values and returns n.
func succeedAfter(n int) Alternative[int] {
	return Alternative[int]{
		Name: fmt.Sprintf("succeed after %d", n),
		Parse: func(s *Stream) (int, error) {
			s.offsetBy(n)
			return n, nil
		},
	}
}

func TestChoiceReportsDeepestFailure(t *testing.T) {
	s := NewStream("abcdefgh")

	_, err := Choice(s, failAfter(2), failAfter(5), failAfter(3))
	f := AsFailure(err)
	require.NotNil(t, f)
	assert.Equal(t, Depth(5), f.Depth)
	assert.Equal(t, "depth 5", f.Expected)
	assert.Equal(t, "abcdefgh", s.Rest())
}

func TestChoiceTieGoesToEarliest(t *testing.T) {
	first := failAfter(4)
	second := failAfter(4)
	second.Parse = func(s *Stream) (int, error) {
		s.offsetBy(4)
		return 0, s.failAt(1, "second")
	}

	_, err := Choice(NewStream("abcdefgh"), first, second)
	assert.Equal(t, "depth 4", AsFailure(err).Expected)
}

func TestChoiceFirstMatchWins(t *testing.T) {
	s := NewStream("abcdefgh")

	value, err := Choice(s, failAfter(6), succeedAfter(1), succeedAfter(3))
	require.NoError(t, err)
	assert.Equal(t, 1, value)
	assert.Equal(t, "bcdefgh", s.Rest())
}

func TestChoiceDoesNotLeakFailedAlternatives(t *testing.T) {
	s := NewStream("entity Player")

	var seen string
	probe := Alternative[int]{
		Name: "probe",
		Parse: func(s *Stream) (int, error) {
			seen = s.Rest()
			return 0, nil
		},
	}

	_, err := Choice(s, failAfter(7), probe)
	require.NoError(t, err)
	assert.Equal(t, "entity Player", seen)
}

func TestChoiceWithoutAlternativesPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = Choice[int](NewStream("x")) })
}

func TestVariantWraps(t *testing.T) {
	type wrapped struct{ name string }

	identAlt := Variant("ident", parseIdent, func(id ast.Ident) wrapped { return wrapped{id.Name} })
	value, err := Choice(NewStream("Player"), identAlt)
	require.NoError(t, err)
	assert.Equal(t, wrapped{"Player"}, value)
}

func TestDeepest(t *testing.T) {
	a := &Failure{Depth: 1, Expected: "a"}
	b := &Failure{Depth: 3, Expected: "b"}
	c := &Failure{Depth: 3, Expected: "c"}

	assert.Same(t, b, Deepest(a, nil, b, c))
	assert.Nil(t, Deepest(nil, nil))
}
