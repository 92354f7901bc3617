package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecsl/internal/ast"
)

func TestStreamOffsetTracksLinesAndDepth(t *testing.T) {
	s := NewStream("ab\ncd")

	s.offsetBy(3)
	assert.Equal(t, ast.Position{Line: 2, Column: 1}, s.Cursor())
	assert.Equal(t, Depth(3), s.Depth())
	assert.Equal(t, "cd", s.Rest())

	s.offsetBy(10)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, Depth(5), s.Depth(), "depth stops at the end of input")
}

func TestStreamCountsScalarValues(t *testing.T) {
	s := NewStream("éa")

	s.offsetBy(1)
	assert.Equal(t, "a", s.Rest())
	assert.Equal(t, 2, s.Cursor().Column)
}

func TestStreamForkDoesNotInterfere(t *testing.T) {
	s := NewStream("entity Player")

	fork := s.Fork()
	fork.offsetBy(6)
	fork.Trim()

	assert.Equal(t, "entity Player", s.Rest())
	assert.Equal(t, Depth(0), s.Depth())
	assert.Equal(t, ast.StartPosition(), s.Cursor())

	s.Commit(fork)
	assert.Equal(t, "Player", s.Rest())
	assert.Equal(t, Depth(7), s.Depth())
}

func TestStreamCommitBehindPanics(t *testing.T) {
	s := NewStream("abc")
	fork := s.Fork()
	s.offsetBy(2)

	assert.Panics(t, func() { s.Commit(fork) })
}

func TestStreamTrim(t *testing.T) {
	s := NewStream("  \n\tx")
	s.Trim()

	require.Equal(t, "x", s.Rest())
	assert.Equal(t, ast.Position{Line: 2, Column: 2}, s.Cursor())
	assert.Equal(t, Depth(4), s.Depth())
}

func TestStreamAtLineEnd(t *testing.T) {
	assert.True(t, NewStream(" \t\nfoo").AtLineEnd())
	assert.True(t, NewStream("   ").AtLineEnd())
	assert.True(t, NewStream("").AtLineEnd())
	assert.False(t, NewStream("  foo").AtLineEnd())
}

func TestDepthIsMonotonic(t *testing.T) {
	s := NewStream(`fn add(x: int, y: int) -> int { add(x, y) }`)

	last := s.Depth()
	for !s.IsEmpty() {
		_, _ = Attempt(s, parseIdent)
		_ = s.Punct(s.punctRun())
		s.Trim()
		if _, err := s.Uint(64); err != nil && s.Depth() == last {
			s.offsetBy(1)
		}
		assert.GreaterOrEqual(t, s.Depth(), last)
		last = s.Depth()
	}
}
