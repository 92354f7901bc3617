package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecsl/internal/ast"
)

func TestIdent(t *testing.T) {
	s := NewStream("   human is an animal")

	ident, err := s.Ident()
	require.NoError(t, err)
	assert.Equal(t, "human", ident.Name)
	assert.Equal(t, ast.Position{Line: 1, Column: 4}, ident.Pos)
	assert.Equal(t, " is an animal", s.Rest())
}

func TestIdentUnicode(t *testing.T) {
	s := NewStream("größe1 x")

	ident, err := s.Ident()
	require.NoError(t, err)
	assert.Equal(t, "größe1", ident.Name)
	assert.Equal(t, ast.SpanWithWidth(ast.StartPosition(), 6), ident.Span())
}

func TestIdentFailure(t *testing.T) {
	s := NewStream("1abc")

	_, err := s.Ident()
	f := AsFailure(err)
	require.NotNil(t, f)
	assert.Equal(t, "ident", f.Expected)
	assert.Equal(t, ast.SpanWithWidth(ast.StartPosition(), 1), f.Span)
	assert.Equal(t, Depth(0), f.Depth)
	assert.Equal(t, "1abc", s.Rest())

	_, err = NewStream("  ").Ident()
	assert.True(t, AsFailure(err).IsEOF())
}

func TestKeyword(t *testing.T) {
	s := NewStream("human is")
	require.NoError(t, s.Keyword("human"))
	assert.Equal(t, " is", s.Rest())

	s = NewStream("humans must die")
	err := s.Keyword("human")
	f := AsFailure(err)
	require.NotNil(t, f)
	assert.Equal(t, "keyword `human`", f.Expected)
	assert.Equal(t, ast.SpanWithWidth(ast.StartPosition(), 6), f.Span)
	assert.Equal(t, "humans must die", s.Rest(), "a failed keyword consumes nothing")

	f = AsFailure(NewStream("(").Keyword("fn"))
	require.NotNil(t, f)
	assert.Equal(t, "keyword `fn`", f.Expected)
}

func TestPunct(t *testing.T) {
	tests := []struct {
		input string
		token string
		rest  string
		fails bool
	}{
		{input: "= b", token: "=", rest: " b"},
		{input: "== b", token: "=", fails: true},
		{input: "-> int", token: "->", rest: " int"},
		{input: "->", token: "-", fails: true},
		{input: "((", token: "(", rest: "("},
		{input: "&&x", token: "&", rest: "&x"},
		{input: "**x", token: "*", rest: "*x"},
		{input: "=(", token: "=", rest: "("},
		{input: "=;", token: "=", rest: ";"},
		{input: "a", token: "=", fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := NewStream(tt.input)
			err := s.Punct(tt.token)
			if tt.fails {
				f := AsFailure(err)
				require.NotNil(t, f)
				assert.Equal(t, "`"+tt.token+"`", f.Expected)
				assert.Equal(t, tt.input, s.Rest())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rest, s.Rest())
		})
	}
}

func TestPunctFailureCoversRun(t *testing.T) {
	f := AsFailure(NewStream("  ==").Punct("="))
	require.NotNil(t, f)
	assert.Equal(t, ast.SpanWithWidth(ast.Position{Line: 1, Column: 3}, 2), f.Span)
}

func TestDoubleQuotedString(t *testing.T) {
	s := NewStream(`  "abc" rest`)

	lit, err := s.DoubleQuotedString()
	require.NoError(t, err)
	assert.Equal(t, "abc", lit.Value)
	assert.Equal(t, ast.Position{Line: 1, Column: 4}, lit.Pos)
	assert.Equal(t, ast.SpanWithWidth(ast.Position{Line: 1, Column: 3}, 5), lit.Span())
	assert.Equal(t, " rest", s.Rest())
}

func TestDoubleQuotedStringEscapes(t *testing.T) {
	lit, err := NewStream(`"abc\"def" x`).DoubleQuotedString()
	require.NoError(t, err)
	assert.Equal(t, `abc\"def`, lit.Value)

	// Every escape sign sets the flag, a second one does not clear it.
	lit, err = NewStream(`"a\\"b" x`).DoubleQuotedString()
	require.NoError(t, err)
	assert.Equal(t, `a\\"b`, lit.Value)

	lit, err = NewStream(`"a\b" x`).DoubleQuotedString()
	require.NoError(t, err)
	assert.Equal(t, `a\b`, lit.Value)
}

func TestDoubleQuotedStringUnterminated(t *testing.T) {
	s := NewStream(`"abc`)

	_, err := s.DoubleQuotedString()
	f := AsFailure(err)
	require.NotNil(t, f)
	assert.True(t, f.IsEOF())
	assert.Equal(t, "closing `\"` delimiter", f.Expected)
	assert.True(t, s.IsEmpty())
}

func TestDoubleQuotedStringMissingOpen(t *testing.T) {
	_, err := NewStream("abc").DoubleQuotedString()
	f := AsFailure(err)
	require.NotNil(t, f)
	assert.Equal(t, "`\"`-enclosed string", f.Expected)
	assert.Equal(t, ast.SpanWithWidth(ast.StartPosition(), 1), f.Span)
}

func TestUint(t *testing.T) {
	s := NewStream(" 255)")
	value, err := s.Uint(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(255), value)
	assert.Equal(t, ")", s.Rest())

	s = NewStream("256")
	_, err = s.Uint(8)
	f := AsFailure(err)
	require.NotNil(t, f)
	assert.Equal(t, "unsigned 8-bit integer", f.Expected)
	assert.Equal(t, ast.SpanWithWidth(ast.StartPosition(), 3), f.Span)
	assert.Equal(t, "256", s.Rest())

	_, err = NewStream("x").Uint(64)
	assert.Equal(t, "unsigned 64-bit integer", AsFailure(err).Expected)
}

func TestNewline(t *testing.T) {
	s := NewStream("  \nfoo")
	require.NoError(t, s.Newline())
	assert.Equal(t, "foo", s.Rest())

	require.NoError(t, NewStream("   ").Newline())

	s = NewStream("  foo")
	f := AsFailure(s.Newline())
	require.NotNil(t, f)
	assert.Equal(t, "end of line", f.Expected)
	assert.Equal(t, ast.SpanWithWidth(ast.Position{Line: 1, Column: 3}, 1), f.Span)
	assert.Equal(t, "  foo", s.Rest())
}
