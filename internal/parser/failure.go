package parser

import (
	"errors"
	"fmt"

	"ecsl/internal/ast"
)

// Failure is the error every combinator returns when the input does not
// match. Depth records how far the stream had got, so that failures from
// competing alternatives can be compared.
type Failure struct {
	Span     ast.Span
	Depth    Depth
	Expected string
	Help     []string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: expected %s", f.Span.Start, f.Expected)
}

// IsEOF reports whether the failure was caused by running out of input.
func (f *Failure) IsEOF() bool {
	return f.Span.IsEOF()
}

// WithExpected returns a copy of f with a different expectation.
func (f *Failure) WithExpected(expected string) *Failure {
	c := *f
	c.Expected = expected
	return &c
}

// WithHelp returns a copy of f with extra help lines appended.
func (f *Failure) WithHelp(help ...string) *Failure {
	c := *f
	c.Help = append(append([]string(nil), f.Help...), help...)
	return &c
}

// AsFailure extracts the *Failure from err, or returns nil.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return nil
}

// failAt builds a failure pointing at width columns from the cursor, or at
// EOF when the stream is exhausted.
func (s *Stream) failAt(width int, expected string) *Failure {
	span := ast.EOFSpan
	if !s.IsEmpty() {
		span = ast.SpanWithWidth(s.cursor, width)
	}
	return &Failure{
		Span:     span,
		Depth:    s.depth,
		Expected: expected,
	}
}

// Fail builds a failure at an explicit span with the stream's current depth.
// Grammar rules use it for constraint violations on constructs that were
// already parsed, such as operator arity.
func (s *Stream) Fail(span ast.Span, expected string) *Failure {
	return &Failure{
		Span:     span,
		Depth:    s.depth,
		Expected: expected,
	}
}
