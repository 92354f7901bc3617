package parser

import "ecsl/internal/ast"

// begin skips whitespace and returns where the next item starts.
func begin(s *Stream) ast.Position {
	s.Trim()
	return s.cursor
}

// spanFrom returns the span from start to the cursor.
func spanFrom(start ast.Position, s *Stream) ast.Span {
	return ast.Span{Start: start, End: s.cursor}
}

// keyword returns a rule that consumes kw and yields value.
func keyword[T any](kw string, value T) func(*Stream) (T, error) {
	return func(s *Stream) (T, error) {
		if err := s.Keyword(kw); err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}
}

// expectedIdent renames the expectation of a failed identifier, so that
// `struct {` reports "struct name" instead of "ident".
func expectedIdent(s *Stream, what string) (ast.Ident, error) {
	ident, err := s.Ident()
	if err != nil {
		return ident, AsFailure(err).WithExpected(what)
	}
	return ident, nil
}

// parseIdent adapts Stream.Ident to the rule signature.
func parseIdent(s *Stream) (ast.Ident, error) {
	return s.Ident()
}

// parseAffix parses `prefix` or `suffix`.
func parseAffix(s *Stream) (ast.Affix, error) {
	return Choice(s,
		Alternative[ast.Affix]{Name: "prefix", Parse: keyword("prefix", ast.Prefix)},
		Alternative[ast.Affix]{Name: "suffix", Parse: keyword("suffix", ast.Suffix)},
	)
}
