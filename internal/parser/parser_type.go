package parser

import (
	"fmt"

	"ecsl/internal/ast"
)

// parseMuts parses a run of sigil prefixes, each optionally followed by
// `mut`, such as "&mut &" or "**mut".
func parseMuts(s *Stream, sigil string) (ast.Muts, error) {
	var muts ast.Muts
	for {
		fork := s.Fork()
		if fork.Punct(sigil) != nil {
			return muts, nil
		}
		if muts.Len == ast.MaxIndirection {
			return muts, fork.Fail(ast.SpanWithWidth(fork.cursor.ExtendColumnBy(-1), 1), fmt.Sprintf("not an extra `%s` token", sigil))
		}
		s.Commit(fork)

		if s.Keyword("mut") == nil {
			muts.Muts |= 1 << muts.Len
		}
		muts.Len++
	}
}

// parseType parses a type expression: references, then pointers, then the
// type name.
func parseType(s *Stream) (*ast.VariableType, error) {
	start := begin(s)

	refs, err := parseMuts(s, "&")
	if err != nil {
		return nil, err
	}

	ptrs, err := parseMuts(s, "*")
	if err != nil {
		return nil, err
	}

	name, err := expectedIdent(s, "type")
	if err != nil {
		return nil, err
	}

	return &ast.VariableType{
		Refs: refs,
		Ptrs: ptrs,
		Name: name,
		Span: spanFrom(start, s),
	}, nil
}

// parseTypedVariable parses "name: Type".
func parseTypedVariable(s *Stream) (*ast.TypedVariable, error) {
	name, err := s.Ident()
	if err != nil {
		return nil, err
	}

	if err := s.Punct(":"); err != nil {
		return nil, err
	}

	ty, err := parseType(s)
	if err != nil {
		return nil, err
	}

	return &ast.TypedVariable{Name: name, Type: ty}, nil
}
