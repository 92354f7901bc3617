package parser

import "ecsl/internal/ast"

// parseBody parses a declaration body: "= Expr" or a block.
func parseBody(s *Stream) (ast.Expr, error) {
	return Choice(s,
		Alternative[ast.Expr]{Name: "= expression", Parse: parseAssignedExpr},
		Variant("block", parseBlock, func(b *ast.BlockExpr) ast.Expr { return b }),
	)
}

func parseAssignedExpr(s *Stream) (ast.Expr, error) {
	if err := s.Punct("="); err != nil {
		return nil, err
	}
	return parseExpr(s)
}

// parseExpr parses any expression. A failure on the first token is
// reported as a missing expression rather than as the first alternative.
func parseExpr(s *Stream) (ast.Expr, error) {
	s.Trim()
	start := s.depth

	expr, err := Choice(s,
		Variant("call", parseCall, func(c *ast.CallExpr) ast.Expr { return c }),
		Variant("block", parseBlock, func(b *ast.BlockExpr) ast.Expr { return b }),
		Variant("string", parseStringExpr, func(e *ast.StringExpr) ast.Expr { return e }),
		Variant("integer", parseIntExpr, func(e *ast.IntExpr) ast.Expr { return e }),
		Variant("identifier", parseIdentExpr, func(e *ast.IdentExpr) ast.Expr { return e }),
	)
	if err != nil {
		if f := mustFailure(err); f.Depth == start {
			return nil, f.WithExpected("expression")
		}
		return nil, err
	}
	return expr, nil
}

// parseCall parses "name(args)".
func parseCall(s *Stream) (*ast.CallExpr, error) {
	start := begin(s)

	fun, err := s.Ident()
	if err != nil {
		return nil, err
	}

	args, err := Delimited(s, '(', ')', parseExpr, PunctuatedOpts{Separator: ",", ZeroAllowed: true})
	if err != nil {
		return nil, err
	}

	return &ast.CallExpr{Fun: fun, Args: args, Span: spanFrom(start, s)}, nil
}

// parseBlock parses "{ expr; expr }". Semicolons between expressions are
// optional.
func parseBlock(s *Stream) (*ast.BlockExpr, error) {
	start := begin(s)

	if err := s.Punct("{"); err != nil {
		return nil, err
	}

	exprs, stop := parseUntilFailure(s, parseBlockItem)

	if err := s.Punct("}"); err != nil {
		return nil, Deepest(mustFailure(err), stop)
	}

	return &ast.BlockExpr{Exprs: exprs, Span: spanFrom(start, s)}, nil
}

func parseBlockItem(s *Stream) (ast.Expr, error) {
	expr, err := parseExpr(s)
	if err != nil {
		return nil, err
	}
	_ = s.Punct(";")
	return expr, nil
}

func parseStringExpr(s *Stream) (*ast.StringExpr, error) {
	lit, err := s.DoubleQuotedString()
	if err != nil {
		return nil, err
	}
	return &ast.StringExpr{Lit: lit}, nil
}

func parseIntExpr(s *Stream) (*ast.IntExpr, error) {
	start := begin(s)

	value, err := s.Uint(64)
	if err != nil {
		return nil, err
	}
	return &ast.IntExpr{Value: value, Span: spanFrom(start, s)}, nil
}

// parseIdentExpr parses a bare name. A name followed by `(` is a call, so
// it fails at the `(`, shallower than anything the call rule reports.
func parseIdentExpr(s *Stream) (*ast.IdentExpr, error) {
	name, err := s.Ident()
	if err != nil {
		return nil, err
	}

	look := s.Fork()
	look.Trim()
	if paren := look.cursor; look.Punct("(") == nil {
		return nil, look.Fail(ast.SpanWithWidth(paren, 1), "call arguments")
	}

	return &ast.IdentExpr{Name: name}, nil
}
