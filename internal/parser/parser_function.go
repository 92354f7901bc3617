package parser

import "ecsl/internal/ast"

var paramListOpts = PunctuatedOpts{Separator: ",", ZeroAllowed: true}

// parseFunction parses `fn name [Signature] Body`.
func parseFunction(s *Stream) (*ast.FnStmt, error) {
	start := begin(s)
	if err := s.Keyword("fn"); err != nil {
		return nil, err
	}

	// Parse function name
	name, err := expectedIdent(s, "function name")
	if err != nil {
		return nil, err
	}

	// Parse optional signature
	sig, _, err := Optional(s, parseSignature)
	if err != nil {
		return nil, err
	}

	// Parse function body
	body, err := parseBody(s)
	if err != nil {
		return nil, err
	}

	return &ast.FnStmt{
		Name: name,
		Sig:  sig,
		Body: body,
		Span: spanFrom(start, s),
	}, nil
}

// parseExternFunction parses `extern clang name Signature`.
func parseExternFunction(s *Stream) (*ast.ExternFnStmt, error) {
	start := begin(s)
	if err := s.Keyword("extern"); err != nil {
		return nil, err
	}

	lang, err := Choice(s,
		Alternative[ast.FFILanguage]{Name: "clang", Parse: keyword("clang", ast.CLang)},
	)
	if err != nil {
		return nil, err
	}

	name, err := expectedIdent(s, "function name")
	if err != nil {
		return nil, err
	}

	sig, err := parseSignature(s)
	if err != nil {
		return nil, err
	}

	return &ast.ExternFnStmt{
		Lang: lang,
		Name: name,
		Sig:  sig,
		Span: spanFrom(start, s),
	}, nil
}

// parseSignature parses "(params) [-> Type]".
func parseSignature(s *Stream) (*ast.Signature, error) {
	start := begin(s)

	params, err := Delimited(s, '(', ')', parseParam, paramListOpts)
	if err != nil {
		return nil, err
	}

	ret, _, err := Optional(s, parseReturnType)
	if err != nil {
		return nil, err
	}

	return &ast.Signature{
		Params: params,
		Return: ret,
		Span:   spanFrom(start, s),
	}, nil
}

func parseReturnType(s *Stream) (*ast.VariableType, error) {
	if err := s.Punct("->"); err != nil {
		return nil, err
	}
	return parseType(s)
}

// parseParam parses a named group "a b: T" or an unnamed "T [x N]".
func parseParam(s *Stream) (ast.Param, error) {
	return Choice(s,
		Variant("named parameter", parseNamedParam, func(p *ast.NamedParam) ast.Param { return p }),
		Variant("unnamed parameter", parseUnnamedParam, func(p *ast.UnnamedParam) ast.Param { return p }),
	)
}

func parseNamedParam(s *Stream) (*ast.NamedParam, error) {
	names, err := OneOrMore(s, parseIdent)
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

	return &ast.NamedParam{Names: names, Type: ty}, nil
}

func parseUnnamedParam(s *Stream) (*ast.UnnamedParam, error) {
	start := begin(s)

	ty, times, err := XTimes(s, parseType, true)
	if err != nil {
		return nil, err
	}

	// A colon here belongs to a named parameter whose type did not parse;
	// let that failure win.
	look := s.Fork()
	look.Trim()
	if colon := look.cursor; look.Punct(":") == nil {
		return nil, look.Fail(ast.SpanWithWidth(colon, 1), "`,` or `)`")
	}

	return &ast.UnnamedParam{
		Type:  ty,
		Times: times,
		Span:  spanFrom(start, s),
	}, nil
}

// checkOperands fails unless sig declares exactly want operands. The
// failure points at the first surplus parameter, or at the signature when
// there are too few.
func checkOperands(s *Stream, sig *ast.Signature, want int, expected string) ([]*ast.VariableType, error) {
	operands := sig.Operands()
	if len(operands) == want {
		return operands, nil
	}

	span := sig.Span
	if len(operands) > want {
		seen := 0
		for _, p := range sig.Params {
			seen += p.Arity()
			if seen > want {
				span = p.NodeSpan()
				break
			}
		}
	}

	return nil, s.Fail(span, expected)
}
