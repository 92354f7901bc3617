package parser

import "ecsl/internal/ast"

var literalTypes = map[string]ast.LiteralType{
	"&str":  ast.StringLiteral,
	"char":  ast.CharLiteral,
	"float": ast.FloatLiteral,
	"int":   ast.IntLiteral,
}

const (
	affixArity = "only one argument for an affix operator"
	infixArity = "exactly two operands for an infix operator"
)

// parseMacro parses `macro <body>`. Literal macros are the only kind.
func parseMacro(s *Stream) (*ast.MacroStmt, error) {
	start := begin(s)
	if err := s.Keyword("macro"); err != nil {
		return nil, err
	}

	body, err := Choice(s,
		Variant("literal macro", parseLiteralMacro, func(b *ast.LiteralMacroBody) ast.MacroBody { return b }),
	)
	if err != nil {
		return nil, err
	}

	return &ast.MacroStmt{Body: body, Span: spanFrom(start, s)}, nil
}

// parseLiteralMacro parses `prefix|suffix "lit" (T) [-> R] Body` where T
// names the kind of literal the macro attaches to.
func parseLiteralMacro(s *Stream) (*ast.LiteralMacroBody, error) {
	start := begin(s)

	affix, err := parseAffix(s)
	if err != nil {
		return nil, err
	}

	lit, err := s.DoubleQuotedString()
	if err != nil {
		return nil, err
	}

	sig, err := parseSignature(s)
	if err != nil {
		return nil, err
	}

	operands, err := checkOperands(s, sig, 1, affixArity)
	if err != nil {
		return nil, err
	}

	litType, ok := literalTypes[operands[0].String()]
	if !ok {
		return nil, s.Fail(operands[0].Span, "one of &str, char, float, int")
	}

	body, err := parseBody(s)
	if err != nil {
		return nil, err
	}

	return &ast.LiteralMacroBody{
		Affix:   affix,
		Lit:     lit,
		LitType: litType,
		Sig:     sig,
		Body:    body,
		Span:    spanFrom(start, s),
	}, nil
}

// parseOperator parses `operator <affix or infix body>`.
func parseOperator(s *Stream) (*ast.OperatorStmt, error) {
	start := begin(s)
	if err := s.Keyword("operator"); err != nil {
		return nil, err
	}

	body, err := Choice(s,
		Variant("affix operator", parseAffixOperator, func(b *ast.AffixOperatorBody) ast.OperatorBody { return b }),
		Variant("infix operator", parseInfixOperator, func(b *ast.InfixOperatorBody) ast.OperatorBody { return b }),
	)
	if err != nil {
		return nil, err
	}

	return &ast.OperatorStmt{Body: body, Span: spanFrom(start, s)}, nil
}

// parseAffixOperator parses `prefix|suffix "op" (T) [-> R] Body`.
func parseAffixOperator(s *Stream) (*ast.AffixOperatorBody, error) {
	start := begin(s)

	affix, err := parseAffix(s)
	if err != nil {
		return nil, err
	}

	op, err := s.DoubleQuotedString()
	if err != nil {
		return nil, err
	}

	sig, err := parseSignature(s)
	if err != nil {
		return nil, err
	}

	operands, err := checkOperands(s, sig, 1, affixArity)
	if err != nil {
		return nil, err
	}

	body, err := parseBody(s)
	if err != nil {
		return nil, err
	}

	return &ast.AffixOperatorBody{
		Affix:   affix,
		Op:      op,
		Sig:     sig,
		Operand: operands[0],
		Body:    body,
		Span:    spanFrom(start, s),
	}, nil
}

// parseInfixOperator parses `infix "op" (L, R) [-> T] Body`.
func parseInfixOperator(s *Stream) (*ast.InfixOperatorBody, error) {
	start := begin(s)

	if err := s.Keyword("infix"); err != nil {
		return nil, err
	}

	op, err := s.DoubleQuotedString()
	if err != nil {
		return nil, err
	}

	sig, err := parseSignature(s)
	if err != nil {
		return nil, err
	}

	operands, err := checkOperands(s, sig, 2, infixArity)
	if err != nil {
		return nil, err
	}

	body, err := parseBody(s)
	if err != nil {
		return nil, err
	}

	return &ast.InfixOperatorBody{
		Op:    op,
		Sig:   sig,
		Left:  operands[0],
		Right: operands[1],
		Body:  body,
		Span:  spanFrom(start, s),
	}, nil
}
