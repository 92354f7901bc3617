package parser

import "ecsl/internal/ast"

type structBody struct {
	fields []*ast.TypedVariable
	braced bool
}

// parseStruct parses `struct Name { a: T, b: T }` or `struct Name a: T;`.
func parseStruct(s *Stream) (*ast.StructStmt, error) {
	start := begin(s)
	if err := s.Keyword("struct"); err != nil {
		return nil, err
	}

	// Parse struct name
	name, err := expectedIdent(s, "struct name")
	if err != nil {
		return nil, err
	}

	// Parse struct body
	body, err := Choice(s,
		Alternative[structBody]{Name: "braced struct", Parse: parseStructBody},
		Alternative[structBody]{Name: "single-field struct", Parse: parseStructField},
	)
	if err != nil {
		return nil, err
	}

	return &ast.StructStmt{
		Name:   name,
		Fields: body.fields,
		Braced: body.braced,
		Span:   spanFrom(start, s),
	}, nil
}

// parseStructBody parses the fields between { and }
func parseStructBody(s *Stream) (structBody, error) {
	fields, err := Delimited(s, '{', '}', parseTypedVariable, PunctuatedOpts{Separator: ",", ZeroAllowed: true})
	if err != nil {
		return structBody{}, err
	}
	return structBody{fields: fields, braced: true}, nil
}

// parseStructField parses a single field: name: Type;
func parseStructField(s *Stream) (structBody, error) {
	field, err := parseTypedVariable(s)
	if err != nil {
		return structBody{}, err
	}

	if err := s.Punct(";"); err != nil {
		return structBody{}, err
	}

	return structBody{fields: []*ast.TypedVariable{field}}, nil
}

// parseTy parses `ty Name = <struct or enum body>` terminated by the end of
// the line.
func parseTy(s *Stream) (*ast.TyStmt, error) {
	start := begin(s)
	if err := s.Keyword("ty"); err != nil {
		return nil, err
	}

	name, err := expectedIdent(s, "type name")
	if err != nil {
		return nil, err
	}

	if err := s.Punct("="); err != nil {
		return nil, err
	}

	body, err := Choice(s,
		Variant("struct type", parseStructTyBody, func(b *ast.StructTyBody) ast.TyBody { return b }),
		Variant("enum type", parseEnumTyBody, func(b *ast.EnumTyBody) ast.TyBody { return b }),
	)
	if err != nil {
		return nil, err
	}
	span := spanFrom(start, s)

	if err := s.Newline(); err != nil {
		return nil, err
	}

	return &ast.TyStmt{Name: name, Body: body, Span: span}, nil
}

// parseStructTyBody parses "x: T + y: T".
func parseStructTyBody(s *Stream) (*ast.StructTyBody, error) {
	start := begin(s)

	fields, err := Punctuated(s, parseTypedVariable, PunctuatedOpts{Separator: "+"})
	if err != nil {
		return nil, err
	}

	return &ast.StructTyBody{Fields: fields, Span: spanFrom(start, s)}, nil
}

// parseEnumTyBody parses "A | B T | C".
func parseEnumTyBody(s *Stream) (*ast.EnumTyBody, error) {
	start := begin(s)

	variants, err := Punctuated(s, parseVariant, PunctuatedOpts{Separator: "|"})
	if err != nil {
		return nil, err
	}

	return &ast.EnumTyBody{Variants: variants, Span: spanFrom(start, s)}, nil
}

// parseVariant parses a variant name and the type attached to it, if any
// follows on the same line.
func parseVariant(s *Stream) (*ast.Variant, error) {
	start := begin(s)

	name, err := s.Ident()
	if err != nil {
		return nil, err
	}

	var attached *ast.VariableType
	if !s.AtLineEnd() {
		attached, _, err = Optional(s, parseType)
		if err != nil {
			return nil, err
		}
	}

	return &ast.Variant{Name: name, Attached: attached, Span: spanFrom(start, s)}, nil
}
