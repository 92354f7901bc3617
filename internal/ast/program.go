package ast

import "unicode/utf8"

// Program is a parsed source file: its top-level statements in source order.
type Program struct {
	Filename string
	Stmts    []Stmt
}

// Ident represents any identifier: entity, component, type and parameter names.
// Example: "Player", "Health", "int"
type Ident struct {
	Name string
	Pos  Position
}

// Span covers the identifier text.
func (i Ident) Span() Span {
	return SpanWithWidth(i.Pos, utf8.RuneCountInString(i.Name))
}

// StringLit is a double-quoted string; Value holds the raw text between the
// quotes with escape sequences left untouched.
// Example: "km", "-", "abc\"def"
type StringLit struct {
	Value string
	// Pos is the position just after the opening quote.
	Pos Position
}

// Span covers the literal including both quotes.
func (s StringLit) Span() Span {
	start := Position{Line: s.Pos.Line, Column: s.Pos.Column - 1}
	return SpanWithWidth(start, utf8.RuneCountInString(s.Value)+2)
}
