package ast

type Expr interface {
	Node
	isExpr()
}

// CallExpr represents a function call.
// Example: "add(x, 1)"
type CallExpr struct {
	Fun  Ident
	Args []Expr
	Span Span `yaml:"-"`
}

// BlockExpr is a braced sequence of expressions.
// Example: "{ log("hit"); damage(10) }"
type BlockExpr struct {
	Exprs []Expr
	Span  Span `yaml:"-"`
}

// StringExpr is a string literal used as a value.
type StringExpr struct {
	Lit StringLit
}

// IntExpr is an unsigned integer literal.
type IntExpr struct {
	Value uint64
	Span  Span `yaml:"-"`
}

// IdentExpr is a reference to a named value.
type IdentExpr struct {
	Name Ident
}

func (*CallExpr) isExpr() {}

func (*BlockExpr) isExpr() {}

func (*StringExpr) isExpr() {}

func (*IntExpr) isExpr() {}

func (*IdentExpr) isExpr() {}
