package ast

// MaxIndirection is how many `&` or `*` prefixes a type may carry.
const MaxIndirection = 8

// Muts is a run of `&` or `*` prefixes. Bit i of Muts is set when level i
// (counting from the left) is followed by `mut`.
type Muts struct {
	Len  uint8
	Muts uint8
}

// IsMut reports whether indirection level i is mutable.
func (m Muts) IsMut(i int) bool {
	return (m.Muts>>i)&1 != 0
}

// VariableType is a type expression with reference and pointer prefixes.
// Example: "int", "&str", "&mut *Node", "**mut u8"
type VariableType struct {
	Refs Muts
	Ptrs Muts
	Name Ident
	Span Span `yaml:"-"`
}

// IsPure reports whether the type has no reference or pointer prefixes.
func (t *VariableType) IsPure() bool {
	return t.Refs == Muts{} && t.Ptrs == Muts{}
}

// TypedVariable is a single `name: Type` pair.
// Example: "hp: int"
type TypedVariable struct {
	Name Ident
	Type *VariableType
}

// NamedParam declares one or more names sharing a type.
// Example: "x: int", "x y z: float"
type NamedParam struct {
	Names []Ident
	Type  *VariableType
}

// UnnamedParam declares Times anonymous values of a type.
// Example: "int", "float x 3"
type UnnamedParam struct {
	Type  *VariableType
	Times uint8
	Span  Span `yaml:"-"`
}

// Signature is a parenthesised parameter list with an optional return type.
// Example: "(x: int, y: int) -> int"
type Signature struct {
	Params []Param
	Return *VariableType
	Span   Span `yaml:"-"`
}

// Operands flattens the parameters into one type per declared value, so that
// `a b: T` and `T x 2` both count as two operands.
func (s *Signature) Operands() []*VariableType {
	var operands []*VariableType
	for _, p := range s.Params {
		for i := 0; i < p.Arity(); i++ {
			operands = append(operands, p.ParamType())
		}
	}
	return operands
}
