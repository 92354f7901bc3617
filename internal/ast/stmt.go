package ast

// EntityStmt declares an entity as a sum of components.
// Example: "entity Player = Health + Position + PlayerControlled;"
type EntityStmt struct {
	Name       Ident
	Components []Ident
	Span       Span `yaml:"-"`
}

// FnStmt declares a function. Sig is nil for parameterless bindings such as
// `fn greeting = "hello"`.
// Example: "fn add(x: int, y: int) -> int { add(x, y) }"
type FnStmt struct {
	Name Ident
	Sig  *Signature
	Body Expr
	Span Span `yaml:"-"`
}

// ExternFnStmt declares a foreign function.
// Example: "extern clang puts(&str) -> int"
type ExternFnStmt struct {
	Lang FFILanguage
	Name Ident
	Sig  *Signature
	Span Span `yaml:"-"`
}

// StructStmt declares a struct, either braced or with a single field.
// Example: "struct Health { hp: int, max: int }", "struct Speed value: float;"
type StructStmt struct {
	Name   Ident
	Fields []*TypedVariable
	Braced bool
	Span   Span `yaml:"-"`
}

// TyStmt declares a struct-like or enum-like type on one line.
// Example: "ty Vec2 = x: float + y: float", "ty Option = None | Some int"
type TyStmt struct {
	Name Ident
	Body TyBody
	Span Span `yaml:"-"`
}

// StructTyBody is "x: T + y: T".
type StructTyBody struct {
	Fields []*TypedVariable
	Span   Span `yaml:"-"`
}

// EnumTyBody is "None | Some T".
type EnumTyBody struct {
	Variants []*Variant
	Span     Span `yaml:"-"`
}

// Variant is an enum variant with an optional attached type.
type Variant struct {
	Name     Ident
	Attached *VariableType
	Span     Span `yaml:"-"`
}

// MacroStmt declares a macro.
// Example: `macro suffix "km" (float) -> Meters = meters(1000)`
type MacroStmt struct {
	Body MacroBody
	Span Span `yaml:"-"`
}

// LiteralMacroBody overloads a literal prefix or suffix.
type LiteralMacroBody struct {
	Affix   Affix
	Lit     StringLit
	LitType LiteralType
	Sig     *Signature
	Body    Expr
	Span    Span `yaml:"-"`
}

// OperatorStmt declares an operator overload.
// Example: `operator infix "+" (a b: Vec2) -> Vec2 = vadd(a, b)`
type OperatorStmt struct {
	Body OperatorBody
	Span Span `yaml:"-"`
}

// AffixOperatorBody is a unary operator applied before or after its operand.
type AffixOperatorBody struct {
	Affix   Affix
	Op      StringLit
	Sig     *Signature
	Operand *VariableType
	Body    Expr
	Span    Span `yaml:"-"`
}

// InfixOperatorBody is a binary operator between two operands.
type InfixOperatorBody struct {
	Op    StringLit
	Sig   *Signature
	Left  *VariableType
	Right *VariableType
	Body  Expr
	Span  Span `yaml:"-"`
}
