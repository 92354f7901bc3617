package ast

type Node interface {
	NodeSpan() Span
	String() string
}

// Stmt is a top-level declaration.
type Stmt interface {
	Node
	Kind() StmtKind
	isStmt()
}

// Param is a function signature parameter: NamedParam or UnnamedParam.
type Param interface {
	Node
	// Arity is the number of values the parameter declares.
	Arity() int
	ParamType() *VariableType
	isParam()
}

// TyBody is the right-hand side of a `ty` statement.
type TyBody interface {
	Node
	isTyBody()
}

// MacroBody is the part of a `macro` statement after the keyword.
type MacroBody interface {
	Node
	isMacroBody()
}

// OperatorBody is the part of an `operator` statement after the keyword.
type OperatorBody interface {
	Node
	isOperatorBody()
}

func (i Ident) NodeSpan() Span         { return i.Span() }
func (s StringLit) NodeSpan() Span     { return s.Span() }
func (t *VariableType) NodeSpan() Span { return t.Span }

func (tv *TypedVariable) NodeSpan() Span { return Span{Start: tv.Name.Pos, End: tv.Type.Span.End} }

func (np *NamedParam) NodeSpan() Span   { return Span{Start: np.Names[0].Pos, End: np.Type.Span.End} }
func (up *UnnamedParam) NodeSpan() Span { return up.Span }
func (s *Signature) NodeSpan() Span     { return s.Span }

func (e *EntityStmt) NodeSpan() Span   { return e.Span }
func (f *FnStmt) NodeSpan() Span       { return f.Span }
func (e *ExternFnStmt) NodeSpan() Span { return e.Span }
func (s *StructStmt) NodeSpan() Span   { return s.Span }
func (t *TyStmt) NodeSpan() Span       { return t.Span }
func (m *MacroStmt) NodeSpan() Span    { return m.Span }
func (o *OperatorStmt) NodeSpan() Span { return o.Span }

func (b *StructTyBody) NodeSpan() Span { return b.Span }
func (b *EnumTyBody) NodeSpan() Span   { return b.Span }
func (v *Variant) NodeSpan() Span      { return v.Span }

func (b *LiteralMacroBody) NodeSpan() Span  { return b.Span }
func (b *AffixOperatorBody) NodeSpan() Span { return b.Span }
func (b *InfixOperatorBody) NodeSpan() Span { return b.Span }

func (c *CallExpr) NodeSpan() Span   { return c.Span }
func (b *BlockExpr) NodeSpan() Span  { return b.Span }
func (s *StringExpr) NodeSpan() Span { return s.Lit.Span() }
func (i *IntExpr) NodeSpan() Span    { return i.Span }
func (i *IdentExpr) NodeSpan() Span  { return i.Name.Span() }

func (*EntityStmt) Kind() StmtKind   { return ENTITY_STMT }
func (*FnStmt) Kind() StmtKind       { return FN_STMT }
func (*ExternFnStmt) Kind() StmtKind { return EXTERN_FN_STMT }
func (*StructStmt) Kind() StmtKind   { return STRUCT_STMT }
func (*TyStmt) Kind() StmtKind       { return TY_STMT }
func (*MacroStmt) Kind() StmtKind    { return MACRO_STMT }
func (*OperatorStmt) Kind() StmtKind { return OPERATOR_STMT }

func (*EntityStmt) isStmt()   {}
func (*FnStmt) isStmt()       {}
func (*ExternFnStmt) isStmt() {}
func (*StructStmt) isStmt()   {}
func (*TyStmt) isStmt()       {}
func (*MacroStmt) isStmt()    {}
func (*OperatorStmt) isStmt() {}

func (*NamedParam) isParam()   {}
func (*UnnamedParam) isParam() {}

func (np *NamedParam) Arity() int                 { return len(np.Names) }
func (np *NamedParam) ParamType() *VariableType   { return np.Type }
func (up *UnnamedParam) Arity() int               { return int(up.Times) }
func (up *UnnamedParam) ParamType() *VariableType { return up.Type }

func (*StructTyBody) isTyBody() {}
func (*EnumTyBody) isTyBody()   {}

func (*LiteralMacroBody) isMacroBody() {}

func (*AffixOperatorBody) isOperatorBody() {}
func (*InfixOperatorBody) isOperatorBody() {}
