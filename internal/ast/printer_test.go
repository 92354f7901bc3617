package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ident(name string) Ident {
	return Ident{Name: name, Pos: StartPosition()}
}

func pure(name string) *VariableType {
	return &VariableType{Name: ident(name)}
}

func TestVariableTypeString(t *testing.T) {
	ty := &VariableType{
		Refs: Muts{Len: 2, Muts: 0b01},
		Ptrs: Muts{Len: 1, Muts: 0b1},
		Name: ident("Node"),
	}
	assert.Equal(t, "&mut &*mut Node", ty.String())
	assert.False(t, ty.IsPure())
	assert.True(t, pure("int").IsPure())
}

func TestSignatureOperands(t *testing.T) {
	sig := &Signature{
		Params: []Param{
			&NamedParam{Names: []Ident{ident("a"), ident("b")}, Type: pure("Vec2")},
			&UnnamedParam{Type: pure("float"), Times: 3},
		},
		Return: pure("Vec2"),
	}

	assert.Len(t, sig.Operands(), 5)
	assert.Equal(t, "(a b: Vec2, float x 3) -> Vec2", sig.String())
}

func TestStatementStrings(t *testing.T) {
	tests := []struct {
		stmt Stmt
		want string
	}{
		{
			&EntityStmt{Name: ident("Player"), Components: []Ident{ident("Health"), ident("Position")}},
			"entity Player = Health + Position;",
		},
		{
			&FnStmt{Name: ident("greeting"), Body: &StringExpr{Lit: StringLit{Value: "hello"}}},
			`fn greeting = "hello"`,
		},
		{
			&FnStmt{
				Name: ident("add"),
				Sig:  &Signature{Params: []Param{&NamedParam{Names: []Ident{ident("x"), ident("y")}, Type: pure("int")}}, Return: pure("int")},
				Body: &BlockExpr{Exprs: []Expr{&CallExpr{Fun: ident("add"), Args: []Expr{&IdentExpr{Name: ident("x")}, &IntExpr{Value: 1}}}}},
			},
			"fn add(x y: int) -> int { add(x, 1) }",
		},
		{
			&StructStmt{Name: ident("Speed"), Fields: []*TypedVariable{{Name: ident("value"), Type: pure("float")}}},
			"struct Speed value: float;",
		},
		{
			&StructStmt{Name: ident("Empty"), Braced: true},
			"struct Empty {}",
		},
		{
			&TyStmt{Name: ident("Option"), Body: &EnumTyBody{Variants: []*Variant{{Name: ident("None")}, {Name: ident("Some"), Attached: pure("int")}}}},
			"ty Option = None | Some int",
		},
		{
			&OperatorStmt{Body: &InfixOperatorBody{
				Op:   StringLit{Value: "+"},
				Sig:  &Signature{Params: []Param{&UnnamedParam{Type: pure("Vec2"), Times: 2}}},
				Body: &IdentExpr{Name: ident("zero")},
			}},
			`operator infix "+" (Vec2 x 2) = zero`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.stmt.Kind().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stmt.String())
		})
	}
}

func TestStmtKindString(t *testing.T) {
	assert.Equal(t, "operator", OPERATOR_STMT.String())
	assert.Equal(t, "illegal", StmtKind(42).String())
}
