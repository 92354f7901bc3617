package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, stmt := range p.Stmts {
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (i Ident) String() string {
	return i.Name
}

func (s StringLit) String() string {
	return `"` + s.Value + `"`
}

func (m Muts) format(symbol byte) string {
	var b strings.Builder
	for i := 0; i < int(m.Len); i++ {
		b.WriteByte(symbol)
		if m.IsMut(i) {
			b.WriteString("mut ")
		}
	}
	return b.String()
}

func (t *VariableType) String() string {
	return t.Refs.format('&') + t.Ptrs.format('*') + t.Name.Name
}

func (tv *TypedVariable) String() string {
	return fmt.Sprintf("%s: %s", tv.Name, tv.Type)
}

func (np *NamedParam) String() string {
	names := make([]string, len(np.Names))
	for i, n := range np.Names {
		names[i] = n.Name
	}
	return fmt.Sprintf("%s: %s", strings.Join(names, " "), np.Type)
}

func (up *UnnamedParam) String() string {
	if up.Times != 1 {
		return fmt.Sprintf("%s x %d", up.Type, up.Times)
	}
	return up.Type.String()
}

func (s *Signature) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.String()
	}

	out := "(" + strings.Join(params, ", ") + ")"
	if s.Return != nil {
		out += " -> " + s.Return.String()
	}
	return out
}

// bodyString prints a function-like body: blocks follow directly, single
// expressions are introduced by `=`.
func bodyString(body Expr) string {
	if block, ok := body.(*BlockExpr); ok {
		return " " + block.String()
	}
	return " = " + body.String()
}

func (e *EntityStmt) String() string {
	components := make([]string, len(e.Components))
	for i, c := range e.Components {
		components[i] = c.Name
	}
	return fmt.Sprintf("entity %s = %s;", e.Name, strings.Join(components, " + "))
}

func (f *FnStmt) String() string {
	var b strings.Builder
	b.WriteString("fn ")
	b.WriteString(f.Name.Name)
	if f.Sig != nil {
		b.WriteString(f.Sig.String())
	}
	b.WriteString(bodyString(f.Body))
	return b.String()
}

func (e *ExternFnStmt) String() string {
	return fmt.Sprintf("extern %s %s%s", e.Lang, e.Name, e.Sig)
}

func (s *StructStmt) String() string {
	fields := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f.String()
	}

	if !s.Braced {
		return fmt.Sprintf("struct %s %s;", s.Name, strings.Join(fields, ""))
	}
	if len(fields) == 0 {
		return fmt.Sprintf("struct %s {}", s.Name)
	}
	return fmt.Sprintf("struct %s { %s }", s.Name, strings.Join(fields, ", "))
}

func (t *TyStmt) String() string {
	return fmt.Sprintf("ty %s = %s", t.Name, t.Body)
}

func (b *StructTyBody) String() string {
	fields := make([]string, len(b.Fields))
	for i, f := range b.Fields {
		fields[i] = f.String()
	}
	return strings.Join(fields, " + ")
}

func (b *EnumTyBody) String() string {
	variants := make([]string, len(b.Variants))
	for i, v := range b.Variants {
		variants[i] = v.String()
	}
	return strings.Join(variants, " | ")
}

func (v *Variant) String() string {
	if v.Attached != nil {
		return v.Name.Name + " " + v.Attached.String()
	}
	return v.Name.Name
}

func (m *MacroStmt) String() string {
	return "macro " + m.Body.String()
}

func (b *LiteralMacroBody) String() string {
	return fmt.Sprintf("%s %s %s%s", b.Affix, b.Lit, b.Sig, bodyString(b.Body))
}

func (o *OperatorStmt) String() string {
	return "operator " + o.Body.String()
}

func (b *AffixOperatorBody) String() string {
	return fmt.Sprintf("%s %s %s%s", b.Affix, b.Op, b.Sig, bodyString(b.Body))
}

func (b *InfixOperatorBody) String() string {
	return fmt.Sprintf("infix %s %s%s", b.Op, b.Sig, bodyString(b.Body))
}

func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Fun, strings.Join(args, ", "))
}

func (b *BlockExpr) String() string {
	if len(b.Exprs) == 0 {
		return "{}"
	}

	exprs := make([]string, len(b.Exprs))
	for i, e := range b.Exprs {
		exprs[i] = e.String()
	}
	return "{ " + strings.Join(exprs, "; ") + " }"
}

func (s *StringExpr) String() string {
	return s.Lit.String()
}

func (i *IntExpr) String() string {
	return fmt.Sprintf("%d", i.Value)
}

func (i *IdentExpr) String() string {
	return i.Name.Name
}
