package ast

// YAML rendering keeps the dump readable: leaves print as source text and
// statements are keyed by their kind.

func (i Ident) MarshalYAML() (any, error) {
	return i.Name, nil
}

func (s StringLit) MarshalYAML() (any, error) {
	return s.Value, nil
}

func (t *VariableType) MarshalYAML() (any, error) {
	return t.String(), nil
}

func (tv *TypedVariable) MarshalYAML() (any, error) {
	return tv.String(), nil
}

func (a Affix) MarshalYAML() (any, error) {
	return a.String(), nil
}

func (l LiteralType) MarshalYAML() (any, error) {
	return l.String(), nil
}

func (f FFILanguage) MarshalYAML() (any, error) {
	return f.String(), nil
}

func (c *CallExpr) MarshalYAML() (any, error)   { return c.String(), nil }
func (b *BlockExpr) MarshalYAML() (any, error)  { return b.String(), nil }
func (s *StringExpr) MarshalYAML() (any, error) { return s.String(), nil }
func (i *IntExpr) MarshalYAML() (any, error)    { return i.Value, nil }
func (i *IdentExpr) MarshalYAML() (any, error)  { return i.Name.Name, nil }

func (p *Program) MarshalYAML() (any, error) {
	stmts := make([]map[string]Stmt, len(p.Stmts))
	for i, stmt := range p.Stmts {
		stmts[i] = map[string]Stmt{stmt.Kind().String(): stmt}
	}

	return struct {
		File  string             `yaml:"file"`
		Stmts []map[string]Stmt `yaml:"statements"`
	}{p.Filename, stmts}, nil
}
