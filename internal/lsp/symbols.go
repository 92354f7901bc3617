package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ecsl/internal/ast"
)

// DocumentSymbols returns one symbol per statement, with struct fields and
// enum variants as children.
func DocumentSymbols(program *ast.Program, source string) []protocol.DocumentSymbol {
	lines := splitLines(source)
	symbols := make([]protocol.DocumentSymbol, 0, len(program.Stmts))

	for _, stmt := range program.Stmts {
		if sym, ok := statementSymbol(lines, stmt); ok {
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

func statementSymbol(lines []string, stmt ast.Stmt) (protocol.DocumentSymbol, bool) {
	switch stmt := stmt.(type) {
	case *ast.EntityStmt:
		sym := symbol(lines, stmt.Name.Name, protocol.SymbolKindClass, stmt.Span, stmt.Name.Span())
		for _, component := range stmt.Components {
			sym.Children = append(sym.Children, symbol(lines, component.Name, protocol.SymbolKindField, component.Span(), component.Span()))
		}
		return sym, true

	case *ast.FnStmt:
		sym := symbol(lines, stmt.Name.Name, protocol.SymbolKindFunction, stmt.Span, stmt.Name.Span())
		if stmt.Sig != nil {
			sym.Detail = ptrString(stmt.Sig.String())
		}
		return sym, true

	case *ast.ExternFnStmt:
		sym := symbol(lines, stmt.Name.Name, protocol.SymbolKindFunction, stmt.Span, stmt.Name.Span())
		sym.Detail = ptrString("extern " + stmt.Lang.String() + " " + stmt.Sig.String())
		return sym, true

	case *ast.StructStmt:
		sym := symbol(lines, stmt.Name.Name, protocol.SymbolKindStruct, stmt.Span, stmt.Name.Span())
		sym.Children = fieldSymbols(lines, stmt.Fields)
		return sym, true

	case *ast.TyStmt:
		switch body := stmt.Body.(type) {
		case *ast.StructTyBody:
			sym := symbol(lines, stmt.Name.Name, protocol.SymbolKindStruct, stmt.Span, stmt.Name.Span())
			sym.Children = fieldSymbols(lines, body.Fields)
			return sym, true
		case *ast.EnumTyBody:
			sym := symbol(lines, stmt.Name.Name, protocol.SymbolKindEnum, stmt.Span, stmt.Name.Span())
			for _, v := range body.Variants {
				sym.Children = append(sym.Children, symbol(lines, v.Name.Name, protocol.SymbolKindEnumMember, v.Span, v.Name.Span()))
			}
			return sym, true
		}

	case *ast.MacroStmt:
		if body, ok := stmt.Body.(*ast.LiteralMacroBody); ok {
			sym := symbol(lines, body.Lit.Value, protocol.SymbolKindOperator, stmt.Span, body.Lit.Span())
			sym.Detail = ptrString("macro " + body.Affix.String())
			return sym, true
		}

	case *ast.OperatorStmt:
		switch body := stmt.Body.(type) {
		case *ast.AffixOperatorBody:
			sym := symbol(lines, body.Op.Value, protocol.SymbolKindOperator, stmt.Span, body.Op.Span())
			sym.Detail = ptrString("operator " + body.Affix.String())
			return sym, true
		case *ast.InfixOperatorBody:
			sym := symbol(lines, body.Op.Value, protocol.SymbolKindOperator, stmt.Span, body.Op.Span())
			sym.Detail = ptrString("operator infix")
			return sym, true
		}
	}
	return protocol.DocumentSymbol{}, false
}

func fieldSymbols(lines []string, fields []*ast.TypedVariable) []protocol.DocumentSymbol {
	var children []protocol.DocumentSymbol
	for _, field := range fields {
		span := ast.Span{Start: field.Name.Pos, End: field.Type.Span.End}
		sym := symbol(lines, field.Name.Name, protocol.SymbolKindField, span, field.Name.Span())
		sym.Detail = ptrString(field.Type.String())
		children = append(children, sym)
	}
	return children
}

func symbol(lines []string, name string, kind protocol.SymbolKind, span, selection ast.Span) protocol.DocumentSymbol {
	return protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          toRange(lines, span),
		SelectionRange: toRange(lines, selection),
	}
}

func toRange(lines []string, span ast.Span) protocol.Range {
	return protocol.Range{
		Start: toProtocol(lines, span.Start),
		End:   toProtocol(lines, span.End),
	}
}
