package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"ecsl/grammar"
	"ecsl/internal/ast"
)

// DefaultMaxSourceBytes bounds the size of a source file.
const DefaultMaxSourceBytes = 4 << 20

type options struct {
	stripComments bool
	maxSize       int
}

// Option tunes ParseSource.
type Option func(*options)

// WithCommentStripping turns removal of `#( ... )#` comments on or off.
func WithCommentStripping(strip bool) Option {
	return func(o *options) { o.stripComments = strip }
}

// WithMaxSize rejects sources larger than n bytes. Zero means no limit.
func WithMaxSize(n int) Option {
	return func(o *options) { o.maxSize = n }
}

func ParseFile(path string, opts ...Option) (*ast.Program, string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	program, err := ParseSource(path, string(source), opts...)
	return program, string(source), err
}

// ParseSource parses a whole file. Failures to match the grammar are
// returned as *Failure; positions refer to source as given.
func ParseSource(filename, source string, opts ...Option) (*ast.Program, error) {
	o := options{stripComments: true, maxSize: DefaultMaxSourceBytes}
	for _, opt := range opts {
		opt(&o)
	}

	if o.maxSize > 0 && len(source) > o.maxSize {
		return nil, fmt.Errorf("%s: source is %d bytes, the limit is %d", filename, len(source), o.maxSize)
	}

	text := source
	if o.stripComments {
		stripped, err := grammar.StripComments(source)
		if err != nil {
			var unterminated *grammar.CommentError
			if errors.As(err, &unterminated) {
				return nil, &Failure{
					Span:     ast.SpanWithWidth(unterminated.Pos, 2),
					Expected: "closing `)#` of comment",
				}
			}
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		text = stripped
	}

	stmts, err := ParseProgram(NewStream(text))
	if err != nil {
		return nil, err
	}

	commonlog.GetLogger("ecsl.parser").Debugf("parsed %s: %d statements from %d bytes", filename, len(stmts), len(source))

	return &ast.Program{Filename: filename, Stmts: stmts}, nil
}

// ParseProgram parses statements until the input is exhausted. It stops at
// the first statement that fails.
func ParseProgram(s *Stream) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for {
		s.Trim()
		if s.IsEmpty() {
			return stmts, nil
		}

		start := s.depth
		stmt, err := parseStmt(s)
		if err != nil {
			f := mustFailure(err)
			// Nothing matched at all: say what may start a statement.
			if f.Depth == start {
				f = f.WithExpected("statement").WithHelp(statementHelp())
			}
			return stmts, f
		}

		stmts = append(stmts, stmt)
	}
}

func parseStmt(s *Stream) (ast.Stmt, error) {
	return Choice(s,
		Variant("entity", parseEntity, func(st *ast.EntityStmt) ast.Stmt { return st }),
		Variant("fn", parseFunction, func(st *ast.FnStmt) ast.Stmt { return st }),
		Variant("extern", parseExternFunction, func(st *ast.ExternFnStmt) ast.Stmt { return st }),
		Variant("struct", parseStruct, func(st *ast.StructStmt) ast.Stmt { return st }),
		Variant("ty", parseTy, func(st *ast.TyStmt) ast.Stmt { return st }),
		Variant("macro", parseMacro, func(st *ast.MacroStmt) ast.Stmt { return st }),
		Variant("operator", parseOperator, func(st *ast.OperatorStmt) ast.Stmt { return st }),
	)
}

// parseEntity parses `entity Name = A + B;`.
func parseEntity(s *Stream) (*ast.EntityStmt, error) {
	start := begin(s)
	if err := s.Keyword("entity"); err != nil {
		return nil, err
	}

	name, err := expectedIdent(s, "entity name")
	if err != nil {
		return nil, err
	}

	if err := s.Punct("="); err != nil {
		return nil, err
	}

	components, err := Punctuated(s, parseIdent, PunctuatedOpts{Separator: "+"})
	if err != nil {
		return nil, err
	}

	if err := s.Punct(";"); err != nil {
		return nil, err
	}

	return &ast.EntityStmt{Name: name, Components: components, Span: spanFrom(start, s)}, nil
}
