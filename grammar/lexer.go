package grammar

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"

	"ecsl/internal/ast"
)

// CommentLexer splits source into plain text and `#( ... )#` comments.
// Comments nest: every `#(` inside a comment pushes another level.
var CommentLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Open", Pattern: `#\(`, Action: lexer.Push("Comment")},
		{Name: "Text", Pattern: `[^#]+|#`, Action: nil},
	},
	"Comment": {
		{Name: "NestedOpen", Pattern: `#\(`, Action: lexer.Push("Comment")},
		{Name: "Close", Pattern: `\)#`, Action: lexer.Pop()},
		{Name: "CommentText", Pattern: `[^#)]+|[#)]`, Action: nil},
	},
})

// CommentError reports a `#(` that is never closed.
type CommentError struct {
	// Pos is the position of the outermost unclosed `#(`.
	Pos ast.Position
}

func (e *CommentError) Error() string {
	return fmt.Sprintf("%s: unterminated comment", e.Pos)
}

// StripComments replaces every comment with spaces, keeping line breaks, so
// that positions in the result match positions in source.
func StripComments(source string) (string, error) {
	lex, err := CommentLexer.LexString("", source)
	if err != nil {
		return "", fmt.Errorf("failed to lex comments: %w", err)
	}

	symbols := CommentLexer.Symbols()
	open, nestedOpen, closing := symbols["Open"], symbols["NestedOpen"], symbols["Close"]

	var out strings.Builder
	out.Grow(len(source))

	var opened []int // byte offsets of unclosed `#(`
	for {
		tok, err := lex.Next()
		if err != nil {
			return "", fmt.Errorf("failed to lex comments: %w", err)
		}
		if tok.EOF() {
			break
		}

		switch tok.Type {
		case open, nestedOpen:
			opened = append(opened, tok.Pos.Offset)
		case closing:
			opened = opened[:len(opened)-1]
			blank(&out, tok.Value)
			continue
		}

		if len(opened) == 0 {
			out.WriteString(tok.Value)
		} else {
			blank(&out, tok.Value)
		}
	}

	if len(opened) > 0 {
		return "", &CommentError{Pos: positionAt(source, opened[0])}
	}
	return out.String(), nil
}

// blank writes one space per scalar value of text, keeping line breaks.
func blank(out *strings.Builder, text string) {
	for _, r := range text {
		if r == '\n' {
			out.WriteRune(r)
		} else {
			out.WriteByte(' ')
		}
	}
}

// positionAt converts a byte offset into a line/column position.
func positionAt(source string, offset int) ast.Position {
	before := source[:offset]
	line := strings.Count(before, "\n") + 1
	column := utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:]) + 1
	return ast.Position{Line: line, Column: column}
}
