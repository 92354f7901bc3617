package lsp

import (
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"ecsl/internal/ast"
	"ecsl/internal/errors"
	"ecsl/internal/parser"
)

// Name is the language server name and the source of its diagnostics.
const Name = "ecsl"

// ConvertError transforms a parse error into an LSP diagnostic. Failures keep
// their span; any other error is pinned to the start of the document.
func ConvertError(err error, source, filename string) protocol.Diagnostic {
	f := parser.AsFailure(err)
	if f == nil {
		return protocol.Diagnostic{
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(Name),
			Message:  err.Error(),
		}
	}
	return ConvertFailure(f, source, filename)
}

// ConvertFailure transforms a parser failure into an LSP diagnostic. Ranges are
// 0-based and counted in UTF-16 code units; a failure at the end of input
// covers the empty range at the end of the document.
func ConvertFailure(f *parser.Failure, source, filename string) protocol.Diagnostic {
	d := errors.FromFailure(f, source, filename)
	lines := splitLines(source)

	var rng protocol.Range
	if f.IsEOF() {
		end := endOfDocument(lines)
		rng = protocol.Range{Start: end, End: end}
	} else {
		rng = protocol.Range{
			Start: toProtocol(lines, f.Span.Start),
			End:   toProtocol(lines, f.Span.End),
		}
	}

	message := d.Message + ", " + d.Clarifying
	for _, help := range d.Help {
		message += "\nhelp: " + help
	}

	return protocol.Diagnostic{
		Range:    rng,
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: d.Code},
		Source:   ptrString(Name),
		Message:  message,
	}
}

func splitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// toProtocol converts a 1-based rune position into a 0-based UTF-16 one.
// Positions past the end of their line are clamped to it.
func toProtocol(lines []string, pos ast.Position) protocol.Position {
	line := min(max(pos.Line, 1), len(lines)) - 1
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(utf16Width(lines[line], pos.Column-1)),
	}
}

func endOfDocument(lines []string) protocol.Position {
	last := len(lines) - 1
	return protocol.Position{
		Line:      protocol.UInteger(last),
		Character: protocol.UInteger(utf16Width(lines[last], -1)),
	}
}

// utf16Width counts the UTF-16 code units of the first n runes of text, or of
// all of it when n is negative.
func utf16Width(text string, n int) int {
	width := 0
	for _, r := range text {
		if n == 0 {
			break
		}
		width += len(utf16.Encode([]rune{r}))
		n--
	}
	return width
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
