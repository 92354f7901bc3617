package errors

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"ecsl/internal/ast"
	"ecsl/internal/parser"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
)

// Diagnostic is a parse failure resolved against the source it came from.
type Diagnostic struct {
	Level ErrorLevel
	Code  string
	// Span is where the failure happened; for input that ran out it points
	// just past the last character.
	Span ast.Span
	// Message is the headline, e.g. "unexpected token `;`".
	Message string
	// Lines are the source lines covered by Span, starting at Span.Start.Line.
	Lines []string
	// Clarifying is printed next to the carets, e.g. "expected `)`".
	Clarifying string
	Help       []string
	Filename   string
	Source     string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s, %s", d.Filename, d.Span.Start.Line, d.Span.Start.Column, d.Message, d.Clarifying)
}

// ErrorReporter turns failures into diagnostics for one file
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    lines,
	}
}

// FromFailure builds the diagnostic for f in one step.
func FromFailure(f *parser.Failure, source, filename string) *Diagnostic {
	return NewErrorReporter(filename, source).Diagnose(f)
}

// Diagnose resolves f against the reporter's source.
func (er *ErrorReporter) Diagnose(f *parser.Failure) *Diagnostic {
	d := &Diagnostic{
		Level:      Error,
		Code:       ErrorUnexpectedToken,
		Span:       f.Span,
		Clarifying: "expected " + f.Expected,
		Help:       append([]string(nil), f.Help...),
		Filename:   er.filename,
		Source:     er.source,
	}

	if f.IsEOF() {
		d.Code = ErrorUnexpectedEOF
		d.Message = "unexpected end of file"
		d.Span = ast.SpanWithWidth(er.endOfInput(), 1)
		d.Lines = []string{er.lines[d.Span.Start.Line-1]}
		return d
	}

	excerpt, _, _ := strings.Cut(f.Span.Apply(er.source), "\n")
	if excerpt == "" {
		d.Message = "unexpected token"
	} else {
		d.Message = fmt.Sprintf("unexpected token `%s`", excerpt)
	}

	first := min(max(f.Span.Start.Line, 1), len(er.lines))
	last := min(max(f.Span.End.Line, first), len(er.lines))
	if last > first && f.Span.End.Column == 1 {
		last--
	}
	d.Lines = append([]string(nil), er.lines[first-1:last]...)

	if f.Expected == "statement" && excerpt != "" {
		if hint := keywordSuggestion(excerpt, parser.StatementKeywords); hint != "" {
			d.Help = append(d.Help, hint)
		}
	}

	return d
}

// endOfInput is the position just after the last non-newline character.
func (er *ErrorReporter) endOfInput() ast.Position {
	line := len(er.lines)
	for line > 1 && er.lines[line-1] == "" {
		line--
	}
	return ast.Position{Line: line, Column: utf8.RuneCountInString(er.lines[line-1]) + 1}
}

// Format renders the diagnostic with Rust-like styling
func (d *Diagnostic) Format() string {
	var result strings.Builder

	// Color setup
	levelColor := getLevelColor(d.Level)
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Header: error[E0100]: message
	result.WriteString(fmt.Sprintf("%s: %s\n",
		levelColor(fmt.Sprintf("%s[%s]", d.Level, d.Code)), accent(d.Message)))

	// Location line: --> filename:line:column
	start := d.Span.Start
	lineNumberWidth := getLineNumberWidth(start.Line + len(d.Lines) - 1)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s%s %s:%d:%d\n",
		indent, dim("-->"), d.Filename, start.Line, start.Column))

	// Separator line
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("|")))

	for i, line := range d.Lines {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, start.Line+i)),
			dim("|"),
			line))

		// Error marker goes under the first line only
		if i == 0 {
			marker := createMarker(start.Column, d.caretWidth(), d.Level)
			result.WriteString(fmt.Sprintf("%s %s %s %s\n",
				indent, dim("|"), marker, accent(d.Clarifying)))
		}
	}

	// Add help text
	helpColor := color.New(color.FgCyan).SprintFunc()
	for _, help := range d.Help {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("="), helpColor("help:"), accent(help)))
	}

	return result.String()
}

// Report writes the diagnostic to w and returns the process exit code.
func (d *Diagnostic) Report(w io.Writer) int {
	fmt.Fprintln(w, d.Format())
	return ExitFailure
}

// caretWidth is the span width on its first line, at least one column.
func (d *Diagnostic) caretWidth() int {
	if d.Span.End.Line == d.Span.Start.Line {
		return max(d.Span.End.Column-d.Span.Start.Column, 1)
	}
	if len(d.Lines) == 0 {
		return 1
	}
	return max(utf8.RuneCountInString(d.Lines[0])-d.Span.Start.Column+1, 1)
}

// accent highlights text between pairs of backticks, keeping the backticks.
func accent(text string) string {
	parts := strings.Split(text, "`")
	if len(parts) < 3 {
		return text
	}

	highlight := color.New(color.FgYellow, color.Bold).SprintFunc()

	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteByte('`')
		}
		// An unpaired trailing backtick leaves its text plain.
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString(highlight(part))
		} else {
			b.WriteString(part)
		}
	}
	return b.String()
}

// getLevelColor returns the appropriate color function for an error level
func getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the underline marker for errors
func createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))
	marker := strings.Repeat("^", length)
	return spaces + getLevelColor(level)(marker)
}

// getLineNumberWidth calculates the width needed for line numbers
func getLineNumberWidth(line int) int {
	return len(fmt.Sprintf("%d", line))
}
