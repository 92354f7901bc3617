package errors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecsl/internal/ast"
	"ecsl/internal/parser"
)

func diagnose(t *testing.T, source string) *Diagnostic {
	t.Helper()
	color.NoColor = true

	_, err := parser.ParseSource("test.ecsl", source)
	f := parser.AsFailure(err)
	require.NotNil(t, f, "expected a parse failure, got %v", err)
	return FromFailure(f, source, "test.ecsl")
}

func TestFormatUnexpectedToken(t *testing.T) {
	d := diagnose(t, "entity Player = ;")

	assert.Equal(t, ErrorUnexpectedToken, d.Code)
	assert.Equal(t, "unexpected token `;`", d.Message)
	assert.Equal(t, []string{"entity Player = ;"}, d.Lines)

	want := "error[E0100]: unexpected token `;`\n" +
		" --> test.ecsl:1:17\n" +
		"  |\n" +
		"1 | entity Player = ;\n" +
		"  | " + strings.Repeat(" ", 16) + "^ expected at least one ident\n"
	assert.Equal(t, want, d.Format())
}

func TestFormatUnexpectedEOF(t *testing.T) {
	d := diagnose(t, "fn name = \"abc\n\n")

	assert.Equal(t, ErrorUnexpectedEOF, d.Code)
	assert.Equal(t, "unexpected end of file", d.Message)
	assert.Equal(t, ast.Position{Line: 1, Column: 15}, d.Span.Start)

	want := "error[E0101]: unexpected end of file\n" +
		" --> test.ecsl:1:15\n" +
		"  |\n" +
		"1 | fn name = \"abc\n" +
		"  | " + strings.Repeat(" ", 14) + "^ expected closing `\"` delimiter\n"
	assert.Equal(t, want, d.Format())
}

func TestFormatCaretsCoverSpan(t *testing.T) {
	d := diagnose(t, "entity A = B;\n  component Health")

	assert.Equal(t, "unexpected token `component`", d.Message)
	assert.Contains(t, d.Format(), "  | "+strings.Repeat(" ", 2)+"^^^^^^^^^ expected statement\n")
	assert.Contains(t, d.Format(), "  = help: a statement starts with one of `entity`")
}

func TestFormatWideGutter(t *testing.T) {
	source := strings.Repeat("entity A = B;\n", 9) + "entity A = ;"
	d := diagnose(t, source)

	formatted := d.Format()
	assert.Contains(t, formatted, "  --> test.ecsl:10:12\n")
	assert.Contains(t, formatted, "10 | entity A = ;\n")
	assert.Contains(t, formatted, "   |\n")
}

func TestKeywordSuggestion(t *testing.T) {
	d := diagnose(t, "entiy Player = Health;")

	require.Len(t, d.Help, 2)
	assert.Equal(t, "did you mean `entity`?", d.Help[1])

	d = diagnose(t, "banana Player = Health;")
	assert.Len(t, d.Help, 1)
}

func TestReport(t *testing.T) {
	d := diagnose(t, "struct {}")

	var out bytes.Buffer
	assert.Equal(t, ExitFailure, d.Report(&out))
	assert.Contains(t, out.String(), "expected struct name")
	assert.Contains(t, d.Error(), "test.ecsl:1:8")
}

func TestAccent(t *testing.T) {
	defer func() { color.NoColor = true }()
	color.NoColor = false

	highlighted := accent("expected `)`")
	assert.Contains(t, highlighted, "\x1b[")
	assert.True(t, strings.HasPrefix(highlighted, "expected `"))

	assert.Equal(t, "no accent here", accent("no accent here"))
	assert.Equal(t, "lone ` tick", accent("lone ` tick"))
}

func TestFindSimilarNames(t *testing.T) {
	assert.Equal(t, []string{"struct"}, findSimilarNames("strcut", parser.StatementKeywords))
	assert.Equal(t, []string{"fn"}, findSimilarNames("fnn", parser.StatementKeywords))
	assert.Empty(t, findSimilarNames("fn", parser.StatementKeywords), "exact matches are not suggestions")
	assert.Empty(t, findSimilarNames("zzzzzz", parser.StatementKeywords))
}
