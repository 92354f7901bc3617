package parser

import "strings"

// StatementKeywords introduce top-level statements, in the order the
// statement rules are tried.
var StatementKeywords = []string{"entity", "fn", "extern", "struct", "ty", "macro", "operator"}

// ClauseKeywords only appear inside a statement.
var ClauseKeywords = []string{"clang", "prefix", "suffix", "infix", "mut", "x"}

func statementHelp() string {
	quoted := make([]string, len(StatementKeywords))
	for i, kw := range StatementKeywords {
		quoted[i] = "`" + kw + "`"
	}
	return "a statement starts with one of " + strings.Join(quoted, ", ")
}
