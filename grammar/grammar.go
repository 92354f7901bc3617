package grammar

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the production a source file is parsed from.
const Start = "Program"

//go:embed ecsl.ebnf
var reference string

// Reference returns the EBNF description of the language. Lowercase
// productions are lexical.
func Reference() string {
	return reference
}

// Load parses the reference grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("ecsl.ebnf", strings.NewReader(reference))
	if err != nil {
		return nil, fmt.Errorf("failed to parse grammar: %w", err)
	}
	return g, nil
}

// Verify checks that every production reachable from Start is defined and
// every defined production is reachable.
func Verify() error {
	g, err := Load()
	if err != nil {
		return err
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return fmt.Errorf("grammar does not verify: %w", err)
	}
	return nil
}

// Keywords lists the word terminals of the syntactic productions in the
// order they first appear in the grammar.
func Keywords() ([]string, error) {
	g, err := Load()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var keywords []string
	for _, name := range productionNames(g) {
		if isLexical(name) {
			continue
		}
		collectKeywords(g[name].Expr, seen, &keywords)
	}
	return keywords, nil
}

func collectKeywords(expr ebnf.Expression, seen map[string]bool, out *[]string) {
	switch e := expr.(type) {
	case ebnf.Alternative:
		for _, x := range e {
			collectKeywords(x, seen, out)
		}
	case ebnf.Sequence:
		for _, x := range e {
			collectKeywords(x, seen, out)
		}
	case *ebnf.Group:
		collectKeywords(e.Body, seen, out)
	case *ebnf.Option:
		collectKeywords(e.Body, seen, out)
	case *ebnf.Repetition:
		collectKeywords(e.Body, seen, out)
	case *ebnf.Token:
		if isWord(e.String) && !seen[e.String] {
			seen[e.String] = true
			*out = append(*out, e.String)
		}
	}
}

func productionNames(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return g[names[i]].Pos().Offset < g[names[j]].Pos().Offset
	})
	return names
}

func isLexical(name string) bool {
	return name != "" && name[0] >= 'a' && name[0] <= 'z'
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
