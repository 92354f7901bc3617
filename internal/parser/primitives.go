package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"ecsl/internal/ast"
)

// selfDelimiting punctuation always forms a token of its own: brackets,
// separators, quotes and the `&`/`*` type sigils. Every other ASCII
// punctuation character joins its neighbours into one operator run.
const selfDelimiting = "()[]{},;\"'`&*"

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}

func isJoiningPunct(c byte) bool {
	return isASCIIPunct(c) && strings.IndexByte(selfDelimiting, c) < 0
}

// punctRun returns the punctuation token at the start of the input: one
// self-delimiting character, or the maximal run of joining characters.
func (s *Stream) punctRun() string {
	if s.IsEmpty() || !isASCIIPunct(s.rest[0]) {
		return ""
	}
	if !isJoiningPunct(s.rest[0]) {
		return s.rest[:1]
	}

	n := 1
	for n < len(s.rest) && isJoiningPunct(s.rest[n]) {
		n++
	}
	return s.rest[:n]
}

// Punct consumes the punctuation token `token`. The whole run at the cursor
// has to equal token, so asking for `=` in front of `==` fails instead of
// splitting the operator.
func (s *Stream) Punct(token string) error {
	s.Trim()

	expected := fmt.Sprintf("`%s`", token)
	run := s.punctRun()
	if run == "" {
		return s.failAt(1, expected)
	}
	if run != token {
		return s.failAt(len(run), expected)
	}

	s.offsetBy(len(run))
	return nil
}

// Ident consumes an identifier: a letter followed by letters and digits.
//
// `human` matches the start of "human is an animal" and of
// "   human is an animal", and also of "humans must die", but there the
// identifier is "humans", so Keyword("human") would fail.
func (s *Stream) Ident() (ast.Ident, error) {
	s.Trim()

	first, _ := utf8.DecodeRuneInString(s.rest)
	if s.IsEmpty() || !unicode.IsLetter(first) {
		return ast.Ident{}, s.failAt(1, "ident")
	}

	end := len(s.rest)
	for i, r := range s.rest {
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			end = i
			break
		}
	}

	ident := ast.Ident{Name: s.rest[:end], Pos: s.cursor}
	s.offsetBy(utf8.RuneCountInString(ident.Name))

	return ident, nil
}

// Keyword consumes the identifier keyword. On mismatch nothing but
// whitespace is consumed.
func (s *Stream) Keyword(keyword string) error {
	s.Trim()

	expected := fmt.Sprintf("keyword `%s`", keyword)
	fork := s.Fork()

	ident, err := fork.Ident()
	if err != nil {
		return AsFailure(err).WithExpected(expected)
	}
	if ident.Name != keyword {
		return s.Fail(ident.Span(), expected)
	}

	s.Commit(fork)
	return nil
}

// Enclosed consumes a string wrapped in delimiter and returns its raw
// contents and the position just after the opening delimiter. A delimiter
// preceded by EscapingSign does not close the string; escape sequences are
// not decoded.
func (s *Stream) Enclosed(delimiter rune) (string, ast.Position, error) {
	s.Trim()

	if first, _ := utf8.DecodeRuneInString(s.rest); s.IsEmpty() || first != delimiter {
		return "", ast.Position{}, s.failAt(1, fmt.Sprintf("`%c`-enclosed string", delimiter))
	}

	s.offsetBy(1)
	start := s.cursor

	escaped := false
	for i, r := range s.rest {
		if r == EscapingSign {
			escaped = true
			continue
		}
		if r == delimiter && !escaped {
			value := s.rest[:i]
			s.offsetBy(utf8.RuneCountInString(value) + 1)
			return value, start, nil
		}
		escaped = false
	}

	s.offsetBy(utf8.RuneCountInString(s.rest))

	return "", start, &Failure{
		Span:     ast.EOFSpan,
		Depth:    s.depth,
		Expected: fmt.Sprintf("closing `%c` delimiter", delimiter),
	}
}

// DoubleQuotedString consumes a `"`-enclosed string.
func (s *Stream) DoubleQuotedString() (ast.StringLit, error) {
	value, start, err := s.Enclosed('"')
	if err != nil {
		return ast.StringLit{}, err
	}
	return ast.StringLit{Value: value, Pos: start}, nil
}

// Uint consumes a decimal integer that fits in an unsigned integer of the
// given bit size.
func (s *Stream) Uint(bitSize int) (uint64, error) {
	s.Trim()

	expected := fmt.Sprintf("unsigned %d-bit integer", bitSize)

	n := 0
	for n < len(s.rest) && s.rest[n] >= '0' && s.rest[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, s.failAt(1, expected)
	}

	value, err := strconv.ParseUint(s.rest[:n], 10, bitSize)
	if err != nil {
		return 0, s.failAt(n, expected)
	}

	s.offsetBy(n)
	return value, nil
}

// Uint8 consumes an integer in [0, 255].
func (s *Stream) Uint8() (uint8, error) {
	value, err := s.Uint(8)
	return uint8(value), err
}

// Newline consumes blanks up to and including the next line separator.
// The end of input also counts as the end of a line.
func (s *Stream) Newline() error {
	blanks := 0
	for _, r := range s.rest {
		if !isBlank(r) {
			break
		}
		blanks++
	}

	fork := s.Fork()
	fork.offsetBy(blanks)

	if !fork.IsEmpty() {
		if fork.rest[0] != LineSeparator {
			return fork.failAt(1, "end of line")
		}
		fork.offsetBy(1)
	}

	s.Commit(fork)
	return nil
}
