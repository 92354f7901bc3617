package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"ecsl/internal/ast"
)

const (
	LineSeparator = '\n'
	EscapingSign  = '\\'
)

// Depth counts the scalar values consumed since a stream was created. It only
// ever grows and is used to rank competing failures: the branch that got
// further into the input is assumed to be the one the author meant.
type Depth int

// Stream is the cursor every combinator advances. It is a small value
// (a string header and three integers); copying it forks the parse, and
// discarding the copy rolls the fork back.
type Stream struct {
	rest   string
	cursor ast.Position
	depth  Depth
}

// NewStream returns a stream positioned at the start of source.
func NewStream(source string) *Stream {
	return &Stream{
		rest:   source,
		cursor: ast.StartPosition(),
	}
}

func (s *Stream) Cursor() ast.Position { return s.cursor }

func (s *Stream) Depth() Depth { return s.depth }

func (s *Stream) IsEmpty() bool { return len(s.rest) == 0 }

// Rest returns the unconsumed input.
func (s *Stream) Rest() string { return s.rest }

// Fork returns an independent copy of the stream for a speculative parse.
func (s *Stream) Fork() Stream {
	return *s
}

// Commit adopts the state of a fork taken from s.
func (s *Stream) Commit(fork Stream) {
	if fork.depth < s.depth {
		panic("parser: committed a fork that is behind its origin")
	}
	*s = fork
}

// Trim skips leading whitespace.
func (s *Stream) Trim() {
	n := 0
	for _, r := range s.rest {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	s.offsetBy(n)
}

// AtLineEnd reports whether only blanks separate the cursor from the next
// line separator or the end of input.
func (s *Stream) AtLineEnd() bool {
	rest := strings.TrimLeftFunc(s.rest, isBlank)
	return rest == "" || rest[0] == LineSeparator
}

// offsetBy advances by n scalar values. Every consuming operation goes
// through here so the cursor and depth cannot drift apart.
func (s *Stream) offsetBy(n int) {
	offset := 0
	for i := 0; i < n && offset < len(s.rest); i++ {
		r, size := utf8.DecodeRuneInString(s.rest[offset:])
		if r == LineSeparator {
			s.cursor.Line++
			s.cursor.Column = 1
		} else {
			s.cursor.Column++
		}
		offset += size
		s.depth++
	}
	s.rest = s.rest[offset:]
}

func isBlank(r rune) bool {
	return r != LineSeparator && unicode.IsSpace(r)
}
