package ast

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Position is a 1-based line/column location in a source file.
// Columns count Unicode scalar values, not bytes.
type Position struct {
	Line   int
	Column int
}

// EOFPosition marks a location past the end of the input. It can never be
// produced by advancing a real cursor since lines and columns start at 1.
var EOFPosition = Position{}

// StartPosition is the location of the first character of a file.
func StartPosition() Position {
	return Position{Line: 1, Column: 1}
}

func (p Position) IsEOF() bool {
	return p == EOFPosition
}

// ExtendColumnBy returns the position n columns to the right on the same line.
func (p Position) ExtendColumnBy(n int) Position {
	return Position{Line: p.Line, Column: p.Column + n}
}

func (p Position) String() string {
	if p.IsEOF() {
		return "EOF"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the half-open range [Start, End) of source covered by an item.
type Span struct {
	Start Position
	End   Position
}

// EOFSpan is the span reported when input ran out.
var EOFSpan = Span{Start: EOFPosition, End: EOFPosition}

// SpanWithWidth returns a single-line span of width columns starting at start.
func SpanWithWidth(start Position, width int) Span {
	return Span{Start: start, End: start.ExtendColumnBy(width)}
}

func (s Span) IsEOF() bool {
	return s.Start.IsEOF()
}

func (s Span) String() string {
	return fmt.Sprintf("Span(%s..%s)", s.Start, s.End)
}

// Apply extracts the text covered by the span from the complete source.
// The last covered line is cut at its first whitespace so a diagnostic
// shows the offending token rather than the rest of the line.
func (s Span) Apply(source string) string {
	if s.IsEOF() {
		return "<EOF>"
	}

	all := strings.Split(source, "\n")
	if s.Start.Line < 1 || s.Start.Line > len(all) {
		return ""
	}

	last := s.End.Line
	if last < s.Start.Line {
		last = s.Start.Line
	}
	if last > len(all) {
		last = len(all)
	}

	lines := make([]string, 0, last-s.Start.Line+1)
	for i := s.Start.Line; i <= last; i++ {
		lines = append(lines, strings.TrimSuffix(all[i-1], "\r"))
	}

	n := len(lines) - 1
	if s.End.Line == last {
		lines[n] = runePrefix(lines[n], s.End.Column-1)
	}
	lines[0] = runeSuffix(lines[0], s.Start.Column-1)

	if idx := strings.IndexFunc(lines[n], unicode.IsSpace); idx >= 0 {
		lines[n] = lines[n][:idx]
	}

	return strings.Join(lines, "\n")
}

// runePrefix returns the first n scalar values of text.
func runePrefix(text string, n int) string {
	if n <= 0 {
		return ""
	}
	offset := 0
	for i := 0; i < n && offset < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[offset:])
		offset += size
	}
	return text[:offset]
}

// runeSuffix drops the first n scalar values of text.
func runeSuffix(text string, n int) string {
	return text[len(runePrefix(text, n)):]
}
