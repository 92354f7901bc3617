package parser

import (
	"fmt"

	"ecsl/internal/ast"
)

// mustFailure recovers the *Failure carried by err. Grammar rules only ever
// fail with a *Failure; anything else is a bug in the rule.
func mustFailure(err error) *Failure {
	f := AsFailure(err)
	if f == nil {
		panic(fmt.Sprintf("parser: rule returned a non-failure error: %v", err))
	}
	return f
}

// Attempt runs parse on a fork of s and commits the fork only on success,
// so a failed attempt leaves s untouched.
func Attempt[T any](s *Stream, parse func(*Stream) (T, error)) (T, error) {
	fork := s.Fork()

	value, err := parse(&fork)
	if err != nil {
		var zero T
		return zero, err
	}

	s.Commit(fork)
	return value, nil
}

// Optional attempts parse. A failure that did not get past the starting
// point means the item is absent; a deeper failure means it was present but
// malformed and is returned.
func Optional[T any](s *Stream, parse func(*Stream) (T, error)) (T, bool, error) {
	s.Trim()
	start := s.depth

	value, err := Attempt(s, parse)
	if err == nil {
		return value, true, nil
	}
	if mustFailure(err).Depth > start {
		return value, false, err
	}
	return value, false, nil
}

// OneOrMore parses one required item, then as many more as parse accepts.
func OneOrMore[T any](s *Stream, parse func(*Stream) (T, error)) ([]T, error) {
	first, err := Attempt(s, parse)
	if err != nil {
		return nil, err
	}
	return append([]T{first}, ParseUntilFailure(s, parse)...), nil
}

// ParseUntilFailure parses items until parse fails. It never fails itself.
func ParseUntilFailure[T any](s *Stream, parse func(*Stream) (T, error)) []T {
	items, _ := parseUntilFailure(s, parse)
	return items
}

// parseUntilFailure also returns the failure that ended the loop, so the
// caller can report it if what follows fails less deep.
func parseUntilFailure[T any](s *Stream, parse func(*Stream) (T, error)) ([]T, *Failure) {
	var items []T
	for {
		before := s.depth

		item, err := Attempt(s, parse)
		if err != nil {
			return items, mustFailure(err)
		}
		items = append(items, item)

		if s.depth == before {
			return items, nil
		}
	}
}

// PunctuatedOpts configures a separated sequence.
type PunctuatedOpts struct {
	// Separator is the punctuation token between elements, e.g. ",".
	Separator string
	// ZeroAllowed makes an empty sequence valid.
	ZeroAllowed bool
}

// Punctuated parses elements separated by opts.Separator. A missing
// separator ends the sequence without error. A separator is consumed as soon
// as it is seen, so a trailing one is accepted.
func Punctuated[T any](s *Stream, parse func(*Stream) (T, error), opts PunctuatedOpts) ([]T, error) {
	items, _, err := punctuated(s, parse, opts)
	return items, err
}

// punctuated also returns the element failure that ended the sequence, if
// any. It is nil when the sequence ended at a missing separator.
func punctuated[T any](s *Stream, parse func(*Stream) (T, error), opts PunctuatedOpts) ([]T, *Failure, error) {
	first, err := Attempt(s, parse)
	if err != nil {
		f := mustFailure(err)
		if opts.ZeroAllowed {
			return nil, f, nil
		}
		return nil, nil, f.WithExpected("at least one " + f.Expected)
	}

	items := []T{first}
	for {
		sep := s.Fork()
		if sep.Punct(opts.Separator) != nil {
			return items, nil, nil
		}
		s.Commit(sep)

		item, err := Attempt(s, parse)
		if err != nil {
			return items, mustFailure(err), nil
		}
		items = append(items, item)
	}
}

// Delimited parses a punctuated sequence between the open and close
// delimiters, e.g. "(a, b)". When the closing delimiter is missing the
// deeper of the two failures (the one that ended the sequence and the one at
// the delimiter) is reported; at the same spot both are named.
func Delimited[T any](s *Stream, open, close rune, parse func(*Stream) (T, error), opts PunctuatedOpts) ([]T, error) {
	return Attempt(s, func(s *Stream) ([]T, error) {
		if err := s.Punct(string(open)); err != nil {
			return nil, err
		}

		items, stop, err := punctuated(s, parse, opts)
		if err != nil {
			return nil, err
		}

		if err := s.Punct(string(close)); err != nil {
			closing := mustFailure(err)
			if stop != nil && stop.Depth == closing.Depth {
				return nil, stop.WithExpected(fmt.Sprintf("%s or `%c`", stop.Expected, close))
			}
			return nil, Deepest(closing, stop)
		}

		return items, nil
	})
}

// XTimes parses an item followed by an optional multiplicity suffix
// "x N". Without the suffix the count is 1 when defaultAllowed is set; with
// it N must be a non-zero 8-bit integer.
func XTimes[T any](s *Stream, parse func(*Stream) (T, error), defaultAllowed bool) (T, uint8, error) {
	var zero T
	fork := s.Fork()

	item, err := parse(&fork)
	if err != nil {
		return zero, 0, err
	}

	if err := fork.Keyword("x"); err != nil {
		if !defaultAllowed {
			return zero, 0, err
		}
		s.Commit(fork)
		return item, 1, nil
	}

	fork.Trim()
	at, before := fork.cursor, fork.depth

	times, err := fork.Uint8()
	if err != nil {
		return zero, 0, err
	}
	if times == 0 {
		return zero, 0, fork.Fail(ast.SpanWithWidth(at, int(fork.depth-before)), "non-zero amount")
	}

	s.Commit(fork)
	return item, times, nil
}
