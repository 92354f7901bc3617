package parser

import (
	"github.com/tliron/commonlog"
)

// Alternative is one named branch of a Choice.
type Alternative[T any] struct {
	Name  string
	Parse func(*Stream) (T, error)
}

// Variant adapts a rule producing V into an alternative producing T, where
// wrap lifts the concrete value into the variant type. It is how a statement
// rule returning *ast.EntityStmt becomes a branch of a Choice over ast.Stmt.
func Variant[T, V any](name string, parse func(*Stream) (V, error), wrap func(V) T) Alternative[T] {
	return Alternative[T]{
		Name: name,
		Parse: func(s *Stream) (T, error) {
			value, err := parse(s)
			if err != nil {
				var zero T
				return zero, err
			}
			return wrap(value), nil
		},
	}
}

// Choice tries the alternatives in order, each on its own fork, and commits
// the first that succeeds. When all fail it returns the failure that got
// deepest into the input; on equal depth the earlier alternative wins.
func Choice[T any](s *Stream, alternatives ...Alternative[T]) (T, error) {
	if len(alternatives) == 0 {
		panic("parser: choice without alternatives")
	}

	log := commonlog.GetLogger("ecsl.parser")

	var best *Failure
	for _, alt := range alternatives {
		value, err := Attempt(s, alt.Parse)
		if err == nil {
			return value, nil
		}

		f := mustFailure(err)
		if log.AllowLevel(commonlog.Debug) {
			log.Debugf("alternative %s failed at depth %d: expected %s", alt.Name, f.Depth, f.Expected)
		}
		best = Deepest(best, f)
	}

	var zero T
	return zero, best
}

// Deepest returns the failure with the greatest depth, preferring the
// earliest on ties. Nil failures are ignored.
func Deepest(failures ...*Failure) *Failure {
	var best *Failure
	for _, f := range failures {
		if f == nil {
			continue
		}
		if best == nil || f.Depth > best.Depth {
			best = f
		}
	}
	return best
}
