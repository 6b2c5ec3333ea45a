// Package strategy provides composable value generators ("strategies")
// on top of pkg/conjecture's byte-buffer TestData. A Strategy[T] reads
// its decisions off a TestData's buffer the same way a test body would,
// and wraps every draw in a start/stop example span so the shrinker can
// recognize and manipulate its output as a unit.
//
// This package is a thin collaborator layer, not part of the core
// search-and-shrink engine: nothing in pkg/conjecture imports it.
package strategy

import "github.com/calvinalkan/conjecture-go/pkg/conjecture"

// Strategy draws a value of type T from a TestData.
type Strategy[T any] struct {
	draw func(*conjecture.TestData) T
	// subs holds the flattened member list when this Strategy was built
	// by Union, so a further Union can flatten through it instead of
	// nesting a union-of-unions.
	subs []Strategy[T]
}

// New builds a Strategy from a raw draw function.
func New[T any](draw func(*conjecture.TestData) T) Strategy[T] {
	return Strategy[T]{draw: draw}
}

// Draw runs the strategy against d, recording its output as one example
// span.
func (s Strategy[T]) Draw(d *conjecture.TestData) T {
	d.StartExample()
	result := s.draw(d)
	d.StopExample()

	return result
}

// Map transforms a strategy's output with f.
func Map[T, U any](s Strategy[T], f func(T) U) Strategy[U] {
	return New(func(d *conjecture.TestData) U {
		return f(s.Draw(d))
	})
}

// Filter retries s until pred accepts its output. If a rejected attempt
// consumed no bytes (as with Just), the TestData is marked invalid
// rather than looping forever; running out of buffer overruns instead.
func Filter[T any](s Strategy[T], pred func(T) bool) Strategy[T] {
	return New(func(d *conjecture.TestData) T {
		for {
			before := d.Index()

			result := s.Draw(d)
			if pred(result) {
				return result
			}

			if d.Index() == before {
				d.MarkInvalid()
			}
		}
	})
}

// FlatMap draws a value from s, uses it to build a second strategy, and
// draws from that.
func FlatMap[T, U any](s Strategy[T], f func(T) Strategy[U]) Strategy[U] {
	return New(func(d *conjecture.TestData) U {
		return f(s.Draw(d)).Draw(d)
	})
}

// Just always returns v without consuming any bytes.
func Just[T any](v T) Strategy[T] {
	return New(func(*conjecture.TestData) T {
		return v
	})
}
