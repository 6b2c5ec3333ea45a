package strategy

import "github.com/calvinalkan/conjecture-go/pkg/conjecture"

// Union draws from one of the given strategies, chosen uniformly at
// random. Passing a Strategy that was itself built by Union flattens its
// members into the new union rather than nesting a union of unions.
func Union[T any](strategies ...Strategy[T]) Strategy[T] {
	if len(strategies) == 0 {
		panic("strategy: Union of empty list of strategies")
	}

	var flat []Strategy[T]

	for _, s := range strategies {
		if s.subs != nil {
			flat = append(flat, s.subs...)
		} else {
			flat = append(flat, s)
		}
	}

	return Strategy[T]{
		subs: flat,
		draw: func(d *conjecture.TestData) T {
			i := rawIntegerRange(d, 0, int64(len(flat)-1))
			return flat[i].Draw(d)
		},
	}
}

// Ints draws a signed integer of a random width between 1 and 8 bytes,
// biasing toward small magnitudes the way a union of narrowing widths
// does.
func Ints() Strategy[int64] {
	widths := make([]Strategy[int64], 8)
	for n := 1; n <= 8; n++ {
		widths[n-1] = Int(n)
	}

	return Union(widths...)
}

const listsStoppingValue = 50

// Lists draws a variable-length, stop-biased list: before each element
// it draws a byte and stops the list as soon as that byte is at most 50,
// so lists are short on average but unbounded in principle.
func Lists[T any](elem Strategy[T]) Strategy[[]T] {
	return New(func(d *conjecture.TestData) []T {
		var result []T

		d.StartExample()

		for {
			d.StartExample()

			if rawByte(d) <= listsStoppingValue {
				d.StopExample()
				break
			}

			v := elem.Draw(d)
			d.StopExample()
			result = append(result, v)
		}

		d.StopExample()

		return result
	})
}

// Tuple2 draws a pair, each element independently.
func Tuple2[A, B any](a Strategy[A], b Strategy[B]) Strategy[[2]any] {
	return New(func(d *conjecture.TestData) [2]any {
		return [2]any{a.Draw(d), b.Draw(d)}
	})
}

// Tuple3 draws a triple, each element independently.
func Tuple3[A, B, C any](a Strategy[A], b Strategy[B], c Strategy[C]) Strategy[[3]any] {
	return New(func(d *conjecture.TestData) [3]any {
		return [3]any{a.Draw(d), b.Draw(d), c.Draw(d)}
	})
}

// Tuple4 draws a quadruple, each element independently.
func Tuple4[A, B, C, D any](a Strategy[A], b Strategy[B], c Strategy[C], e Strategy[D]) Strategy[[4]any] {
	return New(func(d *conjecture.TestData) [4]any {
		return [4]any{a.Draw(d), b.Draw(d), c.Draw(d), e.Draw(d)}
	})
}
