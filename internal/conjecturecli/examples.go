package conjecturecli

import (
	"github.com/calvinalkan/conjecture-go/pkg/conjecture"
	"github.com/calvinalkan/conjecture-go/pkg/strategy"
)

// init registers a handful of illustrative properties so `conjecture
// search <name>` and `conjecture replay <dump-file>`'s `run` command
// have something to drive out of the box, the way a fresh checkout of
// a ticket tracker ships seed data rather than an empty store.
func init() {
	Register("high-bit-byte", func(d *conjecture.TestData) {
		b := strategy.Byte().Draw(d)
		if b >= 128 {
			d.Fail("byte >= 128")
		}
	})

	Register("equal-nonzero-pair", func(d *conjecture.TestData) {
		a := strategy.Byte().Draw(d)
		b := strategy.Byte().Draw(d)
		if a == b && a != 0 {
			d.Fail("equal nonzero pair")
		}
	})

	Register("sorted-ints", func(d *conjecture.TestData) {
		xs := strategy.Lists(strategy.Ints()).Draw(d)
		for i := 1; i < len(xs); i++ {
			if xs[i-1] > xs[i] {
				d.Fail("list not sorted ascending")
			}
		}
	})
}
