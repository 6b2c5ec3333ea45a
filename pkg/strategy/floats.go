package strategy

import (
	"math"

	"github.com/calvinalkan/conjecture-go/pkg/conjecture"
)

// nastyFloats is a fixed catalogue of values that tend to break code
// handling floats naively: boundary values, denormals, values that
// round-trip awkwardly through text or arithmetic, and the two
// non-finite values. Floats() draws one of these roughly one time in
// eight, and charges a cost unit for doing so, so the shrinker is biased
// toward replacing a nasty float with a nice one when it can.
var nastyFloats = buildNastyFloats()

func buildNastyFloats() [32]float64 {
	base := [16]float64{
		0.0, 0.5, 1.0 / 3, 10e6, 10e-6, 1.175494351e-38, 2.2250738585072014e-308,
		1.7976931348623157e+308, 3.402823466e+38, 9007199254740992, 1 - 10e-6,
		1 + 10e-6, 1.192092896e-07, 2.2204460492503131e-016,
		math.Inf(1), math.NaN(),
	}

	var out [32]float64

	for i, v := range base {
		out[i] = v
		out[16+i] = -v
	}

	return out
}

var intsStrategy = Ints()

// rawFractionalFloat draws a value in [0, 1] as the ratio of two drawn
// integers, biased toward simple fractions by construction: b/a where
// a is drawn first and b is drawn uniformly from [0, a].
func rawFractionalFloat(d *conjecture.TestData) float64 {
	a := rawUint(d, 8)
	if a == 0 {
		return 0.0
	}

	b := rawIntegerRange(d, 0, int64(a))

	return float64(b) / float64(a)
}

// Floats draws a float64. Most draws are an integer part plus a
// fractional part; a small minority are exactly 0, exactly an integer,
// or one of the 32 nastyFloats entries (cost-charged, see above).
//
// Both the integral and fractional parts are always drawn, even on the
// branches that discard them, so later simplification of a nasty float
// into a nice one never runs the buffer dry partway through.
func Floats() Strategy[float64] {
	return New(func(d *conjecture.TestData) float64 {
		b := rawByte(d)
		integral := intsStrategy.Draw(d)
		fractional := rawFractionalFloat(d)

		switch {
		case b == 0:
			return 0.0
		case b == 1:
			return float64(integral)
		}

		branch := 255 - int(b)
		if branch < 32 {
			d.IncurCost(1)
			return nastyFloats[(31-branch)&31]
		}

		return float64(integral) + fractional
	})
}
