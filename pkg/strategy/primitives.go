package strategy

import "github.com/calvinalkan/conjecture-go/pkg/conjecture"

// rawUint reads n big-endian bytes (n <= 8) as an unsigned integer
// without opening its own example span — used internally by strategies
// that compose several raw draws into one logical example (IntRange,
// Floats, Bool).
func rawUint(d *conjecture.TestData, n int) uint64 {
	bs := d.DrawBytes(n)

	var v uint64
	for _, b := range bs {
		v = v<<8 | uint64(b)
	}

	return v
}

func rawInt(d *conjecture.TestData, n int) int64 {
	u := rawUint(d, n)

	bits := uint(n * 8)
	if bits < 64 && u&(1<<(bits-1)) != 0 {
		u |= ^uint64(0) << bits
	}

	return int64(u)
}

func rawByte(d *conjecture.TestData) byte {
	return byte(rawUint(d, 1))
}

// saturate rounds gap up to the nearest 2^k - 1, giving the smallest
// bitmask that covers every value in [0, gap].
func saturate(n uint64) uint64 {
	k := uint(1)
	for k < 64 {
		n |= n >> k
		k *= 2
	}

	return n
}

func bitLen(n uint64) int {
	bits := 0
	for n > 0 {
		bits++
		n >>= 1
	}

	return bits
}

// rawIntegerRange draws a uniform value in [lower, upper] by rejection
// sampling: draw the smallest number of whole bytes that cover the gap,
// mask off the high bits, and retry on overshoot.
func rawIntegerRange(d *conjecture.TestData, lower, upper int64) int64 {
	if lower == upper {
		return lower
	}

	gap := uint64(upper - lower)
	bits := bitLen(gap)
	nbytes := (bits + 7) / 8
	mask := saturate(gap)

	for {
		probe := rawUint(d, nbytes) & mask
		if probe <= gap {
			return lower + int64(probe)
		}
	}
}

// Bytes draws n bytes verbatim.
func Bytes(n int) Strategy[[]byte] {
	return New(func(d *conjecture.TestData) []byte {
		return d.DrawBytes(n)
	})
}

// Uint draws an n-byte (n <= 8) big-endian unsigned integer.
func Uint(n int) Strategy[uint64] {
	return New(func(d *conjecture.TestData) uint64 {
		return rawUint(d, n)
	})
}

// Int draws an n-byte (n <= 8) big-endian two's-complement signed
// integer.
func Int(n int) Strategy[int64] {
	return New(func(d *conjecture.TestData) int64 {
		return rawInt(d, n)
	})
}

// Byte draws a single unsigned byte.
func Byte() Strategy[byte] {
	return New(rawByte)
}

// Bool draws a boolean off the low bit of a single byte.
func Bool() Strategy[bool] {
	return New(func(d *conjecture.TestData) bool {
		return rawByte(d)%2 == 1
	})
}

// IntRange draws a uniformly distributed value in [lower, upper].
func IntRange(lower, upper int64) Strategy[int64] {
	if lower > upper {
		panic("strategy: IntRange requires lower <= upper")
	}

	return New(func(d *conjecture.TestData) int64 {
		return rawIntegerRange(d, lower, upper)
	})
}
