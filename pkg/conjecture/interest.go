package conjecture

import "bytes"

// interestKey is the lexicographic tuple used to compare two Interesting
// candidates: (cost, number of intervals, buffer length, buffer bytes).
// Smaller is better — cheaper strategies first, then structurally
// simpler, then shorter, then lexicographically smaller as the final
// tiebreak.
type interestKey struct {
	cost      int
	intervals int
	length    int
	buffer    []byte
}

func keyOf(d *TestData) interestKey {
	return interestKey{
		cost:      d.cost,
		intervals: len(d.intervals),
		length:    len(d.buffer),
		buffer:    d.buffer,
	}
}

// less reports whether k is strictly smaller than other under the
// lexicographic order.
func (k interestKey) less(other interestKey) bool {
	if k.cost != other.cost {
		return k.cost < other.cost
	}

	if k.intervals != other.intervals {
		return k.intervals < other.intervals
	}

	if k.length != other.length {
		return k.length < other.length
	}

	return bytes.Compare(k.buffer, other.buffer) < 0
}
