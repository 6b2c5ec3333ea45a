package conjecture

// accept decides whether candidate should replace last as the runner's
// current best. Both must be frozen. Status only ever grows or stays
// equal across an accepted transition.
func accept(last, candidate *TestData) bool {
	if candidate.status > last.status {
		return true
	}

	if candidate.status < last.status {
		return false
	}

	switch candidate.status {
	case Invalid:
		// Prefer inputs that consumed more before rejecting — they teach
		// us more about where the boundary of validity lies.
		return candidate.index >= last.index
	case Overrun:
		// Prefer overruns that are closer to fitting.
		return candidate.index <= last.index
	case Interesting:
		if len(candidate.buffer) > len(last.buffer) {
			panicInvariant("accepted Interesting candidate must not grow the buffer (got %d > %d)",
				len(candidate.buffer), len(last.buffer))
		}

		return keyOf(candidate).less(keyOf(last))
	default: // Valid
		return true
	}
}
