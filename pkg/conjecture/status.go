// Package conjecture implements a byte-buffer choice-sequence test runner:
// a test's random decisions are read off a finite buffer, the runner
// searches for a buffer that makes the test fail, and then shrinks that
// buffer to a locally minimal counterexample.
package conjecture

import "fmt"

// Status is the outcome of one test execution, totally ordered from
// least to most developed. Status only ever grows across an accepted
// transition (see accept and Runner.incorporate).
type Status int

const (
	// Overrun means the test asked for more bytes than the buffer
	// provided.
	Overrun Status = iota
	// Invalid means the test explicitly rejected this input: a filter
	// predicate failed without consuming bytes, or MarkInvalid was
	// called directly.
	Invalid
	// Valid means the test completed without being interesting.
	Valid
	// Interesting means the test triggered the property failure.
	Interesting
)

func (s Status) String() string {
	switch s {
	case Overrun:
		return "overrun"
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	case Interesting:
		return "interesting"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
