package conjecture

import "fmt"

// Failure is the value a test callback panics with to report that the
// property under test does not hold for the current buffer. Panicking
// with any other value also counts as a failure (see execute) — Failure
// just carries a message through to diagnostics.
//
// This mirrors the original's "whatever mechanism the test callback uses
// to indicate INTERESTING (e.g. an assertion signal)": callers are free
// to panic directly, or call TestData.Fail for a documented reason.
type Failure struct {
	Reason string
}

func (f *Failure) Error() string {
	if f.Reason == "" {
		return "conjecture: property failed"
	}

	return "conjecture: property failed: " + f.Reason
}

// stopTest is the internal early-termination signal raised by
// TestData.DrawBytes and TestData.MarkInvalid. It never escapes the
// per-candidate execution boundary (execute).
type stopTest struct {
	status Status
}

// stopShrinking unwinds from the middle of a shrink pass once the shrink
// budget (Settings.MaxShrinks) has been exhausted, so the engine can
// cleanly finalize with whatever the current best is.
type stopShrinking struct{}

// invariantViolation marks a programmer error detected by this package
// (unbalanced example spans, use of a frozen TestData, a negative draw
// length or cost). These are bugs in the caller's test, not test
// outcomes, and are never recovered — they propagate out of
// FindInterestingBuffer.
type invariantViolation struct {
	msg string
}

func (e *invariantViolation) Error() string {
	return "conjecture: invariant violated: " + e.msg
}

func panicInvariant(format string, args ...any) {
	panic(&invariantViolation{msg: fmt.Sprintf(format, args...)})
}
