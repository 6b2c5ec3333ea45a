package conjecture

// Interval is a half-open byte range `[Start, End)` corresponding to one
// completed example span. Intervals guide structural mutation and
// shrinking: the mutator biases toward splicing whole intervals, and
// several shrink passes operate interval-by-interval rather than
// byte-by-byte.
type Interval struct {
	Start int
	End   int
}

// TestData is the execution record bound to one buffer. A fresh TestData
// is constructed per candidate; the user's test callback consumes bytes
// from it, brackets nested spans with StartExample/StopExample, and may
// charge cost or reject the input outright. Once frozen it is immutable
// and safe to retain as the runner's current best.
type TestData struct {
	buffer []byte
	index  int
	cost   int

	exampleStack []int
	intervals    []Interval

	status  Status
	frozen  bool
	failure any // set when status == Interesting, for diagnostics
}

// New constructs a fresh, in-progress TestData bound to buffer. buffer is
// retained, not copied — the caller must not mutate it afterward.
func New(buffer []byte) *TestData {
	return &TestData{buffer: buffer}
}

// Buffer returns the buffer this TestData was constructed with.
func (d *TestData) Buffer() []byte {
	return d.buffer
}

// Index reports how many bytes have been consumed so far. On a frozen
// Overrun TestData this is the index the test attempted to reach, not
// the index it actually got to — that is what lets the acceptor compare
// two overruns by how close each came to fitting.
func (d *TestData) Index() int {
	return d.index
}

// Cost returns the accumulated cost charged via IncurCost.
func (d *TestData) Cost() int {
	return d.cost
}

// Intervals returns the flat list of completed example spans, in stop
// order. The returned slice must not be mutated.
func (d *TestData) Intervals() []Interval {
	return d.intervals
}

// Status returns the final status. It is only meaningful after the
// TestData has been frozen.
func (d *TestData) Status() Status {
	return d.status
}

// Frozen reports whether this TestData has been finalized.
func (d *TestData) Frozen() bool {
	return d.frozen
}

// Failure returns the value the test callback panicked with to report
// INTERESTING, or nil if the status isn't Interesting. A TestData.Fail
// call stores a *Failure here whether or not its reason is empty.
func (d *TestData) Failure() any {
	return d.failure
}

// DrawBytes consumes n bytes from the remaining buffer. If the buffer
// does not have n bytes left, it raises the early-termination signal:
// the current candidate is abandoned as Overrun and no further test code
// runs. Strategies are never obligated to check a status flag after a
// draw — an overrunning draw unconditionally aborts.
func (d *TestData) DrawBytes(n int) []byte {
	if d.frozen {
		panicInvariant("DrawBytes called on a frozen TestData")
	}

	if n < 0 {
		panicInvariant("DrawBytes: negative length %d", n)
	}

	want := d.index + n
	if want > len(d.buffer) {
		// Record how far the draw tried to reach, not how far it got:
		// this is the quantity the acceptor compares overruns by.
		d.index = want

		panic(stopTest{status: Overrun})
	}

	result := d.buffer[d.index:want]
	d.index = want

	return result
}

// StartExample opens a new nested span. Every StartExample must be
// matched by a StopExample before the test callback returns normally;
// an unbalanced span at that point is a programmer error, not a test
// outcome, so it is never recovered.
func (d *TestData) StartExample() {
	if d.frozen {
		panicInvariant("StartExample called on a frozen TestData")
	}

	d.exampleStack = append(d.exampleStack, d.index)
}

// StopExample closes the innermost open span and records it as an
// interval `[start, current index)`.
func (d *TestData) StopExample() {
	if d.frozen {
		panicInvariant("StopExample called on a frozen TestData")
	}

	n := len(d.exampleStack)
	if n == 0 {
		panicInvariant("StopExample called with no matching StartExample")
	}

	start := d.exampleStack[n-1]
	d.exampleStack = d.exampleStack[:n-1]
	d.intervals = append(d.intervals, Interval{Start: start, End: d.index})
}

// MarkInvalid rejects the current input outright and raises the
// early-termination signal. Used directly by callers, and internally by
// filter combinators that exhaust without making progress.
func (d *TestData) MarkInvalid() {
	if d.frozen {
		panicInvariant("MarkInvalid called on a frozen TestData")
	}

	panic(stopTest{status: Invalid})
}

// IncurCost adds k to the accumulated cost. Cost is the first, most
// significant field of the interest key: strategies that charge cost for
// picking an "expensive" branch (e.g. a nasty float constant, see
// pkg/strategy) steer shrinking away from that branch whenever a
// cheaper one also reproduces the failure.
func (d *TestData) IncurCost(k int) {
	if d.frozen {
		panicInvariant("IncurCost called on a frozen TestData")
	}

	if k < 0 {
		panicInvariant("IncurCost: negative cost %d", k)
	}

	d.cost += k
}

// Fail reports that the property under test does not hold for this
// buffer. It raises the property-failure signal; execute records the
// current TestData as Interesting.
func (d *TestData) Fail(reason string) {
	if d.frozen {
		panicInvariant("Fail called on a frozen TestData")
	}

	panic(&Failure{Reason: reason})
}

// freeze finalizes a TestData that completed normally (the test callback
// returned without panicking). Early-termination and failure paths are
// finalized by execute instead, since they carry a different status.
func (d *TestData) freeze() {
	if d.frozen {
		return
	}

	if len(d.exampleStack) != 0 {
		panicInvariant("unbalanced example spans: %d still open", len(d.exampleStack))
	}

	d.status = Valid
	d.frozen = true
}
