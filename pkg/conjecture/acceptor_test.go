package conjecture

import "testing"

func frozenTestData(status Status, index, cost int, buffer []byte, intervals []Interval) *TestData {
	return &TestData{
		buffer:    buffer,
		index:     index,
		cost:      cost,
		intervals: intervals,
		status:    status,
		frozen:    true,
	}
}

func Test_Accept_Prefers_Higher_Status(t *testing.T) {
	t.Parallel()

	last := frozenTestData(Valid, 3, 0, []byte{1, 2, 3}, nil)
	candidate := frozenTestData(Interesting, 3, 0, []byte{1, 2, 3}, nil)

	if !accept(last, candidate) {
		t.Fatal("expected an Interesting candidate to be accepted over a Valid last")
	}

	if accept(candidate, last) {
		t.Fatal("expected a Valid candidate to be rejected against an Interesting last")
	}
}

func Test_Accept_Overrun_Prefers_Closer_To_Fitting(t *testing.T) {
	t.Parallel()

	last := frozenTestData(Overrun, 10, 0, []byte{}, nil)
	closer := frozenTestData(Overrun, 6, 0, []byte{}, nil)
	farther := frozenTestData(Overrun, 12, 0, []byte{}, nil)

	if !accept(last, closer) {
		t.Fatal("expected a closer overrun to be accepted")
	}

	if accept(last, farther) {
		t.Fatal("expected a farther overrun to be rejected")
	}
}

func Test_Accept_Invalid_Prefers_More_Consumed(t *testing.T) {
	t.Parallel()

	last := frozenTestData(Invalid, 4, 0, []byte{}, nil)
	better := frozenTestData(Invalid, 7, 0, []byte{}, nil)
	worse := frozenTestData(Invalid, 2, 0, []byte{}, nil)

	if !accept(last, better) {
		t.Fatal("expected the invalid candidate that consumed more to be accepted")
	}

	if accept(last, worse) {
		t.Fatal("expected the invalid candidate that consumed less to be rejected")
	}
}

func Test_Accept_Interesting_Prefers_Lower_Interest_Key(t *testing.T) {
	t.Parallel()

	last := frozenTestData(Interesting, 0, 5, []byte{9, 9, 9}, nil)
	cheaper := frozenTestData(Interesting, 0, 1, []byte{9, 9, 9}, nil)
	pricier := frozenTestData(Interesting, 0, 9, []byte{9, 9, 9}, nil)

	if !accept(last, cheaper) {
		t.Fatal("expected the cheaper Interesting candidate to be accepted")
	}

	if accept(last, pricier) {
		t.Fatal("expected the pricier Interesting candidate to be rejected")
	}
}

func Test_Accept_Interesting_Panics_If_Candidate_Buffer_Grew(t *testing.T) {
	t.Parallel()

	last := frozenTestData(Interesting, 0, 0, []byte{1, 2}, nil)
	candidate := frozenTestData(Interesting, 0, 0, []byte{1, 2, 3}, nil)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when an accepted Interesting candidate grows the buffer")
		}
	}()

	accept(last, candidate)
}
