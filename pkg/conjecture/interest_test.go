package conjecture

import "testing"

func Test_InterestKey_Orders_By_Cost_Then_Intervals_Then_Length_Then_Bytes(t *testing.T) {
	t.Parallel()

	cheap := interestKey{cost: 1, intervals: 5, length: 5, buffer: []byte{9, 9, 9, 9, 9}}
	expensive := interestKey{cost: 2, intervals: 0, length: 0, buffer: nil}

	if !cheap.less(expensive) {
		t.Fatal("expected lower cost to win regardless of everything else")
	}

	fewerIntervals := interestKey{cost: 1, intervals: 1, length: 5, buffer: []byte{9, 9, 9, 9, 9}}
	if !fewerIntervals.less(cheap) {
		t.Fatal("expected fewer intervals to win at equal cost")
	}

	shorter := interestKey{cost: 1, intervals: 1, length: 2, buffer: []byte{9, 9}}
	if !shorter.less(fewerIntervals) {
		t.Fatal("expected shorter buffer to win at equal cost and interval count")
	}

	lexSmaller := interestKey{cost: 1, intervals: 1, length: 2, buffer: []byte{1, 1}}
	lexBigger := interestKey{cost: 1, intervals: 1, length: 2, buffer: []byte{2, 0}}

	if !lexSmaller.less(lexBigger) {
		t.Fatal("expected lexicographically smaller buffer to win as the final tiebreak")
	}

	if lexSmaller.less(lexSmaller) {
		t.Fatal("a key must not be less than itself")
	}
}

func Test_KeyOf_Reads_Fields_Off_TestData(t *testing.T) {
	t.Parallel()

	d := &TestData{
		buffer:    []byte{1, 2, 3},
		cost:      7,
		intervals: []Interval{{Start: 0, End: 1}, {Start: 1, End: 3}},
	}

	k := keyOf(d)

	if k.cost != 7 || k.intervals != 2 || k.length != 3 {
		t.Fatalf("keyOf(d) = %+v, want cost=7 intervals=2 length=3", k)
	}
}
