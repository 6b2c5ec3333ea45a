package conjecture

import "testing"

func Test_RunShrinkPasses_Reaches_Fixed_Point(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.BufferSize = 32
	settings.Mutations = 20
	settings.Generations = 20

	r := NewRunner(func(d *TestData) {
		d.Fail("always interesting")
	}, settings, NewSeededSource(7))

	r.Run()

	if r.lastData.status != Interesting {
		t.Fatal("expected an interesting result before checking the fixed point")
	}

	changedBefore := r.changed
	r.runShrinkPasses()

	if r.changed != changedBefore {
		t.Fatalf("re-running the shrink passes against the already-shrunk buffer still found an accepted candidate: changed %d -> %d",
			changedBefore, r.changed)
	}
}

func Test_RunShrinkPasses_Accepts_Nothing_Further_On_Fixed_Prefix_Property(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.BufferSize = 32
	settings.Mutations = 20
	settings.Generations = 20

	r := NewRunner(func(d *TestData) {
		b := d.DrawBytes(4)
		if string(b) == "ABCD" {
			d.Fail("matched ABCD")
		}
	}, settings, NewSeededSource(3))

	r.Run()

	if r.lastData.status != Interesting {
		t.Fatal("expected an interesting result before checking the fixed point")
	}

	final := append([]byte(nil), r.lastData.buffer...)

	for i := range final {
		if r.incorporate(concat(final[:i], final[i+1:])) {
			t.Fatalf("deleting byte %d of the shrunk buffer was still accepted", i)
		}
	}
}
