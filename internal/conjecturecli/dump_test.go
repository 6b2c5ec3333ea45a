package conjecturecli_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/conjecture-go/internal/conjecturecli"
)

func Test_DumpBuffer_Then_LoadBuffer_Round_Trips(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "buffer.hex")
	want := []byte{0x00, 0x80, 0xFF, 0x01, 0x02}

	if err := conjecturecli.DumpBuffer(path, want); err != nil {
		t.Fatal(err)
	}

	got, err := conjecturecli.LoadBuffer(path)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func Test_DumpBuffer_Handles_Empty_Buffer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.hex")

	if err := conjecturecli.DumpBuffer(path, []byte{}); err != nil {
		t.Fatal(err)
	}

	got, err := conjecturecli.LoadBuffer(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}
