package randutil

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("same seed diverged at draw %d: %d vs %d", i, x, y)
		}
	}
}

func TestNearbySeedsDiverge(t *testing.T) {
	t.Parallel()
	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 64; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same == 64 {
		t.Error("adjacent seeds produced identical streams")
	}
}

func TestDealerRandomizerInRange(t *testing.T) {
	t.Parallel()
	pick := DealerRandomizer(7)
	for i := 0; i < 1000; i++ {
		d := pick(4)
		if d < 0 || d >= 4 {
			t.Fatalf("dealer %d out of range", d)
		}
	}
}
