package die

import "testing"

func TestRollRange(t *testing.T) {
	d := New(NewRand(42), DefaultFaces)
	if d.Value() != 0 {
		t.Fatalf("initial value = %d, want 0", d.Value())
	}

	seen := make(map[int]int)
	for i := 0; i < 6000; i++ {
		v := d.Roll()
		if v < 1 || v > 6 {
			t.Fatalf("roll %d out of range: %d", i, v)
		}
		if d.Value() != v {
			t.Fatalf("Value() = %d, Roll() returned %d", d.Value(), v)
		}
		seen[v]++
	}

	for face := 1; face <= 6; face++ {
		// 1000 expected per face; anything under 800 is far outside normal variance.
		if seen[face] < 800 {
			t.Errorf("face %d rolled only %d times", face, seen[face])
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := New(NewRand(7), DefaultFaces)
	b := New(NewRand(7), DefaultFaces)

	for i := 0; i < 100; i++ {
		if x, y := a.Roll(), b.Roll(); x != y {
			t.Fatalf("roll %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestInvalidFacesFallsBack(t *testing.T) {
	d := New(NewRand(1), 0)
	if d.Faces() != DefaultFaces {
		t.Errorf("Faces() = %d, want %d", d.Faces(), DefaultFaces)
	}
}
