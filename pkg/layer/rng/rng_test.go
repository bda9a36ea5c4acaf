package rng

import (
	"errors"
	"testing"
)

func TestGolden(t *testing.T) {
	r := New(1, 100)
	if r.Base() != -1884428780835672815 {
		t.Fatalf("Base() = %d, want -1884428780835672815", r.Base())
	}

	r.InitAt(0, 0)
	if r.state != 192857809901069572 {
		t.Fatalf("state after InitAt(0,0) = %d, want 192857809901069572", r.state)
	}

	got, err := r.NextInt(100)
	if err != nil {
		t.Fatalf("NextInt(100): %v", err)
	}
	if got != 51 {
		t.Errorf("NextInt(100) = %d, want 51", got)
	}
}

func TestNextSequence(t *testing.T) {
	r := New(1, 100)
	r.InitAt(0, 0)

	want := []int64{11495221251, -224562664521, 437479185965}
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Errorf("Next() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestNextIntNegativeCoordinate(t *testing.T) {
	r := New(1, 100)
	r.InitAt(-5, 7)

	want := []int32{36, 71, 65, 12, 58}
	for i, w := range want {
		got, err := r.NextInt(100)
		if err != nil {
			t.Fatalf("NextInt: %v", err)
		}
		if got != w {
			t.Errorf("NextInt(100) #%d = %d, want %d", i, got, w)
		}
	}
}

func TestDeterministic(t *testing.T) {
	r1 := New(7, 12345)
	r2 := New(7, 12345)

	for i := 0; i < 100; i++ {
		x, z := int64(i*13-600), int64(i*7-300)
		r1.InitAt(x, z)
		r2.InitAt(x, z)
		for n := 0; n < 8; n++ {
			if a, b := r1.Next(), r2.Next(); a != b {
				t.Fatalf("at (%d,%d) draw %d: %d != %d", x, z, n, a, b)
			}
		}
	}
}

func TestIndependentOfHistory(t *testing.T) {
	fresh := New(3, 42)
	used := New(3, 42)

	// Visit unrelated coordinates and draw from them first.
	for i := int64(0); i < 50; i++ {
		used.InitAt(i*31, -i*17)
		for range i % 5 {
			used.Next()
		}
	}

	fresh.InitAt(-9, 4)
	used.InitAt(-9, 4)
	for n := 0; n < 16; n++ {
		if a, b := fresh.Next(), used.Next(); a != b {
			t.Fatalf("draw %d: fresh %d != used %d", n, a, b)
		}
	}
}

func TestInitAtOrderSensitive(t *testing.T) {
	r := New(1, 100)
	r.InitAt(3, 5)
	a := r.Next()
	r.InitAt(5, 3)
	b := r.Next()
	if a == b {
		t.Errorf("InitAt(3,5) and InitAt(5,3) produced the same draw %d", a)
	}
}

func TestDifferentSaltsDiffer(t *testing.T) {
	r1 := New(2000, 100)
	r2 := New(2001, 100)
	if r1.Base() == r2.Base() {
		t.Fatal("different salts should give different bases")
	}
}

func TestNextIntRange(t *testing.T) {
	bounds := []int32{1, 2, 3, 7, 10, 100, 1000, 1 << 20, 1<<31 - 1}

	r := New(11, 22)
	negatives := 0
	for i := 0; i < 10000; i++ {
		// Walk the raw state directly so negative draws are covered.
		r.state = int64(i)*-7046029254386353131 + int64(i)<<40
		if r.state>>24 < 0 {
			negatives++
		}
		saved := r.state
		for _, max := range bounds {
			r.state = saved
			v, err := r.NextInt(max)
			if err != nil {
				t.Fatalf("NextInt(%d): %v", max, err)
			}
			if v < 0 || v >= max {
				t.Fatalf("NextInt(%d) = %d with state %d, out of [0,%d)", max, v, saved, max)
			}
		}
	}
	if negatives == 0 {
		t.Fatal("sampled states never produced a negative raw draw")
	}
}

func TestNextIntInvalidBound(t *testing.T) {
	r := New(1, 100)
	r.InitAt(0, 0)

	for _, max := range []int32{0, -1, -100} {
		_, err := r.NextInt(max)
		if !errors.Is(err, ErrInvalidBound) {
			t.Errorf("NextInt(%d) error = %v, want ErrInvalidBound", max, err)
		}
	}
}

func TestZeroValueUsable(t *testing.T) {
	var r Rand
	if _, err := r.NextInt(10); err != nil {
		t.Fatalf("NextInt on zero value: %v", err)
	}
}
