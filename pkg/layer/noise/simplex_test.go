package noise

import (
	"math"
	"testing"
)

func TestAtDeterministic(t *testing.T) {
	s1 := NewSimplex(5, 12345)
	s2 := NewSimplex(5, 12345)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.1
		z := float64(i) * 0.2
		if s1.At(x, z) != s2.At(x, z) {
			t.Fatalf("At not deterministic at (%f, %f)", x, z)
		}
	}
}

func TestAtRange(t *testing.T) {
	s := NewSimplex(5, 42)

	for i := 0; i < 10000; i++ {
		x := float64(i)*0.37 - 500
		z := float64(i)*0.53 - 500
		v := s.At(x, z)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("At(%f, %f) = %f, out of [-1,1]", x, z, v)
		}
	}
}

func TestDifferentSeedsDifferentNoise(t *testing.T) {
	s1 := NewSimplex(5, 1)
	s2 := NewSimplex(5, 2)

	different := false
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.1
		z := float64(i) * 0.2
		if s1.At(x, z) != s2.At(x, z) {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different noise")
	}
}

func TestOctavesRange(t *testing.T) {
	s := NewSimplex(5, 123)

	for i := 0; i < 1000; i++ {
		x := float64(i)*0.1 - 50
		z := float64(i)*0.2 - 50
		v := s.Octaves(x, z, 6, 0.5)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("Octaves = %f, out of [-1,1]", v)
		}
	}
}

func TestOctavesSmooth(t *testing.T) {
	s := NewSimplex(5, 456)

	prev := s.Octaves(0, 0, 4, 0.5)
	step := 0.01
	for i := 1; i < 1000; i++ {
		x := float64(i) * step
		curr := s.Octaves(x, 0, 4, 0.5)
		if diff := math.Abs(curr - prev); diff > 0.1 {
			t.Fatalf("noise changed too rapidly at x=%f: diff=%f", x, diff)
		}
		prev = curr
	}
}

func TestOctavesZero(t *testing.T) {
	s := NewSimplex(5, 1)
	if v := s.Octaves(1, 1, 0, 0.5); v != 0 {
		t.Errorf("Octaves with n=0 = %f, want 0", v)
	}
}

func TestGradientIndexCoversTable(t *testing.T) {
	s := NewSimplex(7, 100)
	var seen [len(grad2)]bool
	for _, p := range s.perm {
		seen[int(p)%len(grad2)] = true
	}
	for g, ok := range seen {
		if !ok {
			t.Errorf("gradient %d %v is never selected", g, grad2[g])
		}
	}
}
