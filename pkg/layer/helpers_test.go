package layer

import (
	"testing"

	"github.com/OCharnyshevich/landmask/pkg/layer/grid"
	"github.com/OCharnyshevich/landmask/pkg/layer/rng"
)

func mustBlur(t *testing.T, salt int64, spill Spill[bool]) *Blur[bool] {
	t.Helper()
	b, err := NewBlur(rng.New(salt, 100), spill)
	if err != nil {
		t.Fatalf("NewBlur: %v", err)
	}
	return b
}

func mustContinents(t *testing.T, chance int32) *Continents {
	t.Helper()
	c, err := NewContinents(rng.New(1, 100), chance)
	if err != nil {
		t.Fatalf("NewContinents: %v", err)
	}
	return c
}

var mix42 = BoolMix{TrueChance: 4, FalseChance: 2}

// landChain mirrors the ten-stage land mask chain: zooms and x-spill
// blurs alternate, every stage with its own salt.
func landChain(t *testing.T) []Filter[bool] {
	t.Helper()
	return []Filter[bool]{
		NewZoom[bool](rng.New(2000, 100), RandomCandidate[bool]{}),
		mustBlur(t, 1, XSpill[bool](mix42)),
		NewZoom[bool](rng.New(2001, 100), BestCandidate[bool]{}),
		mustBlur(t, 2, XSpill[bool](mix42)),
		NewZoom[bool](rng.New(2002, 100), BestCandidate[bool]{}),
		mustBlur(t, 3, XSpill[bool](mix42)),
		NewZoom[bool](rng.New(2003, 100), BestCandidate[bool]{}),
		mustBlur(t, 3, XSpill[bool](mix42)),
		NewZoom[bool](rng.New(2004, 100), BestCandidate[bool]{}),
		mustBlur(t, 3, XSpill[bool](mix42)),
	}
}

// checker fills every cell with the parity of its absolute coordinate.
type checker struct{}

func (checker) Fill(w Window, out *grid.Grid[bool]) {
	checkSize("checker", w.Size, out)
	for z := 0; z < w.Size.Depth; z++ {
		for x := 0; x < w.Size.Width; x++ {
			out.Set(x, z, (w.Pos.X+x+w.Pos.Z+z)&1 == 0)
		}
	}
}

func equalGrids[T comparable](a, b *grid.Grid[T]) bool {
	if a.Width() != b.Width() || a.Depth() != b.Depth() {
		return false
	}
	for z := 0; z < a.Depth(); z++ {
		for x := 0; x < a.Width(); x++ {
			if a.Get(x, z) != b.Get(x, z) {
				return false
			}
		}
	}
	return true
}

func expectViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a contract violation panic")
		}
		if _, ok := r.(*ContractViolation); !ok {
			t.Fatalf("panic value = %#v, want *ContractViolation", r)
		}
	}()
	fn()
}
