package layer

import (
	"github.com/OCharnyshevich/landmask/pkg/layer/grid"
	"github.com/OCharnyshevich/landmask/pkg/layer/rng"
)

const (
	zoomFactor = 2
	// zoomMargin covers the extra upstream column and row read at the
	// edges of a window; half of it sits before the window's origin.
	zoomMargin = 2
)

// Candidate picks one of several upstream values for a cell that falls
// between upstream coordinates. r is already initialized at the cell.
type Candidate[T any] interface {
	Choose(r *rng.Rand, values []T) T
}

// RandomCandidate picks uniformly.
type RandomCandidate[T any] struct{}

func (RandomCandidate[T]) Choose(r *rng.Rand, values []T) T {
	return values[pick(r, len(values))]
}

// BestCandidate picks the value held by a strict majority of the
// candidates, or falls back to RandomCandidate.
type BestCandidate[T comparable] struct{}

func (BestCandidate[T]) Choose(r *rng.Rand, values []T) T {
	for i, v := range values {
		n := 1
		for _, w := range values[i+1:] {
			if w == v {
				n++
			}
		}
		if n*2 > len(values) {
			return v
		}
	}
	return values[pick(r, len(values))]
}

func pick(r *rng.Rand, n int) int {
	i, err := r.NextInt(int32(n))
	if err != nil {
		panic(err) // callers always pass at least one candidate
	}
	return int(i)
}

// Zoom doubles resolution along both axes.
//
// Upstream cell i lands on output coordinate 2i, where it is copied as is.
// Output coordinate 2i+1 falls between upstream cells i and i+1, so those
// cells are candidates; odd on both axes gives four.
type Zoom[T any] struct {
	rng       rng.Rand
	candidate Candidate[T]
}

// NewZoom creates a zoom stage drawing from a copy of r.
func NewZoom[T any](r *rng.Rand, candidate Candidate[T]) *Zoom[T] {
	return &Zoom[T]{rng: *r, candidate: candidate}
}

func (z *Zoom[T]) RequiredInputPosition(out Pos) Pos {
	return Pos{
		X: floorDiv(out.X, zoomFactor) - zoomMargin/2,
		Z: floorDiv(out.Z, zoomFactor) - zoomMargin/2,
	}
}

func (z *Zoom[T]) RequiredInputSize(out Size) Size {
	return Size{
		Width: ceilDiv(out.Width, zoomFactor) + zoomMargin,
		Depth: ceilDiv(out.Depth, zoomFactor) + zoomMargin,
	}
}

func (z *Zoom[T]) Produce(pos Pos, in, out *grid.Grid[T]) {
	checkSize("zoom", z.RequiredInputSize(sizeOf(out)), in)
	origin := z.RequiredInputPosition(pos)

	r := z.rng
	var values [4]T
	for lz := 0; lz < out.Depth(); lz++ {
		oz := pos.Z + lz
		z0, z1 := upstream(oz, origin.Z)

		for lx := 0; lx < out.Width(); lx++ {
			ox := pos.X + lx
			x0, x1 := upstream(ox, origin.X)

			n := 0
			for iz := z0; iz <= z1; iz++ {
				for ix := x0; ix <= x1; ix++ {
					values[n] = in.Get(ix, iz)
					n++
				}
			}
			if n == 1 {
				out.Set(lx, lz, values[0])
				continue
			}

			r.InitAt(int64(ox), int64(oz))
			out.Set(lx, lz, z.candidate.Choose(&r, values[:n]))
		}
	}
}

// upstream returns the local input range, inclusive, that output
// coordinate o reads when the input starts at origin.
func upstream(o, origin int) (lo, hi int) {
	i := floorDiv(o, zoomFactor) - origin
	if o&1 == 0 {
		return i, i
	}
	return i, i + 1
}
