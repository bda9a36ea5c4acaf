package layer

import (
	"fmt"

	"github.com/OCharnyshevich/landmask/pkg/layer/grid"
	"github.com/OCharnyshevich/landmask/pkg/layer/rng"
)

// blurMargin is how far a blur reads past each edge of its output.
const blurMargin = 1

// Axis selects the direction a spill reads its neighbour from.
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Mixer combines a cell's own value with one neighbour.
// r is already initialized at the cell.
type Mixer[T any] interface {
	Mix(r *rng.Rand, own, neighbour T) T
}

// BoolMix returns true with probability TrueChance/(TrueChance+FalseChance)
// when the two values disagree, and their common value otherwise.
type BoolMix struct {
	TrueChance  int32
	FalseChance int32
}

func (m BoolMix) Validate() error {
	if m.TrueChance < 0 || m.FalseChance < 0 {
		return fmt.Errorf("%w: negative mix weight %d:%d", ErrInvalidConfig, m.TrueChance, m.FalseChance)
	}
	if m.TrueChance+m.FalseChance <= 0 {
		return fmt.Errorf("%w: mix weights sum to zero", ErrInvalidConfig)
	}
	return nil
}

func (m BoolMix) Mix(r *rng.Rand, own, neighbour bool) bool {
	if own == neighbour {
		return own
	}
	return int32(pick(r, int(m.TrueChance+m.FalseChance))) < m.TrueChance
}

// Spill reads the neighbour one step away along Axis, on a side picked
// per cell, and mixes it with the cell's own value.
type Spill[T any] struct {
	Axis  Axis
	Mixer Mixer[T]
}

// XSpill spills along X.
func XSpill[T any](m Mixer[T]) Spill[T] { return Spill[T]{Axis: AxisX, Mixer: m} }

// ZSpill spills along Z.
func ZSpill[T any](m Mixer[T]) Spill[T] { return Spill[T]{Axis: AxisZ, Mixer: m} }

// Blur keeps resolution and smooths each cell against a bordering one.
type Blur[T any] struct {
	rng   rng.Rand
	spill Spill[T]
}

// NewBlur creates a blur stage drawing from a copy of r. A Mixer with a
// Validate() error method is checked here.
func NewBlur[T any](r *rng.Rand, spill Spill[T]) (*Blur[T], error) {
	if spill.Mixer == nil {
		return nil, fmt.Errorf("%w: blur without mixer", ErrInvalidConfig)
	}
	if spill.Axis != AxisX && spill.Axis != AxisZ {
		return nil, fmt.Errorf("%w: unknown axis %v", ErrInvalidConfig, spill.Axis)
	}
	if v, ok := spill.Mixer.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &Blur[T]{rng: *r, spill: spill}, nil
}

func (b *Blur[T]) RequiredInputPosition(out Pos) Pos {
	return Pos{X: out.X - blurMargin, Z: out.Z - blurMargin}
}

func (b *Blur[T]) RequiredInputSize(out Size) Size {
	return Size{Width: out.Width + 2*blurMargin, Depth: out.Depth + 2*blurMargin}
}

func (b *Blur[T]) Produce(pos Pos, in, out *grid.Grid[T]) {
	checkSize("blur", b.RequiredInputSize(sizeOf(out)), in)

	r := b.rng
	for lz := 0; lz < out.Depth(); lz++ {
		for lx := 0; lx < out.Width(); lx++ {
			ix, iz := lx+blurMargin, lz+blurMargin

			r.InitAt(int64(pos.X+lx), int64(pos.Z+lz))
			step := -blurMargin
			if pick(&r, 2) == 1 {
				step = blurMargin
			}

			nx, nz := ix, iz
			if b.spill.Axis == AxisX {
				nx += step
			} else {
				nz += step
			}

			out.Set(lx, lz, b.spill.Mixer.Mix(&r, in.Get(ix, iz), in.Get(nx, nz)))
		}
	}
}
