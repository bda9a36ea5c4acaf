package layer

import (
	"fmt"

	"github.com/OCharnyshevich/landmask/pkg/layer/grid"
	"github.com/OCharnyshevich/landmask/pkg/layer/noise"
	"github.com/OCharnyshevich/landmask/pkg/layer/rng"
)

// Continents scatters land cells: a cell is land when a draw in [0,100)
// falls below Chance.
type Continents struct {
	rng    rng.Rand
	chance int32
}

// NewContinents creates the source. chance is a percentage in [0,100].
func NewContinents(r *rng.Rand, chance int32) (*Continents, error) {
	if chance < 0 || chance > 100 {
		return nil, fmt.Errorf("%w: continent chance %d outside [0,100]", ErrInvalidConfig, chance)
	}
	return &Continents{rng: *r, chance: chance}, nil
}

func (c *Continents) Fill(w Window, out *grid.Grid[bool]) {
	checkSize("continents", w.Size, out)

	r := c.rng
	for lz := 0; lz < w.Size.Depth; lz++ {
		for lx := 0; lx < w.Size.Width; lx++ {
			r.InitAt(int64(w.Pos.X+lx), int64(w.Pos.Z+lz))
			out.Set(lx, lz, int32(pick(&r, 100)) < c.chance)
		}
	}
}

// NoiseContinents marks land where octave simplex noise exceeds Threshold.
// Neighbouring cells are correlated, unlike Continents.
type NoiseContinents struct {
	simplex     *noise.Simplex
	scale       float64
	threshold   float64
	octaves     int
	persistence float64
}

// NewNoiseContinents creates the source. scale is the noise wavelength in
// cells and threshold lies in [-1, 1].
func NewNoiseContinents(salt, seed int64, scale, threshold float64) (*NoiseContinents, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: noise scale %g must be > 0", ErrInvalidConfig, scale)
	}
	if threshold < -1 || threshold > 1 {
		return nil, fmt.Errorf("%w: noise threshold %g outside [-1,1]", ErrInvalidConfig, threshold)
	}
	return &NoiseContinents{
		simplex:     noise.NewSimplex(salt, seed),
		scale:       scale,
		threshold:   threshold,
		octaves:     4,
		persistence: 0.5,
	}, nil
}

func (n *NoiseContinents) Fill(w Window, out *grid.Grid[bool]) {
	checkSize("noise continents", w.Size, out)

	for lz := 0; lz < w.Size.Depth; lz++ {
		for lx := 0; lx < w.Size.Width; lx++ {
			x := float64(w.Pos.X+lx) / n.scale
			z := float64(w.Pos.Z+lz) / n.scale
			out.Set(lx, lz, n.simplex.Octaves(x, z, n.octaves, n.persistence) > n.threshold)
		}
	}
}
