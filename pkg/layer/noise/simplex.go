// Package noise provides seeded 2D simplex noise for smooth continent shapes.
package noise

import "github.com/OCharnyshevich/landmask/pkg/layer/rng"

// At indexes this table modulo 12, so all twelve entries are in use and the
// axis directions are twice as likely as the diagonals.
var grad2 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

const (
	skew2   = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
)

// Simplex produces deterministic noise in [-1, 1].
type Simplex struct {
	perm [512]uint8
}

// NewSimplex shuffles a permutation table drawn from rng.New(salt, seed).
func NewSimplex(salt, seed int64) *Simplex {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}

	r := rng.New(salt, seed)
	r.InitAt(0, 0)
	for i := 255; i > 0; i-- {
		j, err := r.NextInt(int32(i + 1))
		if err != nil {
			panic(err) // i+1 is always positive
		}
		p[i], p[j] = p[j], p[i]
	}

	s := &Simplex{}
	for i := range s.perm {
		s.perm[i] = p[i&255]
	}
	return s
}

// At samples the noise field at (x, z).
func (s *Simplex) At(x, z float64) float64 {
	k := (x + z) * skew2
	i := floor(x + k)
	j := floor(z + k)

	t := float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	z0 := z - (float64(j) - t)

	// Lower or upper triangle of the skewed cell.
	i1, j1 := 0, 1
	if x0 > z0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + unskew2
	z1 := z0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	z2 := z0 - 1 + 2*unskew2

	ii := i & 255
	jj := j & 255
	g0 := int(s.perm[ii+int(s.perm[jj])]) % 12
	g1 := int(s.perm[ii+i1+int(s.perm[jj+j1])]) % 12
	g2 := int(s.perm[ii+1+int(s.perm[jj+1])]) % 12

	return 70 * (corner(g0, x0, z0) + corner(g1, x1, z1) + corner(g2, x2, z2))
}

// Octaves sums n layers of At, doubling frequency and scaling amplitude by
// persistence each time. The result is normalised back into [-1, 1].
func (s *Simplex) Octaves(x, z float64, n int, persistence float64) float64 {
	var total, norm float64
	freq, amp := 1.0, 1.0
	for range n {
		total += s.At(x*freq, z*freq) * amp
		norm += amp
		amp *= persistence
		freq *= 2
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

func corner(g int, x, z float64) float64 {
	t := 0.5 - x*x - z*z
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * (grad2[g][0]*x + grad2[g][1]*z)
}

func floor(v float64) int {
	i := int(v)
	if v < float64(i) {
		return i - 1
	}
	return i
}
