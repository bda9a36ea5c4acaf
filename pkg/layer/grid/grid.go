// Package grid provides the dense 2D store that layer stages read and write.
package grid

import "fmt"

// Grid holds width*depth values indexed by local (x, z).
// Index = z*width + x. A Grid does not know its absolute position.
type Grid[T any] struct {
	width, depth int
	cells        []T
}

// New allocates a grid with every cell set to def.
// It panics if width or depth is negative.
func New[T any](def T, width, depth int) *Grid[T] {
	if width < 0 || depth < 0 {
		panic(fmt.Sprintf("grid: negative size %dx%d", width, depth))
	}
	cells := make([]T, width*depth)
	for i := range cells {
		cells[i] = def
	}
	return &Grid[T]{width: width, depth: depth, cells: cells}
}

func (g *Grid[T]) Width() int { return g.width }

func (g *Grid[T]) Depth() int { return g.depth }

// Get returns the value at local coordinates (x, z).
// It panics if (x, z) lies outside the grid.
func (g *Grid[T]) Get(x, z int) T {
	g.check(x, z)
	return g.cells[z*g.width+x]
}

// Set stores v at local coordinates (x, z).
// It panics if (x, z) lies outside the grid.
func (g *Grid[T]) Set(x, z int, v T) {
	g.check(x, z)
	g.cells[z*g.width+x] = v
}

// Count returns the number of cells for which fn reports true.
func (g *Grid[T]) Count(fn func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if fn(v) {
			n++
		}
	}
	return n
}

func (g *Grid[T]) check(x, z int) {
	if x < 0 || x >= g.width || z < 0 || z >= g.depth {
		panic(fmt.Sprintf("grid: (%d,%d) out of bounds %dx%d", x, z, g.width, g.depth))
	}
}
