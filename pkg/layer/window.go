package layer

import "fmt"

// Pos is an absolute coordinate in one stage's resolution.
type Pos struct {
	X, Z int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Z) }

// Size is the extent of a window.
type Size struct {
	Width, Depth int
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Depth) }

// Window is a rectangle in one stage's coordinate space.
type Window struct {
	Pos  Pos
	Size Size
}

func (w Window) String() string { return fmt.Sprintf("%v+%v", w.Pos, w.Size) }

// floorDiv divides rounding toward negative infinity, keeping negative
// coordinates continuous across zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ceilDiv divides non-negative a by positive b rounding up.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
