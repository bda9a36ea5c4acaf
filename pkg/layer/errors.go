package layer

import (
	"errors"
	"fmt"

	"github.com/OCharnyshevich/landmask/pkg/layer/grid"
)

// ErrInvalidConfig is wrapped by constructors given unusable parameters.
var ErrInvalidConfig = errors.New("layer: invalid stage configuration")

// ContractViolation reports an input grid whose size differs from what the
// consuming stage declared. Stages panic with it; it is never recovered
// since a mismatched grid silently shifts every coordinate downstream.
type ContractViolation struct {
	Stage string
	Want  Size
	Got   Size
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("layer: %s needs input %v, got %v", e.Stage, e.Want, e.Got)
}

func sizeOf[T any](g *grid.Grid[T]) Size {
	return Size{Width: g.Width(), Depth: g.Depth()}
}

func checkSize[T any](stage string, want Size, g *grid.Grid[T]) {
	if got := sizeOf(g); got != want {
		panic(&ContractViolation{Stage: stage, Want: want, Got: got})
	}
}
