package layer

import "github.com/OCharnyshevich/landmask/pkg/layer/grid"

// Source fills a window with no upstream input.
type Source[T any] interface {
	// Fill writes the values for w into out, which must be w.Size.
	Fill(w Window, out *grid.Grid[T])
}

// Filter maps an upstream grid onto a downstream window.
//
// For an output window (pos, size) the filter reads exactly the input
// window (RequiredInputPosition(pos), RequiredInputSize(size)). Produce
// panics with a *ContractViolation when in has any other size.
// Implementations in this package keep no state between calls and are safe
// for concurrent use.
type Filter[T any] interface {
	RequiredInputPosition(out Pos) Pos
	RequiredInputSize(out Size) Size
	Produce(pos Pos, in, out *grid.Grid[T])
}

// Chain applies filters in order. A Chain is itself a Filter.
type Chain[T any] []Filter[T]

// RequiredInputPosition folds the filters from last to first.
func (c Chain[T]) RequiredInputPosition(out Pos) Pos {
	return c.fold(Window{Pos: out}).Pos
}

// RequiredInputSize folds the filters from last to first.
func (c Chain[T]) RequiredInputSize(out Size) Size {
	return c.fold(Window{Size: out}).Size
}

func (c Chain[T]) fold(w Window) Window {
	for i := len(c) - 1; i >= 0; i-- {
		w = Window{
			Pos:  c[i].RequiredInputPosition(w.Pos),
			Size: c[i].RequiredInputSize(w.Size),
		}
	}
	return w
}

// Windows returns the window at every stage boundary for the output window
// (pos, size). Index 0 is the chain's input and index len(c) is the output;
// filter i reads windows[i] and writes windows[i+1].
func (c Chain[T]) Windows(pos Pos, size Size) []Window {
	ws := make([]Window, len(c)+1)
	ws[len(c)] = Window{Pos: pos, Size: size}
	for i := len(c) - 1; i >= 0; i-- {
		next := ws[i+1]
		ws[i] = Window{
			Pos:  c[i].RequiredInputPosition(next.Pos),
			Size: c[i].RequiredInputSize(next.Size),
		}
	}
	return ws
}

// Produce runs every filter forward. Each intermediate grid is sized to
// what the next filter declared for its own target, not to the chain's
// output, and is dropped once consumed.
func (c Chain[T]) Produce(pos Pos, in, out *grid.Grid[T]) {
	ws := c.Windows(pos, sizeOf(out))
	checkSize("chain", ws[0].Size, in)

	if len(c) == 0 {
		for z := 0; z < in.Depth(); z++ {
			for x := 0; x < in.Width(); x++ {
				out.Set(x, z, in.Get(x, z))
			}
		}
		return
	}

	var zero T
	cur := in
	for i, f := range c {
		target := ws[i+1]
		next := out
		if i < len(c)-1 {
			next = grid.New(zero, target.Size.Width, target.Size.Depth)
		}
		f.Produce(target.Pos, cur, next)
		cur = next
	}
}

// Pipeline is a Source followed by a Chain.
type Pipeline[T any] struct {
	source Source[T]
	chain  Chain[T]
}

// NewPipeline builds a pipeline. The stage order is fixed here.
func NewPipeline[T any](source Source[T], stages ...Filter[T]) *Pipeline[T] {
	return &Pipeline[T]{source: source, chain: Chain[T](stages)}
}

// Stages returns the number of filters after the source.
func (p *Pipeline[T]) Stages() int { return len(p.chain) }

// RequiredInputPosition returns where the source starts filling for an
// output window at out.
func (p *Pipeline[T]) RequiredInputPosition(out Pos) Pos {
	return p.chain.RequiredInputPosition(out)
}

// RequiredInputSize returns how much the source fills for an output of
// size out.
func (p *Pipeline[T]) RequiredInputSize(out Size) Size {
	return p.chain.RequiredInputSize(out)
}

// Windows reports the window at every stage boundary, source first.
func (p *Pipeline[T]) Windows(pos Pos, size Size) []Window {
	return p.chain.Windows(pos, size)
}

// Evaluate generates the output window (pos, size).
func (p *Pipeline[T]) Evaluate(pos Pos, size Size) *grid.Grid[T] {
	var zero T
	src := Window{
		Pos:  p.chain.RequiredInputPosition(pos),
		Size: p.chain.RequiredInputSize(size),
	}
	in := grid.New(zero, src.Size.Width, src.Size.Depth)
	p.source.Fill(src, in)

	out := grid.New(zero, size.Width, size.Depth)
	p.chain.Produce(pos, in, out)
	return out
}
