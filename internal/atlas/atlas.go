// Package atlas caches pipeline output in fixed-size tiles and assembles
// arbitrary regions from them, generating missing tiles in parallel.
package atlas

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/landmask/pkg/layer"
	"github.com/OCharnyshevich/landmask/pkg/layer/grid"
)

// DefaultTileSize is used when New is given a non-positive tile size.
const DefaultTileSize = 64

// Evaluator produces the grid for an output window. *layer.Pipeline
// satisfies it.
type Evaluator[T any] interface {
	Evaluate(pos layer.Pos, size layer.Size) *grid.Grid[T]
}

// TilePos identifies a tile; tile (tx, tz) covers cells
// [tx*size, (tx+1)*size) along X and likewise along Z.
type TilePos struct{ X, Z int }

// Atlas tracks generated tiles. Tiles are never modified once cached.
type Atlas[T any] struct {
	mu       sync.RWMutex
	eval     Evaluator[T]
	tileSize int
	tiles    map[TilePos]*grid.Grid[T]
	log      *slog.Logger
}

// New creates an Atlas over eval.
func New[T any](eval Evaluator[T], tileSize int, log *slog.Logger) *Atlas[T] {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Atlas[T]{
		eval:     eval,
		tileSize: tileSize,
		tiles:    make(map[TilePos]*grid.Grid[T]),
		log:      log,
	}
}

func (a *Atlas[T]) TileSize() int { return a.tileSize }

// Len returns the number of cached tiles.
func (a *Atlas[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.tiles)
}

// TileOf returns the tile containing cell (x, z).
func (a *Atlas[T]) TileOf(x, z int) TilePos {
	return TilePos{X: floorDiv(x, a.tileSize), Z: floorDiv(z, a.tileSize)}
}

// GetOrGenerateTile returns the tile at (tx, tz), generating and caching
// it if needed.
func (a *Atlas[T]) GetOrGenerateTile(tx, tz int) *grid.Grid[T] {
	pos := TilePos{X: tx, Z: tz}

	a.mu.RLock()
	if t, ok := a.tiles[pos]; ok {
		a.mu.RUnlock()
		return t
	}
	a.mu.RUnlock()

	t := a.eval.Evaluate(
		layer.Pos{X: tx * a.tileSize, Z: tz * a.tileSize},
		layer.Size{Width: a.tileSize, Depth: a.tileSize},
	)

	a.mu.Lock()
	// Double-check after acquiring write lock.
	if existing, ok := a.tiles[pos]; ok {
		a.mu.Unlock()
		return existing
	}
	a.tiles[pos] = t
	a.mu.Unlock()

	a.log.Debug("generated tile", "tx", tx, "tz", tz)
	return t
}

// Region assembles the window (pos, size) from tiles. Missing tiles are
// generated concurrently, at most workers at a time (0 = GOMAXPROCS).
func (a *Atlas[T]) Region(ctx context.Context, pos layer.Pos, size layer.Size, workers int) (*grid.Grid[T], error) {
	if size.Width < 0 || size.Depth < 0 {
		return nil, fmt.Errorf("region size %v is negative", size)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	var zero T
	out := grid.New(zero, size.Width, size.Depth)
	if size.Width == 0 || size.Depth == 0 {
		return out, nil
	}

	lo := a.TileOf(pos.X, pos.Z)
	hi := a.TileOf(pos.X+size.Width-1, pos.Z+size.Depth-1)
	cols := hi.X - lo.X + 1
	tiles := make([]*grid.Grid[T], cols*(hi.Z-lo.Z+1))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for tz := lo.Z; tz <= hi.Z; tz++ {
		for tx := lo.X; tx <= hi.X; tx++ {
			i := (tz-lo.Z)*cols + (tx - lo.X)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				tiles[i] = a.GetOrGenerateTile(tx, tz)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generate region %v+%v: %w", pos, size, err)
	}

	for z := 0; z < size.Depth; z++ {
		for x := 0; x < size.Width; x++ {
			ax, az := pos.X+x, pos.Z+z
			tp := a.TileOf(ax, az)
			t := tiles[(tp.Z-lo.Z)*cols+(tp.X-lo.X)]
			out.Set(x, z, t.Get(ax-tp.X*a.tileSize, az-tp.Z*a.tileSize))
		}
	}

	a.log.Info("region ready", "pos", pos, "size", size, "tiles", len(tiles), "elapsed", time.Since(start).Round(time.Millisecond))
	return out, nil
}

// PreGenerateRadius generates all tiles within radius of the tile center,
// returning how many tiles that covers.
func (a *Atlas[T]) PreGenerateRadius(center TilePos, radius int) int {
	count := 0
	for tx := center.X - radius; tx <= center.X+radius; tx++ {
		for tz := center.Z - radius; tz <= center.Z+radius; tz++ {
			a.GetOrGenerateTile(tx, tz)
			count++
		}
	}
	return count
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
