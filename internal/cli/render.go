package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/landmask/internal/atlas"
	"github.com/OCharnyshevich/landmask/internal/render"
	"github.com/OCharnyshevich/landmask/pkg/layer/grid"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	var (
		color  bool
		noAxes bool
		stats  bool
		warm   int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate a window and print it",
	}

	cf := bindConfigFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := loggerFromContext(ctx)

		if warm < 0 {
			return fmt.Errorf("--warm must not be negative, got %d", warm)
		}
		cfg, err := cf.resolve(cmd)
		if err != nil {
			return err
		}
		p, err := cfg.Pipeline()
		if err != nil {
			return err
		}

		w := cfg.OutputWindow()
		prog := newProgress(logger)

		var g *grid.Grid[bool]
		if cfg.TileSize == 0 {
			g = p.Evaluate(w.Pos, w.Size)
		} else {
			a := atlas.New[bool](p, cfg.TileSize, slogger(logger))
			if warm > 0 {
				center := a.TileOf(w.Pos.X+w.Size.Width/2, w.Pos.Z+w.Size.Depth/2)
				n := a.PreGenerateRadius(center, warm)
				logger.Debug("warmed tiles", "center", center, "tiles", n, "tile_size", a.TileSize())
			}
			g, err = a.Region(ctx, w.Pos, w.Size, cfg.Workers)
			if err != nil {
				return err
			}
		}
		prog.done("generated", "window", w, "stages", p.Stages())

		if err := render.Text(cmd.OutOrStdout(), g, render.Options{Axes: !noAxes, Color: color}); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if stats {
			s := render.Summarize(g)
			fmt.Fprintf(cmd.OutOrStdout(), "land %d/%d (%.1f%%)\n", s.Land, s.Cells, 100*s.LandRatio())
		}
		return nil
	}

	cmd.Flags().BoolVar(&color, "color", false, "colour land and sea")
	cmd.Flags().BoolVar(&noAxes, "no-axes", false, "omit the centre markers")
	cmd.Flags().BoolVar(&stats, "stats", false, "print the land ratio after the map")
	cmd.Flags().IntVar(&warm, "warm", 0, "pre-generate tiles within this radius of the window's centre tile")
	return cmd
}
