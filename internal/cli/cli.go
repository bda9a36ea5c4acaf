// Package cli implements the landmask command-line interface.
//
// Commands:
//   - render: generate a window and print it as text
//   - windows: print the window every stage reads and writes
//   - fetch: download a pipeline preset from a go-getter source
//   - init: write the default preset to a file
//
// Every command accepts --config to load a TOML, YAML or JSON preset;
// explicitly set flags take precedence over values from the file.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/OCharnyshevich/landmask/internal/config"
)

// CLI holds the output streams shared by all commands.
type CLI struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a CLI writing results to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{out: out, errOut: errOut}
}

// Execute runs the landmask CLI with os.Args.
func Execute(ctx context.Context) error {
	return New(os.Stdout, os.Stderr).RootCommand().ExecuteContext(ctx)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "landmask",
		Short:        "Generate deterministic land/sea masks",
		Long:         `landmask grows a land/sea mask through a chain of zoom and blur stages. Every cell depends only on the seed, the stage salts and its own coordinates.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(c.errOut, level)))
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.newRenderCmd())
	root.AddCommand(c.newWindowsCmd())
	root.AddCommand(c.newFetchCmd())
	root.AddCommand(c.newInitCmd())
	return root
}

// configFlags binds the flags shared by commands that build a pipeline.
type configFlags struct {
	path string
	cfg  *config.Config
}

func bindConfigFlags(fs *pflag.FlagSet) *configFlags {
	cf := &configFlags{cfg: config.DefaultConfig()}
	fs.StringVarP(&cf.path, "config", "c", "", "preset file (.toml, .yaml, .json)")
	fs.Int64Var(&cf.cfg.Seed, "seed", cf.cfg.Seed, "world seed")
	fs.Int32Var(&cf.cfg.Source.Chance, "chance", cf.cfg.Source.Chance, "continent land percentage")
	fs.IntVar(&cf.cfg.Window.X, "x", cf.cfg.Window.X, "window origin X")
	fs.IntVar(&cf.cfg.Window.Z, "z", cf.cfg.Window.Z, "window origin Z")
	fs.IntVar(&cf.cfg.Window.Width, "width", cf.cfg.Window.Width, "window width")
	fs.IntVar(&cf.cfg.Window.Depth, "depth", cf.cfg.Window.Depth, "window depth")
	fs.IntVar(&cf.cfg.TileSize, "tile-size", cf.cfg.TileSize, "tile edge in cells (0 evaluates the window in one pass)")
	fs.IntVar(&cf.cfg.Workers, "workers", cf.cfg.Workers, "tiles generated in parallel (0 = GOMAXPROCS)")
	return cf
}

// resolve merges the preset file, if any, under explicitly set flags.
func (cf *configFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	if cf.path == "" {
		return cf.cfg, nil
	}

	fromFile := config.DefaultConfig()
	if err := config.Load(cf.path, fromFile); err != nil {
		return nil, err
	}

	explicit := make(map[string]bool)
	cmd.Flags().Visit(func(f *pflag.Flag) { explicit[f.Name] = true })
	config.Merge(cf.cfg, fromFile, explicit)

	loggerFromContext(cmd.Context()).Debug("loaded config", "path", cf.path)
	return cf.cfg, nil
}

func (c *CLI) newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write the default preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote preset", "path", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
