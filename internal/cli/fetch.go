package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/landmask/internal/config"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "fetch <source> [name]",
		Short: "Download a preset from a go-getter source",
		Long: `Download a preset file. The source is any go-getter address, for example
  https://example.com/presets/islands.toml
  git::https://github.com/user/presets.git//islands.yaml

The file is stored in --dir under [name], or under the source's base name.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			name := filepath.Base(src)
			if len(args) == 2 {
				name = args[1]
			}
			dst := filepath.Join(dir, name)

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			logger.Info("downloading preset", "source", src)
			if err := config.Fetch(cmd.Context(), src, dst); err != nil {
				return err
			}
			prog.done("fetched preset", "path", dst)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "o", "./presets", "directory to store presets in")
	return cmd
}
