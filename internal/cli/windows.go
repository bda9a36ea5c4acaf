package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newWindowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "windows",
		Short: "Print the window each stage reads for the requested output",
	}

	cf := bindConfigFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := cf.resolve(cmd)
		if err != nil {
			return err
		}
		p, err := cfg.Pipeline()
		if err != nil {
			return err
		}

		w := cfg.OutputWindow()
		ws := p.Windows(w.Pos, w.Size)

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "STAGE\tKIND\tSALT\tINPUT\tOUTPUT")
		fmt.Fprintf(tw, "source\t%s\t%d\t-\t%v\n", cfg.Source.Kind, cfg.Source.Salt, ws[0])
		for i, s := range cfg.Stages {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%v\t%v\n", i, s.Kind, s.Salt, ws[i], ws[i+1])
		}
		return tw.Flush()
	}
	return cmd
}
