package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/brain-visualization/internal/config"
	"github.com/iburimskiy/brain-visualization/internal/headless"
	"github.com/iburimskiy/brain-visualization/internal/ui"
)

func statsCmd() *cobra.Command {
	var cfg headless.Config
	var width, height int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Run the simulation without a window and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Width, cfg.Height = float64(width), float64(height)
			rep, err := headless.Run(cfg)
			if err != nil {
				ui.Bad.Fprintf(os.Stderr, "  %v\n", err)
				return err
			}
			ui.Banner(os.Stdout, "headless run")
			ui.Table(os.Stdout, []string{"metric", "value"}, rep.Rows())
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Frames, "frames", 600, "Frames to simulate")
	f.IntVar(&cfg.Clicks, "clicks", 10, "Clicks spread over the run")
	f.IntVar(&width, "width", config.WindowWidth, "Surface width")
	f.IntVar(&height, "height", config.WindowHeight, "Surface height")
	f.Uint64Var(&cfg.Seed, "seed", 1, "Layout seed")
	return cmd
}
