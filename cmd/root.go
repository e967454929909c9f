package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/brain-visualization/internal/config"
	"github.com/iburimskiy/brain-visualization/internal/game"
	"github.com/iburimskiy/brain-visualization/internal/ui"
)

var version = "0.3.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "brainviz",
	Short: "brainviz - an interactive neural brain",
	Long: ui.Brand.Sprint("brainviz") + " - a living graph of neurons that reacts to your pointer\n" +
		ui.Subtle.Sprint("Click to send a pulse, double-click to flip between repel and attract"),
	Version:      version,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	rootCmd.SetVersionTemplate("brainviz {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default "+config.DefaultPath()+")")

	f := rootCmd.Flags()
	f.Uint64("seed", 0, "Layout seed, 0 picks one from the clock")
	f.Int("width", config.WindowWidth, "Window width")
	f.Int("height", config.WindowHeight, "Window height")
	f.Bool("mute", false, "Disable click sounds")
	f.Bool("hud", false, "Show the debug overlay on start")

	rootCmd.AddCommand(statsCmd(), configCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings reads the settings file and applies any flags the user set.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	s, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("seed") {
		s.Sim.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("width") {
		s.Window.Width, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		s.Window.Height, _ = f.GetInt("height")
	}
	if f.Changed("mute") {
		mute, _ := f.GetBool("mute")
		s.Audio.Enabled = !mute
	}
	if f.Changed("hud") {
		s.HUD.Enabled, _ = f.GetBool("hud")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Sim.Seed == 0 {
		s.Sim.Seed = uint64(time.Now().UnixNano())
	}
	return s, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		ui.Bad.Fprintf(os.Stderr, "brainviz: %v\n", err)
		return err
	}
	if err := game.Run(s); err != nil {
		ui.Bad.Fprintf(os.Stderr, "brainviz: %v\n", err)
		_ = zenity.Error(fmt.Sprintf("The visualization stopped:\n%v", err), zenity.Title("brainviz"))
		return err
	}
	return nil
}
