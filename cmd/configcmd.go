package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/brain-visualization/internal/config"
	"github.com/iburimskiy/brain-visualization/internal/ui"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the settings file",
	}
	cmd.AddCommand(configShowCmd(), configInitCmd())
	return cmd
}

func settingsPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(configPath)
			if err != nil {
				ui.Bad.Fprintf(os.Stderr, "  %v\n", err)
				return err
			}
			ui.Subtle.Printf("# %s\n", settingsPath())
			return toml.NewEncoder(os.Stdout).Encode(s)
		},
	}
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := settingsPath()
			if _, err := os.Stat(path); err == nil && !force {
				ui.Warn.Printf("  %s already exists, use --force to overwrite\n", path)
				return nil
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := config.Save(path, config.Default()); err != nil {
				return fmt.Errorf("write settings: %w", err)
			}
			ui.Good.Printf("  wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
