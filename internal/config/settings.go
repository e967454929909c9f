package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds the runtime options that are not simulation tunables.
type Settings struct {
	Window WindowSettings `toml:"window"`
	Sim    SimSettings    `toml:"simulation"`
	Audio  AudioSettings  `toml:"audio"`
	HUD    HUDSettings    `toml:"hud"`
}

// WindowSettings controls the host window.
type WindowSettings struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
}

// SimSettings controls the simulation seed. Zero means seed from the clock.
type SimSettings struct {
	Seed uint64 `toml:"seed"`
}

// AudioSettings controls click feedback tones.
type AudioSettings struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0..1
}

// HUDSettings controls the debug overlay and background.
type HUDSettings struct {
	Enabled    bool   `toml:"enabled"`
	Background string `toml:"background"` // hex, e.g. "#050a14"
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     "Neural Brain - click: pulse, double-click: attract/repel, H: HUD, S: screenshot, Esc/Q: quit",
			Resizable: true,
		},
		Audio: AudioSettings{Enabled: true, Volume: 0.35},
		HUD:   HUDSettings{Enabled: false, Background: "#050a14"},
	}
}

// Dir returns the brainviz config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "brainviz")
}

// DefaultPath is the settings file used when no path is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads settings from path over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings to path, creating parent directories.
func Save(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create settings %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode settings %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close settings %s: %w", path, err)
	}
	return nil
}

// Validate rejects values the window or audio output cannot use.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %.2f out of range [0,1]", s.Audio.Volume)
	}
	if _, err := ParseHex(s.HUD.Background); err != nil {
		return err
	}
	return nil
}
