// Package config loads the arcade's TOML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/store"
)

// Display controls the frame ticker
type Display struct {
	FPS int `toml:"fps"`
}

// Store selects the persistence backend
type Store struct {
	Backend string `toml:"backend"`
	// Path is the data directory holding the backend's files
	Path string `toml:"path"`
}

// Audio controls cue playback
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Game holds simulation settings
type Game struct {
	// Seed fixes every game's RNG; 0 seeds from the clock
	Seed int64 `toml:"seed"`
}

// Config is the full settings file
type Config struct {
	Display Display `toml:"display"`
	Store   Store   `toml:"store"`
	Audio   Audio   `toml:"audio"`
	Game    Game    `toml:"game"`
}

// Default returns the settings used when no file is given
func Default() Config {
	return Config{
		Display: Display{FPS: constants.DefaultFPS},
		Store:   Store{Backend: store.KindSQLite, Path: DefaultDataPath()},
		Audio:   Audio{Enabled: true, Volume: constants.DefaultVolume},
	}
}

// DefaultDataPath places the store under the user config dir, or the working dir as fallback
func DefaultDataPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "neon-arcade")
	}
	return "data"
}

// Parse decodes TOML data over the defaults
// Keys the decoder does not recognize are reported as an error
func Parse(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads path; an empty path yields the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %w", path, err)
	}
	return Parse(string(data))
}

// Validate checks value ranges
func (c Config) Validate() error {
	var errs []error
	if c.Display.FPS < constants.MinFPS || c.Display.FPS > constants.MaxFPS {
		errs = append(errs, fmt.Errorf("[display] fps %d outside [%d, %d]", c.Display.FPS, constants.MinFPS, constants.MaxFPS))
	}
	switch c.Store.Backend {
	case store.KindSQLite, store.KindFile:
		if c.Store.Path == "" {
			errs = append(errs, fmt.Errorf("[store] path required for backend %q", c.Store.Backend))
		}
	case store.KindMemory, store.KindNone:
	default:
		errs = append(errs, fmt.Errorf("[store] unknown backend %q", c.Store.Backend))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("[audio] volume %v outside [0, 1]", c.Audio.Volume))
	}
	return errors.Join(errs...)
}
