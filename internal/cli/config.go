package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/squaremap/pkg/errors"
)

// Config holds CLI defaults loaded from a TOML file. Flags given on the
// command line take precedence over config values.
//
// Example file:
//
//	x = 0.0
//	y = 0.0
//	width = 1024.0
//	height = 768.0
//	sort = true
//	padding = 2.0
//	format = "table"
type Config struct {
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Sort    bool    `toml:"sort"`
	Padding float64 `toml:"padding"`
	Format  string  `toml:"format"`
}

// defaultConfig returns the built-in defaults used when no config file is
// given.
func defaultConfig() Config {
	return Config{
		X:      0,
		Y:      0,
		Width:  800,
		Height: 600,
		Format: formatTable,
	}
}

// loadConfig reads CLI defaults from the TOML file at path. An empty path
// returns the built-in defaults; a missing or malformed file is an error,
// since the user asked for it explicitly.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if cfg.Format != formatTable && cfg.Format != formatJSON {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown format %q in %s", cfg.Format, path)
	}
	return cfg, nil
}
