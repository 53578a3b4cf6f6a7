// Package config loads defaults for the strfmt command from a TOML file.
//
// The file is read from the path given on the command line or, failing
// that, from strfmt/config.toml under the XDG config directories:
//
//	ignore_missing = true
//	display_width = false
//
//	[vars]
//	user = "alice"
//	port = 8080
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/bjaus/strfmt"
	"github.com/bjaus/strfmt/internal/logging"
)

// RelPath is the config file location relative to an XDG config directory.
const RelPath = "strfmt/config.toml"

// Config holds command defaults.
type Config struct {
	IgnoreMissing bool           `toml:"ignore_missing"`
	DisplayWidth  bool           `toml:"display_width"`
	Vars          map[string]any `toml:"vars"`

	// Path is the file the config was read from, empty when none was found.
	Path string `toml:"-"`
}

// Load reads the config at path. An empty path searches the XDG config
// directories; finding nothing there yields an empty config.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	if path == "" {
		found, err := xdg.SearchConfigFile(RelPath)
		if err != nil {
			logger.Debug().Str("file", RelPath).Msg("No config file found")
			return &Config{}, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Path = path
	logger.Debug().Str("path", path).Int("vars", len(cfg.Vars)).Msg("Loaded config")
	return cfg, nil
}

// Parse decodes a TOML config document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		return nil, err
	}
	return &cfg, nil
}

// Options returns the formatting options the config enables.
func (c *Config) Options() []strfmt.Option {
	var opts []strfmt.Option
	if c.IgnoreMissing {
		opts = append(opts, strfmt.WithIgnoreMissing())
	}
	if c.DisplayWidth {
		opts = append(opts, strfmt.WithDisplayWidth())
	}
	return opts
}

// Lookup resolves keys against the [vars] table, including dotted paths
// into nested tables. It returns nil when the table is empty.
func (c *Config) Lookup() strfmt.Lookup {
	if len(c.Vars) == 0 {
		return nil
	}
	return strfmt.NewTree(c.Vars)
}
