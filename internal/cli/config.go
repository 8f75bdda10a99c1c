package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// config holds solver defaults loaded from a TOML file. Flags set
// explicitly on the command line take precedence over config values.
//
// Example:
//
//	strategy = "astar"
//	max-cost = 50.0
//	quiet = true
type config struct {
	Strategy string  `toml:"strategy"`
	MaxCost  float64 `toml:"max-cost"`
	Quiet    bool    `toml:"quiet"`
}

// loadConfig reads and decodes the TOML file at path. An empty path yields
// the zero config; a missing or malformed file is an error.
func loadConfig(path string) (config, error) {
	if path == "" {
		return config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
