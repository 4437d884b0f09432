package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the content of a configuration file.
// Values set on the command line take precedence.
type Config struct {
	Precision  string `yaml:"precision" toml:"precision"`
	Iterations *int   `yaml:"iterations" toml:"iterations"`
	Verbose    bool   `yaml:"verbose" toml:"verbose"`
	Color      *bool  `yaml:"color" toml:"color"`
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) configuration file.
func LoadConfig(path string) (cfg Config, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot LoadConfig: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot LoadConfig: YAML parse error: %w", err)
		}
	case ".toml":
		if err = toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot LoadConfig: TOML parse error: %w", err)
		}
	default:
		return cfg, fmt.Errorf("cannot LoadConfig: unsupported format %q", ext)
	}

	if err = checkPrecision(cfg.Precision); cfg.Precision != "" && err != nil {
		return cfg, fmt.Errorf("cannot LoadConfig: %w", err)
	}

	return cfg, nil
}

func checkPrecision(precision string) error {
	switch precision {
	case "float32", "float64":
		return nil
	default:
		return fmt.Errorf("invalid precision %q: must be float32 or float64", precision)
	}
}
