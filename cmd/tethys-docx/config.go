package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the CLI configuration, read from a TOML file.
type Config struct {
	// TemplateDir is where `template copy` resolves bare template names.
	TemplateDir string `toml:"template_dir"`
	// LogLevel is the default log level; the --log-level flag overrides it.
	LogLevel string `toml:"log_level"`
	// WordProcessor overrides the executable used by `open`. Empty picks
	// the platform default opener.
	WordProcessor string `toml:"word_processor"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// LoadConfig reads the TOML config at path, or ~/.tethys-docx/config.toml
// when path is empty. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".tethys-docx", "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveTemplate turns a bare template name into a path under TemplateDir;
// a name containing a path separator is used as-is.
func (c *Config) resolveTemplate(name string) string {
	if filepath.Base(name) != name || c.TemplateDir == "" {
		return name
	}
	return filepath.Join(c.TemplateDir, name)
}
