package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tristendillon/pagemigrate/core/logger"
	"gopkg.in/yaml.v3"
)

const FileName = "pagemigrate.yaml"

type Config struct {
	// BaseDir is resolved against the working directory when relative.
	BaseDir string   `yaml:"base_dir"`
	Files   []string `yaml:"files"`
}

func Default() *Config {
	return &Config{
		BaseDir: filepath.Join("web", "src", "components", "pages"),
		Files: []string{
			"Analytics.tsx",
			"Applications.tsx",
			"Apply.tsx",
			"Live.tsx",
			"NewTournament.tsx",
			"Reports.tsx",
			"Settings.tsx",
			"Tournaments.tsx",
		},
	}
}

// Load reads path, or pagemigrate.yaml in the working directory when path
// is empty. A missing default file yields Default(); a missing explicit
// path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working dir: %w", err)
		}
		path = filepath.Join(wd, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			logger.Debug("No config file found, using default config")
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	cfg.fillDefaults()

	logger.Debug("Config file found: %s", path)
	logger.Debug("Config: %+v", cfg)

	return &cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.BaseDir == "" {
		c.BaseDir = def.BaseDir
	}
	if len(c.Files) == 0 {
		c.Files = def.Files
	}
}

// Write serializes the config to path, refusing to clobber an existing file
// unless force is set.
func (c *Config) Write(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists", path)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
