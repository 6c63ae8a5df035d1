package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config holds defaults loaded from the optional YAML config file. Flags on
// the command line override everything here.
type config struct {
	Engine     string   `yaml:"engine"`
	Styles     []string `yaml:"styles"`
	Scripts    []string `yaml:"scripts"`
	Media      string   `yaml:"media"`
	PageSize   string   `yaml:"page_size"`
	PageMargin string   `yaml:"page_margin"`
	JavaScript bool     `yaml:"javascript"`
	NoNetwork  bool     `yaml:"no_network"`
	Insecure   bool     `yaml:"insecure"`
}

// loadConfig reads the config file named by --config, falling back to
// $HOME/.pdfpress.yaml. A missing default file yields an empty config; a
// missing explicit file is an error.
func loadConfig() (*config, error) {
	path := cfgFile
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return &config{}, nil
		}
		path = filepath.Join(home, ".pdfpress.yaml")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return &config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// resolveEngine picks the engine executable: flag, then environment,
// then config file.
func resolveEngine(cfg *config) (string, error) {
	if enginePath != "" {
		return enginePath, nil
	}
	if env := os.Getenv("PDFPRESS_ENGINE"); env != "" {
		return env, nil
	}
	if cfg.Engine != "" {
		return cfg.Engine, nil
	}
	return "", errors.New("no engine configured: set --engine, PDFPRESS_ENGINE, or engine: in the config file")
}
