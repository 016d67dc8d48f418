package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS    = 60
	DefaultCycles = 0 // 0 means use the technique's own default
	MinFPS        = 10
	MaxFPS        = 120
)

type Config struct {
	// Technique, when set, is the id started directly when none is given
	// on the command line. Empty opens the interactive selector.
	Technique string `yaml:"technique"`
	// Cycles overrides the technique's default cycle count when positive.
	Cycles int  `yaml:"cycles"`
	FPS    int  `yaml:"fps"`
	Audio  bool `yaml:"audio"`
}

func DefaultConfig() *Config {
	return &Config{
		Cycles: DefaultCycles,
		FPS:    DefaultFPS,
		Audio:  true,
	}
}

// DefaultPath returns the per-user config location, honoring
// XDG_CONFIG_HOME via os.UserConfigDir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "breathe", "config.yaml"), nil
}

// Load reads a config file over the defaults. A missing file is not an
// error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("fps %d outside [%d, %d]", c.FPS, MinFPS, MaxFPS)
	}
	if c.Cycles < 0 || c.Cycles > 99 {
		return fmt.Errorf("cycles %d outside [0, 99]", c.Cycles)
	}
	return nil
}
