package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level centavo.yaml configuration.
type Config struct {
	Profile  ProfileConfig  `yaml:"profile"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Git      GitConfig      `yaml:"git"`
}

// ProfileConfig identifies the ledger owner.
type ProfileConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // default currency for reports, "PEN" or "USD"
}

// DefaultsConfig holds report and listing defaults.
type DefaultsConfig struct {
	IncludeLinked bool `yaml:"include_linked"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a centavo.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(profileName, currency string) *Config {
	if currency == "" {
		currency = "PEN"
	}
	return &Config{
		Profile: ProfileConfig{
			Name:     profileName,
			Currency: currency,
		},
		Defaults: DefaultsConfig{
			IncludeLinked: false,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Centavo",
			AuthorEmail: "ledger@centavo.dev",
		},
	}
}
