// Package config loads and saves budgetmate preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all budgetmate configuration.
type Config struct {
	Budget     BudgetConfig     `toml:"budget"`
	Validation ValidationConfig `toml:"validation"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// BudgetConfig holds the household's budgeting preferences.
type BudgetConfig struct {
	// PayCycle is the cadence everything is normalized to:
	// weekly, fortnightly, monthly, quarterly, or annually.
	PayCycle string `toml:"pay_cycle"`
	DataDir  string `toml:"data_dir,omitempty"`
}

// ValidationConfig tunes plan validation.
type ValidationConfig struct {
	// SurplusFloorUSD is the unallocated-income threshold below which the
	// surplus warning stays quiet.
	SurplusFloorUSD float64 `toml:"surplus_floor_usd"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Budget: BudgetConfig{
			PayCycle: "fortnightly",
		},
		Validation: ValidationConfig{
			SurplusFloorUSD: 10,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetmate")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "budgetmate")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns where the envelope database lives, preferring the
// configured override, then XDG data home.
func DataDir(cfg Config) string {
	if cfg.Budget.DataDir != "" {
		return cfg.Budget.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetmate")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "budgetmate")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
