package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Engine holds all configuration for the simulation engine.
type Engine struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Progression
	LevelCap        int `yaml:"level_cap"`         // tier-weight normalization cap
	ExperiencePerLevel int `yaml:"experience_per_level"` // multiplied by current level

	// Loot
	AutoSalvage          bool   `yaml:"auto_salvage"`
	SalvageTierThreshold string `yaml:"salvage_tier_threshold"` // tier name, items at/below are salvaged

	// Persistence
	SaveSlot         string        `yaml:"save_slot"`
	AutosaveInterval time.Duration `yaml:"autosave_interval"`
	Database         DatabaseConfig `yaml:"database"`

	// Demo driver
	TickInterval time.Duration `yaml:"tick_interval"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
// An empty Host disables the Postgres save store.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Enabled reports whether a database host is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DefaultEngine returns Engine config with sensible defaults.
func DefaultEngine() Engine {
	return Engine{
		LogLevel:           "info",
		LevelCap:           40,
		ExperiencePerLevel: 100,
		AutoSalvage:        false,
		SalvageTierThreshold: "basic",
		SaveSlot:           "default",
		AutosaveInterval:   30 * time.Second,
		TickInterval:       time.Second,
		Database: DatabaseConfig{
			Port:    5432,
			User:    "exile",
			Password: "exile",
			DBName:  "exile",
			SSLMode: "disable",
		},
	}
}

// LoadEngine loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
