// Package config loads and saves the user preferences that drive balance
// computation: daily target, multipliers, counting start and the last
// imported document hash.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all user preferences. The JSON keys are the historical
// schema of config.json and must not change.
type Config struct {
	DailyTargetHours float64 `json:"meta_diaria"`
	WeekdayFactor    float64 `json:"fator_dia_util"`
	WeekendFactor    float64 `json:"fator_fds"`
	Theme            string  `json:"tema_inicial"`

	// CountingStart is the ISO date from which the running total counts.
	// Nil means the whole history counts.
	CountingStart *string `json:"data_inicio_contagem"`

	// LastImportHash is the SHA-256 of the last imported document,
	// used for duplicate-submission detection. Nil until a first import.
	LastImportHash *string `json:"ultimo_hash_pdf"`
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		DailyTargetHours: 8,
		WeekdayFactor:    1.0,
		WeekendFactor:    2.0,
		Theme:            "light",
	}
}

// Path returns the config file location inside the data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, "config.json")
}

// Load reads the config file, backfilling missing keys with defaults.
// A missing or unreadable file yields the defaults; startup never fails
// on a bad config.
func Load(dataDir string) Config {
	cfg := Default()

	data, err := os.ReadFile(Path(dataDir))
	if err != nil {
		return cfg
	}

	// Unmarshal over the defaults: absent keys keep their default value,
	// explicit nulls clear the nullable pointers.
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config file, creating the data directory if needed.
func Save(dataDir string, cfg Config) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	if err := os.WriteFile(Path(dataDir), data, 0644); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// Exists reports whether a config file is already present.
func Exists(dataDir string) bool {
	_, err := os.Stat(Path(dataDir))
	return !errors.Is(err, os.ErrNotExist)
}
