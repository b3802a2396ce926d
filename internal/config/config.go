// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the cmdargs binary.
//
// Configuration file locations (in order of precedence):
//   - $CMDARGS_CONFIG
//   - ~/.cmdargs/config.toml
//   - Built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete cmdargs configuration.
type Config struct {
	// Log configuration
	Log LogConfig `toml:"log"`

	// Output configuration
	Output OutputConfig `toml:"output"`

	// Parser configuration
	Parser ParserConfig `toml:"parser"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error", "disabled"
	Level string `toml:"level"`
	// File is an optional rotating log file; empty logs to stderr only
	File string `toml:"file"`
	// MaxSizeMB is the size at which the log file is rotated
	MaxSizeMB int `toml:"max_size_mb"`
	// MaxAgeDays is how long rotated files are kept
	MaxAgeDays int `toml:"max_age_days"`
	// Compress gzips rotated files
	Compress bool `toml:"compress"`
}

// OutputConfig controls how results and errors are printed.
type OutputConfig struct {
	// Color is "auto" (TTY detection), "always" or "never"
	Color string `toml:"color"`
	// JSONErrors prints errors as JSON objects instead of text
	JSONErrors bool `toml:"json_errors"`
}

// ParserConfig controls argument scanning.
type ParserConfig struct {
	// StrictFlags records every value-less flag as true
	StrictFlags bool `toml:"strict_flags"`
	// ManifestPath points at the name/description/version manifest.
	// Empty means next to the executable.
	ManifestPath string `toml:"manifest_path"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxAgeDays: 15,
			Compress:   true,
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Parser: ParserConfig{
			StrictFlags: true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the cmdargs configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".cmdargs"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
// CMDARGS_CONFIG overrides the default location.
func ConfigPathTOML() (string, error) {
	if path := os.Getenv("CMDARGS_CONFIG"); path != "" {
		return path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load loads configuration from the default location.
// A missing file is not an error: defaults plus environment overrides apply.
func Load() (*Config, error) {
	path, err := ConfigPathTOML()
	if err != nil {
		return loadDefaults()
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return loadDefaults()
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific TOML file with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return finish(cfg)
}

// ErrInvalid marks a config file that cannot be used: unreadable,
// malformed, carrying unknown keys, or failing validation.
var ErrInvalid = errors.New("invalid config")

// LoadTOML decodes a TOML file over cfg. Keys absent from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("%w: failed to decode TOML file: %w", ErrInvalid, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown config keys: %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return nil
}

func loadDefaults() (*Config, error) {
	return finish(Default())
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// SetDefaults fills zero values left by a partial file.
func (c *Config) SetDefaults() {
	defaults := Default()
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = defaults.Log.MaxSizeMB
	}
	if c.Log.MaxAgeDays <= 0 {
		c.Log.MaxAgeDays = defaults.Log.MaxAgeDays
	}
	if c.Output.Color == "" {
		c.Output.Color = defaults.Output.Color
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
// Supported variables:
//   - CMDARGS_LOG_LEVEL: overrides log.level
//   - CMDARGS_LOG_FILE: overrides log.file
//   - CMDARGS_COLOR: overrides output.color
//   - CMDARGS_JSON_ERRORS: overrides output.json_errors
//   - CMDARGS_STRICT_FLAGS: overrides parser.strict_flags
//   - CMDARGS_MANIFEST: overrides parser.manifest_path
func (c *Config) ApplyEnvOverrides() {
	if level := os.Getenv("CMDARGS_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if file := os.Getenv("CMDARGS_LOG_FILE"); file != "" {
		c.Log.File = file
	}
	if color := os.Getenv("CMDARGS_COLOR"); color != "" {
		c.Output.Color = color
	}
	if v := os.Getenv("CMDARGS_JSON_ERRORS"); v != "" {
		c.Output.JSONErrors = envBool(v)
	}
	if v := os.Getenv("CMDARGS_STRICT_FLAGS"); v != "" {
		c.Parser.StrictFlags = envBool(v)
	}
	if path := os.Getenv("CMDARGS_MANIFEST"); path != "" {
		c.Parser.ManifestPath = path
	}
}

func envBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "disabled": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error, disabled", c.Log.Level),
		})
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(c.Output.Color)] {
		errs = append(errs, ValidationError{
			Field:   "output.color",
			Message: fmt.Sprintf("invalid color mode '%s', must be one of: auto, always, never", c.Output.Color),
		})
	}

	if c.Log.File != "" && strings.HasSuffix(c.Log.File, string(filepath.Separator)) {
		errs = append(errs, ValidationError{
			Field:   "log.file",
			Message: "must be a file path, not a directory",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
