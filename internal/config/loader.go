package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.sentimeter.yaml",               // Project-specific config (highest priority)
	"~/.config/sentimeter/config.yaml", // User config
	"/etc/sentimeter/config.yaml",      // System config (lowest priority)
}

// EnvPrefix prefixes every environment override
const EnvPrefix = "SENTIMETER_"

// EnvFile is loaded into the environment before overrides are applied.
// Variables that are already set are not replaced.
var EnvFile = ".env"

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	envFile     string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFile:     EnvFile,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (including .env)
// 3. ./.sentimeter.yaml
// 4. ~/.config/sentimeter/config.yaml
// 5. /etc/sentimeter/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// lowest priority first so higher ones overwrite
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	if err := l.loadEnvFile(); err != nil {
		return nil, err
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return nil
}

// loadEnvFile loads the .env file if one exists
func (l *Loader) loadEnvFile() error {
	if l.envFile == "" || !fileExists(l.envFile) {
		return nil
	}
	if err := godotenv.Load(l.envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", l.envFile, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Scoring Config
		EnvPrefix + "SCORING_LEXICON_FILE": func(v string) error { config.Scoring.LexiconFile = v; return nil },
		EnvPrefix + "SCORING_VADER":        func(v string) error { return parseBool(v, &config.Scoring.Vader) },

		// Samples Config
		EnvPrefix + "SAMPLES_FILE":   func(v string) error { config.Samples.File = v; return nil },
		EnvPrefix + "SAMPLES_FORMAT": func(v string) error { config.Samples.Format = v; return nil },
		EnvPrefix + "SAMPLES_DELAY":  func(v string) error { return parseDuration(v, &config.Samples.Delay) },

		// Output Config
		EnvPrefix + "OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		EnvPrefix + "OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		EnvPrefix + "OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },
		EnvPrefix + "OUTPUT_NO_EMOJI":       func(v string) error { return parseBool(v, &config.Output.NoEmoji) },

		// UI Config
		EnvPrefix + "UI_THEME":        func(v string) error { config.UI.Theme = v; return nil },
		EnvPrefix + "UI_PLACEHOLDER":  func(v string) error { config.UI.Placeholder = v; return nil },
		EnvPrefix + "UI_INPUT_HEIGHT": func(v string) error { return parseInt(v, &config.UI.InputHeight) },

		// Watch Config
		EnvPrefix + "WATCH_FORMAT":       func(v string) error { config.Watch.Format = v; return nil },
		EnvPrefix + "WATCH_METRICS_ADDR": func(v string) error { config.Watch.MetricsAddr = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeScoringConfig(&dst.Scoring, &src.Scoring)
	mergeSamplesConfig(&dst.Samples, &src.Samples)
	mergeOutputConfig(&dst.Output, &src.Output)
	mergeUIConfig(&dst.UI, &src.UI)
	mergeWatchConfig(&dst.Watch, &src.Watch)
}

func mergeScoringConfig(dst, src *ScoringConfig) {
	if src.LexiconFile != "" {
		dst.LexiconFile = src.LexiconFile
	}
	mergeIfSet(&dst.Vader, src.Vader)
}

func mergeSamplesConfig(dst, src *SamplesConfig) {
	if src.File != "" {
		dst.File = src.File
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Delay != 0 {
		dst.Delay = src.Delay
	}
}

func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	mergeIfSet(&dst.Verbose, src.Verbose)
	mergeIfSet(&dst.NoEmoji, src.NoEmoji)
}

func mergeUIConfig(dst, src *UIConfig) {
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.Placeholder != "" {
		dst.Placeholder = src.Placeholder
	}
	if src.InputHeight != 0 {
		dst.InputHeight = src.InputHeight
	}
}

func mergeWatchConfig(dst, src *WatchConfig) {
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.MetricsAddr != "" {
		dst.MetricsAddr = src.MetricsAddr
	}
}

// mergeIfSet turns a flag on when the source sets it. All boolean options
// default to false, so a file can only enable them; env overrides can do both.
func mergeIfSet(dst *bool, src bool) {
	if src {
		*dst = true
	}
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
