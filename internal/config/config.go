package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Scoring ScoringConfig `yaml:"scoring" json:"scoring"`
	Samples SamplesConfig `yaml:"samples" json:"samples"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
	Watch   WatchConfig   `yaml:"watch" json:"watch"`
}

// ScoringConfig configures the sentiment scorer
type ScoringConfig struct {
	LexiconFile string `yaml:"lexicon_file" json:"lexicon_file"` // extra word: valence entries (YAML)
	Vader       bool   `yaml:"vader" json:"vader"`               // attach VADER compound score
}

// SamplesConfig configures the sample message source
type SamplesConfig struct {
	File   string        `yaml:"file" json:"file"`     // empty uses the built-in set
	Format string        `yaml:"format" json:"format"` // lines|auto|json|logfmt|text
	Delay  time.Duration `yaml:"delay" json:"delay"`   // simulated fetch latency
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`
	NoEmoji       bool   `yaml:"no_emoji" json:"no_emoji"`
}

// UIConfig configures the terminal UI
type UIConfig struct {
	Theme       string `yaml:"theme" json:"theme"` // default|high-contrast|minimal
	Placeholder string `yaml:"placeholder" json:"placeholder"`
	InputHeight int    `yaml:"input_height" json:"input_height"`
}

// WatchConfig configures the watch command
type WatchConfig struct {
	Format      string `yaml:"format" json:"format"`             // feed format of watched files
	MetricsAddr string `yaml:"metrics_addr" json:"metrics_addr"` // empty disables /metrics
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Scoring: ScoringConfig{
			LexiconFile: "",
			Vader:       false,
		},
		Samples: SamplesConfig{
			File:   "",
			Format: "lines",
			Delay:  time.Second,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
			NoEmoji:       false,
		},
		UI: UIConfig{
			Theme:       "default",
			Placeholder: "Enter text to analyze...",
			InputHeight: 4,
		},
		Watch: WatchConfig{
			Format:      "lines",
			MetricsAddr: "",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateSamplesConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateWatchConfig(); err != nil {
		return err
	}
	return nil
}

var validFeedFormats = map[string]bool{
	"lines":  true,
	"auto":   true,
	"json":   true,
	"logfmt": true,
	"text":   true,
}

// validateSamplesConfig validates sample source configuration
func (c *Config) validateSamplesConfig() error {
	if c.Samples.Format != "" && !validFeedFormats[c.Samples.Format] {
		return fmt.Errorf("invalid samples format: %s (must be one of: lines, auto, json, logfmt, text)", c.Samples.Format)
	}
	if c.Samples.Delay < 0 {
		return fmt.Errorf("samples delay must be non-negative")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateUIConfig validates terminal UI configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	if c.UI.InputHeight < 0 {
		return fmt.Errorf("input_height must be non-negative")
	}
	return nil
}

// validateWatchConfig validates watch configuration
func (c *Config) validateWatchConfig() error {
	if c.Watch.Format != "" && !validFeedFormats[c.Watch.Format] {
		return fmt.Errorf("invalid watch format: %s (must be one of: lines, auto, json, logfmt, text)", c.Watch.Format)
	}
	return nil
}
