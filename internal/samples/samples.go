// Package samples provides the canned messages shown in the sample list.
package samples

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/yildizm/sentimeter/internal/config"
	"github.com/yildizm/sentimeter/internal/feed"
)

// DefaultDelay is the simulated fetch latency of a sample load
const DefaultDelay = time.Second

var builtin = []string{
	"I absolutely love this new feature! It's amazing! 🎉",
	"This is the worst experience ever. Totally disappointed. 😠",
	"The customer service was really helpful today.",
	"Can't believe how buggy this software is. Waste of money.",
	"Just had a great time at the conference! Learning so much!",
}

// Builtin returns a copy of the built-in sample messages
func Builtin() []string {
	return append([]string(nil), builtin...)
}

// Source is a fixed sample set plus the delay used to simulate fetching it
type Source struct {
	Texts []string
	Delay time.Duration
	// Origin describes where the texts came from, "builtin" or a file path
	Origin string
}

// Options selects the sample source
type Options struct {
	File   string
	Format string
	Delay  time.Duration
}

// Load resolves a Source. An empty File selects the built-in set.
func Load(opts Options) (*Source, error) {
	src := &Source{Delay: opts.Delay, Origin: "builtin"}

	if opts.File == "" {
		src.Texts = Builtin()
		return src, nil
	}

	texts, err := loadFile(opts.File, opts.Format)
	if err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no sample messages found in %s", opts.File)
	}

	src.Texts = texts
	src.Origin = filepath.Clean(opts.File)
	return src, nil
}

// FromConfig resolves the Source configured in the samples section
func FromConfig(cfg config.SamplesConfig) (*Source, error) {
	return Load(Options{File: cfg.File, Format: cfg.Format, Delay: cfg.Delay})
}

// loadFile reads a YAML string list or a message feed
func loadFile(path, format string) ([]string, error) {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return nil, fmt.Errorf("invalid sample file path: path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext == ".yaml" || ext == ".yml" {
		return loadYAML(cleanPath)
	}

	// #nosec G304 - path is validated above
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample file: %w", err)
	}
	defer func() { _ = file.Close() }()

	messages, err := feed.Parse(file, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sample file: %w", err)
	}
	return feed.Texts(messages), nil
}

func loadYAML(path string) ([]string, error) {
	// #nosec G304 - path is validated by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample file: %w", err)
	}

	var texts []string
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	kept := texts[:0]
	for _, text := range texts {
		if strings.TrimSpace(text) != "" {
			kept = append(kept, text)
		}
	}
	return kept, nil
}
