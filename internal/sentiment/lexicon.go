package sentiment

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

//go:embed afinn.tsv
var builtinLexiconTSV []byte

// Lexicon maps lowercase tokens to an integer valence
type Lexicon map[string]int

// BuiltinLexicon returns a fresh copy of the embedded word list
func BuiltinLexicon() (Lexicon, error) {
	return parseLexiconTSV(builtinLexiconTSV)
}

// Merge overlays other onto l. Entries in other win.
func (l Lexicon) Merge(other Lexicon) {
	for word, valence := range other {
		l[strings.ToLower(word)] = valence
	}
}

// Valence returns the valence of token and whether it is known
func (l Lexicon) Valence(token string) (int, bool) {
	v, ok := l[token]
	return v, ok
}

// parseLexiconTSV parses "word<TAB>valence" lines
func parseLexiconTSV(data []byte) (Lexicon, error) {
	lex := make(Lexicon, 512)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		word, raw, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("lexicon line %d: missing tab separator", line)
		}
		valence, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("lexicon line %d: %w", line, err)
		}
		lex[strings.ToLower(strings.TrimSpace(word))] = valence
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return lex, nil
}

// LoadLexiconFile reads extra lexicon entries from a YAML mapping of word to
// valence, e.g.
//
//	shipit: 3
//	flaky: -2
func LoadLexiconFile(path string) (Lexicon, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("lexicon file must have .yaml or .yml extension")
	}

	// #nosec G304 - extension checked above, path comes from local config
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}

	var entries map[string]int
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	lex := make(Lexicon, len(entries))
	lex.Merge(entries)
	return lex, nil
}
