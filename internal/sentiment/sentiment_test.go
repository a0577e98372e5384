package sentiment

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score    int
		expected Category
	}{
		{0, CategoryNeutral},
		{5, CategoryPositive},
		{1, CategoryPositive},
		{-3, CategoryNegative},
		{-1, CategoryNegative},
		{math.MaxInt32, CategoryPositive},
		{math.MinInt32, CategoryNegative},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.expected {
			t.Errorf("Classify(%d) = %s, expected %s", tt.score, got, tt.expected)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{}},
		{"whitespace", "  \t\n ", []string{}},
		{"punctuation stripped", "Hello, World!", []string{"hello", "world"}},
		{"apostrophes kept", "It's not what I can't do", []string{"it's", "not", "what", "i", "can't", "do"}},
		{"emoji split out", "party🎉time", []string{"party", "🎉", "time"}},
		{"variation selector dropped", "love ❤️", []string{"love", "❤"}},
		{"stray quotes trimmed", "'quoted' --", []string{"quoted"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLexiconScorerScore(t *testing.T) {
	scorer, err := NewLexiconScorer(Options{})
	if err != nil {
		t.Fatalf("Failed to create scorer: %v", err)
	}

	tests := []struct {
		name        string
		text        string
		score       int
		tokens      int
		positive    []string
		negative    []string
		category    Category
		comparative float64
	}{
		{
			name:        "positive sentence",
			text:        "I absolutely love this!",
			score:       3,
			tokens:      4,
			positive:    []string{"love"},
			negative:    []string{},
			category:    CategoryPositive,
			comparative: 0.75,
		},
		{
			name:        "negative sample with emoji",
			text:        "This is the worst experience ever. Totally disappointed. 😠",
			score:       -8,
			tokens:      9,
			positive:    []string{},
			negative:    []string{"worst", "disappointed", "😠"},
			category:    CategoryNegative,
			comparative: -8.0 / 9.0,
		},
		{
			name:        "negation flips valence",
			text:        "not good",
			score:       -3,
			tokens:      2,
			positive:    []string{},
			negative:    []string{"good"},
			category:    CategoryNegative,
			comparative: -1.5,
		},
		{
			name:        "negation of a negative word",
			text:        "don't hate it",
			score:       3,
			tokens:      3,
			positive:    []string{"hate"},
			negative:    []string{},
			category:    CategoryPositive,
			comparative: 1,
		},
		{
			name:     "empty input",
			text:     "",
			positive: []string{},
			negative: []string{},
			category: CategoryNeutral,
		},
		{
			name:     "no lexicon words",
			text:     "the table is brown",
			tokens:   4,
			positive: []string{},
			negative: []string{},
			category: CategoryNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scorer.Score(tt.text)
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if err := result.Validate(); err != nil {
				t.Fatalf("Result failed validation: %v", err)
			}

			if result.Score != tt.score {
				t.Errorf("Expected score %d, got %d", tt.score, result.Score)
			}
			if result.Tokens != tt.tokens {
				t.Errorf("Expected %d tokens, got %d", tt.tokens, result.Tokens)
			}
			if !reflect.DeepEqual(result.Positive, tt.positive) {
				t.Errorf("Expected positive %q, got %q", tt.positive, result.Positive)
			}
			if !reflect.DeepEqual(result.Negative, tt.negative) {
				t.Errorf("Expected negative %q, got %q", tt.negative, result.Negative)
			}
			if result.Category() != tt.category {
				t.Errorf("Expected category %s, got %s", tt.category, result.Category())
			}
			if math.Abs(result.Comparative-tt.comparative) > 1e-9 {
				t.Errorf("Expected comparative %f, got %f", tt.comparative, result.Comparative)
			}
			if result.Text != tt.text {
				t.Errorf("Expected text %q, got %q", tt.text, result.Text)
			}
			if result.ID == "" {
				t.Error("Expected result ID to be set")
			}
			if result.Compound != nil {
				t.Error("Expected no compound score without VADER")
			}
		})
	}
}

func TestLexiconScorerFreshResults(t *testing.T) {
	scorer, err := NewLexiconScorer(Options{})
	if err != nil {
		t.Fatalf("Failed to create scorer: %v", err)
	}

	first, _ := scorer.Score("great day")
	second, _ := scorer.Score("great day")
	if first == second {
		t.Fatal("Expected a new result per call")
	}
	if first.ID == second.ID {
		t.Errorf("Expected distinct IDs, both were %s", first.ID)
	}
	if first.Score != second.Score {
		t.Errorf("Expected deterministic scores, got %d and %d", first.Score, second.Score)
	}
}

func TestLexiconScorerExtraEntries(t *testing.T) {
	scorer, err := NewLexiconScorer(Options{Extra: Lexicon{"flaky": -2, "Good": 1}})
	if err != nil {
		t.Fatalf("Failed to create scorer: %v", err)
	}

	result, _ := scorer.Score("flaky but good")
	if result.Score != -1 {
		t.Errorf("Expected score -1 with overrides, got %d", result.Score)
	}
}

func TestLexiconScorerVader(t *testing.T) {
	scorer, err := NewLexiconScorer(Options{Vader: true})
	if err != nil {
		t.Fatalf("Failed to create scorer: %v", err)
	}

	result, _ := scorer.Score("I love this, it is wonderful")
	if result.Compound == nil {
		t.Fatal("Expected compound score with VADER enabled")
	}
	if *result.Compound <= 0 || *result.Compound > 1 {
		t.Errorf("Expected positive compound in (0, 1], got %f", *result.Compound)
	}
}

func TestDefaultIsShared(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	b, _ := Default()
	if a != b {
		t.Error("Expected Default to return the same instance")
	}
	if a.Words() == 0 {
		t.Error("Expected a non-empty built-in lexicon")
	}

	direct, _ := a.Score("Just had a great time at the conference!")
	viaAnalyze, err := Analyze("Just had a great time at the conference!")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if direct.Score != viaAnalyze.Score {
		t.Errorf("Expected Analyze to match Default scorer, got %d and %d", viaAnalyze.Score, direct.Score)
	}
}

func TestResultValidate(t *testing.T) {
	outOfRange := 1.5

	tests := []struct {
		name    string
		result  *Result
		wantErr bool
	}{
		{"valid", &Result{Score: 2, Tokens: 3, Comparative: 0.66, Positive: []string{"good"}}, false},
		{"zero", &Result{}, false},
		{"nil", nil, true},
		{"nan comparative", &Result{Tokens: 1, Comparative: math.NaN()}, true},
		{"inf comparative", &Result{Tokens: 1, Comparative: math.Inf(1)}, true},
		{"negative tokens", &Result{Tokens: -1}, true},
		{"score without tokens", &Result{Score: 3}, true},
		{"empty positive word", &Result{Tokens: 1, Score: 1, Positive: []string{" "}}, true},
		{"empty negative word", &Result{Tokens: 1, Score: -1, Negative: []string{""}}, true},
		{"compound out of range", &Result{Compound: &outOfRange}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected validation error")
				}
				if !errors.Is(err, ErrInvalidResult) {
					t.Errorf("Expected ErrInvalidResult, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestLoadLexiconFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "extra.yaml")
	if err := os.WriteFile(path, []byte("ShipIt: 3\nflaky: -2\n"), 0o600); err != nil {
		t.Fatalf("Failed to write lexicon: %v", err)
	}

	lex, err := LoadLexiconFile(path)
	if err != nil {
		t.Fatalf("Failed to load lexicon: %v", err)
	}
	if v, ok := lex.Valence("shipit"); !ok || v != 3 {
		t.Errorf("Expected shipit=3, got %d (found=%v)", v, ok)
	}
	if v, ok := lex.Valence("flaky"); !ok || v != -2 {
		t.Errorf("Expected flaky=-2, got %d (found=%v)", v, ok)
	}

	if _, err := LoadLexiconFile(filepath.Join(tempDir, "extra.txt")); err == nil {
		t.Error("Expected error for non-YAML extension")
	}

	bad := filepath.Join(tempDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("word: [not, a, number]\n"), 0o600); err != nil {
		t.Fatalf("Failed to write lexicon: %v", err)
	}
	if _, err := LoadLexiconFile(bad); err == nil {
		t.Error("Expected error for invalid valence")
	}
}

func TestBuiltinLexiconIsCopy(t *testing.T) {
	a, err := BuiltinLexicon()
	if err != nil {
		t.Fatalf("Failed to load lexicon: %v", err)
	}
	a["love"] = -100

	b, _ := BuiltinLexicon()
	if b["love"] != 3 {
		t.Errorf("Expected built-in love=3, got %d", b["love"])
	}
}
