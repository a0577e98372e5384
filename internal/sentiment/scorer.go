package sentiment

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Scorer scores a single text
type Scorer interface {
	Score(text string) (*Result, error)
}

// Options configures a LexiconScorer
type Options struct {
	// Extra entries merged over the built-in lexicon
	Extra Lexicon
	// Vader attaches a VADER compound score to every result
	Vader bool
}

// LexiconScorer scores text by summing token valences. It is immutable after
// construction and safe for concurrent use.
type LexiconScorer struct {
	lexicon Lexicon
	vader   bool
}

// NewLexiconScorer builds a scorer from the built-in lexicon and opts
func NewLexiconScorer(opts Options) (*LexiconScorer, error) {
	lex, err := BuiltinLexicon()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in lexicon: %w", err)
	}
	if len(opts.Extra) > 0 {
		lex.Merge(opts.Extra)
	}
	return &LexiconScorer{lexicon: lex, vader: opts.Vader}, nil
}

// Score implements Scorer. Empty input yields a zero result.
func (s *LexiconScorer) Score(text string) (*Result, error) {
	tokens := Tokenize(text)

	result := &Result{
		ID:       uuid.NewString(),
		Text:     text,
		Tokens:   len(tokens),
		Positive: []string{},
		Negative: []string{},
	}

	for i, token := range tokens {
		valence, ok := s.lexicon.Valence(token)
		if !ok || valence == 0 {
			continue
		}
		if i > 0 && isNegator(tokens[i-1]) {
			valence = -valence
		}

		if valence > 0 {
			result.Positive = append(result.Positive, token)
		} else {
			result.Negative = append(result.Negative, token)
		}
		result.Score += valence
	}

	if result.Tokens > 0 {
		result.Comparative = float64(result.Score) / float64(result.Tokens)
	}

	if s.vader {
		compound := vaderCompound(text)
		result.Compound = &compound
	}

	return result, nil
}

// Words returns the number of lexicon entries
func (s *LexiconScorer) Words() int {
	return len(s.lexicon)
}

var (
	defaultScorer *LexiconScorer
	defaultErr    error
	defaultOnce   sync.Once
)

// Default returns the process-wide scorer built from the embedded lexicon.
// It is constructed on first use and shared afterwards.
func Default() (*LexiconScorer, error) {
	defaultOnce.Do(func() {
		defaultScorer, defaultErr = NewLexiconScorer(Options{})
	})
	return defaultScorer, defaultErr
}

// Analyze scores text with the default scorer
func Analyze(text string) (*Result, error) {
	scorer, err := Default()
	if err != nil {
		return nil, err
	}
	return scorer.Score(text)
}
