// Package sentiment scores free text against a word valence lexicon.
//
// The package exposes a small Scorer contract so callers never depend on the
// concrete lexicon implementation. Results are validated at the boundary
// before they are handed to presentation code.
package sentiment

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidResult is returned when a scorer produced a result that does not
// satisfy the result schema.
var ErrInvalidResult = errors.New("invalid sentiment result")

// Category is the presentation bucket for a score
type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNegative Category = "negative"
	CategoryNeutral  Category = "neutral"
)

// Classify maps a score to exactly one category.
func Classify(score int) Category {
	switch {
	case score > 0:
		return CategoryPositive
	case score < 0:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}

// Result is the output of a single scoring call. It is never modified after
// a scorer returns it.
type Result struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Score       int      `json:"score"`
	Comparative float64  `json:"comparative"`
	Tokens      int      `json:"tokens"`
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
	Compound    *float64 `json:"compound,omitempty"`
}

// Category returns the category of the result's score
func (r *Result) Category() Category {
	return Classify(r.Score)
}

// Validate checks the result schema.
func (r *Result) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil result", ErrInvalidResult)
	}
	if math.IsNaN(r.Comparative) || math.IsInf(r.Comparative, 0) {
		return fmt.Errorf("%w: comparative score is not finite", ErrInvalidResult)
	}
	if r.Tokens < 0 {
		return fmt.Errorf("%w: negative token count %d", ErrInvalidResult, r.Tokens)
	}
	if r.Tokens == 0 && r.Score != 0 {
		return fmt.Errorf("%w: score %d without tokens", ErrInvalidResult, r.Score)
	}
	for _, w := range r.Positive {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("%w: empty positive word", ErrInvalidResult)
		}
	}
	for _, w := range r.Negative {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("%w: empty negative word", ErrInvalidResult)
		}
	}
	if r.Compound != nil && (math.IsNaN(*r.Compound) || *r.Compound < -1 || *r.Compound > 1) {
		return fmt.Errorf("%w: compound score out of range", ErrInvalidResult)
	}
	return nil
}

// ScoredText pairs a text with its result, used for list rendering
type ScoredText struct {
	Text     string   `json:"text"`
	Result   *Result  `json:"result"`
	Category Category `json:"category"`
}

// NewScoredText builds a ScoredText from a result
func NewScoredText(text string, result *Result) ScoredText {
	return ScoredText{
		Text:     text,
		Result:   result,
		Category: result.Category(),
	}
}
