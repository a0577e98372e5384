// Package view holds the analyzer view state independent of any renderer.
//
// State has a single owner. The terminal UI mutates it only from its Update
// loop and CLI commands own their own instance, so no locking is done here.
package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/sentimeter/internal/sentiment"
)

// State is the analyzer view: input text, the last result, the sample list
// and the loading flag.
type State struct {
	scorer sentiment.Scorer

	inputText string
	current   *sentiment.Result
	samples   []string
	loading   bool
}

// New creates a view state that scores with scorer
func New(scorer sentiment.Scorer) *State {
	return &State{scorer: scorer}
}

// SetInputText replaces the input text. The current result is left as is,
// so it keeps describing the text that was analyzed.
func (s *State) SetInputText(text string) {
	s.inputText = text
}

// InputText returns the current input text
func (s *State) InputText() string {
	return s.inputText
}

// Analyze scores the input text and stores the result as the current one.
// Empty or whitespace-only input is a no-op and returns (nil, nil). If the
// scorer fails or returns an invalid result the current result is unchanged.
func (s *State) Analyze() (*sentiment.Result, error) {
	if strings.TrimSpace(s.inputText) == "" {
		return nil, nil
	}

	result, err := s.score(s.inputText)
	if err != nil {
		return nil, err
	}

	s.current = result
	return result, nil
}

// Current returns the most recent analysis result, or nil
func (s *State) Current() *sentiment.Result {
	return s.current
}

// BeginLoad marks a sample load as in flight. It returns false without
// changing anything when a load is already running.
func (s *State) BeginLoad() bool {
	if s.loading {
		return false
	}
	s.loading = true
	return true
}

// CompleteLoad stores a copy of samples and clears the loading flag
func (s *State) CompleteLoad(samples []string) {
	s.samples = append(make([]string, 0, len(samples)), samples...)
	s.loading = false
}

// IsLoading reports whether a sample load is in flight
func (s *State) IsLoading() bool {
	return s.loading
}

// Samples returns a copy of the loaded sample list
func (s *State) Samples() []string {
	return append([]string(nil), s.samples...)
}

// LoadSamples runs a complete load: it waits delay and then stores texts.
// A load already in flight makes this a no-op that returns false. The wait
// cannot be cancelled; a done ctx only cuts the wait short, the load still
// completes.
func (s *State) LoadSamples(ctx context.Context, texts []string, delay time.Duration) bool {
	if !s.BeginLoad() {
		return false
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
		}
	}

	s.CompleteLoad(texts)
	return true
}

// ScoredSamples scores every loaded sample for list rendering
func (s *State) ScoredSamples() ([]sentiment.ScoredText, error) {
	scored := make([]sentiment.ScoredText, 0, len(s.samples))
	for i, text := range s.samples {
		result, err := s.score(text)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		scored = append(scored, sentiment.NewScoredText(text, result))
	}
	return scored, nil
}

// Classify maps a score to its presentation category
func Classify(score int) sentiment.Category {
	return sentiment.Classify(score)
}

func (s *State) score(text string) (*sentiment.Result, error) {
	result, err := s.scorer.Score(text)
	if err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}
