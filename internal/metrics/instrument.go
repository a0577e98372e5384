package metrics

import (
	"time"

	"github.com/yildizm/sentimeter/internal/sentiment"
)

// InstrumentedScorer records every Score call in Prometheus and in a Tally
type InstrumentedScorer struct {
	next  sentiment.Scorer
	tally *Tally
}

// Instrument wraps a scorer. A nil tally gets a fresh one.
func Instrument(next sentiment.Scorer, tally *Tally) *InstrumentedScorer {
	if tally == nil {
		tally = NewTally()
	}
	return &InstrumentedScorer{next: next, tally: tally}
}

// Score implements sentiment.Scorer
func (s *InstrumentedScorer) Score(text string) (*sentiment.Result, error) {
	start := time.Now()
	result, err := s.next.Score(text)
	took := time.Since(start)

	if err != nil || result == nil {
		AnalysisErrors.Inc()
		s.tally.ObserveError()
		return result, err
	}

	AnalysisDuration.Observe(took.Seconds())
	AnalysesTotal.WithLabelValues(string(result.Category())).Inc()
	s.tally.Observe(result, took)
	return result, nil
}

// Tally returns the tally this scorer records into
func (s *InstrumentedScorer) Tally() *Tally {
	return s.tally
}
