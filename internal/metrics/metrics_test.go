package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yildizm/sentimeter/internal/sentiment"
)

type fixedScorer struct {
	results map[string]*sentiment.Result
}

func (f *fixedScorer) Score(text string) (*sentiment.Result, error) {
	if r, ok := f.results[text]; ok {
		return r, nil
	}
	return nil, errors.New("no result")
}

func TestTimer(t *testing.T) {
	timer := NewTimer()

	if timer.MinTime() != 0 {
		t.Errorf("Expected min time 0 for empty timer, got %v", timer.MinTime())
	}
	if timer.AvgTime() != 0 {
		t.Errorf("Expected avg time 0 for empty timer, got %v", timer.AvgTime())
	}

	timer.Record(10 * time.Millisecond)
	timer.Record(30 * time.Millisecond)
	timer.Record(20 * time.Millisecond)

	if timer.Count() != 3 {
		t.Errorf("Expected count 3, got %d", timer.Count())
	}
	if timer.MinTime() != 10*time.Millisecond {
		t.Errorf("Expected min 10ms, got %v", timer.MinTime())
	}
	if timer.MaxTime() != 30*time.Millisecond {
		t.Errorf("Expected max 30ms, got %v", timer.MaxTime())
	}
	if timer.AvgTime() != 20*time.Millisecond {
		t.Errorf("Expected avg 20ms, got %v", timer.AvgTime())
	}
}

func TestTallyConcurrent(t *testing.T) {
	tally := NewTally()
	positive := &sentiment.Result{Score: 2, Comparative: 0.5, Tokens: 4, Positive: []string{"good"}, Negative: []string{}}
	negative := &sentiment.Result{Score: -1, Comparative: -0.5, Tokens: 2, Positive: []string{}, Negative: []string{"bad"}}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tally.Observe(positive, time.Millisecond)
		}()
		go func() {
			defer wg.Done()
			tally.Observe(negative, time.Millisecond)
		}()
	}
	wg.Wait()
	tally.ObserveError()

	s := tally.Summary()
	if s.Total != 100 {
		t.Errorf("Expected total 100, got %d", s.Total)
	}
	if s.Positive != 50 || s.Negative != 50 || s.Neutral != 0 {
		t.Errorf("Unexpected category counts: %+v", s)
	}
	if s.Errors != 1 {
		t.Errorf("Expected 1 error, got %d", s.Errors)
	}
	if s.MeanComparative != 0 {
		t.Errorf("Expected mean comparative 0, got %f", s.MeanComparative)
	}
}

func TestInstrument(t *testing.T) {
	inner := &fixedScorer{results: map[string]*sentiment.Result{
		"neutral": {Score: 0, Tokens: 1, Positive: []string{}, Negative: []string{}},
	}}
	scorer := Instrument(inner, nil)

	if _, err := scorer.Score("neutral"); err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if _, err := scorer.Score("missing"); err == nil {
		t.Error("Expected error from inner scorer")
	}

	s := scorer.Tally().Summary()
	if s.Neutral != 1 {
		t.Errorf("Expected 1 neutral, got %d", s.Neutral)
	}
	if s.Errors != 1 {
		t.Errorf("Expected 1 error, got %d", s.Errors)
	}

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "sentimeter_analyses_total" {
			found = true
		}
	}
	if !found {
		t.Error("Expected sentimeter_analyses_total to be registered")
	}
}

func TestServer(t *testing.T) {
	SampleLoads.Inc()

	srv, err := Listen("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	if err != nil {
		cancel()
		t.Fatalf("GET /metrics failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "sentimeter_sample_loads_total") {
		t.Error("Expected sample load counter in /metrics output")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Server did not shut down")
	}
}
