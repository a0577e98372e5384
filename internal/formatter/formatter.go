package formatter

import (
	"fmt"
	"time"

	"github.com/yildizm/sentimeter/internal/sentiment"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// Report is a set of scored texts plus totals
type Report struct {
	Source      string                 `json:"source,omitempty"`
	GeneratedAt time.Time              `json:"generated_at"`
	Summary     Summary                `json:"summary"`
	Items       []sentiment.ScoredText `json:"items"`
}

// Summary counts items per category
type Summary struct {
	Total           int     `json:"total"`
	Positive        int     `json:"positive"`
	Negative        int     `json:"negative"`
	Neutral         int     `json:"neutral"`
	MeanComparative float64 `json:"mean_comparative"`
}

// NewReport builds a report and its summary from scored items
func NewReport(source string, items []sentiment.ScoredText) *Report {
	report := &Report{
		Source:      source,
		GeneratedAt: time.Now(),
		Items:       items,
	}

	var comparativeSum float64
	for _, item := range items {
		switch item.Category {
		case sentiment.CategoryPositive:
			report.Summary.Positive++
		case sentiment.CategoryNegative:
			report.Summary.Negative++
		default:
			report.Summary.Neutral++
		}
		if item.Result != nil {
			comparativeSum += item.Result.Comparative
		}
	}
	report.Summary.Total = len(items)
	if len(items) > 0 {
		report.Summary.MeanComparative = comparativeSum / float64(len(items))
	}
	return report
}

// New returns the formatter for a format name
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "json":
		return NewJSON(), nil
	case "markdown":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	case "text", "":
		return NewTerminal(color), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: text, json, markdown, csv)", format)
	}
}
