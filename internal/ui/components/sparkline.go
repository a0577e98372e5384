// Package components holds small render-only building blocks for the
// analyzer screen.
package components

import (
	"math"
	"strings"
)

// Sparkline characters (from lowest to highest)
var sparkChars = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Sparkline is a compact one-line chart of the most recent values
type Sparkline struct {
	Values []float64
	Width  int
	Min    float64
	Max    float64
}

// NewSparkline creates a sparkline scaled to the range of values
func NewSparkline(values []float64, width int) *Sparkline {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)

	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	return &Sparkline{
		Values: values,
		Width:  width,
		Min:    minVal,
		Max:    maxVal,
	}
}

// NewSparklineRange creates a sparkline with fixed bounds. Values outside
// the bounds are clamped.
func NewSparklineRange(values []float64, width int, minVal, maxVal float64) *Sparkline {
	return &Sparkline{
		Values: values,
		Width:  width,
		Min:    minVal,
		Max:    maxVal,
	}
}

// Render renders the last Width values, oldest first
func (s *Sparkline) Render() string {
	if len(s.Values) == 0 || s.Width <= 0 {
		return ""
	}

	values := s.Values
	if len(values) > s.Width {
		values = values[len(values)-s.Width:]
	}

	var result strings.Builder
	for _, value := range values {
		result.WriteString(sparkChars[s.level(value)])
	}
	return result.String()
}

// level maps value to a character index. A flat series sits in the middle.
func (s *Sparkline) level(value float64) int {
	if !(s.Max > s.Min) {
		return len(sparkChars) / 2
	}

	normalized := (value - s.Min) / (s.Max - s.Min)
	switch {
	case normalized < 0:
		normalized = 0
	case normalized > 1:
		normalized = 1
	}

	return int(math.Round(normalized * float64(len(sparkChars)-1)))
}
