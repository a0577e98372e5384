package formatter

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// comparativeScale is the comparative magnitude drawn as a full bar.
// Lexicon valences top out at 5.
const comparativeScale = 5.0

// comparativeStrength maps a comparative score onto 0..1 for bar rendering
func comparativeStrength(comparative float64) float64 {
	strength := math.Abs(comparative) / comparativeScale
	if strength > 1 {
		return 1
	}
	return strength
}

func formatComparative(c float64) string {
	return fmt.Sprintf("%+.3f", c)
}

func countWithRate(count, total int) string {
	if total == 0 {
		return fmt.Sprintf("%d", count)
	}
	return fmt.Sprintf("%d (%.1f%%)", count, float64(count)/float64(total)*100)
}

func wordList(words []string) string {
	if len(words) == 0 {
		return "-"
	}
	return fmt.Sprintf("%d (%s)", len(words), strings.Join(words, ", "))
}

// truncate shortens s to at most max runes, flattening newlines
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
