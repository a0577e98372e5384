package sentiment

import (
	"sync"

	"github.com/jonreiter/govader"
)

var (
	vaderAnalyzer *govader.SentimentIntensityAnalyzer
	vaderOnce     sync.Once
)

func getVaderAnalyzer() *govader.SentimentIntensityAnalyzer {
	vaderOnce.Do(func() {
		vaderAnalyzer = govader.NewSentimentIntensityAnalyzer()
	})

	return vaderAnalyzer
}

// vaderCompound returns the VADER compound score in [-1, 1]
func vaderCompound(text string) float64 {
	compound := getVaderAnalyzer().PolarityScores(text).Compound

	switch {
	case compound < -1:
		return -1
	case compound > 1:
		return 1
	default:
		return compound
	}
}
