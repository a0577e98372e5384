package ui

import (
	"github.com/yildizm/sentimeter/internal/logger"
	"github.com/yildizm/sentimeter/internal/samples"
	"github.com/yildizm/sentimeter/internal/sentiment"
)

// focusArea is the panel receiving key input
type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Key bindings
const (
	keyAnalyze    = "ctrl+s"
	keyAnalyzeAlt = "ctrl+enter"
	keyLoad       = "ctrl+l"
	keyFocus      = "tab"
	keyUp         = "up"
	keyDown       = "down"
	keyQuit       = "esc"
	keyQuitAlt    = "ctrl+c"
)

// emptyListHint is shown while no samples are loaded
const emptyListHint = "Press ctrl+l to load sample messages and their sentiment analysis"

// Options configures an AnalyzerModel
type Options struct {
	Scorer      sentiment.Scorer // defaults to sentiment.Default()
	Source      *samples.Source
	Placeholder string
	InputHeight int
	Logger      *logger.Logger
}
