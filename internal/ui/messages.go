package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// samplesLoadedMsg completes a sample load started with BeginLoad
type samplesLoadedMsg struct {
	texts []string
}

// tickMsg advances the loading spinner
type tickMsg time.Time

// Spinner characters
var spinnerChars = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadSamplesCmd delivers texts after delay. The texts are copied so the
// source list is never shared with the view state.
func loadSamplesCmd(texts []string, delay time.Duration) tea.Cmd {
	texts = append([]string(nil), texts...)
	if delay <= 0 {
		return func() tea.Msg { return samplesLoadedMsg{texts: texts} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return samplesLoadedMsg{texts: texts}
	})
}
