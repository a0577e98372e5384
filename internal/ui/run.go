package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Run starts the analyzer TUI and blocks until the user quits
func Run(opts Options, theme string) error {
	if !SetThemeByName(theme) {
		SetTheme(&DefaultTheme)
	}
	if IsColorDisabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	model, err := NewAnalyzerModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
