package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// SummaryBox is a titled, bordered block of lines
type SummaryBox struct {
	Title   string
	Content []string
	Width   int

	TitleStyle lipgloss.Style
	BodyStyle  lipgloss.Style
	BoxStyle   lipgloss.Style
}

// NewSummaryBox creates a summary box with the given styles
func NewSummaryBox(title string, width int, titleStyle, bodyStyle, boxStyle lipgloss.Style) *SummaryBox {
	return &SummaryBox{
		Title:      title,
		Width:      width,
		TitleStyle: titleStyle,
		BodyStyle:  bodyStyle,
		BoxStyle:   boxStyle,
	}
}

// AddLine adds a line that is rendered as given
func (s *SummaryBox) AddLine(line string) {
	s.Content = append(s.Content, line)
}

// AddKeyValue adds an aligned key-value line in the body style
func (s *SummaryBox) AddKeyValue(key, value string) {
	s.Content = append(s.Content, s.BodyStyle.Render(fmt.Sprintf("%-15s", key+":"))+" "+value)
}

// Render renders the summary box
func (s *SummaryBox) Render() string {
	content := make([]string, 0, len(s.Content)+1)
	if s.Title != "" {
		content = append(content, s.TitleStyle.Render(s.Title))
	}
	content = append(content, s.Content...)

	joined := lipgloss.JoinVertical(lipgloss.Left, content...)

	box := s.BoxStyle
	if s.Width > 0 {
		box = box.Width(s.Width)
	}
	return box.Render(joined)
}
