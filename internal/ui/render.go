package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/sentimeter/internal/emoji"
	"github.com/yildizm/sentimeter/internal/ui/components"
	"github.com/yildizm/sentimeter/internal/sentiment"
)

// View renders the analyzer screen
func (m *AnalyzerModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.styles.Title.Render(emoji.GetEmoji("message") + " Sentiment Analyzer"),
		m.renderInput(),
		m.renderHelp(),
		m.renderResult(),
	}
	if m.err != nil {
		sections = append(sections, m.styles.Error.Render(emoji.GetEmoji("error")+" "+m.err.Error()))
	}
	sections = append(sections, m.renderSamples())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *AnalyzerModel) panelStyle(area focusArea) lipgloss.Style {
	style := m.styles.Panel
	if m.focus == area {
		style = m.styles.Focused
	}
	if w := m.width - 2; w > 10 {
		style = style.Width(w)
	}
	return style
}

func (m *AnalyzerModel) renderInput() string {
	return m.panelStyle(focusInput).Render(m.input.View())
}

func (m *AnalyzerModel) renderHelp() string {
	loadHelp := "ctrl+l load samples"
	if m.state.IsLoading() {
		loadHelp = "loading..."
	}
	return m.styles.Muted.Render(strings.Join([]string{
		"ctrl+s analyze",
		loadHelp,
		"tab switch focus",
		"↑/↓ scroll",
		"esc quit",
	}, " • "))
}

// renderResult shows the current analysis or a prompt when there is none
func (m *AnalyzerModel) renderResult() string {
	result := m.state.Current()
	if result == nil {
		return m.styles.Muted.Render("Type a message and press ctrl+s to analyze it.")
	}

	category := result.Category()
	scoreStyle := m.styles.ForCategory(category)

	box := components.NewSummaryBox("", 0, m.styles.Title, m.styles.Muted, m.styles.Panel)
	box.AddLine(fmt.Sprintf("%s Score: %s (%s)",
		emoji.ForCategory(string(category)),
		scoreStyle.Render(fmt.Sprintf("%d", result.Score)),
		category))
	box.AddKeyValue("Comparative", fmt.Sprintf("%.3f", result.Comparative))
	box.AddKeyValue("Positive words", fmt.Sprintf("%d %s", len(result.Positive), wordHint(result.Positive)))
	box.AddKeyValue("Negative words", fmt.Sprintf("%d %s", len(result.Negative), wordHint(result.Negative)))
	if result.Compound != nil {
		box.AddKeyValue("VADER compound", fmt.Sprintf("%.4f", *result.Compound))
	}
	if len(m.history) > 1 {
		trend := components.NewSparklineRange(m.history, historySize, -trendBound, trendBound)
		box.AddKeyValue("Trend", trend.Render())
	}

	return box.Render()
}

func wordHint(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return "(" + strings.Join(words, ", ") + ")"
}

// renderSamples renders the sample list, the loading line or the empty hint
func (m *AnalyzerModel) renderSamples() string {
	header := m.styles.Title.Render("Sample messages")

	var body string
	switch {
	case m.state.IsLoading():
		body = m.styles.Progress.Render(spinnerChars[m.spinnerFrame] + " Loading samples...")
	case len(m.scored) == 0:
		body = m.styles.Muted.Render(emptyListHint)
	default:
		body = m.renderSampleRows()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.panelStyle(focusList).Render(body))
}

// renderSampleRows renders the visible window of the list around the selection
func (m *AnalyzerModel) renderSampleRows() string {
	start, end := visibleRange(len(m.scored), m.selected, m.listCapacity())

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := m.scored[i]
		row := fmt.Sprintf("%s %s  %s", sampleIcon(item.Category), item.Text,
			m.styles.ForCategory(item.Category).Render(fmt.Sprintf("Score: %d", item.Result.Score)))

		if i == m.selected && m.focus == focusList {
			rows = append(rows, m.styles.ListSelected.Render(row))
		} else {
			rows = append(rows, m.styles.ListItem.Render(row))
		}
	}
	return strings.Join(rows, "\n")
}

// listCapacity is the number of list rows that fit below the fixed panels
func (m *AnalyzerModel) listCapacity() int {
	if m.height <= 0 {
		return len(m.scored)
	}
	used := m.input.Height() + 16
	if capacity := m.height - used; capacity > 1 {
		return capacity
	}
	return 1
}

// visibleRange returns the [start, end) window of size capacity that keeps
// selected visible
func visibleRange(total, selected, capacity int) (int, int) {
	if capacity <= 0 || total <= capacity {
		return 0, total
	}
	start := selected - capacity/2
	if start < 0 {
		start = 0
	}
	if start+capacity > total {
		start = total - capacity
	}
	return start, start + capacity
}

// sampleIcon is the thumbs icon of a category; neutral rows get none
func sampleIcon(category sentiment.Category) string {
	switch category {
	case sentiment.CategoryPositive:
		return emoji.GetEmoji("up")
	case sentiment.CategoryNegative:
		return emoji.GetEmoji("down")
	default:
		return "  "
	}
}
