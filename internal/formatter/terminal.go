package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"
	"github.com/yildizm/sentimeter/internal/emoji"
	"github.com/yildizm/sentimeter/internal/sentiment"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	if len(report.Items) == 1 {
		f.writeItem(&b, report.Items[0], true)
		return []byte(b.String()), nil
	}

	f.writeHeader(&b, "Sentiment Summary")
	f.writeSummary(&b, report)

	if len(report.Items) > 0 {
		b.WriteString(emoji.GetEmoji("message") + " Messages\n")
		for i, item := range report.Items {
			f.writeItem(&b, item, i == len(report.Items)-1)
		}
	}

	return []byte(b.String()), nil
}

// writeHeader writes a boxed title
func (f *terminalFormatter) writeHeader(b *strings.Builder, title string) {
	width := len(title)
	b.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString("║ " + title + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", width+2) + "╝\n\n")
}

// writeSummary writes per-category totals as a tree
func (f *terminalFormatter) writeSummary(b *strings.Builder, report *Report) {
	s := report.Summary
	b.WriteString(emoji.GetEmoji("stats") + " Statistics\n")

	items := []termfmt.TreeItem{
		{Label: "Messages", Value: fmt.Sprintf("%d", s.Total)},
		{Label: "Positive", Value: countWithRate(s.Positive, s.Total)},
		{Label: "Negative", Value: countWithRate(s.Negative, s.Total)},
		{Label: "Neutral", Value: countWithRate(s.Neutral, s.Total)},
		{Label: "Mean comparative", Value: formatComparative(s.MeanComparative), Last: true},
	}
	if report.Source != "" {
		items = append([]termfmt.TreeItem{{Label: "Source", Value: report.Source}}, items...)
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeItem writes one scored text with its breakdown as children
func (f *terminalFormatter) writeItem(b *strings.Builder, item sentiment.ScoredText, last bool) {
	r := item.Result
	if r == nil {
		return
	}

	children := []termfmt.TreeItem{
		{Label: "Score", Value: fmt.Sprintf("%d", r.Score)},
		{Label: "Comparative", Value: fmt.Sprintf("%s %s",
			termfmt.CreateConfidenceBar(comparativeStrength(r.Comparative), f.opts),
			formatComparative(r.Comparative))},
		{Label: "Positive words", Value: wordList(r.Positive)},
		{Label: "Negative words", Value: wordList(r.Negative)},
	}
	if r.Compound != nil {
		children = append(children, termfmt.TreeItem{Label: "VADER compound", Value: fmt.Sprintf("%.4f", *r.Compound)})
	}
	children[len(children)-1].Last = true

	tree := termfmt.TreeViewWithOptions([]termfmt.TreeItem{{
		Label:    fmt.Sprintf("%s %s", emoji.ForCategory(string(item.Category)), truncate(item.Text, 60)),
		Value:    string(item.Category),
		Children: children,
		Last:     last,
	}}, f.opts)
	b.WriteString(tree + "\n")
}
