package formatter

import (
	"fmt"
	"strings"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Sentiment Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	if report.Source != "" {
		fmt.Fprintf(&b, "Source: `%s`\n\n", report.Source)
	}

	f.writeSummaryTable(&b, report)

	if len(report.Items) > 0 {
		f.writeItemsTable(&b, report)
	}

	return []byte(b.String()), nil
}

// writeSummaryTable writes per-category totals
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, report *Report) {
	s := report.Summary
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Messages | %d |\n", s.Total)
	fmt.Fprintf(b, "| Positive | %s |\n", countWithRate(s.Positive, s.Total))
	fmt.Fprintf(b, "| Negative | %s |\n", countWithRate(s.Negative, s.Total))
	fmt.Fprintf(b, "| Neutral | %s |\n", countWithRate(s.Neutral, s.Total))
	fmt.Fprintf(b, "| Mean comparative | %s |\n\n", formatComparative(s.MeanComparative))
}

// writeItemsTable writes one row per scored text
func (f *markdownFormatter) writeItemsTable(b *strings.Builder, report *Report) {
	b.WriteString("## Messages\n\n")
	b.WriteString("| # | Text | Score | Comparative | Category | Positive | Negative |\n")
	b.WriteString("|---|------|-------|-------------|----------|----------|----------|\n")

	for i, item := range report.Items {
		r := item.Result
		if r == nil {
			continue
		}
		fmt.Fprintf(b, "| %d | %s | %d | %s | %s | %s | %s |\n",
			i+1,
			escapeMarkdownCell(truncate(item.Text, 80)),
			r.Score,
			formatComparative(r.Comparative),
			item.Category,
			escapeMarkdownCell(strings.Join(r.Positive, ", ")),
			escapeMarkdownCell(strings.Join(r.Negative, ", ")),
		)
	}
	b.WriteString("\n")
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
