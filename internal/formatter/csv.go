package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// csvHeader is the column order of CSV output
var csvHeader = []string{"id", "text", "score", "comparative", "category", "positive", "negative"}

// csvFormatter formats one row per scored text
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *Report) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range report.Items {
		r := item.Result
		if r == nil {
			continue
		}
		record := []string{
			r.ID,
			escapeCSVString(item.Text),
			strconv.Itoa(r.Score),
			strconv.FormatFloat(r.Comparative, 'f', 4, 64),
			string(item.Category),
			strings.Join(r.Positive, ";"),
			strings.Join(r.Negative, ";"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

// escapeCSVString flattens newlines so each text stays on one row
func escapeCSVString(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
