// Package feed turns message streams into texts for scoring. Structured
// formats go through go-logparser and only the message field is kept.
package feed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yildizm/go-logparser"
)

// Supported feed formats
const (
	FormatLines  = "lines"
	FormatAuto   = "auto"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
	FormatText   = "text"
)

// ErrUnknownFormat is returned for a format name that is not supported
var ErrUnknownFormat = errors.New("unknown feed format")

// maxLineLength bounds a single feed line
const maxLineLength = 1024 * 1024

// Message is a single text taken from a feed
type Message struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Line      int       `json:"line"`
}

// Formats returns the supported format names
func Formats() []string {
	return []string{FormatLines, FormatAuto, FormatJSON, FormatLogfmt, FormatText}
}

// ValidateFormat checks a format name. Empty means lines.
func ValidateFormat(format string) error {
	switch format {
	case "", FormatLines, FormatAuto, FormatJSON, FormatLogfmt, FormatText:
		return nil
	default:
		return fmt.Errorf("%w: %s (must be one of: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// Parse reads all messages from r
func Parse(r io.Reader, format string) ([]Message, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines, format)
}

// ParseLines converts raw, non-blank lines into messages
func ParseLines(lines []string, format string) ([]Message, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	if format == "" || format == FormatLines {
		messages := make([]Message, 0, len(lines))
		for i, line := range lines {
			messages = append(messages, Message{Text: line, Line: i + 1})
		}
		return messages, nil
	}

	parser := NewParser(format)
	entries, err := parser.ParseString(strings.Join(lines, "\n"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s feed: %w", format, err)
	}

	messages := make([]Message, 0, len(entries))
	for i, entry := range entries {
		text := strings.TrimSpace(entry.Message)
		if text == "" {
			continue
		}
		messages = append(messages, Message{
			Text:      text,
			Timestamp: entry.Timestamp,
			Line:      i + 1,
		})
	}
	return messages, nil
}

// NewParser returns the go-logparser parser for a structured format.
// Unknown formats fall back to auto-detection.
func NewParser(format string) logparser.Parser {
	switch format {
	case FormatJSON:
		return logparser.NewWithFormat(logparser.FormatJSON)
	case FormatLogfmt:
		return logparser.NewWithFormat(logparser.FormatLogfmt)
	case FormatText:
		return logparser.NewWithFormat(logparser.FormatText)
	default:
		return logparser.New()
	}
}

// Texts extracts the message texts
func Texts(messages []Message) []string {
	texts := make([]string, 0, len(messages))
	for _, m := range messages {
		texts = append(texts, m.Text)
	}
	return texts
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineLength)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("scanner error: %w", err)
	}
	return lines, nil
}
