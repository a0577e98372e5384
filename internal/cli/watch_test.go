package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/yildizm/sentimeter/internal/emoji"
	"github.com/yildizm/sentimeter/internal/metrics"
	"github.com/yildizm/sentimeter/internal/sentiment"
)

func newTestFeedWatcher(t *testing.T, input *bytes.Buffer, format string) (*feedWatcher, *bytes.Buffer) {
	t.Helper()
	emoji.SetEmojiDisabled(true)
	t.Cleanup(func() { emoji.SetEmojiDisabled(false) })

	scorer, err := sentiment.Default()
	if err != nil {
		t.Fatalf("Default scorer failed: %v", err)
	}

	var out bytes.Buffer
	fw := newFeedWatcher(input, format, scorer, &out)
	fw.now = func() time.Time { return time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC) }
	return fw, &out
}

func TestFeedWatcherLines(t *testing.T) {
	var input bytes.Buffer
	fw, out := newTestFeedWatcher(t, &input, "")

	input.WriteString("what a lovely morning\n\nthis is terr")
	n, err := fw.processNewLines()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 scored message, got %d", n)
	}
	if fw.pending != "this is terr" {
		t.Errorf("Expected partial line held back, got %q", fw.pending)
	}

	input.WriteString("ible\n")
	n, err = fw.processNewLines()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n != 1 {
		t.Errorf("Expected the completed line to be scored, got %d", n)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 output lines, got %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "[12:30:00] [+] +3 positive") {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "negative") || !strings.HasSuffix(lines[1], "this is terrible") {
		t.Errorf("Unexpected second line %q", lines[1])
	}
}

func TestFeedWatcherJSON(t *testing.T) {
	var input bytes.Buffer
	fw, out := newTestFeedWatcher(t, &input, "json")

	input.WriteString(`{"timestamp":"2024-03-01T08:15:00Z","level":"INFO","message":"support was really helpful"}` + "\n")
	n, err := fw.processNewLines()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n != 1 {
		t.Fatalf("Expected 1 scored message, got %d", n)
	}
	if !strings.Contains(out.String(), "support was really helpful") {
		t.Errorf("Expected message text only, got %q", out.String())
	}
	if strings.Contains(out.String(), "INFO") {
		t.Errorf("Expected structured fields dropped, got %q", out.String())
	}
}

func TestFormatWatchLine(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	defer emoji.SetEmojiDisabled(false)

	ts := time.Date(2024, 1, 1, 9, 5, 7, 0, time.UTC)
	result := &sentiment.Result{Score: -2, Tokens: 3, Negative: []string{"bad"}}

	got := formatWatchLine(ts, "so  bad\nreally", result)
	expected := "[09:05:07] [-] -2 negative so bad really"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestPrintWatchSummary(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	defer emoji.SetEmojiDisabled(false)

	var out bytes.Buffer
	printWatchSummary(&out, metrics.Summary{Total: 3, Positive: 2, Negative: 1, MeanComparative: 0.5, Errors: 1})

	for _, want := range []string{"Scored 3 messages", "2 positive", "1 negative", "0 neutral", "+0.500", "1 errors"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected summary to contain %q, got %q", want, out.String())
		}
	}

	out.Reset()
	printWatchSummary(&out, metrics.Summary{})
	if strings.Contains(out.String(), "mean comparative") {
		t.Errorf("Expected no mean for an empty run, got %q", out.String())
	}
}

func TestValidateWatchFilePath(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "feed.txt", "")

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty", "  ", true},
		{"traversal", "../feed.txt", true},
		{"missing", dir + "/missing.txt", true},
		{"directory", dir, true},
		{"file", file, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWatchFilePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWatchRejectsUnknownFormat(t *testing.T) {
	file := writeFile(t, t.TempDir(), "feed.txt", "")

	_, err := executeCommand(t, "", "watch", "--format", "xml", file)
	if err == nil {
		t.Fatal("Expected error for unknown feed format")
	}
	if !strings.Contains(err.Error(), "unknown feed format") {
		t.Errorf("Expected unknown feed format error, got %v", err)
	}
}
