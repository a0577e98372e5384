package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yildizm/sentimeter/internal/emoji"
	"github.com/yildizm/sentimeter/internal/feed"
	"github.com/yildizm/sentimeter/internal/logger"
	"github.com/yildizm/sentimeter/internal/metrics"
	"github.com/yildizm/sentimeter/internal/sentiment"
)

var (
	watchFormat      string
	watchMetricsAddr string
	watchFromStart   bool
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Score messages appended to a feed file",
		Long: `Monitor a feed file for changes and score new messages in real-time.

Uses file system notifications to detect changes and prints one scored line
per new message. Structured feeds (json, logfmt) keep only the message field.
Press Ctrl+C to stop watching.

Examples:
  sentimeter watch tweets.txt
  sentimeter watch --format json --metrics-addr :9090 events.log`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().StringVarP(&watchFormat, "format", "f", "", "feed format (lines, auto, json, logfmt, text)")
	cmd.Flags().StringVar(&watchMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().BoolVar(&watchFromStart, "from-start", false, "score the existing content before following")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig().Watch
	format := cfg.Format
	if cmd.Flag("format").Changed {
		format = watchFormat
	}
	if err := feed.ValidateFormat(format); err != nil {
		return err
	}
	metricsAddr := cfg.MetricsAddr
	if cmd.Flag("metrics-addr").Changed {
		metricsAddr = watchMetricsAddr
	}

	scorer, err := getScorer()
	if err != nil {
		return err
	}

	watcher, file, cleanup, err := setupFileWatcher(args[0], watchFromStart)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if metricsAddr != "" {
		srv, err := metrics.Listen(metricsAddr)
		if err != nil {
			return err
		}
		log.InfoWithFields("serving metrics", []logger.Field{logger.F("addr", srv.Addr())})
		go func() {
			if err := srv.Serve(ctx); err != nil {
				log.WarnWithFields("metrics server stopped", []logger.Field{logger.Error(err)})
			}
		}()
	}

	fw := newFeedWatcher(file, format, scorer, cmd.OutOrStdout())
	if watchFromStart {
		if _, err := fw.processNewLines(); err != nil {
			log.WarnWithFields("failed to score existing content", []logger.Field{logger.Error(err)})
		}
	}

	err = runWatchLoop(ctx, watcher, fw)
	printWatchSummary(cmd.ErrOrStderr(), scorer.Tally().Summary())
	return err
}

// feedWatcher scores the lines appended to a feed file. A trailing line
// without a newline is held back until it is completed.
type feedWatcher struct {
	reader  *bufio.Reader
	pending string
	format  string
	scorer  sentiment.Scorer
	out     io.Writer
	now     func() time.Time
}

func newFeedWatcher(r io.Reader, format string, scorer sentiment.Scorer, out io.Writer) *feedWatcher {
	return &feedWatcher{
		reader: bufio.NewReader(r),
		format: format,
		scorer: scorer,
		out:    out,
		now:    time.Now,
	}
}

// readNewLines returns the complete, non-blank lines available so far
func (w *feedWatcher) readNewLines() ([]string, error) {
	var lines []string
	for {
		chunk, err := w.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				w.pending += chunk
				return lines, nil
			}
			return lines, fmt.Errorf("read error: %w", err)
		}

		line := strings.TrimSpace(w.pending + chunk)
		w.pending = ""
		if line != "" {
			lines = append(lines, line)
		}
	}
}

// processNewLines scores every new message and prints one line per message.
// It returns the number of messages scored.
func (w *feedWatcher) processNewLines() (int, error) {
	lines, err := w.readNewLines()
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, nil
	}

	messages, err := feed.ParseLines(lines, w.format)
	if err != nil {
		log.WarnWithFields("failed to parse lines", []logger.Field{logger.Error(err), logger.Count(len(lines))})
		return 0, nil
	}
	metrics.FeedMessages.WithLabelValues(formatLabel(w.format)).Add(float64(len(messages)))

	scored := 0
	for _, msg := range messages {
		result, err := w.scorer.Score(msg.Text)
		if err != nil {
			log.WarnWithFields("failed to score message", []logger.Field{logger.Error(err), logger.F("line", msg.Line)})
			continue
		}
		if err := result.Validate(); err != nil {
			log.WarnWithFields("discarding invalid result", []logger.Field{logger.Error(err)})
			continue
		}

		ts := msg.Timestamp
		if ts.IsZero() {
			ts = w.now()
		}
		if _, err := fmt.Fprintln(w.out, formatWatchLine(ts, msg.Text, result)); err != nil {
			return scored, err
		}
		scored++
	}

	log.DebugWithFields("scored feed batch", []logger.Field{logger.Count(scored)})
	return scored, nil
}

// formatWatchLine renders a scored message as a single line
func formatWatchLine(ts time.Time, text string, result *sentiment.Result) string {
	category := result.Category()
	return fmt.Sprintf("[%s] %s %+d %-8s %s",
		ts.Format("15:04:05"),
		emoji.ForCategory(string(category)),
		result.Score,
		category,
		strings.Join(strings.Fields(text), " "))
}

func formatLabel(format string) string {
	if format == "" {
		return feed.FormatLines
	}
	return format
}

func printWatchSummary(out io.Writer, s metrics.Summary) {
	fmt.Fprintf(out, "%s Scored %d messages: %d positive, %d negative, %d neutral",
		emoji.GetEmoji("stats"), s.Total, s.Positive, s.Negative, s.Neutral)
	if s.Total > 0 {
		fmt.Fprintf(out, " (mean comparative %+.3f)", s.MeanComparative)
	}
	if s.Errors > 0 {
		fmt.Fprintf(out, ", %d errors", s.Errors)
	}
	fmt.Fprintln(out)
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil {
		log.WarnWithFields("failed to close watcher", []logger.Field{logger.Error(err)})
	}
}

// cleanupFile safely closes file with error logging
func cleanupFile(file *os.File) {
	if err := file.Close(); err != nil {
		log.WarnWithFields("failed to close file", []logger.Field{logger.Error(err)})
	}
}

// createWatcher creates and configures a new file system watcher
func createWatcher(filename string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filename); err != nil {
		cleanupWatcher(watcher)
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	return watcher, nil
}

// openWatchFile opens the file, positioned at the end unless fromStart
func openWatchFile(filename string, fromStart bool) (*os.File, error) {
	// #nosec G304 - path is validated by caller
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	if fromStart {
		return file, nil
	}
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		cleanupFile(file)
		return nil, fmt.Errorf("failed to seek to end of file: %w", err)
	}

	return file, nil
}

// setupFileWatcher creates and configures file watcher
func setupFileWatcher(filename string, fromStart bool) (*fsnotify.Watcher, *os.File, func(), error) {
	if err := validateWatchFilePath(filename); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid file path: %w", err)
	}
	filename = filepath.Clean(filename)

	log.InfoWithFields("watching file", []logger.Field{logger.Source(filename)})
	log.Info("Press Ctrl+C to stop...")

	watcher, err := createWatcher(filename)
	if err != nil {
		return nil, nil, nil, err
	}

	file, err := openWatchFile(filename, fromStart)
	if err != nil {
		cleanupWatcher(watcher)
		return nil, nil, nil, err
	}

	cleanup := func() {
		cleanupWatcher(watcher)
		cleanupFile(file)
	}

	return watcher, file, cleanup, nil
}

// runWatchLoop runs the main watch loop with signal handling
func runWatchLoop(ctx context.Context, watcher *fsnotify.Watcher, fw *feedWatcher) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			log.Info("Received interrupt signal, stopping...")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if err := handleWatchEvent(event, fw); err != nil {
				log.WarnWithFields("error handling event", []logger.Field{logger.Error(err)})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.WarnWithFields("watcher error", []logger.Field{logger.Error(err)})
		}
	}
}

// handleWatchEvent processes file system events
func handleWatchEvent(event fsnotify.Event, fw *feedWatcher) error {
	// Only process write events
	if !event.Has(fsnotify.Write) {
		return nil
	}
	if _, err := fw.processNewLines(); err != nil {
		return fmt.Errorf("error processing new lines: %w", err)
	}
	return nil
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
