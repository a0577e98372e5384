package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yildizm/sentimeter/internal/formatter"
	"github.com/yildizm/sentimeter/internal/logger"
	"github.com/yildizm/sentimeter/internal/sentiment"
	"github.com/yildizm/sentimeter/internal/view"
)

// maxInputSize bounds text read from stdin
const maxInputSize = 1024 * 1024

var analyzeOutputFile string

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Score text from arguments or stdin",
		Long: `Score a message and print its sentiment.

Arguments are joined with spaces. With no arguments the whole of stdin is
read as one message. Blank input prints nothing.

Examples:
  sentimeter analyze "I absolutely love this!"
  echo "This is the worst" | sentimeter analyze
  sentimeter analyze -o json great stuff`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVar(&analyzeOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readAnalyzeInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	scorer, err := getScorer()
	if err != nil {
		return err
	}

	state := view.New(scorer)
	state.SetInputText(text)
	result, err := state.Analyze()
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if result == nil {
		log.Debug("blank input, nothing to analyze")
		return nil
	}

	log.DebugWithFields("analyzed input", []logger.Field{
		logger.Score(result.Score),
		logger.Category(string(result.Category())),
	})

	items := []sentiment.ScoredText{sentiment.NewScoredText(strings.TrimSpace(text), result)}
	output, err := renderReport(inputSource(args), items)
	if err != nil {
		return err
	}
	return handleOutputDestination(cmd.OutOrStdout(), output, analyzeOutputFile)
}

// readAnalyzeInput joins args, or reads stdin when there are none
func readAnalyzeInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	log.Debug("Reading from stdin...")
	data, err := io.ReadAll(io.LimitReader(bufio.NewReader(stdin), maxInputSize))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func inputSource(args []string) string {
	if len(args) == 0 {
		return "stdin"
	}
	return "args"
}

// renderReport formats items with the selected output format
func renderReport(source string, items []sentiment.ScoredText) ([]byte, error) {
	f, err := formatter.New(getOutputFormat(), useColor())
	if err != nil {
		return nil, err
	}
	output, err := f.Format(formatter.NewReport(source, items))
	if err != nil {
		return nil, fmt.Errorf("failed to format output: %w", err)
	}
	return output, nil
}

// handleOutputDestination writes output to file or to out
func handleOutputDestination(out io.Writer, output []byte, outputFile string) error {
	if outputFile == "" {
		_, err := out.Write(output)
		return err
	}

	if err := validateOutputFilePath(outputFile); err != nil {
		return fmt.Errorf("invalid output file path: %w", err)
	}
	if err := writeOutputBytesToFile(output, outputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}

	log.InfoWithFields("output saved", []logger.Field{logger.Source(outputFile)})
	return nil
}

func validateOutputFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}
	if strings.Contains(filepath.Clean(path), "..") {
		return fmt.Errorf("path traversal not allowed")
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.WarnWithFields("failed to close output file", []logger.Field{logger.Error(closeErr)})
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// Sync to ensure data is written
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
