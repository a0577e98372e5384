package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yildizm/sentimeter/internal/logger"
	"github.com/yildizm/sentimeter/internal/metrics"
	"github.com/yildizm/sentimeter/internal/samples"
	"github.com/yildizm/sentimeter/internal/view"
)

var (
	samplesNoDelay bool
	samplesFile    string
	samplesFormat  string
)

func newSamplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Load the sample messages and print their sentiment",
		Long: `Load the sample message list the way the analyzer screen does, including
the simulated fetch delay, and print every message with its score.

Examples:
  sentimeter samples
  sentimeter samples --no-delay -o csv
  sentimeter samples --file tweets.yaml`,
		Args: cobra.NoArgs,
		RunE: runSamples,
	}

	cmd.Flags().BoolVar(&samplesNoDelay, "no-delay", false, "skip the simulated fetch delay")
	cmd.Flags().StringVar(&samplesFile, "file", "", "sample file (YAML list or feed), overrides samples.file")
	cmd.Flags().StringVar(&samplesFormat, "format", "", "feed format of the sample file (lines, auto, json, logfmt, text)")

	return cmd
}

func runSamples(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig().Samples
	if cmd.Flag("file").Changed {
		cfg.File = samplesFile
	}
	if cmd.Flag("format").Changed {
		cfg.Format = samplesFormat
	}
	if samplesNoDelay {
		cfg.Delay = 0
	}

	source, err := samples.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to load samples: %w", err)
	}

	scorer, err := getScorer()
	if err != nil {
		return err
	}

	log.DebugWithFields("loading samples", []logger.Field{
		logger.Source(source.Origin),
		logger.Duration(source.Delay),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	state := view.New(scorer)
	state.LoadSamples(ctx, source.Texts, source.Delay)
	metrics.SampleLoads.Inc()

	scored, err := state.ScoredSamples()
	if err != nil {
		return fmt.Errorf("failed to score samples: %w", err)
	}

	output, err := renderReport(source.Origin, scored)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(output)
	return err
}
