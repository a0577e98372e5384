package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yildizm/sentimeter/internal/config"
	"github.com/yildizm/sentimeter/internal/emoji"
	"github.com/yildizm/sentimeter/internal/logger"
	"github.com/yildizm/sentimeter/internal/metrics"
	"github.com/yildizm/sentimeter/internal/samples"
	"github.com/yildizm/sentimeter/internal/sentiment"
	"github.com/yildizm/sentimeter/internal/ui"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string
)

var (
	globalConfig *config.Config
	globalScorer *metrics.InstrumentedScorer
	log          = logger.NewWithCallback("cli", isVerbose)
)

// tuiLogFile receives log lines while the TUI owns the terminal
const tuiLogFile = "sentimeter-debug.log"

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sentimeter",
		Short: "Lexicon-based sentiment analyzer",
		Long: `Sentimeter scores text against a word valence lexicon and shows whether
it reads positive, negative or neutral.

Run it without a subcommand for the interactive analyzer, or use the
subcommands to score text from arguments, stdin or a growing feed file.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupGlobals,
		RunE:              runInteractive,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format (text, json, markdown, csv)")

	// Add subcommands
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newSamplesCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// setupGlobals loads the configuration, applies the global flags over it and
// builds the shared scorer
func setupGlobals(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	// Flags win over the file and the environment
	if verbose {
		cfg.Output.Verbose = true
	}
	verbose = cfg.Output.Verbose
	if noEmoji {
		cfg.Output.NoEmoji = true
	}
	// Auto-disable emojis on Windows if not explicitly set
	if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
		cfg.Output.NoEmoji = true
	}
	noEmoji = cfg.Output.NoEmoji
	if noColor {
		cfg.Output.ColorMode = "never"
	}
	if outputFmt == "" {
		outputFmt = cfg.Output.DefaultFormat
	}

	emoji.SetEmojiDisabled(noEmoji)
	ui.SetColorDisabled(cfg.Output.ColorMode == "never")

	globalConfig = cfg
	globalScorer = nil
	return nil
}

// GetGlobalConfig returns the loaded configuration, or the defaults when the
// root pre-run has not happened
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// getScorer builds the configured scorer on first use, wrapped with metrics
func getScorer() (*metrics.InstrumentedScorer, error) {
	if globalScorer != nil {
		return globalScorer, nil
	}

	cfg := GetGlobalConfig()
	opts := sentiment.Options{Vader: cfg.Scoring.Vader}
	if cfg.Scoring.LexiconFile != "" {
		extra, err := sentiment.LoadLexiconFile(cfg.Scoring.LexiconFile)
		if err != nil {
			return nil, err
		}
		opts.Extra = extra
		log.DebugWithFields("loaded lexicon overrides", []logger.Field{
			logger.Source(cfg.Scoring.LexiconFile),
			logger.Count(len(extra)),
		})
	}

	var scorer sentiment.Scorer
	if len(opts.Extra) == 0 && !opts.Vader {
		shared, err := sentiment.Default()
		if err != nil {
			return nil, err
		}
		scorer = shared
	} else {
		custom, err := sentiment.NewLexiconScorer(opts)
		if err != nil {
			return nil, err
		}
		scorer = custom
	}

	globalScorer = metrics.Instrument(scorer, metrics.NewTally())
	return globalScorer, nil
}

// runInteractive launches the analyzer TUI
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	scorer, err := getScorer()
	if err != nil {
		return err
	}
	source, err := samples.FromConfig(cfg.Samples)
	if err != nil {
		return fmt.Errorf("failed to load samples: %w", err)
	}

	// Log lines would tear the alternate screen, so they go to a file in
	// verbose mode and nowhere otherwise
	uiLog := log.WithComponent("ui")
	if isVerbose() {
		f, err := tea.LogToFile(tuiLogFile, "sentimeter")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer func() { _ = f.Close() }()
		uiLog.SetOutput(f)
	} else {
		uiLog.SetOutput(io.Discard)
	}

	return ui.Run(ui.Options{
		Scorer:      scorer,
		Source:      source,
		Placeholder: cfg.UI.Placeholder,
		InputHeight: cfg.UI.InputHeight,
		Logger:      uiLog,
	}, cfg.UI.Theme)
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sentimeter %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	if outputFmt == "" {
		return GetGlobalConfig().Output.DefaultFormat
	}
	return outputFmt
}

// useColor reports whether formatted output may carry ANSI colour. In auto
// mode that needs a terminal on stdout.
func useColor() bool {
	switch GetGlobalConfig().Output.ColorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return !ui.IsColorDisabled() && isatty.IsTerminal(os.Stdout.Fd())
	}
}
