package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwhaley/espn-qbr/internal/logger"
	"github.com/cwhaley/espn-qbr/internal/qbr"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagYears      string
	flagWeeks      string
	flagSeasonType string
	flagStatType   string
	flagFormat     string
	flagOutput     string
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "espn-qbr",
		Short: "Load ESPN Total QBR data into one combined table",
		Long: `A CLI tool to load ESPN's Total QBR (quarterback rating) data.
Fetches weekly stats or season leaders for the requested years, weeks, and
season types, and combines every page into a single table. ESPN publishes
QBR data for the 2006-2020 seasons, weeks 1-17.`,
		RunE: runLoad,
	}

	// Define flags
	cmd.Flags().StringVar(&flagYears, "years", "", "Years, e.g. 2020 or 2019,2020 or 2006-2020 (required)")
	cmd.Flags().StringVar(&flagWeeks, "weeks", "", "Weeks, e.g. 1 or 1,2 or 1-17 (required for weekly stats)")
	cmd.Flags().StringVar(&flagSeasonType, "season-type", "regular", "Season type: regular, postseason, or all")
	cmd.Flags().StringVar(&flagStatType, "stat-type", "weekly", "Stat type: weekly or leaders")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json, csv, or markdown")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Write output to a file instead of stdout")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("years") //nolint:errcheck

	return cmd
}

// runLoad is the main command logic
func runLoad(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatCSV && format != FormatMarkdown {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json', 'csv', or 'markdown')", flagFormat)
	}

	years, err := ParseIntList(flagYears)
	if err != nil {
		return fmt.Errorf("parsing --years: %w", err)
	}

	statType := strings.ToLower(strings.TrimSpace(flagStatType))
	var weeks []int
	if flagWeeks != "" {
		weeks, err = ParseIntList(flagWeeks)
		if err != nil {
			return fmt.Errorf("parsing --weeks: %w", err)
		}
	} else if statType == qbr.StatTypeLeaders {
		// Leaders pages are addressed by year only; the week is unused
		weeks = []int{1}
	} else {
		return fmt.Errorf("--weeks is required for weekly stats")
	}

	log := logger.Discard()
	if flagVerbose {
		log = logger.New(logger.LevelDebug, os.Stderr)
	}

	loader := qbr.New(years, weeks,
		qbr.WithSeasonType(flagSeasonType),
		qbr.WithStatType(statType),
		qbr.WithLogger(log),
	)

	result, err := loader.Load()
	if err != nil {
		return err
	}

	// Diagnostics go to stderr so the data stream stays clean
	for _, diag := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, diag)
	}

	out := os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close() // nolint:errcheck
		out = f
	}

	if err := WriteOutput(out, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
