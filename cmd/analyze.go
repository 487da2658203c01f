package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/labrecords/internal/classify"
	"github.com/teemow/labrecords/internal/config"
	"github.com/teemow/labrecords/internal/gmail"
	"github.com/teemow/labrecords/internal/instrumentation"
	"github.com/teemow/labrecords/internal/logging"
	"github.com/teemow/labrecords/internal/ollama"
	"github.com/teemow/labrecords/internal/process"
	"github.com/teemow/labrecords/internal/report"
)

// Output format choices for the analyze command.
const (
	formatJSON   = "json"
	formatReport = "report"
	formatBoth   = "both"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		account    string
		configFile string
		daysBack   int
		maxEmails  int64
		confidence float64
		output     string
		format     string
		ids        []string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Retrieve recent Gmail messages and classify them as lab records",
		Long: `Retrieve emails from the look-back window, classify each one against the
Berkeley Lab record policy via the configured Ollama model, and write a JSON
results file and a text report.

With --ids, specific messages are analyzed instead of the recent window.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatReport && format != formatBoth {
				return fmt.Errorf("invalid format %q, must be one of json, report, both", format)
			}

			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("days-back") {
				cfg.DaysBack = daysBack
			}
			if cmd.Flags().Changed("max-emails") {
				cfg.MaxEmailsPerBatch = int(maxEmails)
			}
			if cmd.Flags().Changed("confidence") {
				cfg.MinConfidence = confidence
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runAnalyze(cmd.Context(), cfg, account, output, format, ids, verbose)
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	cmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML config file overriding settings and keyword tables")
	cmd.Flags().IntVar(&daysBack, "days-back", config.DefaultDaysBack, "Number of days back to analyze emails")
	cmd.Flags().Int64Var(&maxEmails, "max-emails", config.DefaultMaxEmailsPerBatch, "Maximum number of emails to retrieve")
	cmd.Flags().Float64Var(&confidence, "confidence", config.DefaultMinConfidence, "Minimum confidence score for lab records")
	cmd.Flags().StringVar(&output, "output", "", "Base name for output files (default: auto-generated timestamp)")
	cmd.Flags().StringVar(&format, "format", formatBoth, "Output format: json, report, or both")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "Analyze specific message IDs instead of the recent window")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runAnalyze(ctx context.Context, cfg config.Config, account, output, format string, ids []string, verbose bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewLogger(verbose)

	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize instrumentation: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Warn("instrumentation shutdown failed", logging.Err(err))
		}
	}()

	mailbox, err := gmail.NewClientForAccount(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create Gmail client for account %s: %w", account, err)
	}

	llm, err := ollama.NewClient(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.OllamaTimeout)
	if err != nil {
		return fmt.Errorf("failed to create Ollama client: %w", err)
	}

	analyzer := classify.NewAnalyzer(
		llm,
		classify.NewBuilder(cfg.MaxBodyLength),
		classify.NewParser(classify.NewFallback(cfg.Keywords)),
		logger,
		provider.Metrics(),
	)
	processor := process.NewProcessor(mailbox, analyzer, int64(cfg.MaxEmailsPerBatch), logger)

	var results []*classify.Result
	if len(ids) > 0 {
		results = processor.AnalyzeByIDs(ctx, ids)
	} else {
		results, err = processor.ProcessRecent(ctx, cfg.DaysBack)
		if err != nil {
			return err
		}
	}

	if len(results) == 0 {
		fmt.Println("No emails found or processed.")
		return nil
	}

	now := time.Now()
	if output == "" {
		output = report.DefaultBaseName(now)
	}

	if format == formatJSON || format == formatBoth {
		jsonFile := output + ".json"
		if err := report.SaveJSON(results, jsonFile); err != nil {
			return err
		}
		fmt.Printf("Results saved to: %s\n", jsonFile)
	}

	if format == formatReport || format == formatBoth {
		text := report.Render(results, cfg.MinConfidence, now)
		reportFile := output + "_report.txt"
		if err := report.SaveReport(text, reportFile); err != nil {
			return err
		}
		fmt.Printf("Report saved to: %s\n", reportFile)

		if verbose {
			fmt.Println()
			fmt.Println(text)
		}
	}

	printSummary(logger, results, cfg.MinConfidence)
	return nil
}

func printSummary(logger *slog.Logger, results []*classify.Result, minConfidence float64) {
	stats := report.Summarize(results, minConfidence)

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("- Total emails analyzed: %d\n", stats.TotalEmails)
	fmt.Printf("- Lab records identified: %d\n", stats.LabRecords)
	fmt.Printf("- Lab record rate: %.1f%%\n", stats.LabRecordRate)
	if stats.LabRecords > 0 {
		fmt.Printf("- Average confidence: %.2f\n", stats.AvgConfidence)
	}
	if stats.Errors > 0 {
		logger.Warn("some emails could not be analyzed", slog.Int("errors", stats.Errors))
	}
}
