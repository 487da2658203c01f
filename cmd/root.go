package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the labrecords application
var rootCmd = &cobra.Command{
	Use:   "labrecords",
	Short: "Classifies Gmail messages as Berkeley Lab records",
	Long: `labrecords retrieves recent emails from a Gmail mailbox and classifies each
one against the Berkeley Lab record policy using a local Ollama model, with a
deterministic keyword fallback when the model output cannot be parsed.

The run produces a JSON results file and a human-readable analysis report.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "labrecords version %s\n" .Version}}`)

	// If no subcommand is provided, run the analyze command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "analyze")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
