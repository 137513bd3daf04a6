package cmd

import (
	"github.com/spf13/cobra"
)

var clarityCmd = &cobra.Command{
	Use:   "clarity [file]",
	Short: "Analyze text clarity without modifying it",
	Long: `Compute a clarity score and diagnose passive voice, long sentences,
complex vocabulary, jargon, redundancy, and multi-clause sentences.

Examples:
  prosefix clarity paper.md
  prosefix clarity --format json paper.md`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runClarity,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(clarityCmd)
}

func runClarity(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	proc, err := buildProcessor()
	if err != nil {
		return err
	}

	report, err := proc.CheckClarityMetrics(text)
	if err != nil {
		return err
	}
	return buildReporter(GetUI()).ReportClarity(report)
}
