package cmd

import (
	"github.com/spf13/cobra"
)

var sectionType string

var optimizeCmd = &cobra.Command{
	Use:   "optimize [file]",
	Short: "Optimize one section and show before/after metrics",
	Long: `Rewrite a single section. Introductions additionally get the
problem-statement and contribution checks; abstracts get the independence
and length checks.

Examples:
  prosefix optimize --section-type abstract abstract.txt
  prosefix optimize --section-type introduction intro.md`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runOptimize,
	SilenceUsage: true,
}

func init() {
	optimizeCmd.Flags().StringVar(&sectionType, "section-type", "section", "Section kind (introduction, abstract, or other)")
	RootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	proc, err := buildProcessor()
	if err != nil {
		return err
	}

	result, err := proc.OptimizeSection(text, sectionType)
	if err != nil {
		return err
	}
	return buildReporter(GetUI()).ReportOptimize(result)
}
