package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var expectSections string

var structureCmd = &cobra.Command{
	Use:   "structure [file]",
	Short: "Check a document against an expected section layout",
	Long: `Analyze which expected sections a document contains and whether the
introduction and abstract meet the writing conventions.

Examples:
  prosefix structure paper.md
  prosefix structure --expect "Abstract,Introduction,Methods,Results" paper.md`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runStructure,
	SilenceUsage: true,
}

func init() {
	structureCmd.Flags().StringVar(&expectSections, "expect", "", "Comma-separated section names to expect")
	RootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	proc, err := buildProcessor()
	if err != nil {
		return err
	}

	var expected []string
	if expectSections != "" {
		for _, name := range strings.Split(expectSections, ",") {
			if name = strings.TrimSpace(name); name != "" {
				expected = append(expected, name)
			}
		}
	}

	result, err := proc.AnalyzeStructure(text, expected)
	if err != nil {
		return err
	}
	return buildReporter(GetUI()).ReportStructure(result)
}
