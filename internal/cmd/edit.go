package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prosefix/internal/config"
	"prosefix/internal/processor"
)

var (
	editType   string
	editOutput string
	editWrite  bool
	outputDir  string
	noSave     bool
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Edit a document to academic writing conventions",
	Long: `Rewrite a document for clarity, style, and structure.

Reads the named file, or stdin when the argument is "-" or absent.
A Markdown tracking report is persisted under the output directory
unless --no-save is given.

Examples:
  prosefix edit paper.md
  prosefix edit --type full_paper --output tracked_changes paper.md
  cat draft.txt | prosefix edit --type paragraph -`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runEdit,
	SilenceUsage: true,
}

func init() {
	editCmd.Flags().StringVarP(&editType, "type", "t", "", "Document type (full_paper, section, paragraph, abstract)")
	editCmd.Flags().StringVarP(&editOutput, "output", "o", "both", "Output format (tracked_changes, clean, both)")
	editCmd.Flags().BoolVarP(&editWrite, "write", "w", false, "Write the clean text back to the input file")
	editCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for persisted tracking reports")
	editCmd.Flags().BoolVar(&noSave, "no-save", false, "Do not persist the tracking report")
	RootCmd.AddCommand(editCmd)
}

func buildProcessor() (*processor.Processor, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if noSave {
		cfg.SaveReports = false
	}
	return processor.New(cfg), nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	proc, err := buildProcessor()
	if err != nil {
		return err
	}

	u := GetUI()
	if verbose {
		fmt.Fprintf(u.ErrWriter, "Editing %d bytes as %q\n", len(text), editType)
	}

	result, err := proc.EditDocument(text, editType, editOutput)
	if err != nil {
		return err
	}

	if editWrite && len(args) > 0 && args[0] != "-" {
		if err := os.WriteFile(args[0], []byte(result.EditedText), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Fprintf(u.Writer, "%s Wrote %s\n", u.Styles.IconSuccess, args[0])
		return nil
	}

	return buildReporter(u).ReportEdit(result)
}
