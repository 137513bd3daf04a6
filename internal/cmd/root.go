package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"prosefix/internal/reporter"
	"prosefix/internal/ui"
)

var (
	// Global flags
	verbose bool
	format  string
)

var globalUI *ui.UI

// RootCmd is the top-level prosefix command.
var RootCmd = &cobra.Command{
	Use:   "prosefix",
	Short: "A deterministic editor for academic prose",
	Long: `prosefix rewrites prose to a fixed set of academic-writing
conventions: active voice, bounded sentence length, controlled vocabulary,
and required document structure.

Every change is recorded with the rule that made it, the text before and
after, and the reason, so edits stay auditable. Readability and clarity
metrics are computed for every run.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	},
}

// GetUI returns the global UI, initializing it if commands run without the
// root's PersistentPreRun (as in tests).
func GetUI() *ui.UI {
	if globalUI == nil {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	}
	return globalUI
}

// buildReporter picks the reporter matching the active output mode.
func buildReporter(u *ui.UI) reporter.Reporter {
	if u.IsJSON() {
		return reporter.NewJSONReporter(u.Writer)
	}
	return reporter.NewTerminalReporter(u.Writer, u)
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
}
