package reporter

import (
	"fmt"
	"io"

	"prosefix/internal/metrics"
	"prosefix/internal/processor"
	"prosefix/internal/ui"
)

// TerminalReporter outputs human-readable results with styling.
type TerminalReporter struct {
	w  io.Writer
	ui *ui.UI
}

// NewTerminalReporter creates a terminal reporter writing to w.
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, ui: u}
}

func (r *TerminalReporter) severityStyle(s metrics.Severity) string {
	st := r.ui.Styles
	switch s {
	case metrics.SeverityHigh:
		return st.High.Render(string(s))
	case metrics.SeverityMedium:
		return st.Medium.Render(string(s))
	default:
		return st.Low.Render(string(s))
	}
}

func (r *TerminalReporter) ReportEdit(result *processor.EditResult) error {
	st := r.ui.Styles

	fmt.Fprintln(r.w, st.Header.Render("Edited document"))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, result.EditedText)
	fmt.Fprintln(r.w)

	fmt.Fprintln(r.w, st.Rule.Render("────────────────────────────────────────"))
	fmt.Fprintf(r.w, "Clarity score: %s\n", st.Score.Render(fmt.Sprintf("%d/100", result.Metrics.ClarityScore)))
	fmt.Fprintf(r.w, "Readability gain: %+.1f\n", result.Metrics.ReadabilityGain)
	fmt.Fprintf(r.w, "Edits: %d\n", len(result.Changes))

	for _, c := range result.Changes {
		fmt.Fprintf(r.w, "  %s %s %s\n",
			st.IconChange, c.Rule, st.Rule.Render("["+string(c.Category)+"]"))
	}

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, st.Subheader.Render("Suggestions"))
		for _, s := range result.Suggestions {
			fmt.Fprintf(r.w, "  - %s\n", s)
		}
	}

	if result.ReportPath != "" {
		fmt.Fprintln(r.w)
		fmt.Fprintf(r.w, "%s Tracking report: %s\n", st.IconSuccess, result.ReportPath)
	}
	return nil
}

func (r *TerminalReporter) ReportStructure(result *processor.StructureResult) error {
	st := r.ui.Styles

	for _, check := range result.Sections {
		icon := st.Success.Render(st.IconSuccess)
		if !check.Present || len(check.Issues) > 0 {
			icon = st.Warning.Render(st.IconWarning)
		}
		fmt.Fprintf(r.w, "%s %s\n", icon, check.Name)
		for _, issue := range check.Issues {
			fmt.Fprintf(r.w, "    %s\n", issue)
		}
	}

	fmt.Fprintln(r.w)
	if result.Valid {
		fmt.Fprintln(r.w, st.Success.Render("Document structure is valid"))
	} else {
		fmt.Fprintln(r.w, st.Warning.Render("Document structure needs work"))
		if result.Restructured != "" {
			fmt.Fprintln(r.w, st.Subheader.Render("A restructured draft is available with --format json"))
		}
	}
	return nil
}

func (r *TerminalReporter) ReportClarity(report *metrics.ClarityReport) error {
	st := r.ui.Styles

	fmt.Fprintf(r.w, "Clarity score: %s\n\n", st.Score.Render(fmt.Sprintf("%d/100", report.Score)))

	if len(report.Issues) == 0 {
		fmt.Fprintln(r.w, st.Success.Render(st.IconSuccess+" No clarity issues found"))
	}
	for _, issue := range report.Issues {
		fmt.Fprintf(r.w, "%s (%d, %s)\n", st.Header.Render(issue.Category), issue.Count, r.severityStyle(issue.Severity))
		for _, ex := range issue.Examples {
			fmt.Fprintf(r.w, "    > %s\n", st.Subheader.Render(ex))
		}
	}

	fmt.Fprintln(r.w)
	s := report.Statistics
	fmt.Fprintf(r.w, "%d words, %d sentences, %.1f words/sentence, readability %.1f\n",
		s.Words, s.Sentences, s.AvgWordsPerSent, s.Readability)

	if len(report.Recommendations) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, st.Subheader.Render("Recommendations"))
		for _, rec := range report.Recommendations {
			fmt.Fprintf(r.w, "  - %s\n", rec)
		}
	}
	return nil
}

func (r *TerminalReporter) ReportOptimize(result *processor.OptimizeResult) error {
	st := r.ui.Styles

	fmt.Fprintln(r.w, st.Header.Render("Optimized section"))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, result.Optimized)
	fmt.Fprintln(r.w)

	fmt.Fprintf(r.w, "Clarity: %d → %d\n", result.Before.ClarityScore, result.After.ClarityScore)
	fmt.Fprintf(r.w, "Readability: %.1f → %.1f\n", result.Before.Readability, result.After.Readability)
	fmt.Fprintf(r.w, "Words: %d → %d\n", result.Before.WordCount, result.After.WordCount)

	for _, imp := range result.Improvements {
		fmt.Fprintf(r.w, "  %s %s\n", st.IconChange, imp)
	}
	return nil
}
