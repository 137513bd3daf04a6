package report

import (
	"fmt"
	"sort"
	"strings"

	"prosefix/internal/document"
	"prosefix/internal/engine"
	"prosefix/internal/metrics"
)

// Data carries everything the tracking report renders for one edit run.
type Data struct {
	DocumentType string
	Original     string
	Edited       string
	Metrics      metrics.Metrics
	Changes      []engine.Change
}

// Render produces the Markdown tracking report: a summary table, changes
// grouped by category, a collapsible full before/after comparison, and
// per-rule occurrence counts.
func Render(d Data) string {
	var b strings.Builder

	b.WriteString("# Tracked Changes\n\n")
	fmt.Fprintf(&b, "Document type: `%s`\n\n", d.DocumentType)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Before | After |\n")
	b.WriteString("|---|---|---|\n")
	fmt.Fprintf(&b, "| Words | %d | %d |\n",
		document.WordCount(d.Original), document.WordCount(d.Edited))
	fmt.Fprintf(&b, "| Readability | %.1f | %.1f |\n",
		metrics.FleschReadingEase(d.Original), metrics.FleschReadingEase(d.Edited))
	fmt.Fprintf(&b, "| Characters | %d | %d |\n", len(d.Original), len(d.Edited))
	fmt.Fprintf(&b, "\nTotal edits: %d. Character delta: %+d.\n\n",
		len(d.Changes), len(d.Edited)-len(d.Original))

	if len(d.Changes) > 0 {
		b.WriteString("## Changes by Category\n\n")
		writeCategories(&b, d.Changes)
	}

	b.WriteString("## Full Comparison\n\n")
	b.WriteString("<details>\n<summary>Before</summary>\n\n```\n")
	b.WriteString(d.Original)
	b.WriteString("\n```\n\n</details>\n\n")
	b.WriteString("<details>\n<summary>After</summary>\n\n```\n")
	b.WriteString(d.Edited)
	b.WriteString("\n```\n\n</details>\n\n")

	if len(d.Changes) > 0 {
		b.WriteString("## Rules Applied\n\n")
		writeRuleCounts(&b, d.Changes)
	}

	return b.String()
}

var categoryOrder = []engine.Category{
	engine.CategoryClarity,
	engine.CategoryStyle,
	engine.CategoryStructure,
	engine.CategoryVocabulary,
}

func writeCategories(b *strings.Builder, changes []engine.Change) {
	byCategory := make(map[engine.Category][]engine.Change)
	for _, c := range changes {
		byCategory[c.Category] = append(byCategory[c.Category], c)
	}

	for _, cat := range categoryOrder {
		group := byCategory[cat]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s (%d)\n\n", titleCase(string(cat)), len(group))
		for _, c := range group {
			fmt.Fprintf(b, "**%s** — %s\n\n", c.Rule, c.Reason)
			fmt.Fprintf(b, "```\n%s\n```\n\n", c.Before)
			fmt.Fprintf(b, "```\n%s\n```\n\n", c.After)
		}
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func writeRuleCounts(b *strings.Builder, changes []engine.Change) {
	counts := make(map[string]int)
	for _, c := range changes {
		counts[c.Rule]++
	}

	rules := make([]string, 0, len(counts))
	for rule := range counts {
		rules = append(rules, rule)
	}
	sort.Strings(rules)

	for _, rule := range rules {
		fmt.Fprintf(b, "- `%s`: %d\n", rule, counts[rule])
	}
	b.WriteString("\n")
}
