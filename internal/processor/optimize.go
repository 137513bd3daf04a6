package processor

import (
	"fmt"
	"sort"
	"strings"

	"prosefix/internal/document"
	"prosefix/internal/metrics"
)

// Snapshot captures the headline numbers for a text before or after
// optimization.
type Snapshot struct {
	ClarityScore int     `json:"clarity_score"`
	Readability  float64 `json:"readability"`
	WordCount    int     `json:"word_count"`
}

// OptimizeResult is the outcome of OptimizeSection.
type OptimizeResult struct {
	SectionType  string   `json:"section_type"`
	Optimized    string   `json:"optimized"`
	Before       Snapshot `json:"before"`
	After        Snapshot `json:"after"`
	Improvements []string `json:"improvements"`
}

// sectionDocType maps a section-type tag to the document type driving the
// pipeline: introductions get the full-paper treatment (structure checks),
// abstracts get abstract validation, everything else is a plain section.
func sectionDocType(sectionType string) string {
	switch strings.ToLower(sectionType) {
	case "introduction":
		return document.TypeFullPaper
	case "abstract":
		return document.TypeAbstract
	default:
		return document.TypeSection
	}
}

func snapshot(text string) Snapshot {
	return Snapshot{
		ClarityScore: metrics.ClarityScore(text),
		Readability:  metrics.FleschReadingEase(text),
		WordCount:    document.WordCount(text),
	}
}

// OptimizeSection rewrites one section and reports before/after metrics with
// the list of improvements applied.
func (p *Processor) OptimizeSection(text, sectionType string) (*OptimizeResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text must not be empty")
	}

	edit, err := p.EditDocument(text, sectionDocType(sectionType), FormatClean)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, c := range edit.Changes {
		counts[c.Rule]++
	}
	rules := make([]string, 0, len(counts))
	for rule := range counts {
		rules = append(rules, rule)
	}
	sort.Strings(rules)

	improvements := make([]string, 0, len(rules))
	for _, rule := range rules {
		improvements = append(improvements, fmt.Sprintf("%s: %d edits", rule, counts[rule]))
	}

	return &OptimizeResult{
		SectionType:  sectionType,
		Optimized:    edit.EditedText,
		Before:       snapshot(text),
		After:        snapshot(edit.EditedText),
		Improvements: improvements,
	}, nil
}

// CheckClarityMetrics runs the read-only analysis pass.
func (p *Processor) CheckClarityMetrics(text string) (*metrics.ClarityReport, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text must not be empty")
	}
	return metrics.Analyze(text), nil
}
