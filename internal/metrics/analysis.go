package metrics

import (
	"fmt"
	"regexp"
	"strings"

	"prosefix/internal/document"
	"prosefix/internal/engine"
)

// Severity tiers an issue category by occurrence count.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// tier maps a count to a severity: 1-2 low, 3-5 medium, 6+ high.
func tier(count int) Severity {
	switch {
	case count >= 6:
		return SeverityHigh
	case count >= 3:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Issue is one diagnosed problem category with representative examples.
type Issue struct {
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Severity Severity `json:"severity"`
	Examples []string `json:"examples,omitempty"`
}

// Statistics is the raw numbers block of a clarity report.
type Statistics struct {
	Words           int     `json:"words"`
	Sentences       int     `json:"sentences"`
	AvgWordsPerSent float64 `json:"avg_words_per_sentence"`
	Readability     float64 `json:"readability"`
	AvgClauseCount  float64 `json:"avg_clause_count"`
}

// ClarityReport is the read-only analysis of a text: no rewriting happens.
type ClarityReport struct {
	Score           int        `json:"score"`
	Issues          []Issue    `json:"issues"`
	Statistics      Statistics `json:"statistics"`
	Recommendations []string   `json:"recommendations"`
}

const maxExamples = 5

func clip(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Analyze produces a diagnostic clarity report without mutating the text.
func Analyze(text string) *ClarityReport {
	sentences := document.SplitSentences(text)
	words := strings.Fields(text)

	report := &ClarityReport{
		Score: ClarityScore(text),
		Statistics: Statistics{
			Words:          len(words),
			Sentences:      len(sentences),
			Readability:    FleschReadingEase(text),
			AvgClauseCount: AverageClauseCount(text),
		},
	}
	if len(sentences) > 0 {
		report.Statistics.AvgWordsPerSent = float64(len(words)) / float64(len(sentences))
	}

	addIssue := func(category string, examples []string) {
		if len(examples) == 0 {
			return
		}
		count := len(examples)
		if len(examples) > maxExamples {
			examples = examples[:maxExamples]
		}
		report.Issues = append(report.Issues, Issue{
			Category: category,
			Count:    count,
			Severity: tier(count),
			Examples: examples,
		})
	}

	addIssue("Passive Voice", passiveExamples(text))
	addIssue("Long Sentences", longSentenceExamples(sentences))
	addIssue("Complex Vocabulary", complexWordExamples(words))
	addIssue("Jargon", termExamples(text, engine.ForbiddenTerms()))
	addIssue("Redundancy", termExamples(text, engine.RedundantPhrases()))
	addIssue("Multi-Clause Sentences", multiClauseExamples(sentences))

	report.Recommendations = recommendations(report.Issues)
	return report
}

func passiveExamples(text string) []string {
	var examples []string
	for _, p := range passivePatterns {
		for _, m := range p.FindAllString(text, -1) {
			examples = append(examples, m)
		}
	}
	return examples
}

func longSentenceExamples(sentences []string) []string {
	var examples []string
	for _, s := range sentences {
		if document.WordCount(s) > engine.LongSentenceWords {
			examples = append(examples, clip(s, 80))
		}
	}
	return examples
}

func complexWordExamples(words []string) []string {
	seen := make(map[string]struct{})
	var examples []string
	for _, w := range words {
		w = strings.ToLower(strings.Trim(w, ".,;:!?()[]\"'"))
		if len(w) < complexWordLength {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		examples = append(examples, w)
	}
	return examples
}

func termExamples(text string, terms []string) []string {
	var examples []string
	for _, term := range terms {
		p := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if p.MatchString(text) {
			examples = append(examples, term)
		}
	}
	return examples
}

func multiClauseExamples(sentences []string) []string {
	var examples []string
	for _, s := range sentences {
		if engine.ClauseCount(s) > 2 {
			examples = append(examples, clip(s, 80))
		}
	}
	return examples
}

var recommendationByCategory = map[string]string{
	"Passive Voice":          "Rewrite passive constructions so the actor performs the verb",
	"Long Sentences":         "Split sentences over 25 words at their coordinating conjunctions",
	"Complex Vocabulary":     "Prefer shorter, plainer words where meaning allows",
	"Jargon":                 "Remove hedging phrases and unnecessary jargon",
	"Redundancy":             "Collapse redundant phrases to their essential word",
	"Multi-Clause Sentences": "Limit sentences to two clauses; give each idea its own sentence",
}

func recommendations(issues []Issue) []string {
	var recs []string
	for _, issue := range issues {
		if rec, ok := recommendationByCategory[issue.Category]; ok {
			recs = append(recs, fmt.Sprintf("%s (%d found)", rec, issue.Count))
		}
	}
	return recs
}
