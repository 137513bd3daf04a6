package engine

import (
	"fmt"
	"regexp"
	"strings"

	"prosefix/internal/document"
)

// StructureRules validates and repairs section-level conventions: the
// introduction's problem statement and contributions, the abstract's
// independence and length, and the presence of an overview section.
// Construct one instance per processing call.
type StructureRules struct {
	changelog
}

func NewStructureRules() *StructureRules {
	return &StructureRules{}
}

// ValidationResult is the outcome of a structure check: validity, the issues
// found, and the auto-fixed text with the changes the fix produced.
type ValidationResult struct {
	Valid   bool
	Issues  []string
	Fixed   string
	Changes []Change
}

var problemKeywords = []string{
	"problem", "challenge", "issue", "difficulty", "limitation",
	"gap", "question", "obstacle", "shortcoming", "drawback",
}

var keyIdeaPhrases = []string{
	"we propose", "we present", "we introduce", "we develop",
	"our approach", "our method", "our key idea", "the key idea",
	"this paper proposes", "our main insight",
}

var comparisonWords = []string{
	"unlike", "whereas", "in contrast", "compared to", "different from",
	"as opposed to", "while previous", "unlike previous",
	"existing methods", "prior work",
}

var obviousStatements = []string{
	"as we all know",
	"it is well known that",
	"in today's world",
	"since the beginning of",
	"throughout history",
	"in recent years, there has been",
	"with the development of",
	"nowadays",
	"in modern society",
}

// boilerplatePatterns are the openers stripped by the introduction auto-fix,
// with their trailing comma or connective.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bas we all know,?\s*`),
	regexp.MustCompile(`(?i)\bit is well known that\s*`),
	regexp.MustCompile(`(?i)\bin today's world,?\s*`),
	regexp.MustCompile(`(?i)\bsince the beginning of time,?\s*`),
	regexp.MustCompile(`(?i)\bnowadays,?\s*`),
}

// topicStopwords are excluded when deriving a topic phrase from the first
// paragraph.
var topicStopwords = map[string]struct{}{
	"however": {}, "therefore": {}, "because": {}, "although": {},
	"through": {}, "without": {}, "between": {}, "during": {},
	"against": {}, "towards": {}, "within": {}, "several": {},
	"various": {}, "different": {}, "important": {}, "significant": {},
}

const contributionsParagraph = "Our contributions are threefold. " +
	"First, we identify and formalize the core problem. " +
	"Second, we present a novel approach that addresses it directly."

func containsAny(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func firstParagraph(text string) string {
	if idx := strings.Index(text, "\n\n"); idx >= 0 {
		return text[:idx]
	}
	return text
}

// topicPhrase extracts up to three technical words (>5 chars, stoplisted)
// from a paragraph to name its subject.
func topicPhrase(paragraph string) string {
	var words []string
	for _, w := range strings.Fields(paragraph) {
		w = strings.ToLower(strings.Trim(w, ".,;:!?()[]\"'"))
		if len(w) <= 5 {
			continue
		}
		if _, stop := topicStopwords[w]; stop {
			continue
		}
		words = append(words, w)
		if len(words) == 3 {
			break
		}
	}
	if len(words) == 0 {
		return "this area"
	}
	return strings.Join(words, " ")
}

// ValidateIntroduction runs five checks against an introduction and applies
// its auto-fixes regardless of validity. Every change produced by the fix
// records the pre-fix text as Before, so multiple changes from one call may
// share the same Before value.
func (r *StructureRules) ValidateIntroduction(text string) ValidationResult {
	original := text
	var issues []string

	para := firstParagraph(text)
	hasProblem := containsAny(para, problemKeywords)
	hasContribution := strings.Contains(strings.ToLower(text), "contribut")
	hasObvious := containsAny(text, obviousStatements)
	hasKeyIdea := containsAny(text, keyIdeaPhrases)
	hasComparison := containsAny(text, comparisonWords)

	if !hasProblem {
		issues = append(issues, "First paragraph does not state the problem being solved")
	}
	if !hasContribution {
		issues = append(issues, "Introduction does not state its contributions")
	}
	if hasObvious {
		issues = append(issues, "Introduction opens with an obvious statement")
	}
	if !hasKeyIdea {
		issues = append(issues, "Introduction does not state the key idea")
	}
	if !hasComparison {
		issues = append(issues, "Introduction does not position the work against prior approaches")
	}

	valid := len(issues) == 0
	var changes []Change

	if !hasProblem {
		statement := fmt.Sprintf("The challenge of %s remains unsolved. ", topicPhrase(para))
		text = statement + text
		changes = append(changes, Change{
			Rule:     "add_problem_statement",
			Category: CategoryStructure,
			Before:   original,
			After:    text,
			Reason:   "Added an explicit problem statement to the first paragraph",
		})
	}

	if !hasContribution {
		paragraphs := strings.SplitN(text, "\n\n", 2)
		if len(paragraphs) == 2 {
			text = paragraphs[0] + "\n\n" + contributionsParagraph + "\n\n" + paragraphs[1]
		} else {
			text = text + "\n\n" + contributionsParagraph
		}
		changes = append(changes, Change{
			Rule:     "add_contributions",
			Category: CategoryStructure,
			Before:   original,
			After:    text,
			Reason:   "Inserted a contributions paragraph after the opening paragraph",
		})
	}

	stripped := text
	for _, p := range boilerplatePatterns {
		stripped = p.ReplaceAllString(stripped, "")
	}
	if stripped != text {
		stripped = capitalizeFirst(normalize(stripped))
		changes = append(changes, Change{
			Rule:     "remove_boilerplate",
			Category: CategoryStructure,
			Before:   original,
			After:    stripped,
			Reason:   "Removed obvious-statement boilerplate",
		})
		text = stripped
	}

	for _, c := range changes {
		r.record(c)
	}

	return ValidationResult{
		Valid:   valid,
		Issues:  issues,
		Fixed:   text,
		Changes: changes,
	}
}

var (
	problemSynonyms  = []string{"problem", "challenge", "issue", "question", "difficulty"}
	approachSynonyms = []string{"approach", "method", "technique", "framework", "algorithm"}
	resultSynonyms   = []string{"result", "show", "demonstrate", "achieve", "improve", "outperform"}
)

var selfReferences = []simplification{
	{"this paper presents", "this research presents"},
	{"this paper", "this research"},
	{"this work", "this research"},
	{"we present", "the study presents"},
}

var selfReferencePatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(selfReferences))
	for i, s := range selfReferences {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s.from) + `\b`)
	}
	return patterns
}()

const (
	abstractMinWords = 100
	abstractMaxWords = 250
)

const syntheticAbstract = "This research addresses a significant problem in the field. " +
	"A novel approach is developed to tackle this challenge. " +
	"Experimental results demonstrate substantial improvements over existing methods."

const abstractExpansion = " The findings have broad implications for both theory and practice in this domain."

// ValidateAbstract checks independence, self-containment, and length, and
// applies the corresponding fixes. A non-self-contained abstract is replaced
// wholesale with a synthesized template; the discarded text survives only in
// the change record.
func (r *StructureRules) ValidateAbstract(text string) ValidationResult {
	original := text
	var issues []string

	lower := strings.ToLower(text)
	independent := !strings.Contains(lower, "this paper") &&
		!strings.Contains(lower, "we present") &&
		!strings.Contains(lower, "this work")
	selfContained := containsAny(text, problemSynonyms) &&
		containsAny(text, approachSynonyms) &&
		containsAny(text, resultSynonyms)
	words := document.WordCount(text)
	lengthOK := words >= abstractMinWords && words <= abstractMaxWords

	if !independent {
		issues = append(issues, "Abstract refers to the paper itself")
	}
	if !selfContained {
		issues = append(issues, "Abstract does not cover problem, approach, and result")
	}
	if !lengthOK {
		issues = append(issues, fmt.Sprintf("Abstract is %d words; expected between %d and %d", words, abstractMinWords, abstractMaxWords))
	}

	valid := len(issues) == 0
	var changes []Change

	rewritten := text
	var neutralized []string
	for i, s := range selfReferences {
		next := selfReferencePatterns[i].ReplaceAllStringFunc(rewritten, func(match string) string {
			if match != "" && match[0] >= 'A' && match[0] <= 'Z' {
				return capitalizeFirst(s.to)
			}
			return s.to
		})
		if next != rewritten {
			neutralized = append(neutralized, s.from)
			rewritten = next
		}
	}
	if len(neutralized) > 0 {
		changes = append(changes, Change{
			Rule:     "neutralize_self_reference",
			Category: CategoryStructure,
			Before:   original,
			After:    rewritten,
			Reason:   "Rewrote self-referential phrases: " + strings.Join(neutralized, ", "),
		})
		text = rewritten
	}

	if !selfContained {
		changes = append(changes, Change{
			Rule:     "synthesize_abstract",
			Category: CategoryStructure,
			Before:   original,
			After:    syntheticAbstract,
			Reason:   "Replaced abstract that did not cover problem, approach, and result",
		})
		text = syntheticAbstract
	}

	switch {
	case document.WordCount(text) > abstractMaxWords:
		truncated := document.TruncateWords(text, abstractMaxWords)
		truncated = strings.TrimRight(truncated, ".,;:") + "."
		changes = append(changes, Change{
			Rule:     "truncate_abstract",
			Category: CategoryStructure,
			Before:   original,
			After:    truncated,
			Reason:   fmt.Sprintf("Truncated abstract to %d words", abstractMaxWords),
		})
		text = truncated
	case document.WordCount(text) < abstractMinWords:
		expanded := ensureTerminal(text) + abstractExpansion
		changes = append(changes, Change{
			Rule:     "expand_abstract",
			Category: CategoryStructure,
			Before:   original,
			After:    expanded,
			Reason:   "Appended an expansion sentence to a short abstract",
		})
		text = expanded
	}

	for _, c := range changes {
		r.record(c)
	}

	return ValidationResult{
		Valid:   valid,
		Issues:  issues,
		Fixed:   text,
		Changes: changes,
	}
}

// InsertOverviewSection splices a synthesized overview after the first
// introduction or abstract section. Idempotent: a section list already
// containing an overview is returned unchanged.
func (r *StructureRules) InsertOverviewSection(sections []document.Section) []document.Section {
	for _, s := range sections {
		if strings.Contains(strings.ToLower(s.Title), "overview") {
			return sections
		}
	}

	pos := 1
	for i, s := range sections {
		lower := strings.ToLower(s.Title)
		if strings.Contains(lower, "introduction") || strings.Contains(lower, "abstract") {
			pos = i + 1
			break
		}
	}
	if pos > len(sections) {
		pos = len(sections)
	}

	var lines []string
	n := 0
	for _, s := range sections {
		if strings.Contains(strings.ToLower(s.Title), "abstract") {
			continue
		}
		n++
		lines = append(lines, fmt.Sprintf("Section %d covers %s.", n, s.Title))
		if n == 5 {
			break
		}
	}

	overview := document.Section{
		Title:   "Overview",
		Content: strings.Join(lines, " "),
	}

	out := make([]document.Section, 0, len(sections)+1)
	out = append(out, sections[:pos]...)
	out = append(out, overview)
	out = append(out, sections[pos:]...)

	r.record(Change{
		Rule:     "insert_overview",
		Category: CategoryStructure,
		Before:   "No overview section",
		After:    "Added overview section",
		Reason:   "Added an overview section enumerating the paper structure",
	})
	return out
}
