package engine

import (
	"regexp"
	"strings"
)

// StyleRules applies lexical and tonal transformations: forbidden-term
// removal, tense normalization, parenthetical flattening, redundancy
// collapsing, and weak-verb strengthening. Construct one instance per
// processing call.
type StyleRules struct {
	changelog
}

func NewStyleRules() *StyleRules {
	return &StyleRules{}
}

// forbiddenTerms are academic hedges and jargon removed outright.
var forbiddenTerms = []string{
	"it should be noted that",
	"it is worth noting that",
	"it is important to note that",
	"needless to say",
	"as a matter of fact",
	"for all intents and purposes",
	"at the end of the day",
	"the fact of the matter is",
	"paradigm",
	"paradigms",
	"aforementioned",
	"aforesaid",
	"heretofore",
	"hereinafter",
	"thusly",
	"whilst",
	"amongst",
	"in terms of",
	"on a daily basis",
}

var forbiddenPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(forbiddenTerms))
	for i, term := range forbiddenTerms {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b\s*`)
	}
	return patterns
}()

// ForbiddenTerms returns the removal list, for read-only analysis passes.
func ForbiddenTerms() []string {
	return forbiddenTerms
}

var (
	multiSpacePattern    = regexp.MustCompile(`[ \t]{2,}`)
	spaceBeforePunct     = regexp.MustCompile(`\s+([.,;:!?])`)
	doubledPeriodPattern = regexp.MustCompile(`\.{2,}`)
	leadingStrayPunct    = regexp.MustCompile(`^\s*[,.]\s*`)
	commaPeriodPattern   = regexp.MustCompile(`,\s*\.`)
)

// normalize cleans up whitespace and punctuation artifacts left behind by
// deletions.
func normalize(text string) string {
	text = multiSpacePattern.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = commaPeriodPattern.ReplaceAllString(text, ".")
	text = doubledPeriodPattern.ReplaceAllString(text, ".")
	text = leadingStrayPunct.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// CleanVocabulary deletes forbidden hedges and jargon, then repairs the
// surrounding whitespace and punctuation.
func (r *StyleRules) CleanVocabulary(text string) string {
	original := text
	var removed []string

	for i, term := range forbiddenTerms {
		next := forbiddenPatterns[i].ReplaceAllString(text, "")
		if next != text {
			removed = append(removed, term)
			text = next
		}
	}

	if len(removed) == 0 {
		return original
	}

	text = normalize(text)
	// Deletion at a sentence start leaves the next word lowercased.
	text = capitalizeFirst(text)

	r.record(Change{
		Rule:     "clean_vocabulary",
		Category: CategoryVocabulary,
		Before:   original,
		After:    text,
		Reason:   "Removed forbidden terms: " + strings.Join(removed, ", "),
	})
	return text
}

// tenseRule rewrites one future-tense construction. Rules run in order and
// each applies to every occurrence.
type tenseRule struct {
	pattern *regexp.Regexp
	rewrite func(m []string) string
}

var tenseRules = []tenseRule{
	{
		// "we will verb" -> "we verb"
		pattern: regexp.MustCompile(`(?i)\b(we)\s+will\s+(\w+)`),
		rewrite: func(m []string) string { return m[1] + " " + m[2] },
	},
	{
		// "will be verbing" -> "is verbing"
		pattern: regexp.MustCompile(`(?i)\bwill\s+be\s+(\w+ing)\b`),
		rewrite: func(m []string) string { return "is " + m[1] },
	},
	{
		// "will be verbed" -> "are verbed"
		pattern: regexp.MustCompile(`(?i)\bwill\s+be\s+(\w+)\b`),
		rewrite: func(m []string) string { return "are " + m[1] },
	},
	{
		// bare "will verb" -> "verbs" ("will be" -> "is")
		pattern: regexp.MustCompile(`(?i)\bwill\s+(\w+)\b`),
		rewrite: func(m []string) string {
			if strings.EqualFold(m[1], "be") {
				return "is"
			}
			return m[1] + "s"
		},
	},
	{
		// "shall verb" -> "verbs"
		pattern: regexp.MustCompile(`(?i)\bshall\s+(\w+)\b`),
		rewrite: func(m []string) string {
			if strings.EqualFold(m[1], "be") {
				return "is"
			}
			return m[1] + "s"
		},
	},
	{
		// "is/are going to verb" -> present
		pattern: regexp.MustCompile(`(?i)\b(is|are)\s+going\s+to\s+(\w+)\b`),
		rewrite: func(m []string) string {
			if strings.EqualFold(m[1], "is") {
				return m[2] + "s"
			}
			return m[2]
		},
	},
}

// FixTense converts future-tense constructions to present tense. The
// pluralization is naive ("+s"); irregular agreement is out of scope for a
// pattern rewriter.
func (r *StyleRules) FixTense(text string) string {
	original := text

	for _, rule := range tenseRules {
		text = rule.pattern.ReplaceAllStringFunc(text, func(s string) string {
			return rule.rewrite(rule.pattern.FindStringSubmatch(s))
		})
	}

	if text != original {
		r.record(Change{
			Rule:     "fix_tense",
			Category: CategoryStyle,
			Before:   original,
			After:    text,
			Reason:   "Converted future tense to present tense",
		})
	}
	return text
}

var (
	parentheticalPattern = regexp.MustCompile(`\s*\(([^)]*)\)`)
	footnotePattern      = regexp.MustCompile(`\s*\[\d+\]`)
)

// RemoveParentheticals flattens parentheses by content length: long asides
// become their own sentence, medium ones are set off with commas, short ones
// are inlined bare. Bracketed numeric footnote markers are stripped.
func (r *StyleRules) RemoveParentheticals(text string) string {
	original := text

	text = parentheticalPattern.ReplaceAllStringFunc(text, func(s string) string {
		m := parentheticalPattern.FindStringSubmatch(s)
		content := strings.TrimSpace(m[1])
		switch {
		case len(content) > 30:
			return ". " + ensureTerminal(capitalizeFirst(content))
		case len(content) > 10:
			return ", " + content + ","
		case content == "":
			return ""
		default:
			return " " + content
		}
	})
	text = footnotePattern.ReplaceAllString(text, "")

	if text == original {
		return original
	}

	text = normalize(text)
	r.record(Change{
		Rule:     "remove_parentheticals",
		Category: CategoryStyle,
		Before:   original,
		After:    text,
		Reason:   "Flattened parentheticals and removed footnote markers",
	})
	return text
}

// redundantPhrases collapses common two/three-word redundancies.
var redundantPhrases = []simplification{
	{"each and every", "each"},
	{"first and foremost", "first"},
	{"full and complete", "complete"},
	{"true and accurate", "accurate"},
	{"basic fundamentals", "fundamentals"},
	{"absolutely essential", "essential"},
	{"absolutely necessary", "necessary"},
	{"actual fact", "fact"},
	{"advance planning", "planning"},
	{"advance warning", "warning"},
	{"added bonus", "bonus"},
	{"close proximity", "proximity"},
	{"collaborate together", "collaborate"},
	{"combine together", "combine"},
	{"completely eliminate", "eliminate"},
	{"completely finished", "finished"},
	{"consensus of opinion", "consensus"},
	{"current status", "status"},
	{"end result", "result"},
	{"final outcome", "outcome"},
	{"final conclusion", "conclusion"},
	{"free gift", "gift"},
	{"future plans", "plans"},
	{"general public", "public"},
	{"joint collaboration", "collaboration"},
	{"major breakthrough", "breakthrough"},
	{"mutual cooperation", "cooperation"},
	{"new innovation", "innovation"},
	{"new invention", "invention"},
	{"past history", "history"},
	{"past experience", "experience"},
	{"personal opinion", "opinion"},
	{"plan ahead", "plan"},
	{"postpone until later", "postpone"},
	{"repeat again", "repeat"},
	{"revert back", "revert"},
	{"same identical", "identical"},
	{"sudden impulse", "impulse"},
	{"sum total", "total"},
	{"unexpected surprise", "surprise"},
	{"unintentional mistake", "mistake"},
	{"very unique", "unique"},
	{"completely unique", "unique"},
	{"totally unique", "unique"},
	{"whether or not", "whether"},
	{"period of time", "period"},
	{"point in time", "time"},
	{"in a timely manner", "promptly"},
	{"on two separate occasions", "twice"},
	{"small in size", "small"},
	{"large in size", "large"},
}

var redundantPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(redundantPhrases))
	for i, p := range redundantPhrases {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p.from) + `\b`)
	}
	return patterns
}()

// RedundantPhrases returns the collapse list, for read-only analysis passes.
func RedundantPhrases() []string {
	phrases := make([]string, len(redundantPhrases))
	for i, p := range redundantPhrases {
		phrases[i] = p.from
	}
	return phrases
}

// RemoveRedundancy collapses redundant phrases to their essential word.
func (r *StyleRules) RemoveRedundancy(text string) string {
	original := text
	var collapsed []string

	for i, p := range redundantPhrases {
		to := p.to
		next := redundantPatterns[i].ReplaceAllStringFunc(text, func(match string) string {
			if match != "" && match[0] >= 'A' && match[0] <= 'Z' {
				return capitalizeFirst(to)
			}
			return to
		})
		if next != text {
			collapsed = append(collapsed, p.from)
			text = next
		}
	}

	if len(collapsed) > 0 {
		r.record(Change{
			Rule:     "remove_redundancy",
			Category: CategoryStyle,
			Before:   original,
			After:    text,
			Reason:   "Collapsed redundant phrases: " + strings.Join(collapsed, ", "),
		})
	}
	return text
}

// weakConstructions replaces weak modal and copula constructions with direct
// verbs. Empty replacements delete the construction.
var weakConstructions = []simplification{
	{"is able to", "can"},
	{"are able to", "can"},
	{"was able to", "could"},
	{"were able to", "could"},
	{"has the ability to", "can"},
	{"have the ability to", "can"},
	{"it is possible to", "one can"},
	{"there is a need to", "we must"},
	{"serves to", ""},
	{"serve to", ""},
	{"acts as", "is"},
	{"act as", "are"},
	{"makes use of", "uses"},
	{"make use of", "use"},
	{"is used to", "can"},
	{"gives a description of", "describes"},
	{"provides a summary of", "summarizes"},
	{"performs an analysis of", "analyzes"},
}

var weakPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(weakConstructions))
	for i, w := range weakConstructions {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w.from) + `\b`)
	}
	return patterns
}()

// EnforceActiveWriting strengthens weak verb constructions.
func (r *StyleRules) EnforceActiveWriting(text string) string {
	original := text
	var strengthened []string

	for i, w := range weakConstructions {
		next := weakPatterns[i].ReplaceAllString(text, w.to)
		if next != text {
			strengthened = append(strengthened, w.from)
			text = next
		}
	}

	if len(strengthened) == 0 {
		return original
	}

	text = normalize(text)
	r.record(Change{
		Rule:     "enforce_active_writing",
		Category: CategoryStyle,
		Before:   original,
		After:    text,
		Reason:   "Strengthened weak constructions: " + strings.Join(strengthened, ", "),
	})
	return text
}
