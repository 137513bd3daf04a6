package engine

import (
	"fmt"
	"regexp"
	"strings"

	"prosefix/internal/document"
)

// ClarityRules rewrites individual sentences for directness: passive voice
// conversion, long-sentence splitting, multi-clause separation, and
// vocabulary simplification. Construct one instance per processing call.
type ClarityRules struct {
	changelog
}

func NewClarityRules() *ClarityRules {
	return &ClarityRules{}
}

// The long-sentence threshold, in words. Sentences above it are candidates
// for splitting and count against the clarity score.
const LongSentenceWords = 25

// minFragmentWords is the smallest half a split may produce.
const minFragmentWords = 5

var (
	// "X was/were VERBed by Y"
	passiveByPattern = regexp.MustCompile(`(?i)^(.+?)\s+(was|were)\s+(\w+)\s+by\s+(.+?)\s*([.!?])?$`)
	// "it is/was VERBed that ..."
	passiveItPattern = regexp.MustCompile(`(?i)\b(it)\s+(is|was)\s+(\w+)\s+that\s+`)
	// "X has/have been VERBed ..."
	passivePerfectPattern = regexp.MustCompile(`(?i)^(.+?)\s+(has|have)\s+been\s+(\w+)\b\s*(.*)$`)
)

// looksLikeParticiple reports whether a word is plausibly a past participle.
func looksLikeParticiple(word string) bool {
	lower := strings.ToLower(word)
	if _, ok := irregularVerbs[lower]; ok {
		return true
	}
	return strings.HasSuffix(lower, "ed") || strings.HasSuffix(lower, "en")
}

// FixPassiveVoice converts three passive constructions to active form. The
// recorded change captures the whole sentence before and after, not a
// substring diff.
func (r *ClarityRules) FixPassiveVoice(sentence string) string {
	original := sentence
	matched := false

	if m := passiveByPattern.FindStringSubmatch(sentence); m != nil && looksLikeParticiple(m[3]) {
		punct := m[5]
		if punct == "" {
			punct = "."
		}
		sentence = capitalizeFirst(m[4]) + " " + pastForm(m[3]) + " " + lowerFirst(m[1]) + punct
		matched = true
	}

	if passiveItPattern.MatchString(sentence) {
		sentence = passiveItPattern.ReplaceAllStringFunc(sentence, func(s string) string {
			m := passiveItPattern.FindStringSubmatch(s)
			if !looksLikeParticiple(m[3]) {
				return s
			}
			matched = true
			subject := "researchers"
			if m[1] == "It" {
				subject = "Researchers"
			}
			verb := baseForm(m[3])
			if strings.EqualFold(m[2], "was") {
				verb = pastForm(m[3])
			}
			return subject + " " + verb + " that "
		})
	}

	if m := passivePerfectPattern.FindStringSubmatch(sentence); m != nil && looksLikeParticiple(m[3]) {
		rest := strings.TrimSpace(m[4])
		rewritten := "Researchers have " + strings.ToLower(m[3]) + " " + lowerFirst(m[1])
		if rest == "" {
			rewritten += "."
		} else if strings.ContainsAny(rest[:1], ".!?,") {
			rewritten += rest
		} else {
			rewritten += " " + rest
		}
		sentence = rewritten
		matched = true
	}

	if matched && sentence != original {
		r.record(Change{
			Rule:     "fix_passive_voice",
			Category: CategoryClarity,
			Before:   original,
			After:    sentence,
			Reason:   "Converted passive voice to active voice",
		})
		return sentence
	}
	return original
}

// splitPoint pairs a coordinating separator with the prefix the second half
// receives. Evaluated in priority order; first qualifying split wins.
type splitPoint struct {
	sep    string
	prefix string
}

var splitPoints = []splitPoint{
	{", and ", ""},
	{", but ", "However, "},
	{"; ", ""},
	{", which ", "This "},
	{", while ", "Meanwhile, "},
}

// SplitLongSentences splits sentences above the word threshold at the first
// coordinating pattern that leaves at least minFragmentWords words on each
// side. Sentences with no qualifying split point pass through unchanged.
func (r *ClarityRules) SplitLongSentences(text string) string {
	sentences := document.SplitSentences(text)
	out := make([]string, 0, len(sentences))

	for _, sentence := range sentences {
		if wordCount(sentence) <= LongSentenceWords {
			out = append(out, sentence)
			continue
		}

		first, second, ok := r.trySplit(sentence)
		if !ok {
			out = append(out, sentence)
			continue
		}

		split := first + " " + second
		r.record(Change{
			Rule:     "split_long_sentence",
			Category: CategoryClarity,
			Before:   sentence,
			After:    split,
			Reason:   fmt.Sprintf("Split a %d-word sentence for readability", wordCount(sentence)),
		})
		out = append(out, first, second)
	}

	return strings.Join(out, " ")
}

func (r *ClarityRules) trySplit(sentence string) (string, string, bool) {
	lower := strings.ToLower(sentence)
	for _, p := range splitPoints {
		idx := strings.Index(lower, p.sep)
		if idx < 0 {
			continue
		}
		left := sentence[:idx]
		right := sentence[idx+len(p.sep):]
		if wordCount(left) < minFragmentWords || wordCount(right) < minFragmentWords {
			continue
		}
		first := ensureTerminal(capitalizeFirst(left))
		second := ensureTerminal(capitalizeFirst(p.prefix + right))
		return first, second, true
	}
	return "", "", false
}

var clauseIndicatorPattern = regexp.MustCompile(
	`(?i)\b(which|that|who|whom|whose|where|when|while|although|because|since|if|unless|after|before|as)\b`)

var clauseConnectorPattern = regexp.MustCompile(
	`(?i)\s*,?\s+(and|but|however|moreover|furthermore|additionally|also)\s+`)

// ClauseCount estimates the number of clauses in a sentence as subordinate
// indicator occurrences plus one.
func ClauseCount(sentence string) int {
	return len(clauseIndicatorPattern.FindAllString(sentence, -1)) + 1
}

// SeparateIdeas breaks a sentence carrying more than two clauses apart at its
// coordinating connectors, dropping the connector tokens.
func (r *ClarityRules) SeparateIdeas(sentence string) string {
	if ClauseCount(sentence) <= 2 {
		return sentence
	}

	parts := clauseConnectorPattern.Split(sentence, -1)
	var fragments []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fragments = append(fragments, ensureTerminal(capitalizeFirst(part)))
	}
	if len(fragments) <= 1 {
		return sentence
	}

	separated := strings.Join(fragments, " ")
	r.record(Change{
		Rule:     "separate_ideas",
		Category: CategoryClarity,
		Before:   sentence,
		After:    separated,
		Reason:   fmt.Sprintf("Separated %d ideas into individual sentences", len(fragments)),
	})
	return separated
}

// simplification maps an inflated term to its plain equivalent. Multi-word
// phrases come first so they win over their component words.
type simplification struct {
	from string
	to   string
}

var simplifications = []simplification{
	{"due to the fact that", "because"},
	{"in spite of the fact that", "although"},
	{"at this point in time", "now"},
	{"in the event that", "if"},
	{"in close proximity to", "near"},
	{"a large number of", "many"},
	{"a majority of", "most"},
	{"with regard to", "about"},
	{"in order to", "to"},
	{"prior to", "before"},
	{"subsequent to", "after"},
	{"utilize", "use"},
	{"utilizes", "uses"},
	{"utilized", "used"},
	{"utilization", "use"},
	{"facilitate", "help"},
	{"facilitates", "helps"},
	{"methodology", "method"},
	{"commence", "begin"},
	{"terminate", "end"},
	{"endeavor", "try"},
	{"ascertain", "learn"},
	{"approximately", "about"},
	{"sufficient", "enough"},
	{"numerous", "many"},
	{"additional", "more"},
	{"initial", "first"},
	{"attempt", "try"},
	{"obtain", "get"},
	{"assist", "help"},
	{"regarding", "about"},
	{"concerning", "about"},
	{"consequently", "so"},
	{"subsequently", "later"},
	{"predominantly", "mainly"},
	{"fundamental", "basic"},
	{"leverage", "use"},
	{"employ", "use"},
	{"possess", "have"},
}

var simplificationPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(simplifications))
	for i, s := range simplifications {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s.from) + `\b`)
	}
	return patterns
}()

// SimplifyLanguage substitutes plain equivalents for inflated vocabulary,
// whole-word and case-insensitive. One change aggregates all substitutions
// performed in the call.
func (r *ClarityRules) SimplifyLanguage(text string) string {
	original := text
	var replaced []string

	for i, s := range simplifications {
		to := s.to
		next := simplificationPatterns[i].ReplaceAllStringFunc(text, func(match string) string {
			if match != "" && match[0] >= 'A' && match[0] <= 'Z' {
				return capitalizeFirst(to)
			}
			return to
		})
		if next != text {
			replaced = append(replaced, s.from+" -> "+s.to)
			text = next
		}
	}

	if len(replaced) > 0 {
		r.record(Change{
			Rule:     "simplify_language",
			Category: CategoryVocabulary,
			Before:   original,
			After:    text,
			Reason:   "Simplified vocabulary: " + strings.Join(replaced, ", "),
		})
	}
	return text
}
