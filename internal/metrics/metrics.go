package metrics

import (
	"regexp"
	"strings"

	"prosefix/internal/document"
	"prosefix/internal/engine"
)

// Metrics summarizes one edit run. Scores describe the edited text; the
// passive and long-sentence counts describe the original.
type Metrics struct {
	ClarityScore      int     `json:"clarity_score"`
	WordCountDelta    int     `json:"word_count_delta"`
	ReadabilityGain   float64 `json:"readability_gain"`
	AvgClauseCount    float64 `json:"avg_clause_count"`
	PassiveCount      int     `json:"passive_count"`
	LongSentenceCount int     `json:"long_sentence_count"`
}

// complexWordLength is the character threshold above which a word counts
// against the clarity score.
const complexWordLength = 10

var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(was|were)\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\b(was|were)\s+\w+en\b`),
	regexp.MustCompile(`(?i)\bit\s+(is|was)\s+\w+ed\s+that\b`),
	regexp.MustCompile(`(?i)\b(has|have)\s+been\s+\w+ed\b`),
}

// CountPassive counts passive-voice pattern matches in the text.
func CountPassive(text string) int {
	count := 0
	for _, p := range passivePatterns {
		count += len(p.FindAllString(text, -1))
	}
	return count
}

// CountLongSentences counts sentences above the long-sentence threshold.
func CountLongSentences(text string) int {
	count := 0
	for _, s := range document.SplitSentences(text) {
		if document.WordCount(s) > engine.LongSentenceWords {
			count++
		}
	}
	return count
}

// AverageClauseCount averages the estimated clause count over all sentences.
func AverageClauseCount(text string) float64 {
	sentences := document.SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += engine.ClauseCount(s)
	}
	return float64(total) / float64(len(sentences))
}

func isVowel(r byte) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// CountSyllables estimates syllables as vowel-group transitions, minus one
// for a trailing silent "e", floored at one.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for i := 0; i < len(word); i++ {
		v := isVowel(word[i])
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// FleschReadingEase computes the Flesch formula
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words), clamped to
// [0, 100]. Empty text scores zero.
func FleschReadingEase(text string) float64 {
	sentences := document.SplitSentences(text)
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(strings.Trim(w, ".,;:!?()[]\"'"))
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(len(sentences))) -
		84.6*(float64(syllables)/float64(len(words)))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ClarityScore computes the 0-100 composite: starting from 100, long average
// sentence length costs 10 (over 20 words) or 20 (over 25), each passive
// match costs 2, and each complex word costs 1 up to a cap of 20.
func ClarityScore(text string) int {
	score := 100

	sentences := document.SplitSentences(text)
	words := strings.Fields(text)
	if len(sentences) > 0 {
		avg := float64(len(words)) / float64(len(sentences))
		if avg > 20 {
			score -= 10
		}
		if avg > 25 {
			score -= 10
		}
	}

	score -= 2 * CountPassive(text)

	complexPenalty := 0
	for _, w := range words {
		if len(strings.Trim(w, ".,;:!?()[]\"'")) >= complexWordLength {
			complexPenalty++
		}
	}
	if complexPenalty > 20 {
		complexPenalty = 20
	}
	score -= complexPenalty

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Compute derives run metrics from the original and edited text.
func Compute(original, edited string) Metrics {
	return Metrics{
		ClarityScore:      ClarityScore(edited),
		WordCountDelta:    document.WordCount(edited) - document.WordCount(original),
		ReadabilityGain:   FleschReadingEase(edited) - FleschReadingEase(original),
		AvgClauseCount:    AverageClauseCount(edited),
		PassiveCount:      CountPassive(original),
		LongSentenceCount: CountLongSentences(original),
	}
}
