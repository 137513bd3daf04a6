package engine

import "strings"

// verbForms holds the simple-past and base forms for an irregular past
// participle. Regular verbs share past and participle, so they are absent.
type verbForms struct {
	past string
	base string
}

var irregularVerbs = map[string]verbForms{
	"written":    {"wrote", "write"},
	"taken":      {"took", "take"},
	"given":      {"gave", "give"},
	"seen":       {"saw", "see"},
	"shown":      {"showed", "show"},
	"known":      {"knew", "know"},
	"done":       {"did", "do"},
	"made":       {"made", "make"},
	"found":      {"found", "find"},
	"built":      {"built", "build"},
	"held":       {"held", "hold"},
	"kept":       {"kept", "keep"},
	"led":        {"led", "lead"},
	"chosen":     {"chose", "choose"},
	"driven":     {"drove", "drive"},
	"begun":      {"began", "begin"},
	"drawn":      {"drew", "draw"},
	"grown":      {"grew", "grow"},
	"thrown":     {"threw", "throw"},
	"understood": {"understood", "understand"},
}

// pastForm converts a past participle to simple past. Regular participles
// already are the simple past, so the input passes through unchanged.
func pastForm(participle string) string {
	if f, ok := irregularVerbs[strings.ToLower(participle)]; ok {
		return f.past
	}
	return participle
}

// baseForm converts a past participle to its base form. The fallback strips
// the "-ed" suffix: "-ied" restores "-y", "-ted"/"-ded" endings drop the
// whole suffix (targets doubled consonants like "committed").
func baseForm(participle string) string {
	lower := strings.ToLower(participle)
	if f, ok := irregularVerbs[lower]; ok {
		return f.base
	}
	switch {
	case strings.HasSuffix(lower, "ied"):
		return lower[:len(lower)-3] + "y"
	case strings.HasSuffix(lower, "ted") || strings.HasSuffix(lower, "ded"):
		return lower[:len(lower)-3]
	case strings.HasSuffix(lower, "ed"):
		return lower[:len(lower)-2]
	}
	return lower
}
