package processor

import (
	"fmt"
	"strings"

	"prosefix/internal/document"
	"prosefix/internal/engine"
)

// DefaultExpectedSections is the section layout assumed when the caller does
// not provide one.
var DefaultExpectedSections = []string{
	"Abstract",
	"Introduction",
	"Overview",
	"Technical Approach",
	"Evaluation",
	"Related Work",
	"Conclusion",
}

// SectionCheck reports presence and issues for one expected section.
type SectionCheck struct {
	Name    string   `json:"name"`
	Present bool     `json:"present"`
	Issues  []string `json:"issues,omitempty"`
}

// StructureResult is the outcome of AnalyzeStructure.
type StructureResult struct {
	Sections     []SectionCheck `json:"sections"`
	Valid        bool           `json:"valid"`
	Suggestions  []string       `json:"suggestions"`
	Restructured string         `json:"restructured,omitempty"`
}

// AnalyzeStructure checks a document against an expected section layout.
// When the layout is violated, a fully restructured document is returned
// with placeholders for the missing sections.
func (p *Processor) AnalyzeStructure(text string, expected []string) (*StructureResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text must not be empty")
	}
	if len(expected) == 0 {
		expected = DefaultExpectedSections
	}

	structure := engine.NewStructureRules()
	sections := document.SplitSections(text, document.TypeFullPaper)

	result := &StructureResult{}
	valid := true

	for _, name := range expected {
		check := SectionCheck{Name: name}
		found := findSection(sections, name)
		check.Present = found != nil

		if found == nil {
			check.Issues = append(check.Issues, fmt.Sprintf("Section %q is missing", name))
			valid = false
		} else {
			switch strings.ToLower(name) {
			case "introduction":
				v := structure.ValidateIntroduction(found.Content)
				structure.Drain()
				check.Issues = append(check.Issues, v.Issues...)
			case "abstract":
				v := structure.ValidateAbstract(found.Content)
				structure.Drain()
				check.Issues = append(check.Issues, v.Issues...)
			}
			if len(check.Issues) > 0 {
				valid = false
			}
		}

		result.Sections = append(result.Sections, check)
	}

	result.Valid = valid
	for _, check := range result.Sections {
		for _, issue := range check.Issues {
			result.Suggestions = append(result.Suggestions, fmt.Sprintf("%s: %s", check.Name, issue))
		}
	}

	if !valid {
		result.Restructured = restructure(sections, expected)
	}
	return result, nil
}

func findSection(sections []document.Section, name string) *document.Section {
	lowerName := strings.ToLower(name)
	for i := range sections {
		lowerTitle := strings.ToLower(sections[i].Title)
		if strings.Contains(lowerTitle, lowerName) || strings.Contains(lowerName, lowerTitle) {
			return &sections[i]
		}
	}
	return nil
}

// restructure assembles a document in the expected section order, keeping
// existing content and inserting placeholders for missing sections.
func restructure(sections []document.Section, expected []string) string {
	var b strings.Builder
	for i, name := range expected {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## " + name + "\n\n")
		if found := findSection(sections, name); found != nil {
			b.WriteString(found.Content)
		} else {
			fmt.Fprintf(&b, "[To be written: %s]", name)
		}
	}
	return b.String()
}
