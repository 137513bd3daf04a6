package processor

import (
	"fmt"
	"os"
	"strings"

	"prosefix/internal/config"
	"prosefix/internal/document"
	"prosefix/internal/engine"
	"prosefix/internal/metrics"
	"prosefix/internal/report"
)

// Output formats for EditDocument.
const (
	FormatTracked = "tracked_changes"
	FormatClean   = "clean"
	FormatBoth    = "both"
)

// Processor orchestrates the rule engines over a document. It holds no
// per-call state: rule engines are constructed fresh inside each operation,
// so concurrent calls cannot leak changes into each other.
type Processor struct {
	cfg   *config.Config
	store *report.Store
}

// New builds a processor from configuration. Report persistence is enabled
// when cfg.SaveReports is set.
func New(cfg *config.Config) *Processor {
	p := &Processor{cfg: cfg}
	if cfg.SaveReports {
		p.store = report.NewStore(cfg.OutputDir)
	}
	return p
}

// ProcessedSection is one section after editing, with the changes made to it.
type ProcessedSection struct {
	Title    string          `json:"title"`
	Original string          `json:"original"`
	Edited   string          `json:"edited"`
	Changes  []engine.Change `json:"changes,omitempty"`
}

// EditResult is the outcome of one EditDocument run.
type EditResult struct {
	DocumentType string             `json:"document_type"`
	Sections     []ProcessedSection `json:"sections"`
	EditedText   string             `json:"edited_text"`
	Metrics      metrics.Metrics    `json:"metrics"`
	Report       string             `json:"report,omitempty"`
	Changes      []engine.Change    `json:"changes"`
	Suggestions  []string           `json:"suggestions"`
	ReportPath   string             `json:"report_path,omitempty"`
}

func validFormat(f string) bool {
	switch f {
	case FormatTracked, FormatClean, FormatBoth:
		return true
	}
	return false
}

// EditDocument rewrites text to the editing conventions and returns the
// edited text, metrics, the accumulated changes, and (depending on format)
// the tracking report. A report-persistence failure is logged and downgraded
// to an empty stored path; it never fails the edit.
func (p *Processor) EditDocument(text, docType, outputFormat string) (*EditResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text must not be empty")
	}
	if docType == "" {
		docType = p.cfg.DefaultType
	}
	if !document.ValidType(docType) {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
	if outputFormat == "" {
		outputFormat = FormatBoth
	}
	if !validFormat(outputFormat) {
		return nil, fmt.Errorf("unknown output format %q", outputFormat)
	}

	clarity := engine.NewClarityRules()
	style := engine.NewStyleRules()
	structure := engine.NewStructureRules()

	sections := document.SplitSections(text, docType)
	processed := make([]ProcessedSection, 0, len(sections))

	for _, sec := range sections {
		edited := p.processText(clarity, style, sec.Content)

		// Drain both engines so changes cannot bleed into the next section.
		changes := append(clarity.Drain(), style.Drain()...)
		processed = append(processed, ProcessedSection{
			Title:    sec.Title,
			Original: sec.Content,
			Edited:   edited,
			Changes:  changes,
		})
	}

	if docType == document.TypeFullPaper {
		processed = p.applyStructureRules(structure, processed)
	}
	if docType == document.TypeAbstract && len(processed) == 1 {
		result := structure.ValidateAbstract(processed[0].Edited)
		processed[0].Edited = result.Fixed
		processed[0].Changes = append(processed[0].Changes, structure.Drain()...)
	}

	edited := joinSections(processed, docType)
	var allChanges []engine.Change
	for _, sec := range processed {
		allChanges = append(allChanges, sec.Changes...)
	}

	m := metrics.Compute(text, edited)

	result := &EditResult{
		DocumentType: docType,
		Sections:     processed,
		EditedText:   edited,
		Metrics:      m,
		Changes:      allChanges,
		Suggestions:  suggestions(m, allChanges),
	}

	if outputFormat != FormatClean {
		result.Report = report.Render(report.Data{
			DocumentType: docType,
			Original:     text,
			Edited:       edited,
			Metrics:      m,
			Changes:      allChanges,
		})
		if p.store != nil {
			path, err := p.store.Save(result.Report)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not store tracking report: %v\n", err)
			} else {
				result.ReportPath = path
			}
		}
	}

	return result, nil
}

// processText runs the fixed sentence pipeline over one section's text.
// Long sentences are split first so the per-sentence rules see bounded input.
func (p *Processor) processText(clarity *engine.ClarityRules, style *engine.StyleRules, text string) string {
	text = clarity.SplitLongSentences(text)

	sentences := document.SplitSentences(text)
	edited := make([]string, 0, len(sentences))

	for _, sentence := range sentences {
		if strings.TrimSpace(sentence) == "" {
			continue
		}
		// Order is load-bearing: vocabulary, tense, and redundancy cleanup
		// run before idea separation so clause counts reflect cleaned text.
		sentence = clarity.FixPassiveVoice(sentence)
		sentence = clarity.SimplifyLanguage(sentence)
		sentence = style.CleanVocabulary(sentence)
		sentence = style.FixTense(sentence)
		sentence = style.RemoveRedundancy(sentence)
		sentence = style.EnforceActiveWriting(sentence)
		sentence = style.RemoveParentheticals(sentence)
		sentence = clarity.SeparateIdeas(sentence)
		edited = append(edited, sentence)
	}

	return strings.Join(edited, " ")
}

// applyStructureRules validates and fixes the introduction and abstract
// sections of a full paper, then inserts an overview section when missing.
func (p *Processor) applyStructureRules(structure *engine.StructureRules, processed []ProcessedSection) []ProcessedSection {
	for i := range processed {
		lower := strings.ToLower(processed[i].Title)
		// A full paper reduced to a single untitled span is treated as an
		// introduction; this is how section-type "introduction" reaches the
		// structure checks.
		soleContent := len(processed) == 1 && processed[i].Title == "Content"
		switch {
		case soleContent || strings.Contains(lower, "introduction"):
			result := structure.ValidateIntroduction(processed[i].Edited)
			processed[i].Edited = result.Fixed
			processed[i].Changes = append(processed[i].Changes, structure.Drain()...)
		case strings.Contains(lower, "abstract"):
			result := structure.ValidateAbstract(processed[i].Edited)
			processed[i].Edited = result.Fixed
			processed[i].Changes = append(processed[i].Changes, structure.Drain()...)
		}
	}

	sections := make([]document.Section, len(processed))
	for i, sec := range processed {
		sections[i] = document.Section{Title: sec.Title, Content: sec.Edited}
	}
	inserted := structure.InsertOverviewSection(sections)
	overviewChanges := structure.Drain()
	if len(inserted) == len(sections) {
		return processed
	}

	out := make([]ProcessedSection, 0, len(inserted))
	for _, sec := range inserted {
		if sec.Title == "Overview" && len(overviewChanges) > 0 {
			out = append(out, ProcessedSection{
				Title:    sec.Title,
				Original: "",
				Edited:   sec.Content,
				Changes:  overviewChanges,
			})
			continue
		}
		for _, ps := range processed {
			if ps.Title == sec.Title {
				out = append(out, ps)
				break
			}
		}
	}
	return out
}

func joinSections(processed []ProcessedSection, docType string) string {
	if docType != document.TypeFullPaper {
		parts := make([]string, 0, len(processed))
		for _, sec := range processed {
			parts = append(parts, sec.Edited)
		}
		return strings.Join(parts, "\n\n")
	}

	var b strings.Builder
	for i, sec := range processed {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## " + sec.Title + "\n\n")
		b.WriteString(sec.Edited)
	}
	return b.String()
}

// suggestions derives one line per nonzero metric plus one line per distinct
// change category present.
func suggestions(m metrics.Metrics, changes []engine.Change) []string {
	var out []string

	if m.PassiveCount > 0 {
		out = append(out, fmt.Sprintf("Original text contained %d passive constructions", m.PassiveCount))
	}
	if m.LongSentenceCount > 0 {
		out = append(out, fmt.Sprintf("Original text contained %d sentences over %d words", m.LongSentenceCount, engine.LongSentenceWords))
	}
	if m.ReadabilityGain != 0 {
		out = append(out, fmt.Sprintf("Readability changed by %+.1f points", m.ReadabilityGain))
	}
	if m.WordCountDelta != 0 {
		out = append(out, fmt.Sprintf("Word count changed by %+d", m.WordCountDelta))
	}

	counts := make(map[engine.Category]int)
	var order []engine.Category
	for _, c := range changes {
		if counts[c.Category] == 0 {
			order = append(order, c.Category)
		}
		counts[c.Category]++
	}
	for _, cat := range order {
		out = append(out, fmt.Sprintf("Applied %d %s improvements", counts[cat], cat))
	}

	return out
}
