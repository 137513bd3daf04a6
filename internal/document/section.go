package document

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Section is a titled span of a document processed as a unit.
type Section struct {
	Title   string
	Content string
}

// Type tags accepted by the processor.
const (
	TypeFullPaper = "full_paper"
	TypeSection   = "section"
	TypeParagraph = "paragraph"
	TypeAbstract  = "abstract"
)

// ValidType reports whether t is a known document type.
func ValidType(t string) bool {
	switch t {
	case TypeFullPaper, TypeSection, TypeParagraph, TypeAbstract:
		return true
	}
	return false
}

// headingLine matches a plain-prose heading: an optionally numbered short
// capitalized line without terminal punctuation ("1. Introduction",
// "Related Work").
var headingLine = regexp.MustCompile(`^\s*(?:\d+\.?\d*\.?\s+)?[A-Z][A-Za-z0-9 \-]{0,60}$`)

// SplitSections partitions a document into titled sections. Full papers are
// split on markdown headings when present, falling back to a capitalized-line
// heuristic; any other document type becomes a single "Content" section.
func SplitSections(content, docType string) []Section {
	if docType != TypeFullPaper {
		return []Section{{Title: "Content", Content: strings.TrimSpace(content)}}
	}

	if sections := splitMarkdownSections(content); len(sections) > 0 {
		return sections
	}
	if sections := splitHeuristicSections(content); len(sections) > 0 {
		return sections
	}
	return []Section{{Title: "Content", Content: strings.TrimSpace(content)}}
}

// splitMarkdownSections extracts top-level sections from markdown headings
// via the goldmark AST. Returns nil when the document has no headings.
func splitMarkdownSections(content string) []Section {
	source := []byte(content)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	type heading struct {
		title string
		line  int
	}
	var headings []heading

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Lines().Len() > 0 {
			seg := h.Lines().At(0)
			line := strings.Count(string(source[:seg.Start]), "\n")
			headings = append(headings, heading{
				title: string(h.Text(source)),
				line:  line,
			})
		}
		return ast.WalkContinue, nil
	})

	if len(headings) == 0 {
		return nil
	}

	lines := strings.Split(content, "\n")
	var sections []Section
	for i, h := range headings {
		start := h.line + 1
		end := len(lines)
		if i+1 < len(headings) {
			end = headings[i+1].line
		}
		body := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
		sections = append(sections, Section{Title: h.title, Content: body})
	}

	// Preamble before the first heading keeps its own section.
	if headings[0].line > 0 {
		preamble := strings.TrimSpace(strings.Join(lines[:headings[0].line], "\n"))
		if preamble != "" {
			sections = append([]Section{{Title: "Preamble", Content: preamble}}, sections...)
		}
	}

	return sections
}

// splitHeuristicSections treats short capitalized lines as section titles in
// plain-prose documents. Returns nil when fewer than two titles are found.
func splitHeuristicSections(content string) []Section {
	lines := strings.Split(content, "\n")

	var titleIdx []int
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || !headingLine.MatchString(trimmed) {
			continue
		}
		if len(strings.Fields(trimmed)) > 8 {
			continue
		}
		titleIdx = append(titleIdx, i)
	}
	if len(titleIdx) < 2 {
		return nil
	}

	var sections []Section
	for i, idx := range titleIdx {
		end := len(lines)
		if i+1 < len(titleIdx) {
			end = titleIdx[i+1]
		}
		body := strings.TrimSpace(strings.Join(lines[idx+1:end], "\n"))
		title := stripNumbering(strings.TrimSpace(lines[idx]))
		sections = append(sections, Section{Title: title, Content: body})
	}
	return sections
}

var numberingPrefix = regexp.MustCompile(`^\d+\.?\d*\.?\s+`)

func stripNumbering(title string) string {
	return numberingPrefix.ReplaceAllString(title, "")
}
