package processor

import (
	"os"
	"strings"
	"testing"

	"prosefix/internal/config"
	"prosefix/internal/engine"
)

func testProcessor(t *testing.T) *Processor {
	t.Helper()
	return New(&config.Config{
		OutputDir:   t.TempDir(),
		DefaultType: "section",
		SaveReports: false,
	})
}

func TestEditDocument(t *testing.T) {
	p := testProcessor(t)

	text := "The system was designed by our team. It should be noted that the results will be evaluated."
	result, err := p.EditDocument(text, "paragraph", FormatClean)
	if err != nil {
		t.Fatalf("EditDocument() error: %v", err)
	}

	want := "Our team designed the system. The results are evaluated."
	if result.EditedText != want {
		t.Errorf("EditedText = %q, want %q", result.EditedText, want)
	}

	if len(result.Changes) != 3 {
		t.Fatalf("expected 3 changes, got %d: %+v", len(result.Changes), result.Changes)
	}
	wantCats := []engine.Category{engine.CategoryClarity, engine.CategoryVocabulary, engine.CategoryStyle}
	for i, cat := range wantCats {
		if result.Changes[i].Category != cat {
			t.Errorf("change %d category = %q, want %q", i, result.Changes[i].Category, cat)
		}
	}

	if result.Metrics.PassiveCount != 1 {
		t.Errorf("PassiveCount = %d, want 1", result.Metrics.PassiveCount)
	}
	if result.Metrics.WordCountDelta != -8 {
		t.Errorf("WordCountDelta = %d, want -8", result.Metrics.WordCountDelta)
	}

	found := false
	for _, s := range result.Suggestions {
		if s == "Applied 1 clarity improvements" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected per-category suggestion, got %v", result.Suggestions)
	}

	if result.Report != "" {
		t.Error("clean format should not carry a report")
	}
}

func TestEditDocument_ArgumentErrors(t *testing.T) {
	p := testProcessor(t)

	if _, err := p.EditDocument("   ", "section", FormatClean); err == nil {
		t.Error("expected error for empty text")
	}
	if _, err := p.EditDocument("Some text.", "essay", FormatClean); err == nil {
		t.Error("expected error for unknown document type")
	}
	if _, err := p.EditDocument("Some text.", "section", "xml"); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestEditDocument_DefaultsFromConfig(t *testing.T) {
	p := New(&config.Config{OutputDir: t.TempDir(), DefaultType: "paragraph"})

	result, err := p.EditDocument("The cat sat.", "", "")
	if err != nil {
		t.Fatalf("EditDocument() error: %v", err)
	}
	if result.DocumentType != "paragraph" {
		t.Errorf("DocumentType = %q, want the configured default", result.DocumentType)
	}
	if result.Report == "" {
		t.Error("empty format should default to both and carry a report")
	}
}

func TestEditDocument_FullPaperInsertsOverview(t *testing.T) {
	p := testProcessor(t)

	text := "# Introduction\n\n" +
		"The problem of stale caches remains hard. We propose a new protocol. " +
		"Unlike prior work, it needs no global clock. Our contributions include a protocol and proof.\n\n" +
		"# Evaluation\n\nThe cat sat."
	result, err := p.EditDocument(text, "full_paper", FormatClean)
	if err != nil {
		t.Fatalf("EditDocument() error: %v", err)
	}

	if len(result.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(result.Sections))
	}
	if result.Sections[1].Title != "Overview" {
		t.Errorf("sections[1].Title = %q, want Overview", result.Sections[1].Title)
	}
	for _, heading := range []string{"## Introduction", "## Overview", "## Evaluation"} {
		if !strings.Contains(result.EditedText, heading) {
			t.Errorf("EditedText missing %q", heading)
		}
	}

	found := false
	for _, c := range result.Changes {
		if c.Rule == "insert_overview" {
			found = true
		}
	}
	if !found {
		t.Error("expected an insert_overview change")
	}
}

func TestEditDocument_AbstractValidated(t *testing.T) {
	p := testProcessor(t)

	text := "A hard problem in caching is addressed. A new method keeps replicas fresh. " +
		"Experiments demonstrate strong results."
	result, err := p.EditDocument(text, "abstract", FormatClean)
	if err != nil {
		t.Fatalf("EditDocument() error: %v", err)
	}

	found := false
	for _, c := range result.Changes {
		if c.Rule == "expand_abstract" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a short abstract to be expanded, changes: %+v", result.Changes)
	}
}

func TestEditDocument_ChangesScopedToSection(t *testing.T) {
	p := testProcessor(t)

	text := "# Methods\n\nThe system was designed by our team.\n\n# Results\n\nThe cat sat."
	result, err := p.EditDocument(text, "full_paper", FormatClean)
	if err != nil {
		t.Fatalf("EditDocument() error: %v", err)
	}

	var methods, results *ProcessedSection
	for i := range result.Sections {
		switch result.Sections[i].Title {
		case "Methods":
			methods = &result.Sections[i]
		case "Results":
			results = &result.Sections[i]
		}
	}
	if methods == nil || results == nil {
		t.Fatalf("missing expected sections: %+v", result.Sections)
	}
	if len(methods.Changes) != 1 {
		t.Errorf("Methods changes = %d, want 1", len(methods.Changes))
	}
	if len(results.Changes) != 0 {
		t.Errorf("Results changes leaked: %+v", results.Changes)
	}
}

func TestEditDocument_SavesReport(t *testing.T) {
	dir := t.TempDir()
	p := New(&config.Config{OutputDir: dir, DefaultType: "section", SaveReports: true})

	result, err := p.EditDocument("The system was designed by our team.", "section", FormatTracked)
	if err != nil {
		t.Fatalf("EditDocument() error: %v", err)
	}
	if result.ReportPath == "" {
		t.Fatal("expected a stored report path")
	}
	data, err := os.ReadFile(result.ReportPath)
	if err != nil {
		t.Fatalf("reading stored report: %v", err)
	}
	if !strings.Contains(string(data), "# Tracked Changes") {
		t.Errorf("stored report missing header: %q", string(data))
	}
}

func TestAnalyzeStructure_Valid(t *testing.T) {
	p := testProcessor(t)

	text := "# Methods\n\nThe cat sat.\n\n# Results\n\nThe dog ran."
	result, err := p.AnalyzeStructure(text, []string{"Methods", "Results"})
	if err != nil {
		t.Fatalf("AnalyzeStructure() error: %v", err)
	}

	if !result.Valid {
		t.Errorf("expected valid structure, suggestions: %v", result.Suggestions)
	}
	if result.Restructured != "" {
		t.Error("valid structure should not be restructured")
	}
	for _, check := range result.Sections {
		if !check.Present {
			t.Errorf("section %q reported missing", check.Name)
		}
	}
}

func TestAnalyzeStructure_MissingSection(t *testing.T) {
	p := testProcessor(t)

	text := "# Methods\n\nThe cat sat."
	result, err := p.AnalyzeStructure(text, []string{"Methods", "Conclusion"})
	if err != nil {
		t.Fatalf("AnalyzeStructure() error: %v", err)
	}

	if result.Valid {
		t.Error("expected invalid structure")
	}
	if !strings.Contains(result.Restructured, "[To be written: Conclusion]") {
		t.Errorf("expected a placeholder for the missing section, got %q", result.Restructured)
	}
	if !strings.Contains(result.Restructured, "The cat sat.") {
		t.Errorf("restructured document should keep existing content, got %q", result.Restructured)
	}
	found := false
	for _, s := range result.Suggestions {
		if strings.Contains(s, "Conclusion") && strings.Contains(s, "missing") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a missing-section suggestion, got %v", result.Suggestions)
	}
}

func TestAnalyzeStructure_IntroductionIssues(t *testing.T) {
	p := testProcessor(t)

	text := "# Introduction\n\nWe built a thing."
	result, err := p.AnalyzeStructure(text, []string{"Introduction"})
	if err != nil {
		t.Fatalf("AnalyzeStructure() error: %v", err)
	}
	if result.Valid {
		t.Error("expected introduction issues to invalidate the structure")
	}
	if len(result.Sections[0].Issues) == 0 {
		t.Error("expected issues on the introduction check")
	}
}

func TestAnalyzeStructure_EmptyText(t *testing.T) {
	p := testProcessor(t)
	if _, err := p.AnalyzeStructure("", nil); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestOptimizeSection(t *testing.T) {
	p := testProcessor(t)

	text := "The system was designed by our team."
	result, err := p.OptimizeSection(text, "section")
	if err != nil {
		t.Fatalf("OptimizeSection() error: %v", err)
	}

	if result.Optimized != "Our team designed the system." {
		t.Errorf("Optimized = %q", result.Optimized)
	}
	if result.Before.WordCount != 7 || result.After.WordCount != 5 {
		t.Errorf("word counts = %d -> %d, want 7 -> 5", result.Before.WordCount, result.After.WordCount)
	}
	if len(result.Improvements) != 1 || result.Improvements[0] != "fix_passive_voice: 1 edits" {
		t.Errorf("Improvements = %v", result.Improvements)
	}
}

func TestOptimizeSection_EmptyText(t *testing.T) {
	p := testProcessor(t)
	if _, err := p.OptimizeSection("  ", "section"); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestCheckClarityMetrics(t *testing.T) {
	p := testProcessor(t)

	report, err := p.CheckClarityMetrics("The cake was eaten by the dog.")
	if err != nil {
		t.Fatalf("CheckClarityMetrics() error: %v", err)
	}
	if report.Score >= 100 {
		t.Errorf("Score = %d, want a passive penalty", report.Score)
	}
	if len(report.Issues) == 0 {
		t.Error("expected at least one issue")
	}

	if _, err := p.CheckClarityMetrics(""); err == nil {
		t.Error("expected error for empty text")
	}
}
