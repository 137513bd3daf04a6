package report

import (
	"os"
	"strings"
	"testing"

	"prosefix/internal/engine"
	"prosefix/internal/metrics"
)

func sampleData() Data {
	original := "The system was designed by our team."
	edited := "Our team designed the system."
	return Data{
		DocumentType: "section",
		Original:     original,
		Edited:       edited,
		Metrics:      metrics.Compute(original, edited),
		Changes: []engine.Change{
			{
				Rule:     "fix_passive_voice",
				Category: engine.CategoryClarity,
				Before:   original,
				After:    edited,
				Reason:   "Converted passive voice to active voice",
			},
		},
	}
}

func TestRender(t *testing.T) {
	got := Render(sampleData())

	for _, want := range []string{
		"# Tracked Changes",
		"Document type: `section`",
		"| Words | 7 | 5 |",
		"Total edits: 1.",
		"### Clarity (1)",
		"**fix_passive_voice** — Converted passive voice to active voice",
		"<summary>Before</summary>",
		"<summary>After</summary>",
		"- `fix_passive_voice`: 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q\n%s", want, got)
		}
	}
}

func TestRender_NoChanges(t *testing.T) {
	got := Render(Data{
		DocumentType: "paragraph",
		Original:     "The cat sat.",
		Edited:       "The cat sat.",
	})

	if !strings.Contains(got, "Total edits: 0.") {
		t.Errorf("report missing zero-edit summary:\n%s", got)
	}
	if strings.Contains(got, "## Changes by Category") {
		t.Error("empty change list should omit the category section")
	}
	if strings.Contains(got, "## Rules Applied") {
		t.Error("empty change list should omit the rule counts")
	}
}

func TestRender_GroupsByCategory(t *testing.T) {
	d := sampleData()
	d.Changes = append(d.Changes, engine.Change{
		Rule:     "fix_tense",
		Category: engine.CategoryStyle,
		Before:   "will be evaluated",
		After:    "are evaluated",
		Reason:   "Converted future tense to present tense",
	})

	got := Render(d)
	clarityIdx := strings.Index(got, "### Clarity (1)")
	styleIdx := strings.Index(got, "### Style (1)")
	if clarityIdx < 0 || styleIdx < 0 {
		t.Fatalf("missing category headers:\n%s", got)
	}
	if clarityIdx > styleIdx {
		t.Error("clarity changes should render before style changes")
	}
}

func TestStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	path, err := store.Save("# Tracked Changes\n")
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("path %q not under %q", path, dir)
	}
	base := strings.TrimPrefix(path, dir+string(os.PathSeparator))
	if !strings.HasPrefix(base, "edits_") || !strings.HasSuffix(base, ".md") {
		t.Errorf("unexpected report file name %q", base)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved report: %v", err)
	}
	if string(data) != "# Tracked Changes\n" {
		t.Errorf("saved content = %q", string(data))
	}
}

func TestStoreSave_CreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/out"
	store := NewStore(dir)

	if _, err := store.Save("report"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}
