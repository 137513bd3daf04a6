package engine

import (
	"strings"
	"testing"
)

func TestCleanVocabulary(t *testing.T) {
	r := NewStyleRules()

	got := r.CleanVocabulary("It should be noted that the results will be evaluated.")
	want := "The results will be evaluated."
	if got != want {
		t.Errorf("CleanVocabulary() = %q, want %q", got, want)
	}

	changes := r.Drain()
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].Category != CategoryVocabulary {
		t.Errorf("change category = %q, want %q", changes[0].Category, CategoryVocabulary)
	}
}

func TestCleanVocabulary_NoMatchUnchanged(t *testing.T) {
	r := NewStyleRules()

	s := "The results are promising."
	if got := r.CleanVocabulary(s); got != s {
		t.Errorf("CleanVocabulary() = %q, want unchanged", got)
	}
	if changes := r.Drain(); len(changes) != 0 {
		t.Errorf("expected no changes, got %d", len(changes))
	}
}

func TestCleanVocabulary_NormalizesPunctuation(t *testing.T) {
	r := NewStyleRules()

	got := r.CleanVocabulary("The aforementioned approach works in terms of speed.")
	if strings.Contains(got, "  ") {
		t.Errorf("output contains doubled spaces: %q", got)
	}
	if strings.Contains(got, " .") {
		t.Errorf("output contains space before period: %q", got)
	}
}

func TestFixTense(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The results will be evaluated.", "The results are evaluated."},
		{"We will demonstrate the approach.", "We demonstrate the approach."},
		{"The system will be running soon.", "The system is running soon."},
		{"The cache will improve throughput.", "The cache improves throughput."},
		{"The model is going to improve.", "The model improves."},
	}
	for _, tt := range tests {
		r := NewStyleRules()
		if got := r.FixTense(tt.in); got != tt.want {
			t.Errorf("FixTense(%q) = %q, want %q", tt.in, got, tt.want)
		}
		changes := r.Drain()
		if len(changes) != 1 {
			t.Errorf("FixTense(%q): expected 1 aggregate change, got %d", tt.in, len(changes))
		}
	}
}

func TestFixTense_PresentTenseUnchanged(t *testing.T) {
	r := NewStyleRules()

	s := "The cache improves throughput."
	if got := r.FixTense(s); got != s {
		t.Errorf("FixTense() = %q, want unchanged", got)
	}
	if changes := r.Drain(); len(changes) != 0 {
		t.Errorf("expected no changes, got %d", len(changes))
	}
}

func TestRemoveParentheticals(t *testing.T) {
	r := NewStyleRules()

	// Short content is inlined bare.
	got := r.RemoveParentheticals("The cache (LRU) improves hits.")
	want := "The cache LRU improves hits."
	if got != want {
		t.Errorf("RemoveParentheticals() = %q, want %q", got, want)
	}
	if changes := r.Drain(); len(changes) != 1 {
		t.Errorf("expected 1 change, got %d", len(changes))
	}
}

func TestRemoveParentheticals_MediumUsesCommas(t *testing.T) {
	r := NewStyleRules()

	got := r.RemoveParentheticals("The cache (a classic design) improves hits.")
	want := "The cache, a classic design, improves hits."
	if got != want {
		t.Errorf("RemoveParentheticals() = %q, want %q", got, want)
	}
}

func TestRemoveParentheticals_LongBecomesSentence(t *testing.T) {
	r := NewStyleRules()

	got := r.RemoveParentheticals("The cache works (it evicts the least recently used entry first). Done.")
	if !strings.Contains(got, ". It evicts the least recently used entry first.") {
		t.Errorf("long parenthetical should become its own sentence, got %q", got)
	}
}

func TestRemoveParentheticals_FootnoteMarkers(t *testing.T) {
	r := NewStyleRules()

	got := r.RemoveParentheticals("Prior work [12] shows this.")
	want := "Prior work shows this."
	if got != want {
		t.Errorf("RemoveParentheticals() = %q, want %q", got, want)
	}
}

func TestRemoveRedundancy(t *testing.T) {
	r := NewStyleRules()

	got := r.RemoveRedundancy("Each and every run produced the same end result.")
	want := "Each run produced the same result."
	if got != want {
		t.Errorf("RemoveRedundancy() = %q, want %q", got, want)
	}

	changes := r.Drain()
	if len(changes) != 1 {
		t.Fatalf("expected 1 aggregate change, got %d", len(changes))
	}
	if changes[0].Category != CategoryStyle {
		t.Errorf("change category = %q, want %q", changes[0].Category, CategoryStyle)
	}
}

func TestRemoveRedundancy_VeryUnique(t *testing.T) {
	r := NewStyleRules()

	got := r.RemoveRedundancy("The design is very unique.")
	want := "The design is unique."
	if got != want {
		t.Errorf("RemoveRedundancy() = %q, want %q", got, want)
	}
}

func TestEnforceActiveWriting(t *testing.T) {
	r := NewStyleRules()

	got := r.EnforceActiveWriting("The scheduler is able to preempt tasks.")
	want := "The scheduler can preempt tasks."
	if got != want {
		t.Errorf("EnforceActiveWriting() = %q, want %q", got, want)
	}
	if changes := r.Drain(); len(changes) != 1 {
		t.Errorf("expected 1 change, got %d", len(changes))
	}
}

func TestEnforceActiveWriting_Deletion(t *testing.T) {
	r := NewStyleRules()

	got := r.EnforceActiveWriting("The index serves to accelerate lookups.")
	want := "The index accelerate lookups."
	if got != want {
		t.Errorf("EnforceActiveWriting() = %q, want %q", got, want)
	}
}
