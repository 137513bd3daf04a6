package engine

// Category classifies a recorded change by the kind of rule that produced it.
type Category string

const (
	CategoryClarity    Category = "clarity"
	CategoryStyle      Category = "style"
	CategoryStructure  Category = "structure"
	CategoryVocabulary Category = "vocabulary"
)

// Change records a single text edit made by a rule. It is immutable once
// recorded; ordering within a run reflects application order, not document
// position.
type Change struct {
	Rule     string
	Category Category
	Before   string
	After    string
	Reason   string
}

// changelog accumulates Change records for one engine instance. Engines are
// constructed fresh per top-level processing call, so accumulated changes
// never leak between unrelated requests. Callers must Drain between sections.
type changelog struct {
	changes []Change
}

func (l *changelog) record(c Change) {
	l.changes = append(l.changes, c)
}

// Drain returns all accumulated changes and clears the accumulator.
func (l *changelog) Drain() []Change {
	out := l.changes
	l.changes = nil
	return out
}

// Pending returns the number of changes accumulated since the last Drain.
func (l *changelog) Pending() int {
	return len(l.changes)
}
