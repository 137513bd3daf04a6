package reporter

import (
	"encoding/json"
	"io"

	"prosefix/internal/metrics"
	"prosefix/internal/processor"
)

// JSONReporter outputs results as indented JSON.
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a JSON reporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

func (r *JSONReporter) encode(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *JSONReporter) ReportEdit(result *processor.EditResult) error {
	return r.encode(result)
}

func (r *JSONReporter) ReportStructure(result *processor.StructureResult) error {
	return r.encode(result)
}

func (r *JSONReporter) ReportClarity(report *metrics.ClarityReport) error {
	return r.encode(report)
}

func (r *JSONReporter) ReportOptimize(result *processor.OptimizeResult) error {
	return r.encode(result)
}
