package reporter

import (
	"prosefix/internal/metrics"
	"prosefix/internal/processor"
)

// Reporter outputs operation results in one format.
type Reporter interface {
	ReportEdit(result *processor.EditResult) error
	ReportStructure(result *processor.StructureResult) error
	ReportClarity(report *metrics.ClarityReport) error
	ReportOptimize(result *processor.OptimizeResult) error
}
