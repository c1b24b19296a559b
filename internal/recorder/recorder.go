package recorder

import "TrendScope/internal/model"

// Recorder persists analysis results for later inspection. The analysis core
// itself stays persistence-free; this is host-application audit logging.
type Recorder interface {
	RecordAnalysis(report *model.AnalysisReport) error
	Close() error
}
