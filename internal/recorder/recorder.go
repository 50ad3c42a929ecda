package recorder

import "StockInsight/internal/model"

// Recorder persists analysis snapshots for later review.
type Recorder interface {
	RecordAnalysis(a *model.Analysis) error
	Close() error
}
