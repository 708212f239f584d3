package types

import "github.com/google/uuid"

// OptimizationResult is the read-only outcome of one optimization run:
// before/after scores, the improvement delta, the ordered change records, and
// the optimized snapshot for the caller to persist as a new version.
type OptimizationResult struct {
	RunID          uuid.UUID       `json:"run_id"`
	OriginalScore  ScoreBreakdown  `json:"original_score"`
	OptimizedScore ScoreBreakdown  `json:"optimized_score"`
	Improvement    float64         `json:"improvement"`
	Changes        []Change        `json:"changes"`
	Optimized      *ResumeSnapshot `json:"optimized"`
}
