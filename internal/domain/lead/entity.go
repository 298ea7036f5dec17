package lead

import "github.com/shopspring/decimal"

// Lead is a sales opportunity moving through the pipeline board. Status is
// mutated either by a board-column transition or by bulk import.
type Lead struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Value  decimal.Decimal `json:"value"`
	Status Status          `json:"status"`
}

type Status string

const (
	StatusNew       Status = "New"
	StatusContacted Status = "Contacted"
	StatusQualified Status = "Qualified"
	StatusConverted Status = "Converted"
)

// PipelineStages lists the board columns in order.
var PipelineStages = []Status{StatusNew, StatusContacted, StatusQualified, StatusConverted}

// IsValidStage reports whether s names a pipeline column (exact match).
func IsValidStage(s string) bool {
	for _, stage := range PipelineStages {
		if string(stage) == s {
			return true
		}
	}
	return false
}
