package dashboard

import "github.com/shopspring/decimal"

// Summary is the landing-page KPI block.
type Summary struct {
	Customers     int             `json:"customers"`
	Employees     int             `json:"employees"`
	Projects      int             `json:"projects"`
	PendingTasks  int             `json:"pending_tasks"`
	Leads         int             `json:"leads"`
	LeadsByStage  map[string]int  `json:"leads_by_stage"`
	PipelineValue decimal.Decimal `json:"pipeline_value"`
	PresentToday  int             `json:"present_today"`
}
