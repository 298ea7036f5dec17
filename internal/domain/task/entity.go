package task

type Task struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	DueDate  string   `json:"dueDate"`
	Priority Priority `json:"priority"`
	Assignee string   `json:"assignee"`
	Progress int      `json:"progress"`
	Status   Status   `json:"status"`
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)
