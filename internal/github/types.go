package github

import "time"

// Run statuses reported by the Actions API.
const (
	StatusQueued     = "queued"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Run conclusions reported by the Actions API.
const (
	ConclusionSuccess   = "success"
	ConclusionFailure   = "failure"
	ConclusionCancelled = "cancelled"
	ConclusionSkipped   = "skipped"
)

// DispatchRequest is the body of a workflow_dispatch call.
// Inputs are forwarded verbatim.
type DispatchRequest struct {
	Ref    string         `json:"ref"`
	Inputs DispatchInputs `json:"inputs"`
}

// DispatchInputs are the workflow inputs the RunSync workflow declares.
type DispatchInputs struct {
	TaskType string `json:"task_type"`
	Password string `json:"password"`
}

// WorkflowRun is the subset of a workflow run this tool reads.
type WorkflowRun struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DisplayTitle string    `json:"display_title,omitempty"`
	RunNumber    int       `json:"run_number"`
	Event        string    `json:"event"`
	Status       string    `json:"status"`
	Conclusion   string    `json:"conclusion"`
	HeadBranch   string    `json:"head_branch"`
	HTMLURL      string    `json:"html_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsCompleted reports whether the run finished.
func (r WorkflowRun) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// runsResponse keeps WorkflowRuns as a pointer so a missing field can be told apart from an empty list.
type runsResponse struct {
	TotalCount   int            `json:"total_count"`
	WorkflowRuns *[]WorkflowRun `json:"workflow_runs"`
}
