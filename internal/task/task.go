// Package task defines the domain records served by the task backend:
// tasks, users, comments, and audit history entries.
package task

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusInProgress  Status = "In Progress"
	StatusUnderReview Status = "Under Review"
	StatusCompleted   Status = "Completed"
)

// Statuses lists all statuses in workflow order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusUnderReview, StatusCompleted}

// Priority is the urgency bucket of a task.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
)

// ErrorStatus is the error classification recorded with a review.
type ErrorStatus string

const (
	ErrorNone     ErrorStatus = "None"
	ErrorInternal ErrorStatus = "Internal Error"
	ErrorClient   ErrorStatus = "Client Query"
)

// ErrorStatuses lists the review classifications in display order.
var ErrorStatuses = []ErrorStatus{ErrorNone, ErrorInternal, ErrorClient}

// Task is one document-processing job assigned to an analyst.
type Task struct {
	ID             ID           `json:"task_id"`
	CompanyName    string       `json:"company_name"`
	DocumentType   string       `json:"document_type"`
	Status         Status       `json:"status"`
	Priority       Priority     `json:"priority"`
	AssignedUserID ID           `json:"assigned_user_id"`
	TargetQty      int          `json:"target_qty"`
	AchievedQty    int          `json:"achieved_qty"`
	CreatedAt      Time         `json:"created_at"`
	DueDate        *Time        `json:"due_date"`
	Rating         *int         `json:"rating"`
	ErrorStatus    *ErrorStatus `json:"error_status"`
	Remarks        string       `json:"remarks"`
	Description    string       `json:"description"`
}

// Reviewed reports whether a review has been recorded. Presence of the
// rating field is the sole signal; a rating of zero still counts as
// reviewed.
func (t Task) Reviewed() bool {
	return t.Rating != nil
}
