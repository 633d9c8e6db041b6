package task

// Comment is a discussion entry on a task.
type Comment struct {
	ID         ID     `json:"comment_id"`
	TaskID     ID     `json:"task_id"`
	UserID     ID     `json:"user_id"`
	Text       string `json:"comment_text"`
	CreatedAt  Time   `json:"created_at"`
	IsInternal bool   `json:"is_internal"`
}
