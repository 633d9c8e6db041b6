package api

import "taskdeck/internal/task"

// TaskUpdateRequest is a partial task update. Only non-nil fields are sent.
type TaskUpdateRequest struct {
	Status         *task.Status   `json:"status,omitempty"`
	Priority       *task.Priority `json:"priority,omitempty"`
	AssignedUserID *task.ID       `json:"assigned_user_id,omitempty"`
	Description    *string        `json:"description,omitempty"`
	TargetQty      *int           `json:"target_qty,omitempty"`
	AchievedQty    *int           `json:"achieved_qty,omitempty"`
}

// ReviewRequest is the payload for recording a review on a completed task.
type ReviewRequest struct {
	Rating      int              `json:"rating"`
	ErrorStatus task.ErrorStatus `json:"error_status"`
	Remarks     string           `json:"remarks"`
}

// CommentCreateRequest is the payload for posting a comment.
type CommentCreateRequest struct {
	CommentText string `json:"comment_text"`
	IsInternal  bool   `json:"is_internal"`
}
