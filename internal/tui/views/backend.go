package views

import (
	"context"

	"taskdeck/internal/api"
	"taskdeck/internal/task"
)

// Backend is the slice of the API client the views depend on. *api.Client
// satisfies it; tests substitute a fake.
type Backend interface {
	ListTasks(ctx context.Context) ([]task.Task, error)
	ListUsers(ctx context.Context) ([]task.User, error)
	GetTask(ctx context.Context, id task.ID) (task.Task, error)
	ListComments(ctx context.Context, id task.ID) ([]task.Comment, error)
	ListHistory(ctx context.Context, id task.ID) ([]task.HistoryEntry, error)
	UpdateTask(ctx context.Context, id task.ID, req api.TaskUpdateRequest) (task.Task, error)
	SubmitReview(ctx context.Context, id task.ID, req api.ReviewRequest) (task.Task, error)
	CreateComment(ctx context.Context, id task.ID, req api.CommentCreateRequest) (task.Comment, error)
}
