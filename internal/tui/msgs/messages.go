// Package msgs defines shared message types for TUI view transitions and
// network results.
package msgs

import "taskdeck/internal/task"

// View transition messages

// GoToHomeMsg signals transition to the home view.
type GoToHomeMsg struct {
	// Notice is an optional message to surface on the home screen, used
	// when a view bounces the user back (e.g. the review-queue guard).
	Notice string
}

// GoToReviewsMsg signals transition to the review queue view.
type GoToReviewsMsg struct{}

// GoToTaskMsg signals transition to the detail view for one task.
type GoToTaskMsg struct {
	ID task.ID
}

// Network result messages. Multi-source fetches deliver all their results
// in a single message so a view never renders partially-stale state.

// ReviewsLoadedMsg carries the review queue's full data set.
type ReviewsLoadedMsg struct {
	Tasks []task.Task
	Users []task.User
}

// TaskLoadedMsg carries the task detail view's full data set.
type TaskLoadedMsg struct {
	Task     task.Task
	Comments []task.Comment
	History  []task.HistoryEntry
	Users    []task.User
}

// TaskNotFoundMsg is sent when the requested task does not exist.
type TaskNotFoundMsg struct {
	ID task.ID
}

// LoadFailedMsg is sent when a fetch fails. The owning view degrades to an
// error state; retry is user-initiated.
type LoadFailedMsg struct {
	Err error
}

// ReviewSavedMsg is sent after a review submission succeeds. The queue
// refetches in response.
type ReviewSavedMsg struct{}

// ReviewFailedMsg is sent when a review submission fails; the form stays
// open with its values intact.
type ReviewFailedMsg struct {
	Err error
}

// StatusSavedMsg is sent after a status update succeeds.
type StatusSavedMsg struct{}

// CommentSavedMsg is sent after a comment posts successfully.
type CommentSavedMsg struct{}

// MutationFailedMsg is sent when a status update or comment post fails.
type MutationFailedMsg struct {
	Err error
}
