package views

import (
	"context"
	"errors"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/api"
	"taskdeck/internal/task"
)

var errTest = errors.New("network down")

// fakeBackend is an in-memory Backend for view tests. Mutations apply to
// the stored records so refetches observe them, mirroring the server.
type fakeBackend struct {
	tasks    []task.Task
	users    []task.User
	comments []task.Comment
	history  []task.HistoryEntry

	listErr   error
	reviewErr error
	updateErr error

	reviewCalls  int
	updateCalls  int
	commentCalls int

	lastReview api.ReviewRequest
	lastUpdate api.TaskUpdateRequest
}

func (f *fakeBackend) ListTasks(ctx context.Context) ([]task.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tasks, nil
}

func (f *fakeBackend) ListUsers(ctx context.Context) ([]task.User, error) {
	return f.users, nil
}

func (f *fakeBackend) GetTask(ctx context.Context, id task.ID) (task.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, &api.Error{Status: http.StatusNotFound, Detail: "Task not found"}
}

func (f *fakeBackend) ListComments(ctx context.Context, id task.ID) ([]task.Comment, error) {
	return f.comments, nil
}

func (f *fakeBackend) ListHistory(ctx context.Context, id task.ID) ([]task.HistoryEntry, error) {
	return f.history, nil
}

func (f *fakeBackend) UpdateTask(ctx context.Context, id task.ID, req api.TaskUpdateRequest) (task.Task, error) {
	f.updateCalls++
	f.lastUpdate = req
	if f.updateErr != nil {
		return task.Task{}, f.updateErr
	}
	for i, t := range f.tasks {
		if t.ID == id && req.Status != nil {
			f.tasks[i].Status = *req.Status
			return f.tasks[i], nil
		}
	}
	return task.Task{}, &api.Error{Status: http.StatusNotFound, Detail: "Task not found"}
}

func (f *fakeBackend) SubmitReview(ctx context.Context, id task.ID, req api.ReviewRequest) (task.Task, error) {
	f.reviewCalls++
	f.lastReview = req
	if f.reviewErr != nil {
		return task.Task{}, f.reviewErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			rating := req.Rating
			errStatus := req.ErrorStatus
			f.tasks[i].Rating = &rating
			f.tasks[i].ErrorStatus = &errStatus
			f.tasks[i].Remarks = req.Remarks
			return f.tasks[i], nil
		}
	}
	return task.Task{}, &api.Error{Status: http.StatusNotFound, Detail: "Task not found"}
}

func (f *fakeBackend) CreateComment(ctx context.Context, id task.ID, req api.CommentCreateRequest) (task.Comment, error) {
	f.commentCalls++
	comment := task.Comment{ID: "100", TaskID: id, Text: req.CommentText, IsInternal: req.IsInternal}
	f.comments = append(f.comments, comment)
	return comment, nil
}

// runCmd executes a command and returns all messages it yields, flattening
// one level of tea.Batch.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, sub := range batch {
		if sub == nil {
			continue
		}
		out = append(out, sub())
	}
	return out
}

// findMsg returns the first message of type T yielded by cmd, if any.
func findMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) (T, bool) {
	t.Helper()
	for _, msg := range runCmd(t, cmd) {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
