package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/api"
	"taskdeck/internal/task"
	"taskdeck/internal/timeline"
	"taskdeck/internal/tui/components"
	"taskdeck/internal/tui/msgs"
	"taskdeck/internal/tui/styles"
)

// TaskDetailModel is the model for the single-task view: description,
// comments, and the audit timeline, with status transitions and comment
// posting.
type TaskDetailModel struct {
	backend Backend
	id      task.ID

	task     task.Task
	comments []task.Comment
	history  []task.HistoryEntry // merged with the synthetic creation entry
	users    task.Directory

	commentInput textinput.Model
	commenting   bool
	timelineView viewport.Model

	loading  bool
	loadErr  error
	notFound bool
	busy     bool
	mutErr   string
	spinner  spinner.Model

	width  int
	height int
}

// NewTaskDetailModel creates the detail view for the task with the given id.
func NewTaskDetailModel(backend Backend, id task.ID) TaskDetailModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	ci := textinput.New()
	ci.Placeholder = "Add a comment..."
	ci.CharLimit = 500

	return TaskDetailModel{
		backend:      backend,
		id:           id,
		commentInput: ci,
		timelineView: viewport.New(0, 0),
		spinner:      s,
		loading:      true,
	}
}

// Init implements tea.Model.
func (m TaskDetailModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch loads the task, its comments, its history, and the user directory,
// delivering all four in one message so the view never renders a partially
// refreshed state.
func (m TaskDetailModel) fetch() tea.Cmd {
	backend := m.backend
	id := m.id
	return func() tea.Msg {
		ctx := context.Background()

		t, err := backend.GetTask(ctx, id)
		if err != nil {
			if api.NotFound(err) {
				return msgs.TaskNotFoundMsg{ID: id}
			}
			return msgs.LoadFailedMsg{Err: err}
		}
		comments, err := backend.ListComments(ctx, id)
		if err != nil {
			return msgs.LoadFailedMsg{Err: err}
		}
		history, err := backend.ListHistory(ctx, id)
		if err != nil {
			return msgs.LoadFailedMsg{Err: err}
		}
		users, err := backend.ListUsers(ctx)
		if err != nil {
			return msgs.LoadFailedMsg{Err: err}
		}
		return msgs.TaskLoadedMsg{Task: t, Comments: comments, History: history, Users: users}
	}
}

// Update implements tea.Model.
func (m TaskDetailModel) Update(msg tea.Msg) (TaskDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTimeline()
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case msgs.TaskLoadedMsg:
		m.loading = false
		m.busy = false
		m.loadErr = nil
		m.notFound = false
		m.task = msg.Task
		m.comments = msg.Comments
		m.users = msg.Users
		m.history = timeline.WithCreation(msg.History, msg.Task)
		m.resizeTimeline()
		m.timelineView.SetContent(m.renderTimeline())
		return m, nil

	case msgs.TaskNotFoundMsg:
		m.loading = false
		m.busy = false
		m.notFound = true
		return m, nil

	case msgs.LoadFailedMsg:
		m.loading = false
		m.busy = false
		m.loadErr = msg.Err
		return m, nil

	case msgs.StatusSavedMsg:
		// The audit entry is written server-side; refetch everything so
		// the timeline reflects it.
		return m.refetch()

	case msgs.CommentSavedMsg:
		m.commentInput.Reset()
		m.commenting = false
		return m.refetch()

	case msgs.MutationFailedMsg:
		m.busy = false
		m.mutErr = errorMessage(msg.Err)
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.commenting {
			return m.updateCommenting(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m TaskDetailModel) refetch() (TaskDetailModel, tea.Cmd) {
	m.loading = true
	m.busy = false
	m.mutErr = ""
	return m, tea.Batch(m.spinner.Tick, m.fetch())
}

func (m TaskDetailModel) updateCommenting(msg tea.KeyMsg) (TaskDetailModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.commenting = false
		m.commentInput.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		text := m.commentInput.Value()
		if strings.TrimSpace(text) == "" {
			// Whitespace-only: no request, input untouched.
			return m, nil
		}
		return m.postComment(text)
	}
	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m TaskDetailModel) updateKeys(msg tea.KeyMsg) (TaskDetailModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
	case "ctrl+c":
		return m, tea.Quit
	case "r":
		return m.refetch()
	case "s":
		if m.loading || m.notFound || m.loadErr != nil {
			return m, nil
		}
		return m.advanceStatus()
	case "c":
		if m.loading || m.notFound || m.loadErr != nil {
			return m, nil
		}
		m.commenting = true
		m.commentInput.Focus()
		return m, textinput.Blink
	case "up", "k", "down", "j", "pgup", "pgdown":
		var cmd tea.Cmd
		m.timelineView, cmd = m.timelineView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// advanceStatus moves the task to the next workflow status and submits the
// change; only the status field is sent.
func (m TaskDetailModel) advanceStatus() (TaskDetailModel, tea.Cmd) {
	next := nextStatus(m.task.Status)
	m.busy = true
	m.mutErr = ""

	backend := m.backend
	id := m.id
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		req := api.TaskUpdateRequest{Status: &next}
		if _, err := backend.UpdateTask(context.Background(), id, req); err != nil {
			return msgs.MutationFailedMsg{Err: err}
		}
		return msgs.StatusSavedMsg{}
	})
}

func nextStatus(s task.Status) task.Status {
	for i, candidate := range task.Statuses {
		if candidate == s {
			return task.Statuses[(i+1)%len(task.Statuses)]
		}
	}
	return task.StatusPending
}

// postComment submits the comment text; comments posted from this surface
// are never internal.
func (m TaskDetailModel) postComment(text string) (TaskDetailModel, tea.Cmd) {
	m.busy = true
	m.mutErr = ""

	backend := m.backend
	id := m.id
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		req := api.CommentCreateRequest{CommentText: text, IsInternal: false}
		if _, err := backend.CreateComment(context.Background(), id, req); err != nil {
			return msgs.MutationFailedMsg{Err: err}
		}
		return msgs.CommentSavedMsg{}
	})
}

func (m *TaskDetailModel) resizeTimeline() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	h := m.height - m.headerHeight() - 1
	if h < 3 {
		h = 3
	}
	m.timelineView.Width = w
	m.timelineView.Height = h
}

// headerHeight counts the lines above the timeline viewport.
func (m TaskDetailModel) headerHeight() int {
	// header(2) + description(2) + comments header(1) + comments + input(2)
	return 7 + len(m.comments)
}

// View implements tea.Model.
func (m TaskDetailModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading task...")
	case m.notFound:
		b.WriteString(styles.ErrorStyle.Render("Task not found"))
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("Press Esc to go back."))
	case m.loadErr != nil:
		b.WriteString(styles.ErrorStyle.Render("Failed to load task: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("Press r to retry."))
	default:
		b.WriteString(m.renderTask())
	}

	content := b.String()
	lines := strings.Count(content, "\n") + 1
	bottomPadding := m.height - 1 - lines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	content += strings.Repeat("\n", bottomPadding+1)

	statusItems := []string{"s Next Status", "c Comment", "↑↓ Scroll History", "r Refresh", "Esc Back"}
	if m.commenting {
		statusItems = []string{"Enter Post", "Esc Cancel"}
	}
	return content + components.NewStatusBar().Render(m.width, statusItems)
}

func (m TaskDetailModel) renderTask() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.task.CompanyName))
	b.WriteString("\n")
	meta := fmt.Sprintf("#%s • %s • %s • %s", m.task.ID, m.task.DocumentType, m.task.Status, m.task.Priority)
	b.WriteString(styles.SubtleStyle.Render(meta))
	if m.busy {
		b.WriteString("  " + m.spinner.View())
	}
	if m.mutErr != "" {
		b.WriteString("  " + styles.ErrorStyle.Render(m.mutErr))
	}
	b.WriteString("\n\n")

	description := m.task.Description
	if description == "" {
		description = styles.SubtleStyle.Render("No description provided.")
	}
	b.WriteString(description)
	b.WriteString("\n\n")

	b.WriteString(styles.SelectedStyle.Render("Comments"))
	b.WriteString("\n")
	if len(m.comments) == 0 {
		b.WriteString(styles.SubtleStyle.Render("No comments yet."))
		b.WriteString("\n")
	}
	for _, comment := range m.comments {
		author, ok := m.users.NameFor(comment.UserID)
		if !ok {
			author = string(comment.UserID)
		}
		when := comment.CreatedAt.Local().Format("Jan 2, 3:04 PM")
		b.WriteString(fmt.Sprintf("%s %s — %s\n",
			styles.SelectedStyle.Render(author),
			styles.SubtleStyle.Render(when),
			comment.Text))
	}
	b.WriteString("> " + m.commentInput.View())
	b.WriteString("\n\n")

	b.WriteString(styles.SelectedStyle.Render("Activity"))
	b.WriteString("\n")
	b.WriteString(m.timelineView.View())

	return b.String()
}

// renderTimeline formats the merged history for the timeline viewport.
func (m TaskDetailModel) renderTimeline() string {
	items := timeline.Build(m.history, m.users)
	if len(items) == 0 {
		return styles.SubtleStyle.Render("No activity recorded yet")
	}

	var lines []string
	for _, item := range items {
		tone := styles.ToneStyle(item.Tone)
		head := fmt.Sprintf("%s %s — %s", styles.IconGlyph(item.Icon), item.FieldLabel, item.Action)
		if item.Latest {
			head = styles.LatestStyle.Render(head)
		} else {
			head = tone.Render(head)
		}
		lines = append(lines, head)
		lines = append(lines, "  "+item.Value)
		lines = append(lines, "  "+styles.SubtleStyle.Render(
			fmt.Sprintf("%s (%s) • by %s", item.When, item.Ago, item.Actor)))
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// SetSize updates the model dimensions.
func (m *TaskDetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.resizeTimeline()
}

// Task returns the loaded task.
func (m TaskDetailModel) Task() task.Task {
	return m.task
}

// History returns the merged history, newest first.
func (m TaskDetailModel) History() []task.HistoryEntry {
	return m.history
}

// Comments returns the loaded comments.
func (m TaskDetailModel) Comments() []task.Comment {
	return m.comments
}

// NotFound reports whether the task was absent after fetch.
func (m TaskDetailModel) NotFound() bool {
	return m.notFound
}

// Commenting reports whether the comment input has focus.
func (m TaskDetailModel) Commenting() bool {
	return m.commenting
}

// CommentDraft returns the current comment input text.
func (m TaskDetailModel) CommentDraft() string {
	return m.commentInput.Value()
}
