package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/review"
	"taskdeck/internal/session"
	"taskdeck/internal/task"
	"taskdeck/internal/tui/components"
	"taskdeck/internal/tui/msgs"
	"taskdeck/internal/tui/styles"
)

// ReviewsModel is the model for the review queue view. It shows completed
// tasks partitioned into pending and reviewed, with analyst and date
// filters, and hosts the review form for the selected row.
type ReviewsModel struct {
	backend Backend
	sess    session.Session

	tasks []task.Task
	users task.Directory

	filter      review.Filter
	analystIdx  int // index into users; -1 means all analysts
	dateEditing bool
	dateInput   textinput.Model

	cursor  int
	loading bool
	loadErr error
	spinner spinner.Model

	form *ReviewFormModel

	width  int
	height int
}

// NewReviewsModel creates the review queue view for the given session.
func NewReviewsModel(backend Backend, sess session.Session) ReviewsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	di := textinput.New()
	di.Placeholder = review.DateLayout
	di.CharLimit = len(review.DateLayout)
	di.Width = len(review.DateLayout) + 2

	return ReviewsModel{
		backend:    backend,
		sess:       sess,
		analystIdx: -1,
		dateInput:  di,
		spinner:    s,
		loading:    true,
	}
}

// Init implements tea.Model. Sessions without an elevated role are routed
// back home; the backend enforces the authoritative check regardless.
func (m ReviewsModel) Init() tea.Cmd {
	if !m.sess.CanReview() {
		return func() tea.Msg {
			return msgs.GoToHomeMsg{Notice: "Review queue requires an admin or manager role."}
		}
	}
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch loads tasks and the user directory together so both land in a
// single state transition.
func (m ReviewsModel) fetch() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx := context.Background()
		tasks, err := backend.ListTasks(ctx)
		if err != nil {
			return msgs.LoadFailedMsg{Err: err}
		}
		users, err := backend.ListUsers(ctx)
		if err != nil {
			return msgs.LoadFailedMsg{Err: err}
		}
		return msgs.ReviewsLoadedMsg{Tasks: tasks, Users: users}
	}
}

// Update implements tea.Model.
func (m ReviewsModel) Update(msg tea.Msg) (ReviewsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading && (m.form == nil || !m.form.Busy()) {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case msgs.ReviewsLoadedMsg:
		m.loading = false
		m.loadErr = nil
		m.tasks = msg.Tasks
		m.users = msg.Users
		m.clampCursor()
		return m, nil

	case msgs.LoadFailedMsg:
		m.loading = false
		m.loadErr = msg.Err
		return m, nil

	case msgs.ReviewSavedMsg:
		// Close the form and refetch the whole list; no local patching.
		m.form = nil
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetch())

	case msgs.ReviewFailedMsg:
		if m.form != nil {
			form, cmd := m.form.Update(msg)
			m.form = &form
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.dateEditing {
			return m.updateDateEditing(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m ReviewsModel) updateForm(msg tea.KeyMsg) (ReviewsModel, tea.Cmd) {
	if msg.String() == "esc" && !m.form.Busy() {
		m.form = nil
		return m, nil
	}
	form, cmd := m.form.Update(msg)
	m.form = &form
	return m, cmd
}

func (m ReviewsModel) updateDateEditing(msg tea.KeyMsg) (ReviewsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dateEditing = false
		m.dateInput.Reset()
		return m, nil
	case "enter":
		m.filter.Date = strings.TrimSpace(m.dateInput.Value())
		m.dateEditing = false
		m.cursor = 0
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m ReviewsModel) updateList(msg tea.KeyMsg) (ReviewsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.filter.Reviewed = !m.filter.Reviewed
		m.cursor = 0
		return m, nil
	case "a":
		m.cycleAnalyst()
		m.cursor = 0
		return m, nil
	case "d":
		m.dateEditing = true
		m.dateInput.SetValue(m.filter.Date)
		m.dateInput.Focus()
		return m, textinput.Blink
	case "c":
		m.filter.Analyst = ""
		m.filter.Date = ""
		m.analystIdx = -1
		m.cursor = 0
		return m, nil
	case "r":
		m.loading = true
		m.loadErr = nil
		return m, tea.Batch(m.spinner.Tick, m.fetch())
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "enter":
		visible := m.visible()
		if m.cursor < len(visible) {
			form := NewReviewFormModel(m.backend, visible[m.cursor])
			form.SetSize(m.width, m.height)
			m.form = &form
			return m, nil
		}
	}
	return m, nil
}

func (m *ReviewsModel) cycleAnalyst() {
	if len(m.users) == 0 {
		return
	}
	m.analystIdx++
	if m.analystIdx >= len(m.users) {
		m.analystIdx = -1
	}
	if m.analystIdx < 0 {
		m.filter.Analyst = ""
	} else {
		m.filter.Analyst = m.users[m.analystIdx].ID
	}
}

func (m *ReviewsModel) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = 0
	}
}

// visible returns the tasks matching the current partition and filters.
func (m ReviewsModel) visible() []task.Task {
	return review.Apply(m.tasks, m.filter)
}

// View implements tea.Model.
func (m ReviewsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder

	title := "Pending Review"
	if m.filter.Reviewed {
		title = "Reviewed History"
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.TitleStyle.Render("Task Reviews — "+title)))
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading tasks...")
	case m.loadErr != nil:
		b.WriteString(styles.ErrorStyle.Render("Failed to load tasks: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("Press r to retry."))
	default:
		b.WriteString(m.renderRows())
	}

	content := b.String()
	lines := strings.Count(content, "\n") + 1
	bottomPadding := m.height - 1 - lines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	content += strings.Repeat("\n", bottomPadding+1)

	statusItems := []string{"Tab Pending/Reviewed", "a Analyst", "d Date", "c Clear", "Enter Review", "r Refresh", "Esc Back"}
	if m.dateEditing {
		statusItems = []string{"Enter Apply", "Esc Cancel"}
	}
	return content + components.NewStatusBar().Render(m.width, statusItems)
}

func (m ReviewsModel) renderFilterBar() string {
	analyst := "All Analysts"
	if m.analystIdx >= 0 && m.analystIdx < len(m.users) {
		analyst = m.users[m.analystIdx].FullName
	}
	date := "Any date"
	if m.dateEditing {
		date = m.dateInput.View()
	} else if m.filter.Date != "" {
		date = m.filter.Date
	}
	bar := fmt.Sprintf("Filters: analyst [%s]  date [%s]", analyst, date)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SubtleStyle.Render(bar))
}

func (m ReviewsModel) renderRows() string {
	visible := m.visible()
	if len(visible) == 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SubtleStyle.Render("No tasks found."))
	}

	var rows []string
	for i, t := range visible {
		rows = append(rows, m.formatRow(i, t))
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(rows, "\n"))
}

func (m ReviewsModel) formatRow(index int, t task.Task) string {
	indicator := "○"
	if index == m.cursor {
		indicator = "●"
	}

	analyst := "-"
	if !t.AssignedUserID.IsZero() {
		if name, ok := m.users.NameFor(t.AssignedUserID); ok {
			analyst = name
		} else {
			analyst = string(t.AssignedUserID)
		}
	}

	line := fmt.Sprintf("%s %s  %-24s %-20s %5d/%-5d",
		indicator,
		t.CreatedAt.Local().Format("2006-01-02"),
		truncate(t.CompanyName+" ("+t.DocumentType+")", 24),
		truncate(analyst, 20),
		t.AchievedQty, t.TargetQty)

	if m.filter.Reviewed && t.Rating != nil {
		line += "  " + components.Stars(*t.Rating)
		if t.ErrorStatus != nil {
			line += "  " + string(*t.ErrorStatus)
		}
	}

	if index == m.cursor {
		return styles.SelectedStyle.Render(line)
	}
	return line
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

// SetSize updates the model dimensions.
func (m *ReviewsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form.SetSize(width, height)
	}
}

// Tasks returns the fetched task list.
func (m ReviewsModel) Tasks() []task.Task {
	return m.tasks
}

// Visible returns the tasks matching the current filters.
func (m ReviewsModel) Visible() []task.Task {
	return m.visible()
}

// Filter returns the active filter.
func (m ReviewsModel) Filter() review.Filter {
	return m.filter
}

// FormOpen reports whether the review form is showing.
func (m ReviewsModel) FormOpen() bool {
	return m.form != nil
}

// Cursor returns the current cursor position.
func (m ReviewsModel) Cursor() int {
	return m.cursor
}
