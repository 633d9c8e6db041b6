package views

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/api"
	"taskdeck/internal/task"
	"taskdeck/internal/tui/components"
	"taskdeck/internal/tui/msgs"
	"taskdeck/internal/tui/styles"
)

// formField identifies which part of the review form has focus.
type formField int

const (
	fieldRating formField = iota
	fieldErrorStatus
	fieldRemarks
)

var ratingHints = map[int]string{
	5: "Excellent - No issues",
	4: "Good - Minor suggestions",
	3: "Average - Needs improvement",
	2: "Poor - Significant issues",
	1: "Critical - Unacceptable",
}

// ReviewFormModel captures a quality review for exactly one task: a 1-5
// rating, an error classification, and free-text remarks.
type ReviewFormModel struct {
	backend Backend
	task    task.Task

	rating   int
	errorIdx int // index into task.ErrorStatuses
	remarks  textarea.Model
	focus    formField
	busy     bool
	errMsg   string

	width  int
	height int
}

// NewReviewFormModel creates a review form for t with the default field
// values: rating 5, error status None, empty remarks.
func NewReviewFormModel(backend Backend, t task.Task) ReviewFormModel {
	ta := textarea.New()
	ta.Placeholder = "Add any specific feedback or details about the error..."
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Prompt = ""

	return ReviewFormModel{
		backend: backend,
		task:    t,
		rating:  5,
		remarks: ta,
	}
}

// Init implements tea.Model.
func (m ReviewFormModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReviewFormModel) Update(msg tea.Msg) (ReviewFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.ReviewFailedMsg:
		m.busy = false
		m.errMsg = errorMessage(msg.Err)
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			// A submission is in flight; ignore input until it resolves.
			return m, nil
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m ReviewFormModel) updateKey(msg tea.KeyMsg) (ReviewFormModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % 3
		if m.focus == fieldRemarks {
			m.remarks.Focus()
		} else {
			m.remarks.Blur()
		}
		return m, nil
	case "ctrl+s":
		return m.submit()
	}

	switch m.focus {
	case fieldRating:
		switch msg.String() {
		case "left", "h":
			if m.rating > 1 {
				m.rating--
			}
		case "right", "l":
			if m.rating < 5 {
				m.rating++
			}
		case "1", "2", "3", "4", "5":
			m.rating, _ = strconv.Atoi(msg.String())
		case "enter":
			return m.submit()
		}
	case fieldErrorStatus:
		switch msg.String() {
		case "left", "h":
			m.errorIdx--
			if m.errorIdx < 0 {
				m.errorIdx = len(task.ErrorStatuses) - 1
			}
		case "right", "l":
			m.errorIdx = (m.errorIdx + 1) % len(task.ErrorStatuses)
		case "enter":
			return m.submit()
		}
	case fieldRemarks:
		var cmd tea.Cmd
		m.remarks, cmd = m.remarks.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit sends the review. The busy flag blocks further submissions until
// the result message arrives.
func (m ReviewFormModel) submit() (ReviewFormModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.errMsg = ""

	backend := m.backend
	id := m.task.ID
	req := api.ReviewRequest{
		Rating:      m.rating,
		ErrorStatus: task.ErrorStatuses[m.errorIdx],
		Remarks:     m.remarks.Value(),
	}
	return m, func() tea.Msg {
		if _, err := backend.SubmitReview(context.Background(), id, req); err != nil {
			return msgs.ReviewFailedMsg{Err: err}
		}
		return msgs.ReviewSavedMsg{}
	}
}

func errorMessage(err error) string {
	if apiErr, ok := err.(*api.Error); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "Failed to submit review"
}

// View implements tea.Model.
func (m ReviewFormModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Review Task — " + m.task.CompanyName))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render("#" + string(m.task.ID) + " • " + m.task.DocumentType))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(fieldRating, "Quality Rating"))
	b.WriteString("\n")
	b.WriteString("  " + styles.RatingStyle.Render(components.Stars(m.rating)))
	b.WriteString("\n")
	b.WriteString("  " + styles.SubtleStyle.Render(ratingHints[m.rating]))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(fieldErrorStatus, "Error / Query Status"))
	b.WriteString("\n")
	var options []string
	for i, es := range task.ErrorStatuses {
		label := "  " + string(es) + "  "
		if i == m.errorIdx {
			label = styles.SelectedStyle.Render("[" + string(es) + "]")
		} else {
			label = styles.SubtleStyle.Render(label)
		}
		options = append(options, label)
	}
	b.WriteString("  " + strings.Join(options, " "))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(fieldRemarks, "Remarks (Optional)"))
	b.WriteString("\n")
	b.WriteString(m.remarks.View())
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(styles.SubtleStyle.Render("Saving..."))
	case m.errMsg != "":
		b.WriteString(styles.ErrorStyle.Render("Error: " + m.errMsg))
	}

	form := styles.BoxStyle.Render(b.String())
	content := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, form)

	statusItems := []string{"Tab Next Field", "←→ Adjust", "Ctrl+S Submit", "Esc Cancel"}
	if m.busy {
		statusItems = []string{"Saving..."}
	}
	return content + "\n" + components.NewStatusBar().Render(m.width, statusItems)
}

func (m ReviewFormModel) renderField(f formField, label string) string {
	if m.focus == f {
		return styles.SelectedStyle.Render("▸ " + label)
	}
	return styles.SubtleStyle.Render("  " + label)
}

// SetSize updates the model dimensions.
func (m *ReviewFormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Busy reports whether a submission is in flight.
func (m ReviewFormModel) Busy() bool {
	return m.busy
}

// Rating returns the selected rating.
func (m ReviewFormModel) Rating() int {
	return m.rating
}

// ErrorStatus returns the selected error classification.
func (m ReviewFormModel) ErrorStatus() task.ErrorStatus {
	return task.ErrorStatuses[m.errorIdx]
}

// Remarks returns the remarks text.
func (m ReviewFormModel) Remarks() string {
	return m.remarks.Value()
}

// ErrMsg returns the surfaced submission error, if any.
func (m ReviewFormModel) ErrMsg() string {
	return m.errMsg
}

// Task returns the task under review.
func (m ReviewFormModel) Task() task.Task {
	return m.task
}
