package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/session"
	"taskdeck/internal/task"
	"taskdeck/internal/tui/components"
	"taskdeck/internal/tui/msgs"
	"taskdeck/internal/tui/styles"
)

// MenuItem represents a menu option in the home view.
type MenuItem struct {
	Label       string
	Shortcut    string
	Description string
	Disabled    bool
}

// HomeModel is the model for the home view landing screen.
type HomeModel struct {
	sess    session.Session
	items   []MenuItem
	cursor  int
	width   int
	height  int
	notice  string
	idInput textinput.Model
	asking  bool // true while prompting for a task id
}

// NewHomeModel creates the landing screen for the given session. The
// review-queue entry is disabled for sessions without an elevated role.
func NewHomeModel(sess session.Session) HomeModel {
	ti := textinput.New()
	ti.Placeholder = "task id"
	ti.CharLimit = 32
	ti.Width = 20

	return HomeModel{
		sess: sess,
		items: []MenuItem{
			{Label: "Review Queue", Shortcut: "r", Description: "Review completed tasks", Disabled: !sess.CanReview()},
			{Label: "Open Task", Shortcut: "t", Description: "Look up a task by id"},
			{Label: "Quit", Shortcut: "q"},
		},
		idInput: ti,
	}
}

// Init implements tea.Model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.asking {
			return m.updateAsking(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m.selectReviews()
		case "t":
			return m.startAsking()
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			return m.selectCurrentItem()
		}
	}
	return m, nil
}

func (m HomeModel) updateAsking(msg tea.KeyMsg) (HomeModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.asking = false
		m.idInput.Reset()
		return m, nil
	case "enter":
		id := strings.TrimSpace(m.idInput.Value())
		if id == "" {
			return m, nil
		}
		m.asking = false
		m.idInput.Reset()
		return m, func() tea.Msg { return msgs.GoToTaskMsg{ID: task.ID(id)} }
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.idInput, cmd = m.idInput.Update(msg)
	return m, cmd
}

func (m HomeModel) selectCurrentItem() (HomeModel, tea.Cmd) {
	switch m.items[m.cursor].Shortcut {
	case "r":
		return m.selectReviews()
	case "t":
		return m.startAsking()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m HomeModel) selectReviews() (HomeModel, tea.Cmd) {
	if !m.sess.CanReview() {
		m.notice = "Review queue requires an admin or manager role."
		return m, nil
	}
	m.notice = ""
	return m, func() tea.Msg { return msgs.GoToReviewsMsg{} }
}

func (m HomeModel) startAsking() (HomeModel, tea.Cmd) {
	m.asking = true
	m.notice = ""
	m.idInput.Focus()
	return m, textinput.Blink
}

// View implements tea.Model.
func (m HomeModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("T A S K D E C K")
	tagline := styles.SubtleStyle.Render("Task review dashboard")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)
	taglineLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tagline)

	var menuLines []string
	for i, item := range m.items {
		line := "[" + item.Shortcut + "] " + item.Label
		if item.Description != "" {
			line += "  " + styles.SubtleStyle.Render(item.Description)
		}
		switch {
		case item.Disabled:
			line = styles.SubtleStyle.Render("[" + item.Shortcut + "] " + item.Label + "  (admin/manager only)")
		case i == m.cursor:
			line = styles.SelectedStyle.Render("["+item.Shortcut+"] "+item.Label) + "  " + styles.SubtleStyle.Render(item.Description)
		default:
			line = styles.SubtleStyle.Render(line)
		}
		menuLines = append(menuLines, line)
	}
	menu := strings.Join(menuLines, "\n")

	statusBarHeight := 1
	contentHeight := 4 + len(menuLines)
	if m.asking {
		contentHeight += 2
	}
	if m.notice != "" {
		contentHeight += 2
	}
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n")
	b.WriteString(taglineLine)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menu))

	if m.asking {
		b.WriteString("\n\n")
		prompt := "Open task: " + m.idInput.View()
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, prompt))
	}
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.ErrorStyle.Render(m.notice)))
	}

	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	statusItems := []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	if m.asking {
		statusItems = []string{"Enter Open", "Esc Cancel"}
	}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// SetSize updates the model dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetNotice sets a message to display, used when another view bounces the
// user back here.
func (m *HomeModel) SetNotice(notice string) {
	m.notice = notice
}

// Notice returns the current notice message.
func (m HomeModel) Notice() string {
	return m.notice
}

// Cursor returns the current cursor position.
func (m HomeModel) Cursor() int {
	return m.cursor
}
