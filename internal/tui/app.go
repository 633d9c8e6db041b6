// Package tui implements the terminal dashboard.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/session"
	"taskdeck/internal/tui/msgs"
	"taskdeck/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewHome View = iota
	ViewReviews
	ViewTaskDetail
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	backend views.Backend
	sess    session.Session

	home    views.HomeModel
	reviews views.ReviewsModel
	detail  views.TaskDetailModel
}

// Run starts the TUI application against the given backend and session.
func Run(backend views.Backend, sess session.Session) error {
	p := tea.NewProgram(
		NewModel(backend, sess),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// NewModel creates the root model starting on the home view.
func NewModel(backend views.Backend, sess session.Session) Model {
	return Model{
		currentView: ViewHome,
		backend:     backend,
		sess:        sess,
		home:        views.NewHomeModel(sess),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.home.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home.SetSize(msg.Width, msg.Height)
		m.reviews.SetSize(msg.Width, msg.Height)
		m.detail.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.GoToHomeMsg:
		m.currentView = ViewHome
		m.home = views.NewHomeModel(m.sess)
		m.home.SetSize(m.width, m.height)
		if msg.Notice != "" {
			m.home.SetNotice(msg.Notice)
		}
		return m, m.home.Init()

	case msgs.GoToReviewsMsg:
		m.currentView = ViewReviews
		m.reviews = views.NewReviewsModel(m.backend, m.sess)
		m.reviews.SetSize(m.width, m.height)
		return m, m.reviews.Init()

	case msgs.GoToTaskMsg:
		m.currentView = ViewTaskDetail
		m.detail = views.NewTaskDetailModel(m.backend, msg.ID)
		m.detail.SetSize(m.width, m.height)
		return m, m.detail.Init()
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.home, cmd = m.home.Update(msg)
	case ViewReviews:
		m.reviews, cmd = m.reviews.Update(msg)
	case ViewTaskDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case ViewReviews:
		return m.reviews.View()
	case ViewTaskDetail:
		return m.detail.View()
	default:
		return m.home.View()
	}
}
