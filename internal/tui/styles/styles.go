// Package styles defines shared lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/timeline"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors
	warnColor      = lipgloss.Color("#D7AF5F") // Muted amber for warnings
	personColor    = lipgloss.Color("#8787AF") // Muted violet for people
	ratingColor    = lipgloss.Color("#D7AF5F") // Star rating

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for selected items in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// BoxStyle for panel borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondaryColor).
			Padding(1, 2)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// RatingStyle for star ratings
	RatingStyle = lipgloss.NewStyle().
			Foreground(ratingColor)

	// LatestStyle accents the newest timeline entry
	LatestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	toneStyles = map[timeline.Tone]lipgloss.Style{
		timeline.ToneCreated: lipgloss.NewStyle().Foreground(successColor),
		timeline.ToneSuccess: lipgloss.NewStyle().Foreground(successColor),
		timeline.ToneInfo:    lipgloss.NewStyle().Foreground(primaryColor),
		timeline.ToneWarn:    lipgloss.NewStyle().Foreground(warnColor),
		timeline.TonePerson:  lipgloss.NewStyle().Foreground(personColor),
		timeline.ToneNeutral: lipgloss.NewStyle().Foreground(secondaryColor),
	}

	iconGlyphs = map[timeline.Icon]string{
		timeline.IconDocument: "▣",
		timeline.IconCheck:    "✔",
		timeline.IconClock:    "◷",
		timeline.IconAlert:    "!",
		timeline.IconPerson:   "@",
		timeline.IconEdit:     "✎",
	}
)

// ToneStyle returns the style for a timeline tone category.
func ToneStyle(tone timeline.Tone) lipgloss.Style {
	if s, ok := toneStyles[tone]; ok {
		return s
	}
	return SubtleStyle
}

// IconGlyph returns the terminal glyph for a timeline icon category.
func IconGlyph(icon timeline.Icon) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}
