package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Background(colorMantle).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerMetaStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	statusDragBarStyle = lipgloss.NewStyle().
				Foreground(colorWarn).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
	footerKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	footerDescStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)

	paneTitleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	paneHintStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	draggedStyle   = lipgloss.NewStyle().Foreground(colorBorder).Italic(true)
	hoverStyle     = lipgloss.NewStyle().Background(colorSurface1).Foreground(colorText)
	resetStyle     = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	resetIdleStyle = lipgloss.NewStyle().Foreground(colorBorder)
	flashStyle     = lipgloss.NewStyle().Background(colorSuccess).Foreground(colorMantle).Bold(true)
)
