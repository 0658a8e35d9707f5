package widgets

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helperStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)

	markCheckedStyle   = lipgloss.NewStyle().Foreground(colorChecked)
	markUncheckedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	markMixedStyle     = lipgloss.NewStyle().Foreground(colorWarning)

	labelStyle         = lipgloss.NewStyle().Foreground(colorText)
	labelDisabledStyle = lipgloss.NewStyle().Foreground(colorDisabled)
	metaStyle          = lipgloss.NewStyle().Foreground(colorSubtext0)

	cursorRowStyle = lipgloss.NewStyle().Background(colorSurface0).Bold(true)

	selectorOnStyle  = lipgloss.NewStyle().Background(colorSurface1).Foreground(colorAccent).Bold(true).Padding(0, 1)
	selectorOffStyle = lipgloss.NewStyle().Background(colorMantle).Foreground(colorSubtext1).Padding(0, 1)

	chipOnStyle  = lipgloss.NewStyle().Background(colorSurface1).Foreground(colorGreen).Padding(0, 1)
	chipOffStyle = lipgloss.NewStyle().Background(colorMantle).Foreground(colorMuted).Padding(0, 1)

	queryLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	queryInputStyle = lipgloss.NewStyle().Foreground(colorText)
)
