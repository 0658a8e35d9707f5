package widgets

import "github.com/charmbracelet/lipgloss"

// Box frames a rendered group with a titled border. Focused boxes get the
// accent border color.
type Box struct {
	Title   string
	Content string
	Focused bool
}

func (b Box) Render(width int) string {
	if width <= 0 {
		return ""
	}
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface2).
		Padding(0, 1).
		Width(width - 2)
	if b.Focused {
		border = border.BorderForeground(colorFocus)
	}
	content := b.Content
	if b.Title != "" {
		content = titleStyle.Render(b.Title) + "\n" + content
	}
	return border.Render(content)
}
