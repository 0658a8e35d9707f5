// Package demo is the showcase TUI for the choice-group widgets.
package demo

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/choices/group"
	"github.com/jask/choices/internal/config"
	"github.com/jask/choices/internal/fixtures"
	"github.com/jask/choices/widgets"
)

var (
	activeStoryStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#313244")).Foreground(lipgloss.Color("#b4befe")).Bold(true).Padding(0, 1)
	inactiveStoryStyle = lipgloss.NewStyle().Background(lipgloss.Color("#181825")).Foreground(lipgloss.Color("#7f849c")).Padding(0, 1)
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	refStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	footerKeyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#b4befe")).Bold(true)
	footerDescStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// App cycles through the story fixtures and drives one group widget at a
// time.
type App struct {
	cfg     config.Config
	stories []fixtures.Story
	idx     int
	w       *widgets.Group
	status  string
	width   int
	height  int
}

func New(cfg config.Config) *App {
	a := &App{cfg: cfg, stories: fixtures.Stories()}
	_, idx := fixtures.Find(cfg.Demo.Story)
	a.openStory(idx)
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab":
			a.openStory(a.idx + 1)
			return a, nil
		case "shift+tab":
			a.openStory(a.idx - 1)
			return a, nil
		}
	}
	if a.w != nil {
		return a, a.w.Update(msg)
	}
	return a, nil
}

func (a *App) View() string {
	if a.w == nil {
		return ""
	}
	width := a.cfg.UI.Width
	if width == 0 {
		width = a.width
	}
	if width == 0 {
		width = 64
	}

	var b strings.Builder
	b.WriteString(a.storyBar())
	b.WriteString("\n")
	b.WriteString(widgets.Box{Title: a.Story(), Content: a.w.View(), Focused: a.w.Focused()}.Render(width))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(a.status))
	b.WriteString(" ")
	b.WriteString(refStyle.Render("(" + a.w.Controller().HelperID() + ")"))
	b.WriteString("\n")
	b.WriteString(a.footerView())
	return b.String()
}

// Story returns the active story name.
func (a *App) Story() string {
	if len(a.stories) == 0 {
		return ""
	}
	return a.stories[a.idx].Name
}

// Widget exposes the active group widget.
func (a *App) Widget() *widgets.Group {
	return a.w
}

func (a *App) openStory(idx int) {
	if len(a.stories) == 0 {
		return
	}
	if idx < 0 {
		idx = len(a.stories) - 1
	}
	if idx >= len(a.stories) {
		idx = 0
	}
	a.idx = idx
	story := a.stories[idx]

	a.w = widgets.NewGroup(story.Build(a.notify))
	a.w.SetHelper(story.Helper)
	if story.Columns > 0 {
		a.w.SetColumns(story.Columns)
	}
	a.status = "Ready"
}

func (a *App) notify(v group.Value) {
	keys := v.Keys()
	if len(keys) == 0 {
		a.status = "onChange: (empty)"
		return
	}
	a.status = "onChange: " + strings.Join(keys, ", ")
}

func (a *App) storyBar() string {
	parts := make([]string, 0, len(a.stories))
	for i, s := range a.stories {
		style := inactiveStoryStyle
		if i == a.idx {
			style = activeStoryStyle
		}
		parts = append(parts, style.Render(s.Name))
	}
	return strings.Join(parts, " ")
}

func (a *App) footerView() string {
	bindings := append(a.w.HelpBindings(),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next story")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
