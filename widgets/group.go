package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/choices/group"
)

// KeyMap declares the widget's bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	ToggleAll  key.Binding
	ClearQuery key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "move up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "move down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle")),
		ToggleAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		ClearQuery: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
	}
}

// row is one focusable line: either the aggregate control or an item.
type row struct {
	aggregate bool
	item      group.Item
}

// Group renders a choice group and forwards raw toggle events to its
// controller. All selection logic lives in the controller; the widget only
// owns cursor, focus, width, and the filter query.
type Group struct {
	g       *group.Group
	keys    KeyMap
	helper  string
	cursor  int
	width   int
	columns int
	query   string
	focused bool
}

func NewGroup(g *group.Group) *Group {
	w := &Group{g: g, keys: DefaultKeyMap(), columns: 1, focused: true}
	w.clampCursor()
	return w
}

// Controller exposes the underlying selection controller.
func (w *Group) Controller() *group.Group {
	if w == nil {
		return nil
	}
	return w.g
}

func (w *Group) SetKeyMap(k KeyMap) {
	if w == nil {
		return
	}
	w.keys = k
}

// SetHelper sets the helper text rendered beneath the group. Hosts
// typically pair it with the controller's HelperID.
func (w *Group) SetHelper(s string) {
	if w == nil {
		return
	}
	w.helper = s
}

func (w *Group) SetWidth(n int) {
	if w == nil {
		return
	}
	w.width = n
}

// SetColumns lays item rows out in n columns. Only the default
// presentation uses columns; selector and filter rendering ignore it.
func (w *Group) SetColumns(n int) {
	if w == nil {
		return
	}
	if n < 1 {
		n = 1
	}
	w.columns = n
}

func (w *Group) Focus() {
	if w != nil {
		w.focused = true
	}
}

func (w *Group) Blur() {
	if w != nil {
		w.focused = false
	}
}

func (w *Group) Focused() bool {
	return w != nil && w.focused
}

func (w *Group) Cursor() int {
	if w == nil {
		return 0
	}
	return w.cursor
}

func (w *Group) Query() string {
	if w == nil {
		return ""
	}
	return w.query
}

// SetQuery narrows visible items for the filter presentation. Other
// presentations ignore the query.
func (w *Group) SetQuery(q string) {
	if w == nil {
		return
	}
	w.query = q
	w.clampCursor()
}

func (w *Group) CursorUp() {
	w.moveCursor(-1)
}

func (w *Group) CursorDown() {
	w.moveCursor(1)
}

// Toggle acts on the row under the cursor: the aggregate control toggles
// all/none, an item forwards (key, nextChecked) through the shared
// per-render context. Disabled items do not toggle.
func (w *Group) Toggle() {
	if w == nil {
		return
	}
	rows := w.rows()
	if len(rows) == 0 || w.cursor < 0 || w.cursor >= len(rows) {
		return
	}
	r := rows[w.cursor]
	if r.aggregate {
		w.g.ToggleAggregate()
		return
	}
	if r.item.Disabled {
		return
	}
	ctx := w.g.Context()
	if ctx.Input == group.InputRadio {
		ctx.OnChange(r.item.Key, true)
		return
	}
	ctx.OnChange(r.item.Key, !ctx.Value.Contains(r.item.Key))
}

func (w *Group) Init() tea.Cmd {
	return nil
}

func (w *Group) Update(msg tea.Msg) tea.Cmd {
	if w == nil {
		return nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
	case tea.KeyMsg:
		if !w.focused {
			return nil
		}
		switch {
		case key.Matches(msg, w.keys.Up):
			w.CursorUp()
		case key.Matches(msg, w.keys.Down):
			w.CursorDown()
		case key.Matches(msg, w.keys.Toggle):
			w.Toggle()
		case key.Matches(msg, w.keys.ToggleAll) && w.g.AggregateEnabled():
			w.g.ToggleAggregate()
		case key.Matches(msg, w.keys.ClearQuery) && w.isFilter():
			w.SetQuery("")
		default:
			if !w.isFilter() {
				break
			}
			s := msg.String()
			if s == "backspace" {
				if len(w.query) > 0 {
					w.SetQuery(w.query[:len(w.query)-1])
				}
				break
			}
			if isPrintableASCIIKey(s) {
				w.SetQuery(w.query + s)
			}
		}
	}
	return nil
}

func (w *Group) View() string {
	if w == nil {
		return ""
	}
	var lines []string
	if title := strings.TrimSpace(w.g.Name()); title != "" {
		lines = append(lines, titleStyle.Render(title))
	}

	switch w.g.ItemKind() {
	case group.KindSelector:
		lines = append(lines, w.viewSelector()...)
	case group.KindFilter:
		lines = append(lines, w.viewFilter()...)
	default:
		lines = append(lines, w.viewDefault()...)
	}

	if strings.TrimSpace(w.helper) != "" {
		lines = append(lines, helperStyle.Render(w.helper))
	}
	return strings.Join(lines, "\n")
}

// HelpBindings returns the bindings relevant to the group's current shape,
// for footer rendering by the host.
func (w *Group) HelpBindings() []key.Binding {
	if w == nil {
		return nil
	}
	out := []key.Binding{w.keys.Up, w.keys.Down, w.keys.Toggle}
	if w.g.AggregateEnabled() {
		out = append(out, w.keys.ToggleAll)
	}
	if w.isFilter() {
		out = append(out, w.keys.ClearQuery)
	}
	return out
}

func (w *Group) isFilter() bool {
	return w.g.ItemKind() == group.KindFilter
}

func (w *Group) visibleItems() []group.Item {
	items := w.g.Items()
	if w.isFilter() {
		return VisibleItems(items, w.query)
	}
	return items
}

func (w *Group) rows() []row {
	var rows []row
	if w.g.AggregateEnabled() {
		rows = append(rows, row{aggregate: true})
	}
	for _, item := range w.visibleItems() {
		rows = append(rows, row{item: item})
	}
	return rows
}

func (w *Group) moveCursor(delta int) {
	if w == nil {
		return
	}
	rows := w.rows()
	if len(rows) == 0 {
		w.cursor = 0
		return
	}
	i := w.cursor
	for {
		i += delta
		if i < 0 || i >= len(rows) {
			return
		}
		if rows[i].aggregate || !rows[i].item.Disabled {
			w.cursor = i
			return
		}
	}
}

// clampCursor keeps the cursor in range and off disabled rows, searching
// forward first, then backward.
func (w *Group) clampCursor() {
	rows := w.rows()
	if len(rows) == 0 {
		w.cursor = 0
		return
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
	if w.cursor >= len(rows) {
		w.cursor = len(rows) - 1
	}
	focusable := func(r row) bool { return r.aggregate || !r.item.Disabled }
	if focusable(rows[w.cursor]) {
		return
	}
	for i := w.cursor + 1; i < len(rows); i++ {
		if focusable(rows[i]) {
			w.cursor = i
			return
		}
	}
	for i := w.cursor - 1; i >= 0; i-- {
		if focusable(rows[i]) {
			w.cursor = i
			return
		}
	}
}
