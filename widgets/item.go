package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/choices/group"
)

func (w *Group) viewDefault() []string {
	rows := w.rows()
	value := w.g.CurrentValue()

	var lines []string
	indent := ""
	offset := 0
	if len(rows) > 0 && rows[0].aggregate {
		lines = append(lines, w.renderAggregateRow(w.cursor == 0))
		if w.g.AggregateIndented() {
			indent = "  "
		}
		offset = 1
	}

	itemLines := make([]string, 0, len(rows)-offset)
	for i, r := range rows[offset:] {
		itemLines = append(itemLines, w.renderItemRow(r.item, value, w.cursor == i+offset, indent))
	}
	if w.columns > 1 {
		return append(lines, splitColumns(itemLines, w.columns)...)
	}
	return append(lines, itemLines...)
}

func (w *Group) renderAggregateRow(isCursor bool) string {
	var mark string
	switch w.g.Aggregate() {
	case group.AggregateAll:
		mark = markCheckedStyle.Render("[x]")
	case group.AggregateSome:
		mark = markMixedStyle.Render("[-]")
	default:
		mark = markUncheckedStyle.Render("[ ]")
	}
	line := mark + " " + labelStyle.Render(w.g.AggregateLabelText())
	return w.styleRow(line, isCursor)
}

func (w *Group) renderItemRow(item group.Item, value group.Value, isCursor bool, indent string) string {
	checked := value.Contains(item.Key)

	var mark string
	if w.g.Input() == group.InputRadio {
		if checked {
			mark = markCheckedStyle.Render("(o)")
		} else {
			mark = markUncheckedStyle.Render("( )")
		}
	} else {
		if checked {
			mark = markCheckedStyle.Render("[x]")
		} else {
			mark = markUncheckedStyle.Render("[ ]")
		}
	}

	ls := labelStyle
	if item.Disabled {
		ls = labelDisabledStyle
	}
	line := indent + mark + " " + ls.Render(item.Label)
	if strings.TrimSpace(item.Meta) != "" {
		line += metaStyle.Render(" - " + strings.TrimSpace(item.Meta))
	}
	return w.styleRow(line, isCursor && !item.Disabled)
}

func (w *Group) viewSelector() []string {
	value := w.g.CurrentValue()
	rows := w.rows()
	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		style := selectorOffStyle
		if value.Contains(r.item.Key) {
			style = selectorOnStyle
		}
		if r.item.Disabled {
			style = selectorOffStyle.Foreground(colorDisabled)
		}
		prefix := "  "
		if w.cursor == i && !r.item.Disabled {
			prefix = "> "
		}
		lines = append(lines, prefix+style.Render(r.item.Label))
	}
	return lines
}

func (w *Group) viewFilter() []string {
	queryValue := queryLabelStyle.Render("(type to filter)")
	if strings.TrimSpace(w.query) != "" {
		queryValue = queryInputStyle.Render(w.query)
	}
	lines := []string{queryLabelStyle.Render("Filter: ") + queryValue}

	value := w.g.CurrentValue()
	rows := w.rows()
	chips := make([]string, 0, len(rows))
	for i, r := range rows {
		style := chipOffStyle
		suffix := " +"
		if value.Contains(r.item.Key) {
			style = chipOnStyle
			suffix = " x"
		}
		if r.item.Disabled {
			style = chipOffStyle.Foreground(colorDisabled)
			suffix = ""
		}
		chip := style.Render(r.item.Label + suffix)
		if w.cursor == i && !r.item.Disabled {
			chip = cursorRowStyle.Render(">") + chip
		}
		chips = append(chips, chip)
	}
	if len(chips) > 0 {
		lines = append(lines, strings.Join(chips, " "))
	}
	return lines
}

func (w *Group) styleRow(content string, isCursor bool) string {
	if isCursor {
		content = cursorRowStyle.Render(padStyledLine(content, w.width))
	} else if w.width > 0 {
		content = padStyledLine(content, w.width)
	}
	return content
}

func padStyledLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > widest {
			widest = w
		}
	}
	return widest
}

// splitColumns lays item lines out top-to-bottom, then across.
func splitColumns(lines []string, columns int) []string {
	if columns <= 1 || len(lines) <= 1 {
		return lines
	}
	per := (len(lines) + columns - 1) / columns
	cols := make([]string, 0, columns)
	for i := 0; i < len(lines); i += per {
		end := i + per
		if end > len(lines) {
			end = len(lines)
		}
		col := lines[i:end]
		gutter := maxLineWidth(col) + 2
		padded := make([]string, len(col))
		for j, line := range col {
			padded[j] = padStyledLine(line, gutter)
		}
		cols = append(cols, strings.Join(padded, "\n"))
	}
	return strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cols...), "\n")
}
