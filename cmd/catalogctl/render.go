package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"libadmin/internal/listview"
)

var (
	headerStyle      = lipgloss.NewStyle().Bold(true)
	activeStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	placeholderStyle = lipgloss.NewStyle().Faint(true)
	tableBoxStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).Padding(0, 1)
	noticeStyle      = lipgloss.NewStyle().Italic(true)
)

const columnGap = "  "

// renderTable draws t with a checkbox column. checked reports the state of
// a row; nil draws every box empty.
func renderTable(t listview.Table, checked func(id string) bool) string {
	head := []string{"[ ]"}
	for _, h := range t.Headers {
		title := h.Title
		if h.Arrow != "" {
			title += " " + h.Arrow
		}
		head = append(head, title)
	}

	if t.Empty != nil {
		body := noticeStyle.Render(t.Empty.Text)
		return tableBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, renderLine(head, widths([][]string{head}), headerStyles(t)), body))
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		box := "[ ]"
		if checked != nil && checked(r.ID) {
			box = "[x]"
		}
		line := []string{box}
		for _, c := range r.Cells {
			line = append(line, c.Text)
		}
		rows = append(rows, line)
	}
	w := widths(append([][]string{head}, rows...))

	lines := []string{renderLine(head, w, headerStyles(t))}
	for i, r := range t.Rows {
		styles := make([]lipgloss.Style, len(rows[i]))
		for j := range styles {
			styles[j] = lipgloss.NewStyle()
		}
		for j, c := range r.Cells {
			if c.Placeholder {
				styles[j+1] = placeholderStyle
			}
		}
		lines = append(lines, renderLine(rows[i], w, styles))
	}
	return tableBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func headerStyles(t listview.Table) []lipgloss.Style {
	styles := []lipgloss.Style{headerStyle}
	for _, h := range t.Headers {
		if h.Active {
			styles = append(styles, activeStyle)
			continue
		}
		styles = append(styles, headerStyle)
	}
	return styles
}

func widths(lines [][]string) []int {
	var w []int
	for _, line := range lines {
		for i, cell := range line {
			if i >= len(w) {
				w = append(w, 0)
			}
			if n := lipgloss.Width(cell); n > w[i] {
				w[i] = n
			}
		}
	}
	return w
}

func renderLine(cells []string, w []int, styles []lipgloss.Style) string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		pad := strings.Repeat(" ", w[i]-lipgloss.Width(cell))
		if i < len(styles) {
			cell = styles[i].Render(cell)
		}
		out[i] = cell + pad
	}
	return strings.TrimRight(strings.Join(out, columnGap), " ")
}

// renderFields draws a detail view as aligned label/value lines.
func renderFields(labels map[string]string, fields []listview.Cell) string {
	w := 0
	for _, f := range fields {
		if n := lipgloss.Width(labels[f.Column]); n > w {
			w = n
		}
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		label := labels[f.Column]
		value := f.Text
		if f.Placeholder {
			value = placeholderStyle.Render(value)
		}
		lines = append(lines, headerStyle.Render(label)+strings.Repeat(" ", w-lipgloss.Width(label))+columnGap+value)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
