package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles control the dropdown's rendering. The parent derives them from its
// theme; DefaultStyles is a neutral fallback.
type Styles struct {
	Input     lipgloss.Style
	List      lipgloss.Style
	Item      lipgloss.Style
	Highlight lipgloss.Style
	Message   lipgloss.Style
}

// DefaultStyles returns an unthemed style set.
func DefaultStyles() Styles {
	return Styles{
		Input:     lipgloss.NewStyle(),
		List:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), false, false, false, true).PaddingLeft(1),
		Item:      lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle().Reverse(true),
		Message:   lipgloss.NewStyle().Faint(true),
	}
}

// View renders the input line plus, when open, the result list beneath it.
func (m Model[T]) View(st Styles, width int) string {
	var b strings.Builder
	b.WriteString(st.Input.Render(m.input.View()))

	switch m.State() {
	case StateClosed:
		return b.String()
	case StateLoading:
		b.WriteString("\n")
		b.WriteString(st.List.Render(st.Message.Render(m.loadingMessage)))
	case StateEmpty:
		b.WriteString("\n")
		b.WriteString(st.List.Render(st.Message.Render(m.emptyMessage)))
	case StateLoaded:
		b.WriteString("\n")
		b.WriteString(st.List.Render(m.renderRows(st, width)))
	}
	return b.String()
}

func (m Model[T]) renderRows(st Styles, width int) string {
	// Keep the highlighted row inside the visible window.
	start := 0
	if m.highlight >= m.maxVisible {
		start = m.highlight - m.maxVisible + 1
	}
	end := start + m.maxVisible
	if end > len(m.results) {
		end = len(m.results)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := m.renderItem(m.results[i])
		if width > 4 && lipgloss.Width(row) > width-4 {
			row = truncateRow(row, width-4)
		}
		if i == m.highlight {
			rows = append(rows, st.Highlight.Render(row))
		} else {
			rows = append(rows, st.Item.Render(row))
		}
	}
	return strings.Join(rows, "\n")
}

func truncateRow(row string, limit int) string {
	runes := []rune(row)
	if len(runes) <= limit {
		return row
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}
