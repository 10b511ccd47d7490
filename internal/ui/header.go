package ui

import (
	"fmt"
	"strings"

	"github.com/mikaw/roost/internal/location"
)

// renderHeader renders the status bar: logo, working location, and any
// reconciliation problem.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{
		styles.Logo.Render("roost"),
	}

	if m.selection.Location.Valid() {
		parts = append(parts,
			styles.MutedText.Render("Location:")+" "+
				styles.Text.Render(m.selection.Location.DisplayName()))
		parts = append(parts, styles.FaintText.Render(sourceLabel(m.selection)))
	} else {
		parts = append(parts, styles.WarningText.Render("No location set"))
	}

	if m.locationErr != nil {
		errText := truncate(fmt.Sprintf("%v", m.locationErr), 60)
		parts = append(parts,
			styles.DangerText.Render("ERROR")+" "+
				styles.DangerText.Render(errText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// sourceLabel describes where the working location came from.
func sourceLabel(sel location.Selection) string {
	if sel.UserSelected {
		return "(your choice)"
	}
	switch sel.Source {
	case location.SourceSession:
		return "(this session)"
	case location.SourceBackend:
		return "(suggested)"
	default:
		return ""
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	var commands []cmd

	if m.focus == focusNone {
		commands = []cmd{
			{"Tab", "Search"},
			{"c", "Clear location"},
			{"T", m.theme.Name},
			{"?", "Help"},
			{"q", "Quit"},
		}
	} else {
		commands = []cmd{
			{"↑/↓", "Navigate"},
			{"Enter", "Select"},
			{"Esc", "Leave field"},
			{"Tab", "Next field"},
		}
	}

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			styles.AccentText.Render(c.key)+":"+styles.MutedText.Render(c.desc))
	}

	return styles.Footer.Width(m.width).Render(strings.Join(segments, "  "))
}

// renderChosen renders the most recently selected listing.
func (m Model) renderChosen(styles Styles) string {
	l := m.chosen
	line := styles.MutedText.Render("Selected:") + " " + styles.Text.Render(l.DisplayName())
	if l.Price > 0 {
		line += " " + styles.SuccessText.Render(fmt.Sprintf("%s %d", l.Currency, l.Price))
	}
	if l.Category != "" {
		line += " " + styles.FaintText.Render("["+l.Category+"]")
	}
	return line
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
