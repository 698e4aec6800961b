package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay. The page section lists the mounted
// page's own bindings.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"1-6", "Home/Generate/Cookbook/Pantry/Planner/Settings"},
				{"tab", "Next page"},
				{"shift+tab", "Previous page"},
				{":", "Go to page by name"},
			},
		},
	}

	if m.page != nil {
		var items []helpItem
		for _, b := range m.page.Bindings() {
			h := b.Help()
			items = append(items, helpItem{h.Key, h.Desc})
		}
		if len(items) > 0 {
			sections = append(sections, helpSection{title: "This page", items: items})
		}
	}

	sections = append(sections, helpSection{
		title: "General",
		items: []helpItem{
			{"T", "Toggle theme"},
			{"esc", "Close dialog"},
			{"?", "Toggle help"},
			{"q/ctrl+c", "Quit"},
		},
	})

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(styles.Key.Width(12).Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(64)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
