package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/mise/internal/notify"
	"github.com/five82/mise/internal/router"
)

// renderMain renders the header, the mounted page, toasts and the footer.
func (m Model) renderMain() string {
	var b strings.Builder

	header := m.renderHeader()
	footer := m.renderFooter()
	toasts := m.renderToasts()

	b.WriteString(header)
	b.WriteString("\n\n")

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	if toasts != "" {
		bodyHeight -= lipgloss.Height(toasts)
	}
	v := m.viewContext()
	v.width = m.width - 2
	v.height = maxInt(bodyHeight, 3)

	body := ""
	if m.page != nil {
		body = m.page.View(v)
	}
	body = lipgloss.NewStyle().
		Width(v.width).
		Height(v.height).
		MaxHeight(v.height).
		PaddingLeft(1).
		Render(body)
	b.WriteString(body)
	b.WriteString("\n")

	if toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}
	b.WriteString(footer)
	return b.String()
}

// renderHeader renders the logo, the nav bar and the theme indicator, with a
// spinner while a page request is in flight. The active link is highlighted;
// nothing is highlighted on the not-found page.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	compact := m.width < LayoutCompactWidth

	parts := []string{styles.Logo.Background(lipgloss.Color(m.theme.Surface)).Render("mise")}
	for i, link := range m.router.Links() {
		label := navLabel(i, link.Route, compact)
		if link.Active {
			parts = append(parts, styles.NavActive.Render(label))
		} else {
			parts = append(parts, styles.NavIdle.Render(label))
		}
	}
	left := strings.Join(parts, styles.Surface.Render(" "))

	status := "theme: " + m.theme.Name
	if m.store.Snapshot().Loading {
		status = m.spinner.View() + " working  " + status
	}
	right := styles.Header.Foreground(lipgloss.Color(m.theme.Muted)).Render(status)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).Render(left + styles.Surface.Render(strings.Repeat(" ", gap)) + right)
}

func navLabel(i int, r router.Route, compact bool) string {
	num := string(rune('1' + i))
	if compact {
		return num
	}
	return num + " " + titleCase(string(r))
}

// renderFooter renders the go-to prompt or the key hints of the page.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.prompting {
		return styles.Footer.Width(m.width).Render(m.prompt.View())
	}

	var hints []string
	if m.page != nil {
		for _, b := range m.page.Bindings() {
			if b.Enabled() {
				hints = append(hints, helpHint(styles, b.Binding))
			}
		}
	}
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints, helpHint(styles, b))
	}

	// Keep the footer on one line; hints that do not fit are left to the
	// help overlay.
	line := ""
	for _, h := range hints {
		next := h
		if line != "" {
			next = line + "  " + h
		}
		if lipgloss.Width(next) > m.width-2 {
			continue
		}
		line = next
	}
	return styles.Footer.Width(m.width).Render(line)
}

func helpHint(styles Styles, b key.Binding) string {
	h := b.Help()
	return styles.Key.Render(h.Key) + " " + styles.MutedText.Render(h.Desc)
}

// renderToasts renders visible toasts, oldest first.
func (m Model) renderToasts() string {
	visible := m.toasts.Visible()
	if len(visible) == 0 {
		return ""
	}
	styles := m.theme.Styles()
	lines := make([]string, 0, len(visible))
	for _, t := range visible {
		var style lipgloss.Style
		var icon string
		switch t.Kind {
		case notify.Success:
			style, icon = styles.SuccessText, "✓"
		case notify.Error:
			style, icon = styles.DangerText, "!"
		default:
			style, icon = styles.InfoText, "i"
		}
		lines = append(lines, " "+style.Render(icon+" "+truncate(t.Message, m.width-6)))
	}
	return strings.Join(lines, "\n")
}
