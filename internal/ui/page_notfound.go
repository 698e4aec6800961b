package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mise/internal/api"
)

// notFoundPage is mounted for fragments that name no registered route.
type notFoundPage struct {
	err *api.Error
}

func (p *notFoundPage) Mount(pageEnv) tea.Cmd { return nil }

func (p *notFoundPage) Unmount() {}

func (p *notFoundPage) Update(tea.Msg) tea.Cmd { return nil }

func (p *notFoundPage) Handle(string) tea.Cmd { return nil }

func (p *notFoundPage) Bindings() []binding { return nil }

func (p *notFoundPage) Capturing() bool { return false }

func (p *notFoundPage) View(v viewContext) string {
	msg := "The page you're looking for doesn't exist."
	if p.err != nil {
		msg = p.err.Message
	}
	return v.styles.AccentText.Bold(true).Render("404") + "\n" +
		v.styles.Title.Render("Page Not Found") + "\n" +
		v.styles.MutedText.Render(msg)
}
