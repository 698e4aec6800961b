package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/mise/internal/api"
	"github.com/five82/mise/internal/state"
)

// userLoadedMsg carries the startup fetch of the user record. attempt
// discards results of superseded retries.
type userLoadedMsg struct {
	attempt int
	patch   api.UserPatch
	err     error
}

// loadUser fetches the user record for the current attempt. Nothing is
// routed until it succeeds.
func (m Model) loadUser() tea.Cmd {
	attempt := m.attempt
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		patch, err := backend.FetchUser(ctx)
		return userLoadedMsg{attempt: attempt, patch: patch, err: err}
	}
}

func (m Model) handleUserLoaded(msg userLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.attempt != m.attempt || m.started {
		return m, nil
	}
	if msg.err != nil {
		m.initErr = msg.err
		m.logger.Error("initialization failed", "base_url", m.baseURL, "error", msg.err)
		return m, nil
	}

	snap := m.store.Apply(state.MergeUser(msg.patch))
	if name := strings.TrimSpace(snap.User.Preferences.Theme); name != "" {
		m.theme = GetTheme(name)
	}
	m.started = true
	m.initErr = nil
	m.logger.Info("user loaded",
		"user", snap.User.ID,
		"recipes", len(snap.User.Cookbook),
		"pantry", len(snap.User.Pantry),
	)

	// The synthetic fragment change that routes the first page.
	cmd := m.resolve()
	return m, cmd
}

func (m Model) handleStartupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Retry) && m.initErr != nil && m.backend != nil:
		m.initErr = nil
		m.attempt++
		return m, m.loadUser()
	}
	return m, nil
}

// renderStartup renders the connecting screen or the fatal diagnostic.
func (m Model) renderStartup() string {
	styles := m.theme.Styles()
	var content string
	if m.initErr == nil {
		content = m.spinner.View() + " " + styles.MutedText.Render("Connecting to "+m.baseURL+"...")
	} else {
		width := minInt(m.width-8, 70)
		body := fmt.Sprintf(
			"Could not connect to the server at %s. Please ensure the backend is running and restart (r retries). Details: %s",
			m.baseURL, api.MessageOf(m.initErr),
		)
		content = styles.ErrorPanel.Width(width).Render(
			styles.DangerText.Render("Initialization Failed") + "\n\n" + wrap(body, width-4) +
				"\n\n" + styles.Key.Render("r") + styles.MutedText.Render(" retry   ") +
				styles.Key.Render("q") + styles.MutedText.Render(" quit"),
		)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// minInt returns the smaller of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
