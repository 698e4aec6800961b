package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mise/internal/api"
	"github.com/five82/mise/internal/notify"
	"github.com/five82/mise/internal/state"
)

var settingsDiets = []string{"None", "Vegetarian", "Vegan", "Gluten-Free", "Keto"}

type settingsSavedMsg struct {
	pageMsg
	err error
}

// settingsPage edits the default diet. The choice is applied locally before
// the save and is not rolled back if the save fails.
type settingsPage struct {
	env    pageEnv
	load   loadState
	diet   int
	saving bool
}

func (p *settingsPage) Mount(env pageEnv) tea.Cmd {
	p.env = env
	p.load.start("Loading Settings...")
	env.busy(true)
	return env.refreshUser()
}

func (p *settingsPage) Unmount() {}

func (p *settingsPage) Capturing() bool { return false }

func (p *settingsPage) Bindings() []binding {
	if !p.load.ready() {
		return nil
	}
	save := bind("save", "Save settings", "s", "enter")
	save.SetEnabled(!p.saving)
	return []binding{
		bind("next-diet", "Next diet", "l", "right"),
		bind("prev-diet", "Previous diet", "h", "left"),
		save,
	}
}

func (p *settingsPage) Handle(action string) tea.Cmd {
	switch action {
	case "next-diet":
		p.diet = (p.diet + 1) % len(settingsDiets)
	case "prev-diet":
		p.diet = (p.diet - 1 + len(settingsDiets)) % len(settingsDiets)
	case "save":
		return p.save()
	}
	return nil
}

func (p *settingsPage) save() tea.Cmd {
	if p.saving {
		return nil
	}
	diet := settingsDiets[p.diet]
	prefs := p.env.store.Snapshot().User.Preferences
	prefs.DefaultDiet = diet
	p.env.store.Apply(state.SetPreferences(prefs))
	p.saving = true

	env := p.env
	return func() tea.Msg {
		err := env.backend.SavePreferences(env.ctx, api.Preferences{DefaultDiet: diet})
		return settingsSavedMsg{pageMsg: pageMsg{env.token}, err: err}
	}
}

func (p *settingsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case userRefreshedMsg:
		cmd := p.load.handleRefresh(p.env, msg, "Failed to load settings.")
		p.diet = dietIndex(settingsDiets, p.env.store.Snapshot().User.Preferences.DefaultDiet)
		return cmd

	case settingsSavedMsg:
		p.saving = false
		if msg.err != nil {
			return p.env.failure("Save Failed", msg.err)
		}
		return toast("Settings saved!", notify.Success)
	}
	return nil
}

// dietIndex finds diet in options, ignoring case. Unknown values select the
// first option.
func dietIndex(options []string, diet string) int {
	for i, d := range options {
		if strings.EqualFold(d, strings.TrimSpace(diet)) {
			return i
		}
	}
	return 0
}

func (p *settingsPage) View(v viewContext) string {
	var b strings.Builder
	b.WriteString(renderPageTitle(v, "Settings", ""))
	b.WriteString("\n\n")

	if !p.load.ready() {
		b.WriteString(p.load.render(v))
		return b.String()
	}

	var body strings.Builder
	body.WriteString(v.styles.Text.Bold(true).Render("Preferences"))
	body.WriteString("\n\n")
	body.WriteString(v.styles.MutedText.Render(padRight("Default Diet", 16)))
	for i, d := range settingsDiets {
		if i == p.diet {
			body.WriteString(v.styles.Selected.Render(" " + d + " "))
		} else {
			body.WriteString(v.styles.FaintText.Render(" " + d + " "))
		}
	}
	body.WriteString("\n")
	body.WriteString(v.styles.MutedText.Render(padRight("Theme", 16)))
	body.WriteString(v.styles.Text.Render(v.theme.Name))
	body.WriteString(v.styles.FaintText.Render("  (T toggles)"))
	body.WriteString("\n")
	if id := v.snapshot.User.ID; id != "" {
		body.WriteString(v.styles.MutedText.Render(padRight("Session", 16)))
		body.WriteString(v.styles.FaintText.Render(id))
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(renderButton("s", ternary(p.saving, "Saving...", "Save Settings"), v.styles.Button))

	b.WriteString(v.styles.Card.Width(maxInt(v.width-4, 30)).Render(body.String()))
	return b.String()
}
