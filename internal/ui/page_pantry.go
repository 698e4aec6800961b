package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mise/internal/notify"
	"github.com/five82/mise/internal/state"
)

type pantrySavedMsg struct {
	pageMsg
	seq  int
	prev []string
	err  error
}

// pantryPage edits the pantry list. Every add or remove is applied at once
// and the whole list is sent to the backend; a failed save restores the list
// as it was before the edit unless a newer edit has been sent since.
type pantryPage struct {
	env     pageEnv
	load    loadState
	input   textinput.Model
	editing bool
	cursor  int
	seq     int
}

func newPantryPage() *pantryPage {
	input := textinput.New()
	input.Placeholder = "e.g., olive oil, salt, pepper"
	input.CharLimit = 80
	return &pantryPage{input: input}
}

func (p *pantryPage) Mount(env pageEnv) tea.Cmd {
	p.env = env
	p.load.start("Loading Your Pantry...")
	env.busy(true)
	return env.refreshUser()
}

func (p *pantryPage) Unmount() {
	p.input.Blur()
	p.input.SetValue("")
}

func (p *pantryPage) Capturing() bool { return p.editing }

func (p *pantryPage) Bindings() []binding {
	if !p.load.ready() {
		return nil
	}
	bindings := []binding{bind("add", "Add item", "a")}
	if len(p.env.store.Snapshot().User.Pantry) > 0 {
		bindings = append(bindings,
			bind("down", "Down", "j", "down"),
			bind("up", "Up", "k", "up"),
			bind("remove", "Remove", "d", "x"),
		)
	}
	return bindings
}

func (p *pantryPage) Handle(action string) tea.Cmd {
	pantry := p.env.store.Snapshot().User.Pantry
	switch action {
	case "add":
		p.editing = true
		return p.input.Focus()
	case "down":
		p.cursor = clamp(p.cursor+1, len(pantry))
	case "up":
		p.cursor = clamp(p.cursor-1, len(pantry))
	case "remove":
		if len(pantry) > 0 {
			return p.remove(pantry[clamp(p.cursor, len(pantry))])
		}
	}
	return nil
}

func (p *pantryPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			p.editing = false
			p.input.Blur()
			return nil
		case "enter":
			p.editing = false
			p.input.Blur()
			return p.add(p.input.Value())
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd

	case userRefreshedMsg:
		cmd := p.load.handleRefresh(p.env, msg, "Failed to load pantry.")
		p.cursor = clamp(p.cursor, len(p.env.store.Snapshot().User.Pantry))
		return cmd

	case pantrySavedMsg:
		if msg.err != nil {
			if msg.seq == p.seq {
				snap := p.env.store.Apply(state.SetPantry(msg.prev))
				p.cursor = clamp(p.cursor, len(snap.User.Pantry))
			}
			return p.env.failure("Update Failed", msg.err)
		}
		p.input.SetValue("")
		return p.env.refreshUser()
	}

	if p.editing {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}
	return nil
}

// add appends item unless it is blank or already present.
func (p *pantryPage) add(item string) tea.Cmd {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil
	}
	snap := p.env.store.Snapshot()
	if snap.HasPantryItem(item) {
		return toast("Item already in pantry.", notify.Info)
	}
	return p.save(snap.User.Pantry, state.AddPantryItem(item))
}

// remove drops item. Removing an item that is not present sends nothing.
func (p *pantryPage) remove(item string) tea.Cmd {
	snap := p.env.store.Snapshot()
	found := false
	for _, existing := range snap.User.Pantry {
		if existing == item {
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	return p.save(snap.User.Pantry, state.RemovePantryItem(item))
}

func (p *pantryPage) save(prev []string, edit state.Action) tea.Cmd {
	next := p.env.store.Apply(edit).User.Pantry
	if next == nil {
		next = []string{}
	}
	p.cursor = clamp(p.cursor, len(next))
	p.seq++

	env, seq := p.env, p.seq
	return func() tea.Msg {
		err := env.backend.SavePantry(env.ctx, next)
		return pantrySavedMsg{pageMsg: pageMsg{env.token}, seq: seq, prev: prev, err: err}
	}
}

func (p *pantryPage) View(v viewContext) string {
	var b strings.Builder
	b.WriteString(renderPageTitle(v, "My Pantry", "Items here will be prioritized when generating recipes."))
	b.WriteString("\n\n")

	if !p.load.ready() {
		b.WriteString(p.load.render(v))
		return b.String()
	}

	p.input.Width = maxInt(v.width-24, 16)
	b.WriteString(p.input.View())
	b.WriteString("  ")
	b.WriteString(renderButton("a", "Add Item", v.styles.Button))
	b.WriteString("\n\n")

	pantry := v.snapshot.User.Pantry
	if len(pantry) == 0 {
		b.WriteString(v.styles.MutedText.Render("Your pantry is empty."))
		return b.String()
	}

	width := maxInt(v.width-4, 20)
	start, end := listWindow(p.cursor, len(pantry), ListWindow)
	for i := start; i < end; i++ {
		if i == p.cursor && !p.editing {
			b.WriteString(v.styles.Selected.Width(width).Render("▸ " + pantry[i]))
		} else {
			b.WriteString("  " + v.styles.Text.Render(pantry[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}
