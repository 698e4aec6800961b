package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mise/internal/api"
	"github.com/five82/mise/internal/notify"
	"github.com/five82/mise/internal/router"
	"github.com/five82/mise/internal/state"
)

type recipeDeletedMsg struct {
	pageMsg
	id  string
	err error
}

// cookbookPage lists saved recipes. It always refetches the user on mount.
type cookbookPage struct {
	env    pageEnv
	load   loadState
	cursor int
}

func (p *cookbookPage) Mount(env pageEnv) tea.Cmd {
	p.env = env
	p.load.start("Loading Your Cookbook...")
	env.busy(true)
	return env.refreshUser()
}

func (p *cookbookPage) Unmount() {}

func (p *cookbookPage) Capturing() bool { return false }

func (p *cookbookPage) Bindings() []binding {
	if !p.load.ready() {
		return nil
	}
	if len(p.env.store.Snapshot().User.Cookbook) == 0 {
		return []binding{bind("generate", "Generate", "g")}
	}
	return []binding{
		bind("down", "Down", "j", "down"),
		bind("up", "Up", "k", "up"),
		bind("view", "View", "enter", "v"),
		bind("delete", "Delete", "d"),
	}
}

func (p *cookbookPage) Handle(action string) tea.Cmd {
	book := p.env.store.Snapshot().User.Cookbook
	switch action {
	case "generate":
		return navigate(router.Generate)
	case "down":
		p.cursor = clamp(p.cursor+1, len(book))
	case "up":
		p.cursor = clamp(p.cursor-1, len(book))
	case "view":
		if len(book) > 0 {
			return showModal(newRecipeModal(book[clamp(p.cursor, len(book))], DefaultWidth, DefaultHeight))
		}
	case "delete":
		if len(book) == 0 {
			return nil
		}
		recipe := book[clamp(p.cursor, len(book))]
		return showModal(confirmModal{
			title:     "Delete " + recipe.Name,
			question:  "Are you sure you want to delete this recipe?",
			onConfirm: p.deleteRecipe(recipe.ID),
		})
	}
	return nil
}

func (p *cookbookPage) deleteRecipe(id string) tea.Cmd {
	env := p.env
	return func() tea.Msg {
		err := env.backend.DeleteRecipe(env.ctx, id)
		return recipeDeletedMsg{pageMsg: pageMsg{env.token}, id: id, err: err}
	}
}

func (p *cookbookPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case userRefreshedMsg:
		cmd := p.load.handleRefresh(p.env, msg, "Failed to load cookbook.")
		p.cursor = clamp(p.cursor, len(p.env.store.Snapshot().User.Cookbook))
		return cmd

	case recipeDeletedMsg:
		if msg.err != nil {
			return p.env.failure("Delete Failed", msg.err)
		}
		snap := p.env.store.Apply(state.RemoveCookbook(msg.id))
		p.cursor = clamp(p.cursor, len(snap.User.Cookbook))
		return tea.Batch(toast("Recipe deleted.", notify.Success), p.env.refreshUser())
	}
	return nil
}

func (p *cookbookPage) View(v viewContext) string {
	var b strings.Builder
	b.WriteString(renderPageTitle(v, "My Cookbook", ""))
	b.WriteString("\n\n")

	if !p.load.ready() {
		b.WriteString(p.load.render(v))
		return b.String()
	}

	book := v.snapshot.User.Cookbook
	if len(book) == 0 {
		b.WriteString(v.styles.MutedText.Render("Your cookbook is empty. Generate and save a recipe!"))
		return b.String()
	}

	width := maxInt(v.width-4, 30)
	start, end := listWindow(p.cursor, len(book), ListWindow)
	for i := start; i < end; i++ {
		b.WriteString(renderCookbookRow(v, book[i], i == p.cursor, width))
		b.WriteString("\n")
	}
	if len(book) > end-start {
		b.WriteString(v.styles.FaintText.Render(fmt.Sprintf("%d of %d", p.cursor+1, len(book))))
	}
	return b.String()
}

func renderCookbookRow(v viewContext, r api.Recipe, selected bool, width int) string {
	name := padRight(truncate(r.Name, width/2), width/2)
	meta := renderBadges(v, r)
	if selected {
		return v.styles.Selected.Width(width).Render("▸ " + name + "  " + string(r.CalorieCount) + ternary(r.CalorieCount != "", " kcal", "") + "  " + r.TimeToCook)
	}
	return "  " + v.styles.Text.Render(name) + "  " + meta
}

// listWindow returns the [start, end) slice of n rows to show so that the
// cursor stays visible in a window of size rows.
func listWindow(cursor, n, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}
