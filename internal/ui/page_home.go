package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mise/internal/router"
)

// homePage greets the user with counts from the cached user record. It makes
// no requests.
type homePage struct{}

func (p *homePage) Mount(pageEnv) tea.Cmd { return nil }

func (p *homePage) Unmount() {}

func (p *homePage) Update(tea.Msg) tea.Cmd { return nil }

func (p *homePage) Capturing() bool { return false }

func (p *homePage) Bindings() []binding {
	return []binding{bind("start-creating", "Start creating", "enter", "s")}
}

func (p *homePage) Handle(action string) tea.Cmd {
	if action == "start-creating" {
		return navigate(router.Generate)
	}
	return nil
}

// homeCounts returns the number of saved recipes and pantry items.
func homeCounts(v viewContext) (recipes, pantry int) {
	return len(v.snapshot.User.Cookbook), len(v.snapshot.User.Pantry)
}

func (p *homePage) View(v viewContext) string {
	recipes, pantry := homeCounts(v)

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Welcome to your ") + v.styles.AccentText.Bold(true).Render("Recipe Universe"))
	b.WriteString("\n")
	b.WriteString(v.styles.MutedText.Render(wrap(
		"Your personal AI-powered culinary assistant. Get started by generating a new recipe, or manage your existing cookbook and pantry.",
		maxInt(v.width-2, 20),
	)))
	b.WriteString("\n\n")

	cardWidth := minInt(30, maxInt(v.width/2-2, 18))
	saved := v.styles.Card.Width(cardWidth).Render(
		v.styles.MutedText.Render("Recipes Saved") + "\n" + v.styles.SuccessText.Render(fmt.Sprintf("%d", recipes)),
	)
	items := v.styles.Card.Width(cardWidth).Render(
		v.styles.MutedText.Render("Pantry Items") + "\n" + v.styles.WarningText.Bold(true).Render(fmt.Sprintf("%d", pantry)),
	)
	b.WriteString(joinHorizontal(saved, items))
	b.WriteString("\n\n")
	b.WriteString(renderButton("enter", "Start Creating", v.styles.Button))
	return b.String()
}
