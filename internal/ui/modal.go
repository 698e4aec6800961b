package ui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/mise/internal/api"
	"github.com/five82/mise/internal/notify"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// recipeModal shows a full recipe in a scrollable viewport.
type recipeModal struct {
	recipe api.Recipe
	vp     viewport.Model
	width  int
}

func newRecipeModal(r api.Recipe, width, height int) *recipeModal {
	m := &recipeModal{recipe: r.Clone()}
	m.resize(width, height)
	return m
}

func (m *recipeModal) resize(width, height int) {
	w, h := modalSize(width, height)
	m.width = w
	m.vp = viewport.New(w-4, maxInt(h-6, 3))
	m.vp.SetContent(recipeText(m.recipe, w-6))
}

func (m *recipeModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch {
	case key.Matches(km, keys.Escape), km.String() == "q":
		return m, nil, true
	case key.Matches(km, keys.Copy):
		return m, copyRecipe(m.recipe), false
	case key.Matches(km, keys.Down):
		m.vp.LineDown(1)
	case key.Matches(km, keys.Up):
		m.vp.LineUp(1)
	default:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd, false
	}
	return m, nil, false
}

func (m *recipeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	title := styles.Title.Render(truncate(m.recipe.Name, m.width-8))
	hint := styles.FaintText.Render("j/k scroll · y copy · esc close")
	body := title + "\n\n" + m.vp.View() + "\n\n" + hint
	return placeModal(theme, width, height, m.width, body)
}

// copyRecipe writes the recipe text to the system clipboard.
func copyRecipe(r api.Recipe) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(recipeText(r, 0)); err != nil {
			return toastMsg{text: "Could not copy recipe: " + err.Error(), kind: notify.Error}
		}
		return toastMsg{text: "Recipe copied to clipboard.", kind: notify.Success}
	}
}

// confirmModal asks a yes/no question and runs onConfirm on yes.
type confirmModal struct {
	title     string
	question  string
	onConfirm tea.Cmd
}

func (m confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch {
	case key.Matches(km, keys.Confirm):
		return m, m.onConfirm, true
	case key.Matches(km, keys.Cancel):
		return m, nil, true
	}
	return m, nil, false
}

func (m confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.DangerText.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(m.question))
	b.WriteString("\n\n")
	b.WriteString(styles.Key.Render("y") + styles.MutedText.Render(" yes   "))
	b.WriteString(styles.Key.Render("n") + styles.MutedText.Render(" no"))
	return placeModal(theme, width, height, 50, b.String())
}

// modalSize returns the outer modal size for a terminal of width x height.
func modalSize(width, height int) (int, int) {
	w := width - 2*ModalMargin
	if w > ModalMaxWidth {
		w = ModalMaxWidth
	}
	return maxInt(w, 30), maxInt(height-ModalMargin, 10)
}

// placeModal centers content in a bordered box over the whole screen.
func placeModal(theme Theme, width, height, boxWidth int, content string) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(boxWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
