package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/mise/internal/api"
)

// renderLoading renders the placeholder shown while a page waits on the
// backend.
func renderLoading(v viewContext, message string) string {
	if message == "" {
		message = "Loading..."
	}
	return v.spinner + " " + v.styles.MutedText.Render(message)
}

// renderErrorPanel renders an inline error scoped to the page body.
func renderErrorPanel(v viewContext, title, message string) string {
	width := maxInt(v.width-4, 20)
	body := v.styles.DangerText.Render(title) + "\n" + wrap(message, width-4)
	return v.styles.ErrorPanel.Width(width).Render(body)
}

// renderPageTitle renders a page heading with an optional subtitle.
func renderPageTitle(v viewContext, title, subtitle string) string {
	out := v.styles.Title.Render(title)
	if subtitle != "" {
		out += "\n" + v.styles.MutedText.Render(wrap(subtitle, maxInt(v.width-2, 20)))
	}
	return out
}

// renderButton renders a key hint styled as a button.
func renderButton(keyName, label string, style lipgloss.Style) string {
	return style.Render("[" + keyName + "] " + label)
}

// renderBadges renders the calorie and cook-time badges of a recipe.
func renderBadges(v viewContext, r api.Recipe) string {
	var parts []string
	if r.CalorieCount != "" {
		parts = append(parts, v.styles.WarningText.Render(fmt.Sprintf("%s kcal", r.CalorieCount)))
	}
	if r.TimeToCook != "" {
		parts = append(parts, v.styles.InfoText.Render(r.TimeToCook))
	}
	return strings.Join(parts, v.styles.FaintText.Render("  ·  "))
}

// renderPairings lists beverage pairings in a stable order.
func renderPairings(v viewContext, pairings api.Pairings, width int) string {
	if len(pairings) == 0 {
		return v.styles.MutedText.Render("No pairings suggested.")
	}
	kinds := make([]string, 0, len(pairings))
	for k := range pairings {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	var b strings.Builder
	for i, kind := range kinds {
		p := pairings[kind]
		b.WriteString(v.styles.Text.Bold(true).Render(titleCase(kind) + ": "))
		b.WriteString(v.styles.AccentText.Render(p.Name))
		if p.Reason != "" {
			b.WriteString("\n")
			b.WriteString(v.styles.MutedText.Render(indent(wrap(p.Reason, width-2), "  ")))
		}
		if i < len(kinds)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderSwaps lists ingredient substitutes in the order the backend gave.
func renderSwaps(v viewContext, swaps []api.Suggestion, width int) string {
	if len(swaps) == 0 {
		return v.styles.MutedText.Render("No suitable swaps found.")
	}
	var b strings.Builder
	for i, s := range swaps {
		b.WriteString(v.styles.AccentText.Render(s.Name))
		if s.Reason != "" {
			b.WriteString("\n")
			b.WriteString(v.styles.MutedText.Render(indent(wrap(s.Reason, width-2), "  ")))
		}
		if i < len(swaps)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// recipeText renders a recipe as plain text, used by the modal body and the
// clipboard copy.
func recipeText(r api.Recipe, width int) string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString("\n")
	if r.CalorieCount != "" {
		fmt.Fprintf(&b, "Estimated %s kcal\n", r.CalorieCount)
	}
	if r.TimeToCook != "" {
		b.WriteString(r.TimeToCook)
		b.WriteString("\n")
	}
	if r.Description != "" {
		b.WriteString("\n")
		b.WriteString(wrap(r.Description, width))
		b.WriteString("\n")
	}
	b.WriteString("\nIngredients\n")
	for _, item := range r.Ingredients {
		b.WriteString("  - " + indent(wrap(item, width-4), "    ")[4:])
		b.WriteString("\n")
	}
	b.WriteString("\nInstructions\n")
	for i, step := range r.Instructions {
		prefix := fmt.Sprintf("%d. ", i+1)
		wrapped := indent(wrap(step, width-len(prefix)-2), strings.Repeat(" ", len(prefix)+2))
		b.WriteString("  " + prefix + wrapped[len(prefix)+2:])
		b.WriteString("\n")
	}
	if r.ImageURL != "" {
		b.WriteString("\nImage: ")
		b.WriteString(r.ImageURL)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// joinHorizontal places blocks side by side with a two-column gap.
func joinHorizontal(blocks ...string) string {
	spaced := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			spaced = append(spaced, "  ")
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}
