package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mise/internal/api"
	"github.com/five82/mise/internal/notify"
	"github.com/five82/mise/internal/state"
)

var cuisines = []string{"Any", "Italian", "Mexican", "Indian", "Chinese", "Japanese", "Thai", "French", "Spanish", "Greek"}

var diets = []string{"None", "Vegetarian", "Vegan", "Gluten-Free", "Keto", "Paleo", "Pescatarian"}

// modifications are the recipe transforms offered on a generated card.
var modifications = []struct {
	action  string
	modType string
	key     string
	label   string
}{
	{"modify-healthier", "healthier", "H", "Healthier"},
	{"modify-spicy", "spicy", "Y", "Spicy"},
	{"modify-vegetarian", "vegetarian", "V", "Vegetarian"},
	{"modify-gourmet", "gourmet", "G", "Gourmet"},
}

type saveStatus int

const (
	saveIdle saveStatus = iota
	saveInFlight
	saveDone
)

type inputField int

const (
	fieldNone inputField = iota
	fieldIngredients
	fieldSwap
)

type enhancement int

const (
	enhanceNone enhancement = iota
	enhancePairings
	enhanceSwaps
)

type recipeResultMsg struct {
	pageMsg
	title  string
	recipe api.Recipe
	err    error
}

// The card field on the messages below is the cardSeq the request was made
// for. Results for an older card are not shown on the current one.
type recipeSavedMsg struct {
	pageMsg
	card   int
	recipe api.Recipe
	err    error
}

type pairingsMsg struct {
	pageMsg
	card     int
	pairings api.Pairings
	err      error
}

type swapsMsg struct {
	pageMsg
	card  int
	swaps []api.Suggestion
	err   error
}

// generatePage drives the recipe generator. The card it renders is the
// store's current recipe; each generate or modify overwrites it.
type generatePage struct {
	env pageEnv

	ingredients textinput.Model
	swap        textinput.Model
	editing     inputField
	cuisine     int
	diet        int

	// Recipe output region
	busy     bool
	busyText string
	output   loadState
	card     *api.Recipe
	cardSeq  int
	save     saveStatus

	// Enhancements region
	enhanced    enhancement
	enhancing   bool
	enhanceErr  loadState
	pairings    api.Pairings
	suggestions []api.Suggestion
}

func newGeneratePage() *generatePage {
	ingredients := textinput.New()
	ingredients.Placeholder = "e.g., chicken breast, rice, broccoli"
	ingredients.CharLimit = 200

	swap := textinput.New()
	swap.Placeholder = "e.g., 'chicken breast'"
	swap.CharLimit = 80

	return &generatePage{ingredients: ingredients, swap: swap}
}

func (p *generatePage) Mount(env pageEnv) tea.Cmd {
	p.env = env
	p.diet = dietIndex(diets, env.store.Snapshot().User.Preferences.DefaultDiet)
	return nil
}

func (p *generatePage) Unmount() {
	p.ingredients.Blur()
	p.swap.Blur()
	p.card = nil
	p.pairings, p.suggestions = nil, nil
}

func (p *generatePage) Capturing() bool {
	return p.editing != fieldNone
}

func (p *generatePage) Bindings() []binding {
	bindings := []binding{
		bind("edit-ingredients", "Ingredients", "i"),
		bind("cycle-cuisine", "Cuisine", "c"),
		bind("cycle-diet", "Diet", "d"),
		bind("generate", "Generate", "g"),
	}
	if p.card == nil || p.busy {
		return bindings
	}
	for _, mod := range modifications {
		bindings = append(bindings, bind(mod.action, mod.label, mod.key))
	}
	save := bind("save", "Save", "s")
	save.SetEnabled(p.save == saveIdle)
	return append(bindings,
		bind("pairings", "Pairings", "p"),
		bind("edit-swap", "Swaps", "w"),
		bind("view", "View recipe", "v"),
		save,
	)
}

func (p *generatePage) Handle(action string) tea.Cmd {
	switch action {
	case "edit-ingredients":
		p.editing = fieldIngredients
		return p.ingredients.Focus()
	case "cycle-cuisine":
		p.cuisine = (p.cuisine + 1) % len(cuisines)
	case "cycle-diet":
		p.diet = (p.diet + 1) % len(diets)
	case "generate":
		return p.generate()
	case "pairings":
		return p.findPairings()
	case "edit-swap":
		if p.card != nil {
			p.editing = fieldSwap
			return p.swap.Focus()
		}
	case "view":
		if p.card != nil {
			return showModal(newRecipeModal(*p.card, DefaultWidth, DefaultHeight))
		}
	case "save":
		return p.saveRecipe()
	default:
		for _, mod := range modifications {
			if mod.action == action {
				return p.modify(mod.modType)
			}
		}
	}
	return nil
}

func (p *generatePage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleInputKey(msg)

	case recipeResultMsg:
		p.busy = false
		p.env.busy(false)
		p.cardSeq++
		if msg.err != nil {
			p.card = nil
			p.output.fail(msg.title, msg.err)
			return p.env.failure(msg.title, msg.err)
		}
		recipe := msg.recipe
		p.env.store.Apply(state.SetRecipe(&recipe))
		p.card = &recipe
		p.save = saveIdle
		p.output.done()
		p.resetEnhancements()
		return nil

	case recipeSavedMsg:
		current := msg.card == p.cardSeq
		if msg.err != nil {
			if current {
				p.save = saveIdle
			}
			return p.env.failure("Save Failed", msg.err)
		}
		saved := msg.recipe
		p.env.store.Apply(state.AppendCookbook(saved))
		// The card was replaced while saving; leave the newer recipe alone
		if current {
			p.env.store.Apply(state.SetRecipe(&saved))
			p.card = &saved
			p.save = saveDone
		}
		return toast("Recipe saved to cookbook!", notify.Success)

	case pairingsMsg:
		if msg.card != p.cardSeq {
			return nil
		}
		p.enhancing = false
		if msg.err != nil {
			p.enhanceErr.fail("Could not get pairings", msg.err)
			return p.env.failure("Could not get pairings", msg.err)
		}
		p.enhanced = enhancePairings
		p.pairings = msg.pairings
		return nil

	case swapsMsg:
		if msg.card != p.cardSeq {
			return nil
		}
		p.enhancing = false
		if msg.err != nil {
			p.enhanceErr.fail("Could not get swaps", msg.err)
			return p.env.failure("Could not get swaps", msg.err)
		}
		p.enhanced = enhanceSwaps
		p.suggestions = msg.swaps
		return nil

	default:
		// Cursor blink and other input internals
		var cmd tea.Cmd
		switch p.editing {
		case fieldIngredients:
			p.ingredients, cmd = p.ingredients.Update(msg)
		case fieldSwap:
			p.swap, cmd = p.swap.Update(msg)
		}
		return cmd
	}
}

// handleInputKey edits whichever text field is focused. Enter submits it.
func (p *generatePage) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	input := &p.ingredients
	if p.editing == fieldSwap {
		input = &p.swap
	}

	switch msg.String() {
	case "esc":
		input.Blur()
		p.editing = fieldNone
		return nil
	case "enter":
		input.Blur()
		field := p.editing
		p.editing = fieldNone
		if field == fieldSwap {
			return p.findSwaps()
		}
		return p.generate()
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return cmd
}

func (p *generatePage) generate() tea.Cmd {
	if p.busy {
		return nil
	}
	ingredients := strings.TrimSpace(p.ingredients.Value())
	if ingredients == "" {
		return toast(api.Validation("Please enter at least one ingredient.").Message, notify.Error)
	}

	pantry := p.env.store.Snapshot().User.Pantry
	if pantry == nil {
		pantry = []string{}
	}
	req := api.GenerateRequest{
		Ingredients: ingredients,
		Cuisine:     cuisines[p.cuisine],
		Diet:        diets[p.diet],
		Pantry:      pantry,
	}

	p.startBusy("The AI is thinking...")
	env := p.env
	return func() tea.Msg {
		recipe, err := env.backend.Generate(env.ctx, req)
		if err == nil {
			recipe, err = withImage(env, recipe)
		}
		return recipeResultMsg{pageMsg: pageMsg{env.token}, title: "Recipe Generation Failed", recipe: recipe, err: err}
	}
}

func (p *generatePage) modify(modType string) tea.Cmd {
	if p.busy || p.card == nil {
		return nil
	}
	recipe := p.card.Clone()
	p.startBusy("Making the recipe " + modType + "...")
	env := p.env
	return func() tea.Msg {
		out, err := env.backend.Modify(env.ctx, recipe, modType)
		if err == nil {
			out, err = withImage(env, out)
		}
		return recipeResultMsg{pageMsg: pageMsg{env.token}, title: "Modification Failed", recipe: out, err: err}
	}
}

// withImage looks up an image for recipe. A failed lookup fails the whole
// generate or modify action.
func withImage(env pageEnv, recipe api.Recipe) (api.Recipe, error) {
	url, err := env.backend.FindImage(env.ctx, recipe.Name)
	if err != nil {
		return api.Recipe{}, err
	}
	recipe.ImageURL = url
	return recipe, nil
}

func (p *generatePage) startBusy(text string) {
	p.busy = true
	p.busyText = text
	p.output.done()
	p.env.busy(true)
}

func (p *generatePage) saveRecipe() tea.Cmd {
	if p.card == nil || p.busy || p.save != saveIdle {
		return nil
	}
	p.save = saveInFlight
	recipe := p.card.Clone()
	env, card := p.env, p.cardSeq
	return func() tea.Msg {
		saved, err := env.backend.SaveRecipe(env.ctx, recipe)
		return recipeSavedMsg{pageMsg: pageMsg{env.token}, card: card, recipe: saved, err: err}
	}
}

func (p *generatePage) findPairings() tea.Cmd {
	if p.card == nil || p.enhancing {
		return nil
	}
	p.enhancing = true
	p.enhanceErr.done()
	recipe := p.card.Clone()
	env, card := p.env, p.cardSeq
	return func() tea.Msg {
		pairings, err := env.backend.Pairings(env.ctx, recipe)
		return pairingsMsg{pageMsg: pageMsg{env.token}, card: card, pairings: pairings, err: err}
	}
}

func (p *generatePage) findSwaps() tea.Cmd {
	if p.card == nil || p.enhancing {
		return nil
	}
	ingredient := strings.TrimSpace(p.swap.Value())
	if ingredient == "" {
		return toast(api.Validation("Enter an ingredient to swap.").Message, notify.Error)
	}
	p.enhancing = true
	p.enhanceErr.done()
	recipe := p.card.Clone()
	env, card := p.env, p.cardSeq
	return func() tea.Msg {
		swaps, err := env.backend.Swaps(env.ctx, recipe, ingredient)
		return swapsMsg{pageMsg: pageMsg{env.token}, card: card, swaps: swaps, err: err}
	}
}

func (p *generatePage) resetEnhancements() {
	p.enhanced = enhanceNone
	p.enhancing = false
	p.enhanceErr.done()
	p.pairings, p.suggestions = nil, nil
}

func (p *generatePage) View(v viewContext) string {
	var b strings.Builder
	b.WriteString(renderPageTitle(v, "Recipe Generator", "Let AI craft your next meal. Your pantry items will be prioritized!"))
	b.WriteString("\n\n")

	p.ingredients.Width = maxInt(v.width-8, 20)
	b.WriteString(v.styles.MutedText.Render("Primary Ingredients"))
	b.WriteString("\n")
	b.WriteString(p.ingredients.View())
	b.WriteString("\n")
	b.WriteString(v.styles.MutedText.Render("Cuisine ") + v.styles.Text.Render("‹ "+cuisines[p.cuisine]+" ›"))
	b.WriteString("   ")
	b.WriteString(v.styles.MutedText.Render("Diet ") + v.styles.Text.Render("‹ "+diets[p.diet]+" ›"))
	b.WriteString("\n")
	generate := v.styles.Button
	if p.busy {
		generate = v.styles.ButtonDisabled
	}
	b.WriteString(renderButton("g", "Generate Recipe", generate))
	b.WriteString("\n\n")

	switch {
	case p.busy:
		b.WriteString(renderLoading(v, p.busyText))
	case !p.output.ready():
		b.WriteString(p.output.render(v))
	case p.card != nil:
		b.WriteString(p.renderCard(v))
	default:
		b.WriteString(v.styles.MutedText.Render("Your culinary creation awaits..."))
	}
	return b.String()
}

func (p *generatePage) renderCard(v viewContext) string {
	r := *p.card
	width := maxInt(v.width-4, 30)

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(r.Name))
	if badges := renderBadges(v, r); badges != "" {
		b.WriteString("  ")
		b.WriteString(badges)
	}
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString(v.styles.MutedText.Render(wrap(r.Description, width-4)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Text.Bold(true).Render("Transform this Recipe"))
	b.WriteString("\n")
	mods := make([]string, 0, len(modifications))
	for _, mod := range modifications {
		mods = append(mods, renderButton(mod.key, mod.label, v.styles.AccentText))
	}
	b.WriteString(strings.Join(mods, " "))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Text.Bold(true).Render("AI-Powered Tools"))
	b.WriteString("\n")
	p.swap.Width = maxInt(width-40, 16)
	b.WriteString(p.swap.View())
	b.WriteString("  ")
	b.WriteString(renderButton("w", "Find Swaps", v.styles.Text))
	b.WriteString(" ")
	b.WriteString(renderButton("p", "Suggest Pairings", v.styles.AccentText))
	b.WriteString("\n")

	switch {
	case p.enhancing:
		b.WriteString(renderLoading(v, ""))
		b.WriteString("\n")
	case !p.enhanceErr.ready():
		b.WriteString(p.enhanceErr.render(v))
		b.WriteString("\n")
	case p.enhanced == enhancePairings:
		b.WriteString(renderPairings(v, p.pairings, width))
		b.WriteString("\n")
	case p.enhanced == enhanceSwaps:
		b.WriteString(renderSwaps(v, p.suggestions, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderButton("v", "View Recipe", v.styles.Button))
	b.WriteString(" ")
	switch p.save {
	case saveInFlight:
		b.WriteString(renderButton("s", "Saving...", v.styles.ButtonDisabled))
	case saveDone:
		b.WriteString(v.styles.ButtonDone.Render("Saved!"))
	default:
		b.WriteString(renderButton("s", "Save to Cookbook", v.styles.Button))
	}
	if r.ImageURL != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.FaintText.Render(truncate(r.ImageURL, width)))
	}

	return v.styles.Card.Width(width).Render(b.String())
}
