package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mise/internal/api"
	"github.com/five82/mise/internal/notify"
	"github.com/five82/mise/internal/state"
)

const unassignedLabel = "-- Select a Recipe --"

type plannerSavedMsg struct {
	pageMsg
	seq  int
	day  string
	meal string
	prev api.MealPlan
	err  error
}

// plannerPage shows one selector per day and meal. Each change is saved
// immediately; the cursor walks slots day by day.
type plannerPage struct {
	env    pageEnv
	load   loadState
	cursor int
	seq    int
}

func (p *plannerPage) Mount(env pageEnv) tea.Cmd {
	p.env = env
	p.load.start("Loading Your Meal Plan...")
	env.busy(true)
	return env.refreshUser()
}

func (p *plannerPage) Unmount() {}

func (p *plannerPage) Capturing() bool { return false }

func (p *plannerPage) Bindings() []binding {
	if !p.load.ready() {
		return nil
	}
	return []binding{
		bind("down", "Next slot", "j", "down"),
		bind("up", "Previous slot", "k", "up"),
		bind("next-recipe", "Next recipe", "l", "right"),
		bind("prev-recipe", "Previous recipe", "h", "left"),
		bind("clear", "Clear", "x"),
	}
}

func slotCount() int {
	return len(api.Days) * len(api.Meals)
}

// slotAt maps a cursor position to its day and meal.
func slotAt(cursor int) (day, meal string) {
	return api.Days[cursor/len(api.Meals)], api.Meals[cursor%len(api.Meals)]
}

func (p *plannerPage) Handle(action string) tea.Cmd {
	switch action {
	case "down":
		p.cursor = clamp(p.cursor+1, slotCount())
	case "up":
		p.cursor = clamp(p.cursor-1, slotCount())
	case "next-recipe":
		return p.cycle(1)
	case "prev-recipe":
		return p.cycle(-1)
	case "clear":
		day, meal := slotAt(p.cursor)
		if p.env.store.Snapshot().User.MealPlan[day].Slot(meal) == "" {
			return nil
		}
		return p.assign(day, meal, "")
	}
	return nil
}

// cycle moves the selected slot to the next or previous cookbook recipe,
// wrapping through the unassigned option.
func (p *plannerPage) cycle(step int) tea.Cmd {
	snap := p.env.store.Snapshot()
	options := plannerOptions(snap.User.Cookbook)
	day, meal := slotAt(p.cursor)
	current := snap.User.MealPlan[day].Slot(meal)

	idx := 0
	for i, id := range options {
		if id == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(options)) % len(options)
	if options[idx] == current {
		return nil
	}
	return p.assign(day, meal, options[idx])
}

// plannerOptions lists the selectable recipe ids; "" is the unassigned option.
func plannerOptions(book []api.Recipe) []string {
	options := make([]string, 0, len(book)+1)
	options = append(options, "")
	for _, r := range book {
		if r.ID != "" {
			options = append(options, r.ID)
		}
	}
	return options
}

func (p *plannerPage) assign(day, meal, id string) tea.Cmd {
	prev := p.env.store.Snapshot().User.MealPlan.Clone()
	plan := p.env.store.Apply(state.AssignMeal(day, meal, id)).User.MealPlan
	p.seq++
	seq := p.seq

	env := p.env
	return func() tea.Msg {
		err := env.backend.SavePlanner(env.ctx, plan)
		return plannerSavedMsg{pageMsg: pageMsg{env.token}, seq: seq, day: day, meal: meal, prev: prev, err: err}
	}
}

func (p *plannerPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case userRefreshedMsg:
		return p.load.handleRefresh(p.env, msg, "Failed to load meal planner.")

	case plannerSavedMsg:
		if msg.err != nil {
			// A newer edit already superseded this one
			if msg.seq == p.seq {
				p.env.store.Apply(state.SetMealPlan(msg.prev))
			}
			return p.env.failure("Update Failed", msg.err)
		}
		return toast(fmt.Sprintf("%s's %s updated!", msg.day, msg.meal), notify.Success)
	}
	return nil
}

func (p *plannerPage) View(v viewContext) string {
	var b strings.Builder
	b.WriteString(renderPageTitle(v, "Weekly Meal Planner", "Plan your meals for the week ahead."))
	b.WriteString("\n\n")

	if !p.load.ready() {
		b.WriteString(p.load.render(v))
		return b.String()
	}

	snap := v.snapshot
	if len(snap.User.Cookbook) == 0 {
		b.WriteString(v.styles.WarningText.Render("Save recipes to your cookbook to add them to the plan."))
		b.WriteString("\n\n")
	}

	nameWidth := maxInt((v.width-24)/len(api.Meals), 12)
	header := padRight("", 12)
	for _, meal := range api.Meals {
		header += padRight(titleCase(meal), nameWidth+2)
	}
	b.WriteString(v.styles.MutedText.Bold(true).Render(header))
	b.WriteString("\n")

	for d, day := range api.Days {
		b.WriteString(v.styles.AccentText.Render(padRight(day, 12)))
		for m, meal := range api.Meals {
			label := slotLabel(snap.User, snap.User.MealPlan[day].Slot(meal))
			cell := padRight(truncate(label, nameWidth), nameWidth)
			if d*len(api.Meals)+m == p.cursor {
				b.WriteString(v.styles.Selected.Render(cell))
			} else if label == unassignedLabel {
				b.WriteString(v.styles.FaintText.Render(cell))
			} else {
				b.WriteString(v.styles.Text.Render(cell))
			}
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// slotLabel names the recipe assigned to a slot. Ids that no longer match a
// cookbook entry show as unassigned.
func slotLabel(u api.User, id string) string {
	if id == "" {
		return unassignedLabel
	}
	if r, ok := u.Recipe(id); ok {
		return r.Name
	}
	return unassignedLabel
}
