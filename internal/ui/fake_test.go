package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mise/internal/api"
	"github.com/five82/mise/internal/state"
)

// fakeBackend keeps a user record in memory and counts calls per endpoint.
type fakeBackend struct {
	user  api.User
	calls map[string]int

	userErr     error
	generateErr error
	saveErr     error
	pantryErr   error
	plannerErr  error
	prefsErr    error

	lastGenerate api.GenerateRequest
	lastPrefs    api.Preferences
	nextID       int
}

var _ api.Backend = (*fakeBackend)(nil)

func newFakeBackend(u api.User) *fakeBackend {
	return &fakeBackend{user: u, calls: map[string]int{}}
}

func (f *fakeBackend) FetchUser(context.Context) (api.UserPatch, error) {
	f.calls["FetchUser"]++
	if f.userErr != nil {
		return api.UserPatch{}, f.userErr
	}
	u := f.user.Clone()
	return api.UserPatch{
		ID:          &u.ID,
		Preferences: &u.Preferences,
		Cookbook:    &u.Cookbook,
		Pantry:      &u.Pantry,
		MealPlan:    &u.MealPlan,
	}, nil
}

func (f *fakeBackend) Generate(_ context.Context, req api.GenerateRequest) (api.Recipe, error) {
	f.calls["Generate"]++
	f.lastGenerate = req
	if f.generateErr != nil {
		return api.Recipe{}, f.generateErr
	}
	return api.Recipe{
		Name:         "Chicken " + req.Cuisine,
		Description:  "Made from " + req.Ingredients,
		Ingredients:  []string{req.Ingredients},
		Instructions: []string{"Cook it."},
		CalorieCount: "450",
		TimeToCook:   "30 minutes",
	}, nil
}

func (f *fakeBackend) FindImage(_ context.Context, query string) (string, error) {
	f.calls["FindImage"]++
	return "https://images.test/" + strings.ReplaceAll(query, " ", "-") + ".jpg", nil
}

func (f *fakeBackend) Modify(_ context.Context, recipe api.Recipe, modType string) (api.Recipe, error) {
	f.calls["Modify"]++
	recipe.Name = titleCase(modType) + " " + recipe.Name
	return recipe, nil
}

func (f *fakeBackend) Pairings(context.Context, api.Recipe) (api.Pairings, error) {
	f.calls["Pairings"]++
	return api.Pairings{"wine": {Name: "Chianti", Reason: "Acidity"}}, nil
}

func (f *fakeBackend) Swaps(_ context.Context, _ api.Recipe, ingredient string) ([]api.Suggestion, error) {
	f.calls["Swaps"]++
	return []api.Suggestion{{Name: "tofu", Reason: "Replaces " + ingredient}}, nil
}

func (f *fakeBackend) SaveRecipe(_ context.Context, recipe api.Recipe) (api.Recipe, error) {
	f.calls["SaveRecipe"]++
	if f.saveErr != nil {
		return api.Recipe{}, f.saveErr
	}
	f.nextID++
	recipe.ID = fmt.Sprintf("r%d", f.nextID)
	f.user.Cookbook = append(f.user.Cookbook, recipe.Clone())
	return recipe, nil
}

func (f *fakeBackend) DeleteRecipe(_ context.Context, id string) error {
	f.calls["DeleteRecipe"]++
	out := f.user.Cookbook[:0]
	for _, r := range f.user.Cookbook {
		if r.ID != id {
			out = append(out, r)
		}
	}
	f.user.Cookbook = out
	return nil
}

func (f *fakeBackend) SavePantry(_ context.Context, pantry []string) error {
	f.calls["SavePantry"]++
	if f.pantryErr != nil {
		return f.pantryErr
	}
	f.user.Pantry = append([]string{}, pantry...)
	return nil
}

func (f *fakeBackend) SavePlanner(_ context.Context, plan api.MealPlan) error {
	f.calls["SavePlanner"]++
	if f.plannerErr != nil {
		return f.plannerErr
	}
	f.user.MealPlan = plan.Clone()
	return nil
}

func (f *fakeBackend) SavePreferences(_ context.Context, prefs api.Preferences) error {
	f.calls["SavePreferences"]++
	f.lastPrefs = prefs
	return f.prefsErr
}

// newTestModel builds a model at fragment without running the startup fetch.
func newTestModel(backend *fakeBackend, fragment string) Model {
	m := New(Options{
		Backend:  backend,
		Store:    state.NewStore(state.Snapshot{}),
		BaseURL:  "http://backend.test",
		Fragment: fragment,
		ToastTTL: time.Hour,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	m.width, m.height = 120, 60
	return m
}

// startModel builds a model and runs the startup fetch to completion.
func startModel(t *testing.T, backend *fakeBackend, fragment string) Model {
	t.Helper()
	m := newTestModel(backend, fragment)
	return drain(t, m, m.loadUser())
}

// send delivers one message and returns the command it produced without
// running it.
func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// press sends a key and runs whatever it triggers.
func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	m, cmd := send(m, keyMsg(k))
	return drain(t, m, cmd)
}

// typeText sends runes to a focused input. The cursor blink command it
// returns is discarded.
func typeText(m Model, text string) Model {
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// drain runs cmd and every command it leads to, feeding each message back
// into the model. Toast dismissal timers and spinner ticks are not run.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatalf("drain did not settle after %d steps", steps)
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case nil, spinner.TickMsg, dismissToastMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case toastMsg:
			m, _ = send(m, msg)
		default:
			var out tea.Cmd
			m, out = send(m, msg)
			queue = append(queue, out)
		}
	}
	return m
}

func toastTexts(m Model) []string {
	var out []string
	for _, t := range m.toasts.Visible() {
		out = append(out, t.Message)
	}
	return out
}

func hasToast(m Model, text string) bool {
	for _, msg := range toastTexts(m) {
		if msg == text {
			return true
		}
	}
	return false
}
