package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mise/internal/api"
	"github.com/five82/mise/internal/logging"
	"github.com/five82/mise/internal/notify"
	"github.com/five82/mise/internal/router"
	"github.com/five82/mise/internal/state"
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Backend  api.Backend
	Store    *state.Store
	BaseURL  string
	Fragment string
	ToastTTL time.Duration
	Logger   *slog.Logger

	// InitErr is a startup failure that happened before the UI could reach
	// the backend. The diagnostic is shown and retry is disabled.
	InitErr error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	backend api.Backend
	store   *state.Store
	baseURL string
	logger  *slog.Logger
	keys    keyMap

	// Navigation
	router     *router.Router[pageFactory]
	page       page
	pageCancel context.CancelFunc

	// Startup
	started bool
	attempt int
	initErr error

	// UI state
	theme    Theme
	themeSeq int
	width    int
	height   int
	spinner  spinner.Model
	toasts   *notify.Toasts
	overlay  *notify.Overlay[Modal]
	showHelp bool

	// Go-to prompt
	prompting bool
	prompt    textinput.Model
}

// New creates a new Bubble Tea model. Every route is registered before the
// first resolution.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.From(ctx)
	}

	r := router.New[pageFactory](opts.Fragment)
	r.Register(router.Home, func() page { return &homePage{} })
	r.Register(router.Generate, func() page { return newGeneratePage() })
	r.Register(router.Cookbook, func() page { return &cookbookPage{} })
	r.Register(router.Pantry, func() page { return newPantryPage() })
	r.Register(router.Planner, func() page { return &plannerPage{} })
	r.Register(router.Settings, func() page { return &settingsPage{} })

	prompt := textinput.New()
	prompt.Prompt = ":"
	prompt.Placeholder = "cookbook"
	prompt.CharLimit = 64

	return Model{
		ctx:     ctx,
		backend: opts.Backend,
		store:   opts.Store,
		baseURL: opts.BaseURL,
		logger:  logger,
		keys:    DefaultKeyMap(),
		router:  r,
		attempt: 1,
		initErr: opts.InitErr,
		theme:   GetTheme(ThemeLight),
		width:   DefaultWidth,
		height:  DefaultHeight,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		toasts:  notify.NewToasts(opts.ToastTTL),
		overlay: &notify.Overlay[Modal]{},
		prompt:  prompt,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.initErr != nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadUser())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if modal, ok := m.overlay.Content(); ok {
			if r, ok := modal.(interface{ resize(int, int) }); ok {
				r.resize(m.width, m.height)
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case userLoadedMsg:
		return m.handleUserLoaded(msg)

	case fragmentChangedMsg:
		cmd := m.resolve()
		return m, cmd

	case navigateMsg:
		if m.router.Navigate(msg.route) {
			return m, fragmentChanged
		}
		return m, nil

	case toastMsg:
		t := m.toasts.Show(msg.text, msg.kind)
		return m, tea.Tick(m.toasts.TTL(), func(time.Time) tea.Msg {
			return dismissToastMsg{id: t.ID}
		})

	case dismissToastMsg:
		m.toasts.Dismiss(msg.id)
		return m, nil

	case showModalMsg:
		if r, ok := msg.modal.(interface{ resize(int, int) }); ok {
			r.resize(m.width, m.height)
		}
		m.overlay.Show(msg.modal)
		return m, nil

	case themeSavedMsg:
		return m.handleThemeSaved(msg)
	}

	if f, ok := msg.(fenced); ok && !m.router.Current(f.navToken()) {
		m.logger.Debug("dropping stale result", "token", f.navToken(), "current", m.router.Token())
		return m, nil
	}

	var cmds []tea.Cmd
	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.page != nil {
		cmds = append(cmds, m.page.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.started {
		return m.renderStartup()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if modal, ok := m.overlay.Content(); ok && modal != nil {
		return modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey resolves a key press: overlays first, then a capturing page,
// then global keys, then the page's own bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.started {
		return m.handleStartupKey(msg)
	}

	if m.prompting {
		return m.handlePromptKey(msg)
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if modal, ok := m.overlay.Content(); ok && modal != nil {
		next, cmd, closed := modal.Update(msg, m.keys)
		if closed {
			m.overlay.Hide()
		} else {
			m.overlay.Set(next)
		}
		return m, cmd
	}

	if m.page != nil && m.page.Capturing() {
		return m, m.page.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Tab):
		return m, navigate(m.router.Next(1))
	case key.Matches(msg, m.keys.ShiftTab):
		return m, navigate(m.router.Next(-1))
	case key.Matches(msg, m.keys.GoTo):
		m.prompting = true
		m.prompt.SetValue("")
		cmd := m.prompt.Focus()
		return m, cmd
	}
	for i, b := range m.keys.Routes {
		if key.Matches(msg, b) {
			return m, navigate(router.Routes[i])
		}
	}

	if m.page != nil {
		if action, ok := lookup(m.page.Bindings(), msg); ok {
			return m, m.page.Handle(action)
		}
	}
	return m, nil
}

// handlePromptKey edits the go-to prompt. Enter writes the typed fragment
// the way a user edits the address bar.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	case "enter":
		m.prompting = false
		m.prompt.Blur()
		fragment := strings.TrimSpace(m.prompt.Value())
		if router.Parse(fragment) == router.Parse(m.router.Fragment()) {
			return m, nil
		}
		m.router.SetFragment(fragment)
		return m, fragmentChanged
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// resolve unmounts the current page and mounts the one the fragment names.
func (m *Model) resolve() tea.Cmd {
	if m.page != nil {
		m.page.Unmount()
	}
	if m.pageCancel != nil {
		m.pageCancel()
	}
	m.overlay.Hide()

	res := m.router.Resolve()
	m.store.Apply(state.SetRoute(string(m.router.Active())), state.SetLoading(false))

	var p page
	if res.Found {
		p = res.View()
	} else {
		err := api.NotFound(string(res.Route))
		m.logger.Info("route not found", "fragment", m.router.Fragment(), "error", err)
		p = &notFoundPage{err: err}
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.page, m.pageCancel = p, cancel
	m.logger.Debug("mount", "route", res.Route, "token", res.Token)
	return p.Mount(pageEnv{
		ctx:     ctx,
		token:   res.Token,
		backend: m.backend,
		store:   m.store,
		logger:  m.logger.With("route", string(res.Route)),
	})
}

// Messages

type themeSavedMsg struct {
	seq  int
	prev string
	err  error
}

// fragmentChanged is delivered asynchronously after a fragment write.
func fragmentChanged() tea.Msg {
	return fragmentChangedMsg{}
}

// toggleTheme applies the next theme at once and saves it; handleThemeSaved
// reverts on failure.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	prev := m.theme.Name
	next := NextTheme(prev)
	m.theme = GetTheme(next)
	m.themeSeq++
	seq := m.themeSeq

	prefs := m.store.Snapshot().User.Preferences
	prefs.Theme = next
	m.store.Apply(state.SetPreferences(prefs))

	backend, parent := m.backend, m.ctx
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, ThemeSaveTimeout)
		defer cancel()
		err := backend.SavePreferences(ctx, api.Preferences{Theme: next})
		return themeSavedMsg{seq: seq, prev: prev, err: err}
	}
}

func (m Model) handleThemeSaved(msg themeSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		return m, nil
	}
	m.logger.Warn("theme save failed", "error", msg.err)
	if msg.seq == m.themeSeq {
		m.theme = GetTheme(msg.prev)
		prefs := m.store.Snapshot().User.Preferences
		prefs.Theme = msg.prev
		m.store.Apply(state.SetPreferences(prefs))
	}
	return m, toast(api.MessageOf(msg.err), notify.Error)
}

func (m Model) viewContext() viewContext {
	return viewContext{
		theme:    m.theme,
		styles:   m.theme.Styles(),
		snapshot: m.store.Snapshot(),
		width:    m.width,
		height:   m.height,
		spinner:  m.spinner.View(),
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
