package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mise/internal/api"
	"github.com/five82/mise/internal/notify"
	"github.com/five82/mise/internal/router"
	"github.com/five82/mise/internal/state"
)

// page is the lifecycle every routed view implements. The root model mounts
// a fresh page on each resolution and unmounts the previous one, so nothing
// page-local survives a navigation.
type page interface {
	// Mount starts the page. The returned command issues the page's
	// initial requests, if any.
	Mount(env pageEnv) tea.Cmd
	// Unmount releases page-local state. The mount context is cancelled by
	// the caller.
	Unmount()
	// Update receives results and, while Capturing, raw key presses.
	Update(msg tea.Msg) tea.Cmd
	// Handle runs the action bound to a key press.
	Handle(action string) tea.Cmd
	// Bindings lists the page's current key bindings.
	Bindings() []binding
	// Capturing reports whether a text input owns the keyboard.
	Capturing() bool
	View(v viewContext) string
}

// pageFactory builds an unmounted page. The router maps routes to factories.
type pageFactory func() page

// pageEnv is what a mounted page may touch.
type pageEnv struct {
	ctx     context.Context
	token   uint64
	backend api.Backend
	store   *state.Store
	logger  *slog.Logger
}

// viewContext carries what a page needs to render one frame.
type viewContext struct {
	theme    Theme
	styles   Styles
	snapshot state.Snapshot
	width    int
	height   int
	spinner  string
}

// fenced is implemented by results that belong to one navigation. The root
// model drops them when the navigation is no longer current.
type fenced interface {
	navToken() uint64
}

// pageMsg is embedded in every page result message.
type pageMsg struct {
	token uint64
}

func (p pageMsg) navToken() uint64 { return p.token }

// Messages shared by every page.

type toastMsg struct {
	text string
	kind notify.Kind
}

type dismissToastMsg struct {
	id uint64
}

type showModalMsg struct {
	modal Modal
}

type navigateMsg struct {
	route router.Route
}

type fragmentChangedMsg struct{}

type userRefreshedMsg struct {
	pageMsg
	patch api.UserPatch
	err   error
}

// Commands shared by every page.

func toast(text string, kind notify.Kind) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{text: text, kind: kind}
	}
}

func navigate(route router.Route) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{route: route}
	}
}

func showModal(m Modal) tea.Cmd {
	return func() tea.Msg {
		return showModalMsg{modal: m}
	}
}

// refreshUser re-fetches the user record for pages that need fresh data.
func (e pageEnv) refreshUser() tea.Cmd {
	return func() tea.Msg {
		patch, err := e.backend.FetchUser(e.ctx)
		return userRefreshedMsg{pageMsg: pageMsg{e.token}, patch: patch, err: err}
	}
}

// busy sets the store's loading flag.
func (e pageEnv) busy(loading bool) {
	e.store.Apply(state.SetLoading(loading))
}

// failure logs err and returns the toast every failed action shows.
func (e pageEnv) failure(title string, err error) tea.Cmd {
	e.logger.Warn(title, "error", err, "kind", api.KindOf(err))
	return toast(api.MessageOf(err), notify.Error)
}

// loadState is the loading/error/ready status of a page body that depends
// on a fresh user fetch.
type loadState struct {
	loading  bool
	message  string
	errTitle string
	errText  string
}

func (l *loadState) start(message string) {
	l.loading = true
	l.message = message
	l.errTitle, l.errText = "", ""
}

func (l *loadState) fail(title string, err error) {
	l.loading = false
	l.errTitle = title
	l.errText = api.MessageOf(err)
}

func (l *loadState) done() {
	l.loading = false
	l.errTitle, l.errText = "", ""
}

func (l loadState) ready() bool {
	return !l.loading && l.errTitle == ""
}

// render returns the placeholder or error panel, or "" when ready.
func (l loadState) render(v viewContext) string {
	switch {
	case l.loading:
		return renderLoading(v, l.message)
	case l.errTitle != "":
		return renderErrorPanel(v, l.errTitle, l.errText)
	default:
		return ""
	}
}

// handleRefresh applies a userRefreshedMsg to l and the store, returning the
// toast to show on failure.
func (l *loadState) handleRefresh(env pageEnv, msg userRefreshedMsg, title string) tea.Cmd {
	if msg.err != nil {
		l.fail(title, msg.err)
		env.busy(false)
		return env.failure(title, msg.err)
	}
	env.store.Apply(state.MergeUser(msg.patch), state.SetLoading(false))
	l.done()
	return nil
}
