// Package router maps location fragments to registered views.
//
// The router never renders anything itself. Resolve reports which view owns
// the current fragment and issues a navigation token; the caller mounts the
// view and uses the token to discard results that arrive after the user has
// moved on. A Router is owned by the UI loop and is not safe for concurrent use.
package router

import "strings"

// Route names a registered destination.
type Route string

// Registered routes, in navigation order.
const (
	Home     Route = "home"
	Generate Route = "generate"
	Cookbook Route = "cookbook"
	Pantry   Route = "pantry"
	Planner  Route = "planner"
	Settings Route = "settings"

	// Unresolved is the active route while the fragment names no registered view.
	Unresolved Route = ""
)

// Routes lists the fixed registry in navigation order.
var Routes = []Route{Home, Generate, Cookbook, Pantry, Planner, Settings}

// Parse normalizes a raw fragment ("#pantry", " pantry ", "") into a route
// name. An empty fragment is Home.
func Parse(fragment string) Route {
	name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(fragment), "#"))
	if name == "" {
		return Home
	}
	return Route(strings.ToLower(name))
}

// Resolution is the outcome of resolving the current fragment.
type Resolution[V any] struct {
	Route Route // the requested name, even when not found
	View  V
	Found bool
	Token uint64
}

// Link is one navigation affordance and whether it is highlighted.
type Link struct {
	Route  Route
	Active bool
}

// Router resolves the location fragment to a view of type V.
type Router[V any] struct {
	routes   map[Route]V
	fragment string
	active   Route
	token    uint64
}

// New returns a router whose location starts at fragment.
func New[V any](fragment string) *Router[V] {
	return &Router[V]{
		routes:   make(map[Route]V),
		fragment: fragment,
		active:   Unresolved,
	}
}

// Register associates name with view. Registering the same name again
// replaces the previous view.
func (r *Router[V]) Register(name Route, view V) {
	r.routes[name] = view
}

// Navigate requests a move to name. It returns false and leaves the fragment
// untouched when name is already the active route; otherwise it updates the
// fragment and the caller must deliver a fragment-change notification.
func (r *Router[V]) Navigate(name Route) bool {
	if name == r.active {
		return false
	}
	r.fragment = string(name)
	return true
}

// SetFragment replaces the location fragment as if the user edited it.
func (r *Router[V]) SetFragment(fragment string) {
	r.fragment = fragment
}

// Fragment returns the raw location fragment.
func (r *Router[V]) Fragment() string {
	return r.fragment
}

// Active returns the active route, or Unresolved after a not-found resolution.
func (r *Router[V]) Active() Route {
	return r.active
}

// Resolve reads the fragment, issues a new navigation token and looks up the
// registered view. An unregistered name sets the active route to Unresolved
// so the tracked route never disagrees with what is on screen.
func (r *Router[V]) Resolve() Resolution[V] {
	name := Parse(r.fragment)
	r.token++

	view, ok := r.routes[name]
	if ok {
		r.active = name
	} else {
		r.active = Unresolved
	}
	return Resolution[V]{Route: name, View: view, Found: ok, Token: r.token}
}

// Token returns the most recently issued navigation token.
func (r *Router[V]) Token() uint64 {
	return r.token
}

// Current reports whether token is still the latest navigation token.
func (r *Router[V]) Current(token uint64) bool {
	return token != 0 && token == r.token
}

// Links returns the registered routes in navigation order with the active
// one highlighted.
func (r *Router[V]) Links() []Link {
	links := make([]Link, 0, len(r.routes))
	for _, route := range Routes {
		if _, ok := r.routes[route]; !ok {
			continue
		}
		links = append(links, Link{Route: route, Active: route == r.active})
	}
	return links
}

// Next returns the registered route after the active one, wrapping around.
// From Unresolved it returns the first registered route.
func (r *Router[V]) Next(step int) Route {
	links := r.Links()
	if len(links) == 0 {
		return Home
	}
	idx := -1
	for i, l := range links {
		if l.Active {
			idx = i
			break
		}
	}
	if idx < 0 {
		return links[0].Route
	}
	n := len(links)
	return links[((idx+step)%n+n)%n].Route
}
