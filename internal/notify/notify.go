// Package notify tracks transient toast messages and the single modal slot
// shared by every page.
package notify

import (
	"sync"
	"time"
)

// Kind selects the toast's styling.
type Kind int

const (
	Info Kind = iota
	Success
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 5 * time.Second

// Toast is one transient message.
type Toast struct {
	ID      uint64
	Message string
	Kind    Kind
	Expires time.Time
}

// Toasts is a stack of visible toasts. Toasts are never deduplicated and the
// stack has no size limit; each one is dismissed on its own.
type Toasts struct {
	mu     sync.Mutex
	ttl    time.Duration
	nextID uint64
	items  []Toast
	now    func() time.Time
}

// NewToasts returns an empty stack whose toasts live for ttl (DefaultTTL when
// ttl is not positive).
func NewToasts(ttl time.Duration) *Toasts {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Toasts{ttl: ttl, now: time.Now}
}

// TTL returns the lifetime given to new toasts.
func (t *Toasts) TTL() time.Duration {
	return t.ttl
}

// Show pushes a toast and returns it. The caller schedules Dismiss(ID) after TTL.
func (t *Toasts) Show(message string, kind Kind) Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	toast := Toast{
		ID:      t.nextID,
		Message: message,
		Kind:    kind,
		Expires: t.now().Add(t.ttl),
	}
	t.items = append(t.items, toast)
	return toast
}

// Dismiss removes the toast with id. Unknown ids are ignored.
func (t *Toasts) Dismiss(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.items[:0]
	for _, item := range t.items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	t.items = out
}

// Visible returns the toasts in the order they were shown.
func (t *Toasts) Visible() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Toast, len(t.items))
	copy(out, t.items)
	return out
}

// Overlay holds at most one modal. Showing a new one replaces the old.
type Overlay[C any] struct {
	content C
	visible bool
}

// Show replaces any visible content and makes the overlay visible.
func (o *Overlay[C]) Show(content C) {
	o.content = content
	o.visible = true
}

// Hide clears the content and hides the overlay.
func (o *Overlay[C]) Hide() {
	var zero C
	o.content = zero
	o.visible = false
}

// Set replaces the content of a visible overlay without changing visibility.
func (o *Overlay[C]) Set(content C) {
	if o.visible {
		o.content = content
	}
}

// Visible reports whether a modal is showing.
func (o *Overlay[C]) Visible() bool {
	return o.visible
}

// Content returns the visible content and whether there is any.
func (o *Overlay[C]) Content() (C, bool) {
	return o.content, o.visible
}
