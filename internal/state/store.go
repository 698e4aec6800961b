package state

import (
	"strings"
	"sync"
	"time"

	"github.com/five82/mise/internal/api"
)

// Snapshot is an immutable view of the application state.
type Snapshot struct {
	User        api.User
	HasUser     bool
	Route       string
	Recipe      *api.Recipe // current working recipe in the generator flow
	Loading     bool
	LastUpdated time.Time
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	s.User = s.User.Clone()
	if s.Recipe != nil {
		r := s.Recipe.Clone()
		s.Recipe = &r
	}
	return s
}

// HasPantryItem reports whether item is already in the pantry, ignoring case
// and surrounding whitespace.
func (s Snapshot) HasPantryItem(item string) bool {
	needle := strings.ToLower(strings.TrimSpace(item))
	for _, existing := range s.User.Pantry {
		if strings.ToLower(strings.TrimSpace(existing)) == needle {
			return true
		}
	}
	return false
}

// Action mutates a private copy of the snapshot inside Store.Apply.
type Action func(*Snapshot)

// Store holds the single application state. Every change goes through Apply,
// which produces a new snapshot; readers never observe partial updates.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store seeded with initial.
func NewStore(initial Snapshot) *Store {
	return &Store{snapshot: initial.Clone()}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Apply runs actions in order against a copy of the current snapshot, stores
// the result and returns a copy of it.
func (s *Store) Apply(actions ...Action) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot.Clone()
	for _, action := range actions {
		if action != nil {
			action(&next)
		}
	}
	next.LastUpdated = time.Now()
	s.snapshot = next
	return next.Clone()
}

// SetUser replaces the user record.
func SetUser(u api.User) Action {
	u = u.Clone()
	return func(s *Snapshot) {
		s.User = u.Clone()
		s.HasUser = true
	}
}

// MergeUser overwrites the user fields present in patch.
func MergeUser(patch api.UserPatch) Action {
	return func(s *Snapshot) {
		s.User = s.User.Merge(patch)
		s.HasUser = true
	}
}

// SetRoute records the active route name.
func SetRoute(route string) Action {
	return func(s *Snapshot) {
		s.Route = route
	}
}

// SetRecipe overwrites the current working recipe. A nil recipe clears it.
func SetRecipe(r *api.Recipe) Action {
	var dup *api.Recipe
	if r != nil {
		c := r.Clone()
		dup = &c
	}
	return func(s *Snapshot) {
		s.Recipe = dup
	}
}

// SetLoading sets the busy flag.
func SetLoading(loading bool) Action {
	return func(s *Snapshot) {
		s.Loading = loading
	}
}

// AppendCookbook adds a saved recipe to the cookbook.
func AppendCookbook(r api.Recipe) Action {
	r = r.Clone()
	return func(s *Snapshot) {
		s.User.Cookbook = append(s.User.Cookbook, r)
	}
}

// RemoveCookbook drops the recipe with the given id, if present.
func RemoveCookbook(id string) Action {
	return func(s *Snapshot) {
		out := s.User.Cookbook[:0]
		for _, r := range s.User.Cookbook {
			if r.ID != id {
				out = append(out, r)
			}
		}
		s.User.Cookbook = out
	}
}

// SetPantry replaces the pantry list.
func SetPantry(items []string) Action {
	dup := append([]string{}, items...)
	return func(s *Snapshot) {
		s.User.Pantry = append([]string{}, dup...)
	}
}

// AddPantryItem appends item unless it is blank or already present.
func AddPantryItem(item string) Action {
	item = strings.TrimSpace(item)
	return func(s *Snapshot) {
		if item == "" || s.HasPantryItem(item) {
			return
		}
		s.User.Pantry = append(s.User.Pantry, item)
	}
}

// RemovePantryItem removes exact matches of item. Removing an absent item
// leaves the pantry unchanged.
func RemovePantryItem(item string) Action {
	return func(s *Snapshot) {
		out := make([]string, 0, len(s.User.Pantry))
		for _, existing := range s.User.Pantry {
			if existing != item {
				out = append(out, existing)
			}
		}
		if len(out) == len(s.User.Pantry) {
			return
		}
		s.User.Pantry = out
	}
}

// AssignMeal sets one planner slot; an empty id clears it.
func AssignMeal(day, meal, recipeID string) Action {
	return func(s *Snapshot) {
		if s.User.MealPlan == nil {
			s.User.MealPlan = api.MealPlan{}
		}
		s.User.MealPlan[day] = s.User.MealPlan[day].WithSlot(meal, recipeID)
	}
}

// SetMealPlan replaces the meal plan.
func SetMealPlan(plan api.MealPlan) Action {
	plan = plan.Clone()
	return func(s *Snapshot) {
		s.User.MealPlan = plan.Clone()
	}
}

// SetPreferences replaces the user's preferences.
func SetPreferences(p api.Preferences) Action {
	return func(s *Snapshot) {
		s.User.Preferences = p
	}
}
