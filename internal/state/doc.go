// Package state holds the single application state shared by the router and
// the pages of the Mise client.
//
// # Overview
//
// The Store owns one Snapshot: the current user record, the active route
// name, the current working recipe of the generator flow and a busy flag.
// Nothing else in the program keeps its own copy of these values; pages read
// a Snapshot, render from it, and change it only through Store.Apply.
//
// # Actions
//
// Mutations are expressed as Action values built by typed constructors:
//
//	snap := store.Apply(
//		state.MergeUser(patch),
//		state.SetLoading(false),
//	)
//
// Apply copies the current snapshot, runs the actions in order against the
// copy, stores it and returns another copy. A reader therefore never sees a
// half-applied sequence, and a Snapshot held by a page never changes under
// it.
//
// Available actions:
//
//   - SetUser / MergeUser: replace the user or overwrite the fields present
//     in a /api/user payload (no deep merge)
//   - SetRoute: record the active route
//   - SetRecipe: overwrite the current working recipe (never queued)
//   - SetLoading: busy flag shown in the header
//   - AppendCookbook / RemoveCookbook
//   - SetPantry / AddPantryItem / RemovePantryItem
//   - AssignMeal / SetMealPlan
//   - SetPreferences
//
// # Rendering
//
// The Store never triggers rendering. Bubble Tea redraws after every Update,
// so a page that applies actions while handling a message is re-rendered
// on the same turn.
//
// # Concurrency Model
//
// Bubble Tea runs Update on one goroutine but commands run concurrently, and
// a command may read a Snapshot while Update applies actions. The Store uses
// a sync.RWMutex held only while copying; no lock is held across network I/O.
//
// # Testing Considerations
//
// The zero Store is ready to use:
//
//	store := &state.Store{}
//	store.Apply(state.SetUser(api.User{Pantry: []string{"Salt"}}))
package state
