// Package ui provides the Bubble Tea client for the Recipe Universe backend.
//
// # Architecture Overview
//
// Model is the root tea.Model. It owns the router, the store handle, the
// toast queue and the modal overlay, and it mounts exactly one page at a
// time. Pages implement the page interface and are built fresh by a factory
// on every route resolution, so nothing page-local survives a navigation.
//
// # Package Structure
//
//   - app.go: Root model, key dispatch, route resolution and theme toggle
//   - startup.go: Initial user fetch and the initialization diagnostic
//   - page.go: Page lifecycle, shared messages and the load placeholder
//   - page_*.go: One file per route (home, generate, cookbook, pantry,
//     planner, settings) plus the not-found page
//   - modal.go: Recipe viewer and confirmation dialogs
//   - header.go: Header nav, toasts and the footer key hints
//   - components.go: Shared render helpers for recipes and panels
//   - theme.go, keys.go, layout.go: Palettes, bindings and sizing constants
//
// # Event Flow
//
//  1. Init fetches the user record; the main layout appears only after it
//     succeeds. On failure a diagnostic is shown and r retries.
//  2. A fragment change (number keys, tab, or the ":" prompt) unmounts the
//     current page, cancels its context and mounts the next one.
//  3. Pages issue requests as tea.Cmds. Results carry the navigation token
//     they were issued under; results from an earlier navigation are
//     dropped by the root model before they reach a page.
//  4. Every store mutation happens inside Update.
//
// # Key Bindings
//
//   - 1-6: Home, Generate, Cookbook, Pantry, Planner, Settings
//   - Tab/Shift+Tab: Cycle pages
//   - :: Go to a page by name
//   - T: Toggle theme
//   - ?: Help
//   - q: Quit
package ui
