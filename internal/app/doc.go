// Package app provides the orchestration layer for the Mise application.
//
// # Overview
//
// This package wires together configuration, logging, the session identity,
// the API client, the state store and the UI. It is the composition root
// where all dependencies are initialized and connected.
//
// # Startup Sequence
//
//  1. Load configuration from ~/.config/mise/config.toml (or -config)
//  2. Open the rotated log file and attach the logger to the context
//  3. Load or create the session identity
//  4. Build the HTTP client for the Recipe Universe backend
//  5. Create an empty state.Store
//  6. Start the TUI and block until the user exits or the context cancels
//
// The first GET /api/user happens inside the UI, which renders a connecting
// screen and, on failure, the initialization diagnostic.
//
// # Error Handling
//
// Fatal errors (returned from Run, printed by cmd/mise):
//   - Configuration file unreadable or invalid
//   - Log directory cannot be created
//
// Identity and client errors are not returned. They are handed to the UI as
// the startup error so the diagnostic screen explains them.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{Fragment: "pantry"}); err != nil {
//		log.Fatalf("mise failed: %v", err)
//	}
package app
