// Package config loads Mise's startup configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/mise/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. MISE_API_BASE and MISE_LOG_LEVEL override whatever was loaded
//
// cmd/mise loads a .env file from the working directory before calling Load,
// so the environment overrides can live there during development.
//
// # Default Values
//
//   - Config file: ~/.config/mise/config.toml
//   - Backend: http://127.0.0.1:5000
//   - Request timeout: 60s (recipe generation is slow)
//   - Toast lifetime: 5s
//   - Log file: ~/.local/state/mise/mise.log
//   - Identity file: ~/.local/state/mise/identity.toml
//
// # TOML Format
//
//	api_base = "http://127.0.0.1:5000"
//	request_timeout_seconds = 60
//	toast_seconds = 5
//	log_file = "~/.local/state/mise/mise.log"
//	log_level = "info"
//	log_format = "text"    # or "json"
//	identity_path = "~/.local/state/mise/identity.toml"
//
// All fields are optional. Tilde expansion is performed for paths.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parse errors
package config
