package app

import (
	"context"
	"fmt"

	"github.com/five82/mise/internal/api"
	"github.com/five82/mise/internal/config"
	"github.com/five82/mise/internal/identity"
	"github.com/five82/mise/internal/logging"
	"github.com/five82/mise/internal/state"
	"github.com/five82/mise/internal/ui"
)

// Options configure the Mise application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/mise/config.toml
	Fragment   string // initial location fragment; empty means home
}

// Run boots the Mise TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()
	ctx = logging.WithLogger(ctx, logger)

	logger.Info("starting", "api_base", cfg.APIBase, "fragment", opts.Fragment)

	uiOpts := ui.Options{
		Context:  ctx,
		Store:    state.NewStore(state.Snapshot{}),
		BaseURL:  cfg.APIBase,
		Fragment: opts.Fragment,
		ToastTTL: cfg.ToastTTL,
		Logger:   logger,
	}

	// Identity and client failures are shown in the UI like a failed first
	// fetch, so the user sees the same diagnostic either way.
	backend, err := newBackend(cfg)
	if err != nil {
		logger.Error("startup failed", "error", err)
		uiOpts.InitErr = err
	} else {
		uiOpts.Backend = backend
		uiOpts.BaseURL = backend.BaseURL()
	}

	err = ui.Run(uiOpts)
	logger.Info("stopped", "error", err)
	return err
}

func newBackend(cfg config.Config) (*api.Client, error) {
	id, err := identity.LoadOrCreate(cfg.IdentityPath)
	if err != nil {
		return nil, fmt.Errorf("session identity: %w", err)
	}
	client, err := api.NewClient(cfg.APIBase, id, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}
	return client, nil
}
