package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/pinlock/internal/config"
	"github.com/vk/pinlock/internal/ctxlog"
	"github.com/vk/pinlock/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// loaded registry.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cfg      *Config
	registry *registry.Registry
}

// NewApp constructs an App: it builds an isolated logger, runs every
// injected loader over the configured pin paths, merges the results, and
// constructs the registry. Loaders are injected rather than hard-wired so
// tests can substitute their own.
func NewApp(ctx context.Context, outW, errW io.Writer, cfg *Config, loaders ...config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	model := &config.Model{}
	for _, loader := range loaders {
		loaded, err := loader.Load(ctx, cfg.PinPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load pin files: %w", err)
		}
		model.Merge(loaded)
	}
	logger.Debug("Pin files loaded into unified model.", "dependencies", len(model.Dependencies))

	var opts []registry.Option
	if cfg.RequireIntegrity {
		opts = append(opts, registry.WithRequiredIntegrity())
	}
	reg := registry.New(model, opts...)
	logger.Debug("Registry constructed.", "records", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		cfg:      cfg,
		registry: reg,
	}, nil
}

// Registry returns the application's registry. This is primarily for
// testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Context returns a context derived from parent carrying the app logger.
func (a *App) Context(parent context.Context) context.Context {
	return ctxlog.WithLogger(parent, a.logger)
}
