package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/pipegridgo/internal/component"
	"github.com/vk/pipegridgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *component.Registry
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and component
// registry.
func NewApp(outW io.Writer, config *Config, modules ...component.Module) *App {
	logger := newLogger(config.LogLevel, config.LogFormat)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := component.NewRegistry()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	ctxlog.FromContext(ctx).Debug("All component modules registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   config,
	}
}

// Registry returns the application's component registry. This is primarily
// for testing.
func (a *App) Registry() *component.Registry {
	return a.registry
}
