package app

import (
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/projects"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger    *slog.Logger
	newID     func() string
	listeners []projects.Listener
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithIDGenerator overrides project id generation
func WithIDGenerator(fn func() string) Option {
	return func(cfg *appConfig) {
		cfg.newID = fn
	}
}

// WithListener subscribes fn to the registry before the lanes are built,
// so it is notified ahead of them
func WithListener(fn projects.Listener) Option {
	return func(cfg *appConfig) {
		cfg.listeners = append(cfg.listeners, fn)
	}
}
