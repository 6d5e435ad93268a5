// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package appctx carries the CLI's shared configuration and logger on a
// context.Context.
package appctx

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vulntor/eventkit/pkg/config"
)

type key string

const (
	configKey key = "eventkit.config.manager"
	loggerKey key = "eventkit.logger"
)

// WithConfig stores the shared config manager on context.
func WithConfig(ctx context.Context, manager *config.Manager) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, configKey, manager)
}

// Config retrieves the shared config manager from context.
func Config(ctx context.Context) (*config.Manager, bool) {
	if ctx == nil {
		return nil, false
	}
	mgr, ok := ctx.Value(configKey).(*config.Manager)
	return mgr, ok && mgr != nil
}

// CurrentConfig returns the loaded configuration, or the defaults when no
// manager is stored on ctx.
func CurrentConfig(ctx context.Context) config.Config {
	if mgr, ok := Config(ctx); ok {
		return mgr.Get()
	}
	return config.DefaultConfig()
}

// WithLogger stores a command logger on context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the logger stored on ctx, or a disabled logger.
func Logger(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
			return logger
		}
	}
	return zerolog.Nop()
}
