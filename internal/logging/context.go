package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every later log line with the subsystem that wrote it,
// e.g. "config" or "dock-view".
func WithComponent(ctx context.Context, component string) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithDockID scopes a drag session's log lines to the dock being dragged.
func WithDockID(ctx context.Context, dockID uint32) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Uint32("dock_id", dockID)
	})
}

func withFields(ctx context.Context, add func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, add(FromContext(ctx).With()).Logger())
}
