package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/pagecore/internal/domain/entity"
)

// Field names shared by every pagecore log line that carries the value.
const (
	FieldComponent    = "component"
	FieldSession      = "session"
	FieldPageID       = "page_id"
	FieldFrameID      = "frame_id"
	FieldNavigationID = "navigation_id"
	FieldURL          = "url"
)

// FromContext extracts the logger from context.
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func with(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, fields(FromContext(ctx).With()).Logger())
}

// WithComponent tags the logger with the subsystem name.
func WithComponent(ctx context.Context, component string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context { return c.Str(FieldComponent, component) })
}

// WithSession tags the logger with the process session id peers see in the
// connection handshake.
func WithSession(ctx context.Context, session string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context { return c.Str(FieldSession, session) })
}

// WithPage tags the logger with a page and its main frame.
func WithPage(ctx context.Context, page entity.PageID, mainFrame entity.FrameID) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Uint64(FieldPageID, uint64(page)).Uint64(FieldFrameID, uint64(mainFrame))
	})
}

// WithNavigation tags the logger with one load: its navigation id and target.
func WithNavigation(ctx context.Context, id entity.NavigationID, url string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Uint64(FieldNavigationID, uint64(id)).Str(FieldURL, url)
	})
}
