package errutil

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
)

// contextKey names the Sentry context holding the attributes passed to Handle
const contextKey = "relcheck"

// Handle logs a recoverable error and reports it to Sentry when a client is configured
func Handle(ctx context.Context, msg string, err error, attrs ...any) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	logger.Error(msg, append([]any{slog.Any("error", err)}, attrs...)...)

	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}

	values := sentry.Context{}
	for i := 0; i+1 < len(attrs); i += 2 {
		if key, ok := attrs[i].(string); ok {
			values[key] = attrs[i+1]
		}
	}

	hub = hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("message", msg)
		if len(values) > 0 {
			scope.SetContext(contextKey, values)
		}
	})
	hub.CaptureException(err)
}
