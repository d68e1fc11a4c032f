// Package probe provides observability implementations for the registration
// hook's observer interface.
package probe

import (
	"context"
	"log/slog"

	"github.com/matrix-org/synapse-username-from-threepid/internal/hook"
)

// loggingObserver logs hook decisions with structured logging via slog
type loggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a hook observer that logs every decision.
// Proposed usernames and rejection messages are logged at debug; faults at
// error. If logger is nil, uses slog.Default().
func NewLoggingObserver(logger *slog.Logger) hook.Observer {
	if logger == nil {
		logger = slog.Default()
	}

	return &loggingObserver{
		logger: logger.With("event", "registration_hook"),
	}
}

func (o *loggingObserver) DecisionMade(ctx context.Context, attempt *hook.Attempt, decision hook.Decision) {
	attrs := []slog.Attr{
		slog.String("attempt_id", attempt.ID),
		slog.String("decision", decision.Kind.String()),
		slog.Int("threepids", len(attempt.Threepids)),
	}

	switch decision.Kind {
	case hook.KindProposed:
		attrs = append(attrs, slog.String("username", decision.Username))
	case hook.KindRejected:
		attrs = append(attrs, slog.String("message", decision.Message))
	}

	o.logger.LogAttrs(ctx, slog.LevelDebug, "Registration hook decision", attrs...)
}

func (o *loggingObserver) PickFailed(ctx context.Context, attempt *hook.Attempt, err error) {
	o.logger.LogAttrs(ctx, slog.LevelError,
		"Registration hook failed",
		slog.String("attempt_id", attempt.ID),
		slog.String("error", err.Error()),
	)
}
