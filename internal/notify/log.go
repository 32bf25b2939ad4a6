package notify

import (
	"context"
	"log/slog"
)

// LogNotifier writes reminders as structured log lines.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (ln *LogNotifier) Notify(ctx context.Context, r Reminder) error {
	attrs := []any{
		slog.String("uid", r.UserID.String()),
		slog.String("username", r.Username),
	}
	if r.LastActivity != nil {
		attrs = append(attrs, slog.Time("last_activity", *r.LastActivity))
	}
	ln.logger.InfoContext(ctx, r.Message, attrs...)
	return nil
}

func (ln *LogNotifier) Close() error {
	return nil
}
