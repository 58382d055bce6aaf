package notify

import (
	"context"
	"log/slog"

	domain "loanflow/internal/domain/notify"
)

// LogNotifier writes events to the structured log. It is used when no broker
// is configured.
type LogNotifier struct{ log *slog.Logger }

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, e domain.Event) error {
	n.log.InfoContext(ctx, "loan event",
		"event_id", e.ID,
		"type", e.Type,
		"loan_id", e.LoanID,
		"customer_id", e.CustomerID,
		"actor_id", e.ActorID,
		"amount", e.Amount.StringFixed(2),
	)
	return nil
}
