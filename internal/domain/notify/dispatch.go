package notify

import (
	"context"
	"log/slog"
	"time"

	"loanflow/pkg/id"
)

const DefaultTimeout = 3 * time.Second

// Dispatcher hands committed events to a Notifier. Delivery is best effort:
// failures are logged and never returned.
type Dispatcher struct {
	n       Notifier
	log     *slog.Logger
	timeout time.Duration
}

func NewDispatcher(n Notifier, log *slog.Logger, timeout time.Duration) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{n: n, log: log, timeout: timeout}
}

// Dispatch sends events in order. The caller's cancellation is ignored so a
// client disconnect after commit does not drop the notification.
func (d *Dispatcher) Dispatch(ctx context.Context, events ...Event) {
	if d == nil || d.n == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	for _, e := range events {
		if e.ID == "" {
			e.ID = id.NewEventID()
		}
		if err := d.n.Notify(ctx, e); err != nil {
			d.log.Warn("notification failed",
				"event_id", e.ID, "type", e.Type, "loan_id", e.LoanID, "error", err)
		}
	}
}
