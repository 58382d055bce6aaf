package notifymock

import (
	"context"
	"sync"

	"loanflow/internal/domain/notify"
)

var _ notify.Notifier = (*Recorder)(nil)

// Recorder keeps every event it is handed. Err, when set, is returned after recording.
type Recorder struct {
	mu     sync.Mutex
	events []notify.Event
	Err    error
}

func (r *Recorder) Notify(_ context.Context, e notify.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.Err
}

func (r *Recorder) Events() []notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Types() []notify.Type {
	events := r.Events()
	out := make([]notify.Type, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}
