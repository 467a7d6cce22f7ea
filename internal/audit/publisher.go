package audit

import (
	"context"
	"time"
)

// Publisher captures structured audit events onto an inbox channel so
// request handling never blocks on the trail. A Worker drains the inbox
// into the store. Nil publishers drop events, keeping callers test-friendly.
type Publisher struct {
	inbox chan<- Event
}

func NewPublisher(inbox chan<- Event) *Publisher {
	return &Publisher{inbox: inbox}
}

// Emit enqueues an event, stamping the time if unset. When the inbox is
// full the event is dropped rather than stalling a verification request.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	case <-ctx.Done():
	default:
	}
}
