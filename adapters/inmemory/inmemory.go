// Package inmemory provides an in-process Broker for tests and examples.
// It mirrors the AMQP topic semantics the rabbitmq adapter relies on without
// touching a real broker: pattern-based bindings, per-exchange FIFO delivery,
// and exclusive queues that see only events published after they bind.
package inmemory

import (
	"context"
	"sync"
	"time"

	cbus "github.com/next-trace/scg-conference-bus/contract/bus"
	"github.com/next-trace/scg-conference-bus/contract/event"
)

// Broker is a thread-safe in-memory implementation of bus.Broker.
type Broker struct {
	mu       sync.Mutex
	bindings []*binding

	// Published records every encoded publish for assertions in tests.
	Published []Published

	now func() time.Time
}

// Published is one recorded publish.
type Published struct {
	Exchange   string
	RoutingKey string
	Body       []byte
}

type binding struct {
	exchange string
	patterns []string
	handler  cbus.Handler
	ctx      context.Context
}

var _ cbus.Broker = (*Broker)(nil)

// New creates an empty in-memory broker.
func New() *Broker { return &Broker{now: time.Now} }

// Publish encodes the event and delivers it synchronously, in publish order,
// to every subscription whose pattern matches. An event that matches no
// binding is dropped, like a message sent to an exchange with no bound queue.
func (b *Broker) Publish(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := event.Encode(e, b.now())
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.Published = append(b.Published, Published{
		Exchange:   e.Exchange(),
		RoutingKey: e.RoutingKey(),
		Body:       body,
	})
	bound := append([]*binding(nil), b.bindings...)
	b.mu.Unlock()

	for _, bd := range bound {
		if bd.ctx.Err() != nil || bd.exchange != e.Exchange() {
			continue
		}

		if !matchesAny(bd.patterns, e.RoutingKey()) {
			continue
		}

		// Handler errors are the consumer's problem, never the publisher's:
		// a real broker dead-letters the delivery and the publish call has
		// long since returned.
		_ = bd.handler(ctx, cbus.Delivery{
			Exchange:   e.Exchange(),
			RoutingKey: e.RoutingKey(),
			Body:       body,
		})
	}

	return nil
}

// Subscribe registers a handler for the patterns; it sees only events
// published after this call, matching exclusive-queue semantics.
func (b *Broker) Subscribe(ctx context.Context, sub cbus.Subscription, h cbus.Handler) error {
	b.mu.Lock()
	b.bindings = append(b.bindings, &binding{
		exchange: sub.Exchange,
		patterns: sub.Patterns,
		handler:  h,
		ctx:      ctx,
	})
	b.mu.Unlock()

	return nil
}

func matchesAny(patterns []string, key string) bool {
	for _, p := range patterns {
		if MatchTopic(p, key) {
			return true
		}
	}

	return false
}
