package bus

import (
	"context"

	"github.com/next-trace/scg-conference-bus/contract/event"
)

// Publisher converts a structured side effect into a durable message.
//
// Publish never blocks on consumer availability: an event sent to an exchange
// with no bound queue is dropped by the broker, and an event sent while the
// broker is unreachable is dropped by the adapter without surfacing an error.
// Local state is the source of truth; the event is a best-effort notification.
type Publisher interface {
	Publish(ctx context.Context, e event.Event) error
}

// Delivery is one received message as handed to a Handler.
type Delivery struct {
	Exchange   string
	RoutingKey string
	Body       []byte
	Headers    map[string]string
}

// Handler processes one delivery. A nil return acknowledges the message;
// an error rejects it toward the dead-letter route without requeueing.
// Handlers must be idempotent: at-least-once delivery means redelivery after
// a dropped connection is possible.
type Handler func(ctx context.Context, d Delivery) error

// Subscription binds an exclusive, process-scoped queue to one exchange with
// one or more routing-key patterns. The queue is destroyed when the consumer
// disconnects; subscribers see only events published after binding.
type Subscription struct {
	Exchange string
	Patterns []string
}

// Consumer receives and reacts to domain events published by other services.
type Consumer interface {
	Subscribe(ctx context.Context, sub Subscription, h Handler) error
}

// Broker combines publishing and consuming. Adapters that implement both can
// be injected wherever either capability is needed, keeping services
// decoupled from concrete transports (RabbitMQ, NATS, in-memory).
type Broker interface {
	Publisher
	Consumer
}
