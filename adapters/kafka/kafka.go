// Package kafka mirrors domain events to Kafka topics, one topic per
// exchange with the routing key as the record key. It is publish-only:
// AMQP binding patterns and exclusive queues have no mapping onto consumer
// groups, so consumption stays on the rabbitmq or nats adapters.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	cbus "github.com/next-trace/scg-conference-bus/contract/bus"
	berr "github.com/next-trace/scg-conference-bus/contract/errors"
	"github.com/next-trace/scg-conference-bus/contract/event"
)

// Writer is a minimal Kafka-like writer interface.
// Users can adapt franz-go or any other client to this.
type Writer interface {
	Write(topic string, key, value []byte, headers map[string]string) error
}

// Adapter implements bus.Publisher using an injected Writer.
type Adapter struct {
	Writer     Writer
	Propagator cbus.HeaderPropagator

	now func() time.Time
}

var _ cbus.Publisher = (*Adapter)(nil)

// New creates a new Kafka adapter instance with the provided writer.
func New(w Writer) *Adapter { return &Adapter{Writer: w, now: time.Now} }

// Publish writes the encoded event to the topic named after its exchange,
// keyed by routing key so per-subject ordering survives partitioning.
func (a *Adapter) Publish(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Writer == nil {
		return fmt.Errorf("kafka publish: %w", berr.ErrNotConnected)
	}

	body, err := event.Encode(e, a.now())
	if err != nil {
		return fmt.Errorf("kafka publish serialize: %w", err)
	}

	headers := map[string]string{}
	if a.Propagator != nil {
		a.Propagator.Inject(ctx, headers)
	}

	if err := a.Writer.Write(e.Exchange(), []byte(e.RoutingKey()), body, headers); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("kafka publish %s: %w", e.RoutingKey(), errors.Join(berr.ErrPublishFailed, err))
	}

	return nil
}
