// Package nats is an alternative transport for deployments that already run
// NATS instead of RabbitMQ. Exchanges become subject prefixes and binding
// patterns translate to NATS wildcards. Core NATS is fire-and-forget: there
// is no broker-side persistence or redelivery, so the durability guarantees
// of the rabbitmq adapter do not apply here.
package nats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	cbus "github.com/next-trace/scg-conference-bus/contract/bus"
	berr "github.com/next-trace/scg-conference-bus/contract/errors"
	"github.com/next-trace/scg-conference-bus/contract/event"
)

// Client is a minimal NATS-like interface decoupled from the concrete
// library. Users can provide a wrapper around their NATS connection.
type Client interface {
	Publish(subject string, data []byte, headers map[string]string) error
	Subscribe(subject string, cb func(subject string, data []byte, headers map[string]string)) (Unsubscriber, error)
}

// Unsubscriber tears down one subscription.
type Unsubscriber interface {
	Unsubscribe() error
}

// Adapter implements bus.Broker using an injected NATS-like Client.
type Adapter struct {
	Client     Client
	Propagator cbus.HeaderPropagator

	now func() time.Time
}

var _ cbus.Broker = (*Adapter)(nil)

// New creates a new NATS adapter instance with the provided client.
func New(c Client) *Adapter { return &Adapter{Client: c, now: time.Now} }

// NewWithPropagator allows configuring a HeaderPropagator for context propagation.
func NewWithPropagator(c Client, hp cbus.HeaderPropagator) *Adapter {
	return &Adapter{Client: c, Propagator: hp, now: time.Now}
}

// Publish maps the event to subject "<exchange>.<routingKey>".
func (a *Adapter) Publish(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Client == nil {
		return fmt.Errorf("nats publish: %w", berr.ErrNotConnected)
	}

	body, err := event.Encode(e, a.now())
	if err != nil {
		return fmt.Errorf("nats publish serialize: %w", err)
	}

	headers := map[string]string{}
	if a.Propagator != nil {
		a.Propagator.Inject(ctx, headers)
	}

	subject := e.Exchange() + "." + e.RoutingKey()
	if err := a.Client.Publish(subject, body, headers); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("nats publish %s: %w", subject, errors.Join(berr.ErrPublishFailed, err))
	}

	return nil
}

// Subscribe attaches one NATS subscription per pattern. Subscriptions are
// released when ctx is done.
func (a *Adapter) Subscribe(ctx context.Context, sub cbus.Subscription, h cbus.Handler) error {
	if a.Client == nil {
		return fmt.Errorf("nats subscribe: %w", berr.ErrNotConnected)
	}

	if sub.Exchange == "" || len(sub.Patterns) == 0 {
		return fmt.Errorf("nats subscribe: exchange and patterns required: %w", berr.ErrSubscribeFailed)
	}

	var unsubs []Unsubscriber

	for _, pattern := range sub.Patterns {
		subject, err := subjectForPattern(sub.Exchange, pattern)
		if err != nil {
			return err
		}

		u, err := a.Client.Subscribe(subject, func(subj string, data []byte, headers map[string]string) {
			hctx := ctx
			if a.Propagator != nil {
				hctx = a.Propagator.Extract(ctx, headers)
			}

			// No broker-side redelivery exists in core NATS; a handler
			// error here is final and the message is gone.
			_ = h(hctx, cbus.Delivery{
				Exchange:   sub.Exchange,
				RoutingKey: strings.TrimPrefix(subj, sub.Exchange+"."),
				Body:       data,
				Headers:    headers,
			})
		})
		if err != nil {
			return fmt.Errorf("nats subscribe %s: %w", subject, errors.Join(berr.ErrSubscribeFailed, err))
		}

		unsubs = append(unsubs, u)
	}

	go func() {
		<-ctx.Done()

		for _, u := range unsubs {
			_ = u.Unsubscribe()
		}
	}()

	return nil
}

// subjectForPattern translates an AMQP binding pattern to a NATS subject:
// "*" maps to "*" and a trailing "#" maps to ">". A "#" anywhere else has no
// NATS equivalent and is rejected.
func subjectForPattern(exchange, pattern string) (string, error) {
	words := strings.Split(pattern, ".")

	for i, w := range words {
		if w != "#" {
			continue
		}

		if i != len(words)-1 {
			return "", fmt.Errorf("nats subscribe: %q: non-terminal # unsupported: %w", pattern, berr.ErrSubscribeFailed)
		}

		words[i] = ">"
	}

	return exchange + "." + strings.Join(words, "."), nil
}
