package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	cbus "github.com/next-trace/scg-conference-bus/contract/bus"
	berr "github.com/next-trace/scg-conference-bus/contract/errors"
	"github.com/next-trace/scg-conference-bus/contract/event"
	"github.com/next-trace/scg-conference-bus/metrics"
)

// Publisher maps domain events to durable AMQP messages on topic exchanges.
type Publisher struct {
	source ChannelSource
	logger *zap.Logger
	prop   cbus.HeaderPropagator
	reg    *metrics.Registry
	now    func() time.Time
}

var _ cbus.Publisher = (*Publisher)(nil)

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithPublisherPropagator injects cross-process context into message headers.
func WithPublisherPropagator(hp cbus.HeaderPropagator) PublisherOption {
	return func(p *Publisher) { p.prop = hp }
}

// WithPublisherMetrics records publish outcomes on the given registry.
func WithPublisherMetrics(reg *metrics.Registry) PublisherOption {
	return func(p *Publisher) { p.reg = reg }
}

// NewPublisher creates a Publisher reading channels from source.
func NewPublisher(source ChannelSource, logger *zap.Logger, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		source: source,
		logger: logger.Named("publisher"),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Publish declares the target exchange (create-if-absent, topic, durable),
// serializes the event with an injected envelope, and publishes with the
// persistent delivery mode.
//
// When no channel is available the event is dropped and Publish returns nil:
// the local write that preceded it already committed and must not be rolled
// back for a missing notification. Serialization and live-channel failures do
// return errors.
func (p *Publisher) Publish(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ch, ok := p.source.Channel()
	if !ok {
		p.logger.Warn("channel not available, dropping event",
			zap.String("exchange", e.Exchange()),
			zap.String("routing_key", e.RoutingKey()))
		p.reg.Dropped(e.Exchange(), e.RoutingKey())

		return nil
	}

	if err := declareExchange(ch, e.Exchange()); err != nil {
		return fmt.Errorf("rabbitmq publish declare %s: %w", e.Exchange(), errors.Join(berr.ErrPublishFailed, err))
	}

	body, err := event.Encode(e, p.now())
	if err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	headers := map[string]string{}
	if p.prop != nil {
		p.prop.Inject(ctx, headers)
	}

	var h amqp.Table
	if len(headers) > 0 {
		h = amqp.Table{}
		for k, v := range headers {
			h[k] = v
		}
	}

	err = ch.PublishWithContext(
		ctx,
		e.Exchange(),
		e.RoutingKey(),
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Headers:      h,
			Body:         body,
		},
	)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("rabbitmq publish %s: %w", e.RoutingKey(), errors.Join(berr.ErrPublishFailed, err))
	}

	p.reg.Published(e.Exchange(), e.RoutingKey())
	p.logger.Debug("published event",
		zap.String("exchange", e.Exchange()),
		zap.String("routing_key", e.RoutingKey()))

	return nil
}

// declareExchange is idempotent and safe to repeat on every publish and
// subscribe call.
func declareExchange(ch Channel, name string) error {
	return ch.ExchangeDeclare(name, "topic", true, false, false, false, nil)
}
