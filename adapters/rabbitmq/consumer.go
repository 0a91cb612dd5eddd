package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	cbus "github.com/next-trace/scg-conference-bus/contract/bus"
	berr "github.com/next-trace/scg-conference-bus/contract/errors"
	"github.com/next-trace/scg-conference-bus/metrics"
)

const deadExchangeSuffix = ".dead"

// Consumer binds exclusive, process-scoped queues to topic exchanges and
// dispatches deliveries to handlers with explicit acknowledgment.
type Consumer struct {
	source ChannelSource
	logger *zap.Logger
	prop   cbus.HeaderPropagator
	reg    *metrics.Registry

	// retryInterval paces re-subscription while the broker is unavailable.
	retryInterval time.Duration
}

var _ cbus.Consumer = (*Consumer)(nil)

// ConsumerOption configures a Consumer.
type ConsumerOption func(*Consumer)

// WithConsumerPropagator extracts cross-process context from message headers.
func WithConsumerPropagator(hp cbus.HeaderPropagator) ConsumerOption {
	return func(c *Consumer) { c.prop = hp }
}

// WithConsumerMetrics records consume outcomes on the given registry.
func WithConsumerMetrics(reg *metrics.Registry) ConsumerOption {
	return func(c *Consumer) { c.reg = reg }
}

// WithConsumerRetryInterval overrides the re-subscription pace. Used by tests.
func WithConsumerRetryInterval(d time.Duration) ConsumerOption {
	return func(c *Consumer) { c.retryInterval = d }
}

// NewConsumer creates a Consumer reading channels from source.
func NewConsumer(source ChannelSource, logger *zap.Logger, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		source:        source,
		logger:        logger.Named("consumer"),
		retryInterval: defaultRetryInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Subscribe starts a consume loop on its own goroutine and returns. The loop
// declares the exchange, binds an exclusive anonymous queue to every pattern,
// and dispatches each delivery to h. It re-subscribes automatically when the
// connection is replaced, so consumption resumes after a broker outage
// without a process restart. The loop ends when ctx is done.
func (c *Consumer) Subscribe(ctx context.Context, sub cbus.Subscription, h cbus.Handler) error {
	if sub.Exchange == "" || len(sub.Patterns) == 0 {
		return fmt.Errorf("rabbitmq subscribe: exchange and patterns required: %w", berr.ErrSubscribeFailed)
	}

	if h == nil {
		return fmt.Errorf("rabbitmq subscribe %s: handler required: %w", sub.Exchange, berr.ErrSubscribeFailed)
	}

	go c.run(ctx, sub, h)

	return nil
}

func (c *Consumer) run(ctx context.Context, sub cbus.Subscription, h cbus.Handler) {
	log := c.logger.With(zap.String("exchange", sub.Exchange), zap.Strings("patterns", sub.Patterns))

	for {
		if ctx.Err() != nil {
			return
		}

		ch, ok := c.source.Channel()
		if !ok {
			if !sleepCtx(ctx, c.retryInterval) {
				return
			}

			continue
		}

		deliveries, err := c.bind(ch, sub)
		if err != nil {
			log.Warn("subscribe failed, retrying", zap.Error(err))

			if !sleepCtx(ctx, c.retryInterval) {
				return
			}

			continue
		}

		log.Info("consumer started")
		c.drain(ctx, sub, deliveries, h)

		// The delivery channel closed: the connection was replaced or is
		// gone. Loop to bind a fresh queue on the next channel.
		log.Warn("delivery stream closed, resubscribing")
	}
}

// bind declares the exchange and its dead-letter companion, then attaches an
// exclusive anonymous queue. The queue dies with this consumer; each consumer
// sees only events published after it binds.
func (c *Consumer) bind(ch Channel, sub cbus.Subscription) (<-chan amqp.Delivery, error) {
	if err := declareExchange(ch, sub.Exchange); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	dead := sub.Exchange + deadExchangeSuffix
	if err := ch.ExchangeDeclare(dead, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare dead-letter exchange: %w", err)
	}

	q, err := ch.QueueDeclare("", false, true, true, false, amqp.Table{
		"x-dead-letter-exchange": dead,
	})
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	for _, pattern := range sub.Patterns {
		if err := ch.QueueBind(q.Name, pattern, sub.Exchange, false, nil); err != nil {
			return nil, fmt.Errorf("bind %q: %w", pattern, err)
		}
	}

	deliveries, err := ch.Consume(q.Name, "", false, true, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume: %w", err)
	}

	return deliveries, nil
}

func (c *Consumer) drain(ctx context.Context, sub cbus.Subscription, deliveries <-chan amqp.Delivery, h cbus.Handler) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}

			c.dispatch(ctx, sub, d, h)
		}
	}
}

// dispatch acknowledges only after the handler returns success; failure is an
// explicit reject without requeue, which routes the message to the
// dead-letter exchange instead of looping forever on a poison payload.
func (c *Consumer) dispatch(ctx context.Context, sub cbus.Subscription, d amqp.Delivery, h cbus.Handler) {
	c.reg.Consumed(sub.Exchange, d.RoutingKey)

	headers := stringHeaders(d.Headers)

	hctx := ctx
	if c.prop != nil {
		hctx = c.prop.Extract(ctx, headers)
	}

	err := h(hctx, cbus.Delivery{
		Exchange:   sub.Exchange,
		RoutingKey: d.RoutingKey,
		Body:       d.Body,
		Headers:    headers,
	})
	if err != nil {
		c.logger.Error("handler failed, rejecting delivery",
			zap.String("exchange", sub.Exchange),
			zap.String("routing_key", d.RoutingKey),
			zap.Error(err))
		c.reg.Rejected(sub.Exchange, d.RoutingKey)

		if nackErr := d.Nack(false, false); nackErr != nil {
			c.logger.Error("nack failed", zap.Error(nackErr))
		}

		return
	}

	if ackErr := d.Ack(false); ackErr != nil {
		c.logger.Error("ack failed", zap.Error(ackErr))
		return
	}

	c.reg.Acked(sub.Exchange, d.RoutingKey)
}

func stringHeaders(t amqp.Table) map[string]string {
	if len(t) == 0 {
		return nil
	}

	h := make(map[string]string, len(t))
	for k, v := range t {
		if s, ok := v.(string); ok {
			h[k] = s
		}
	}

	return h
}

// sleepCtx waits d or until ctx is done; it reports whether the wait ran out.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
