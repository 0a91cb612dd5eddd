package rabbitmq_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/next-trace/scg-conference-bus/adapters/rabbitmq"
	cbus "github.com/next-trace/scg-conference-bus/contract/bus"
)

type fakeAcker struct {
	mu     sync.Mutex
	acks   []uint64
	nacks  []uint64
	reques []bool
}

func (a *fakeAcker) Ack(tag uint64, multiple bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acks = append(a.acks, tag)

	return nil
}

func (a *fakeAcker) Nack(tag uint64, multiple, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacks = append(a.nacks, tag)
	a.reques = append(a.reques, requeue)

	return nil
}

func (a *fakeAcker) Reject(tag uint64, requeue bool) error { return a.Nack(tag, false, requeue) }

func (a *fakeAcker) snapshot() (acks, nacks []uint64, requeues []bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]uint64(nil), a.acks...), append([]uint64(nil), a.nacks...), append([]bool(nil), a.reques...)
}

// swapSource hands out the current channel and lets tests replace it,
// mimicking a reconnect.
type swapSource struct {
	mu sync.Mutex
	ch rabbitmq.Channel
}

func (s *swapSource) Channel() (rabbitmq.Channel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ch == nil {
		return nil, false
	}

	return s.ch, true
}

func (s *swapSource) swap(ch rabbitmq.Channel) {
	s.mu.Lock()
	s.ch = ch
	s.mu.Unlock()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}

		time.Sleep(5 * time.Millisecond)
	}

	t.Fatalf("condition not met in time")
}

func TestSubscribeValidatesArguments(t *testing.T) {
	c := rabbitmq.NewConsumer(&swapSource{}, zap.NewNop())

	if err := c.Subscribe(context.Background(), cbus.Subscription{}, func(context.Context, cbus.Delivery) error { return nil }); err == nil {
		t.Fatalf("expected error for missing exchange")
	}

	sub := cbus.Subscription{Exchange: "user_events", Patterns: []string{"user.enrolled"}}
	if err := c.Subscribe(context.Background(), sub, nil); err == nil {
		t.Fatalf("expected error for nil handler")
	}
}

func TestConsumerAcksAfterSuccessfulHandling(t *testing.T) {
	ch := newFakeChannel()
	src := &swapSource{ch: ch}
	c := rabbitmq.NewConsumer(src, zap.NewNop(), rabbitmq.WithConsumerRetryInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu       sync.Mutex
		received []cbus.Delivery
	)

	sub := cbus.Subscription{Exchange: "user_events", Patterns: []string{"user.enrolled"}}
	err := c.Subscribe(ctx, sub, func(_ context.Context, d cbus.Delivery) error {
		mu.Lock()
		received = append(received, d)
		mu.Unlock()

		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	waitFor(t, func() bool { return len(ch.bound()) == 1 })

	if binds := ch.bound(); binds[0] != "user_events/user.enrolled/amq.gen-test" {
		t.Fatalf("bind: %s", binds[0])
	}

	if args := ch.deadLetterArgs(); args["x-dead-letter-exchange"] != "user_events.dead" {
		t.Fatalf("dead-letter args: %v", args)
	}

	acker := &fakeAcker{}
	ch.deliveries <- amqp.Delivery{
		Acknowledger: acker,
		DeliveryTag:  1,
		RoutingKey:   "user.enrolled",
		Body:         []byte(`{"userId":"u1","eventId":"e1","enrolled":true}`),
	}

	waitFor(t, func() bool {
		acks, _, _ := acker.snapshot()
		return len(acks) == 1
	})

	mu.Lock()
	defer mu.Unlock()

	if len(received) != 1 || received[0].RoutingKey != "user.enrolled" || received[0].Exchange != "user_events" {
		t.Fatalf("received: %+v", received)
	}
}

func TestConsumerRejectsWithoutRequeueOnHandlerFailure(t *testing.T) {
	ch := newFakeChannel()
	src := &swapSource{ch: ch}
	c := rabbitmq.NewConsumer(src, zap.NewNop(), rabbitmq.WithConsumerRetryInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := cbus.Subscription{Exchange: "user_events", Patterns: []string{"#"}}
	err := c.Subscribe(ctx, sub, func(context.Context, cbus.Delivery) error {
		return errors.New("malformed payload")
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	waitFor(t, func() bool { return len(ch.bound()) == 1 })

	acker := &fakeAcker{}
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, DeliveryTag: 7, RoutingKey: "user.enrolled", Body: []byte(`{`)}

	waitFor(t, func() bool {
		_, nacks, _ := acker.snapshot()
		return len(nacks) == 1
	})

	acks, nacks, requeues := acker.snapshot()
	if len(acks) != 0 {
		t.Fatalf("unexpected acks: %v", acks)
	}

	if nacks[0] != 7 || requeues[0] {
		t.Fatalf("want nack without requeue, got tag=%d requeue=%v", nacks[0], requeues[0])
	}
}

func TestConsumerResubscribesAfterStreamClose(t *testing.T) {
	first := newFakeChannel()
	src := &swapSource{ch: first}
	c := rabbitmq.NewConsumer(src, zap.NewNop(), rabbitmq.WithConsumerRetryInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := cbus.Subscription{Exchange: "event_events", Patterns: []string{"event.created"}}
	if err := c.Subscribe(ctx, sub, func(context.Context, cbus.Delivery) error { return nil }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	waitFor(t, func() bool { return len(first.bound()) == 1 })

	// Simulated outage: the stream closes and no channel is available.
	src.swap(nil)
	close(first.deliveries)

	// Recovery: a new channel appears; the consumer must bind again.
	second := newFakeChannel()
	src.swap(second)

	waitFor(t, func() bool { return len(second.bound()) == 1 })
}
