package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/next-trace/scg-conference-bus/adapters/rabbitmq"
	berr "github.com/next-trace/scg-conference-bus/contract/errors"
	"github.com/next-trace/scg-conference-bus/contract/event"
)

type publishedMsg struct {
	exchange   string
	routingKey string
	msg        amqp.Publishing
}

// fakeChannel records adapter calls; it is safe for concurrent use because
// consumer loops touch it from their own goroutines.
type fakeChannel struct {
	mu         sync.Mutex
	declares   []string
	deadArgs   amqp.Table
	binds      []string
	published  []publishedMsg
	publishErr error
	declareErr error

	deliveries chan amqp.Delivery
	consumeErr error
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{deliveries: make(chan amqp.Delivery, 8)}
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.declareErr != nil {
		return f.declareErr
	}

	f.declares = append(f.declares, name+"/"+kind)
	if !durable {
		return errors.New("exchange must be durable")
	}

	return nil
}

func (f *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !exclusive {
		return amqp.Queue{}, errors.New("queue must be exclusive")
	}

	f.deadArgs = args

	return amqp.Queue{Name: "amq.gen-test"}, nil
}

func (f *fakeChannel) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.binds = append(f.binds, exchange+"/"+key+"/"+name)

	return nil
}

func (f *fakeChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.consumeErr != nil {
		return nil, f.consumeErr
	}

	if autoAck {
		return nil, errors.New("consume must use manual ack")
	}

	return f.deliveries, nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.publishErr != nil {
		return f.publishErr
	}

	f.published = append(f.published, publishedMsg{exchange: exchange, routingKey: key, msg: msg})

	return nil
}

func (f *fakeChannel) declared() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.declares...)
}

func (f *fakeChannel) bound() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.binds...)
}

func (f *fakeChannel) deadLetterArgs() amqp.Table {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.deadArgs
}

func (f *fakeChannel) sent() []publishedMsg {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]publishedMsg(nil), f.published...)
}

type fakeSource struct{ ch rabbitmq.Channel }

func (s fakeSource) Channel() (rabbitmq.Channel, bool) {
	if s.ch == nil {
		return nil, false
	}

	return s.ch, true
}

func TestPublishSilentDropWhenDisconnected(t *testing.T) {
	pub := rabbitmq.NewPublisher(fakeSource{}, zap.NewNop())

	err := pub.Publish(context.Background(), event.UserEnrolled{UserID: "u1", EventID: "e1", Enrolled: true})
	if err != nil {
		t.Fatalf("publish while disconnected must not error, got %v", err)
	}
}

func TestPublishDeclaresAndMarksPersistent(t *testing.T) {
	ch := newFakeChannel()
	pub := rabbitmq.NewPublisher(fakeSource{ch: ch}, zap.NewNop())

	evt := event.UserEnrolled{UserID: "u1", EventID: "e1", Enrolled: true}
	for range 2 {
		if err := pub.Publish(context.Background(), evt); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	// declare-if-absent repeats on every publish call
	declares := ch.declared()
	if len(declares) != 2 || declares[0] != "user_events/topic" {
		t.Fatalf("declares: %v", declares)
	}

	sent := ch.sent()
	if len(sent) != 2 {
		t.Fatalf("published %d messages", len(sent))
	}

	got := sent[0]
	if got.exchange != "user_events" || got.routingKey != "user.enrolled" {
		t.Fatalf("routing: %s %s", got.exchange, got.routingKey)
	}

	if got.msg.DeliveryMode != amqp.Persistent {
		t.Fatalf("delivery mode: %d", got.msg.DeliveryMode)
	}

	var payload map[string]any
	if err := json.Unmarshal(got.msg.Body, &payload); err != nil {
		t.Fatalf("body: %v", err)
	}

	if payload["userId"] != "u1" || payload["eventId"] != "e1" || payload["enrolled"] != true {
		t.Fatalf("payload: %+v", payload)
	}

	if payload["timestamp"] == nil {
		t.Fatalf("timestamp not injected: %+v", payload)
	}
}

func TestPublishWrapsLiveChannelFailure(t *testing.T) {
	ch := newFakeChannel()
	ch.publishErr = errors.New("boom")
	pub := rabbitmq.NewPublisher(fakeSource{ch: ch}, zap.NewNop())

	err := pub.Publish(context.Background(), event.EventCreated{EventID: "e2", Name: "GopherCon"})
	if !errors.Is(err, berr.ErrPublishFailed) {
		t.Fatalf("want ErrPublishFailed, got %v", err)
	}
}

func TestPublishRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pub := rabbitmq.NewPublisher(fakeSource{ch: newFakeChannel()}, zap.NewNop())
	if err := pub.Publish(ctx, event.EventCreated{EventID: "e3"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
