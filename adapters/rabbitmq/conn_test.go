package rabbitmq

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func TestChannelUnavailableBeforeConnect(t *testing.T) {
	c := &Conn{
		cfg:    Config{RetryInterval: time.Hour},
		logger: zap.NewNop(),
		closed: make(chan struct{}),
	}

	if _, ok := c.Channel(); ok {
		t.Fatalf("expected no channel before connect")
	}
}

func TestDialFailureKeepsRetrying(t *testing.T) {
	var attempts atomic.Int32

	c := &Conn{
		cfg:    Config{RetryInterval: 5 * time.Millisecond},
		logger: zap.NewNop(),
		closed: make(chan struct{}),
		dial: func() (*amqp.Connection, error) {
			attempts.Add(1)
			return nil, errors.New("connection refused")
		},
	}

	go c.run()
	defer c.Close()

	deadline := time.Now().Add(2 * time.Second)
	for attempts.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if got := attempts.Load(); got < 3 {
		t.Fatalf("expected repeated dial attempts, got %d", got)
	}

	if _, ok := c.Channel(); ok {
		t.Fatalf("channel must stay unavailable while dialing fails")
	}
}

func TestCloseIsIdempotentAndStopsRetries(t *testing.T) {
	var attempts atomic.Int32

	c := &Conn{
		cfg:    Config{RetryInterval: time.Millisecond},
		logger: zap.NewNop(),
		closed: make(chan struct{}),
		dial: func() (*amqp.Connection, error) {
			attempts.Add(1)
			return nil, errors.New("connection refused")
		},
	}

	go c.run()

	time.Sleep(10 * time.Millisecond)
	c.Close()
	c.Close()

	settled := attempts.Load()

	time.Sleep(20 * time.Millisecond)

	// one extra attempt may already have been in flight when Close fired
	if got := attempts.Load(); got > settled+1 {
		t.Fatalf("retries continued after close: %d -> %d", settled, got)
	}
}

func TestDialDefaultsRetryInterval(t *testing.T) {
	c := Dial(Config{URL: "amqp://localhost:1/"}, zap.NewNop())
	defer c.Close()

	if c.cfg.RetryInterval != defaultRetryInterval {
		t.Fatalf("retry interval: %v", c.cfg.RetryInterval)
	}
}
