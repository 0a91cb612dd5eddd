package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	berr "github.com/next-trace/scg-conference-bus/contract/errors"
)

// Event is an immutable domain fact published to a topic exchange.
// Exchange names one bounded context; RoutingKey is the dot-hierarchical subject.
type Event interface {
	Exchange() string
	RoutingKey() string
}

// Envelope carries the fields the publisher injects at send time.
// MessageID makes at-least-once redelivery deduplicatable on the consumer
// side; Timestamp is set when the message is encoded, not by the origin
// transaction. The key is messageId so it can never shadow a domain field.
type Envelope struct {
	MessageID string    `json:"messageId"`
	Timestamp time.Time `json:"timestamp"`
}

// Encode serializes an event body plus an injected envelope to a JSON payload.
// The envelope fields overwrite any identically named fields on the event.
func Encode(e Event, now time.Time) ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.RoutingKey(), errors.Join(berr.ErrSerializationFailed, err))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.RoutingKey(), errors.Join(berr.ErrSerializationFailed, err))
	}

	id, _ := json.Marshal(uuid.NewString())
	ts, _ := json.Marshal(now.UTC().Format(time.RFC3339))

	fields["messageId"] = id
	fields["timestamp"] = ts

	return json.Marshal(fields)
}

// registry maps routing keys to typed decoders so consumers get tagged
// variants instead of untyped maps.
var (
	regMu    sync.RWMutex
	registry = map[string]func() Event{}
)

// Register associates a routing key with a constructor for its event type.
// Later registrations for the same key win; Register is typically called from
// package init in this package only.
func Register(routingKey string, ctor func() Event) {
	regMu.Lock()
	registry[routingKey] = ctor
	regMu.Unlock()
}

// Decode parses a received payload into the typed event registered for the
// routing key, plus the envelope injected by the publisher.
// An unknown key and a malformed body are distinct error kinds.
func Decode(routingKey string, body []byte) (Event, Envelope, error) {
	regMu.RLock()
	ctor, ok := registry[routingKey]
	regMu.RUnlock()

	if !ok {
		return nil, Envelope{}, fmt.Errorf("decode %s: %w", routingKey, berr.ErrUnknownRoutingKey)
	}

	e := ctor()
	if err := json.Unmarshal(body, e); err != nil {
		return nil, Envelope{}, fmt.Errorf("decode %s: %w", routingKey, errors.Join(berr.ErrDecodeFailed, err))
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, Envelope{}, fmt.Errorf("decode %s envelope: %w", routingKey, errors.Join(berr.ErrDecodeFailed, err))
	}

	return e, env, nil
}
