package event_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	berr "github.com/next-trace/scg-conference-bus/contract/errors"
	"github.com/next-trace/scg-conference-bus/contract/event"
)

func TestEncodeInjectsEnvelope(t *testing.T) {
	now := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

	body, err := event.Encode(event.UserEnrolled{UserID: "u1", EventID: "e1", Enrolled: true}, now)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got["userId"] != "u1" || got["eventId"] != "e1" || got["enrolled"] != true {
		t.Fatalf("payload fields: %+v", got)
	}

	if got["timestamp"] != "2026-03-14T10:30:00Z" {
		t.Fatalf("timestamp: %v", got["timestamp"])
	}

	id, _ := got["messageId"].(string)
	if id == "" {
		t.Fatalf("messageId missing")
	}
}

func TestEncodeAssignsUniqueIDs(t *testing.T) {
	ids := map[string]bool{}

	for range 3 {
		body, err := event.Encode(event.EventCreated{EventID: "e9", Name: "GoConf"}, time.Now())
		if err != nil {
			t.Fatalf("encode: %v", err)
		}

		var env event.Envelope
		if err := json.Unmarshal(body, &env); err != nil {
			t.Fatalf("envelope: %v", err)
		}

		if env.MessageID == "" || ids[env.MessageID] {
			t.Fatalf("duplicate or empty message id %q", env.MessageID)
		}

		ids[env.MessageID] = true
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	body, err := event.Encode(event.UserSessionAttended{
		UserID:    "u2",
		SessionID: "s7",
		EventID:   "e1",
		Attended:  true,
	}, time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, env, err := event.Decode(event.KeyUserSessionAttended, body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	got, ok := decoded.(*event.UserSessionAttended)
	if !ok {
		t.Fatalf("decoded type %T", decoded)
	}

	if got.UserID != "u2" || got.SessionID != "s7" || !got.Attended {
		t.Fatalf("decoded fields: %+v", got)
	}

	if env.MessageID == "" || env.Timestamp.IsZero() {
		t.Fatalf("envelope not injected: %+v", env)
	}
}

func TestDecodeUnknownRoutingKey(t *testing.T) {
	_, _, err := event.Decode("user.unknown", []byte(`{}`))
	if !errors.Is(err, berr.ErrUnknownRoutingKey) {
		t.Fatalf("want ErrUnknownRoutingKey, got %v", err)
	}
}

func TestDecodeMalformedBody(t *testing.T) {
	_, _, err := event.Decode(event.KeyUserEnrolled, []byte(`{"userId":`))
	if !errors.Is(err, berr.ErrDecodeFailed) {
		t.Fatalf("want ErrDecodeFailed, got %v", err)
	}
}
