package validation

import "context"

// SessionStore reports whether a session exists and is not soft-deleted.
type SessionStore interface {
	SessionExists(ctx context.Context, id string) (bool, error)
}

// SpeakerStore reports whether a speaker exists and is not soft-deleted.
type SpeakerStore interface {
	SpeakerExists(ctx context.Context, id string) (bool, error)
}
