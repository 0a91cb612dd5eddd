package inmemory_test

import (
	"testing"

	"github.com/next-trace/scg-conference-bus/adapters/inmemory"
)

func TestMatchTopic(t *testing.T) {
	tests := []struct {
		pattern string
		key     string
		want    bool
	}{
		{"user.enrolled", "user.enrolled", true},
		{"user.enrolled", "user.session.attended", false},
		{"user.*", "user.enrolled", true},
		{"user.*", "user.session.attended", false},
		{"user.*.attended", "user.session.attended", true},
		{"user.#", "user.enrolled", true},
		{"user.#", "user.session.attended", true},
		{"user.#", "event.created", false},
		{"#", "event.created", true},
		{"#", "user.session.attended", true},
		{"#.attended", "user.session.attended", true},
		{"*", "user.enrolled", false},
		{"*.*", "user.enrolled", true},
		{"user.#", "user", true},
	}

	for _, tc := range tests {
		if got := inmemory.MatchTopic(tc.pattern, tc.key); got != tc.want {
			t.Errorf("MatchTopic(%q, %q) = %v, want %v", tc.pattern, tc.key, got, tc.want)
		}
	}
}
