package inmemory

import "strings"

// MatchTopic reports whether a dot-separated routing key matches an AMQP
// binding pattern: "*" matches exactly one word, "#" matches zero or more.
func MatchTopic(pattern, key string) bool {
	return match(strings.Split(pattern, "."), strings.Split(key, "."))
}

func match(pattern, key []string) bool {
	if len(pattern) == 0 {
		return len(key) == 0
	}

	switch pattern[0] {
	case "#":
		// "#" may swallow any number of words, including none.
		for i := 0; i <= len(key); i++ {
			if match(pattern[1:], key[i:]) {
				return true
			}
		}

		return false
	case "*":
		return len(key) > 0 && match(pattern[1:], key[1:])
	default:
		return len(key) > 0 && pattern[0] == key[0] && match(pattern[1:], key[1:])
	}
}
