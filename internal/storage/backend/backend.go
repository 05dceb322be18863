package backend

import "strings"

// Backend names a storage implementation.
type Backend string

const (
	MemoryBackend Backend = "memory"
	SQLiteBackend Backend = "sqlite"
	RedisBackend  Backend = "redis"
)

// IsValid reports whether b names a supported backend.
func (b Backend) IsValid() bool {
	switch b {
	case MemoryBackend, SQLiteBackend, RedisBackend:
		return true
	}
	return false
}

// ParseBackend normalizes a backend name from configuration.
func ParseBackend(s string) Backend {
	return Backend(strings.ToLower(strings.TrimSpace(s)))
}
