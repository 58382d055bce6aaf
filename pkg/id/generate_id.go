package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns a random UUID as exactly 32 lowercase hex characters.
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewEventID returns a time-ordered UUIDv7 string for published events.
// It falls back to a random UUID if the clock source fails.
func NewEventID() string {
	u, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}

// ValidRequestID accepts canonical UUIDs and the 32-hex form returned by NewID32.
func ValidRequestID(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 32 && len(s) != 36 {
		return false
	}
	if len(s) == 36 && strings.Count(s, "-") != 4 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
