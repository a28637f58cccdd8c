package uuidx

import (
	"strings"

	"github.com/google/uuid"
)

// New generates a new UUID using the version 7 format and returns it.
// It panics if the UUID generation fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString generates a new version 7 UUID and returns it as a string.
func NewString() string {
	return New().String()
}

// Short returns the first block of the canonical string form, for listings.
func Short(id uuid.UUID) string {
	s := id.String()
	return s[:strings.IndexByte(s, '-')]
}

// HasPrefix reports whether the canonical string form of id starts with prefix.
// An empty prefix never matches.
func HasPrefix(id uuid.UUID, prefix string) bool {
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(id.String(), strings.ToLower(prefix))
}
