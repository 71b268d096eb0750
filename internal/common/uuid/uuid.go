// Package uuid wraps github.com/google/uuid with the small surface the SDK
// needs for request and correlation identifiers.
package uuid

import (
	"github.com/google/uuid"
)

// UUID represents a UUID, aliased from github.com/google/uuid.UUID
type UUID = uuid.UUID

// NewRandom returns a new random UUIDv4 and any error encountered during
// generation.
func NewRandom() (UUID, error) {
	return uuid.NewRandom()
}

// New returns a new random UUIDv4. Panics if UUID generation fails.
func New() UUID {
	return uuid.New()
}

// Parse parses a UUID string into a UUID value. Returns an error if the
// string is not a valid UUID.
func Parse(s string) (UUID, error) {
	return uuid.Parse(s)
}

// MustParse parses a UUID string and panics if the string is not a valid UUID.
func MustParse(s string) UUID {
	return uuid.MustParse(s)
}

// Nil is the zero UUID value.
var Nil = uuid.Nil
