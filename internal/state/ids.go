package state

import (
	"github.com/google/uuid"
)

// NewID returns a fresh identifier for a shape or layer. Copies made for
// history keep the identifier of the original.
func NewID() string {
	return uuid.NewString()
}
