package model

import "github.com/google/uuid"

// NewID generates an identifier for a new working set entry. IDs only
// need to be unique and stable for the session.
func NewID() string {
	return uuid.NewString()
}
