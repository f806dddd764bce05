package utils

import "github.com/google/uuid"

// NewSessionToken returns an opaque token for the session cookie. The value
// carries no identity; the sessions table maps it back to a user.
func NewSessionToken() string {
	return uuid.NewString()
}
