package models

import (
	"time"
)

// AdminSession is a bearer token that grants roster and reset access
type AdminSession struct {
	// Token is the opaque bearer value handed to the client
	Token string

	// CreatedAt is when the session was issued
	CreatedAt time.Time

	// ExpiresAt is when the session stops being honored
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now
func (s *AdminSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
