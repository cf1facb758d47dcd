package admin

import (
	"time"

	"github.com/KirkDiggler/ceelo/internal/common/clock"
	"github.com/KirkDiggler/ceelo/internal/common/uuid"
	sessionRepo "github.com/KirkDiggler/ceelo/internal/repositories/admin_session"
	"golang.org/x/time/rate"
)

// Config holds configuration for the admin service
type Config struct {
	// Password is the shared admin secret
	Password string

	// SessionTTL is how long an issued token stays valid
	SessionTTL time.Duration

	// LoginLimit and LoginBurst throttle Login; zero values use 5 per minute
	LoginLimit rate.Limit
	LoginBurst int

	SessionRepo   sessionRepo.Repository
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

// LoginInput contains the credentials for a login
type LoginInput struct {
	Password string
}

// LoginOutput contains the issued session
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}

// AuthorizeInput contains the bearer token to check
type AuthorizeInput struct {
	Token string
}

// LogoutInput contains the bearer token to revoke
type LogoutInput struct {
	Token string
}
