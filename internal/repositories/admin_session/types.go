package admin_session

import (
	"github.com/KirkDiggler/ceelo/internal/models"
)

// CreateSessionInput contains parameters for storing a new session
type CreateSessionInput struct {
	// Session is the session to store
	Session *models.AdminSession
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	// Token is the bearer token of the session
	Token string
}

// GetSessionOutput contains the result of retrieving a session
type GetSessionOutput struct {
	// Session is the stored session
	Session *models.AdminSession
}

// DeleteSessionInput contains parameters for revoking a session
type DeleteSessionInput struct {
	// Token is the bearer token of the session
	Token string
}
