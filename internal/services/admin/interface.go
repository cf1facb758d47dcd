package admin

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ceelo/internal/services/admin Service

import "context"

// Service gates roster edits and resets behind an admin bearer token
type Service interface {
	// Login exchanges the admin password for a session token
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authorize returns nil when the token names a live session
	Authorize(ctx context.Context, input *AuthorizeInput) error

	// Logout revokes a token
	Logout(ctx context.Context, input *LogoutInput) error
}
