package admin_session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ceelo/internal/repositories/admin_session Repository

import (
	"context"
)

// Repository defines the interface for admin session persistence
type Repository interface {
	// CreateSession stores a session until its expiry
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by token
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// DeleteSession revokes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
