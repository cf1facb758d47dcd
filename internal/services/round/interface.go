package round

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ceelo/internal/services/round Service

import "context"

// Service defines the interface for round operations
type Service interface {
	// Roll draws an unclaimed outcome for a participant and records it
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// GetRound returns the roster, results and leaderboard
	GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error)

	// ResetRound clears every result so the roster can roll again
	ResetRound(ctx context.Context, input *ResetRoundInput) (*ResetRoundOutput, error)

	// SetRoster replaces the roster, dropping results of removed names
	SetRoster(ctx context.Context, input *SetRosterInput) (*SetRosterOutput, error)

	// SeedRoster sets the roster only if none is stored yet
	SeedRoster(ctx context.Context, input *SeedRosterInput) (*SeedRosterOutput, error)
}
