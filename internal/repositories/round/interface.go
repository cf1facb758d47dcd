package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ceelo/internal/repositories/round Repository

import (
	"context"

	"github.com/KirkDiggler/ceelo/internal/models"
)

// Repository defines the interface for round state persistence
type Repository interface {
	// GetRound retrieves the roster and every recorded result
	GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error)

	// RecordResult stores one participant's outcome if neither the
	// participant nor the outcome slot is taken
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// ClearResults removes every recorded result, keeping the roster
	ClearResults(ctx context.Context, input *ClearResultsInput) error

	// SetRoster replaces the roster and drops results for removed names
	SetRoster(ctx context.Context, input *SetRosterInput) error
}
