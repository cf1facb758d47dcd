package round

import (
	"log/slog"

	"github.com/KirkDiggler/ceelo/internal/common/clock"
	"github.com/KirkDiggler/ceelo/internal/common/metrics"
	"github.com/KirkDiggler/ceelo/internal/dice"
	"github.com/KirkDiggler/ceelo/internal/models"
	roundRepo "github.com/KirkDiggler/ceelo/internal/repositories/round"
)

// Config holds configuration for the round service
type Config struct {
	// MaxDraws caps rejection sampling per roll; zero uses the default
	MaxDraws int

	// Repository dependencies
	RoundRepo roundRepo.Repository

	// Service dependencies
	DiceRoller dice.Roller
	Clock      clock.Clock
	Metrics    metrics.Recorder
	Logger     *slog.Logger
}

// RollInput contains parameters for rolling
type RollInput struct {
	// Name is the roster name of the participant rolling
	Name string
}

// RollOutput contains the result of a roll
type RollOutput struct {
	// Name is the participant who rolled
	Name string

	// Outcome is the recorded outcome
	Outcome models.Outcome

	// Label is the display label of the outcome
	Label string

	// Round is the state after the roll was committed
	Round *models.Round

	// Winner is the leaderboard after the roll
	Winner models.Winner
}

// GetRoundInput contains parameters for reading the round
type GetRoundInput struct {
}

// GetRoundOutput contains the current round
type GetRoundOutput struct {
	Round  *models.Round
	Winner models.Winner
}

// ResetRoundInput contains parameters for resetting the round
type ResetRoundInput struct {
}

// ResetRoundOutput contains the round after the reset
type ResetRoundOutput struct {
	Round  *models.Round
	Winner models.Winner
}

// SetRosterInput contains parameters for replacing the roster
type SetRosterInput struct {
	// Names is the new roster in display order
	Names []string
}

// SetRosterOutput contains the round after the roster change
type SetRosterOutput struct {
	Round  *models.Round
	Winner models.Winner
}

// SeedRosterInput contains the roster to use when none exists
type SeedRosterInput struct {
	Names []string
}

// SeedRosterOutput reports whether the seed was applied
type SeedRosterOutput struct {
	Seeded bool
}
