package messaging

import (
	"math/rand"

	"github.com/KirkDiggler/ceelo/internal/models"
)

// ErrorType names a failure the transports want phrased for players
type ErrorType string

const (
	ErrorTypeNotInRoster       ErrorType = "not_in_roster"
	ErrorTypeAlreadyRolled     ErrorType = "already_rolled"
	ErrorTypeOutcomesExhausted ErrorType = "outcomes_exhausted"
	ErrorTypeRoundChanged      ErrorType = "round_changed"
	ErrorTypeUnknown           ErrorType = "unknown"
)

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	PlayerName string
	Outcome    models.Outcome
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	Title   string
	Message string
}

// GetWinnerMessageInput is the input for GetWinnerMessage
type GetWinnerMessageInput struct {
	Winner models.Winner
}

// GetWinnerMessageOutput is the output for GetWinnerMessage
type GetWinnerMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand picks among message variants; nil seeds one from the clock
	Rand *rand.Rand
}
