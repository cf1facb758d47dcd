package round

// RoundError is a custom error type for round-related errors
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotInRoster         RoundError = "participant not in roster"
	ErrAlreadyRolled       RoundError = "participant already rolled this round"
	ErrOutcomesExhausted   RoundError = "every outcome has been claimed this round"
	ErrAllocationExhausted RoundError = "could not draw an unclaimed outcome"
	ErrRoundChanged        RoundError = "round changed while rolling, try again"
	ErrEmptyName           RoundError = "participant name cannot be empty"
	ErrEmptyRoster         RoundError = "roster must contain at least one name"
	ErrDuplicateName       RoundError = "roster contains a duplicate name"
	ErrNilConfig           RoundError = "config cannot be nil"
	ErrNilRoundRepo        RoundError = "round repository cannot be nil"
	ErrNilDiceRoller       RoundError = "dice roller cannot be nil"
	ErrNilClock            RoundError = "clock cannot be nil"
)
