package ceelo

// Error is a custom error type for outcome and allocation errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDie          Error = "die value must be between 1 and 6"
	ErrUnknownKind         Error = "unknown outcome kind"
	ErrNoScore             Error = "three distinct dice score nothing"
	ErrOutcomesExhausted   Error = "all outcomes have been claimed"
	ErrAllocationExhausted Error = "no unclaimed outcome drawn within the draw limit"
	ErrNilRoller           Error = "dice roller cannot be nil"
)
