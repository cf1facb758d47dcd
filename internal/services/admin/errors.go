package admin

// AdminError is a custom error type for admin errors
type AdminError string

// Error implements the error interface
func (e AdminError) Error() string {
	return string(e)
}

const (
	ErrInvalidPassword    AdminError = "invalid admin password"
	ErrTooManyAttempts    AdminError = "too many login attempts"
	ErrUnauthorized       AdminError = "unauthorized"
	ErrNilConfig          AdminError = "config cannot be nil"
	ErrNilSessionRepo     AdminError = "session repository cannot be nil"
	ErrNilClock           AdminError = "clock cannot be nil"
	ErrNilUUIDGenerator   AdminError = "UUID generator cannot be nil"
	ErrEmptyAdminPassword AdminError = "admin password cannot be empty"
	ErrInvalidSessionTTL  AdminError = "session TTL must be positive"
)
