package web

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/ceelo/internal/services/admin"
	"github.com/KirkDiggler/ceelo/internal/services/round"
)

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, round.ErrEmptyName),
		errors.Is(err, round.ErrNotInRoster),
		errors.Is(err, round.ErrEmptyRoster),
		errors.Is(err, round.ErrDuplicateName):
		return http.StatusBadRequest
	case errors.Is(err, round.ErrAlreadyRolled),
		errors.Is(err, round.ErrOutcomesExhausted),
		errors.Is(err, round.ErrRoundChanged):
		return http.StatusConflict
	case errors.Is(err, round.ErrAllocationExhausted):
		return http.StatusInternalServerError
	case errors.Is(err, admin.ErrInvalidPassword),
		errors.Is(err, admin.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, admin.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}
