package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/ceelo/internal/common/uuid Generator

// Generator produces random identifiers. The default yields version 4
// UUIDs read from crypto/rand, so the values are fit for bearer tokens.
type Generator interface {
	NewUUID() string
}

// DefaultGenerator implements Generator with github.com/google/uuid
type DefaultGenerator struct{}

// New returns the default generator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewUUID returns a new random UUID string
func (d *DefaultGenerator) NewUUID() string {
	return uuid.NewString()
}
