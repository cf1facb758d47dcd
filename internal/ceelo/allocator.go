package ceelo

import (
	"errors"

	"github.com/KirkDiggler/ceelo/internal/dice"
	"github.com/KirkDiggler/ceelo/internal/models"
)

// DefaultMaxDraws bounds rejection sampling. The rarest slot is a specific
// triple at 1/216 per throw, so missing it 20000 times in a row happens with
// probability (215/216)^20000, about 1e-40.
const DefaultMaxDraws = 20000

// AllocatorConfig holds configuration for an Allocator
type AllocatorConfig struct {
	// DiceRoller supplies the dice
	DiceRoller dice.Roller

	// MaxDraws caps the number of throws; zero means DefaultMaxDraws
	MaxDraws int
}

// Allocator draws outcomes until one lands on an unclaimed slot
type Allocator struct {
	roller   dice.Roller
	maxDraws int
}

// NewAllocator creates a new Allocator
func NewAllocator(cfg *AllocatorConfig) (*Allocator, error) {
	if cfg == nil || cfg.DiceRoller == nil {
		return nil, ErrNilRoller
	}

	maxDraws := cfg.MaxDraws
	if maxDraws <= 0 {
		maxDraws = DefaultMaxDraws
	}

	return &Allocator{
		roller:   cfg.DiceRoller,
		maxDraws: maxDraws,
	}, nil
}

// MaxDraws returns the draw cap in effect
func (a *Allocator) MaxDraws() int {
	return a.maxDraws
}

// CheckAvailable is the caller-side guard run before Allocate
func CheckAvailable(claimed map[string]struct{}) error {
	free := 0
	for _, k := range AllKeys() {
		if _, ok := claimed[k]; !ok {
			free++
		}
	}
	if free == 0 {
		return ErrOutcomesExhausted
	}
	return nil
}

// Allocate returns the first drawn outcome whose key is not in claimed.
// It assumes at least one slot is free and never modifies claimed.
func (a *Allocator) Allocate(claimed map[string]struct{}) (models.Outcome, error) {
	for i := 0; i < a.maxDraws; i++ {
		out, err := Classify(dice.RollTriple(a.roller))
		if err != nil {
			if errors.Is(err, ErrNoScore) {
				continue
			}
			return models.Outcome{}, err
		}

		if _, taken := claimed[Key(out)]; taken {
			continue
		}
		return out, nil
	}

	return models.Outcome{}, ErrAllocationExhausted
}
