package round

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/ceelo/internal/ceelo"
	"github.com/KirkDiggler/ceelo/internal/common/clock"
	"github.com/KirkDiggler/ceelo/internal/common/metrics"
	"github.com/KirkDiggler/ceelo/internal/models"
	roundRepo "github.com/KirkDiggler/ceelo/internal/repositories/round"
)

// rejection reasons reported to metrics
const (
	reasonNotInRoster         = "not_in_roster"
	reasonAlreadyRolled       = "already_rolled"
	reasonOutcomesExhausted   = "outcomes_exhausted"
	reasonAllocationExhausted = "allocation_exhausted"
	reasonConflict            = "conflict"
	reasonStorage             = "storage"
)

// service implements the Service interface
type service struct {
	// mu serializes every state change; read, allocate and commit of a
	// roll happen under one hold
	mu sync.Mutex

	roundRepo roundRepo.Repository
	allocator *ceelo.Allocator
	clock     clock.Clock
	metrics   metrics.Recorder
	log       *slog.Logger
}

// New creates a new round service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	allocator, err := ceelo.NewAllocator(&ceelo.AllocatorConfig{
		DiceRoller: cfg.DiceRoller,
		MaxDraws:   cfg.MaxDraws,
	})
	if err != nil {
		return nil, err
	}

	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &service{
		roundRepo: cfg.RoundRepo,
		allocator: allocator,
		clock:     cfg.Clock,
		metrics:   recorder,
		log:       log,
	}, nil
}

// Roll performs a roll for one participant
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrEmptyName
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	round, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{})
	if err != nil {
		s.metrics.RollRejected(reasonStorage)
		return nil, fmt.Errorf("failed to load round: %w", err)
	}

	if !round.InRoster(name) {
		s.metrics.RollRejected(reasonNotInRoster)
		return nil, ErrNotInRoster
	}

	if round.HasRolled(name) {
		s.metrics.RollRejected(reasonAlreadyRolled)
		return nil, ErrAlreadyRolled
	}

	claimed := ceelo.ClaimedKeys(round.Results)
	if err := ceelo.CheckAvailable(claimed); err != nil {
		s.metrics.RollRejected(reasonOutcomesExhausted)
		return nil, ErrOutcomesExhausted
	}

	outcome, err := s.allocator.Allocate(claimed)
	if err != nil {
		s.metrics.RollRejected(reasonAllocationExhausted)
		s.log.Error("allocation exhausted",
			"name", name,
			"claimed", len(claimed),
			"max_draws", s.allocator.MaxDraws(),
			"error", err,
		)
		return nil, ErrAllocationExhausted
	}
	outcome.RolledAt = s.clock.Now()

	err = s.roundRepo.RecordResult(ctx, &roundRepo.RecordResultInput{
		Name:    name,
		Outcome: outcome,
	})
	if err != nil {
		// another process won the race on the same store
		switch {
		case errors.Is(err, roundRepo.ErrAlreadyRecorded):
			s.metrics.RollRejected(reasonAlreadyRolled)
			return nil, ErrAlreadyRolled
		case errors.Is(err, roundRepo.ErrNotInRoster):
			s.metrics.RollRejected(reasonNotInRoster)
			return nil, ErrNotInRoster
		case errors.Is(err, roundRepo.ErrOutcomeClaimed), errors.Is(err, roundRepo.ErrConflict):
			s.metrics.RollRejected(reasonConflict)
			return nil, ErrRoundChanged
		}
		s.metrics.RollRejected(reasonStorage)
		return nil, fmt.Errorf("failed to record roll: %w", err)
	}

	s.metrics.RollRecorded(string(outcome.Kind))

	results := make(map[string]models.Outcome, len(round.Results)+1)
	for n, o := range round.Results {
		results[n] = o
	}
	results[name] = outcome
	after := &models.Round{Roster: round.Roster, Results: results}

	winner := ceelo.Evaluate(after.Roster, after.Results)

	s.log.Info("roll recorded",
		"name", name,
		"key", ceelo.Key(outcome),
		"dice", outcome.Dice,
		"ready", winner.Ready,
	)

	return &RollOutput{
		Name:    name,
		Outcome: outcome,
		Label:   ceelo.Label(outcome),
		Round:   after,
		Winner:  winner,
	}, nil
}

// GetRound returns the current round and leaderboard
func (s *service) GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error) {
	round, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load round: %w", err)
	}

	return &GetRoundOutput{
		Round:  round,
		Winner: ceelo.Evaluate(round.Roster, round.Results),
	}, nil
}

// ResetRound clears all results
func (s *service) ResetRound(ctx context.Context, input *ResetRoundInput) (*ResetRoundOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.roundRepo.ClearResults(ctx, &roundRepo.ClearResultsInput{}); err != nil {
		return nil, fmt.Errorf("failed to reset round: %w", err)
	}

	round, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load round: %w", err)
	}

	s.log.Info("round reset", "roster", len(round.Roster))

	return &ResetRoundOutput{
		Round:  round,
		Winner: ceelo.Evaluate(round.Roster, round.Results),
	}, nil
}

// SetRoster replaces the roster
func (s *service) SetRoster(ctx context.Context, input *SetRosterInput) (*SetRosterOutput, error) {
	if input == nil {
		return nil, ErrEmptyRoster
	}

	names, err := normalizeRoster(input.Names)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.roundRepo.SetRoster(ctx, &roundRepo.SetRosterInput{Names: names}); err != nil {
		return nil, fmt.Errorf("failed to set roster: %w", err)
	}

	round, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load round: %w", err)
	}

	s.log.Info("roster updated", "roster", names)

	return &SetRosterOutput{
		Round:  round,
		Winner: ceelo.Evaluate(round.Roster, round.Results),
	}, nil
}

// SeedRoster applies names only when the stored roster is empty
func (s *service) SeedRoster(ctx context.Context, input *SeedRosterInput) (*SeedRosterOutput, error) {
	if input == nil || len(input.Names) == 0 {
		return &SeedRosterOutput{}, nil
	}

	names, err := normalizeRoster(input.Names)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	round, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load round: %w", err)
	}
	if len(round.Roster) > 0 {
		return &SeedRosterOutput{}, nil
	}

	if err := s.roundRepo.SetRoster(ctx, &roundRepo.SetRosterInput{Names: names}); err != nil {
		return nil, fmt.Errorf("failed to seed roster: %w", err)
	}

	s.log.Info("roster seeded", "roster", names)
	return &SeedRosterOutput{Seeded: true}, nil
}

// normalizeRoster trims names, drops blanks and rejects duplicates
func normalizeRoster(raw []string) ([]string, error) {
	names := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, n := range raw {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, n)
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}

	if len(names) == 0 {
		return nil, ErrEmptyRoster
	}
	return names, nil
}
