package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/ceelo/internal/common/clock"
	"github.com/KirkDiggler/ceelo/internal/common/uuid"
	"github.com/KirkDiggler/ceelo/internal/models"
	sessionRepo "github.com/KirkDiggler/ceelo/internal/repositories/admin_session"
	"golang.org/x/time/rate"
)

const (
	defaultLoginLimit = rate.Limit(5.0 / 60.0)
	defaultLoginBurst = 5
)

// service implements the Service interface
type service struct {
	password    []byte
	sessionTTL  time.Duration
	limiter     *rate.Limiter
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	uuid        uuid.Generator
}

// New creates a new admin service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Password == "" {
		return nil, ErrEmptyAdminPassword
	}
	if cfg.SessionTTL <= 0 {
		return nil, ErrInvalidSessionTTL
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	limit, burst := cfg.LoginLimit, cfg.LoginBurst
	if limit == 0 {
		limit = defaultLoginLimit
	}
	if burst <= 0 {
		burst = defaultLoginBurst
	}

	return &service{
		password:    []byte(cfg.Password),
		sessionTTL:  cfg.SessionTTL,
		limiter:     rate.NewLimiter(limit, burst),
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
	}, nil
}

// Login issues a session token for the correct password
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, ErrInvalidPassword
	}

	now := s.clock.Now()
	if !s.limiter.AllowN(now, 1) {
		return nil, ErrTooManyAttempts
	}

	if subtle.ConstantTimeCompare([]byte(input.Password), s.password) != 1 {
		return nil, ErrInvalidPassword
	}

	session := &models.AdminSession{
		Token:     s.uuid.NewUUID(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &LoginOutput{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Authorize checks a bearer token
func (s *service) Authorize(ctx context.Context, input *AuthorizeInput) error {
	if input == nil || input.Token == "" {
		return ErrUnauthorized
	}

	out, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		Token: input.Token,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if out.Session.Expired(s.clock.Now()) {
		return ErrUnauthorized
	}

	return nil
}

// Logout revokes a token
func (s *service) Logout(ctx context.Context, input *LogoutInput) error {
	if input == nil || input.Token == "" {
		return nil
	}

	if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		Token: input.Token,
	}); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}
