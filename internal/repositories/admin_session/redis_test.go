package admin_session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/ceelo/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) session(token string, ttl time.Duration) *models.AdminSession {
	return &models.AdminSession{
		Token:     token,
		CreatedAt: s.testNow,
		ExpiresAt: s.testNow.Add(ttl),
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSession() {
	err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.session("tok", time.Hour)})
	s.Require().NoError(err)

	out, err := s.repo.GetSession(s.ctx, &GetSessionInput{Token: "tok"})
	s.Require().NoError(err)
	s.Equal("tok", out.Session.Token)
	s.Equal(s.testNow.Add(time.Hour).Unix(), out.Session.ExpiresAt.Unix())

	s.Equal(time.Hour, s.mr.TTL("ceelo:admin_session:tok"))
}

func (s *RedisRepositoryTestSuite) TestSessionExpiresWithTTL() {
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.session("tok", time.Minute)}))

	s.mr.FastForward(2 * time.Minute)

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{Token: "tok"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestCreateRejectsExpiredSession() {
	err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.session("tok", 0)})
	s.ErrorIs(err, ErrSessionExpired)
}

func (s *RedisRepositoryTestSuite) TestCreateRejectsEmptyToken() {
	err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.session("", time.Hour)})
	s.Error(err)

	err = s.repo.CreateSession(s.ctx, nil)
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: s.session("tok", time.Hour)}))

	s.Require().NoError(s.repo.DeleteSession(s.ctx, &DeleteSessionInput{Token: "tok"}))

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{Token: "tok"})
	s.ErrorIs(err, ErrSessionNotFound)

	// Deleting twice is fine
	s.NoError(s.repo.DeleteSession(s.ctx, &DeleteSessionInput{Token: "tok"}))
}

func (s *RedisRepositoryTestSuite) TestGetUnknownSession() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{Token: "nope"})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.repo.GetSession(s.ctx, &GetSessionInput{})
	s.ErrorIs(err, ErrSessionNotFound)
}
