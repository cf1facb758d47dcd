package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/ceelo/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/ceelo/internal/common/uuid/mocks"
	"github.com/KirkDiggler/ceelo/internal/models"
	sessionRepo "github.com/KirkDiggler/ceelo/internal/repositories/admin_session"
	sessionMocks "github.com/KirkDiggler/ceelo/internal/repositories/admin_session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockGenerator
	adminService    Service
	ctx             context.Context

	testTime  time.Time
	testToken string
	ttl       time.Duration
}

func (s *AdminServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockGenerator(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testToken = "test-token"
	s.ttl = 2 * time.Hour

	s.adminService = s.newService(0)
}

func (s *AdminServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminServiceSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}

func (s *AdminServiceTestSuite) newService(burst int) Service {
	svc, err := New(&Config{
		Password:      "hunter2",
		SessionTTL:    s.ttl,
		LoginBurst:    burst,
		SessionRepo:   s.mockSessionRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	return svc
}

func (s *AdminServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	base := Config{
		Password:      "x",
		SessionTTL:    time.Hour,
		SessionRepo:   s.mockSessionRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	}

	cfg := base
	cfg.Password = ""
	_, err = New(&cfg)
	s.ErrorIs(err, ErrEmptyAdminPassword)

	cfg = base
	cfg.SessionTTL = 0
	_, err = New(&cfg)
	s.ErrorIs(err, ErrInvalidSessionTTL)

	cfg = base
	cfg.SessionRepo = nil
	_, err = New(&cfg)
	s.ErrorIs(err, ErrNilSessionRepo)

	cfg = base
	cfg.Clock = nil
	_, err = New(&cfg)
	s.ErrorIs(err, ErrNilClock)

	cfg = base
	cfg.UUIDGenerator = nil
	_, err = New(&cfg)
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *AdminServiceTestSuite) TestLoginIssuesSession() {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return(s.testToken)
	s.mockSessionRepo.EXPECT().
		CreateSession(gomock.Any(), &sessionRepo.CreateSessionInput{
			Session: &models.AdminSession{
				Token:     s.testToken,
				CreatedAt: s.testTime,
				ExpiresAt: s.testTime.Add(s.ttl),
			},
		}).
		Return(nil)

	out, err := s.adminService.Login(s.ctx, &LoginInput{Password: "hunter2"})
	s.Require().NoError(err)
	s.Equal(s.testToken, out.Token)
	s.Equal(s.testTime.Add(s.ttl), out.ExpiresAt)
}

func (s *AdminServiceTestSuite) TestLoginRejectsWrongPassword() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	_, err := s.adminService.Login(s.ctx, &LoginInput{Password: "hunter3"})
	s.ErrorIs(err, ErrInvalidPassword)
}

func (s *AdminServiceTestSuite) TestLoginIsRateLimited() {
	svc := s.newService(2)
	s.mockClock.EXPECT().Now().Return(s.testTime).Times(3)

	for i := 0; i < 2; i++ {
		_, err := svc.Login(s.ctx, &LoginInput{Password: "wrong"})
		s.ErrorIs(err, ErrInvalidPassword)
	}

	_, err := svc.Login(s.ctx, &LoginInput{Password: "hunter2"})
	s.ErrorIs(err, ErrTooManyAttempts)
}

func (s *AdminServiceTestSuite) TestLoginStorageError() {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return(s.testToken)
	s.mockSessionRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(errors.New("down"))

	_, err := s.adminService.Login(s.ctx, &LoginInput{Password: "hunter2"})
	s.Error(err)
}

func (s *AdminServiceTestSuite) TestAuthorize() {
	live := &models.AdminSession{Token: s.testToken, CreatedAt: s.testTime, ExpiresAt: s.testTime.Add(s.ttl)}

	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), &sessionRepo.GetSessionInput{Token: s.testToken}).
		Return(&sessionRepo.GetSessionOutput{Session: live}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime.Add(time.Hour))

	s.NoError(s.adminService.Authorize(s.ctx, &AuthorizeInput{Token: s.testToken}))
}

func (s *AdminServiceTestSuite) TestAuthorizeRejectsExpired() {
	session := &models.AdminSession{Token: s.testToken, CreatedAt: s.testTime, ExpiresAt: s.testTime.Add(s.ttl)}

	s.mockSessionRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).
		Return(&sessionRepo.GetSessionOutput{Session: session}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime.Add(s.ttl))

	s.ErrorIs(s.adminService.Authorize(s.ctx, &AuthorizeInput{Token: s.testToken}), ErrUnauthorized)
}

func (s *AdminServiceTestSuite) TestAuthorizeRejectsUnknownToken() {
	s.mockSessionRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	s.ErrorIs(s.adminService.Authorize(s.ctx, &AuthorizeInput{Token: "nope"}), ErrUnauthorized)
	s.ErrorIs(s.adminService.Authorize(s.ctx, &AuthorizeInput{}), ErrUnauthorized)
	s.ErrorIs(s.adminService.Authorize(s.ctx, nil), ErrUnauthorized)
}

func (s *AdminServiceTestSuite) TestAuthorizeStorageError() {
	s.mockSessionRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

	err := s.adminService.Authorize(s.ctx, &AuthorizeInput{Token: s.testToken})
	s.Error(err)
	s.NotErrorIs(err, ErrUnauthorized)
}

func (s *AdminServiceTestSuite) TestLogout() {
	s.mockSessionRepo.EXPECT().
		DeleteSession(gomock.Any(), &sessionRepo.DeleteSessionInput{Token: s.testToken}).
		Return(nil)

	s.NoError(s.adminService.Logout(s.ctx, &LogoutInput{Token: s.testToken}))
	s.NoError(s.adminService.Logout(s.ctx, &LogoutInput{}))
}
