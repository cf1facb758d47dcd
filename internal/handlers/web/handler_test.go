package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/ceelo/internal/models"
	"github.com/KirkDiggler/ceelo/internal/services/admin"
	adminMocks "github.com/KirkDiggler/ceelo/internal/services/admin/mocks"
	"github.com/KirkDiggler/ceelo/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/ceelo/internal/services/messaging/mocks"
	"github.com/KirkDiggler/ceelo/internal/services/round"
	roundMocks "github.com/KirkDiggler/ceelo/internal/services/round/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebHandlerTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRound     *roundMocks.MockService
	mockAdmin     *adminMocks.MockService
	mockMessaging *messagingMocks.MockService
	router        http.Handler

	triple3 models.Outcome
	point5  models.Outcome
}

func (s *WebHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRound = roundMocks.NewMockService(s.mockCtrl)
	s.mockAdmin = adminMocks.NewMockService(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)

	s.router = s.newRouter("")

	s.triple3 = models.Outcome{Kind: models.OutcomeKindTriple, Value: 3, Dice: [3]int{3, 3, 3}}
	s.point5 = models.Outcome{Kind: models.OutcomeKindPoint, Value: 5, Dice: [3]int{2, 2, 5}}
}

func (s *WebHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebHandlerTestSuite))
}

func (s *WebHandlerTestSuite) newRouter(staticDir string) http.Handler {
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ceelo_rolls_total 0\n")
	})

	h, err := New(&Config{
		RoundService:     s.mockRound,
		AdminService:     s.mockAdmin,
		MessagingService: s.mockMessaging,
		MetricsHandler:   metricsHandler,
		StaticDir:        staticDir,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	return h.Router()
}

func (s *WebHandlerTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			s.Require().NoError(err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *WebHandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *WebHandlerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{AdminService: s.mockAdmin, MessagingService: s.mockMessaging})
	s.Error(err)

	_, err = New(&Config{RoundService: s.mockRound, MessagingService: s.mockMessaging})
	s.Error(err)

	_, err = New(&Config{RoundService: s.mockRound, AdminService: s.mockAdmin})
	s.Error(err)
}

func (s *WebHandlerTestSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}

func (s *WebHandlerTestSuite) TestMetrics() {
	rec := s.do(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ceelo_rolls_total")
}

func (s *WebHandlerTestSuite) TestGetState() {
	s.mockRound.EXPECT().GetRound(gomock.Any(), &round.GetRoundInput{}).Return(&round.GetRoundOutput{
		Round: &models.Round{
			Roster:  []string{"A", "B"},
			Results: map[string]models.Outcome{"A": s.triple3, "B": s.point5},
		},
		Winner: models.Winner{
			Ready:    true,
			Leaders:  []models.Leader{{Name: "A", Outcome: s.triple3}},
			TopScore: 303,
		},
	}, nil)

	rec := s.do(http.MethodGet, "/api/state", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))

	body := s.decode(rec)
	s.Equal([]any{"A", "B"}, body["friends"])

	results := body["results"].(map[string]any)
	a := results["A"].(map[string]any)
	s.Equal("triple", a["kind"])
	s.Equal("triple:3", a["key"])
	s.Equal("Triple 3s", a["label"])
	s.EqualValues(303, a["score"])
	s.Equal([]any{3.0, 3.0, 3.0}, a["dice"])

	b := results["B"].(map[string]any)
	s.Equal("point:5", b["key"])
	s.EqualValues(105, b["score"])

	winner := body["winner"].(map[string]any)
	s.Equal(true, winner["ready"])
	s.EqualValues(303, winner["topScore"])
	leaders := winner["leaders"].([]any)
	s.Require().Len(leaders, 1)
	s.Equal("A", leaders[0].(map[string]any)["name"])
}

func (s *WebHandlerTestSuite) TestGetStateEmptyRound() {
	s.mockRound.EXPECT().GetRound(gomock.Any(), gomock.Any()).Return(&round.GetRoundOutput{
		Round: &models.Round{},
	}, nil)

	rec := s.do(http.MethodGet, "/api/state", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"friends":[],"results":{},"winner":{"ready":false,"leaders":[],"topScore":0}}`, rec.Body.String())
}

func (s *WebHandlerTestSuite) TestGetStateStorageError() {
	s.mockRound.EXPECT().GetRound(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	rec := s.do(http.MethodGet, "/api/state", "", nil)
	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decode(rec)
	s.Equal("Internal Server Error", body["error"])
	s.Equal("internal error", body["message"])
}

func (s *WebHandlerTestSuite) TestRoll() {
	winner := models.Winner{Ready: true, Leaders: []models.Leader{{Name: "A", Outcome: s.triple3}}, TopScore: 303}
	s.mockRound.EXPECT().Roll(gomock.Any(), &round.RollInput{Name: "A"}).Return(&round.RollOutput{
		Name:    "A",
		Outcome: s.triple3,
		Label:   "Triple 3s",
		Round: &models.Round{
			Roster:  []string{"A"},
			Results: map[string]models.Outcome{"A": s.triple3},
		},
		Winner: winner,
	}, nil)
	s.mockMessaging.EXPECT().
		GetRollResultMessage(gomock.Any(), &messaging.GetRollResultMessageInput{PlayerName: "A", Outcome: s.triple3}).
		Return(&messaging.GetRollResultMessageOutput{Title: "Trips!", Message: "A rolled Triple 3s"}, nil)
	s.mockMessaging.EXPECT().
		GetWinnerMessage(gomock.Any(), &messaging.GetWinnerMessageInput{Winner: winner}).
		Return(&messaging.GetWinnerMessageOutput{Message: "A takes the round"}, nil)

	rec := s.do(http.MethodPost, "/api/roll", "", map[string]string{"name": "A"})
	s.Require().Equal(http.StatusOK, rec.Code)

	body := s.decode(rec)
	s.Equal("A", body["name"])
	s.Equal("Trips!", body["title"])
	s.Equal("A rolled Triple 3s", body["message"])
	s.Equal("A takes the round", body["announcement"])
	s.Equal("triple:3", body["result"].(map[string]any)["key"])
	s.Equal([]any{"A"}, body["friends"])
	s.Equal(true, body["winner"].(map[string]any)["ready"])
}

func (s *WebHandlerTestSuite) TestRollMessageFailureStillSucceeds() {
	s.mockRound.EXPECT().Roll(gomock.Any(), gomock.Any()).Return(&round.RollOutput{
		Name:    "A",
		Outcome: s.point5,
		Round:   &models.Round{Roster: []string{"A", "B"}, Results: map[string]models.Outcome{"A": s.point5}},
	}, nil)
	s.mockMessaging.EXPECT().GetRollResultMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	rec := s.do(http.MethodPost, "/api/roll", "", map[string]string{"name": "A"})
	s.Require().Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.NotContains(body, "message")
	s.NotContains(body, "announcement")
}

func (s *WebHandlerTestSuite) TestRollErrors() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not in roster", round.ErrNotInRoster, http.StatusBadRequest, round.ErrNotInRoster.Error()},
		{"empty name", round.ErrEmptyName, http.StatusBadRequest, round.ErrEmptyName.Error()},
		{"already rolled", round.ErrAlreadyRolled, http.StatusConflict, round.ErrAlreadyRolled.Error()},
		{"outcomes exhausted", round.ErrOutcomesExhausted, http.StatusConflict, round.ErrOutcomesExhausted.Error()},
		{"round changed", round.ErrRoundChanged, http.StatusConflict, round.ErrRoundChanged.Error()},
		{"allocation exhausted", round.ErrAllocationExhausted, http.StatusInternalServerError, round.ErrAllocationExhausted.Error()},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockRound.EXPECT().Roll(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := s.do(http.MethodPost, "/api/roll", "", map[string]string{"name": "Z"})
			s.Equal(tt.status, rec.Code)
			body := s.decode(rec)
			s.Equal(http.StatusText(tt.status), body["error"])
			s.Equal(tt.message, body["message"])
		})
	}
}

func (s *WebHandlerTestSuite) TestRollBadJSON() {
	rec := s.do(http.MethodPost, "/api/roll", "", "{not json")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("invalid JSON body", s.decode(rec)["message"])
}

func (s *WebHandlerTestSuite) TestLogin() {
	expires := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	s.mockAdmin.EXPECT().Login(gomock.Any(), &admin.LoginInput{Password: "hunter2"}).
		Return(&admin.LoginOutput{Token: "tok", ExpiresAt: expires}, nil)

	rec := s.do(http.MethodPost, "/api/admin/login", "", map[string]string{"password": "hunter2"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"token":"tok","expiresAt":"2025-04-20T00:00:00Z"}`, rec.Body.String())
}

func (s *WebHandlerTestSuite) TestLoginErrors() {
	s.mockAdmin.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, admin.ErrInvalidPassword)
	rec := s.do(http.MethodPost, "/api/admin/login", "", map[string]string{"password": "x"})
	s.Equal(http.StatusUnauthorized, rec.Code)

	s.mockAdmin.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, admin.ErrTooManyAttempts)
	rec = s.do(http.MethodPost, "/api/admin/login", "", map[string]string{"password": "x"})
	s.Equal(http.StatusTooManyRequests, rec.Code)
}

func (s *WebHandlerTestSuite) TestAdminRoutesRequireToken() {
	s.mockAdmin.EXPECT().Authorize(gomock.Any(), &admin.AuthorizeInput{Token: ""}).
		Return(admin.ErrUnauthorized).Times(3)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/admin/reset", "", nil).Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/admin/logout", "", nil).Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPut, "/api/admin/friends", "", map[string]any{"friends": []string{"A"}}).Code)
}

func (s *WebHandlerTestSuite) TestReset() {
	s.mockAdmin.EXPECT().Authorize(gomock.Any(), &admin.AuthorizeInput{Token: "tok"}).Return(nil)
	s.mockRound.EXPECT().ResetRound(gomock.Any(), &round.ResetRoundInput{}).Return(&round.ResetRoundOutput{
		Round: &models.Round{Roster: []string{"A"}, Results: map[string]models.Outcome{}},
	}, nil)

	rec := s.do(http.MethodPost, "/api/admin/reset", "tok", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"friends":["A"],"results":{},"winner":{"ready":false,"leaders":[],"topScore":0}}`, rec.Body.String())
}

func (s *WebHandlerTestSuite) TestSetFriends() {
	s.mockAdmin.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.mockRound.EXPECT().SetRoster(gomock.Any(), &round.SetRosterInput{Names: []string{"A", "B"}}).
		Return(&round.SetRosterOutput{Round: &models.Round{Roster: []string{"A", "B"}}}, nil)

	rec := s.do(http.MethodPut, "/api/admin/friends", "tok", map[string]any{"friends": []string{"A", "B"}})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal([]any{"A", "B"}, s.decode(rec)["friends"])

	s.mockRound.EXPECT().SetRoster(gomock.Any(), gomock.Any()).Return(nil, round.ErrDuplicateName)
	rec = s.do(http.MethodPut, "/api/admin/friends", "tok", map[string]any{"friends": []string{"A", "A"}})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *WebHandlerTestSuite) TestLogout() {
	s.mockAdmin.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAdmin.EXPECT().Logout(gomock.Any(), &admin.LogoutInput{Token: "tok"}).Return(nil)

	rec := s.do(http.MethodPost, "/api/admin/logout", "tok", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *WebHandlerTestSuite) TestStaticFiles() {
	dir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>ceelo</h1>"), 0o644))
	s.router = s.newRouter(dir)

	rec := s.do(http.MethodGet, "/", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "<h1>ceelo</h1>")

	rec = s.do(http.MethodGet, "/missing.js", "", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"Bearer abc":     "abc",
		"bearer abc":     "abc",
		"Basic abc":      "",
		"Bearer":         "",
		"Bearer  spaced": "spaced",
	}

	for header, want := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		if got := bearerToken(req); got != want {
			t.Errorf("bearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}
