package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"wager-arena/internal/events"
	"wager-arena/internal/model"
	repomocks "wager-arena/mocks/repository"
	mocks "wager-arena/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	match      *mocks.MatchService
	settlement *mocks.SettlementService
	wallet     *mocks.WalletService
	moderation *mocks.ModerationService
	users      *repomocks.UserRepository
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	gin.SetMode(gin.TestMode)

	m := handlerMocks{
		match:      mocks.NewMatchService(t),
		settlement: mocks.NewSettlementService(t),
		wallet:     mocks.NewWalletService(t),
		moderation: mocks.NewModerationService(t),
		users:      repomocks.NewUserRepository(t),
	}

	logger := zerolog.Nop()
	h := NewHandler(m.match, m.settlement, m.wallet, m.moderation, m.users, events.NewBroker(logger), logger)
	return h, m
}

func TestHandler_MissingActorHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/matches/:id/join", h.JoinMatch)

	req, _ := http.NewRequest(http.MethodPost, "/matches/550e8400-e29b-41d4-a716-446655440000/join", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "MISSING_ACTOR", resp.Code)
}

func TestHandler_InvalidActorHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/matches/:id/join", h.JoinMatch)

	req, _ := http.NewRequest(http.MethodPost, "/matches/550e8400-e29b-41d4-a716-446655440000/join", nil)
	req.Header.Set("X-Actor-ID", "abc")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_ACTOR", resp.Code)
}

func TestHandler_UnknownActor(t *testing.T) {
	h, m := newTestHandler(t)

	m.users.On("GetUser", mock.Anything, int64(42)).Return(nil, model.ErrUserNotFound)

	router := gin.New()
	router.POST("/matches/:id/join", h.JoinMatch)

	req, _ := http.NewRequest(http.MethodPost, "/matches/550e8400-e29b-41d4-a716-446655440000/join", nil)
	req.Header.Set("X-Actor-ID", "42")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "UNKNOWN_ACTOR", resp.Code)
}
