package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"wager-arena/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_SubmitResult_Completed(t *testing.T) {
	h, m := newTestHandler(t)

	matchID := "550e8400-e29b-41d4-a716-446655440010"
	winnerID := int64(1)

	m.users.On("GetUser", mock.Anything, int64(2)).Return(&model.User{
		ID:   2,
		Role: model.RoleUser,
	}, nil)
	m.settlement.On("SubmitResult", mock.Anything, model.Actor{ID: 2, Role: model.RoleUser}, matchID, int64(1), "replay://abc").Return(&model.SubmitResultResponse{
		Status:   string(model.StatusCompleted),
		Match:    &model.Match{ID: matchID, Status: model.StatusCompleted, WinnerID: &winnerID},
		WinnerID: &winnerID,
	}, nil)

	router := gin.New()
	router.POST("/matches/:id/result", h.SubmitResult)

	body, _ := json.Marshal(model.SubmitResultRequest{DeclaredWinnerID: 1, EvidenceRef: "replay://abc"})
	req, _ := http.NewRequest(http.MethodPost, "/matches/"+matchID+"/result", bytes.NewBuffer(body))
	req.Header.Set("X-Actor-ID", "2")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.SubmitResultResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.WinnerID)
	assert.Equal(t, int64(1), *resp.WinnerID)
}

func TestHandler_SubmitResult_NotParticipant(t *testing.T) {
	h, m := newTestHandler(t)

	matchID := "550e8400-e29b-41d4-a716-446655440011"

	m.users.On("GetUser", mock.Anything, int64(5)).Return(&model.User{
		ID:   5,
		Role: model.RoleUser,
	}, nil)
	m.settlement.On("SubmitResult", mock.Anything, mock.Anything, matchID, int64(1), "").Return(nil, model.ErrNotParticipant)

	router := gin.New()
	router.POST("/matches/:id/result", h.SubmitResult)

	body, _ := json.Marshal(model.SubmitResultRequest{DeclaredWinnerID: 1})
	req, _ := http.NewRequest(http.MethodPost, "/matches/"+matchID+"/result", bytes.NewBuffer(body))
	req.Header.Set("X-Actor-ID", "5")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "NOT_PARTICIPANT", resp.Code)
}

func TestHandler_CreateDispute_Success(t *testing.T) {
	h, m := newTestHandler(t)

	matchID := "550e8400-e29b-41d4-a716-446655440012"

	m.users.On("GetUser", mock.Anything, int64(2)).Return(&model.User{
		ID:   2,
		Role: model.RoleUser,
	}, nil)
	m.settlement.On("CreateDispute", mock.Anything, model.Actor{ID: 2, Role: model.RoleUser}, matchID, "opponent cheated", "clip://x").Return(&model.Dispute{
		ID:         "d-1",
		MatchID:    matchID,
		ReporterID: 2,
		Status:     model.DisputePending,
	}, nil)

	router := gin.New()
	router.POST("/matches/:id/dispute", h.CreateDispute)

	body, _ := json.Marshal(model.CreateDisputeRequest{Reason: "opponent cheated", EvidenceRef: "clip://x"})
	req, _ := http.NewRequest(http.MethodPost, "/matches/"+matchID+"/dispute", bytes.NewBuffer(body))
	req.Header.Set("X-Actor-ID", "2")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.Dispute
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, model.DisputePending, resp.Status)
}

func TestHandler_ResolveDispute_Forbidden(t *testing.T) {
	h, m := newTestHandler(t)

	matchID := "550e8400-e29b-41d4-a716-446655440013"

	m.users.On("GetUser", mock.Anything, int64(2)).Return(&model.User{
		ID:   2,
		Role: model.RoleUser,
	}, nil)
	m.settlement.On("ResolveDispute", mock.Anything, model.Actor{ID: 2, Role: model.RoleUser}, matchID, mock.Anything, "").Return(nil, model.ErrForbidden)

	router := gin.New()
	router.POST("/matches/:id/resolve", h.ResolveDispute)

	winnerID := int64(1)
	body, _ := json.Marshal(model.ResolveDisputeRequest{WinnerID: &winnerID})
	req, _ := http.NewRequest(http.MethodPost, "/matches/"+matchID+"/resolve", bytes.NewBuffer(body))
	req.Header.Set("X-Actor-ID", "2")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "FORBIDDEN", resp.Code)
}

func TestHandler_ResolveDispute_Void(t *testing.T) {
	h, m := newTestHandler(t)

	matchID := "550e8400-e29b-41d4-a716-446655440014"

	m.users.On("GetUser", mock.Anything, int64(9)).Return(&model.User{
		ID:   9,
		Role: model.RoleModerator,
	}, nil)
	m.settlement.On("ResolveDispute", mock.Anything, model.Actor{ID: 9, Role: model.RoleModerator}, matchID, (*int64)(nil), "no evidence").Return(&model.Match{
		ID:     matchID,
		Status: model.StatusCancelled,
	}, nil)

	router := gin.New()
	router.POST("/matches/:id/resolve", h.ResolveDispute)

	body, _ := json.Marshal(model.ResolveDisputeRequest{Notes: "no evidence"})
	req, _ := http.NewRequest(http.MethodPost, "/matches/"+matchID+"/resolve", bytes.NewBuffer(body))
	req.Header.Set("X-Actor-ID", "9")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.MatchResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, model.StatusCancelled, resp.Match.Status)
}

func TestHandler_ListDisputes_Success(t *testing.T) {
	h, m := newTestHandler(t)

	m.settlement.On("ListPendingDisputes", mock.Anything, 20, 0).Return([]*model.Dispute{
		{ID: "d-1", Status: model.DisputePending},
		{ID: "d-2", Status: model.DisputePending},
	}, nil)

	router := gin.New()
	router.GET("/disputes", h.ListDisputes)

	req, _ := http.NewRequest(http.MethodGet, "/disputes", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.DisputeListResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 2, resp.Total)
}
