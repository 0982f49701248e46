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
)

func TestHandler_Purchase_Success(t *testing.T) {
	h, m := newTestHandler(t)

	m.users.On("GetUser", mock.Anything, int64(1)).Return(&model.User{
		ID:   1,
		Role: model.RoleUser,
	}, nil)
	m.wallet.On("Purchase", mock.Anything, model.Actor{ID: 1, Role: model.RoleUser}, "25.00").Return(&model.WalletResponse{
		Status:  "success",
		Balance: "35.00",
	}, nil)

	router := gin.New()
	router.POST("/wallet/purchase", h.Purchase)

	body, _ := json.Marshal(model.PurchaseRequest{Amount: "25.00"})
	req, _ := http.NewRequest(http.MethodPost, "/wallet/purchase", bytes.NewBuffer(body))
	req.Header.Set("X-Actor-ID", "1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.WalletResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "35.00", resp.Balance)
}

func TestHandler_Tip_InsufficientFunds(t *testing.T) {
	h, m := newTestHandler(t)

	m.users.On("GetUser", mock.Anything, int64(1)).Return(&model.User{
		ID:   1,
		Role: model.RoleUser,
	}, nil)
	m.wallet.On("Tip", mock.Anything, mock.Anything, int64(2), "1000.00").Return(nil, model.ErrInsufficientFunds)

	router := gin.New()
	router.POST("/wallet/tip", h.Tip)

	body, _ := json.Marshal(model.TipRequest{ToUserID: 2, Amount: "1000.00"})
	req, _ := http.NewRequest(http.MethodPost, "/wallet/tip", bytes.NewBuffer(body))
	req.Header.Set("X-Actor-ID", "1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INSUFFICIENT_FUNDS", resp.Code)
}

func TestHandler_Withdraw_Forbidden(t *testing.T) {
	h, m := newTestHandler(t)

	m.users.On("GetUser", mock.Anything, int64(3)).Return(&model.User{
		ID:   3,
		Role: model.RoleUser,
	}, nil)
	m.wallet.On("Withdraw", mock.Anything, model.Actor{ID: 3, Role: model.RoleUser}, int64(3), "40.00").Return(nil, model.ErrForbidden)

	router := gin.New()
	router.POST("/wallet/withdraw", h.Withdraw)

	body, _ := json.Marshal(model.WithdrawRequest{UserID: 3, Amount: "40.00"})
	req, _ := http.NewRequest(http.MethodPost, "/wallet/withdraw", bytes.NewBuffer(body))
	req.Header.Set("X-Actor-ID", "3")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "FORBIDDEN", resp.Code)
}

func TestHandler_Purchase_InvalidBody(t *testing.T) {
	h, m := newTestHandler(t)

	m.users.On("GetUser", mock.Anything, int64(1)).Return(&model.User{
		ID:   1,
		Role: model.RoleUser,
	}, nil)

	router := gin.New()
	router.POST("/wallet/purchase", h.Purchase)

	req, _ := http.NewRequest(http.MethodPost, "/wallet/purchase", bytes.NewBufferString(`{}`))
	req.Header.Set("X-Actor-ID", "1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}
