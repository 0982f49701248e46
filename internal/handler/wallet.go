package handler

import (
	"net/http"
	"wager-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// Purchase
// @Summary Purchase tokens
// @Description Credit purchased tokens to the acting user's balance
// @Tags wallet
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Acting user ID"
// @Param purchase body model.PurchaseRequest true "Purchase amount"
// @Success 201 {object} model.WalletResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /wallet/purchase [post]
func (h *Handler) Purchase(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.walletService.Purchase(c.Request.Context(), actor, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Tip
// @Summary Tip another user
// @Description Transfer tokens from the acting user to another user
// @Tags wallet
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Acting user ID"
// @Param tip body model.TipRequest true "Tip details"
// @Success 201 {object} model.WalletResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient funds"
// @Router /wallet/tip [post]
func (h *Handler) Tip(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.walletService.Tip(c.Request.Context(), actor, req.ToUserID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Withdraw
// @Summary Process a withdrawal
// @Description Debit a user's balance for an approved withdrawal; moderator only
// @Tags wallet
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Acting moderator ID"
// @Param withdrawal body model.WithdrawRequest true "Withdrawal details"
// @Success 201 {object} model.WalletResponse
// @Failure 403 {object} model.ErrorResponse "Forbidden"
// @Router /wallet/withdraw [post]
func (h *Handler) Withdraw(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.walletService.Withdraw(c.Request.Context(), actor, req.UserID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
