package handler

import (
	"net/http"
	"strconv"
	"wager-arena/internal/model"

	"github.com/gin-gonic/gin"
)

func parseUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return userID, true
}

// GetBalance
// @Summary Get user balance
// @Description Returns the current balance for a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	resp, err := h.walletService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTransactions
// @Summary Get user ledger entries
// @Description Returns a paginated list of ledger entries for a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /users/{id}/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.walletService.GetTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	})
}

// GetUserHistory
// @Summary Get user match history
// @Description Returns a paginated list of settlement records for a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.HistoryListResponse
// @Router /users/{id}/history [get]
func (h *Handler) GetUserHistory(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	history, err := h.matchService.GetUserHistory(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.HistoryListResponse{History: history, Total: len(history)})
}

// BanUser
// @Summary Ban a user
// @Description Bans a user from creating or joining matches; moderator only
// @Tags users
// @Produce json
// @Param X-Actor-ID header int true "Acting moderator ID"
// @Param id path int true "User ID"
// @Success 204 "Banned"
// @Failure 403 {object} model.ErrorResponse "Forbidden"
// @Router /users/{id}/ban [post]
func (h *Handler) BanUser(c *gin.Context) {
	h.setBanned(c, true)
}

// UnbanUser
// @Summary Unban a user
// @Description Lifts a user's ban; moderator only
// @Tags users
// @Produce json
// @Param X-Actor-ID header int true "Acting moderator ID"
// @Param id path int true "User ID"
// @Success 204 "Unbanned"
// @Failure 403 {object} model.ErrorResponse "Forbidden"
// @Router /users/{id}/unban [post]
func (h *Handler) UnbanUser(c *gin.Context) {
	h.setBanned(c, false)
}

func (h *Handler) setBanned(c *gin.Context, banned bool) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var err error
	if banned {
		err = h.moderationService.BanUser(c.Request.Context(), actor, userID)
	} else {
		err = h.moderationService.UnbanUser(c.Request.Context(), actor, userID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
