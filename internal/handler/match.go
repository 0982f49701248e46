package handler

import (
	"net/http"
	"strconv"
	"wager-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateMatch
// @Summary Create a match
// @Description Open a waiting match hosted by the acting user
// @Tags matches
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Acting user ID"
// @Param match body model.CreateMatchRequest true "Match parameters"
// @Success 201 {object} model.MatchResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 403 {object} model.ErrorResponse "Banned"
// @Router /matches [post]
func (h *Handler) CreateMatch(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	match, err := h.matchService.CreateMatch(c.Request.Context(), actor, req.EntryFee)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.MatchResponse{Match: match})
}

// ListMatches
// @Summary List available matches
// @Description Returns joinable waiting matches, excluding expired ones
// @Tags matches
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.MatchListResponse
// @Router /matches [get]
func (h *Handler) ListMatches(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	matches, err := h.matchService.ListAvailable(c.Request.Context(), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MatchListResponse{Matches: matches, Total: len(matches)})
}

// GetMatch
// @Summary Get a match
// @Description Returns the match with participants and submissions
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} model.MatchResponse
// @Failure 404 {object} model.ErrorResponse "Match not found"
// @Router /matches/{id} [get]
func (h *Handler) GetMatch(c *gin.Context) {
	match, err := h.matchService.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MatchResponse{Match: match})
}

// JoinMatch
// @Summary Join a match
// @Description Take the open slot of a waiting match
// @Tags matches
// @Produce json
// @Param X-Actor-ID header int true "Acting user ID"
// @Param id path string true "Match ID"
// @Success 200 {object} model.MatchResponse
// @Failure 409 {object} model.ErrorResponse "Full or already joined"
// @Failure 410 {object} model.ErrorResponse "Expired"
// @Router /matches/{id}/join [post]
func (h *Handler) JoinMatch(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	match, err := h.matchService.Join(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MatchResponse{Match: match})
}

// SetReady
// @Summary Set ready state
// @Description Ready up (escrows the entry fee) or un-ready (refunds it)
// @Tags matches
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Acting user ID"
// @Param id path string true "Match ID"
// @Param ready body model.ReadyRequest true "Ready flag"
// @Success 200 {object} model.MatchResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient funds"
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /matches/{id}/ready [post]
func (h *Handler) SetReady(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.ReadyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Ready == nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	match, err := h.matchService.SetReady(c.Request.Context(), actor, c.Param("id"), *req.Ready)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MatchResponse{Match: match})
}

// LeaveMatch
// @Summary Leave a match
// @Description Leave before the match starts; any escrow is refunded
// @Tags matches
// @Produce json
// @Param X-Actor-ID header int true "Acting user ID"
// @Param id path string true "Match ID"
// @Success 204 "Left"
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /matches/{id}/leave [post]
func (h *Handler) LeaveMatch(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.matchService.Leave(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMatchHistory
// @Summary Get match history records
// @Description Returns the settlement records written for a completed match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} model.HistoryListResponse
// @Router /matches/{id}/history [get]
func (h *Handler) GetMatchHistory(c *gin.Context) {
	history, err := h.matchService.GetMatchHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.HistoryListResponse{History: history, Total: len(history)})
}
