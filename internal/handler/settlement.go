package handler

import (
	"net/http"
	"strconv"
	"wager-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// SubmitResult
// @Summary Submit a match result
// @Description Declare the winner of an in-progress match; both sides agreeing settles it
// @Tags settlement
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Acting user ID"
// @Param id path string true "Match ID"
// @Param result body model.SubmitResultRequest true "Declared result"
// @Success 200 {object} model.SubmitResultResponse
// @Failure 403 {object} model.ErrorResponse "Not a participant"
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /matches/{id}/result [post]
func (h *Handler) SubmitResult(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.settlementService.SubmitResult(c.Request.Context(), actor, c.Param("id"), req.DeclaredWinnerID, req.EvidenceRef)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateDispute
// @Summary File a dispute
// @Description Escalate an in-progress match to moderation, regardless of submissions
// @Tags settlement
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Acting user ID"
// @Param id path string true "Match ID"
// @Param dispute body model.CreateDisputeRequest true "Dispute details"
// @Success 201 {object} model.Dispute
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /matches/{id}/dispute [post]
func (h *Handler) CreateDispute(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.CreateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	dispute, err := h.settlementService.CreateDispute(c.Request.Context(), actor, c.Param("id"), req.Reason, req.EvidenceRef)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dispute)
}

// ResolveDispute
// @Summary Resolve a dispute
// @Description Moderator decision: a winner settles the match, null voids it with refunds
// @Tags settlement
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Acting moderator ID"
// @Param id path string true "Match ID"
// @Param resolution body model.ResolveDisputeRequest true "Resolution"
// @Success 200 {object} model.MatchResponse
// @Failure 403 {object} model.ErrorResponse "Forbidden"
// @Failure 409 {object} model.ErrorResponse "Not disputed"
// @Router /matches/{id}/resolve [post]
func (h *Handler) ResolveDispute(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	match, err := h.settlementService.ResolveDispute(c.Request.Context(), actor, c.Param("id"), req.WinnerID, req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MatchResponse{Match: match})
}

// ListDisputes
// @Summary List pending disputes
// @Description Moderation queue, oldest first
// @Tags settlement
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.DisputeListResponse
// @Router /disputes [get]
func (h *Handler) ListDisputes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	disputes, err := h.settlementService.ListPendingDisputes(c.Request.Context(), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DisputeListResponse{Disputes: disputes, Total: len(disputes)})
}
