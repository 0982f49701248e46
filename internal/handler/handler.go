package handler

import (
	"errors"
	"net/http"
	"strconv"
	"wager-arena/internal/events"
	"wager-arena/internal/model"
	"wager-arena/internal/repository"
	"wager-arena/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	matchService      service.MatchService
	settlementService service.SettlementService
	walletService     service.WalletService
	moderationService service.ModerationService
	userRepo          repository.UserRepository
	broker            *events.Broker
	logger            zerolog.Logger
}

func NewHandler(
	matchService service.MatchService,
	settlementService service.SettlementService,
	walletService service.WalletService,
	moderationService service.ModerationService,
	userRepo repository.UserRepository,
	broker *events.Broker,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		matchService:      matchService,
		settlementService: settlementService,
		walletService:     walletService,
		moderationService: moderationService,
		userRepo:          userRepo,
		broker:            broker,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		MetricsMiddleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", MetricsHandler())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	matches := v1.Group("/matches")
	matches.POST("", h.CreateMatch)
	matches.GET("", h.ListMatches)
	matches.GET("/:id", h.GetMatch)
	matches.GET("/:id/history", h.GetMatchHistory)
	matches.POST("/:id/join", h.JoinMatch)
	matches.POST("/:id/ready", h.SetReady)
	matches.POST("/:id/leave", h.LeaveMatch)
	matches.POST("/:id/result", h.SubmitResult)
	matches.POST("/:id/dispute", h.CreateDispute)
	matches.POST("/:id/resolve", h.ResolveDispute)

	disputes := v1.Group("/disputes")
	disputes.GET("", h.ListDisputes)

	users := v1.Group("/users")
	users.GET("/:id/balance", h.GetBalance)
	users.GET("/:id/transactions", h.GetTransactions)
	users.GET("/:id/history", h.GetUserHistory)
	users.POST("/:id/ban", h.BanUser)
	users.POST("/:id/unban", h.UnbanUser)

	wallet := v1.Group("/wallet")
	wallet.POST("/purchase", h.Purchase)
	wallet.POST("/tip", h.Tip)
	wallet.POST("/withdraw", h.Withdraw)

	v1.GET("/events", h.StreamEvents)

	return router
}

// actor resolves the acting user from the X-Actor-ID header. Identity is
// established upstream; the role always comes from the store, never from
// the request.
func (h *Handler) actor(c *gin.Context) (model.Actor, bool) {
	idStr := c.GetHeader("X-Actor-ID")
	if idStr == "" {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{
			Error: "X-Actor-ID header is required",
			Code:  "MISSING_ACTOR",
		})
		return model.Actor{}, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{
			Error: "X-Actor-ID must be a positive integer",
			Code:  "INVALID_ACTOR",
		})
		return model.Actor{}, false
	}

	user, err := h.userRepo.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "unknown actor",
				Code:  "UNKNOWN_ACTOR",
			})
			return model.Actor{}, false
		}
		h.handleError(c, err)
		return model.Actor{}, false
	}

	return model.Actor{ID: user.ID, Role: user.Role}, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidWinner):
		status = http.StatusBadRequest
		code = "INVALID_WINNER"
	case errors.Is(err, model.ErrMatchFull):
		status = http.StatusConflict
		code = "MATCH_FULL"
	case errors.Is(err, model.ErrAlreadyJoined):
		status = http.StatusConflict
		code = "ALREADY_JOINED"
	case errors.Is(err, model.ErrInvalidStateTransition):
		status = http.StatusConflict
		code = "INVALID_STATE_TRANSITION"
	case errors.Is(err, model.ErrNotDisputed):
		status = http.StatusConflict
		code = "NOT_DISPUTED"
	case errors.Is(err, model.ErrMatchExpired):
		status = http.StatusGone
		code = "MATCH_EXPIRED"
	case errors.Is(err, model.ErrNotParticipant):
		status = http.StatusForbidden
		code = "NOT_PARTICIPANT"
	case errors.Is(err, model.ErrForbidden):
		status = http.StatusForbidden
		code = "FORBIDDEN"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrMatchNotFound):
		status = http.StatusNotFound
		code = "MATCH_NOT_FOUND"
	case errors.Is(err, model.ErrDisputeNotFound):
		status = http.StatusNotFound
		code = "DISPUTE_NOT_FOUND"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
