package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wager-arena/internal/config"
	"wager-arena/internal/database"
	"wager-arena/internal/events"
	"wager-arena/internal/handler"
	"wager-arena/internal/logger"
	"wager-arena/internal/repository/postgres"
	"wager-arena/internal/service"
	"wager-arena/internal/worker"

	"github.com/joho/godotenv"

	_ "wager-arena/docs"
)

// @title Wager Arena API
// @version 1.0
// @description Match lifecycle and settlement engine for peer-to-peer token wagers
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Load .env if present, then configuration from environment
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	rules, err := service.NewRules(cfg.Game)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid game rules")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	disputeRepo := postgres.NewDisputeRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Event fan-out for connected clients
	broker := events.NewBroker(log)

	// Services
	ledgerService := service.NewLedgerService(userRepo, ledgerRepo, log)
	matchService := service.NewMatchService(userRepo, matchRepo, ledgerService, txManager, broker, rules, log)
	settlementService := service.NewSettlementService(userRepo, matchRepo, disputeRepo, ledgerService, txManager, broker, rules, log)
	walletService := service.NewWalletService(userRepo, ledgerRepo, ledgerService, txManager, log)
	moderationService := service.NewModerationService(userRepo, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker sweeping expired waiting matches
	expiryWorker := worker.NewExpiryWorker(matchService, cfg.Worker.ExpiryInterval, log)
	expiryWorker.Start(ctx)
	defer expiryWorker.Stop()

	// http handler
	h := handler.NewHandler(matchService, settlementService, walletService, moderationService, userRepo, broker, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
