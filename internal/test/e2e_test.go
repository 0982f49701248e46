package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"
	"wager-arena/internal/config"
	"wager-arena/internal/database"
	"wager-arena/internal/events"
	"wager-arena/internal/handler"
	"wager-arena/internal/model"
	"wager-arena/internal/repository/postgres"
	"wager-arena/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

const (
	hostID      = int64(101)
	guestID     = int64(102)
	moderatorID = int64(109)
)

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	testPool = pool
	os.Exit(m.Run())
}

func seedUser(t *testing.T, id int64, role string, balance string) {
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO users (id, username, balance, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET balance = EXCLUDED.balance,
			role = EXCLUDED.role,
			banned = FALSE,
			version = 0,
			updated_at = NOW()
	`, id, fmt.Sprintf("e2e_user_%d", id), balance, role)
	require.NoError(t, err)
}

func setupE2E(t *testing.T) *handler.Handler {
	if testPool == nil {
		t.Skip("Database connection not available")
	}

	ctx := context.Background()
	_, err := testPool.Exec(ctx, "DELETE FROM transactions WHERE user_id >= $1", hostID)
	require.NoError(t, err)
	// Participant, submission, dispute and history rows cascade
	_, err = testPool.Exec(ctx, "DELETE FROM matches WHERE host_id >= $1", hostID)
	require.NoError(t, err)

	seedUser(t, hostID, "user", "100.00")
	seedUser(t, guestID, "user", "100.00")
	seedUser(t, moderatorID, "moderator", "0.00")

	logger := zerolog.Nop()
	userRepo := postgres.NewUserRepository(testPool)
	matchRepo := postgres.NewMatchRepository(testPool)
	ledgerRepo := postgres.NewLedgerRepository(testPool)
	disputeRepo := postgres.NewDisputeRepository(testPool)
	dbManager := postgres.NewTransactionManager(testPool)
	broker := events.NewBroker(logger)

	rules, err := service.NewRules(config.GameConfig{
		CommissionRate: "0.05",
		MinEntryFee:    "0.5",
		MatchTTL:       30 * time.Minute,
	})
	require.NoError(t, err)

	ledger := service.NewLedgerService(userRepo, ledgerRepo, logger)
	matchService := service.NewMatchService(userRepo, matchRepo, ledger, dbManager, broker, rules, logger)
	settlementService := service.NewSettlementService(userRepo, matchRepo, disputeRepo, ledger, dbManager, broker, rules, logger)
	walletService := service.NewWalletService(userRepo, ledgerRepo, ledger, dbManager, logger)
	moderationService := service.NewModerationService(userRepo, logger)

	return handler.NewHandler(matchService, settlementService, walletService, moderationService, userRepo, broker, logger)
}

func doJSON(t *testing.T, router http.Handler, method, path string, actorID int64, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	if actorID != 0 {
		req.Header.Set("X-Actor-ID", strconv.FormatInt(actorID, 10))
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func dbBalance(t *testing.T, userID int64) string {
	var balance string
	err := testPool.QueryRow(context.Background(), "SELECT balance::text FROM users WHERE id = $1", userID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

// Test_FullLifecycle_AgreedResult walks a match from creation to an agreed
// settlement and verifies the money: host 100 - 2 + 3.80 = 101.80, guest
// 100 - 2 = 98.00, commission retained.
func Test_FullLifecycle_AgreedResult(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	w := doJSON(t, router, "POST", "/api/v1/matches", hostID, model.CreateMatchRequest{EntryFee: "2.00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	matchID := created.Match.ID

	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/join", guestID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var joined model.MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &joined))
	assert.Equal(t, model.StatusReady, joined.Match.Status)

	ready := true
	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/ready", hostID, model.ReadyRequest{Ready: &ready})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/ready", guestID, model.ReadyRequest{Ready: &ready})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var started model.MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	assert.Equal(t, model.StatusInProgress, started.Match.Status)

	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/result", hostID, model.SubmitResultRequest{DeclaredWinnerID: hostID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var first model.SubmitResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, "awaiting_opponent", first.Status)

	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/result", guestID, model.SubmitResultRequest{DeclaredWinnerID: hostID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var second model.SubmitResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, "completed", second.Status)
	require.NotNil(t, second.WinnerID)
	assert.Equal(t, hostID, *second.WinnerID)

	assert.Equal(t, "101.80", dbBalance(t, hostID))
	assert.Equal(t, "98.00", dbBalance(t, guestID))

	w = doJSON(t, router, "GET", "/api/v1/matches/"+matchID+"/history", 0, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history model.HistoryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Equal(t, 2, history.Total)
}

// Test_DisputedResult_ModeratorResolves drives a disagreement into a dispute
// and has a moderator settle it for the guest.
func Test_DisputedResult_ModeratorResolves(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	w := doJSON(t, router, "POST", "/api/v1/matches", hostID, model.CreateMatchRequest{EntryFee: "2.00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	matchID := created.Match.ID

	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/join", guestID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	ready := true
	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/ready", hostID, model.ReadyRequest{Ready: &ready})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/ready", guestID, model.ReadyRequest{Ready: &ready})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Each side claims its own victory
	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/result", hostID, model.SubmitResultRequest{DeclaredWinnerID: hostID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/result", guestID, model.SubmitResultRequest{DeclaredWinnerID: guestID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var escalated model.SubmitResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &escalated))
	assert.Equal(t, "disputed", escalated.Status)

	// A participant cannot resolve
	winner := guestID
	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/resolve", hostID, model.ResolveDisputeRequest{WinnerID: &winner})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/resolve", moderatorID, model.ResolveDisputeRequest{WinnerID: &winner, Notes: "guest replay conclusive"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resolved model.MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	assert.Equal(t, model.StatusCompleted, resolved.Match.Status)

	assert.Equal(t, "98.00", dbBalance(t, hostID))
	assert.Equal(t, "101.80", dbBalance(t, guestID))

	// Dispute record is stamped resolved
	var status string
	err := testPool.QueryRow(context.Background(), "SELECT status FROM disputes WHERE match_id = $1", matchID).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, "resolved", status)
}

// Test_ConcurrentJoins_SingleSlot verifies that concurrent joins to the one
// open slot settle to exactly one winner, everyone else gets a conflict and
// nothing 500s.
func Test_ConcurrentJoins_SingleSlot(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	const numJoiners = 10

	// Seed a pool of joiners beyond the fixed fixtures
	joinerIDs := make([]int64, numJoiners)
	for i := 0; i < numJoiners; i++ {
		joinerIDs[i] = int64(200 + i)
		seedUser(t, joinerIDs[i], "user", "50.00")
	}

	w := doJSON(t, router, "POST", "/api/v1/matches", hostID, model.CreateMatchRequest{EntryFee: "2.00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	matchID := created.Match.ID

	barrier := make(chan struct{})
	results := make(chan int, numJoiners)

	var wg sync.WaitGroup
	wg.Add(numJoiners)

	for i := 0; i < numJoiners; i++ {
		joinerID := joinerIDs[i]
		go func() {
			defer wg.Done()
			<-barrier

			rec := doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/join", joinerID, nil)
			results <- rec.Code
		}()
	}

	close(barrier)
	wg.Wait()
	close(results)

	var joined, conflicted, unexpected int
	for code := range results {
		assert.NotEqual(t, http.StatusInternalServerError, code, "No 500 errors")
		switch code {
		case http.StatusOK:
			joined++
		case http.StatusConflict:
			conflicted++
		default:
			unexpected++
		}
	}

	assert.Equal(t, 1, joined, "Exactly one join should win the open slot")
	assert.Equal(t, numJoiners-1, conflicted, "Everyone else should observe a full match")
	assert.Equal(t, 0, unexpected)

	var participants int
	err := testPool.QueryRow(context.Background(), "SELECT COUNT(*) FROM match_participants WHERE match_id = $1", matchID).Scan(&participants)
	require.NoError(t, err)
	assert.Equal(t, 2, participants)
}

// Test_ConcurrentResultSubmissions_SinglePayout verifies that racing final
// submissions settle the match exactly once: the winner is paid a single
// prize regardless of which request lands last.
func Test_ConcurrentResultSubmissions_SinglePayout(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	w := doJSON(t, router, "POST", "/api/v1/matches", hostID, model.CreateMatchRequest{EntryFee: "2.00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	matchID := created.Match.ID

	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/join", guestID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	ready := true
	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/ready", hostID, model.ReadyRequest{Ready: &ready})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/ready", guestID, model.ReadyRequest{Ready: &ready})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Both sides agree on the host and submit at the same time
	barrier := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)

	for _, actorID := range []int64{hostID, guestID} {
		actorID := actorID
		go func() {
			defer wg.Done()
			<-barrier
			rec := doJSON(t, router, "POST", "/api/v1/matches/"+matchID+"/result", actorID, model.SubmitResultRequest{DeclaredWinnerID: hostID})
			assert.NotEqual(t, http.StatusInternalServerError, rec.Code, "No 500 errors")
		}()
	}

	close(barrier)
	wg.Wait()

	assert.Equal(t, "101.80", dbBalance(t, hostID), "Prize paid exactly once")
	assert.Equal(t, "98.00", dbBalance(t, guestID))

	var prizeEntries int
	err := testPool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM transactions WHERE match_id = $1 AND kind = 'prize'", matchID).Scan(&prizeEntries)
	require.NoError(t, err)
	assert.Equal(t, 1, prizeEntries)
}
