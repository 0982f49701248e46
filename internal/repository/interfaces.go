package repository

import (
	"context"
	"time"
	"wager-arena/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// UserRepository defines operations for user/balance management
type UserRepository interface {
	// GetUser retrieves a user (read-only)
	GetUser(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.User, error)

	// GetUserForUpdate retrieves a user with row-level lock (must be in transaction)
	GetUserForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.User, error)

	// GetBalance retrieves the current balance for a user (read-only)
	GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error)

	// UpdateBalance updates user balance
	UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error

	// RecordMatchResult bumps the winner's win/earnings counters and the loser's loss counter
	RecordMatchResult(ctx context.Context, winnerID, loserID int64, prize decimal.Decimal, tx pgx.Tx) error

	// SetBanned flips the moderation ban flag
	SetBanned(ctx context.Context, userID int64, banned bool) error
}

// MatchRepository defines operations for match lifecycle state
type MatchRepository interface {
	// InsertMatch creates a new match with its host participant row
	InsertMatch(ctx context.Context, match *model.Match, tx pgx.Tx) error

	// GetMatch retrieves a match with participants and submissions (read-only)
	GetMatch(ctx context.Context, matchID string, tx ...pgx.Tx) (*model.Match, error)

	// GetMatchForUpdate retrieves a match with a row-level lock on the match row.
	// All lifecycle mutations lock the match first, so participant and
	// submission rows are serialized by that lock.
	GetMatchForUpdate(ctx context.Context, matchID string, tx pgx.Tx) (*model.Match, error)

	// ListAvailable retrieves open waiting matches created after the cutoff
	ListAvailable(ctx context.Context, createdAfter time.Time, limit, offset int) ([]*model.Match, error)

	// ListExpiredWaiting retrieves ids of waiting matches created before the cutoff
	ListExpiredWaiting(ctx context.Context, createdBefore time.Time, limit int) ([]string, error)

	// AddParticipant appends a participant slot
	AddParticipant(ctx context.Context, matchID string, userID int64, tx pgx.Tx) error

	// RemoveParticipant frees a participant slot
	RemoveParticipant(ctx context.Context, matchID string, userID int64, tx pgx.Tx) error

	// SetParticipantReady updates a participant's ready flag and escrow marker
	SetParticipantReady(ctx context.Context, matchID string, userID int64, ready, escrowed bool, tx pgx.Tx) error

	// SetHost reassigns the hosting participant
	SetHost(ctx context.Context, matchID string, hostID int64, tx pgx.Tx) error

	// UpdateStatus unconditionally sets the match status
	UpdateStatus(ctx context.Context, matchID string, status model.MatchStatus, tx pgx.Tx) error

	// UpdateStatusIf transitions the status only if it still equals from.
	// Returns false when another caller won the race.
	UpdateStatusIf(ctx context.Context, matchID string, from, to model.MatchStatus, tx pgx.Tx) (bool, error)

	// CompleteMatch atomically sets status=completed and the winner, only if
	// the status still equals from. Returns false when another caller won.
	CompleteMatch(ctx context.Context, matchID string, winnerID int64, from model.MatchStatus, tx pgx.Tx) (bool, error)

	// DeleteMatch removes an abandoned match and its participant rows
	DeleteMatch(ctx context.Context, matchID string, tx pgx.Tx) error

	// UpsertSubmission records a result submission, overwriting any prior one
	// from the same participant
	UpsertSubmission(ctx context.Context, sub *model.ResultSubmission, tx pgx.Tx) error

	// InsertHistory appends a settlement history record
	InsertHistory(ctx context.Context, h *model.MatchHistory, tx pgx.Tx) error

	// GetHistoryByMatch retrieves history records for a match
	GetHistoryByMatch(ctx context.Context, matchID string) ([]*model.MatchHistory, error)

	// GetHistoryByUser retrieves paginated history records for a user
	GetHistoryByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.MatchHistory, error)
}

// LedgerRepository defines operations on the append-only transaction log
type LedgerRepository interface {
	// InsertEntry appends a ledger entry. Entries are never updated.
	InsertEntry(ctx context.Context, entry *model.Transaction, tx pgx.Tx) error

	// GetEntriesByUser retrieves paginated entries for a user
	GetEntriesByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)

	// GetEntriesByMatch retrieves all entries tied to a match
	GetEntriesByMatch(ctx context.Context, matchID string, tx ...pgx.Tx) ([]*model.Transaction, error)
}

// DisputeRepository defines operations for dispute records
type DisputeRepository interface {
	// InsertDispute creates a pending dispute
	InsertDispute(ctx context.Context, d *model.Dispute, tx pgx.Tx) error

	// GetPendingByMatch retrieves the pending dispute for a match
	GetPendingByMatch(ctx context.Context, matchID string, tx pgx.Tx) (*model.Dispute, error)

	// ResolveDispute stamps the resolving moderator, notes and timestamp
	ResolveDispute(ctx context.Context, disputeID string, moderatorID int64, notes string, tx pgx.Tx) error

	// ListPending retrieves paginated pending disputes for the moderation queue
	ListPending(ctx context.Context, limit, offset int) ([]*model.Dispute, error)
}
