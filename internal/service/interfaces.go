package service

import (
	"context"
	"wager-arena/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerService owns the two balance-mutation primitives. Every token
// movement in the engine goes through Debit or Credit; nothing else writes
// a balance. Both return the resulting balance.
type LedgerService interface {
	// Debit subtracts amount from the user's balance and appends a negative
	// ledger entry. Fails with ErrInsufficientFunds, no partial debit.
	Debit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal, kind model.TransactionKind, matchID *string) (decimal.Decimal, error)

	// Credit adds amount to the user's balance and appends a positive ledger entry.
	Credit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal, kind model.TransactionKind, matchID *string) (decimal.Decimal, error)
}

// MatchService owns the match lifecycle: create, join, ready-up escrow,
// leave, expiry and listings.
type MatchService interface {
	CreateMatch(ctx context.Context, actor model.Actor, entryFee string) (*model.Match, error)
	GetMatch(ctx context.Context, matchID string) (*model.Match, error)
	ListAvailable(ctx context.Context, limit, offset int) ([]*model.Match, error)
	Join(ctx context.Context, actor model.Actor, matchID string) (*model.Match, error)
	SetReady(ctx context.Context, actor model.Actor, matchID string, ready bool) (*model.Match, error)
	Leave(ctx context.Context, actor model.Actor, matchID string) error

	// ExpireStale cancels waiting matches past the join window, refunding any
	// escrow. Returns the number of matches cancelled.
	ExpireStale(ctx context.Context) (int, error)

	GetMatchHistory(ctx context.Context, matchID string) ([]*model.MatchHistory, error)
	GetUserHistory(ctx context.Context, userID int64, limit, offset int) ([]*model.MatchHistory, error)
}

// SettlementService owns result reconciliation and dispute resolution:
// the transitions out of in_progress and disputed.
type SettlementService interface {
	SubmitResult(ctx context.Context, actor model.Actor, matchID string, declaredWinnerID int64, evidenceRef string) (*model.SubmitResultResponse, error)
	CreateDispute(ctx context.Context, actor model.Actor, matchID, reason, evidenceRef string) (*model.Dispute, error)
	ResolveDispute(ctx context.Context, actor model.Actor, matchID string, winnerID *int64, notes string) (*model.Match, error)
	ListPendingDisputes(ctx context.Context, limit, offset int) ([]*model.Dispute, error)
}

// WalletService owns token movements outside the match lifecycle.
type WalletService interface {
	Purchase(ctx context.Context, actor model.Actor, amount string) (*model.WalletResponse, error)
	Tip(ctx context.Context, actor model.Actor, toUserID int64, amount string) (*model.WalletResponse, error)

	// Withdraw processes a user's withdrawal; moderator or admin only.
	Withdraw(ctx context.Context, actor model.Actor, userID int64, amount string) (*model.WalletResponse, error)

	GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error)
	GetTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)
}

// ModerationService owns user-level moderation actions.
type ModerationService interface {
	BanUser(ctx context.Context, actor model.Actor, userID int64) error
	UnbanUser(ctx context.Context, actor model.Actor, userID int64) error
}
