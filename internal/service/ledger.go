package service

import (
	"context"
	"fmt"
	"wager-arena/internal/model"
	"wager-arena/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type LedgerServiceImpl struct {
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	logger     zerolog.Logger
}

func NewLedgerService(
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	logger zerolog.Logger,
) LedgerService {
	return &LedgerServiceImpl{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// Debit subtracts amount from the user's balance inside the caller's
// transaction. The user row lock serializes concurrent balance mutation;
// the check happens after the lock so there is no lost-update window.
func (s *LedgerServiceImpl) Debit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal, kind model.TransactionKind, matchID *string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: debit amount must be positive", model.ErrInvalidAmount)
	}

	user, err := s.userRepo.GetUserForUpdate(ctx, userID, tx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get user for update: %w", err)
	}

	if user.Balance.LessThan(amount) {
		return decimal.Zero, model.ErrInsufficientFunds
	}

	newBalance := user.Balance.Sub(amount)
	if err := s.userRepo.UpdateBalance(ctx, userID, newBalance, tx); err != nil {
		return decimal.Zero, fmt.Errorf("update balance: %w", err)
	}

	entry := &model.Transaction{
		ID:      uuid.New().String(),
		UserID:  userID,
		Kind:    kind,
		Amount:  amount.Neg(),
		MatchID: matchID,
	}
	if err := s.ledgerRepo.InsertEntry(ctx, entry, tx); err != nil {
		return decimal.Zero, fmt.Errorf("insert ledger entry: %w", err)
	}

	s.logger.Info().
		Int64("user_id", userID).
		Str("kind", kind.String()).
		Str("amount", amount.StringFixed(2)).
		Str("new_balance", newBalance.StringFixed(2)).
		Msg("balance debited")

	return newBalance, nil
}

// Credit adds amount to the user's balance inside the caller's transaction.
func (s *LedgerServiceImpl) Credit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal, kind model.TransactionKind, matchID *string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: credit amount must be positive", model.ErrInvalidAmount)
	}

	user, err := s.userRepo.GetUserForUpdate(ctx, userID, tx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get user for update: %w", err)
	}

	newBalance := user.Balance.Add(amount)
	if err := s.userRepo.UpdateBalance(ctx, userID, newBalance, tx); err != nil {
		return decimal.Zero, fmt.Errorf("update balance: %w", err)
	}

	entry := &model.Transaction{
		ID:      uuid.New().String(),
		UserID:  userID,
		Kind:    kind,
		Amount:  amount,
		MatchID: matchID,
	}
	if err := s.ledgerRepo.InsertEntry(ctx, entry, tx); err != nil {
		return decimal.Zero, fmt.Errorf("insert ledger entry: %w", err)
	}

	s.logger.Info().
		Int64("user_id", userID).
		Str("kind", kind.String()).
		Str("amount", amount.StringFixed(2)).
		Str("new_balance", newBalance.StringFixed(2)).
		Msg("balance credited")

	return newBalance, nil
}
