package service

import (
	"context"
	"fmt"
	"wager-arena/internal/model"
	"wager-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type WalletServiceImpl struct {
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	ledger     LedgerService
	dbManager  repository.DBManager
	logger     zerolog.Logger
}

func NewWalletService(
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	ledger LedgerService,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) WalletService {
	return &WalletServiceImpl{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		ledger:     ledger,
		dbManager:  dbManager,
		logger:     logger,
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	return amount, nil
}

// Purchase credits purchased tokens to the actor's own balance. Payment
// capture happens upstream; by the time this is called the money moved.
func (s *WalletServiceImpl) Purchase(ctx context.Context, actor model.Actor, amount string) (*model.WalletResponse, error) {
	value, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}

	var balance decimal.Decimal
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		balance, err = s.ledger.Credit(ctx, tx, actor.ID, value, model.KindPurchase, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &model.WalletResponse{Status: "success", Balance: balance.StringFixed(2)}, nil
}

// Tip moves tokens between two users atomically. The two user rows are
// locked in ascending id order so concurrent opposing tips cannot deadlock.
func (s *WalletServiceImpl) Tip(ctx context.Context, actor model.Actor, toUserID int64, amount string) (*model.WalletResponse, error) {
	if toUserID == actor.ID {
		return nil, fmt.Errorf("%w: cannot tip yourself", model.ErrForbidden)
	}

	value, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}

	var balance decimal.Decimal
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if actor.ID < toUserID {
			if balance, err = s.ledger.Debit(ctx, tx, actor.ID, value, model.KindTip, nil); err != nil {
				return err
			}
			_, err = s.ledger.Credit(ctx, tx, toUserID, value, model.KindTip, nil)
			return err
		}

		if _, err = s.ledger.Credit(ctx, tx, toUserID, value, model.KindTip, nil); err != nil {
			return err
		}
		balance, err = s.ledger.Debit(ctx, tx, actor.ID, value, model.KindTip, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("from_user_id", actor.ID).
		Int64("to_user_id", toUserID).
		Str("amount", value.StringFixed(2)).
		Msg("tip sent")

	return &model.WalletResponse{Status: "success", Balance: balance.StringFixed(2)}, nil
}

// Withdraw debits a user's balance for an approved withdrawal. Only
// moderators and admins process withdrawals.
func (s *WalletServiceImpl) Withdraw(ctx context.Context, actor model.Actor, userID int64, amount string) (*model.WalletResponse, error) {
	if !actor.Role.CanModerate() {
		return nil, fmt.Errorf("%w: requires moderator role", model.ErrForbidden)
	}

	value, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}

	var balance decimal.Decimal
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		balance, err = s.ledger.Debit(ctx, tx, userID, value, model.KindWithdrawal, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", userID).
		Int64("moderator_id", actor.ID).
		Str("amount", value.StringFixed(2)).
		Msg("withdrawal processed")

	return &model.WalletResponse{Status: "success", Balance: balance.StringFixed(2)}, nil
}

func (s *WalletServiceImpl) GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return &model.BalanceResponse{
		UserID:  userID,
		Balance: balance.StringFixed(2),
	}, nil
}

func (s *WalletServiceImpl) GetTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	entries, err := s.ledgerRepo.GetEntriesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}
	return entries, nil
}
