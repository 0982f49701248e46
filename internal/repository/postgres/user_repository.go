package postgres

import (
	"context"
	"errors"
	"fmt"
	"wager-arena/internal/model"
	"wager-arena/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const userColumns = `id, username, balance, role, banned, wins, losses, earnings, version, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Balance, &user.Role, &user.Banned,
		&user.Wins, &user.Losses, &user.Earnings, &user.Version, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user without locking
func (r *UserRepositoryImpl) GetUser(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	executor := r.getExecutor(tx...)
	return scanUser(executor.QueryRow(ctx, query, userID))
}

// GetUserForUpdate retrieves a user with row-level lock
func (r *UserRepositoryImpl) GetUserForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	return scanUser(tx.QueryRow(ctx, query, userID))
}

// GetBalance get the current balance for a user
func (r *UserRepositoryImpl) GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	query := `SELECT balance FROM users WHERE id = $1`
	var balance decimal.Decimal
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, model.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// UpdateBalance update user balance
func (r *UserRepositoryImpl) UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE users
        SET balance = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, balance, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// RecordMatchResult bumps win/loss counters and winner earnings in one statement pair
func (r *UserRepositoryImpl) RecordMatchResult(ctx context.Context, winnerID, loserID int64, prize decimal.Decimal, tx pgx.Tx) error {
	winQuery := `
        UPDATE users
        SET wins = wins + 1, earnings = earnings + $1, version = version + 1, updated_at = NOW()
        WHERE id = $2`
	tag, err := tx.Exec(ctx, winQuery, prize, winnerID)
	if err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	lossQuery := `
        UPDATE users
        SET losses = losses + 1, version = version + 1, updated_at = NOW()
        WHERE id = $1`
	tag, err = tx.Exec(ctx, lossQuery, loserID)
	if err != nil {
		return fmt.Errorf("failed to record loss: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// SetBanned flips the moderation ban flag
func (r *UserRepositoryImpl) SetBanned(ctx context.Context, userID int64, banned bool) error {
	query := `UPDATE users SET banned = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, banned, userID)
	if err != nil {
		return fmt.Errorf("failed to set banned flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
