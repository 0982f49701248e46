package postgres

import (
	"context"
	"fmt"
	"wager-arena/internal/model"
	"wager-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const entryColumns = `id, user_id, kind, amount, match_id, created_at`

// InsertEntry appends a ledger entry. There is no update path: the
// transactions table is the audit trail for every balance change.
func (r *LedgerRepositoryImpl) InsertEntry(ctx context.Context, entry *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (id, user_id, kind, amount, match_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	err := tx.QueryRow(ctx, query, entry.ID, entry.UserID, entry.Kind, entry.Amount, entry.MatchID).
		Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

func (r *LedgerRepositoryImpl) queryEntries(ctx context.Context, q Querier, query string, args ...any) ([]*model.Transaction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.Transaction
	for rows.Next() {
		entry := &model.Transaction{}
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Kind, &entry.Amount, &entry.MatchID, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetEntriesByUser retrieves paginated entries for a user
func (r *LedgerRepositoryImpl) GetEntriesByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM transactions WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`
	return r.queryEntries(ctx, r.pool, query, userID, limit, offset)
}

// GetEntriesByMatch retrieves all entries tied to a match
func (r *LedgerRepositoryImpl) GetEntriesByMatch(ctx context.Context, matchID string, tx ...pgx.Tx) ([]*model.Transaction, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM transactions WHERE match_id = $1
        ORDER BY created_at ASC`
	return r.queryEntries(ctx, r.getExecutor(tx...), query, matchID)
}
