package postgres

import (
	"context"
	"errors"
	"fmt"
	"wager-arena/internal/model"
	"wager-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.DisputeRepository = (*DisputeRepositoryImpl)(nil)

// DisputeRepositoryImpl is the PostgreSQL implementation of DisputeRepository
type DisputeRepositoryImpl struct {
	*TransactionManager
}

func NewDisputeRepository(pool *pgxpool.Pool) repository.DisputeRepository {
	return &DisputeRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const disputeColumns = `id, match_id, reporter_id, reason, evidence_ref, status, resolved_by, resolution_notes, resolved_at, created_at`

func scanDispute(row pgx.Row) (*model.Dispute, error) {
	d := &model.Dispute{}
	err := row.Scan(&d.ID, &d.MatchID, &d.ReporterID, &d.Reason, &d.EvidenceRef,
		&d.Status, &d.ResolvedBy, &d.ResolutionNotes, &d.ResolvedAt, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDisputeNotFound
		}
		return nil, fmt.Errorf("failed to scan dispute: %w", err)
	}
	return d, nil
}

// InsertDispute creates a pending dispute
func (r *DisputeRepositoryImpl) InsertDispute(ctx context.Context, d *model.Dispute, tx pgx.Tx) error {
	query := `
        INSERT INTO disputes (id, match_id, reporter_id, reason, evidence_ref, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	err := tx.QueryRow(ctx, query, d.ID, d.MatchID, d.ReporterID, d.Reason, d.EvidenceRef, d.Status).
		Scan(&d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert dispute: %w", err)
	}
	return nil
}

// GetPendingByMatch retrieves the pending dispute for a match
func (r *DisputeRepositoryImpl) GetPendingByMatch(ctx context.Context, matchID string, tx pgx.Tx) (*model.Dispute, error) {
	query := `
        SELECT ` + disputeColumns + `
        FROM disputes WHERE match_id = $1 AND status = 'pending'
        ORDER BY created_at ASC
        LIMIT 1`
	return scanDispute(tx.QueryRow(ctx, query, matchID))
}

// ResolveDispute stamps the resolving moderator, notes and timestamp
func (r *DisputeRepositoryImpl) ResolveDispute(ctx context.Context, disputeID string, moderatorID int64, notes string, tx pgx.Tx) error {
	query := `
        UPDATE disputes
        SET status = $1, resolved_by = $2, resolution_notes = $3, resolved_at = NOW()
        WHERE id = $4 AND status = $5`

	tag, err := tx.Exec(ctx, query, model.DisputeResolved, moderatorID, notes, disputeID, model.DisputePending)
	if err != nil {
		return fmt.Errorf("failed to resolve dispute: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDisputeNotFound
	}
	return nil
}

// ListPending retrieves paginated pending disputes, oldest first
func (r *DisputeRepositoryImpl) ListPending(ctx context.Context, limit, offset int) ([]*model.Dispute, error) {
	query := `
        SELECT ` + disputeColumns + `
        FROM disputes WHERE status = 'pending'
        ORDER BY created_at ASC
        LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending disputes: %w", err)
	}
	defer rows.Close()

	var disputes []*model.Dispute
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			return nil, err
		}
		disputes = append(disputes, d)
	}
	return disputes, nil
}
