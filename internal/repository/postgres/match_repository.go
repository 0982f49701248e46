package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wager-arena/internal/model"
	"wager-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.MatchRepository = (*MatchRepositoryImpl)(nil)

// MatchRepositoryImpl is the PostgreSQL implementation of MatchRepository
type MatchRepositoryImpl struct {
	*TransactionManager
}

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &MatchRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const matchColumns = `id, host_id, entry_fee, status, winner_id, created_at, updated_at`

func scanMatch(row pgx.Row) (*model.Match, error) {
	m := &model.Match{}
	err := row.Scan(&m.ID, &m.HostID, &m.EntryFee, &m.Status, &m.WinnerID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	return m, nil
}

// InsertMatch creates a match and its hosting participant row
func (r *MatchRepositoryImpl) InsertMatch(ctx context.Context, match *model.Match, tx pgx.Tx) error {
	query := `
        INSERT INTO matches (id, host_id, entry_fee, status)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at`

	err := tx.QueryRow(ctx, query, match.ID, match.HostID, match.EntryFee, match.Status).
		Scan(&match.CreatedAt, &match.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}

	if err := r.AddParticipant(ctx, match.ID, match.HostID, tx); err != nil {
		return err
	}

	match.Participants = []*model.Participant{{MatchID: match.ID, UserID: match.HostID, JoinedAt: match.CreatedAt}}
	return nil
}

func (r *MatchRepositoryImpl) loadParticipants(ctx context.Context, matchID string, q Querier) ([]*model.Participant, error) {
	query := `
        SELECT match_id, user_id, ready, escrowed, joined_at
        FROM match_participants WHERE match_id = $1
        ORDER BY joined_at ASC`

	rows, err := q.Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	var participants []*model.Participant
	for rows.Next() {
		p := &model.Participant{}
		if err := rows.Scan(&p.MatchID, &p.UserID, &p.Ready, &p.Escrowed, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, nil
}

func (r *MatchRepositoryImpl) loadSubmissions(ctx context.Context, matchID string, q Querier) ([]*model.ResultSubmission, error) {
	query := `
        SELECT match_id, user_id, declared_winner_id, evidence_ref, submitted_at
        FROM result_submissions WHERE match_id = $1
        ORDER BY submitted_at ASC`

	rows, err := q.Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*model.ResultSubmission
	for rows.Next() {
		s := &model.ResultSubmission{}
		if err := rows.Scan(&s.MatchID, &s.UserID, &s.DeclaredWinnerID, &s.EvidenceRef, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	return submissions, nil
}

func (r *MatchRepositoryImpl) getMatch(ctx context.Context, matchID string, forUpdate bool, q Querier) (*model.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	m, err := scanMatch(q.QueryRow(ctx, query, matchID))
	if err != nil {
		return nil, err
	}

	if m.Participants, err = r.loadParticipants(ctx, matchID, q); err != nil {
		return nil, err
	}
	if m.Submissions, err = r.loadSubmissions(ctx, matchID, q); err != nil {
		return nil, err
	}
	return m, nil
}

// GetMatch retrieves a match with participants and submissions
func (r *MatchRepositoryImpl) GetMatch(ctx context.Context, matchID string, tx ...pgx.Tx) (*model.Match, error) {
	return r.getMatch(ctx, matchID, false, r.getExecutor(tx...))
}

// GetMatchForUpdate retrieves a match holding a row lock on the match row.
// The lock serializes every lifecycle mutation for this match.
func (r *MatchRepositoryImpl) GetMatchForUpdate(ctx context.Context, matchID string, tx pgx.Tx) (*model.Match, error) {
	return r.getMatch(ctx, matchID, true, tx)
}

// ListAvailable retrieves joinable waiting matches, newest first
func (r *MatchRepositoryImpl) ListAvailable(ctx context.Context, createdAfter time.Time, limit, offset int) ([]*model.Match, error) {
	query := `
        SELECT ` + matchColumns + `
        FROM matches
        WHERE status = 'waiting' AND created_at > $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, createdAfter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query available matches: %w", err)
	}
	defer rows.Close()

	var matches []*model.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	rows.Close()

	for _, m := range matches {
		if m.Participants, err = r.loadParticipants(ctx, m.ID, r.pool); err != nil {
			return nil, err
		}
	}
	return matches, nil
}

// ListExpiredWaiting retrieves ids of waiting matches past their join window
func (r *MatchRepositoryImpl) ListExpiredWaiting(ctx context.Context, createdBefore time.Time, limit int) ([]string, error) {
	query := `
        SELECT id FROM matches
        WHERE status = 'waiting' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, createdBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired matches: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan match id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AddParticipant appends a participant slot
func (r *MatchRepositoryImpl) AddParticipant(ctx context.Context, matchID string, userID int64, tx pgx.Tx) error {
	query := `INSERT INTO match_participants (match_id, user_id) VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, query, matchID, userID); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

// RemoveParticipant frees a participant slot
func (r *MatchRepositoryImpl) RemoveParticipant(ctx context.Context, matchID string, userID int64, tx pgx.Tx) error {
	query := `DELETE FROM match_participants WHERE match_id = $1 AND user_id = $2`

	tag, err := tx.Exec(ctx, query, matchID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotParticipant
	}
	return nil
}

// SetParticipantReady updates the ready flag and escrow marker
func (r *MatchRepositoryImpl) SetParticipantReady(ctx context.Context, matchID string, userID int64, ready, escrowed bool, tx pgx.Tx) error {
	query := `
        UPDATE match_participants SET ready = $1, escrowed = $2
        WHERE match_id = $3 AND user_id = $4`

	tag, err := tx.Exec(ctx, query, ready, escrowed, matchID, userID)
	if err != nil {
		return fmt.Errorf("failed to set ready flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotParticipant
	}
	return nil
}

// SetHost reassigns the hosting participant
func (r *MatchRepositoryImpl) SetHost(ctx context.Context, matchID string, hostID int64, tx pgx.Tx) error {
	query := `UPDATE matches SET host_id = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, hostID, matchID)
	if err != nil {
		return fmt.Errorf("failed to set host: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMatchNotFound
	}
	return nil
}

// UpdateStatus unconditionally sets the match status
func (r *MatchRepositoryImpl) UpdateStatus(ctx context.Context, matchID string, status model.MatchStatus, tx pgx.Tx) error {
	query := `UPDATE matches SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, status, matchID)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMatchNotFound
	}
	return nil
}

// UpdateStatusIf transitions the status only if it still equals from
func (r *MatchRepositoryImpl) UpdateStatusIf(ctx context.Context, matchID string, from, to model.MatchStatus, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE matches SET status = $1, updated_at = NOW()
        WHERE id = $2 AND status = $3`

	tag, err := tx.Exec(ctx, query, to, matchID, from)
	if err != nil {
		return false, fmt.Errorf("failed to transition status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CompleteMatch sets status=completed and the winner only if status still equals from
func (r *MatchRepositoryImpl) CompleteMatch(ctx context.Context, matchID string, winnerID int64, from model.MatchStatus, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE matches SET status = $1, winner_id = $2, updated_at = NOW()
        WHERE id = $3 AND status = $4`

	tag, err := tx.Exec(ctx, query, model.StatusCompleted, winnerID, matchID, from)
	if err != nil {
		return false, fmt.Errorf("failed to complete match: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteMatch removes an abandoned match; participant rows cascade
func (r *MatchRepositoryImpl) DeleteMatch(ctx context.Context, matchID string, tx pgx.Tx) error {
	query := `DELETE FROM matches WHERE id = $1`

	tag, err := tx.Exec(ctx, query, matchID)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMatchNotFound
	}
	return nil
}

// UpsertSubmission records a submission; resubmission overwrites, never duplicates
func (r *MatchRepositoryImpl) UpsertSubmission(ctx context.Context, sub *model.ResultSubmission, tx pgx.Tx) error {
	query := `
        INSERT INTO result_submissions (match_id, user_id, declared_winner_id, evidence_ref)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (match_id, user_id)
        DO UPDATE SET declared_winner_id = EXCLUDED.declared_winner_id,
                      evidence_ref = EXCLUDED.evidence_ref,
                      submitted_at = NOW()
        RETURNING submitted_at`

	err := tx.QueryRow(ctx, query, sub.MatchID, sub.UserID, sub.DeclaredWinnerID, sub.EvidenceRef).
		Scan(&sub.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert submission: %w", err)
	}
	return nil
}

// InsertHistory appends a settlement history record
func (r *MatchRepositoryImpl) InsertHistory(ctx context.Context, h *model.MatchHistory, tx pgx.Tx) error {
	query := `
        INSERT INTO match_history (match_id, user_id, outcome, wagered, won)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	err := tx.QueryRow(ctx, query, h.MatchID, h.UserID, h.Outcome, h.Wagered, h.Won).
		Scan(&h.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert history: %w", err)
	}
	return nil
}

func (r *MatchRepositoryImpl) queryHistory(ctx context.Context, query string, args ...any) ([]*model.MatchHistory, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []*model.MatchHistory
	for rows.Next() {
		h := &model.MatchHistory{}
		if err := rows.Scan(&h.MatchID, &h.UserID, &h.Outcome, &h.Wagered, &h.Won, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		history = append(history, h)
	}
	return history, nil
}

// GetHistoryByMatch retrieves history records for a match
func (r *MatchRepositoryImpl) GetHistoryByMatch(ctx context.Context, matchID string) ([]*model.MatchHistory, error) {
	query := `
        SELECT match_id, user_id, outcome, wagered, won, created_at
        FROM match_history WHERE match_id = $1
        ORDER BY user_id ASC`
	return r.queryHistory(ctx, query, matchID)
}

// GetHistoryByUser retrieves paginated history records for a user
func (r *MatchRepositoryImpl) GetHistoryByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.MatchHistory, error) {
	query := `
        SELECT match_id, user_id, outcome, wagered, won, created_at
        FROM match_history WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`
	return r.queryHistory(ctx, query, userID, limit, offset)
}
