package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"wager-arena/internal/events"
	"wager-arena/internal/model"
	"wager-arena/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type SettlementServiceImpl struct {
	userRepo    repository.UserRepository
	matchRepo   repository.MatchRepository
	disputeRepo repository.DisputeRepository
	ledger      LedgerService
	dbManager   repository.DBManager
	publisher   events.Publisher
	rules       Rules
	logger      zerolog.Logger
}

func NewSettlementService(
	userRepo repository.UserRepository,
	matchRepo repository.MatchRepository,
	disputeRepo repository.DisputeRepository,
	ledger LedgerService,
	dbManager repository.DBManager,
	publisher events.Publisher,
	rules Rules,
	logger zerolog.Logger,
) SettlementService {
	return &SettlementServiceImpl{
		userRepo:    userRepo,
		matchRepo:   matchRepo,
		disputeRepo: disputeRepo,
		ledger:      ledger,
		dbManager:   dbManager,
		publisher:   publisher,
		rules:       rules,
		logger:      logger,
	}
}

// SubmitResult records the actor's declared winner. Once both sides have
// submitted, agreement settles the match and disagreement escalates it to a
// dispute. The transition out of in_progress is a compare-and-set: whichever
// caller wins the race settles, the loser observes the new status and no-ops.
func (s *SettlementServiceImpl) SubmitResult(ctx context.Context, actor model.Actor, matchID string, declaredWinnerID int64, evidenceRef string) (*model.SubmitResultResponse, error) {
	var (
		resp     *model.SubmitResultResponse
		outcome  events.Type
		winnerID int64
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		m, err := s.matchRepo.GetMatchForUpdate(ctx, matchID, tx)
		if err != nil {
			return fmt.Errorf("get match for update: %w", err)
		}

		if m.Status != model.StatusInProgress {
			return fmt.Errorf("%w: cannot submit a result for a %s match", model.ErrInvalidStateTransition, m.Status)
		}
		if m.Participant(actor.ID) == nil {
			return model.ErrNotParticipant
		}
		if m.Participant(declaredWinnerID) == nil {
			return model.ErrInvalidWinner
		}

		sub := &model.ResultSubmission{
			MatchID:          matchID,
			UserID:           actor.ID,
			DeclaredWinnerID: declaredWinnerID,
			EvidenceRef:      evidenceRef,
		}
		if err := s.matchRepo.UpsertSubmission(ctx, sub, tx); err != nil {
			return err
		}

		// Merge into the loaded snapshot; resubmission overwrites.
		replaced := false
		for i, existing := range m.Submissions {
			if existing.UserID == actor.ID {
				m.Submissions[i] = sub
				replaced = true
				break
			}
		}
		if !replaced {
			m.Submissions = append(m.Submissions, sub)
		}

		if len(m.Submissions) < len(m.Participants) {
			resp = &model.SubmitResultResponse{Status: "awaiting_opponent", Match: m}
			return nil
		}

		first, second := m.Submissions[0], m.Submissions[1]
		if first.DeclaredWinnerID == second.DeclaredWinnerID {
			winnerID = first.DeclaredWinnerID
			ok, err := s.matchRepo.CompleteMatch(ctx, matchID, winnerID, model.StatusInProgress, tx)
			if err != nil {
				return err
			}
			if !ok {
				// Benign race: another caller already settled. Logged for
				// audit, surfaced as the already-final state.
				s.logger.Info().Str("match_id", matchID).Msg("settlement skipped, match already finalized")
				resp = &model.SubmitResultResponse{Status: string(m.Status), Match: m}
				return nil
			}

			if err := s.distributePrize(ctx, tx, m, winnerID); err != nil {
				return err
			}
			m.Status = model.StatusCompleted
			m.WinnerID = &winnerID
			outcome = events.TypeMatchCompleted
			resp = &model.SubmitResultResponse{Status: string(model.StatusCompleted), Match: m, WinnerID: &winnerID}
			return nil
		}

		ok, err := s.matchRepo.UpdateStatusIf(ctx, matchID, model.StatusInProgress, model.StatusDisputed, tx)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Info().Str("match_id", matchID).Msg("dispute escalation skipped, match already finalized")
			resp = &model.SubmitResultResponse{Status: string(m.Status), Match: m}
			return nil
		}

		dispute := &model.Dispute{
			ID:         uuid.New().String(),
			MatchID:    matchID,
			ReporterID: actor.ID,
			Reason: fmt.Sprintf("conflicting result submissions: user %d declared %d, user %d declared %d",
				first.UserID, first.DeclaredWinnerID, second.UserID, second.DeclaredWinnerID),
			EvidenceRef: joinEvidence(first.EvidenceRef, second.EvidenceRef),
			Status:      model.DisputePending,
		}
		if err := s.disputeRepo.InsertDispute(ctx, dispute, tx); err != nil {
			return err
		}

		m.Status = model.StatusDisputed
		outcome = events.TypeMatchDisputed
		resp = &model.SubmitResultResponse{Status: string(model.StatusDisputed), Match: m}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if outcome != "" {
		e := events.Event{Type: outcome, MatchID: matchID}
		if outcome == events.TypeMatchCompleted {
			e.WinnerID = &winnerID
		}
		s.publisher.Publish(e)
	}

	s.logger.Info().
		Str("match_id", matchID).
		Int64("user_id", actor.ID).
		Int64("declared_winner_id", declaredWinnerID).
		Str("result", resp.Status).
		Msg("result submitted")

	return resp, nil
}

// CreateDispute lets a participant escalate directly, regardless of
// submission state. Valid only while the match is in progress.
func (s *SettlementServiceImpl) CreateDispute(ctx context.Context, actor model.Actor, matchID, reason, evidenceRef string) (*model.Dispute, error) {
	var dispute *model.Dispute

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		m, err := s.matchRepo.GetMatchForUpdate(ctx, matchID, tx)
		if err != nil {
			return fmt.Errorf("get match for update: %w", err)
		}

		if m.Status != model.StatusInProgress {
			return fmt.Errorf("%w: cannot dispute a %s match", model.ErrInvalidStateTransition, m.Status)
		}
		if m.Participant(actor.ID) == nil {
			return model.ErrNotParticipant
		}

		ok, err := s.matchRepo.UpdateStatusIf(ctx, matchID, model.StatusInProgress, model.StatusDisputed, tx)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: match already finalized", model.ErrInvalidStateTransition)
		}

		dispute = &model.Dispute{
			ID:          uuid.New().String(),
			MatchID:     matchID,
			ReporterID:  actor.ID,
			Reason:      reason,
			EvidenceRef: evidenceRef,
			Status:      model.DisputePending,
		}
		return s.disputeRepo.InsertDispute(ctx, dispute, tx)
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{Type: events.TypeMatchDisputed, MatchID: matchID})

	s.logger.Info().
		Str("match_id", matchID).
		Int64("reporter_id", actor.ID).
		Str("dispute_id", dispute.ID).
		Msg("dispute filed")

	return dispute, nil
}

// ResolveDispute is the moderator's binding decision on a disputed match:
// a winner settles it, a nil winner voids it and refunds both escrows.
func (s *SettlementServiceImpl) ResolveDispute(ctx context.Context, actor model.Actor, matchID string, winnerID *int64, notes string) (*model.Match, error) {
	if !actor.Role.CanModerate() {
		return nil, fmt.Errorf("%w: requires moderator role", model.ErrForbidden)
	}

	var (
		match     *model.Match
		completed bool
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		m, err := s.matchRepo.GetMatchForUpdate(ctx, matchID, tx)
		if err != nil {
			return fmt.Errorf("get match for update: %w", err)
		}

		if m.Status != model.StatusDisputed {
			return model.ErrNotDisputed
		}

		if winnerID != nil {
			if m.Participant(*winnerID) == nil {
				return model.ErrInvalidWinner
			}
			ok, err := s.matchRepo.CompleteMatch(ctx, matchID, *winnerID, model.StatusDisputed, tx)
			if err != nil {
				return err
			}
			if !ok {
				return model.ErrNotDisputed
			}
			if err := s.distributePrize(ctx, tx, m, *winnerID); err != nil {
				return err
			}
			m.Status = model.StatusCompleted
			m.WinnerID = winnerID
			completed = true
		} else {
			ok, err := s.matchRepo.UpdateStatusIf(ctx, matchID, model.StatusDisputed, model.StatusCancelled, tx)
			if err != nil {
				return err
			}
			if !ok {
				return model.ErrNotDisputed
			}
			for _, p := range m.Participants {
				if p.Escrowed {
					if _, err := s.ledger.Credit(ctx, tx, p.UserID, m.EntryFee, model.KindRefund, &m.ID); err != nil {
						return err
					}
				}
			}
			m.Status = model.StatusCancelled
		}

		dispute, err := s.disputeRepo.GetPendingByMatch(ctx, matchID, tx)
		if err != nil {
			if errors.Is(err, model.ErrDisputeNotFound) {
				// Disputed status without a pending record should not happen;
				// the resolution itself still stands.
				s.logger.Warn().Str("match_id", matchID).Msg("no pending dispute record for disputed match")
				match = m
				return nil
			}
			return err
		}
		if err := s.disputeRepo.ResolveDispute(ctx, dispute.ID, actor.ID, notes, tx); err != nil {
			return err
		}

		match = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	if completed {
		s.publisher.Publish(events.Event{Type: events.TypeMatchCompleted, MatchID: matchID, WinnerID: winnerID})
	}

	logEvent := s.logger.Info().
		Str("match_id", matchID).
		Int64("moderator_id", actor.ID).
		Str("status", match.Status.String())
	if winnerID != nil {
		logEvent = logEvent.Int64("winner_id", *winnerID)
	}
	logEvent.Msg("dispute resolved")

	return match, nil
}

func (s *SettlementServiceImpl) ListPendingDisputes(ctx context.Context, limit, offset int) ([]*model.Dispute, error) {
	disputes, err := s.disputeRepo.ListPending(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pending disputes: %w", err)
	}
	return disputes, nil
}

// distributePrize pays the commission-adjusted pool to the winner, bumps
// the win/loss counters and appends history for both sides. Callers must
// have already won the status compare-and-set, which is what makes the
// payout happen exactly once.
func (s *SettlementServiceImpl) distributePrize(ctx context.Context, tx pgx.Tx, m *model.Match, winnerID int64) error {
	prize := s.rules.Prize(m.EntryFee, len(m.Participants))

	if _, err := s.ledger.Credit(ctx, tx, winnerID, prize, model.KindPrize, &m.ID); err != nil {
		return fmt.Errorf("credit prize: %w", err)
	}

	var loserID int64
	for _, p := range m.Participants {
		if p.UserID != winnerID {
			loserID = p.UserID
			break
		}
	}

	if err := s.userRepo.RecordMatchResult(ctx, winnerID, loserID, prize, tx); err != nil {
		return err
	}

	winHistory := &model.MatchHistory{
		MatchID: m.ID,
		UserID:  winnerID,
		Outcome: model.OutcomeWin,
		Wagered: m.EntryFee,
		Won:     prize,
	}
	if err := s.matchRepo.InsertHistory(ctx, winHistory, tx); err != nil {
		return err
	}

	lossHistory := &model.MatchHistory{
		MatchID: m.ID,
		UserID:  loserID,
		Outcome: model.OutcomeLoss,
		Wagered: m.EntryFee,
		Won:     decimal.Zero,
	}
	if err := s.matchRepo.InsertHistory(ctx, lossHistory, tx); err != nil {
		return err
	}

	s.logger.Info().
		Str("match_id", m.ID).
		Int64("winner_id", winnerID).
		Int64("loser_id", loserID).
		Str("prize", prize.StringFixed(2)).
		Msg("prize distributed")

	return nil
}

func joinEvidence(refs ...string) string {
	var nonEmpty []string
	for _, ref := range refs {
		if ref != "" {
			nonEmpty = append(nonEmpty, ref)
		}
	}
	return strings.Join(nonEmpty, "; ")
}
