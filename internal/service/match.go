package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wager-arena/internal/events"
	"wager-arena/internal/model"
	"wager-arena/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// expireBatchSize bounds one sweep pass; leftovers are picked up next tick.
const expireBatchSize = 100

type MatchServiceImpl struct {
	userRepo  repository.UserRepository
	matchRepo repository.MatchRepository
	ledger    LedgerService
	dbManager repository.DBManager
	publisher events.Publisher
	rules     Rules
	logger    zerolog.Logger
}

func NewMatchService(
	userRepo repository.UserRepository,
	matchRepo repository.MatchRepository,
	ledger LedgerService,
	dbManager repository.DBManager,
	publisher events.Publisher,
	rules Rules,
	logger zerolog.Logger,
) MatchService {
	return &MatchServiceImpl{
		userRepo:  userRepo,
		matchRepo: matchRepo,
		ledger:    ledger,
		dbManager: dbManager,
		publisher: publisher,
		rules:     rules,
		logger:    logger,
	}
}

// CreateMatch opens a waiting match hosted by the actor. The entry fee is
// checked against the host's balance but not debited; escrow happens at
// ready-up.
func (s *MatchServiceImpl) CreateMatch(ctx context.Context, actor model.Actor, entryFee string) (*model.Match, error) {
	fee, err := decimal.NewFromString(entryFee)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if fee.LessThan(s.rules.MinEntryFee) {
		return nil, fmt.Errorf("%w: entry fee below minimum %s", model.ErrInvalidAmount, s.rules.MinEntryFee)
	}

	host, err := s.userRepo.GetUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("get host: %w", err)
	}
	if host.Banned {
		return nil, fmt.Errorf("%w: user is banned", model.ErrForbidden)
	}
	if host.Balance.LessThan(fee) {
		return nil, model.ErrInsufficientFunds
	}

	match := &model.Match{
		ID:       uuid.New().String(),
		HostID:   actor.ID,
		EntryFee: fee,
		Status:   model.StatusWaiting,
	}

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		return s.matchRepo.InsertMatch(ctx, match, tx)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("match_id", match.ID).
		Int64("host_id", actor.ID).
		Str("entry_fee", fee.StringFixed(2)).
		Msg("match created")

	return match, nil
}

func (s *MatchServiceImpl) GetMatch(ctx context.Context, matchID string) (*model.Match, error) {
	match, err := s.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	return match, nil
}

// ListAvailable returns joinable matches. Expiry is enforced here by the
// cutoff: a waiting match past its TTL never appears in listings.
func (s *MatchServiceImpl) ListAvailable(ctx context.Context, limit, offset int) ([]*model.Match, error) {
	cutoff := time.Now().Add(-s.rules.MatchTTL)
	matches, err := s.matchRepo.ListAvailable(ctx, cutoff, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list available matches: %w", err)
	}
	return matches, nil
}

// Join adds the actor to a waiting match. The match row lock serializes
// the race for the last open slot; the loser observes a full list and gets
// ErrMatchFull.
func (s *MatchServiceImpl) Join(ctx context.Context, actor model.Actor, matchID string) (*model.Match, error) {
	var match *model.Match

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		m, err := s.matchRepo.GetMatchForUpdate(ctx, matchID, tx)
		if err != nil {
			return fmt.Errorf("get match for update: %w", err)
		}

		if m.Participant(actor.ID) != nil {
			return model.ErrAlreadyJoined
		}
		if m.Full() {
			return model.ErrMatchFull
		}
		if m.Status != model.StatusWaiting {
			return fmt.Errorf("%w: cannot join a %s match", model.ErrInvalidStateTransition, m.Status)
		}
		if m.Expired(s.rules.MatchTTL, time.Now()) {
			return model.ErrMatchExpired
		}

		user, err := s.userRepo.GetUser(ctx, actor.ID, tx)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if user.Banned {
			return fmt.Errorf("%w: user is banned", model.ErrForbidden)
		}
		if user.Balance.LessThan(m.EntryFee) {
			return model.ErrInsufficientFunds
		}

		if err := s.matchRepo.AddParticipant(ctx, matchID, actor.ID, tx); err != nil {
			return err
		}
		m.Participants = append(m.Participants, &model.Participant{
			MatchID:  matchID,
			UserID:   actor.ID,
			JoinedAt: time.Now(),
		})

		if m.Full() {
			if err := s.matchRepo.UpdateStatus(ctx, matchID, model.StatusReady, tx); err != nil {
				return err
			}
			m.Status = model.StatusReady
		}

		match = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	if match.Status == model.StatusReady {
		s.publisher.Publish(events.Event{Type: events.TypeMatchReady, MatchID: matchID})
	}

	s.logger.Info().
		Str("match_id", matchID).
		Int64("user_id", actor.ID).
		Str("status", match.Status.String()).
		Msg("participant joined")

	return match, nil
}

// SetReady flips the actor's ready flag. Readying up escrows the entry fee;
// un-readying refunds it. Both participants ready moves the match to
// in_progress; un-readying from in_progress reverts it to ready.
func (s *MatchServiceImpl) SetReady(ctx context.Context, actor model.Actor, matchID string, ready bool) (*model.Match, error) {
	var (
		match   *model.Match
		started bool
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		m, err := s.matchRepo.GetMatchForUpdate(ctx, matchID, tx)
		if err != nil {
			return fmt.Errorf("get match for update: %w", err)
		}

		p := m.Participant(actor.ID)
		if p == nil {
			return model.ErrNotParticipant
		}
		if m.Status != model.StatusReady && m.Status != model.StatusInProgress {
			return fmt.Errorf("%w: cannot change ready state of a %s match", model.ErrInvalidStateTransition, m.Status)
		}

		if p.Ready == ready {
			match = m
			return nil
		}

		if ready {
			if _, err := s.ledger.Debit(ctx, tx, actor.ID, m.EntryFee, model.KindEntryFee, &matchID); err != nil {
				return err
			}
			if err := s.matchRepo.SetParticipantReady(ctx, matchID, actor.ID, true, true, tx); err != nil {
				return err
			}
			p.Ready, p.Escrowed = true, true

			if m.AllReady() {
				if err := s.matchRepo.UpdateStatus(ctx, matchID, model.StatusInProgress, tx); err != nil {
					return err
				}
				m.Status = model.StatusInProgress
				started = true
			}
		} else {
			if p.Escrowed {
				if _, err := s.ledger.Credit(ctx, tx, actor.ID, m.EntryFee, model.KindRefund, &matchID); err != nil {
					return err
				}
			}
			if err := s.matchRepo.SetParticipantReady(ctx, matchID, actor.ID, false, false, tx); err != nil {
				return err
			}
			p.Ready, p.Escrowed = false, false

			if m.Status == model.StatusInProgress {
				if err := s.matchRepo.UpdateStatus(ctx, matchID, model.StatusReady, tx); err != nil {
					return err
				}
				m.Status = model.StatusReady
			}
		}

		match = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	if started {
		s.publisher.Publish(events.Event{Type: events.TypeMatchStarted, MatchID: matchID})
	}

	s.logger.Info().
		Str("match_id", matchID).
		Int64("user_id", actor.ID).
		Bool("ready", ready).
		Str("status", match.Status.String()).
		Msg("ready state changed")

	return match, nil
}

// Leave removes the actor from a match that has not started, refunding any
// escrow. An emptied match is deleted. When the host leaves, the oldest
// remaining participant is promoted to host (promotion rather than outright
// cancellation keeps the open slot alive for the remaining player).
func (s *MatchServiceImpl) Leave(ctx context.Context, actor model.Actor, matchID string) error {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		m, err := s.matchRepo.GetMatchForUpdate(ctx, matchID, tx)
		if err != nil {
			return fmt.Errorf("get match for update: %w", err)
		}

		p := m.Participant(actor.ID)
		if p == nil {
			return model.ErrNotParticipant
		}
		if m.Status != model.StatusWaiting && m.Status != model.StatusReady {
			return fmt.Errorf("%w: cannot leave a %s match", model.ErrInvalidStateTransition, m.Status)
		}

		if p.Escrowed {
			if _, err := s.ledger.Credit(ctx, tx, actor.ID, m.EntryFee, model.KindRefund, &matchID); err != nil {
				return err
			}
		}

		if err := s.matchRepo.RemoveParticipant(ctx, matchID, actor.ID, tx); err != nil {
			return err
		}

		var remaining []*model.Participant
		for _, other := range m.Participants {
			if other.UserID != actor.ID {
				remaining = append(remaining, other)
			}
		}

		if len(remaining) == 0 {
			return s.matchRepo.DeleteMatch(ctx, matchID, tx)
		}

		// Participants are ordered by join time, so remaining[0] is the oldest.
		if m.HostID == actor.ID {
			if err := s.matchRepo.SetHost(ctx, matchID, remaining[0].UserID, tx); err != nil {
				return err
			}
		}

		if m.Status == model.StatusReady {
			if err := s.matchRepo.UpdateStatus(ctx, matchID, model.StatusWaiting, tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("match_id", matchID).
		Int64("user_id", actor.ID).
		Msg("participant left")

	return nil
}

// ExpireStale cancels waiting matches past the join window. Expiry is
// advisory; the primary guard is the listing cutoff and the join check.
// Each match is handled in its own transaction so one failure does not
// block the sweep.
func (s *MatchServiceImpl) ExpireStale(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.rules.MatchTTL)

	ids, err := s.matchRepo.ListExpiredWaiting(ctx, cutoff, expireBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list expired matches: %w", err)
	}

	var cancelled int
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return cancelled, ctx.Err()
		default:
		}

		err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			m, err := s.matchRepo.GetMatchForUpdate(ctx, id, tx)
			if err != nil {
				if errors.Is(err, model.ErrMatchNotFound) {
					return nil
				}
				return fmt.Errorf("get match for update: %w", err)
			}

			if m.Status != model.StatusWaiting {
				return nil
			}

			// A participant can still hold escrow here: readying up and then
			// losing the opponent reverts the match to waiting.
			for _, p := range m.Participants {
				if p.Escrowed {
					if _, err := s.ledger.Credit(ctx, tx, p.UserID, m.EntryFee, model.KindRefund, &m.ID); err != nil {
						return err
					}
				}
			}

			ok, err := s.matchRepo.UpdateStatusIf(ctx, id, model.StatusWaiting, model.StatusCancelled, tx)
			if err != nil {
				return err
			}
			if ok {
				cancelled++
			}
			return nil
		})
		if err != nil {
			s.logger.Error().Err(err).Str("match_id", id).Msg("failed to expire match")
		}
	}

	if cancelled > 0 {
		s.logger.Info().Int("cancelled", cancelled).Msg("stale matches expired")
	}
	return cancelled, nil
}

func (s *MatchServiceImpl) GetMatchHistory(ctx context.Context, matchID string) ([]*model.MatchHistory, error) {
	history, err := s.matchRepo.GetHistoryByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match history: %w", err)
	}
	return history, nil
}

func (s *MatchServiceImpl) GetUserHistory(ctx context.Context, userID int64, limit, offset int) ([]*model.MatchHistory, error) {
	history, err := s.matchRepo.GetHistoryByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user history: %w", err)
	}
	return history, nil
}
