package service

import (
	"context"
	"fmt"
	"wager-arena/internal/model"
	"wager-arena/internal/repository"

	"github.com/rs/zerolog"
)

type ModerationServiceImpl struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

func NewModerationService(userRepo repository.UserRepository, logger zerolog.Logger) ModerationService {
	return &ModerationServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *ModerationServiceImpl) BanUser(ctx context.Context, actor model.Actor, userID int64) error {
	return s.setBanned(ctx, actor, userID, true)
}

func (s *ModerationServiceImpl) UnbanUser(ctx context.Context, actor model.Actor, userID int64) error {
	return s.setBanned(ctx, actor, userID, false)
}

func (s *ModerationServiceImpl) setBanned(ctx context.Context, actor model.Actor, userID int64, banned bool) error {
	if !actor.Role.CanModerate() {
		return fmt.Errorf("%w: requires moderator role", model.ErrForbidden)
	}
	if actor.ID == userID {
		return fmt.Errorf("%w: cannot moderate yourself", model.ErrForbidden)
	}

	target, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if target.Role == model.RoleAdmin {
		return fmt.Errorf("%w: cannot ban an admin", model.ErrForbidden)
	}

	if err := s.userRepo.SetBanned(ctx, userID, banned); err != nil {
		return fmt.Errorf("set banned: %w", err)
	}

	s.logger.Info().
		Int64("user_id", userID).
		Int64("moderator_id", actor.ID).
		Bool("banned", banned).
		Msg("ban state changed")

	return nil
}
