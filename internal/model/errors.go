package model

import "errors"

var (
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrMatchFull              = errors.New("match is full")
	ErrAlreadyJoined          = errors.New("already joined")
	ErrMatchExpired           = errors.New("match expired")
	ErrNotParticipant         = errors.New("not a participant")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrNotDisputed            = errors.New("match is not disputed")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidKind            = errors.New("invalid transaction kind")
	ErrInvalidRole            = errors.New("invalid role")
	ErrInvalidWinner          = errors.New("declared winner is not a participant")
	ErrUserNotFound           = errors.New("user not found")
	ErrMatchNotFound          = errors.New("match not found")
	ErrDisputeNotFound        = errors.New("dispute not found")
)
