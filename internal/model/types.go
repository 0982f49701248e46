package model

type MatchStatus string

const (
	StatusWaiting    MatchStatus = "waiting"
	StatusReady      MatchStatus = "ready"
	StatusInProgress MatchStatus = "in_progress"
	StatusCompleted  MatchStatus = "completed"
	StatusDisputed   MatchStatus = "disputed"
	StatusCancelled  MatchStatus = "cancelled"
)

// Terminal reports whether no further transitions are allowed from s.
func (s MatchStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s MatchStatus) String() string {
	return string(s)
}

func ParseMatchStatus(s string) (MatchStatus, error) {
	switch s {
	case string(StatusWaiting), string(StatusReady), string(StatusInProgress),
		string(StatusCompleted), string(StatusDisputed), string(StatusCancelled):
		return MatchStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

type TransactionKind string

const (
	KindPurchase   TransactionKind = "purchase"
	KindEntryFee   TransactionKind = "entry_fee"
	KindPrize      TransactionKind = "prize"
	KindRefund     TransactionKind = "refund"
	KindTip        TransactionKind = "tip"
	KindWithdrawal TransactionKind = "withdrawal"
)

func (k TransactionKind) String() string {
	return string(k)
}

func ParseTransactionKind(s string) (TransactionKind, error) {
	switch s {
	case string(KindPurchase), string(KindEntryFee), string(KindPrize),
		string(KindRefund), string(KindTip), string(KindWithdrawal):
		return TransactionKind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// CanModerate reports whether the role may resolve disputes, ban users
// and process withdrawals.
func (r Role) CanModerate() bool {
	return r == RoleModerator || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, error) {
	switch s {
	case string(RoleUser), string(RoleModerator), string(RoleAdmin):
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

type DisputeStatus string

const (
	DisputePending  DisputeStatus = "pending"
	DisputeResolved DisputeStatus = "resolved"
)

type MatchOutcome string

const (
	OutcomeWin  MatchOutcome = "win"
	OutcomeLoss MatchOutcome = "loss"
)
