package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Balance   decimal.Decimal `json:"balance"`
	Role      Role            `json:"role"`
	Banned    bool            `json:"banned"`
	Wins      int             `json:"wins"`
	Losses    int             `json:"losses"`
	Earnings  decimal.Decimal `json:"earnings"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Actor is the authenticated caller of an engine operation. Identity is
// established by the upstream session provider; the engine only trusts the
// id and the role loaded from the store.
type Actor struct {
	ID   int64
	Role Role
}

type Participant struct {
	MatchID  string    `json:"match_id"`
	UserID   int64     `json:"user_id"`
	Ready    bool      `json:"ready"`
	Escrowed bool      `json:"escrowed"`
	JoinedAt time.Time `json:"joined_at"`
}

type ResultSubmission struct {
	MatchID          string    `json:"match_id"`
	UserID           int64     `json:"user_id"`
	DeclaredWinnerID int64     `json:"declared_winner_id"`
	EvidenceRef      string    `json:"evidence_ref,omitempty"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

type Match struct {
	ID           string              `json:"id"`
	HostID       int64               `json:"host_id"`
	EntryFee     decimal.Decimal     `json:"entry_fee"`
	Status       MatchStatus         `json:"status"`
	WinnerID     *int64              `json:"winner_id,omitempty"`
	Participants []*Participant      `json:"participants"`
	Submissions  []*ResultSubmission `json:"submissions,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// MaxParticipants is the number of sides a match settles between. Teams
// collapse to one participant per side.
const MaxParticipants = 2

func (m *Match) Participant(userID int64) *Participant {
	for _, p := range m.Participants {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

func (m *Match) Full() bool {
	return len(m.Participants) >= MaxParticipants
}

func (m *Match) AllReady() bool {
	if !m.Full() {
		return false
	}
	for _, p := range m.Participants {
		if !p.Ready {
			return false
		}
	}
	return true
}

// Expired reports whether a waiting match is past its join window. Matches
// that progressed beyond waiting never expire.
func (m *Match) Expired(ttl time.Duration, now time.Time) bool {
	return m.Status == StatusWaiting && now.After(m.CreatedAt.Add(ttl))
}

type Dispute struct {
	ID              string        `json:"id"`
	MatchID         string        `json:"match_id"`
	ReporterID      int64         `json:"reporter_id"`
	Reason          string        `json:"reason"`
	EvidenceRef     string        `json:"evidence_ref,omitempty"`
	Status          DisputeStatus `json:"status"`
	ResolvedBy      *int64        `json:"resolved_by,omitempty"`
	ResolutionNotes string        `json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time    `json:"resolved_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Transaction is an append-only ledger entry. Amounts are signed: debits
// are negative, credits positive. Entries are never mutated after insert.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    int64           `json:"user_id"`
	Kind      TransactionKind `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	MatchID   *string         `json:"match_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type MatchHistory struct {
	MatchID   string          `json:"match_id"`
	UserID    int64           `json:"user_id"`
	Outcome   MatchOutcome    `json:"outcome"`
	Wagered   decimal.Decimal `json:"wagered"`
	Won       decimal.Decimal `json:"won"`
	CreatedAt time.Time       `json:"created_at"`
}
