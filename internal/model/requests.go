package model

type CreateMatchRequest struct {
	EntryFee string `json:"entry_fee" binding:"required" example:"2.00"`
}

type ReadyRequest struct {
	Ready *bool `json:"ready" binding:"required" example:"true"`
}

type SubmitResultRequest struct {
	DeclaredWinnerID int64  `json:"declared_winner_id" binding:"required" example:"1"`
	EvidenceRef      string `json:"evidence_ref,omitempty" example:"https://cdn.example.com/clips/abc123"`
}

type CreateDisputeRequest struct {
	Reason      string `json:"reason" binding:"required" example:"opponent left mid-game"`
	EvidenceRef string `json:"evidence_ref,omitempty"`
}

type ResolveDisputeRequest struct {
	WinnerID *int64 `json:"winner_id" example:"1"`
	Notes    string `json:"notes,omitempty" example:"evidence supports player 1"`
}

type PurchaseRequest struct {
	Amount string `json:"amount" binding:"required" example:"25.00"`
}

type TipRequest struct {
	ToUserID int64  `json:"to_user_id" binding:"required" example:"2"`
	Amount   string `json:"amount" binding:"required" example:"1.50"`
}

type WithdrawRequest struct {
	UserID int64  `json:"user_id" binding:"required" example:"1"`
	Amount string `json:"amount" binding:"required" example:"10.00"`
}

type MatchResponse struct {
	Match *Match `json:"match"`
}

type SubmitResultResponse struct {
	Status   string `json:"status" example:"awaiting_opponent"`
	Match    *Match `json:"match"`
	WinnerID *int64 `json:"winner_id,omitempty"`
}

type BalanceResponse struct {
	UserID  int64  `json:"user_id" example:"1"`
	Balance string `json:"balance" example:"100.50"`
}

type WalletResponse struct {
	Status  string `json:"status" example:"success"`
	Balance string `json:"balance" example:"110.15"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type MatchListResponse struct {
	Matches []*Match `json:"matches"`
	Total   int      `json:"total"`
}

type HistoryListResponse struct {
	History []*MatchHistory `json:"history"`
	Total   int             `json:"total"`
}

type DisputeListResponse struct {
	Disputes []*Dispute `json:"disputes"`
	Total    int        `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient funds"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}
