package service

import (
	"fmt"
	"time"
	"wager-arena/internal/config"

	"github.com/shopspring/decimal"
)

// Rules are the product-configurable wagering parameters, parsed once at
// startup from config.
type Rules struct {
	Commission  decimal.Decimal
	MinEntryFee decimal.Decimal
	MatchTTL    time.Duration
}

func NewRules(cfg config.GameConfig) (Rules, error) {
	commission, err := decimal.NewFromString(cfg.CommissionRate)
	if err != nil {
		return Rules{}, fmt.Errorf("invalid commission rate %q: %w", cfg.CommissionRate, err)
	}
	if commission.IsNegative() || commission.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Rules{}, fmt.Errorf("commission rate %s out of range [0, 1)", commission)
	}

	minFee, err := decimal.NewFromString(cfg.MinEntryFee)
	if err != nil {
		return Rules{}, fmt.Errorf("invalid minimum entry fee %q: %w", cfg.MinEntryFee, err)
	}
	if !minFee.IsPositive() {
		return Rules{}, fmt.Errorf("minimum entry fee %s must be positive", minFee)
	}

	if cfg.MatchTTL <= 0 {
		return Rules{}, fmt.Errorf("match TTL %s must be positive", cfg.MatchTTL)
	}

	return Rules{
		Commission:  commission,
		MinEntryFee: minFee,
		MatchTTL:    cfg.MatchTTL,
	}, nil
}

// Prize is the winner's payout for a pool of n entry fees after commission.
func (r Rules) Prize(entryFee decimal.Decimal, participants int) decimal.Decimal {
	pool := entryFee.Mul(decimal.NewFromInt(int64(participants)))
	return pool.Mul(decimal.NewFromInt(1).Sub(r.Commission))
}
