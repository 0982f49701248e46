package service

import (
	"context"
	"testing"
	"wager-arena/internal/model"
	mocks "wager-arena/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurchase_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{
		ID:      1,
		Balance: decimal.NewFromInt(10),
	}, nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(1), decimal.RequireFromString("35.00"), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(entry *model.Transaction) bool {
		return entry.UserID == 1 &&
			entry.Kind == model.KindPurchase &&
			entry.Amount.Equal(decimal.RequireFromString("25.00")) &&
			entry.MatchID == nil
	}), mock.Anything).Return(nil)

	ledger := NewLedgerService(mockUserRepo, mockLedgerRepo, logger)
	service := NewWalletService(mockUserRepo, mockLedgerRepo, ledger, mockDBManager, logger)

	resp, err := service.Purchase(ctx, model.Actor{ID: 1, Role: model.RoleUser}, "25.00")

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "35.00", resp.Balance)
}

func TestPurchase_InvalidAmount(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	ledger := NewLedgerService(mockUserRepo, mockLedgerRepo, logger)
	service := NewWalletService(mockUserRepo, mockLedgerRepo, ledger, mockDBManager, logger)

	resp, err := service.Purchase(ctx, model.Actor{ID: 1, Role: model.RoleUser}, "-5")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestTip_ConservesTokens(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{
		ID:      1,
		Balance: decimal.NewFromInt(50),
	}, nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(1), decimal.RequireFromString("40.00"), mock.Anything).Return(nil)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(2), mock.Anything).Return(&model.User{
		ID:      2,
		Balance: decimal.NewFromInt(5),
	}, nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(2), decimal.RequireFromString("15.00"), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(entry *model.Transaction) bool {
		return entry.UserID == 1 &&
			entry.Kind == model.KindTip &&
			entry.Amount.Equal(decimal.RequireFromString("-10.00"))
	}), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(entry *model.Transaction) bool {
		return entry.UserID == 2 &&
			entry.Kind == model.KindTip &&
			entry.Amount.Equal(decimal.RequireFromString("10.00"))
	}), mock.Anything).Return(nil)

	ledger := NewLedgerService(mockUserRepo, mockLedgerRepo, logger)
	service := NewWalletService(mockUserRepo, mockLedgerRepo, ledger, mockDBManager, logger)

	resp, err := service.Tip(ctx, model.Actor{ID: 1, Role: model.RoleUser}, 2, "10.00")

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "40.00", resp.Balance)
}

func TestTip_SelfTipRejected(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	ledger := NewLedgerService(mockUserRepo, mockLedgerRepo, logger)
	service := NewWalletService(mockUserRepo, mockLedgerRepo, ledger, mockDBManager, logger)

	resp, err := service.Tip(ctx, model.Actor{ID: 1, Role: model.RoleUser}, 1, "10.00")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestTip_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{
		ID:      1,
		Balance: decimal.NewFromInt(5),
	}, nil)

	ledger := NewLedgerService(mockUserRepo, mockLedgerRepo, logger)
	service := NewWalletService(mockUserRepo, mockLedgerRepo, ledger, mockDBManager, logger)

	resp, err := service.Tip(ctx, model.Actor{ID: 1, Role: model.RoleUser}, 2, "10.00")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
}

func TestWithdraw_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockUserRepo.On("GetUserForUpdate", ctx, int64(3), mock.Anything).Return(&model.User{
		ID:      3,
		Balance: decimal.NewFromInt(100),
	}, nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(3), decimal.RequireFromString("60.00"), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(entry *model.Transaction) bool {
		return entry.UserID == 3 &&
			entry.Kind == model.KindWithdrawal &&
			entry.Amount.Equal(decimal.RequireFromString("-40.00"))
	}), mock.Anything).Return(nil)

	ledger := NewLedgerService(mockUserRepo, mockLedgerRepo, logger)
	service := NewWalletService(mockUserRepo, mockLedgerRepo, ledger, mockDBManager, logger)

	resp, err := service.Withdraw(ctx, model.Actor{ID: 9, Role: model.RoleModerator}, 3, "40.00")

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "60.00", resp.Balance)
}

func TestWithdraw_RequiresModerator(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	ledger := NewLedgerService(mockUserRepo, mockLedgerRepo, logger)
	service := NewWalletService(mockUserRepo, mockLedgerRepo, ledger, mockDBManager, logger)

	resp, err := service.Withdraw(ctx, model.Actor{ID: 3, Role: model.RoleUser}, 3, "40.00")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockUserRepo.On("GetBalance", ctx, int64(1)).Return(decimal.RequireFromString("42.5"), nil)

	ledger := NewLedgerService(mockUserRepo, mockLedgerRepo, logger)
	service := NewWalletService(mockUserRepo, mockLedgerRepo, ledger, mockDBManager, logger)

	resp, err := service.GetBalance(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "42.50", resp.Balance)
}
