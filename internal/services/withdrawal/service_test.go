package withdrawal

import (
	"context"
	"testing"

	domainerr "vestra/internal/errors"
	"vestra/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWithdrawalRepo struct {
	created []*models.WithdrawalRequest
}

func (f *fakeWithdrawalRepo) Create(w *models.WithdrawalRequest) error {
	w.ID = uint(len(f.created) + 1)
	f.created = append(f.created, w)
	return nil
}
func (f *fakeWithdrawalRepo) GetByID(id uint) (*models.WithdrawalRequest, error) { return nil, nil }
func (f *fakeWithdrawalRepo) ListByUser(userID uint) ([]models.WithdrawalRequest, error) {
	var out []models.WithdrawalRequest
	for _, w := range f.created {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}
func (f *fakeWithdrawalRepo) ListByStatus(status string, offset, limit int) ([]models.WithdrawalRequest, int64, error) {
	return nil, 0, nil
}
func (f *fakeWithdrawalRepo) Update(w *models.WithdrawalRequest) error { return nil }

type fakeBalanceRepo struct {
	balance *models.Balance
}

func (f *fakeBalanceRepo) Create(b *models.Balance) error { return nil }
func (f *fakeBalanceRepo) GetByUserID(userID uint) (*models.Balance, error) {
	return f.balance, nil
}
func (f *fakeBalanceRepo) Update(b *models.Balance) error              { return nil }
func (f *fakeBalanceRepo) Invalidate(ctx context.Context, userID uint) {}

func balanceOf(total float64) *models.Balance {
	return &models.Balance{UserID: 1, TotalBalance: total, AvailableBalance: total}
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) Create(u *models.User) error { return nil }
func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	return &models.User{Email: "user@example.com"}, nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(u *models.User) error                   { return nil }
func (f *fakeUserRepo) IncrementTokenVersion(userID uint) error       { return nil }
func (f *fakeUserRepo) Count() (int64, error)                         { return 0, nil }
func (f *fakeUserRepo) List(offset, limit int) ([]models.User, int64, error) {
	return nil, 0, nil
}

func newTestService(available float64) (Service, *fakeWithdrawalRepo) {
	repo := &fakeWithdrawalRepo{}
	balances := &fakeBalanceRepo{balance: balanceOf(available)}
	return NewService(repo, balances, &fakeUserRepo{}, nil), repo
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		available float64
		input     SubmitInput
		wantErr   error
	}{
		{
			name:      "below minimum",
			available: 1000,
			input:     SubmitInput{Amount: 49.99, PaymentMethod: "btc", WalletAddress: "addr"},
			wantErr:   ErrBelowMinimum,
		},
		{
			name:      "unknown payment method",
			available: 1000,
			input:     SubmitInput{Amount: 100, PaymentMethod: "paypal", WalletAddress: "addr"},
			wantErr:   ErrInvalidPaymentMethod,
		},
		{
			name:      "missing wallet address",
			available: 1000,
			input:     SubmitInput{Amount: 100, PaymentMethod: "eth", WalletAddress: "  "},
			wantErr:   ErrMissingWalletAddress,
		},
		{
			name:      "exceeds available balance",
			available: 80,
			input:     SubmitInput{Amount: 100, PaymentMethod: "usdt", WalletAddress: "addr"},
			wantErr:   domainerr.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newTestService(tt.available)
			_, err := s.Submit(ctx, 1, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.created)
		})
	}

	t.Run("valid request is recorded pending", func(t *testing.T) {
		s, repo := newTestService(1000)

		request, err := s.Submit(ctx, 1, SubmitInput{
			Amount:        100,
			PaymentMethod: "BTC",
			WalletAddress: "bc1qexample",
		})
		require.NoError(t, err)
		require.Len(t, repo.created, 1)

		assert.Equal(t, models.WithdrawalStatusPending, request.Status)
		assert.Equal(t, "btc", request.PaymentMethod, "method is normalized to lowercase")
		assert.NotEmpty(t, request.OrderID)
	})

	t.Run("minimum amount is accepted", func(t *testing.T) {
		s, _ := newTestService(1000)

		_, err := s.Submit(ctx, 1, SubmitInput{
			Amount:        MinAmount,
			PaymentMethod: "eth",
			WalletAddress: "0xexample",
		})
		assert.NoError(t, err)
	})
}
