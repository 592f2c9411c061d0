package investment

import (
	"context"
	"testing"
	"time"

	"vestra/internal/models"
	"vestra/internal/services/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlanService struct {
	plans map[uint]*models.Plan
}

func (f *fakePlanService) List(ctx context.Context) ([]models.Plan, error) { return nil, nil }
func (f *fakePlanService) Get(ctx context.Context, id uint) (*models.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, plan.ErrPlanNotFound
	}
	return p, nil
}
func (f *fakePlanService) GetByName(ctx context.Context, name string) (*models.Plan, error) {
	return nil, plan.ErrPlanNotFound
}
func (f *fakePlanService) QuoteFor(ctx context.Context, planID uint, amount float64) (*plan.Quote, error) {
	return nil, nil
}

type fakePendingRepo struct {
	created []*models.PendingInvestment
}

func (f *fakePendingRepo) Create(p *models.PendingInvestment) error {
	p.ID = uint(len(f.created) + 1)
	f.created = append(f.created, p)
	return nil
}
func (f *fakePendingRepo) GetByID(id uint) (*models.PendingInvestment, error) { return nil, nil }
func (f *fakePendingRepo) ListByUser(userID uint) ([]models.PendingInvestment, error) {
	var out []models.PendingInvestment
	for _, p := range f.created {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}
func (f *fakePendingRepo) ListByStatus(status string, offset, limit int) ([]models.PendingInvestment, int64, error) {
	return nil, 0, nil
}
func (f *fakePendingRepo) Update(p *models.PendingInvestment) error { return nil }

type fakeInvestmentRepo struct {
	investments []models.Investment
}

func (f *fakeInvestmentRepo) Create(inv *models.Investment) error         { return nil }
func (f *fakeInvestmentRepo) GetByID(id uint) (*models.Investment, error) { return nil, nil }
func (f *fakeInvestmentRepo) ListByUser(userID uint) ([]models.Investment, error) {
	return f.investments, nil
}
func (f *fakeInvestmentRepo) ListAll(offset, limit int, status string) ([]models.Investment, int64, error) {
	return nil, 0, nil
}
func (f *fakeInvestmentRepo) ListMaturedActive(now time.Time) ([]models.Investment, error) {
	return nil, nil
}
func (f *fakeInvestmentRepo) RecentlyMatured(daysBack int) ([]models.Investment, error) {
	return nil, nil
}
func (f *fakeInvestmentRepo) Update(inv *models.Investment) error { return nil }

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

func newTestService() (Service, *fakePendingRepo, *fakeInvestmentRepo) {
	maxCompact := 4999.0
	plans := &fakePlanService{plans: map[uint]*models.Plan{
		1: {ID: 1, Name: "Compact", DailyRate: 2.5, DurationDays: 5, MinAmount: 100, MaxAmount: &maxCompact, Status: "active"},
	}}
	pendingRepo := &fakePendingRepo{}
	invRepo := &fakeInvestmentRepo{}
	return NewService(plans, pendingRepo, invRepo, &fakeUserRepo{}, nil), pendingRepo, invRepo
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   SubmitInput
		wantErr error
	}{
		{
			name:    "unknown payment method",
			input:   SubmitInput{PlanID: 1, Amount: 500, PaymentMethod: "card"},
			wantErr: ErrInvalidPaymentMethod,
		},
		{
			name:    "unknown plan",
			input:   SubmitInput{PlanID: 99, Amount: 500, PaymentMethod: "btc"},
			wantErr: plan.ErrPlanNotFound,
		},
		{
			name:    "amount below plan minimum",
			input:   SubmitInput{PlanID: 1, Amount: 50, PaymentMethod: "btc"},
			wantErr: ErrAmountOutOfRange,
		},
		{
			name:    "amount above plan maximum",
			input:   SubmitInput{PlanID: 1, Amount: 5000, PaymentMethod: "btc"},
			wantErr: ErrAmountOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, pendingRepo, _ := newTestService()
			_, err := s.Submit(ctx, 1, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, pendingRepo.created)
		})
	}

	t.Run("valid request is recorded pending", func(t *testing.T) {
		s, pendingRepo, _ := newTestService()

		pending, err := s.Submit(ctx, 1, SubmitInput{
			PlanID:        1,
			Amount:        500,
			PaymentMethod: "ETH",
			TxHash:        "0xabc",
		})
		require.NoError(t, err)
		require.Len(t, pendingRepo.created, 1)

		assert.Equal(t, models.PendingStatusPending, pending.Status)
		assert.Equal(t, "Compact", pending.PlanName)
		assert.Equal(t, "eth", pending.PaymentMethod, "method is normalized to lowercase")
		assert.NotEmpty(t, pending.OrderID)
	})
}

func TestListByUserProgress(t *testing.T) {
	s, _, invRepo := newTestService()

	start := time.Now().AddDate(0, 0, -5)
	invRepo.investments = []models.Investment{
		{ID: 1, PlanName: "Master", StartDate: start, MaturityDate: start.AddDate(0, 0, 10), Status: models.InvestmentStatusActive},
		{ID: 2, PlanName: "Compact", StartDate: start, MaturityDate: start.AddDate(0, 0, 2), Status: models.InvestmentStatusCompleted},
	}

	views, err := s.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.InDelta(t, 50.0, views[0].Progress, 0.1, "halfway through a 10 day term")
	assert.Equal(t, 100.0, views[1].Progress, "past maturity clamps to 100")
}
