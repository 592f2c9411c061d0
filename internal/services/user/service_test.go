package user

import (
	"context"
	"testing"

	"vestra/internal/models"
	"vestra/internal/repositories"
	"vestra/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	updated *models.User
}

func (f *fakeUserRepo) Create(u *models.User) error {
	u.ID = uint(len(f.byEmail) + 1)
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.updated = u
	return nil
}

func (f *fakeUserRepo) IncrementTokenVersion(userID uint) error { return nil }
func (f *fakeUserRepo) Count() (int64, error)                   { return 0, nil }
func (f *fakeUserRepo) List(offset, limit int) ([]models.User, int64, error) {
	return nil, 0, nil
}

type fakeBalanceRepo struct {
	created []*models.Balance
}

func (f *fakeBalanceRepo) Create(b *models.Balance) error {
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBalanceRepo) GetByUserID(userID uint) (*models.Balance, error) { return nil, nil }
func (f *fakeBalanceRepo) Update(b *models.Balance) error                   { return nil }
func (f *fakeBalanceRepo) Invalidate(ctx context.Context, userID uint)      {}

func newTestService() (Service, *fakeUserRepo, *fakeBalanceRepo) {
	users := &fakeUserRepo{byEmail: make(map[string]*models.User)}
	balances := &fakeBalanceRepo{}
	return NewService(users, balances), users, balances
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	valid := RegisterInput{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "Str0ng!pass",
	}

	tests := []struct {
		name      string
		mutate    func(*RegisterInput)
		wantErr   error
		wantField string
	}{
		{
			name:    "invalid email",
			mutate:  func(in *RegisterInput) { in.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "weak password",
			mutate:  func(in *RegisterInput) { in.Password = "short" },
			wantErr: ErrInvalidPassword,
		},
		{
			name:      "blank name",
			mutate:    func(in *RegisterInput) { in.Name = "   " },
			wantField: "name",
		},
		{
			name:      "invalid phone",
			mutate:    func(in *RegisterInput) { in.Phone = "call me" },
			wantField: "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, users, _ := newTestService()

			input := valid
			tt.mutate(&input)
			_, err := s.Register(ctx, input)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantField != "" {
				var verr validation.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
			}
			assert.Empty(t, users.byEmail, "no account is created on a rejected signup")
		})
	}

	t.Run("duplicate email conflicts", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.Register(ctx, valid)
		require.NoError(t, err)
		_, err = s.Register(ctx, valid)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("valid signup creates the account with a zeroed balance", func(t *testing.T) {
		s, _, balances := newTestService()

		created, err := s.Register(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "user", created.Role)
		assert.NotEqual(t, valid.Password, created.Password, "password is stored hashed")
		require.Len(t, balances.created, 1)
		assert.Equal(t, created.ID, balances.created[0].UserID)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	seed := func() (Service, *fakeUserRepo, uint) {
		s, users, _ := newTestService()
		created, err := s.Register(ctx, RegisterInput{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "Str0ng!pass",
		})
		if err != nil {
			t.Fatalf("seed user: %v", err)
		}
		return s, users, created.ID
	}

	t.Run("invalid phone is rejected", func(t *testing.T) {
		s, users, id := seed()

		_, err := s.UpdateProfile(ctx, id, ProfileInput{Phone: "call me"})
		var verr validation.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "phone", verr.Field)
		assert.Nil(t, users.updated)
	})

	t.Run("merges submitted fields and keeps the rest", func(t *testing.T) {
		s, users, id := seed()

		updated, err := s.UpdateProfile(ctx, id, ProfileInput{
			Country:    "UK",
			Phone:      "+447911123456",
			BTCAddress: "bc1qexample",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", updated.Name, "unset fields are untouched")
		assert.Equal(t, "UK", updated.Country)
		assert.Equal(t, "bc1qexample", updated.BTCAddress)
		assert.NotNil(t, users.updated)
	})
}
