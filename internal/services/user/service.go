package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vestra/internal/models"
	"vestra/internal/repositories"
	"vestra/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Service errors
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPassword = errors.New("password must be at least 8 characters and contain special characters")
)

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	BTCAddress  string `json:"btc_address"`
	ETHAddress  string `json:"eth_address"`
	USDTAddress string `json:"usdt_address"`
	AvatarURL   string `json:"avatar_url"`
}

// Service manages user accounts and profiles.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, input ProfileInput) (*models.User, error)
}

type service struct {
	userRepo    repositories.UserRepository
	balanceRepo repositories.BalanceRepository
}

func NewService(userRepo repositories.UserRepository, balanceRepo repositories.BalanceRepository) Service {
	if userRepo == nil {
		panic("user repo is required")
	}
	if balanceRepo == nil {
		panic("balance repo is required")
	}
	return &service{
		userRepo:    userRepo,
		balanceRepo: balanceRepo,
	}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if !validation.IsEmail(input.Email) {
		return nil, ErrInvalidEmail
	}
	if !validation.ValidPassword(input.Password) {
		return nil, ErrInvalidPassword
	}

	v := validation.New()
	v.Check(strings.TrimSpace(input.Name) != "", "name", "name is required")
	v.Check(len(input.Name) <= 100, "name", "name must be 100 characters or fewer")
	v.Check(input.Phone == "" || validation.IsPhone(input.Phone), "phone", "invalid phone number")
	if !v.Valid() {
		return nil, v.Errors[0]
	}

	if _, err := s.userRepo.GetByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Country:  input.Country,
		Phone:    input.Phone,
		Role:     "user",
		Status:   "active",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Every account gets a zeroed balance record at signup.
	if err := s.balanceRepo.Create(&models.Balance{UserID: user.ID}); err != nil {
		return nil, fmt.Errorf("failed to create balance: %w", err)
	}

	return user, nil
}

func (s *service) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	v := validation.New()
	v.Check(input.Phone == "" || validation.IsPhone(input.Phone), "phone", "invalid phone number")
	v.Check(len(input.Name) <= 100, "name", "name must be 100 characters or fewer")
	if !v.Valid() {
		return nil, v.Errors[0]
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Country != "" {
		user.Country = input.Country
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.BTCAddress != "" {
		user.BTCAddress = input.BTCAddress
	}
	if input.ETHAddress != "" {
		user.ETHAddress = input.ETHAddress
	}
	if input.USDTAddress != "" {
		user.USDTAddress = input.USDTAddress
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	user.ProfileCompleted = user.HasCompleteProfile()

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
