// Package jobs hosts the in-process scheduled work. The only job today is
// the maturity sweep that completes investments at/after their maturity
// date and credits returns.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"vestra/internal/models"
	"vestra/internal/repositories"
	"vestra/internal/services/notify"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// maturitySchedule runs shortly after midnight so investments maturing on a
// given day are completed that morning.
const maturitySchedule = "15 0 * * *"

// MaturitySweeper completes matured investments and credits their returns.
type MaturitySweeper struct {
	db       *gorm.DB
	invRepo  repositories.InvestmentRepository
	balances repositories.BalanceRepository
	userRepo repositories.UserRepository
	notifier notify.Service
	now      func() time.Time
}

func NewMaturitySweeper(
	db *gorm.DB,
	invRepo repositories.InvestmentRepository,
	balances repositories.BalanceRepository,
	userRepo repositories.UserRepository,
	notifier notify.Service,
) *MaturitySweeper {
	if db == nil || invRepo == nil || balances == nil || userRepo == nil {
		panic("db and repositories are required")
	}
	return &MaturitySweeper{
		db:       db,
		invRepo:  invRepo,
		balances: balances,
		userRepo: userRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

// Run performs one sweep. Each investment is completed in its own
// transaction; one bad row does not block the rest of the batch.
func (s *MaturitySweeper) Run(ctx context.Context) (int, error) {
	matured, err := s.invRepo.ListMaturedActive(s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to list matured investments: %w", err)
	}
	if len(matured) == 0 {
		return 0, nil
	}

	processed := 0
	var batch []notify.MaturedInvestment
	for _, inv := range matured {
		if err := s.complete(ctx, inv); err != nil {
			log.Printf("maturity sweep: investment %d failed: %v", inv.ID, err)
			continue
		}
		processed++

		entry := notify.MaturedInvestment{
			InvestmentID: inv.ID,
			UserID:       inv.UserID,
			PlanName:     inv.PlanName,
			Amount:       inv.AmountInvested,
			ReturnAmount: inv.ExpectedReturnAmount,
			MaturityDate: inv.MaturityDate,
		}
		if user, uerr := s.userRepo.GetByID(inv.UserID); uerr == nil {
			entry.UserEmail = user.Email
		}
		batch = append(batch, entry)
	}

	// Sweep results are committed; a failed email never rolls them back.
	if s.notifier != nil && len(batch) > 0 {
		if err := s.notifier.MaturityProcessed(ctx, batch); err != nil {
			log.Printf("maturity sweep: notification failed: %v", err)
		}
	}

	return processed, nil
}

func (s *MaturitySweeper) complete(ctx context.Context, inv models.Investment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Investment
		if err := tx.First(&current, inv.ID).Error; err != nil {
			return err
		}
		if current.Status != models.InvestmentStatusActive {
			return errors.New("investment no longer active")
		}

		current.Status = models.InvestmentStatusCompleted
		current.CurrentValue = current.AmountInvested + current.ExpectedReturnAmount
		if err := tx.Save(&current).Error; err != nil {
			return err
		}

		var balance models.Balance
		if err := tx.Where("user_id = ?", current.UserID).First(&balance).Error; err != nil {
			return err
		}
		// Principal unlocks and the return lands as spendable funds.
		balance.TotalBalance += current.ExpectedReturnAmount
		balance.AvailableBalance += current.AmountInvested + current.ExpectedReturnAmount
		balance.ExpectedReturns -= current.ExpectedReturnAmount
		if balance.ExpectedReturns < 0 {
			balance.ExpectedReturns = 0
		}
		if err := tx.Save(&balance).Error; err != nil {
			return err
		}

		txn := models.Transaction{
			UserID:         current.UserID,
			Type:           models.TransactionTypeReturn,
			Amount:         current.ExpectedReturnAmount,
			Description:    fmt.Sprintf("Matured return from the %s plan", current.PlanName),
			Status:         models.TransactionStatusCompleted,
			Reference:      current.OrderID,
			InvestmentName: current.PlanName,
			Metadata: models.JSON{
				"investment_id": current.ID,
				"principal":     current.AmountInvested,
				"return_rate":   current.ExpectedReturnRate,
			},
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		s.balances.Invalidate(ctx, current.UserID)
		return nil
	})
}

// Schedule registers the sweep on c and returns the entry id.
func (s *MaturitySweeper) Schedule(c *cron.Cron) (cron.EntryID, error) {
	return c.AddFunc(maturitySchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		n, err := s.Run(ctx)
		if err != nil {
			log.Printf("maturity sweep failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("maturity sweep completed %d investments", n)
		}
	})
}
