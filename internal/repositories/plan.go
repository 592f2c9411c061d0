package repositories

import (
	"vestra/internal/models"

	"gorm.io/gorm"
)

// PlanRepository defines data access for investment plans.
type PlanRepository interface {
	ListActive() ([]models.Plan, error)
	GetByID(id uint) (*models.Plan, error)
	GetByName(name string) (*models.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) ListActive() ([]models.Plan, error) {
	var plans []models.Plan
	if err := r.db.Where("status = ?", "active").Order("min_amount ASC").Find(&plans).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return plans, nil
}

func (r *planRepository) GetByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	if err := r.db.First(&plan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) GetByName(name string) (*models.Plan, error) {
	var plan models.Plan
	if err := r.db.Where("name = ?", name).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}
