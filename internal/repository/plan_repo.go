package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"lubritrack/internal/domain"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *domain.LubricationPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*domain.LubricationPlan, error) {
	var plan domain.LubricationPlan

	err := r.db.WithContext(ctx).First(&plan, id).Error
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// DueBefore returns plans of ACTIVO equipment whose next due date falls on or
// before the cutoff, with the owning equipment preloaded.
func (r *PlanRepository) DueBefore(ctx context.Context, cutoff time.Time) ([]domain.LubricationPlan, error) {
	var plans []domain.LubricationPlan

	err := r.db.WithContext(ctx).
		Joins("JOIN equipos ON equipos.id = planes_lubricacion.equipo_id").
		Where("planes_lubricacion.proxima_fecha_lubricacion <= ?", cutoff).
		Where("equipos.estado = ?", domain.StatusActive).
		Preload("Equipment").
		Find(&plans).Error

	return plans, err
}

// IDsByEquipment returns the plan ids owned by one equipment.
func (r *PlanRepository) IDsByEquipment(ctx context.Context, equipmentID int64) ([]int64, error) {
	var ids []int64

	err := r.db.WithContext(ctx).
		Model(&domain.LubricationPlan{}).
		Where("equipo_id = ?", equipmentID).
		Pluck("id", &ids).Error

	return ids, err
}

// Advance records a completed execution on the plan: the execution date
// becomes the new baseline and the next due date moves one frequency out.
func (r *PlanRepository) Advance(ctx context.Context, plan *domain.LubricationPlan, executedAt time.Time) error {
	plan.LastLubricated = executedAt
	plan.NextDue = executedAt.AddDate(0, 0, plan.FrequencyDays)

	return r.db.WithContext(ctx).
		Model(plan).
		Updates(map[string]interface{}{
			"ultima_fecha_lubricacion":  plan.LastLubricated,
			"proxima_fecha_lubricacion": plan.NextDue,
		}).Error
}
