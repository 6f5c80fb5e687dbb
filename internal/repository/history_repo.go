package repository

import (
	"context"

	"gorm.io/gorm"

	"lubritrack/internal/domain"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Create(ctx context.Context, entry *domain.HistoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns entries newest first, optionally filtered to one plan.
func (r *HistoryRepository) List(ctx context.Context, planID *int64, limit int) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry

	q := r.db.WithContext(ctx).Order("fecha_ejecucion DESC").Limit(limit)
	if planID != nil {
		q = q.Where("plan_id = ?", *planID)
	}

	err := q.Find(&entries).Error
	return entries, err
}

// ListByPlans returns entries for any of the given plans, newest first.
func (r *HistoryRepository) ListByPlans(ctx context.Context, planIDs []int64, limit int) ([]domain.HistoryEntry, error) {
	if len(planIDs) == 0 {
		return []domain.HistoryEntry{}, nil
	}

	var entries []domain.HistoryEntry

	err := r.db.WithContext(ctx).
		Where("plan_id IN ?", planIDs).
		Order("fecha_ejecucion DESC").
		Limit(limit).
		Find(&entries).Error

	return entries, err
}
