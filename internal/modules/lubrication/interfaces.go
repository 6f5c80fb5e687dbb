package lubrication

import (
	"context"
	"time"

	"lubritrack/internal/domain"
)

type PlanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.LubricationPlan, error)
	DueBefore(ctx context.Context, cutoff time.Time) ([]domain.LubricationPlan, error)
	Advance(ctx context.Context, plan *domain.LubricationPlan, executedAt time.Time) error
}

type HistoryRepository interface {
	Create(ctx context.Context, entry *domain.HistoryEntry) error
	List(ctx context.Context, planID *int64, limit int) ([]domain.HistoryEntry, error)
}
