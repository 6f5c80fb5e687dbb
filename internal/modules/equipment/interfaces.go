package equipment

import (
	"context"

	"lubritrack/internal/domain"
)

type EquipmentRepository interface {
	ListActive(ctx context.Context, skip, limit int) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Create(ctx context.Context, equipo *domain.Equipment) error
	Update(ctx context.Context, equipo *domain.Equipment) error
	SetStatus(ctx context.Context, id int64, status domain.EquipmentStatus) error
}

type PlanRepository interface {
	Create(ctx context.Context, plan *domain.LubricationPlan) error
	IDsByEquipment(ctx context.Context, equipmentID int64) ([]int64, error)
}

type HistoryRepository interface {
	ListByPlans(ctx context.Context, planIDs []int64, limit int) ([]domain.HistoryEntry, error)
}
