package repository

import (
	"context"

	"gorm.io/gorm"

	"lubritrack/internal/domain"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// ListActive returns a page of equipment in ACTIVO state, oldest first.
func (r *EquipmentRepository) ListActive(ctx context.Context, skip, limit int) ([]domain.Equipment, error) {
	var equipos []domain.Equipment

	err := r.db.WithContext(ctx).
		Where("estado = ?", domain.StatusActive).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&equipos).Error

	return equipos, err
}

// GetByID fetches one equipment regardless of state.
func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var equipo domain.Equipment

	err := r.db.WithContext(ctx).First(&equipo, id).Error
	if err != nil {
		return nil, err
	}

	return &equipo, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, equipo *domain.Equipment) error {
	return r.db.WithContext(ctx).Create(equipo).Error
}

func (r *EquipmentRepository) Update(ctx context.Context, equipo *domain.Equipment) error {
	return r.db.WithContext(ctx).Save(equipo).Error
}

// SetStatus flips the lifecycle state without touching other columns.
func (r *EquipmentRepository) SetStatus(ctx context.Context, id int64, status domain.EquipmentStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Equipment{}).
		Where("id = ?", id).
		Update("estado", status).Error
}
