package equipment

import (
	"context"
	"time"

	"lubritrack/internal/domain"
)

const defaultFrequencyDays = 30

type Service struct {
	equipmentRepo EquipmentRepository
	planRepo      PlanRepository
	historyRepo   HistoryRepository

	now func() time.Time
}

func NewService(equipmentRepo EquipmentRepository, planRepo PlanRepository, historyRepo HistoryRepository) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		planRepo:      planRepo,
		historyRepo:   historyRepo,
		now:           time.Now,
	}
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.Equipment, error) {
	return s.equipmentRepo.ListActive(ctx, skip, limit)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

// Create stores the equipment and its lubrication plan. The plan starts with
// the next due date one full frequency out from now.
func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	criticality := domain.CriticalityLow
	if req.Criticality != "" {
		c, err := domain.ParseCriticality(req.Criticality)
		if err != nil {
			return nil, ErrInvalidCriticality
		}
		criticality = c
	}

	frequency := req.FrequencyDays
	if frequency == 0 {
		frequency = defaultFrequencyDays
	}

	equipo := &domain.Equipment{
		Name:          req.Name,
		Component:     req.Component,
		Criticality:   criticality,
		Location:      req.Location,
		BearingModel:  req.BearingModel,
		LubricantType: req.LubricantType,
		QuantityGrams: req.QuantityGrams,
		FrequencyDays: frequency,
		Status:        domain.StatusActive,
	}

	if err := s.equipmentRepo.Create(ctx, equipo); err != nil {
		return nil, err
	}

	now := s.now()
	plan := &domain.LubricationPlan{
		EquipmentID:    equipo.ID,
		LubricantType:  req.LubricantType,
		QuantityGrams:  req.QuantityGrams,
		FrequencyDays:  frequency,
		LastLubricated: now,
		NextDue:        now.AddDate(0, 0, frequency),
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	return equipo, nil
}

// Update applies the supplied fields and leaves the rest alone.
func (s *Service) Update(ctx context.Context, id int64, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	equipo, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		equipo.Name = *req.Name
	}
	if req.Component != nil {
		equipo.Component = *req.Component
	}
	if req.Criticality != nil {
		c, err := domain.ParseCriticality(*req.Criticality)
		if err != nil {
			return nil, ErrInvalidCriticality
		}
		equipo.Criticality = c
	}
	if req.Location != nil {
		equipo.Location = *req.Location
	}
	if req.BearingModel != nil {
		equipo.BearingModel = *req.BearingModel
	}
	if req.LubricantType != nil {
		equipo.LubricantType = *req.LubricantType
	}
	if req.QuantityGrams != nil {
		equipo.QuantityGrams = req.QuantityGrams
	}
	if req.FrequencyDays != nil && *req.FrequencyDays >= 1 {
		equipo.FrequencyDays = *req.FrequencyDays
	}
	if req.Status != nil {
		st, err := domain.ParseEquipmentStatus(*req.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		equipo.Status = st
	}

	if err := s.equipmentRepo.Update(ctx, equipo); err != nil {
		return nil, err
	}

	return equipo, nil
}

// Deactivate moves the equipment to INACTIVO. Deactivating an already
// inactive record is not an error.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.equipmentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.equipmentRepo.SetStatus(ctx, id, domain.StatusInactive)
}

// History returns the lubrication history across all plans of one equipment,
// newest first.
func (s *Service) History(ctx context.Context, id int64, limit int) ([]domain.HistoryEntry, error) {
	if _, err := s.equipmentRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	planIDs, err := s.planRepo.IDsByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.historyRepo.ListByPlans(ctx, planIDs, limit)
}
