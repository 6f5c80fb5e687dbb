package lubrication

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"lubritrack/internal/domain"
	"lubritrack/internal/schedule"
	"lubritrack/internal/skf"
)

type Service struct {
	planRepo    PlanRepository
	historyRepo HistoryRepository

	now func() time.Time
}

func NewService(planRepo PlanRepository, historyRepo HistoryRepository) *Service {
	return &Service{
		planRepo:    planRepo,
		historyRepo: historyRepo,
		now:         time.Now,
	}
}

// UpcomingPlans returns plans due within windowDays, most urgent first.
// Overdue plans are always included. Urgency is derived fresh on every call
// because "now" keeps advancing.
func (s *Service) UpcomingPlans(ctx context.Context, windowDays int) ([]PlanSummary, error) {
	now := s.now()
	cutoff := now.AddDate(0, 0, windowDays)

	plans, err := s.planRepo.DueBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	summaries := make([]PlanSummary, 0, len(plans))
	for _, plan := range plans {
		days := schedule.DaysRemaining(now, plan.NextDue)
		summaries = append(summaries, PlanSummary{
			ID:            plan.ID,
			EquipmentID:   plan.EquipmentID,
			EquipmentName: plan.Equipment.Name,
			Criticality:   plan.Equipment.Criticality,
			LubricantType: plan.LubricantType,
			QuantityGrams: plan.QuantityGrams,
			NextDue:       plan.NextDue,
			DaysRemaining: days,
			Status:        schedule.Classify(days),
		})
	}

	return schedule.Filter(summaries, windowDays), nil
}

// RecordExecution appends a history entry and advances the plan: the
// execution date becomes the new baseline for the next due date.
func (s *Service) RecordExecution(ctx context.Context, planID int64, req RecordExecutionRequest) (*domain.HistoryEntry, error) {
	if strings.TrimSpace(req.Technician) == "" {
		return nil, ErrTechnicianRequired
	}
	if req.QuantityApplied <= 0 {
		return nil, ErrInvalidQuantity
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	executedAt := s.now()
	if req.ExecutionDate != nil {
		executedAt = *req.ExecutionDate
	}

	entry := &domain.HistoryEntry{
		PlanID:          plan.ID,
		ExecutionDate:   executedAt,
		QuantityApplied: req.QuantityApplied,
		Technician:      req.Technician,
		Notes:           req.Notes,
	}
	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.planRepo.Advance(ctx, plan, executedAt); err != nil {
		return nil, err
	}

	return entry, nil
}

// History lists executions, newest first, optionally for one plan.
func (s *Service) History(ctx context.Context, planID *int64, limit int) ([]domain.HistoryEntry, error) {
	return s.historyRepo.List(ctx, planID, limit)
}

// CalculateSKF mirrors the server-side grease formula. The result quantity
// keeps full precision; handlers round for the wire.
func (s *Service) CalculateSKF(diameterMm, widthMm float64) (skf.Result, error) {
	return skf.Calculate(diameterMm, widthMm)
}
