package lubrication

import (
	"time"

	"lubritrack/internal/domain"
	"lubritrack/internal/schedule"
)

type RecordExecutionRequest struct {
	QuantityApplied float64    `json:"cantidad_aplicada" validate:"required,gt=0"`
	Technician      string     `json:"tecnico" validate:"required,min=1,max=100"`
	Notes           string     `json:"observaciones"`
	ExecutionDate   *time.Time `json:"fecha_ejecucion"`
}

// PlanSummary is one row of the upcoming-plans view: the plan joined with
// its equipment plus the derived urgency fields.
type PlanSummary struct {
	ID            int64              `json:"id"`
	EquipmentID   int64              `json:"equipo_id"`
	EquipmentName string             `json:"equipo_nombre"`
	Criticality   domain.Criticality `json:"criticidad"`
	LubricantType string             `json:"tipo_lubricante,omitempty"`
	QuantityGrams *float64           `json:"cantidad_gramos,omitempty"`
	NextDue       time.Time          `json:"proxima_fecha"`
	DaysRemaining int                `json:"dias_restantes"`
	Status        schedule.Status    `json:"estado"`
}

func (p PlanSummary) DueIn() int { return p.DaysRemaining }

func (p PlanSummary) Urgency() domain.Criticality { return p.Criticality }
