package domain

import "time"

// HistoryEntry records one completed lubrication. Entries are append-only:
// nothing in the API mutates or deletes them.
type HistoryEntry struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	PlanID          int64     `gorm:"column:plan_id;not null;index" json:"plan_id"`
	ExecutionDate   time.Time `gorm:"column:fecha_ejecucion;not null;index" json:"fecha_ejecucion"`
	QuantityApplied float64   `gorm:"column:cantidad_aplicada;not null" json:"cantidad_aplicada"`
	Technician      string    `gorm:"column:tecnico;size:100;not null" json:"tecnico"`
	Notes           string    `gorm:"column:observaciones;type:text" json:"observaciones,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	// Relations
	Plan LubricationPlan `gorm:"foreignKey:PlanID" json:"-"`
}

func (HistoryEntry) TableName() string { return "historial_lubricacion" }
