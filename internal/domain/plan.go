package domain

import "time"

// LubricationPlan is the recurring schedule attached to one equipment record.
// Plans are created alongside the equipment and advanced each time an
// execution is recorded.
type LubricationPlan struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	EquipmentID    int64     `gorm:"column:equipo_id;not null;index" json:"equipo_id"`
	LubricantType  string    `gorm:"column:tipo_lubricante;size:100" json:"tipo_lubricante,omitempty"`
	QuantityGrams  *float64  `gorm:"column:cantidad_gramos" json:"cantidad_gramos,omitempty"`
	FrequencyDays  int       `gorm:"column:frecuencia_dias;not null;default:30" json:"frecuencia_dias"`
	LastLubricated time.Time `gorm:"column:ultima_fecha_lubricacion;not null" json:"ultima_fecha_lubricacion"`
	NextDue        time.Time `gorm:"column:proxima_fecha_lubricacion;not null" json:"proxima_fecha_lubricacion"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Equipment Equipment      `gorm:"foreignKey:EquipmentID" json:"-"`
	History   []HistoryEntry `gorm:"foreignKey:PlanID" json:"-"`
}

func (LubricationPlan) TableName() string { return "planes_lubricacion" }
