package domain

import (
	"errors"
	"time"
)

type Criticality string

const (
	CriticalityHigh   Criticality = "A"
	CriticalityMedium Criticality = "B"
	CriticalityLow    Criticality = "C"
)

var criticalityRank = map[Criticality]int{
	CriticalityHigh:   0,
	CriticalityMedium: 1,
	CriticalityLow:    2,
}

// Rank orders criticalities for urgency sorting: A before B before C.
// Unknown values sort last.
func (c Criticality) Rank() int {
	if r, ok := criticalityRank[c]; ok {
		return r
	}
	return len(criticalityRank)
}

func ParseCriticality(s string) (Criticality, error) {
	c := Criticality(s)
	if _, ok := criticalityRank[c]; !ok {
		return "", errors.New("invalid criticality")
	}
	return c, nil
}

type EquipmentStatus string

const (
	StatusActive      EquipmentStatus = "ACTIVO"
	StatusInactive    EquipmentStatus = "INACTIVO"
	StatusMaintenance EquipmentStatus = "MANTENIMIENTO"
)

func ParseEquipmentStatus(s string) (EquipmentStatus, error) {
	switch st := EquipmentStatus(s); st {
	case StatusActive, StatusInactive, StatusMaintenance:
		return st, nil
	}
	return "", errors.New("invalid equipment status")
}

// Equipment is one physical asset under the lubrication program.
// The delete action on equipment is a state change to INACTIVO, never a row
// removal.
type Equipment struct {
	ID            int64           `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"column:nombre;size:150;uniqueIndex;not null" json:"nombre"`
	Component     string          `gorm:"column:componente;size:150" json:"componente,omitempty"`
	Criticality   Criticality     `gorm:"column:criticidad;size:1;not null;default:C" json:"criticidad"`
	Location      string          `gorm:"column:ubicacion;size:200" json:"ubicacion,omitempty"`
	BearingModel  string          `gorm:"column:modelo_rodamiento;size:100" json:"modelo_rodamiento,omitempty"`
	LubricantType string          `gorm:"column:tipo_lubricante;size:100" json:"tipo_lubricante,omitempty"`
	QuantityGrams *float64        `gorm:"column:cantidad_gramos" json:"cantidad_gramos,omitempty"`
	FrequencyDays int             `gorm:"column:frecuencia_dias;not null;default:30" json:"frecuencia_dias"`
	Status        EquipmentStatus `gorm:"column:estado;size:20;not null;default:ACTIVO" json:"estado"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relations
	Plans []LubricationPlan `gorm:"foreignKey:EquipmentID" json:"-"`
}

func (Equipment) TableName() string { return "equipos" }
