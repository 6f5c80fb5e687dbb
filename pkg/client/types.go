package client

import "time"

// Wire types mirror the API's JSON shapes. Field names stay in the API's
// own vocabulary (Spanish) on the wire.

type Equipment struct {
	ID            int64     `json:"id"`
	Name          string    `json:"nombre"`
	Component     string    `json:"componente,omitempty"`
	Criticality   string    `json:"criticidad"`
	Location      string    `json:"ubicacion,omitempty"`
	BearingModel  string    `json:"modelo_rodamiento,omitempty"`
	LubricantType string    `json:"tipo_lubricante,omitempty"`
	QuantityGrams *float64  `json:"cantidad_gramos,omitempty"`
	FrequencyDays int       `json:"frecuencia_dias"`
	Status        string    `json:"estado"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateEquipment struct {
	Name          string   `json:"nombre"`
	Component     string   `json:"componente,omitempty"`
	Criticality   string   `json:"criticidad,omitempty"`
	Location      string   `json:"ubicacion,omitempty"`
	BearingModel  string   `json:"modelo_rodamiento,omitempty"`
	LubricantType string   `json:"tipo_lubricante,omitempty"`
	QuantityGrams *float64 `json:"cantidad_gramos,omitempty"`
	FrequencyDays int      `json:"frecuencia_dias,omitempty"`
}

// UpdateEquipment carries only the fields to change; nil means "leave as is".
type UpdateEquipment struct {
	Name          *string  `json:"nombre,omitempty"`
	Component     *string  `json:"componente,omitempty"`
	Criticality   *string  `json:"criticidad,omitempty"`
	Location      *string  `json:"ubicacion,omitempty"`
	BearingModel  *string  `json:"modelo_rodamiento,omitempty"`
	LubricantType *string  `json:"tipo_lubricante,omitempty"`
	QuantityGrams *float64 `json:"cantidad_gramos,omitempty"`
	FrequencyDays *int     `json:"frecuencia_dias,omitempty"`
	Status        *string  `json:"estado,omitempty"`
}

// Plan is one upcoming-plans row. DaysRemaining is the server's value when
// the server sent one; otherwise the client derives it locally.
type Plan struct {
	ID            int64     `json:"id"`
	EquipmentID   int64     `json:"equipo_id"`
	EquipmentName string    `json:"equipo_nombre"`
	Criticality   string    `json:"criticidad"`
	LubricantType string    `json:"tipo_lubricante,omitempty"`
	QuantityGrams *float64  `json:"cantidad_gramos,omitempty"`
	NextDue       time.Time `json:"proxima_fecha"`
	DaysRemaining *int      `json:"dias_restantes"`
	Status        string    `json:"estado"`
}

type RecordExecution struct {
	QuantityApplied float64    `json:"cantidad_aplicada"`
	Technician      string     `json:"tecnico"`
	Notes           string     `json:"observaciones,omitempty"`
	ExecutionDate   *time.Time `json:"fecha_ejecucion,omitempty"`
}

type HistoryEntry struct {
	ID              int64     `json:"id"`
	PlanID          int64     `json:"plan_id"`
	ExecutionDate   time.Time `json:"fecha_ejecucion"`
	QuantityApplied float64   `json:"cantidad_aplicada"`
	Technician      string    `json:"tecnico"`
	Notes           string    `json:"observaciones,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type SKFResult struct {
	DiameterMm    float64 `json:"diametro_mm"`
	WidthMm       float64 `json:"ancho_mm"`
	QuantityGrams float64 `json:"cantidad_gramos"`
	Formula       string  `json:"formula"`
}

type Health struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}
