package equipment

type CreateEquipmentRequest struct {
	Name          string   `json:"nombre" validate:"required,min=1,max=150"`
	Component     string   `json:"componente" validate:"max=150"`
	Criticality   string   `json:"criticidad" validate:"omitempty,oneof=A B C"`
	Location      string   `json:"ubicacion" validate:"max=200"`
	BearingModel  string   `json:"modelo_rodamiento" validate:"max=100"`
	LubricantType string   `json:"tipo_lubricante" validate:"max=100"`
	QuantityGrams *float64 `json:"cantidad_gramos" validate:"omitempty,gte=0"`
	FrequencyDays int      `json:"frecuencia_dias" validate:"omitempty,gte=1"`
}

// UpdateEquipmentRequest carries only the fields the caller wants changed.
// Nil pointers leave the stored value untouched.
type UpdateEquipmentRequest struct {
	Name          *string  `json:"nombre,omitempty" validate:"omitempty,min=1,max=150"`
	Component     *string  `json:"componente,omitempty" validate:"omitempty,max=150"`
	Criticality   *string  `json:"criticidad,omitempty"`
	Location      *string  `json:"ubicacion,omitempty" validate:"omitempty,max=200"`
	BearingModel  *string  `json:"modelo_rodamiento,omitempty" validate:"omitempty,max=100"`
	LubricantType *string  `json:"tipo_lubricante,omitempty" validate:"omitempty,max=100"`
	QuantityGrams *float64 `json:"cantidad_gramos,omitempty" validate:"omitempty,gte=0"`
	FrequencyDays *int     `json:"frecuencia_dias,omitempty" validate:"omitempty,gte=1"`
	Status        *string  `json:"estado,omitempty"`
}
