package lubrication

import "errors"

var (
	ErrPlanNotFound       = errors.New("plan de lubricación no encontrado")
	ErrTechnicianRequired = errors.New("el técnico es obligatorio")
	ErrInvalidQuantity    = errors.New("la cantidad aplicada debe ser mayor que cero")
)
