package equipment

import "errors"

var (
	ErrInvalidCriticality = errors.New("criticidad inválida, debe ser A, B o C")
	ErrInvalidStatus      = errors.New("estado inválido, debe ser ACTIVO, INACTIVO o MANTENIMIENTO")
)
