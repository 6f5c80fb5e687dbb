// Package skf implements the SKF rule of thumb for grease refill mass:
// G = 0.005 × D × B, with D and B in millimetres and G in grams.
package skf

import (
	"errors"
	"math"
)

var ErrInvalidArgument = errors.New("diameter and width must be positive finite numbers")

const factor = 0.005

// Result echoes the inputs next to the computed quantity so callers can
// render the calculation transparently. QuantityGrams keeps full precision;
// use Round2 for display and wire values.
type Result struct {
	DiameterMm    float64 `json:"diametro_mm"`
	WidthMm       float64 `json:"ancho_mm"`
	QuantityGrams float64 `json:"cantidad_gramos"`
	Formula       string  `json:"formula"`
}

func Calculate(diameterMm, widthMm float64) (Result, error) {
	if !valid(diameterMm) || !valid(widthMm) {
		return Result{}, ErrInvalidArgument
	}
	return Result{
		DiameterMm:    diameterMm,
		WidthMm:       widthMm,
		QuantityGrams: factor * diameterMm * widthMm,
		Formula:       "G = 0.005 × D × B",
	}, nil
}

func valid(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round2 rounds to two decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
