package skf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(52, 15)

	assert.NoError(t, err)
	assert.Equal(t, 52.0, res.DiameterMm)
	assert.Equal(t, 15.0, res.WidthMm)
	assert.Equal(t, 3.90, Round2(res.QuantityGrams))
	assert.Equal(t, "G = 0.005 × D × B", res.Formula)
}

func TestCalculate_SmallBearing(t *testing.T) {
	res, err := Calculate(20, 10)

	assert.NoError(t, err)
	assert.Equal(t, 1.0, res.QuantityGrams)
}

func TestCalculate_RejectsNonPositive(t *testing.T) {
	cases := []struct {
		name string
		d, b float64
	}{
		{"zero diameter", 0, 15},
		{"negative diameter", -1, 15},
		{"zero width", 52, 0},
		{"negative width", 52, -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.d, tc.b)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCalculate_RejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Calculate(v, 15)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = Calculate(52, v)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.9, Round2(0.005*52*15))
	assert.Equal(t, 1.23, Round2(1.2349))
}
