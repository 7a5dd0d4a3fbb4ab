package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadArea(t *testing.T) {
	tests := []struct {
		name     string
		diameter float64
		head     HeadType
		expected float64
	}{
		{"small hemispherical closed form", 4.5, Hemispherical, 4.5 * 4.5 / 144 * 1.57},
		{"hemispherical at threshold uses closed form", 6.625, Hemispherical, 6.625 * 6.625 / 144 * 1.57},
		{"hemispherical above threshold uses table", 120, Hemispherical, 157.080},
		{"elliptical small diameter uses table", 4.5, Elliptical, 0.152},
		{"elliptical large diameter", 120, Elliptical, 108.400},
		{"flat small", 12, Flat, math.Pi * 36 / 144},
		{"flat large unlisted diameter", 250, Flat, math.Pi * 125 * 125 / 144},
		{"elliptical unlisted diameter", 121, Elliptical, 0},
		{"hemispherical unlisted diameter", 7, Hemispherical, 0},
		{"zero diameter", 0, Elliptical, 0},
		{"negative diameter", -12, Flat, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, HeadArea(tt.diameter, tt.head), 1e-9)
		})
	}
}

func TestIsStandardDiameter(t *testing.T) {
	assert.True(t, IsStandardDiameter(48))
	assert.True(t, IsStandardDiameter(8.625))
	assert.False(t, IsStandardDiameter(49))
}

func TestHeadType_Text(t *testing.T) {
	for _, h := range []HeadType{Elliptical, Hemispherical, Flat} {
		b, err := h.MarshalText()
		assert.NoError(t, err)

		var got HeadType
		assert.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, h, got)
	}

	var h HeadType
	assert.Error(t, h.UnmarshalText([]byte("torispherical")))
}
