package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFluidProperty(t *testing.T) {
	tests := []struct {
		name string
		in   string
		hvap float64
		mw   float64
	}{
		{"exact name", "Water", 970.3, 18.015},
		{"lowercase", "toluene", 156.0, 92.14},
		{"padded mixed case", "  n-HEXANE ", 143.1, 86.18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := GetFluidProperty(tt.in)
			require.True(t, ok)
			assert.InDelta(t, tt.hvap, f.HeatOfVaporization, 1e-9)
			assert.InDelta(t, tt.mw, f.MolecularWeight, 1e-9)
		})
	}
}

func TestGetFluidProperty_Miss(t *testing.T) {
	_, ok := GetFluidProperty("unobtainium")
	assert.False(t, ok)
}

func TestGetFluidProperty_NonVolatile(t *testing.T) {
	f, ok := GetFluidProperty("Heat Transfer Oil")
	require.True(t, ok)
	assert.Zero(t, f.HeatOfVaporization)
}

func TestGetGasProperty(t *testing.T) {
	g, ok := GetGasProperty("nitrogen")
	require.True(t, ok)
	assert.InDelta(t, 0.967, g.SpecificGravity, 1e-9)
	assert.InDelta(t, 1.0, g.DefaultCompressibilityFactor, 1e-9)
	assert.InDelta(t, 1.40, g.SpecificHeatRatio, 1e-9)
	assert.False(t, g.Custom)

	_, ok = GetGasProperty("phlogiston")
	assert.False(t, ok)
}

func TestCustomGas(t *testing.T) {
	g := CustomGas(28.96, 0, 1.4)
	assert.True(t, g.Custom)
	assert.InDelta(t, 1.0, g.SpecificGravity, 1e-9)
	assert.InDelta(t, 1.0, g.DefaultCompressibilityFactor, 1e-9)

	g = CustomGas(44.0, 0.85, 1.3)
	assert.InDelta(t, 0.85, g.DefaultCompressibilityFactor, 1e-9)
	assert.InDelta(t, 44.0/28.96, g.SpecificGravity, 1e-9)
}

func TestInsulationMaterial(t *testing.T) {
	m, ok := Default().InsulationMaterial("calcium silicate")
	require.True(t, ok)
	assert.InDelta(t, 1200.0, m.MaxServiceTemperatureF, 1e-9)

	_, ok = Default().InsulationMaterial("newspaper")
	assert.False(t, ok)
}

func TestListsAreSorted(t *testing.T) {
	fluids := Default().Fluids()
	require.NotEmpty(t, fluids)
	for i := 1; i < len(fluids); i++ {
		assert.Less(t, fluids[i-1].Name, fluids[i].Name)
	}

	gases := Default().Gases()
	require.NotEmpty(t, gases)
	for i := 1; i < len(gases); i++ {
		assert.Less(t, gases[i-1].Name, gases[i].Name)
	}
}

func TestNewStore_Malformed(t *testing.T) {
	_, err := NewStore([]byte("name,heat_of_vaporization\nWater,not-a-number\n"), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fluids table")
}
