package fire

import (
	"testing"

	"github.com/couchcryptid/relief-calc/internal/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func material(t *testing.T, name string) *properties.InsulationMaterial {
	t.Helper()
	m, ok := properties.Default().InsulationMaterial(name)
	require.True(t, ok, name)
	return &m
}

func TestEnvironmentalFactor(t *testing.T) {
	calSil := material(t, "Calcium Silicate")

	tests := []struct {
		name         string
		params       EnvironmentalParams
		expected     float64
		wantWarnings bool
	}{
		{
			name:     "below grade is terminal",
			params:   EnvironmentalParams{Storage: BelowGrade, Insulation: calSil, InsulationThicknessIn: 2, ProcessTemperatureF: ptr(100.0)},
			expected: 0,
		},
		{
			name:     "earth covered is terminal",
			params:   EnvironmentalParams{Storage: EarthCovered},
			expected: 0.03,
		},
		{
			name:     "bare vessel",
			params:   EnvironmentalParams{Storage: AboveGrade},
			expected: 1.0,
		},
		{
			name:     "insulation without process temperature is bare",
			params:   EnvironmentalParams{Insulation: calSil, InsulationThicknessIn: 2},
			expected: 1.0,
		},
		{
			name:     "insulation without thickness is bare",
			params:   EnvironmentalParams{Insulation: calSil, ProcessTemperatureF: ptr(100.0)},
			expected: 1.0,
		},
		{
			name:     "insulation credit",
			params:   EnvironmentalParams{Insulation: calSil, InsulationThicknessIn: 2, ProcessTemperatureF: ptr(100.0)},
			expected: (0.035 / 2) * (1 / 1560.0) * 21000,
		},
		{
			name:     "credit clamped to one",
			params:   EnvironmentalParams{Insulation: calSil, InsulationThicknessIn: 0.1, ProcessTemperatureF: ptr(1000.0)},
			expected: 1.0,
		},
		{
			name:         "material not fire rated",
			params:       EnvironmentalParams{Insulation: material(t, "Cellular Glass"), InsulationThicknessIn: 2, ProcessTemperatureF: ptr(100.0)},
			expected:     1.0,
			wantWarnings: true,
		},
		{
			name:         "process at fire temperature",
			params:       EnvironmentalParams{Insulation: calSil, InsulationThicknessIn: 2, ProcessTemperatureF: ptr(1660.0)},
			expected:     1.0,
			wantWarnings: true,
		},
		{
			name:         "process above fire temperature",
			params:       EnvironmentalParams{Insulation: calSil, InsulationThicknessIn: 2, ProcessTemperatureF: ptr(1800.0)},
			expected:     1.0,
			wantWarnings: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, warnings := EnvironmentalFactor(tt.params)
			assert.InDelta(t, tt.expected, f, 1e-12)
			assert.GreaterOrEqual(t, f, 0.0)
			assert.LessOrEqual(t, f, 1.0)
			if tt.wantWarnings {
				assert.NotEmpty(t, warnings)
			} else {
				assert.Empty(t, warnings)
			}
		})
	}
}

func TestStorageType_Text(t *testing.T) {
	var s StorageType
	require.NoError(t, s.UnmarshalText([]byte("earth-covered")))
	assert.Equal(t, EarthCovered, s)
	assert.Error(t, s.UnmarshalText([]byte("floating")))

	b, err := BelowGrade.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "below-grade", string(b))
}
