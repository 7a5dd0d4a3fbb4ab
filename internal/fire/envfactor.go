package fire

import (
	"fmt"
	"math"

	"github.com/couchcryptid/relief-calc/internal/properties"
)

// StorageType is how the vessel is installed relative to grade.
type StorageType int

const (
	AboveGrade StorageType = iota
	EarthCovered
	BelowGrade
)

var storageTypeNames = map[StorageType]string{
	AboveGrade:   "above-grade",
	EarthCovered: "earth-covered",
	BelowGrade:   "below-grade",
}

func (s StorageType) String() string {
	if n, ok := storageTypeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("StorageType(%d)", int(s))
}

func (s StorageType) MarshalText() ([]byte, error) {
	if n, ok := storageTypeNames[s]; ok {
		return []byte(n), nil
	}
	return nil, fmt.Errorf("unknown storage type %d", int(s))
}

func (s *StorageType) UnmarshalText(b []byte) error {
	for k, v := range storageTypeNames {
		if v == string(b) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown storage type %q", string(b))
}

const (
	// FireTemperatureF is the flame temperature the insulation credit is referenced to.
	FireTemperatureF = 1660.0

	// MinFireRatedServiceTempF is the lowest service rating accepted for credit.
	MinFireRatedServiceTempF = 1200.0

	// EnvironmentalFactorConstant scales k/t in Btu/(hr·ft·°F) per inch.
	EnvironmentalFactorConstant = 21000.0

	EarthCoveredFactor = 0.03
	BareVesselFactor   = 1.0
)

// EnvironmentalParams drive the environmental factor F.
type EnvironmentalParams struct {
	Storage               StorageType
	Insulation            *properties.InsulationMaterial
	InsulationThicknessIn float64
	ProcessTemperatureF   *float64
}

// EnvironmentalFactor returns F in [0, 1] and any warnings raised when an
// insulation credit had to be refused.
func EnvironmentalFactor(p EnvironmentalParams) (float64, []string) {
	switch p.Storage {
	case BelowGrade:
		return 0, nil
	case EarthCovered:
		return EarthCoveredFactor, nil
	}

	if p.Insulation == nil || p.InsulationThicknessIn <= 0 || p.ProcessTemperatureF == nil {
		return BareVesselFactor, nil
	}

	m := p.Insulation
	if m.MaxServiceTemperatureF < MinFireRatedServiceTempF {
		return BareVesselFactor, []string{fmt.Sprintf(
			"insulation %q is rated to %.0f°F, below the %.0f°F fire rating; no insulation credit taken",
			m.Name, m.MaxServiceTemperatureF, MinFireRatedServiceTempF)}
	}

	dt := FireTemperatureF - *p.ProcessTemperatureF
	if dt <= 0 {
		return BareVesselFactor, []string{fmt.Sprintf(
			"process temperature %.0f°F is at or above the %.0f°F fire temperature; no insulation credit taken",
			*p.ProcessTemperatureF, FireTemperatureF)}
	}

	f := (m.ThermalConductivity / p.InsulationThicknessIn) * (1 / dt) * EnvironmentalFactorConstant
	return math.Max(0, math.Min(1, f)), nil
}
