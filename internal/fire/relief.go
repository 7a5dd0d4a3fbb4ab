package fire

import (
	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/geometry"
	"github.com/couchcryptid/relief-calc/internal/properties"
)

// Insulation describes the optional insulation system by material name.
type Insulation struct {
	Material            string   `json:"material" yaml:"material"`
	ThicknessIn         float64  `json:"thickness_in" yaml:"thickness_in"`
	ProcessTemperatureF *float64 `json:"process_temperature_f,omitempty" yaml:"process_temperature_f,omitempty"`
}

// Inputs is the complete fire case.
type Inputs struct {
	Vessel           geometry.Vessel   `json:"vessel" yaml:"vessel"`
	Exposure         geometry.Exposure `json:"exposure" yaml:"exposure"`
	AdequateDrainage *bool             `json:"adequate_drainage,omitempty" yaml:"adequate_drainage,omitempty"`
	Storage          StorageType       `json:"storage" yaml:"storage"`
	Insulation       *Insulation       `json:"insulation,omitempty" yaml:"insulation,omitempty"`

	// Fluid names a row in the fluid table. HeatOfVaporization, when set,
	// overrides the table value (Btu/lb).
	Fluid              string   `json:"fluid" yaml:"fluid"`
	HeatOfVaporization *float64 `json:"heat_of_vaporization,omitempty" yaml:"heat_of_vaporization,omitempty"`
}

// Result reports every intermediate of the fire case.
type Result struct {
	WettedArea          float64  `json:"wetted_area"` // ft²
	EnvironmentalFactor float64  `json:"environmental_factor"`
	HeatInput           float64  `json:"heat_input"` // Btu/hr
	Formula             *Formula `json:"formula,omitempty"`
	HeatOfVaporization  float64  `json:"heat_of_vaporization"` // Btu/lb
	ReliefMassFlow      float64  `json:"relief_mass_flow"`     // lb/hr
	domain.Messages
}

// Calculate runs the fire case: wetted area, environmental factor, heat
// input, then relieving mass flow.
func Calculate(in Inputs, store *properties.Store) Result {
	var r Result

	r.WettedArea = geometry.FireExposedArea(in.Vessel, in.Exposure)
	v := in.Vessel
	if v.Orientation != geometry.Sphere && v.DiameterIn > 0 &&
		geometry.UsesHeadTable(v.DiameterIn, v.Head) && !geometry.IsStandardDiameter(v.DiameterIn) {
		r.Warnf("diameter %.3f in is not a standard head size; head area taken as zero", v.DiameterIn)
	}

	f, warnings := EnvironmentalFactor(resolveEnvironment(in, store, &r.Messages))
	r.EnvironmentalFactor = f
	r.Warnings = append(r.Warnings, warnings...)

	q, ok := HeatInput(in.Exposure.Standard, r.WettedArea, in.AdequateDrainage, &f)
	if !ok {
		r.Errorf("insufficient input: wetted area is zero")
		return r
	}
	r.HeatInput = q.Value
	r.Formula = &q.FormulaUsed

	hvap, ok := resolveHeatOfVaporization(in, store, &r.Messages)
	if !ok {
		return r
	}
	r.HeatOfVaporization = hvap
	r.ReliefMassFlow = q.Value / hvap
	return r
}

func resolveEnvironment(in Inputs, store *properties.Store, msgs *domain.Messages) EnvironmentalParams {
	p := EnvironmentalParams{Storage: in.Storage}
	if in.Insulation == nil || in.Insulation.Material == "" {
		return p
	}
	m, ok := store.InsulationMaterial(in.Insulation.Material)
	if !ok {
		msgs.Warnf("unknown insulation material %q; no insulation credit taken", in.Insulation.Material)
		return p
	}
	p.Insulation = &m
	p.InsulationThicknessIn = in.Insulation.ThicknessIn
	p.ProcessTemperatureF = in.Insulation.ProcessTemperatureF
	return p
}

func resolveHeatOfVaporization(in Inputs, store *properties.Store, msgs *domain.Messages) (float64, bool) {
	hvap := 0.0
	switch {
	case in.HeatOfVaporization != nil:
		hvap = *in.HeatOfVaporization
	case in.Fluid != "":
		fluid, ok := store.Fluid(in.Fluid)
		if !ok {
			msgs.Errorf("no property data for fluid %q", in.Fluid)
			return 0, false
		}
		hvap = fluid.HeatOfVaporization
	default:
		msgs.Errorf("insufficient input: fluid or heat of vaporization required")
		return 0, false
	}

	if hvap <= 0 {
		msgs.Errorf("heat of vaporization must be positive (got %g Btu/lb); fluid is non-volatile", hvap)
		return 0, false
	}
	return hvap, true
}

// CaseResult converts the fire result for the design basis.
func (r Result) CaseResult(selected bool) domain.CaseFlowResult {
	return domain.NewCaseFlowResult(domain.CaseExternalFire, selected,
		r.ReliefMassFlow, domain.UnitLbPerHr, r.ReliefMassFlow, r.Messages)
}
