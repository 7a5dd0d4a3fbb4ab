package fire

import (
	"encoding/json"
	"math"

	"github.com/couchcryptid/relief-calc/internal/domain"
)

// Variant tags which row of the heat-input table a formula came from.
type Variant string

const (
	VariantNFPA30Band1      Variant = "nfpa30-band-1"
	VariantNFPA30Band2      Variant = "nfpa30-band-2"
	VariantNFPA30Band3      Variant = "nfpa30-band-3"
	VariantNFPA30Band4      Variant = "nfpa30-band-4"
	VariantAPI521Drainage   Variant = "api521-adequate-drainage"
	VariantAPI521NoDrainage Variant = "api521-no-drainage"
)

// Formula is Q = Coefficient × A^Exponent over (AreaMin, AreaMax].
type Formula struct {
	Standard    domain.FireStandard `json:"standard"`
	AreaMin     float64             `json:"area_min"`
	AreaMax     float64             `json:"area_max"` // +Inf when unbounded
	Coefficient float64             `json:"coefficient"`
	Exponent    float64             `json:"exponent"`
	Variant     Variant             `json:"variant"`
}

// Evaluate applies the formula to a wetted area in ft², returning Btu/hr.
func (f Formula) Evaluate(area float64) float64 {
	return f.Coefficient * math.Pow(area, f.Exponent)
}

// MarshalJSON writes an unbounded AreaMax as null.
func (f Formula) MarshalJSON() ([]byte, error) {
	type plain Formula
	out := struct {
		plain
		AreaMax *float64 `json:"area_max"`
	}{plain: plain(f)}
	if !math.IsInf(f.AreaMax, 1) {
		out.AreaMax = &f.AreaMax
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a null or missing area_max as unbounded.
func (f *Formula) UnmarshalJSON(b []byte) error {
	type plain Formula
	in := struct {
		*plain
		AreaMax *float64 `json:"area_max"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	f.AreaMax = math.Inf(1)
	if in.AreaMax != nil {
		f.AreaMax = *in.AreaMax
	}
	return nil
}

func (f Formula) contains(area float64) bool {
	return area > f.AreaMin && area <= f.AreaMax
}

var nfpa30Bands = []Formula{
	{Standard: domain.NFPA30, AreaMin: 0, AreaMax: 200, Coefficient: 20000, Exponent: 1, Variant: VariantNFPA30Band1},
	{Standard: domain.NFPA30, AreaMin: 200, AreaMax: 1000, Coefficient: 199300, Exponent: 0.566, Variant: VariantNFPA30Band2},
	{Standard: domain.NFPA30, AreaMin: 1000, AreaMax: 2800, Coefficient: 963400, Exponent: 0.338, Variant: VariantNFPA30Band3},
	{Standard: domain.NFPA30, AreaMin: 2800, AreaMax: math.Inf(1), Coefficient: 21000, Exponent: 0.82, Variant: VariantNFPA30Band4},
}

var (
	api521Drainage = Formula{
		Standard: domain.API521, AreaMin: 0, AreaMax: math.Inf(1),
		Coefficient: 21000, Exponent: 0.82, Variant: VariantAPI521Drainage,
	}
	api521NoDrainage = Formula{
		Standard: domain.API521, AreaMin: 0, AreaMax: math.Inf(1),
		Coefficient: 34500, Exponent: 0.82, Variant: VariantAPI521NoDrainage,
	}
)

// NFPA30Bands returns a copy of the NFPA 30 piecewise table.
func NFPA30Bands() []Formula {
	out := make([]Formula, len(nfpa30Bands))
	copy(out, nfpa30Bands)
	return out
}

// HeatInputFormula selects the formula for a standard and wetted area.
// API 521 uses the no-drainage variant only when adequateDrainage is
// explicitly false. ok is false when the area is not positive.
func HeatInputFormula(std domain.FireStandard, area float64, adequateDrainage *bool) (Formula, bool) {
	if !(area > 0) {
		return Formula{}, false
	}

	switch std {
	case domain.NFPA30:
		for _, f := range nfpa30Bands {
			if f.contains(area) {
				return f, true
			}
		}
	case domain.API521:
		if adequateDrainage != nil && !*adequateDrainage {
			return api521NoDrainage, true
		}
		return api521Drainage, true
	}
	return Formula{}, false
}

// HeatInputResult is the absorbed heat and the formula that produced it.
type HeatInputResult struct {
	Value       float64 `json:"value"` // Btu/hr
	FormulaUsed Formula `json:"formula_used"`
}

// HeatInput computes the fire heat input. F multiplies API 521 results and
// defaults to 1 when nil; NFPA 30 ignores it.
func HeatInput(std domain.FireStandard, area float64, adequateDrainage *bool, f *float64) (HeatInputResult, bool) {
	formula, ok := HeatInputFormula(std, area, adequateDrainage)
	if !ok {
		return HeatInputResult{}, false
	}

	q := formula.Evaluate(area)
	if std == domain.API521 {
		factor := BareVesselFactor
		if f != nil {
			factor = *f
		}
		q *= factor
	}
	return HeatInputResult{Value: q, FormulaUsed: formula}, true
}
