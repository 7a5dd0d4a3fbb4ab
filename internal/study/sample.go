package study

import (
	"github.com/couchcryptid/relief-calc/internal/controlvalve"
	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/fire"
	"github.com/couchcryptid/relief-calc/internal/geometry"
	"github.com/couchcryptid/relief-calc/internal/hydraulic"
	"github.com/couchcryptid/relief-calc/internal/scenario"
	"github.com/couchcryptid/relief-calc/internal/tuberupture"
)

// Sample returns a study with every case filled in, used by the CLI's
// sample command and as a fixture.
func Sample() Study {
	processTemp := 150.0
	return Study{
		ID:   "V-101",
		Name: "Toluene surge drum",
		Vessel: geometry.Vessel{
			DiameterIn:     120,
			StraightSideFt: 20,
			Head:           geometry.Elliptical,
			Orientation:    geometry.Vertical,
		},
		Fire: &FireCase{
			Selected: true,
			Inputs: fire.Inputs{
				Exposure: geometry.Exposure{Standard: domain.API521},
				Storage:  fire.AboveGrade,
				Insulation: &fire.Insulation{
					Material:            "Calcium Silicate",
					ThicknessIn:         2,
					ProcessTemperatureF: &processTemp,
				},
				Fluid: "Toluene",
			},
		},
		ControlValve: &ControlValveCase{
			Selected: true,
			Inputs: controlvalve.Inputs{
				Cv:                 10,
				InletPressurePsig:  100,
				OutletPressurePsig: 15,
				TemperatureF:       80,
				Z:                  1,
				Xt:                 0.7,
			},
			GasRef: GasRef{Gas: "Nitrogen"},
		},
		BlockedOutlet: &BlockedOutletCase{
			Selected:            true,
			BlockedOutletInputs: scenario.BlockedOutletInputs{SourceInflow: 12_000, OutletCredit: 2_000},
		},
		CoolingReflux: &CoolingRefluxCase{
			Selected:            false,
			CoolingRefluxInputs: scenario.CoolingRefluxInputs{CondenserDuty: 3_000_000, Fluid: "Toluene"},
		},
		HydraulicExpansion: &HydraulicCase{
			Selected: true,
			Inputs: hydraulic.Inputs{
				CubicExpansionCoefficient: 0.00058,
				HeatInputRate:             500_000,
				RelativeDensity:           0.87,
				SpecificHeat:              0.42,
			},
		},
		TubeRupture: &TubeRuptureCase{
			Selected: true,
			Inputs: tuberupture.Inputs{
				TubeInnerDiameterIn:      0.62,
				HighPressurePsig:         450,
				LowPressureOperatingPsig: 50,
				LowPressureDesignPsig:    150,
				State:                    tuberupture.Liquid,
			},
			Fluid: "Water",
		},
		LiquidOverfill: &OverfillCase{
			Selected:       true,
			OverfillInputs: scenario.OverfillInputs{MaxInflowGPM: 120, OutletGPM: 40, Fluid: "Toluene"},
		},
	}
}
