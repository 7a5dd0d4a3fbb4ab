package domain

const (
	// SCFPerLbMol is the ideal-gas volume of one lb-mol at 60 °F and 14.7 psia.
	SCFPerLbMol = 379.0

	// KgPerLb converts pounds to kilograms.
	KgPerLb = 0.453592

	SecondsPerHour = 3600.0

	// AtmosphericPsi is the gauge-to-absolute offset.
	AtmosphericPsi = 14.7

	RankineOffset = 459.67

	// WaterLbPerGal is the density of water used to turn gpm into lb/min.
	WaterLbPerGal = 8.34

	// AccumulationFactor scales a relieving flow to the ASME VIII design flow (110% accumulation).
	AccumulationFactor = 0.9

	// GravityFtPerS2 is standard gravity, also gc in lbm·ft/(lbf·s²).
	GravityFtPerS2 = 32.174
)

// MassFlowToSCFH converts lb/hr of a gas with molecular weight mw to SCFH.
func MassFlowToSCFH(massFlow, mw float64) float64 {
	return massFlow / mw * SCFPerLbMol
}

// SCFHToMassFlow converts SCFH of a gas with molecular weight mw to lb/hr.
func SCFHToMassFlow(scfh, mw float64) float64 {
	return scfh / SCFPerLbMol * mw
}

func KgToLb(kg float64) float64 { return kg / KgPerLb }

func LbToKg(lb float64) float64 { return lb * KgPerLb }

func PerSecondToPerHour(v float64) float64 { return v * SecondsPerHour }

func PerHourToPerSecond(v float64) float64 { return v / SecondsPerHour }

// GaugeToAbsolute converts psig to psia.
func GaugeToAbsolute(psig float64) float64 { return psig + AtmosphericPsi }

// FahrenheitToRankine converts °F to °R.
func FahrenheitToRankine(f float64) float64 { return f + RankineOffset }

// GPMToMassFlow converts a liquid flow in gpm with specific gravity sg to lb/hr.
func GPMToMassFlow(gpm, sg float64) float64 {
	return gpm * WaterLbPerGal * sg * 60
}

// ASMEDesignFlow inflates a relieving flow by the accumulation margin.
func ASMEDesignFlow(flow float64) float64 {
	return flow / AccumulationFactor
}
