// Package domain holds the value types shared by the relief-flow calculators
// and the design basis aggregation rule.
//
// # Units
//
// Every quantity is imperial and is never converted implicitly. Field names
// carry the unit when it is not obvious from context:
//
//	pressure     psig at the boundary, psia inside formulas (gauge + 14.7)
//	temperature  °F at the boundary, °R inside formulas (°F + 459.67)
//	mass flow    lb/hr
//	gas flow     SCFH (standard cubic feet per hour, 379 SCF per lb-mol)
//	liquid flow  gpm
//	length       ft for heights and lengths, in for diameters
//	area         ft²
//	heat         Btu/hr
//
// Conversions between these live in units.go as named functions with fixed
// constants (379 SCF/lb-mol, 0.453592 kg/lb, 3600 s/hr).
//
// # Scenario catalog
//
// The catalog of overpressure cases is closed:
//
//	external-fire            API 521 / NFPA 30 fire heat input over the wetted area
//	control-valve-failure    ISA-S75.01 gas flow through a failed-open valve
//	blocked-outlet           source inflow less outlet credit
//	cooling-reflux-failure   vapor generated by lost condensing duty
//	hydraulic-expansion      API 521 Eq. (2) thermal expansion of blocked-in liquid
//	tube-rupture             orifice flow through a ruptured exchanger tube
//	liquid-overfill          pump-in rate less outlet rate
//
// # Accumulation
//
// The ASME VIII design flow is the relieving mass flow divided by 0.9, the
// 110% accumulation allowance. Every case reports it in lb/hr so the design
// basis compares like with like whatever the case's native flow unit.
//
// # Design basis
//
// The design basis flow is the largest ASME VIII design flow among cases that
// are both selected and calculated. When two cases tie, the first in catalog
// order wins. No qualifying case means no design basis. See [DesignBasis].
//
// # Validation
//
// Calculators never return Go errors for bad input. Each result carries
// blocking errors and advisory warnings in [Messages]; a result with errors
// has IsCalculated false and zero flow.
package domain
