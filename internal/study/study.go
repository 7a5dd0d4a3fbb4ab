// Package study evaluates every overpressure case declared for one vessel
// and reduces them to the design basis flow.
package study

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/couchcryptid/relief-calc/internal/controlvalve"
	"github.com/couchcryptid/relief-calc/internal/fire"
	"github.com/couchcryptid/relief-calc/internal/geometry"
	"github.com/couchcryptid/relief-calc/internal/hydraulic"
	"github.com/couchcryptid/relief-calc/internal/properties"
	"github.com/couchcryptid/relief-calc/internal/scenario"
	"github.com/couchcryptid/relief-calc/internal/tuberupture"
	"gopkg.in/yaml.v3"
)

// Study is one vessel with an optional input record per case. A nil case is
// not evaluated; a present but unselected case is evaluated and reported but
// never governs.
type Study struct {
	ID     string          `json:"id" yaml:"id"`
	Name   string          `json:"name,omitempty" yaml:"name,omitempty"`
	Vessel geometry.Vessel `json:"vessel" yaml:"vessel"`

	Fire               *FireCase          `json:"external_fire,omitempty" yaml:"external_fire,omitempty"`
	ControlValve       *ControlValveCase  `json:"control_valve_failure,omitempty" yaml:"control_valve_failure,omitempty"`
	BlockedOutlet      *BlockedOutletCase `json:"blocked_outlet,omitempty" yaml:"blocked_outlet,omitempty"`
	CoolingReflux      *CoolingRefluxCase `json:"cooling_reflux_failure,omitempty" yaml:"cooling_reflux_failure,omitempty"`
	HydraulicExpansion *HydraulicCase     `json:"hydraulic_expansion,omitempty" yaml:"hydraulic_expansion,omitempty"`
	TubeRupture        *TubeRuptureCase   `json:"tube_rupture,omitempty" yaml:"tube_rupture,omitempty"`
	LiquidOverfill     *OverfillCase      `json:"liquid_overfill,omitempty" yaml:"liquid_overfill,omitempty"`
}

type FireCase struct {
	Selected    bool `json:"selected" yaml:"selected"`
	fire.Inputs `yaml:",inline"`
}

type ControlValveCase struct {
	Selected            bool `json:"selected" yaml:"selected"`
	controlvalve.Inputs `yaml:",inline"`
	GasRef              `yaml:",inline"`
}

type BlockedOutletCase struct {
	Selected                     bool `json:"selected" yaml:"selected"`
	scenario.BlockedOutletInputs `yaml:",inline"`
}

type CoolingRefluxCase struct {
	Selected                     bool `json:"selected" yaml:"selected"`
	scenario.CoolingRefluxInputs `yaml:",inline"`
}

type HydraulicCase struct {
	Selected         bool `json:"selected" yaml:"selected"`
	hydraulic.Inputs `yaml:",inline"`
}

type TubeRuptureCase struct {
	Selected           bool `json:"selected" yaml:"selected"`
	tuberupture.Inputs `yaml:",inline"`
	GasRef             `yaml:",inline"`

	// Fluid supplies the liquid density when none is given.
	Fluid string `json:"fluid,omitempty" yaml:"fluid,omitempty"`
}

type OverfillCase struct {
	Selected                bool `json:"selected" yaml:"selected"`
	scenario.OverfillInputs `yaml:",inline"`
}

// GasRef names a gas from the property table or describes a custom one.
type GasRef struct {
	Gas       string     `json:"gas,omitempty" yaml:"gas,omitempty"`
	CustomGas *CustomGas `json:"custom_gas,omitempty" yaml:"custom_gas,omitempty"`
}

type CustomGas struct {
	MolecularWeight   float64 `json:"molecular_weight" yaml:"molecular_weight"`
	Compressibility   float64 `json:"compressibility" yaml:"compressibility"`
	SpecificHeatRatio float64 `json:"specific_heat_ratio" yaml:"specific_heat_ratio"`
}

// Resolve returns the referenced gas. A custom gas takes precedence.
func (g GasRef) Resolve(store *properties.Store) (properties.GasProperty, error) {
	if g.CustomGas != nil {
		c := g.CustomGas
		return properties.CustomGas(c.MolecularWeight, c.Compressibility, c.SpecificHeatRatio), nil
	}
	if g.Gas == "" {
		return properties.GasProperty{}, fmt.Errorf("insufficient input: gas or custom gas required")
	}
	gas, ok := store.Gas(g.Gas)
	if !ok {
		return properties.GasProperty{}, fmt.Errorf("no property data for gas %q", g.Gas)
	}
	return gas, nil
}

// DecodeJSON reads a study, rejecting fields that name no known case or input.
func DecodeJSON(r io.Reader) (Study, error) {
	var s Study
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Study{}, fmt.Errorf("decode study: %w", err)
	}
	return s, nil
}

// DecodeYAML is the YAML counterpart of DecodeJSON.
func DecodeYAML(r io.Reader) (Study, error) {
	var s Study
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Study{}, fmt.Errorf("decode study: %w", err)
	}
	return s, nil
}
