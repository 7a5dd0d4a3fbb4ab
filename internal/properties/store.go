// Package properties is the static reference data for fluids, gases, and
// insulation materials. Tables are embedded CSV loaded once at start-up and
// never mutated; lookups are case-insensitive and a miss is reported with a
// false ok rather than an error.
package properties

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
)

//go:embed data/*.csv
var tables embed.FS

// AirMolecularWeight is the reference for gas specific gravity.
const AirMolecularWeight = 28.96

// FluidProperty describes a liquid that vaporizes under fire exposure.
type FluidProperty struct {
	Name               string  `csv:"name" json:"name"`
	HeatOfVaporization float64 `csv:"heat_of_vaporization" json:"heat_of_vaporization"` // Btu/lb
	MolecularWeight    float64 `csv:"molecular_weight" json:"molecular_weight"`
	LiquidDensity      float64 `csv:"liquid_density" json:"liquid_density"` // lb/ft³
}

// SpecificGravity is the liquid density relative to water.
func (f FluidProperty) SpecificGravity() float64 {
	return f.LiquidDensity / 62.4
}

// GasProperty describes a gas or vapor for compressible-flow calculations.
type GasProperty struct {
	Name                         string  `csv:"name" json:"name"`
	MolecularWeight              float64 `csv:"molecular_weight" json:"molecular_weight"`
	SpecificGravity              float64 `csv:"specific_gravity" json:"specific_gravity"` // relative to air
	DefaultCompressibilityFactor float64 `csv:"compressibility" json:"default_compressibility_factor"`
	SpecificHeatRatio            float64 `csv:"specific_heat_ratio" json:"specific_heat_ratio"` // k = Cp/Cv
	Custom                       bool    `csv:"-" json:"custom,omitempty"`
}

// InsulationMaterial carries the properties the environmental factor needs.
type InsulationMaterial struct {
	Name                   string  `csv:"name" json:"name"`
	ThermalConductivity    float64 `csv:"conductivity" json:"thermal_conductivity"`               // Btu/(hr·ft·°F)
	MaxServiceTemperatureF float64 `csv:"max_service_temperature" json:"max_service_temperature"` // °F
}

// Store indexes the reference tables by lowercase name.
type Store struct {
	fluids     map[string]FluidProperty
	gases      map[string]GasProperty
	insulation map[string]InsulationMaterial
}

var defaultStore = mustLoadEmbedded()

// Default returns the store built from the embedded tables.
func Default() *Store { return defaultStore }

func mustLoadEmbedded() *Store {
	read := func(name string) []byte {
		b, err := tables.ReadFile("data/" + name)
		if err != nil {
			panic(fmt.Sprintf("properties: read embedded %s: %v", name, err))
		}
		return b
	}
	s, err := NewStore(read("fluids.csv"), read("gases.csv"), read("insulation.csv"))
	if err != nil {
		panic(fmt.Sprintf("properties: %v", err))
	}
	return s
}

// NewStore parses the three CSV tables.
func NewStore(fluidsCSV, gasesCSV, insulationCSV []byte) (*Store, error) {
	var fluids []*FluidProperty
	if err := gocsv.UnmarshalBytes(fluidsCSV, &fluids); err != nil {
		return nil, fmt.Errorf("parse fluids table: %w", err)
	}
	var gases []*GasProperty
	if err := gocsv.UnmarshalBytes(gasesCSV, &gases); err != nil {
		return nil, fmt.Errorf("parse gases table: %w", err)
	}
	var insulation []*InsulationMaterial
	if err := gocsv.UnmarshalBytes(insulationCSV, &insulation); err != nil {
		return nil, fmt.Errorf("parse insulation table: %w", err)
	}

	s := &Store{
		fluids:     make(map[string]FluidProperty, len(fluids)),
		gases:      make(map[string]GasProperty, len(gases)),
		insulation: make(map[string]InsulationMaterial, len(insulation)),
	}
	for _, f := range fluids {
		s.fluids[key(f.Name)] = *f
	}
	for _, g := range gases {
		s.gases[key(g.Name)] = *g
	}
	for _, m := range insulation {
		s.insulation[key(m.Name)] = *m
	}
	return s, nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Fluid looks up a fluid by name.
func (s *Store) Fluid(name string) (FluidProperty, bool) {
	f, ok := s.fluids[key(name)]
	return f, ok
}

// Gas looks up a gas by name.
func (s *Store) Gas(name string) (GasProperty, bool) {
	g, ok := s.gases[key(name)]
	return g, ok
}

// InsulationMaterial looks up an insulation material by name.
func (s *Store) InsulationMaterial(name string) (InsulationMaterial, bool) {
	m, ok := s.insulation[key(name)]
	return m, ok
}

// Fluids returns every fluid sorted by name.
func (s *Store) Fluids() []FluidProperty {
	out := make([]FluidProperty, 0, len(s.fluids))
	for _, f := range s.fluids {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Gases returns every gas sorted by name.
func (s *Store) Gases() []GasProperty {
	out := make([]GasProperty, 0, len(s.gases))
	for _, g := range s.gases {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CustomGas builds a user-defined gas. Specific gravity follows from the
// molecular weight; a zero compressibility defaults to 1.
func CustomGas(mw, z, k float64) GasProperty {
	if z == 0 {
		z = 1
	}
	return GasProperty{
		Name:                         "Custom",
		MolecularWeight:              mw,
		SpecificGravity:              mw / AirMolecularWeight,
		DefaultCompressibilityFactor: z,
		SpecificHeatRatio:            k,
		Custom:                       true,
	}
}

// GetFluidProperty looks up a fluid in the default store.
func GetFluidProperty(name string) (FluidProperty, bool) { return defaultStore.Fluid(name) }

// GetGasProperty looks up a gas in the default store.
func GetGasProperty(name string) (GasProperty, bool) { return defaultStore.Gas(name) }
