// Package geometry computes vessel head areas and the wetted surface exposed
// to an external pool fire.
//
// Diameters are in inches, lengths and elevations in feet, areas in ft².
package geometry

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/gocarina/gocsv"
)

// HeadType is the shape of a vessel closure.
type HeadType int

const (
	Elliptical HeadType = iota // 2:1 semi-elliptical
	Hemispherical
	Flat
)

var headTypeNames = map[HeadType]string{
	Elliptical:    "elliptical",
	Hemispherical: "hemispherical",
	Flat:          "flat",
}

func (h HeadType) String() string {
	if s, ok := headTypeNames[h]; ok {
		return s
	}
	return fmt.Sprintf("HeadType(%d)", int(h))
}

func (h HeadType) MarshalText() ([]byte, error) {
	if s, ok := headTypeNames[h]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("unknown head type %d", int(h))
}

func (h *HeadType) UnmarshalText(b []byte) error {
	for k, v := range headTypeNames {
		if v == string(b) {
			*h = k
			return nil
		}
	}
	return fmt.Errorf("unknown head type %q", string(b))
}

// HemisphericalClosedFormMaxIn is the largest hemispherical head diameter
// computed from the closed form; larger heads come from the table.
const HemisphericalClosedFormMaxIn = 6.625

//go:embed data/head_areas.csv
var headAreasCSV []byte

// headAreaRow is one standard diameter in the head-area table, areas in ft².
type headAreaRow struct {
	Diameter      float64 `csv:"diameter"`
	Elliptical    float64 `csv:"elliptical"`
	Hemispherical float64 `csv:"hemispherical"`
}

var headAreas = mustLoadHeadAreas()

func mustLoadHeadAreas() map[float64]headAreaRow {
	var rows []*headAreaRow
	if err := gocsv.UnmarshalBytes(headAreasCSV, &rows); err != nil {
		panic(fmt.Sprintf("geometry: parse head area table: %v", err))
	}
	m := make(map[float64]headAreaRow, len(rows))
	for _, r := range rows {
		m[r.Diameter] = *r
	}
	return m
}

// HeadArea returns the surface area of one head in ft².
//
// Flat heads use the disc area at any size and small hemispherical heads use
// D²/144 × 1.57. Everything else is an exact-match lookup on the standard
// diameter table; a diameter not in the table yields 0 (no interpolation).
func HeadArea(diameterIn float64, head HeadType) float64 {
	if diameterIn <= 0 {
		return 0
	}

	switch head {
	case Flat:
		return math.Pow(diameterIn/2, 2) * math.Pi / 144
	case Hemispherical:
		if diameterIn <= HemisphericalClosedFormMaxIn {
			return diameterIn * diameterIn / 144 * 1.57
		}
		return headAreas[diameterIn].Hemispherical
	case Elliptical:
		return headAreas[diameterIn].Elliptical
	}
	return 0
}

// IsStandardDiameter reports whether the head-area table has an entry for d.
func IsStandardDiameter(diameterIn float64) bool {
	_, ok := headAreas[diameterIn]
	return ok
}

// UsesHeadTable reports whether HeadArea resolves this head from the table.
func UsesHeadTable(diameterIn float64, head HeadType) bool {
	switch head {
	case Elliptical:
		return true
	case Hemispherical:
		return diameterIn > HemisphericalClosedFormMaxIn
	}
	return false
}
