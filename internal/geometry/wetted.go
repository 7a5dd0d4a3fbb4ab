package geometry

import (
	"fmt"
	"math"

	"github.com/couchcryptid/relief-calc/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// Orientation is the vessel's installed position.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
	Sphere
)

var orientationNames = map[Orientation]string{
	Vertical:   "vertical",
	Horizontal: "horizontal",
	Sphere:     "sphere",
}

func (o Orientation) String() string {
	if s, ok := orientationNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

func (o Orientation) MarshalText() ([]byte, error) {
	if s, ok := orientationNames[o]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("unknown orientation %d", int(o))
}

func (o *Orientation) UnmarshalText(b []byte) error {
	for k, v := range orientationNames {
		if v == string(b) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown orientation %q", string(b))
}

// FireHeightCapFt is the API 521 limit on wetted height above the fire source.
const FireHeightCapFt = 25.0

// Vessel is the geometry the fire case needs.
type Vessel struct {
	DiameterIn     float64     `json:"diameter_in" yaml:"diameter_in"`
	StraightSideFt float64     `json:"straight_side_ft" yaml:"straight_side_ft"` // tangent-to-tangent
	Head           HeadType    `json:"head_type" yaml:"head_type"`
	Orientation    Orientation `json:"orientation" yaml:"orientation"`
}

// Exposure describes how the vessel sits relative to the fire.
type Exposure struct {
	Standard       domain.FireStandard `json:"standard" yaml:"standard"`
	SkirtSupported bool                `json:"skirt_supported" yaml:"skirt_supported"`

	// FireSourceElevationFt is the height of the fire source (grade or a
	// solid platform) measured from the vessel bottom. Negative when the
	// vessel is elevated above grade.
	FireSourceElevationFt float64 `json:"fire_source_elevation_ft" yaml:"fire_source_elevation_ft"`
}

// FireExposedArea returns the wetted area in ft² exposed to fire.
//
// API 521 caps the wetted height at 25 ft above the fire source; NFPA 30 has
// no cap. Spheres are special: NFPA 30 takes 55% of the whole surface and
// API 521 takes the bottom hemisphere regardless of the cap.
func FireExposedArea(v Vessel, e Exposure) float64 {
	if v.DiameterIn <= 0 {
		return 0
	}
	r := v.DiameterIn / 12 / 2

	if v.Orientation == Sphere {
		if e.Standard == domain.NFPA30 {
			return 0.55 * 4 * math.Pi * r * r
		}
		return 2 * math.Pi * r * r
	}

	if v.StraightSideFt <= 0 {
		return 0
	}

	heightCap := math.Inf(1)
	if e.Standard == domain.API521 {
		heightCap = e.FireSourceElevationFt + FireHeightCapFt
	}
	if heightCap <= 0 {
		return 0
	}

	head := HeadArea(v.DiameterIn, v.Head)
	var parts []float64

	switch v.Orientation {
	case Vertical:
		wetted := math.Min(v.StraightSideFt, heightCap)
		parts = append(parts, 2*math.Pi*r*wetted)
		if !e.SkirtSupported {
			parts = append(parts, head)
		}
		if v.StraightSideFt <= heightCap {
			parts = append(parts, head)
		}
	case Horizontal:
		height := 2 * r
		parts = append(parts, horizontalShellArea(r, v.StraightSideFt, heightCap))
		if !e.SkirtSupported {
			parts = append(parts, head)
		}
		if height <= heightCap {
			parts = append(parts, head)
		}
	}

	return floats.Sum(parts)
}

// horizontalShellArea is the shell area below wettedHeight on a horizontal
// cylinder: the full circumference when the cap clears the top, otherwise the
// arc subtended by the wetted chord.
func horizontalShellArea(r, length, wettedHeight float64) float64 {
	if wettedHeight >= 2*r {
		return 2 * math.Pi * r * length
	}
	theta := 2 * math.Acos(1-wettedHeight/r)
	return r * theta * length
}
