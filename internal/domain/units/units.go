package units

import (
	"math"
	"strconv"
	"strings"
)

type System string

const (
	SI       System = "SI"
	Imperial System = "IMPERIAL"
)

// Fixed conversion factors.
const (
	MToFt     = 3.28084
	M2ToFt2   = 10.7639
	M3ToFt3   = 35.3147
	KgToLb    = 2.20462
	LToGal    = 0.264172
	HaToM2    = 10000.0
	AcreToFt2 = 43560.0
)

type Kind string

const (
	Length Kind = "length"
	Area   Kind = "area"
	Volume Kind = "volume"
	Weight Kind = "weight"
	Liquid Kind = "liquid"
)

// ParseSystem maps any unknown or empty value to SI.
func ParseSystem(s string) System {
	if strings.EqualFold(strings.TrimSpace(s), string(Imperial)) {
		return Imperial
	}
	return SI
}

func factor(kind Kind) float64 {
	switch kind {
	case Length:
		return MToFt
	case Area:
		return M2ToFt2
	case Volume:
		return M3ToFt3
	case Weight:
		return KgToLb
	case Liquid:
		return LToGal
	default:
		return 1
	}
}

// FromSI converts a value held in SI into the given display system.
func FromSI(v float64, kind Kind, sys System) float64 {
	if sys != Imperial {
		return v
	}
	return v * factor(kind)
}

// ToSI converts a value entered in the given system back to SI.
func ToSI(v float64, kind Kind, sys System) float64 {
	if sys != Imperial {
		return v
	}
	return v / factor(kind)
}

// LargeArea expresses an area in hectares (SI) or acres (imperial).
func LargeArea(m2 float64, sys System) float64 {
	if sys == Imperial {
		return m2 * M2ToFt2 / AcreToFt2
	}
	return m2 / HaToM2
}

type UnitLabels struct {
	Length    string `json:"length"`
	Area      string `json:"area"`
	Volume    string `json:"volume"`
	Weight    string `json:"weight"`
	Liquid    string `json:"liquid"`
	LargeArea string `json:"large_area"`
	Bag       string `json:"bag"`
}

func Labels(sys System) UnitLabels {
	if sys == Imperial {
		return UnitLabels{
			Length:    "ft",
			Area:      "sq ft",
			Volume:    "cu ft",
			Weight:    "lb",
			Liquid:    "gal",
			LargeArea: "acres",
			Bag:       "bags (55lb)",
		}
	}
	return UnitLabels{
		Length:    "m",
		Area:      "m²",
		Volume:    "m³",
		Weight:    "kg",
		Liquid:    "L",
		LargeArea: "hectares",
		Bag:       "bags (25kg)",
	}
}

// ParseNumber reads a user-typed number. Commas are accepted as decimal
// separators. Anything unparsable or non-finite yields 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
