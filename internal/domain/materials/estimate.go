package materials

import (
	"errors"
	"math"
	"strings"

	"construlab/internal/domain/units"
)

type Mode string

const (
	ModeSlab Mode = "slab"
	ModeBox  Mode = "box"
)

// BagKg is the cement bag size used for the bag count.
const BagKg = 25.0

var ErrUnknownMode = errors.New("unknown mode")

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSlab, "":
		return ModeSlab, nil
	case ModeBox:
		return ModeBox, nil
	}
	return "", ErrUnknownMode
}

// SlabVolume is footprint area times thickness, both SI.
func SlabVolume(areaM2, thicknessM float64) float64 {
	return areaM2 * thicknessM
}

func BoxVolume(lengthM, widthM, heightM float64) float64 {
	return lengthM * widthM * heightM
}

type SteelPart struct {
	Key      string  `json:"key"`
	Detail   string  `json:"detail"`
	WeightKg float64 `json:"weight_kg"`
}

type SteelBreakdown struct {
	Type  string      `json:"type"`
	Parts []SteelPart `json:"parts"`
}

// Quantities are always SI: kg, m³ and liters.
type Quantities struct {
	Mode       Mode           `json:"mode"`
	VolumeM3   float64        `json:"volume_m3"`
	CementKg   float64        `json:"cement_kg"`
	CementBags int            `json:"cement_bags"`
	SandM3     float64        `json:"sand_m3"`
	GravelM3   float64        `json:"gravel_m3"`
	WaterL     float64        `json:"water_l"`
	SteelMinKg float64        `json:"steel_min_kg"`
	SteelMaxKg float64        `json:"steel_max_kg"`
	Steel      SteelBreakdown `json:"steel"`
	Cost       float64        `json:"estimated_cost"`
}

func (q Quantities) SteelAvgKg() float64 {
	return (q.SteelMinKg + q.SteelMaxKg) / 2
}

// Estimate derives material quantities from a concrete volume. Every quantity
// is linear in volume; a non-positive volume gives an all-zero result.
func Estimate(volumeM3 float64, cfg Config, mode Mode) Quantities {
	if volumeM3 < 0 || math.IsNaN(volumeM3) || math.IsInf(volumeM3, 0) {
		volumeM3 = 0
	}

	q := Quantities{
		Mode:       mode,
		VolumeM3:   volumeM3,
		CementKg:   volumeM3 * cfg.CementKgPerM3,
		SandM3:     volumeM3 * cfg.SandM3PerM3,
		GravelM3:   volumeM3 * cfg.GravelM3PerM3,
		WaterL:     volumeM3 * cfg.WaterLPerM3,
		SteelMinKg: volumeM3 * cfg.SteelKgPerM3Min,
		SteelMaxKg: volumeM3 * cfg.SteelKgPerM3Max,
	}
	q.CementBags = int(math.Ceil(q.CementKg / BagKg))
	q.Steel = breakdown(mode, q.SteelAvgKg())
	q.Cost = volumeM3*cfg.CostPerM3 + q.SteelAvgKg()*cfg.CostPerKgSteel
	return q
}

func breakdown(mode Mode, avg float64) SteelBreakdown {
	if mode == ModeBox {
		return SteelBreakdown{
			Type: "beam_pillar",
			Parts: []SteelPart{
				{Key: "longitudinal", Detail: "4x - 8x Ø12 - Ø20", WeightKg: avg * 0.7},
				{Key: "stirrups", Detail: "Ø6 - Ø8 // 15cm", WeightKg: avg * 0.3},
			},
		}
	}
	return SteelBreakdown{
		Type: "slab_mesh",
		Parts: []SteelPart{
			{Key: "mesh", Detail: "Ø10 - Ø12 // 15-20cm", WeightKg: avg * 0.6},
			{Key: "distribution", Detail: "Ø8 // 20-25cm", WeightKg: avg * 0.4},
		},
	}
}

// DisplayQuantities is Quantities expressed in a display unit system.
type DisplayQuantities struct {
	System     units.System     `json:"system"`
	Labels     units.UnitLabels `json:"labels"`
	Volume     float64          `json:"volume"`
	Cement     float64          `json:"cement"`
	CementBags int              `json:"cement_bags"`
	Sand       float64          `json:"sand"`
	Gravel     float64          `json:"gravel"`
	Water      float64          `json:"water"`
	SteelMin   float64          `json:"steel_min"`
	SteelMax   float64          `json:"steel_max"`
}

func Display(q Quantities, sys units.System) DisplayQuantities {
	return DisplayQuantities{
		System:     sys,
		Labels:     units.Labels(sys),
		Volume:     units.FromSI(q.VolumeM3, units.Volume, sys),
		Cement:     units.FromSI(q.CementKg, units.Weight, sys),
		CementBags: q.CementBags,
		Sand:       units.FromSI(q.SandM3, units.Volume, sys),
		Gravel:     units.FromSI(q.GravelM3, units.Volume, sys),
		Water:      units.FromSI(q.WaterL, units.Liquid, sys),
		SteelMin:   units.FromSI(q.SteelMinKg, units.Weight, sys),
		SteelMax:   units.FromSI(q.SteelMaxKg, units.Weight, sys),
	}
}
