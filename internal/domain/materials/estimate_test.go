package materials

import (
	"errors"
	"math"
	"testing"

	"construlab/internal/domain/units"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEstimate_DefaultMixOneCubicMeter(t *testing.T) {
	q := Estimate(1, DefaultConfig(), ModeSlab)

	if q.CementKg != 300 || q.CementBags != 12 {
		t.Fatalf("unexpected cement: %v kg, %d bags", q.CementKg, q.CementBags)
	}
	if q.SandM3 != 0.5 || q.GravelM3 != 0.8 || q.WaterL != 150 {
		t.Fatalf("unexpected aggregates: %+v", q)
	}
	if q.SteelMinKg != 80 || q.SteelMaxKg != 100 {
		t.Fatalf("unexpected steel range: %v-%v", q.SteelMinKg, q.SteelMaxKg)
	}
	if !near(q.Cost, 100+90*1.5) {
		t.Fatalf("unexpected cost: %v", q.Cost)
	}
}

func TestEstimate_SlabFromDrawnSquare(t *testing.T) {
	// 10m x 10m footprint, 0.15m thick
	vol := SlabVolume(100, 0.15)
	q := Estimate(vol, DefaultConfig(), ModeSlab)

	if !near(q.VolumeM3, 15) {
		t.Fatalf("expected 15 m3, got %v", q.VolumeM3)
	}
	if !near(q.CementKg, 4500) || q.CementBags != 180 {
		t.Fatalf("unexpected cement: %v kg / %d bags", q.CementKg, q.CementBags)
	}
	if q.Steel.Type != "slab_mesh" || len(q.Steel.Parts) != 2 {
		t.Fatalf("unexpected breakdown: %+v", q.Steel)
	}
	if !near(q.Steel.Parts[0].WeightKg, 1350*0.6) || !near(q.Steel.Parts[1].WeightKg, 1350*0.4) {
		t.Fatalf("unexpected slab split: %+v", q.Steel.Parts)
	}
}

func TestEstimate_BoxSplit(t *testing.T) {
	q := Estimate(BoxVolume(2, 1, 0.5), DefaultConfig(), ModeBox)

	if q.Steel.Type != "beam_pillar" {
		t.Fatalf("unexpected type %q", q.Steel.Type)
	}
	var total float64
	for _, p := range q.Steel.Parts {
		total += p.WeightKg
	}
	if !near(total, q.SteelAvgKg()) {
		t.Fatalf("parts %v do not sum to avg %v", total, q.SteelAvgKg())
	}
	if !near(q.Steel.Parts[0].WeightKg, 90*0.7) {
		t.Fatalf("unexpected longitudinal weight %v", q.Steel.Parts[0].WeightKg)
	}
}

func TestEstimate_LinearInVolume(t *testing.T) {
	cfg := DefaultConfig()
	a := Estimate(1.7, cfg, ModeSlab)
	b := Estimate(3.4, cfg, ModeSlab)

	pairs := [][2]float64{
		{a.CementKg, b.CementKg},
		{a.SandM3, b.SandM3},
		{a.GravelM3, b.GravelM3},
		{a.WaterL, b.WaterL},
		{a.SteelMinKg, b.SteelMinKg},
		{a.SteelMaxKg, b.SteelMaxKg},
		{a.Cost, b.Cost},
	}
	for i, p := range pairs {
		if !near(2*p[0], p[1]) {
			t.Fatalf("pair %d not linear: %v vs %v", i, p[0], p[1])
		}
	}
}

func TestEstimate_BagsRoundUp(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		vol  float64
		bags int
	}{
		{0, 0},
		{0.01, 1},
		{0.08, 1},
		{0.1, 2},
	}
	for _, tc := range cases {
		if got := Estimate(tc.vol, cfg, ModeSlab).CementBags; got != tc.bags {
			t.Fatalf("vol %v: expected %d bags, got %d", tc.vol, tc.bags, got)
		}
	}
}

func TestEstimate_InvalidVolumeIsZero(t *testing.T) {
	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		q := Estimate(v, DefaultConfig(), ModeSlab)
		if q.VolumeM3 != 0 || q.CementKg != 0 || q.Cost != 0 {
			t.Fatalf("expected zero estimate for %v, got %+v", v, q)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("BOX"); err != nil || m != ModeBox {
		t.Fatalf("expected box, got %q %v", m, err)
	}
	if m, err := ParseMode(""); err != nil || m != ModeSlab {
		t.Fatalf("expected slab default, got %q %v", m, err)
	}
	if _, err := ParseMode("sphere"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestDisplay_Imperial(t *testing.T) {
	q := Estimate(1, DefaultConfig(), ModeSlab)
	d := Display(q, units.Imperial)

	if !near(d.Volume, units.M3ToFt3) {
		t.Fatalf("unexpected volume %v", d.Volume)
	}
	if !near(d.Cement, 300*units.KgToLb) || !near(d.Water, 150*units.LToGal) {
		t.Fatalf("unexpected weights: %+v", d)
	}
	if d.CementBags != q.CementBags || d.Labels.Weight != "lb" {
		t.Fatalf("unexpected display: %+v", d)
	}

	si := Display(q, units.SI)
	if si.Cement != 300 || si.Labels.Liquid != "L" {
		t.Fatalf("SI display should be identity: %+v", si)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := DefaultConfig()
	bad.SteelKgPerM3Min = 120
	if err := bad.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	neg := DefaultConfig()
	neg.WaterLPerM3 = -1
	if err := neg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
