package estimate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"construlab/internal/domain/geometry"
	"construlab/internal/domain/materials"
	"construlab/internal/domain/units"
)

// Number accepts a JSON number or a user-typed string ("2,5"). Anything that
// does not parse is zero.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(units.ParseNumber(s))
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	*n = Number(units.ParseNumber(string(b)))
	return nil
}

type AreaRequest struct {
	Points     []geometry.Point `json:"points"`
	Scale      Number           `json:"scale"`
	Closed     *bool            `json:"closed"`
	UnitSystem string           `json:"unit_system"`
}

// MaterialsRequest describes a structure. Dimensions are in the request's unit
// system. A slab takes its footprint from points+scale when given, otherwise
// from area.
type MaterialsRequest struct {
	Mode       string            `json:"mode"`
	UnitSystem string            `json:"unit_system"`
	Points     []geometry.Point  `json:"points"`
	Scale      Number            `json:"scale"`
	Area       Number            `json:"area"`
	Thickness  Number            `json:"thickness"`
	Length     Number            `json:"length"`
	Width      Number            `json:"width"`
	Height     Number            `json:"height"`
	Preset     string            `json:"preset"`
	Config     *materials.Config `json:"config"`
}

// Result is a computed estimate with the inputs that produced it.
type Result struct {
	Mode       materials.Mode
	System     units.System
	AreaM2     float64
	Config     materials.Config
	Preset     string
	Quantities materials.Quantities
}

var ErrBadRequest = errors.New("invalid estimate request")

// pixelScale returns the drawing scale in px per meter. Zero means the canvas
// default.
func pixelScale(n Number) (float64, error) {
	scale := float64(n)
	switch {
	case scale < 0:
		return 0, fmt.Errorf("%w: scale must be positive", ErrBadRequest)
	case scale == 0:
		return geometry.DefaultScale, nil
	}
	return scale, nil
}

// Compute resolves the mix and dimensions and runs the estimate.
func Compute(req MaterialsRequest, presets *materials.Presets) (Result, error) {
	mode, err := materials.ParseMode(req.Mode)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	sys := units.ParseSystem(req.UnitSystem)

	preset, err := presets.Get(req.Preset)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	cfg := preset.Config
	if req.Config != nil {
		if err := req.Config.Validate(); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		cfg = *req.Config
	}

	res := Result{Mode: mode, System: sys, Config: cfg, Preset: preset.Name}

	var volume float64
	switch mode {
	case materials.ModeBox:
		l := units.ToSI(float64(req.Length), units.Length, sys)
		w := units.ToSI(float64(req.Width), units.Length, sys)
		h := units.ToSI(float64(req.Height), units.Length, sys)
		res.AreaM2 = l * w
		volume = materials.BoxVolume(l, w, h)
	default:
		if len(req.Points) > 0 {
			scale, err := pixelScale(req.Scale)
			if err != nil {
				return Result{}, err
			}
			res.AreaM2 = geometry.AreaM2(req.Points, scale)
		} else {
			res.AreaM2 = units.ToSI(float64(req.Area), units.Area, sys)
		}
		volume = materials.SlabVolume(res.AreaM2, units.ToSI(float64(req.Thickness), units.Length, sys))
	}

	res.Quantities = materials.Estimate(volume, cfg, mode)
	return res, nil
}
