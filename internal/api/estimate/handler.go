package estimate

import (
	"errors"
	"net/http"

	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/access"
	"construlab/internal/domain/geometry"
	"construlab/internal/domain/materials"
	"construlab/internal/domain/units"
	"construlab/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// Presets is the mix catalogue, replaced at startup from MATERIALS_PRESETS_FILE.
var Presets = materials.NewPresets()

type AreaResponse struct {
	AreaM2     float64          `json:"area_m2"`
	Area       float64          `json:"area"`
	LargeArea  float64          `json:"large_area"`
	Perimeter  float64          `json:"perimeter"`
	Edges      []float64        `json:"edges"`
	UnitSystem units.System     `json:"unit_system"`
	Labels     units.UnitLabels `json:"labels"`
}

// POST /estimate/area
func Area(c *gin.Context) {
	var req AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	scale, err := pixelScale(req.Scale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Scale must be positive"})
		return
	}
	// fewer than three points never close
	closed := len(req.Points) >= 3
	if closed && req.Closed != nil {
		closed = *req.Closed
	}
	sys := units.ParseSystem(req.UnitSystem)

	areaM2 := 0.0
	if closed {
		areaM2 = geometry.AreaM2(req.Points, scale)
	}

	edges := make([]float64, 0, len(req.Points))
	for _, px := range geometry.EdgeLengthsPx(req.Points, closed) {
		edges = append(edges, units.FromSI(px/scale, units.Length, sys))
	}

	metrics.Estimates.WithLabelValues("area").Inc()

	c.JSON(http.StatusOK, AreaResponse{
		AreaM2:     areaM2,
		Area:       units.FromSI(areaM2, units.Area, sys),
		LargeArea:  units.LargeArea(areaM2, sys),
		Perimeter:  units.FromSI(geometry.PerimeterPx(req.Points, closed)/scale, units.Length, sys),
		Edges:      edges,
		UnitSystem: sys,
		Labels:     units.Labels(sys),
	})
}

type MaterialsResponse struct {
	Mode       materials.Mode              `json:"mode"`
	Preset     string                      `json:"preset"`
	AreaM2     float64                     `json:"area_m2"`
	Config     materials.Config            `json:"config"`
	Quantities materials.Quantities        `json:"quantities"`
	Display    materials.DisplayQuantities `json:"display"`
	Steel      *materials.SteelBreakdown   `json:"steel_detail,omitempty"`
	Locked     []access.Capability         `json:"locked,omitempty"`
}

// POST /estimate/materials. The steel breakdown is only returned to callers
// with the steel_detail capability.
func Materials(c *gin.Context) {
	var req MaterialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	res, err := Compute(req, Presets)
	if err != nil {
		if errors.Is(err, ErrBadRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute estimate"})
		return
	}

	metrics.Estimates.WithLabelValues(string(res.Mode)).Inc()

	c.JSON(http.StatusOK, BuildMaterialsResponse(res, middleware.CurrentPolicy(c)))
}

func BuildMaterialsResponse(res Result, policy access.Policy) MaterialsResponse {
	q := res.Quantities
	out := MaterialsResponse{
		Mode:    res.Mode,
		Preset:  res.Preset,
		AreaM2:  res.AreaM2,
		Config:  res.Config,
		Display: materials.Display(q, res.System),
	}
	if policy.Can(access.CapSteelDetail) {
		steel := q.Steel
		out.Steel = &steel
	} else {
		out.Locked = append(out.Locked, access.CapSteelDetail)
	}
	q.Steel = materials.SteelBreakdown{}
	out.Quantities = q
	return out
}

// GET /materials/presets
func ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": Presets.List()})
}
