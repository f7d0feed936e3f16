package reports

import (
	"fmt"
	"time"

	"construlab/internal/domain/materials"
	"construlab/internal/domain/units"
	"construlab/internal/i18n"
)

// ProductName is printed on reports without white-label branding.
const ProductName = "ConstruLab"

type Branding struct {
	CompanyName string
	LogoURL     string
}

// Input is everything a report needs. Quantities are SI; conversion to the
// display system happens in Build.
type Input struct {
	ProjectName string
	AreaM2      float64
	Quantities  materials.Quantities
	Config      materials.Config
	System      units.System
	Branding    *Branding
	SteelDetail bool
	GeneratedAt time.Time
}

type Row struct {
	Key      string
	Label    string
	Quantity float64
	Text     string
	Unit     string
	Note     string
}

type SteelRow struct {
	Label  string
	Detail string
	Weight float64
	Text   string
}

// Report is the localised, display-ready document shared by the PDF and XLSX
// renderers.
type Report struct {
	Lang        string
	L           map[string]string
	Brand       string
	LogoURL     string
	WhiteLabel  bool
	ProjectName string
	Structure   string
	AreaText    string
	VolumeText  string
	MixText     string
	Rows        []Row
	SteelType   string
	Steel       []SteelRow
	CostText    string
	Cost        float64
	GeneratedAt string
}

var labelKeys = []string{
	"report_title", "summary", "structure_type", "area", "total_volume", "mix",
	"materials", "material", "quantity", "unit", "notes", "steel_detail",
	"estimated_cost", "disclaimer_title", "disclaimer_text", "generated_by", "generated_at",
}

func Build(in Input, l *i18n.Localizer) Report {
	d := materials.Display(in.Quantities, in.System)
	lbl := d.Labels
	q := in.Quantities

	r := Report{
		Lang:        l.Lang(),
		L:           make(map[string]string, len(labelKeys)),
		Brand:       ProductName,
		ProjectName: in.ProjectName,
		GeneratedAt: in.GeneratedAt.Format("2006-01-02 15:04"),
	}
	for _, k := range labelKeys {
		r.L[k] = l.T(k)
	}

	if in.Branding != nil && in.Branding.CompanyName != "" {
		r.Brand = in.Branding.CompanyName
		r.LogoURL = in.Branding.LogoURL
		r.WhiteLabel = true
	}

	if q.Mode == materials.ModeBox {
		r.Structure = l.T("box")
	} else {
		r.Structure = l.T("slab")
	}

	if in.AreaM2 > 0 {
		r.AreaText = l.Number(units.FromSI(in.AreaM2, units.Area, in.System), 2) + " " + lbl.Area
	}
	r.VolumeText = l.Number(d.Volume, 3) + " " + lbl.Volume
	r.MixText = fmt.Sprintf("%skg %s | %sm³ %s | %sm³ %s",
		l.Number(in.Config.CementKgPerM3, 0), l.T("cement"),
		l.Number(in.Config.SandM3PerM3, 2), l.T("sand"),
		l.Number(in.Config.GravelM3PerM3, 2), l.T("gravel"),
	)

	r.Rows = []Row{
		{Key: "cement", Label: l.T("cement"), Quantity: d.Cement, Text: l.Number(d.Cement, 1), Unit: lbl.Weight,
			Note: fmt.Sprintf("~%d %s", d.CementBags, l.T("bags"))},
		{Key: "sand", Label: l.T("sand"), Quantity: d.Sand, Text: l.Number(d.Sand, 2), Unit: lbl.Volume, Note: "-"},
		{Key: "gravel", Label: l.T("gravel"), Quantity: d.Gravel, Text: l.Number(d.Gravel, 2), Unit: lbl.Volume, Note: l.T("gravel_note")},
		{Key: "water", Label: l.T("water"), Quantity: d.Water, Text: l.Number(d.Water, 1), Unit: lbl.Liquid, Note: l.T("water_note")},
		{Key: "steel", Label: l.T("steel"), Quantity: (d.SteelMin + d.SteelMax) / 2,
			Text: l.Number(d.SteelMin, 0) + " - " + l.Number(d.SteelMax, 0), Unit: lbl.Weight, Note: l.T("steel_note")},
	}

	if in.SteelDetail {
		r.SteelType = l.T(q.Steel.Type)
		for _, p := range q.Steel.Parts {
			w := units.FromSI(p.WeightKg, units.Weight, in.System)
			r.Steel = append(r.Steel, SteelRow{
				Label:  l.T(p.Key),
				Detail: p.Detail,
				Weight: w,
				Text:   "~" + l.Number(w, 1) + " " + lbl.Weight,
			})
		}
	}

	r.Cost = q.Cost
	r.CostText = l.Number(q.Cost, 2) + " €"
	return r
}
