package reports

import (
	"bytes"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Materials"

// RenderXLSX writes one sheet with a row per material. Quantities are written
// as numbers so the spreadsheet can recompute from them.
func RenderXLSX(r Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	w := &sheetWriter{f: f, sheet: sheetName}
	w.set("A1", r.Brand)
	w.set("B1", r.ProjectName)
	w.set("C1", r.GeneratedAt)
	w.set("A2", r.L["structure_type"])
	w.set("B2", r.Structure)
	w.set("A3", r.L["total_volume"])
	w.set("B3", r.VolumeText)

	headerRow := 5
	headers := []string{r.L["material"], r.L["quantity"], r.L["unit"], r.L["notes"]}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		w.set(cell, h)
	}

	row := headerRow + 1
	for _, m := range r.Rows {
		w.set(fmt.Sprintf("A%d", row), m.Label)
		w.set(fmt.Sprintf("B%d", row), round(m.Quantity, 3))
		w.set(fmt.Sprintf("C%d", row), m.Unit)
		w.set(fmt.Sprintf("D%d", row), m.Note)
		row++
	}

	for _, s := range r.Steel {
		w.set(fmt.Sprintf("A%d", row), s.Label)
		w.set(fmt.Sprintf("B%d", row), round(s.Weight, 3))
		w.set(fmt.Sprintf("D%d", row), s.Detail)
		row++
	}

	row++
	w.set(fmt.Sprintf("A%d", row), r.L["estimated_cost"])
	w.set(fmt.Sprintf("B%d", row), round(r.Cost, 2))
	w.set(fmt.Sprintf("C%d", row), "EUR")

	w.width("A", "A", 32)
	w.width("B", "D", 18)
	if w.err != nil {
		return nil, w.err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first excelize error and skips later writes.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(cell string, v any) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
		w.err = fmt.Errorf("set %s: %w", cell, err)
	}
}

func (w *sheetWriter) width(from, to string, width float64) {
	if w.err != nil {
		return
	}
	if err := w.f.SetColWidth(w.sheet, from, to, width); err != nil {
		w.err = fmt.Errorf("column width %s:%s: %w", from, to, err)
	}
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
