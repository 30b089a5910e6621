package importer

import (
	"fmt"
	"io"
	"sort"

	"Buildcalc/internal/calc/sizing"

	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Results"

// WriteTable writes a capacity table as a grid: one row per size, one column per
// sampled span. Spans a size was not measured at are left empty.
func WriteTable(w io.Writer, t sizing.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if t.Name != "" {
		if err := f.SetSheetName(sheet, t.Name); err != nil {
			return err
		}
		sheet = t.Name
	}

	spans := distinctSpans(t)
	header := make([]interface{}, 0, len(spans)+1)
	header = append(header, fmt.Sprintf("Size (%s)", t.CapacityUnit))
	for _, s := range spans {
		header = append(header, fmt.Sprintf("%g %s", s, t.SpanUnit))
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, size := range t.Sizes {
		byspan := make(map[float64]float64, len(size.Samples))
		for _, s := range size.Samples {
			byspan[s.Span] = s.Capacity
		}
		row := make([]interface{}, 0, len(spans)+1)
		row = append(row, size.Key)
		for _, s := range spans {
			if c, ok := byspan[s]; ok {
				row = append(row, c)
			} else {
				row = append(row, nil)
			}
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func distinctSpans(t sizing.Table) []float64 {
	seen := map[float64]bool{}
	var spans []float64
	for _, size := range t.Sizes {
		for _, s := range size.Samples {
			if !seen[s.Span] {
				seen[s.Span] = true
				spans = append(spans, s.Span)
			}
		}
	}
	sort.Float64s(spans)
	return spans
}

// WriteResults writes a sized batch, one row per input row.
func WriteResults(w io.Writer, b BatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return err
	}
	header := []interface{}{"Line", "Label", "Span", "Required", "Status", "Recommended", "Capacity", "Utilization %", "Error"}
	if err := setRow(f, resultsSheet, 1, header); err != nil {
		return err
	}
	for i, r := range b.Results {
		row := []interface{}{r.Line, r.Label, r.Span, r.RequiredCapacity, string(r.Status), r.Recommended, nil, nil, r.Err}
		if r.Status == sizing.StatusAdequate {
			row[6] = r.Capacity
			row[7] = r.Utilization
		}
		if err := setRow(f, resultsSheet, i+2, row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func setRow(f *excelize.File, sheet string, line int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
