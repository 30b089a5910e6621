// Package importer sizes batches of queries read from spreadsheets and exports
// capacity tables and batch results as .xlsx workbooks.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Buildcalc/internal/calc/sizing"

	"github.com/xuri/excelize/v2"
)

// Row is one query read from a sheet.
type Row struct {
	Line             int     `json:"line"`
	Label            string  `json:"label"`
	Span             float64 `json:"span"`
	RequiredCapacity float64 `json:"required_capacity"`
	Err              string  `json:"error,omitempty"`
}

// RowResult is the sizing outcome for one row.
type RowResult struct {
	Row
	Status      sizing.Status `json:"status,omitempty"`
	Recommended string        `json:"recommended,omitempty"`
	Capacity    float64       `json:"capacity,omitempty"`
	Utilization int           `json:"utilization_percent,omitempty"`
}

// BatchResult summarizes a batch.
type BatchResult struct {
	Table   string      `json:"table"`
	Count   int         `json:"count"`
	Sized   int         `json:"sized"`
	Results []RowResult `json:"results"`
}

// ReadRows parses the first sheet of a workbook. The first row is a header;
// the columns are label, span and required capacity.
func ReadRows(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var out []Row
	for i := 1; i < len(rows); i++ {
		cells := rows[i]
		if blank(cells) {
			continue
		}
		out = append(out, parseRow(i+1, cells))
	}
	return out, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseRow(line int, cells []string) Row {
	row := Row{Line: line}
	if len(cells) < 3 {
		row.Err = "expected label, span and required capacity"
		return row
	}
	row.Label = strings.TrimSpace(cells[0])

	var err error
	if row.Span, err = toFloat(cells[1]); err != nil {
		row.Err = "span is not a number"
		return row
	}
	if row.RequiredCapacity, err = toFloat(cells[2]); err != nil {
		row.Err = "required capacity is not a number"
	}
	return row
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Size runs every row through the engine. Rows that fail keep their error message
// and do not stop the batch.
func Size(table sizing.Table, rows []Row) BatchResult {
	out := BatchResult{Table: table.Name, Count: len(rows), Results: make([]RowResult, 0, len(rows))}
	for _, row := range rows {
		res := RowResult{Row: row}
		if row.Err == "" {
			sizeRow(table, &res)
		}
		if res.Status == sizing.StatusAdequate {
			out.Sized++
		}
		out.Results = append(out.Results, res)
	}
	return out
}

func sizeRow(table sizing.Table, res *RowResult) {
	sel, err := sizing.FindAdequateSizes(table, sizing.Query{
		RequiredCapacity: res.RequiredCapacity,
		RequiredSpan:     res.Span,
	})
	switch {
	case errors.Is(err, sizing.ErrNoAdequateSize):
		res.Status = sizing.StatusNoAdequateSize
	case err != nil:
		res.Err = err.Error()
	default:
		rec := sel.Recommended()
		res.Status = sizing.StatusAdequate
		res.Recommended = rec.Size
		res.Capacity = rec.InterpolatedCapacity
		res.Utilization = rec.UtilizationPercent
	}
}
