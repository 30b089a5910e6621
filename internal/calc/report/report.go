package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"Buildcalc/internal/calc/form"
	"Buildcalc/internal/calc/sizing"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project          string  `json:"project"`
	Author           string  `json:"author"`
	Title            string  `json:"title"`
	Table            string  `json:"table"`
	RequiredCapacity float64 `json:"required_capacity"`
	Span             float64 `json:"span"`
	Notes            string  `json:"notes"`
}

// Validate reports missing or non-positive fields.
func (in Input) Validate() error {
	var errs form.Errors
	if in.Table == "" {
		errs.Add("Table is required")
	}
	errs.Positive("Required capacity", in.RequiredCapacity)
	errs.Positive("Span", in.Span)
	return errs.Err()
}

// Render writes a one-page PDF listing every size of the table against the query.
func Render(w io.Writer, in Input, table sizing.Table, now time.Time) error {
	if in.Title == "" {
		in.Title = "Sizing Report"
	}
	q := sizing.Query{RequiredCapacity: in.RequiredCapacity, RequiredSpan: in.Span}
	evals, err := sizing.Evaluate(table, q)
	if err != nil {
		return err
	}
	sel, err := sizing.FindAdequateSizes(table, q)
	if err != nil && !errors.Is(err, sizing.ErrNoAdequateSize) {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, table.Title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Required: %g %s over %g %s", in.RequiredCapacity, table.CapacityUnit, in.Span, table.SpanUnit))
	pdf.Ln(6)
	if len(sel.Options) > 0 {
		rec := sel.Recommended()
		pdf.Cell(0, 6, fmt.Sprintf("Recommended: %s (%.0f %s, %d%% utilized)", rec.Size, rec.InterpolatedCapacity, table.CapacityUnit, rec.UtilizationPercent))
	} else {
		pdf.SetTextColor(180, 0, 0)
		pdf.Cell(0, 6, "No listed size is adequate. Shorten the span or consult an engineer.")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(10)

	widths := []float64{40, 45, 40, 45}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Size", "Capacity (" + table.CapacityUnit + ")", "Utilization", "Result"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, ev := range evals {
		capacity, util, verdict := "-", "-", "beyond table"
		if ev.Applicable {
			capacity = fmt.Sprintf("%.0f", ev.Capacity)
			util = fmt.Sprintf("%d%%", ev.UtilizationPercent)
			verdict = "inadequate"
			if ev.Adequate {
				verdict = "adequate"
			}
		}
		for i, cell := range []string{ev.Size, capacity, util, verdict} {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if in.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}

	return pdf.Output(w)
}
