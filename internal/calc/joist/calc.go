package joist

import (
	"fmt"

	"Buildcalc/internal/calc/form"
	"Buildcalc/internal/calc/sizing"
)

const (
	defaultSpacingIn   = 16
	defaultLiveLoadPSF = 40
	defaultDeadLoadPSF = 10
)

// Tables looks up capacity tables by name.
type Tables interface {
	Get(name string) (sizing.Table, bool)
}

// TableName is the capacity table for joists at the given on-center spacing.
func TableName(spacingIn float64) string {
	return fmt.Sprintf("joist-%g", spacingIn)
}

type Input struct {
	SpanFt      float64 `json:"span_ft"`
	SpacingIn   float64 `json:"spacing_in"` // 12, 16 or 24 on center
	LiveLoadPSF float64 `json:"live_load_psf"`
	DeadLoadPSF float64 `json:"dead_load_psf"`
}

type Result struct {
	SpanFt       float64 `json:"span_ft"`
	SpacingIn    float64 `json:"spacing_in"`
	TotalLoadPSF float64 `json:"total_load_psf"`
	sizing.Outcome
	Notes string `json:"notes"`
}

func Calculate(set Tables, in Input) (Result, error) {
	if in.SpacingIn == 0 {
		in.SpacingIn = defaultSpacingIn
	}
	if in.LiveLoadPSF == 0 {
		in.LiveLoadPSF = defaultLiveLoadPSF
	}
	if in.DeadLoadPSF == 0 {
		in.DeadLoadPSF = defaultDeadLoadPSF
	}

	var errs form.Errors
	errs.Positive("Joist span", in.SpanFt)
	errs.OneOf("Joist spacing", in.SpacingIn, 12, 16, 24)
	errs.Positive("Live load", in.LiveLoadPSF)
	errs.Positive("Dead load", in.DeadLoadPSF)
	if err := errs.Err(); err != nil {
		return Result{}, err
	}

	table, ok := set.Get(TableName(in.SpacingIn))
	if !ok {
		return Result{}, fmt.Errorf("joist table for %g in spacing is not loaded", in.SpacingIn)
	}

	total := in.LiveLoadPSF + in.DeadLoadPSF
	warning := fmt.Sprintf(
		"No standard joist spans %.1f ft at %g in on center under %.0f psf. Tighten the spacing, add a beam to shorten the span, or consult an engineer about engineered I-joists.",
		in.SpanFt, in.SpacingIn, total)
	out, err := sizing.Resolve(table, sizing.Query{RequiredCapacity: total, RequiredSpan: in.SpanFt}, warning)
	if err != nil {
		return Result{}, err
	}

	return Result{
		SpanFt:       in.SpanFt,
		SpacingIn:    in.SpacingIn,
		TotalLoadPSF: total,
		Outcome:      out,
		Notes:        "Floor joists, deflection limited to L/360.",
	}, nil
}
