package beam

import (
	"fmt"

	"Buildcalc/internal/calc/form"
	"Buildcalc/internal/calc/sizing"
)

// TableName is the capacity table the beam calculator reads.
const TableName = "beam"

const (
	defaultDeadLoadPSF = 10
	defaultLiveLoadPSF = 40
)

type Input struct {
	SpanFt           float64  `json:"span_ft"`
	LoadPLF          float64  `json:"load_plf"`           // overrides the tributary load when set
	TributaryWidthFt float64  `json:"tributary_width_ft"` // half the joist span on each side
	DeadLoadPSF      *float64 `json:"dead_load_psf"`      // nil means the default
	LiveLoadPSF      *float64 `json:"live_load_psf"`      // nil means the default
}

type Result struct {
	SpanFt  float64 `json:"span_ft"`
	LoadPLF float64 `json:"load_plf"`
	sizing.Outcome
	Notes string `json:"notes"`
}

// Calculate sizes a simply supported built-up beam for a uniform load.
func Calculate(table sizing.Table, in Input) (Result, error) {
	dead, live := float64(defaultDeadLoadPSF), float64(defaultLiveLoadPSF)
	if in.DeadLoadPSF != nil {
		dead = *in.DeadLoadPSF
	}
	if in.LiveLoadPSF != nil {
		live = *in.LiveLoadPSF
	}

	var errs form.Errors
	errs.Positive("Beam span", in.SpanFt)
	if in.LoadPLF != 0 {
		errs.Positive("Load", in.LoadPLF)
	} else {
		errs.Positive("Tributary width", in.TributaryWidthFt)
		errs.NonNegative("Dead load", dead)
		errs.NonNegative("Live load", live)
		if dead+live == 0 {
			errs.Add("Dead and live load cannot both be zero")
		}
	}
	if err := errs.Err(); err != nil {
		return Result{}, err
	}

	load := in.LoadPLF
	if load == 0 {
		load = in.TributaryWidthFt * (dead + live)
	}

	warning := fmt.Sprintf(
		"No standard beam carries %.0f plf over %.1f ft. Add a post to shorten the span, or consult a structural engineer about an engineered beam.",
		load, in.SpanFt)
	out, err := sizing.Resolve(table, sizing.Query{RequiredCapacity: load, RequiredSpan: in.SpanFt}, warning)
	if err != nil {
		return Result{}, err
	}

	return Result{
		SpanFt:  in.SpanFt,
		LoadPLF: form.Round(load, 1),
		Outcome: out,
		Notes:   "Simply supported, uniform load. Verify bearing length and connections.",
	}, nil
}
