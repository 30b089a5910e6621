package stairs

import (
	"math"

	"Buildcalc/internal/calc/form"
)

const (
	defaultMaxRiserIn   = 7.75
	defaultMinRiserIn   = 4
	defaultTreadDepthIn = 10

	// Comfortable stairs keep two risers plus one tread within this band.
	comfortMinIn = 24
	comfortMaxIn = 25

	maxTotalRiseIn  = 600
	maxRiserLimitIn = 12
	maxTreadDepthIn = 24
)

type Input struct {
	TotalRiseIn  float64 `json:"total_rise_in"`
	MaxRiserIn   float64 `json:"max_riser_in"`
	MinRiserIn   float64 `json:"min_riser_in"`
	TreadDepthIn float64 `json:"tread_depth_in"`
}

type Result struct {
	Risers           int     `json:"risers"`
	RiserHeightIn    float64 `json:"riser_height_in"`
	Treads           int     `json:"treads"`
	TotalRunIn       float64 `json:"total_run_in"`
	StringerLengthIn float64 `json:"stringer_length_in"`
	AngleDeg         float64 `json:"angle_deg"`
	Comfortable      bool    `json:"comfortable"`
	Notes            string  `json:"notes"`
}

// Calculate lays out a straight stair run. The riser count is always rounded up, so the
// riser height never exceeds the maximum.
func Calculate(in Input) (Result, error) {
	if in.MaxRiserIn == 0 {
		in.MaxRiserIn = defaultMaxRiserIn
	}
	if in.MinRiserIn == 0 {
		in.MinRiserIn = defaultMinRiserIn
	}
	if in.TreadDepthIn == 0 {
		in.TreadDepthIn = defaultTreadDepthIn
	}

	var errs form.Errors
	errs.Limit("Total rise", in.TotalRiseIn, maxTotalRiseIn)
	errs.Limit("Maximum riser height", in.MaxRiserIn, maxRiserLimitIn)
	errs.Limit("Minimum riser height", in.MinRiserIn, maxRiserLimitIn)
	errs.Limit("Tread depth", in.TreadDepthIn, maxTreadDepthIn)
	if in.MinRiserIn > in.MaxRiserIn {
		errs.Add("Minimum riser height cannot exceed the maximum")
	}
	if err := errs.Err(); err != nil {
		return Result{}, err
	}

	risers := int(math.Ceil(in.TotalRiseIn / in.MaxRiserIn))
	riser := in.TotalRiseIn / float64(risers)
	if riser < in.MinRiserIn {
		return Result{}, form.Errors{"Total rise is too small for a stair; use a single step or ramp"}
	}

	treads := risers - 1
	run := float64(treads) * in.TreadDepthIn
	stringer := math.Hypot(in.TotalRiseIn, run)
	angle := 90.0
	if run > 0 {
		angle = math.Atan(in.TotalRiseIn/run) * 180 / math.Pi
	}
	comfort := 2*riser + in.TreadDepthIn

	return Result{
		Risers:           risers,
		RiserHeightIn:    form.Round(riser, 3),
		Treads:           treads,
		TotalRunIn:       form.Round(run, 2),
		StringerLengthIn: form.Round(stringer, 2),
		AngleDeg:         form.Round(angle, 1),
		Comfortable:      comfort >= comfortMinIn && comfort <= comfortMaxIn,
		Notes:            "Treads exclude nosing. Top tread is the landing.",
	}, nil
}
