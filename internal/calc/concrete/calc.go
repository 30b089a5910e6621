package concrete

import (
	"math"

	"Buildcalc/internal/calc/form"
)

const (
	cubicFeetPerYard = 27.0

	// Yield of premixed bags in cubic feet.
	bag80Yield = 0.60
	bag60Yield = 0.45

	defaultWastePercent = 10

	maxDimensionFt = 1000
)

type Input struct {
	LengthFt     float64  `json:"length_ft"`
	WidthFt      float64  `json:"width_ft"`
	ThicknessIn  float64  `json:"thickness_in"`
	WastePercent *float64 `json:"waste_percent"` // nil means the default allowance
}

type Result struct {
	CubicFeet    float64 `json:"cubic_feet"`
	CubicYards   float64 `json:"cubic_yards"`
	WastePercent float64 `json:"waste_percent"`
	Bags80Lb     int     `json:"bags_80lb"`
	Bags60Lb     int     `json:"bags_60lb"`
	Notes        string  `json:"notes"`
}

// Calculate estimates concrete for a rectangular slab, including a waste allowance.
func Calculate(in Input) (Result, error) {
	waste := float64(defaultWastePercent)
	if in.WastePercent != nil {
		waste = *in.WastePercent
	}

	var errs form.Errors
	errs.Limit("Length", in.LengthFt, maxDimensionFt)
	errs.Limit("Width", in.WidthFt, maxDimensionFt)
	errs.Range("Thickness", in.ThicknessIn, 1, 48)
	errs.Range("Waste allowance", waste, 0, 50)
	if err := errs.Err(); err != nil {
		return Result{}, err
	}

	cubicFeet := in.LengthFt * in.WidthFt * (in.ThicknessIn / 12) * (1 + waste/100)

	return Result{
		CubicFeet:    form.Round(cubicFeet, 2),
		CubicYards:   form.Round(cubicFeet/cubicFeetPerYard, 2),
		WastePercent: waste,
		Bags80Lb:     int(math.Ceil(cubicFeet / bag80Yield)),
		Bags60Lb:     int(math.Ceil(cubicFeet / bag60Yield)),
		Notes:        "Order ready-mix by the yard above roughly one cubic yard.",
	}, nil
}
