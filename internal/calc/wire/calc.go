package wire

import (
	"fmt"

	"Buildcalc/internal/calc/form"
	"Buildcalc/internal/calc/sizing"
)

// TableName is the capacity table the wire calculator reads.
const TableName = "wire"

const (
	// The wire table is tabulated at this voltage and drop budget.
	tableVoltage     = 120.0
	tableDropPercent = 3.0

	// copperK is the resistivity constant of copper in ohm-cmil/ft.
	copperK = 12.9

	continuousFactor = 1.25
)

type Input struct {
	LoadAmps       float64 `json:"load_amps"`
	DistanceFt     float64 `json:"distance_ft"` // one way
	Voltage        float64 `json:"voltage"`
	MaxDropPercent float64 `json:"max_drop_percent"`
	Continuous     bool    `json:"continuous"` // load runs 3 hours or more
}

type Result struct {
	RequiredAmps         float64 `json:"required_amps"`
	EquivalentDistanceFt float64 `json:"equivalent_distance_ft"`
	sizing.Outcome
	VoltageDropV       float64 `json:"voltage_drop_v,omitempty"`
	VoltageDropPercent float64 `json:"voltage_drop_percent,omitempty"`
	Notes              string  `json:"notes"`
}

// Calculate picks the smallest copper gauge that carries the load within both its
// ampacity and the voltage drop budget.
func Calculate(table sizing.Table, in Input) (Result, error) {
	if in.Voltage == 0 {
		in.Voltage = tableVoltage
	}
	if in.MaxDropPercent == 0 {
		in.MaxDropPercent = tableDropPercent
	}

	var errs form.Errors
	errs.Positive("Load current", in.LoadAmps)
	errs.Positive("Circuit length", in.DistanceFt)
	errs.Range("Voltage", in.Voltage, 12, 600)
	errs.Range("Maximum voltage drop", in.MaxDropPercent, 0.5, 10)
	if err := errs.Err(); err != nil {
		return Result{}, err
	}

	required := in.LoadAmps
	if in.Continuous {
		required *= continuousFactor
	}
	// Drop-limited current scales with V*pct/L, so a run at another voltage or budget
	// reads the table at a scaled distance.
	equivalent := in.DistanceFt * (tableVoltage * tableDropPercent) / (in.Voltage * in.MaxDropPercent)

	warning := fmt.Sprintf(
		"No listed gauge carries %.1f A over %.0f ft within %g%% drop. Split the load across circuits, raise the circuit voltage, or consult an electrician about a feeder.",
		required, in.DistanceFt, in.MaxDropPercent)
	out, err := sizing.Resolve(table, sizing.Query{RequiredCapacity: required, RequiredSpan: equivalent}, warning)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		RequiredAmps:         form.Round(required, 2),
		EquivalentDistanceFt: form.Round(equivalent, 1),
		Outcome:              out,
		Notes:                "Copper conductors. Check breaker size and local code.",
	}
	if out.Recommended != nil {
		if size, ok := table.Lookup(out.Recommended.Size); ok && size.Attributes["circular_mils"] > 0 {
			vd := VoltageDrop(in.LoadAmps, in.DistanceFt, size.Attributes["circular_mils"])
			res.VoltageDropV = form.Round(vd, 2)
			res.VoltageDropPercent = form.Round(vd/in.Voltage*100, 2)
		}
	}
	return res, nil
}

// VoltageDrop is the single-phase drop across a copper run of the given one-way length.
func VoltageDrop(amps, distanceFt, circularMils float64) float64 {
	return 2 * copperK * amps * distanceFt / circularMils
}
