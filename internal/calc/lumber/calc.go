package lumber

import (
	"Buildcalc/internal/calc/form"
)

const (
	maxThicknessIn = 24
	maxWidthIn     = 48
	maxLengthFt    = 100
	maxQuantity    = 100000
)

type Input struct {
	ThicknessIn       float64 `json:"thickness_in"` // nominal
	WidthIn           float64 `json:"width_in"`     // nominal
	LengthFt          float64 `json:"length_ft"`
	Quantity          int     `json:"quantity"`
	PricePerBoardFoot float64 `json:"price_per_board_foot"`
}

type Result struct {
	BoardFeetEach float64 `json:"board_feet_each"`
	BoardFeet     float64 `json:"board_feet"`
	Cost          float64 `json:"cost,omitempty"`
}

// Calculate converts a lumber order to board feet (1 bf = 144 cubic inches).
func Calculate(in Input) (Result, error) {
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	var errs form.Errors
	errs.Limit("Thickness", in.ThicknessIn, maxThicknessIn)
	errs.Limit("Width", in.WidthIn, maxWidthIn)
	errs.Limit("Length", in.LengthFt, maxLengthFt)
	errs.Limit("Quantity", float64(in.Quantity), maxQuantity)
	errs.NonNegative("Price per board foot", in.PricePerBoardFoot)
	if err := errs.Err(); err != nil {
		return Result{}, err
	}

	each := in.ThicknessIn * in.WidthIn * in.LengthFt / 12
	total := each * float64(in.Quantity)

	return Result{
		BoardFeetEach: form.Round(each, 3),
		BoardFeet:     form.Round(total, 2),
		Cost:          form.Round(total*in.PricePerBoardFoot, 2),
	}, nil
}
