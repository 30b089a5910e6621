package lumber

import (
	"errors"
	"testing"

	"Buildcalc/internal/calc/form"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		wantEach float64
		wantAll  float64
		wantCost float64
	}{
		{"single 2x12x8", Input{ThicknessIn: 2, WidthIn: 12, LengthFt: 8}, 16, 16, 0},
		{"ten 2x4x8 priced", Input{ThicknessIn: 2, WidthIn: 4, LengthFt: 8, Quantity: 10, PricePerBoardFoot: 1.25}, 5.333, 53.33, 66.67},
		{"hardwood 4/4", Input{ThicknessIn: 1, WidthIn: 6, LengthFt: 10, Quantity: 3, PricePerBoardFoot: 6.5}, 5, 15, 97.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(tt.in)
			if err != nil {
				t.Fatalf("Calculate failed: %v", err)
			}
			if res.BoardFeetEach != tt.wantEach || res.BoardFeet != tt.wantAll || res.Cost != tt.wantCost {
				t.Errorf("got %+v, want each=%v total=%v cost=%v", res, tt.wantEach, tt.wantAll, tt.wantCost)
			}
		})
	}
}

func TestCalculateValidation(t *testing.T) {
	_, err := Calculate(Input{ThicknessIn: 2, WidthIn: 0, LengthFt: 8, Quantity: -2, PricePerBoardFoot: -1})
	var errs form.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("Expected form.Errors, got %v", err)
	}
	if len(errs) != 3 {
		t.Errorf("Expected 3 messages, got %v", errs)
	}
}

func TestCalculateUpperLimits(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want string
	}{
		{"thickness", Input{ThicknessIn: 25, WidthIn: 6, LengthFt: 8}, "Thickness cannot exceed 24"},
		{"width", Input{ThicknessIn: 2, WidthIn: 49, LengthFt: 8}, "Width cannot exceed 48"},
		{"length", Input{ThicknessIn: 2, WidthIn: 6, LengthFt: 1e12}, "Length cannot exceed 100"},
		{"quantity", Input{ThicknessIn: 2, WidthIn: 6, LengthFt: 8, Quantity: 100001}, "Quantity cannot exceed 100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			var errs form.Errors
			if !errors.As(err, &errs) || len(errs) != 1 || errs[0] != tt.want {
				t.Errorf("Expected %q, got %v", tt.want, err)
			}
		})
	}
}
