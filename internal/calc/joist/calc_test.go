package joist

import (
	"errors"
	"testing"

	"Buildcalc/internal/calc/form"
	"Buildcalc/internal/calc/sizing"
	"Buildcalc/internal/calc/tables"
)

func loadTables(t *testing.T) *tables.Set {
	t.Helper()
	set, err := tables.Default()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}
	return set
}

func TestCalculate(t *testing.T) {
	set := loadTables(t)

	tests := []struct {
		name       string
		in         Input
		wantSize   string
		wantUtil   int
		wantStatus sizing.Status
	}{
		{"defaults at 12 ft", Input{SpanFt: 12}, "2x10", 63, sizing.StatusAdequate},
		{"24 in spacing", Input{SpanFt: 12, SpacingIn: 24}, "2x10", 94, sizing.StatusAdequate},
		{"short span", Input{SpanFt: 6, SpacingIn: 12}, "2x6", 34, sizing.StatusAdequate},
		{"too long", Input{SpanFt: 22}, "", 0, sizing.StatusNoAdequateSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(set, tt.in)
			if err != nil {
				t.Fatalf("Calculate failed: %v", err)
			}
			if res.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s", res.Status, tt.wantStatus)
			}
			if tt.wantStatus != sizing.StatusAdequate {
				if res.Warning == "" {
					t.Error("expected a warning")
				}
				return
			}
			if res.Recommended.Size != tt.wantSize || res.Recommended.UtilizationPercent != tt.wantUtil {
				t.Errorf("recommended = %+v, want %s at %d%%", res.Recommended, tt.wantSize, tt.wantUtil)
			}
		})
	}
}

func TestCalculateValidation(t *testing.T) {
	_, err := Calculate(loadTables(t), Input{SpanFt: -4, SpacingIn: 19.2})
	var errs form.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("Expected form.Errors, got %v", err)
	}
	if len(errs) != 2 {
		t.Errorf("Expected span and spacing messages, got %v", errs)
	}
}

func TestTableName(t *testing.T) {
	if got := TableName(16); got != "joist-16" {
		t.Errorf("TableName(16) = %q", got)
	}
}
