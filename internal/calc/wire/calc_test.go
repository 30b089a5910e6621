package wire

import (
	"errors"
	"math"
	"testing"

	"Buildcalc/internal/calc/form"
	"Buildcalc/internal/calc/sizing"
	"Buildcalc/internal/calc/tables"
)

func wireTable(t *testing.T) sizing.Table {
	t.Helper()
	set, err := tables.Default()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}
	table, ok := set.Get(TableName)
	if !ok {
		t.Fatalf("table %q missing", TableName)
	}
	return table
}

func TestCalculate(t *testing.T) {
	table := wireTable(t)

	tests := []struct {
		name     string
		in       Input
		wantSize string
		wantUtil int
	}{
		{"20 A at 50 ft on 120 V", Input{LoadAmps: 20, DistanceFt: 50}, "10", 69},
		{"240 V halves the equivalent run", Input{LoadAmps: 20, DistanceFt: 50, Voltage: 240}, "12", 100},
		{"continuous load factor", Input{LoadAmps: 16, DistanceFt: 25, Continuous: true}, "12", 100},
		{"short light circuit", Input{LoadAmps: 10, DistanceFt: 25}, "14", 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(table, tt.in)
			if err != nil {
				t.Fatalf("Calculate failed: %v", err)
			}
			if res.Status != sizing.StatusAdequate {
				t.Fatalf("Expected adequate, got %s (%s)", res.Status, res.Warning)
			}
			if res.Recommended.Size != tt.wantSize || res.Recommended.UtilizationPercent != tt.wantUtil {
				t.Errorf("recommended = %+v, want %s at %d%%", res.Recommended, tt.wantSize, tt.wantUtil)
			}
		})
	}
}

func TestCalculateVoltageDrop(t *testing.T) {
	res, err := Calculate(wireTable(t), Input{LoadAmps: 20, DistanceFt: 50})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// 2 * 12.9 * 20 * 50 / 10380
	if res.VoltageDropV != 2.49 {
		t.Errorf("Expected 2.49 V drop, got %v", res.VoltageDropV)
	}
	if res.VoltageDropPercent != 2.07 {
		t.Errorf("Expected 2.07%% drop, got %v", res.VoltageDropPercent)
	}
	if res.VoltageDropPercent > 3 {
		t.Error("recommended gauge exceeds the drop budget")
	}
}

func TestCalculateNoAdequateGauge(t *testing.T) {
	res, err := Calculate(wireTable(t), Input{LoadAmps: 200, DistanceFt: 100})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.Status != sizing.StatusNoAdequateSize || res.Warning == "" {
		t.Errorf("Expected warning outcome, got %+v", res.Outcome)
	}
	if res.VoltageDropV != 0 {
		t.Errorf("No drop should be reported without a recommendation, got %v", res.VoltageDropV)
	}
}

func TestCalculateValidation(t *testing.T) {
	_, err := Calculate(wireTable(t), Input{LoadAmps: 0, DistanceFt: 50, Voltage: 1000, MaxDropPercent: 20})
	var errs form.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("Expected form.Errors, got %v", err)
	}
	if len(errs) != 3 {
		t.Errorf("Expected 3 messages, got %v", errs)
	}
}

func TestVoltageDrop(t *testing.T) {
	got := VoltageDrop(15, 100, 4110)
	want := 2 * 12.9 * 15 * 100 / 4110.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("VoltageDrop = %v, want %v", got, want)
	}
}
