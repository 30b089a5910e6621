package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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

func TestRender(t *testing.T) {
	beam, _ := loadTables(t).Get("beam")

	tests := []struct {
		name string
		in   Input
	}{
		{"adequate", Input{Project: "Deck", Table: "beam", RequiredCapacity: 750, Span: 11, Notes: "Ledger-attached deck."}},
		{"no adequate size", Input{Table: "beam", RequiredCapacity: 100000, Span: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, tt.in, beam, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
				t.Error("output is not a PDF")
			}
		})
	}
}

func TestRenderInvalidQuery(t *testing.T) {
	beam, _ := loadTables(t).Get("beam")
	var buf bytes.Buffer
	if err := Render(&buf, Input{Table: "beam", RequiredCapacity: 750, Span: 0}, beam, time.Now()); err == nil {
		t.Error("expected error for zero span")
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{Tables: loadTables(t)}

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"pdf", `{"table": "joist-16", "required_capacity": 50, "span": 12}`, http.StatusOK},
		{"unknown table", `{"table": "rafter", "required_capacity": 50, "span": 12}`, http.StatusUnprocessableEntity},
		{"missing fields", `{"table": ""}`, http.StatusUnprocessableEntity},
		{"malformed", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/reports/sizing", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.Generate(rr, req)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if tt.wantStatus == http.StatusOK && rr.Header().Get("Content-Type") != "application/pdf" {
				t.Errorf("unexpected content type %q", rr.Header().Get("Content-Type"))
			}
		})
	}
}
