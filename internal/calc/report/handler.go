package report

import (
	"bytes"
	"net/http"
	"time"

	"Buildcalc/internal/calc/form"
	"Buildcalc/internal/calc/sizing"
)

// Tables looks up capacity tables by name.
type Tables interface {
	Get(name string) (sizing.Table, bool)
}

type Handler struct {
	Tables Tables
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := form.Decode(w, r, &input); err != nil {
		form.BadRequest(w)
		return
	}
	if err := input.Validate(); err != nil {
		form.Error(w, err)
		return
	}
	table, ok := h.Tables.Get(input.Table)
	if !ok {
		form.Error(w, form.Errors{"Unknown table " + input.Table})
		return
	}

	// Render into a buffer so a failure can still become a proper error response.
	var buf bytes.Buffer
	if err := Render(&buf, input, table, time.Now()); err != nil {
		form.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"sizing-report.pdf\"")
	_, _ = buf.WriteTo(w)
}
