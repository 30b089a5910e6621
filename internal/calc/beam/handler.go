package beam

import (
	"net/http"

	"Buildcalc/internal/calc/form"
	"Buildcalc/internal/calc/sizing"
)

type Handler struct {
	Table sizing.Table
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	form.Calc(func(in Input) (Result, error) {
		return Calculate(h.Table, in)
	})(w, r)
}
