package lumber

import (
	"net/http"

	"Buildcalc/internal/calc/form"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	form.Calc(Calculate)(w, r)
}
