package joist

import (
	"net/http"

	"Buildcalc/internal/calc/form"
)

type Handler struct {
	Tables Tables
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	form.Calc(func(in Input) (Result, error) {
		return Calculate(h.Tables, in)
	})(w, r)
}
