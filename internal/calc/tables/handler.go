package tables

import (
	"net/http"

	"Buildcalc/internal/calc/form"

	"github.com/gorilla/mux"
)

type Handler struct {
	Set *Set
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	form.JSON(w, http.StatusOK, h.Set.Summaries())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, ok := h.Set.Get(mux.Vars(r)["name"])
	if !ok {
		http.Error(w, "Table not found", http.StatusNotFound)
		return
	}
	form.JSON(w, http.StatusOK, t)
}
