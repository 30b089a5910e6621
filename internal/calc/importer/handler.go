package importer

import (
	"fmt"
	"net/http"

	"Buildcalc/internal/calc/form"
	"Buildcalc/internal/calc/sizing"
	"Buildcalc/internal/logger"

	"github.com/gorilla/mux"
)

const maxUploadSize = 10 << 20 // 10MB

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Tables looks up capacity tables by name.
type Tables interface {
	Get(name string) (sizing.Table, bool)
}

type Handler struct {
	Tables Tables
}

func (h *Handler) table(w http.ResponseWriter, r *http.Request) (sizing.Table, bool) {
	t, ok := h.Tables.Get(mux.Vars(r)["name"])
	if !ok {
		http.Error(w, "Table not found", http.StatusNotFound)
	}
	return t, ok
}

// Import sizes every row of an uploaded workbook against the table named in the path.
// Pass ?format=xlsx to get the results back as a workbook instead of JSON.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	table, ok := h.table(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := ReadRows(file)
	if err != nil {
		form.JSON(w, http.StatusUnprocessableEntity, form.ErrorBody{Errors: []string{err.Error()}})
		return
	}
	batch := Size(table, rows)
	logger.Debug("sized %d of %d rows against %s", batch.Sized, batch.Count, table.Name)

	if r.URL.Query().Get("format") == "xlsx" {
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", table.Name+"-results.xlsx"))
		if err := WriteResults(w, batch); err != nil {
			logger.Error("write results workbook: %v", err)
		}
		return
	}
	form.JSON(w, http.StatusOK, batch)
}

// Export downloads the table named in the path as a workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	table, ok := h.table(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", table.Name+".xlsx"))
	if err := WriteTable(w, table); err != nil {
		logger.Error("write table workbook: %v", err)
	}
}
