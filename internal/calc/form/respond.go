package form

import (
	"encoding/json"
	"errors"
	"net/http"

	"Buildcalc/internal/calc/sizing"
	"Buildcalc/internal/logger"
)

// MaxBodySize bounds calculator request bodies.
const MaxBodySize = 1 << 20

// Decode reads a JSON request body into v.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	return json.NewDecoder(r.Body).Decode(v)
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode response: %v", err)
	}
}

// ErrorBody is the response for inputs that failed validation.
type ErrorBody struct {
	Errors []string `json:"errors"`
}

// Error maps a calculation error to a response. Validation failures become 422 with
// the list of messages; anything else is a 500.
func Error(w http.ResponseWriter, err error) {
	var verrs Errors
	var ierr *sizing.InputError
	switch {
	case errors.As(err, &verrs):
		JSON(w, http.StatusUnprocessableEntity, ErrorBody{Errors: verrs})
	case errors.As(err, &ierr):
		JSON(w, http.StatusUnprocessableEntity, ErrorBody{Errors: []string{ierr.Error()}})
	default:
		logger.Error("calculation failed: %v", err)
		http.Error(w, "Calculation error", http.StatusInternalServerError)
	}
}

// BadRequest answers a body that could not be decoded.
func BadRequest(w http.ResponseWriter) {
	http.Error(w, "Invalid request payload", http.StatusBadRequest)
}

// Calc builds a handler that decodes In, runs calc and writes the result.
func Calc[In, Out any](calc func(In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := Decode(w, r, &in); err != nil {
			BadRequest(w)
			return
		}
		out, err := calc(in)
		if err != nil {
			Error(w, err)
			return
		}
		JSON(w, http.StatusOK, out)
	}
}
