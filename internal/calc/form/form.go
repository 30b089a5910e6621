// Package form validates calculator inputs and writes calculator responses.
package form

import (
	"fmt"
	"math"
	"strings"
)

// Errors is a list of plain-language validation messages, one per failing field.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

// Err returns nil when nothing failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Add records a message.
func (e *Errors) Add(format string, args ...any) {
	*e = append(*e, fmt.Sprintf(format, args...))
}

// Positive requires a finite value greater than zero.
func (e *Errors) Positive(label string, v float64) {
	if !finite(v) || v <= 0 {
		e.Add("%s must be greater than zero", label)
	}
}

// NonNegative requires a finite value of zero or more.
func (e *Errors) NonNegative(label string, v float64) {
	if !finite(v) || v < 0 {
		e.Add("%s cannot be negative", label)
	}
}

// Limit requires a finite value greater than zero and no more than max.
func (e *Errors) Limit(label string, v, max float64) {
	switch {
	case !finite(v) || v <= 0:
		e.Add("%s must be greater than zero", label)
	case v > max:
		e.Add("%s cannot exceed %g", label, max)
	}
}

// Range requires min <= v <= max.
func (e *Errors) Range(label string, v, min, max float64) {
	if !finite(v) || v < min || v > max {
		e.Add("%s must be between %g and %g", label, min, max)
	}
}

// OneOf requires v to be one of allowed.
func (e *Errors) OneOf(label string, v float64, allowed ...float64) {
	for _, a := range allowed {
		if v == a {
			return
		}
	}
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = fmt.Sprintf("%g", a)
	}
	e.Add("%s must be one of %s", label, strings.Join(parts, ", "))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
