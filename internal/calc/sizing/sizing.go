// Package sizing selects the smallest adequate standard size from a capacity table.
//
// A table lists, for every size, the capacity measured at a few spans (or run
// distances). The engine interpolates between those samples, extrapolates a little
// past the last one, and ranks the sizes that carry the required capacity.
package sizing

import (
	"iter"
	"math"
	"sort"
)

// MaxExtrapolation is how far past the largest sampled span a capacity may still be
// estimated, as a fraction of that span.
const MaxExtrapolation = 0.20

// spanTolerance absorbs float noise when comparing against the extrapolation cutoff.
const spanTolerance = 1e-9

// Sample is one measured point of a size's capacity curve.
type Sample struct {
	Span     float64 `json:"span" yaml:"span"`
	Capacity float64 `json:"capacity" yaml:"capacity"`
}

// Size is one standard product size and its capacity samples, sorted by span.
type Size struct {
	Key        string             `json:"size" yaml:"size"`
	Samples    []Sample           `json:"samples" yaml:"samples"`
	Attributes map[string]float64 `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Table is an ordered set of sizes sharing span and capacity units.
type Table struct {
	Name         string `json:"name" yaml:"name"`
	Title        string `json:"title" yaml:"title"`
	SpanUnit     string `json:"span_unit" yaml:"span_unit"`
	CapacityUnit string `json:"capacity_unit" yaml:"capacity_unit"`
	Sizes        []Size `json:"sizes" yaml:"sizes"`
}

// Lookup returns the size with the given key.
func (t Table) Lookup(key string) (Size, bool) {
	for _, s := range t.Sizes {
		if s.Key == key {
			return s, true
		}
	}
	return Size{}, false
}

// Query is a single sizing request.
type Query struct {
	RequiredCapacity float64 `json:"required_capacity"`
	RequiredSpan     float64 `json:"required_span"`
}

// Validate rejects non-finite, zero and negative values.
func (q Query) Validate() error {
	if err := positive("required capacity", q.RequiredCapacity); err != nil {
		return err
	}
	return positive("required span", q.RequiredSpan)
}

func positive(field string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return invalid(field, "must be a number")
	case v <= 0:
		return invalid(field, "must be greater than zero")
	}
	return nil
}

// SizeOption is an adequate size for a query.
type SizeOption struct {
	Size                 string  `json:"size"`
	InterpolatedCapacity float64 `json:"interpolated_capacity"`
	UtilizationPercent   int     `json:"utilization_percent"`
}

// Evaluation reports how one size fares against a query, adequate or not.
type Evaluation struct {
	Size               string  `json:"size"`
	Capacity           float64 `json:"capacity"`
	Applicable         bool    `json:"applicable"`
	Adequate           bool    `json:"adequate"`
	UtilizationPercent int     `json:"utilization_percent,omitempty"`
}

// Selection is the ranked list of adequate sizes, tightest fit first.
type Selection struct {
	Options []SizeOption `json:"options"`
}

// Recommended is the adequate size with the highest utilization.
func (s Selection) Recommended() SizeOption {
	return s.Options[0]
}

// All yields the options in ranked order.
func (s Selection) All() iter.Seq[SizeOption] {
	return func(yield func(SizeOption) bool) {
		for _, o := range s.Options {
			if !yield(o) {
				return
			}
		}
	}
}

// CapacityAt estimates capacity at targetSpan from samples sorted ascending by span.
// It reports false when the target lies more than MaxExtrapolation past the last sample
// or when there are no samples.
func CapacityAt(samples []Sample, targetSpan float64) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	first := samples[0]
	if targetSpan <= first.Span {
		return first.Capacity, true
	}
	for i := 1; i < len(samples); i++ {
		hi := samples[i]
		if targetSpan > hi.Span {
			continue
		}
		if targetSpan == hi.Span {
			return hi.Capacity, true
		}
		lo := samples[i-1]
		ratio := (targetSpan - lo.Span) / (hi.Span - lo.Span)
		return lo.Capacity - ratio*(lo.Capacity-hi.Capacity), true
	}

	last := samples[len(samples)-1]
	if targetSpan > last.Span*(1+MaxExtrapolation)+spanTolerance {
		return 0, false
	}
	return last.Capacity * (last.Span / targetSpan), true
}

// Utilization is required/capacity as a whole percentage.
func Utilization(required, capacity float64) int {
	return int(math.Round(required / capacity * 100))
}

// Evaluate checks every size of the table against the query, in table order.
func Evaluate(t Table, q Query) ([]Evaluation, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := validateTable(t); err != nil {
		return nil, err
	}

	out := make([]Evaluation, 0, len(t.Sizes))
	for _, s := range t.Sizes {
		ev := Evaluation{Size: s.Key}
		capacity, ok := CapacityAt(s.Samples, q.RequiredSpan)
		if ok && capacity > 0 {
			ev.Applicable = true
			ev.Capacity = capacity
			ev.UtilizationPercent = Utilization(q.RequiredCapacity, capacity)
			ev.Adequate = capacity >= q.RequiredCapacity
		}
		out = append(out, ev)
	}
	return out, nil
}

// FindAdequateSizes ranks the sizes that carry the query's capacity at its span.
// Options are ordered by descending utilization; exact ties keep table order.
// It returns ErrNoAdequateSize when nothing qualifies.
func FindAdequateSizes(t Table, q Query) (Selection, error) {
	evals, err := Evaluate(t, q)
	if err != nil {
		return Selection{}, err
	}

	type ranked struct {
		opt   SizeOption
		ratio float64
	}
	var adequate []ranked
	for _, ev := range evals {
		if !ev.Adequate {
			continue
		}
		adequate = append(adequate, ranked{
			opt: SizeOption{
				Size:                 ev.Size,
				InterpolatedCapacity: ev.Capacity,
				UtilizationPercent:   ev.UtilizationPercent,
			},
			ratio: q.RequiredCapacity / ev.Capacity,
		})
	}
	if len(adequate) == 0 {
		return Selection{}, ErrNoAdequateSize
	}

	// Rank on the unrounded ratio so sizes sharing a displayed percentage still
	// order by fit.
	sort.SliceStable(adequate, func(i, j int) bool {
		return adequate[i].ratio > adequate[j].ratio
	})
	opts := make([]SizeOption, len(adequate))
	for i, r := range adequate {
		opts[i] = r.opt
	}
	return Selection{Options: opts}, nil
}

func validateTable(t Table) error {
	if len(t.Sizes) == 0 {
		return invalid("table "+t.Name, "has no sizes")
	}
	for _, s := range t.Sizes {
		if len(s.Samples) == 0 {
			return invalid("size "+s.Key, "has no samples")
		}
	}
	return nil
}
