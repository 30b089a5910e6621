package sizing

import "errors"

// Status tags a sizing outcome.
type Status string

const (
	StatusAdequate       Status = "adequate"
	StatusNoAdequateSize Status = "no_adequate_size"
)

// Outcome is what a sizing calculator shows: either a recommendation with its ranked
// alternatives, or a warning that nothing in the table fits.
type Outcome struct {
	Status      Status       `json:"status"`
	Recommended *SizeOption  `json:"recommended,omitempty"`
	Options     []SizeOption `json:"options"`
	Warning     string       `json:"warning,omitempty"`
}

// Resolve runs FindAdequateSizes and turns ErrNoAdequateSize into a warning outcome.
// Invalid input is still returned as an error.
func Resolve(t Table, q Query, warning string) (Outcome, error) {
	sel, err := FindAdequateSizes(t, q)
	if errors.Is(err, ErrNoAdequateSize) {
		return Outcome{
			Status:  StatusNoAdequateSize,
			Options: []SizeOption{},
			Warning: warning,
		}, nil
	}
	if err != nil {
		return Outcome{}, err
	}

	rec := sel.Recommended()
	return Outcome{
		Status:      StatusAdequate,
		Recommended: &rec,
		Options:     sel.Options,
	}, nil
}
