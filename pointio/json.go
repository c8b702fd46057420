package pointio

import (
	"io"

	json "github.com/goccy/go-json"
	"github.com/osuushi/closestpair/closest"
	"github.com/pkg/errors"
)

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Result is the JSON form of a solver run. Distance and the points are omitted
// when no pair was found, since JSON has no infinity.
type Result struct {
	Algorithm string      `json:"algorithm"`
	Points    int         `json:"points"`
	Found     bool        `json:"found"`
	Distance  *float64    `json:"distance,omitempty"`
	Pair      []jsonPoint `json:"pair,omitempty"`
}

// NewResult converts a solver result into its JSON form.
func NewResult(algorithm string, n int, pair closest.Pair) Result {
	result := Result{Algorithm: algorithm, Points: n, Found: pair.Found()}
	if result.Found {
		distance := pair.Distance
		result.Distance = &distance
		result.Pair = []jsonPoint{{pair.A.X, pair.A.Y}, {pair.B.X, pair.B.Y}}
	}
	return result
}

// WriteJSON writes a single result as a JSON object followed by a newline.
func WriteJSON(w io.Writer, result Result) error {
	return errors.Wrap(json.NewEncoder(w).Encode(result), "encoding result")
}
