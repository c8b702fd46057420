package pointio

import (
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/osuushi/closestpair/closest"
	"github.com/pkg/errors"
)

// Format identifies a point file format.
type Format string

const (
	FormatText Format = "text"
	FormatSVG  Format = "svg"
)

var Formats = []string{string(FormatText), string(FormatSVG)}

// FormatForPath guesses the format from a file extension, defaulting to text.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatText
}

// Read reads points in the given format.
func Read(r io.Reader, format Format) (closest.PointList, error) {
	switch format {
	case FormatText, "":
		return ReadText(r)
	case FormatSVG:
		return ReadSVG(r)
	default:
		return nil, errors.Errorf("unknown point format %q", format)
	}
}

func isNonFinite(v float64) bool {
	return math.IsInf(v, 0) || math.IsNaN(v)
}
