package pointio

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/closestpair/closest"
	"github.com/pkg/errors"
)

// ReadSVG treats every <circle> in an SVG document as a point at (cx, cy).
// Everything else in the document is ignored. Missing cx or cy default to 0,
// as they do when the SVG is rendered.
func ReadSVG(r io.Reader) (points closest.PointList, err error) {
	defer func() {
		recoveredErr := handleParsePanicRecover(recover())
		if recoveredErr != nil {
			points = nil
			err = recoveredErr
		}
	}()

	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	circles := rootEl.FindAll("circle")
	points = make(closest.PointList, 0, len(circles))
	for i, circleEl := range circles {
		points = append(points, closest.Point{
			X: parseLength(atCircle(i+1), circleEl.Attributes["cx"]),
			Y: parseLength(atCircle(i+1), circleEl.Attributes["cy"]),
		})
	}
	return points, nil
}

// SVG lengths may carry a "px" unit. Other units would need a viewport to
// resolve, so they are rejected.
func parseLength(pos position, s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0
	}
	return parseCoordinate(pos, s)
}
