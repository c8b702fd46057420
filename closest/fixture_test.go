package closest

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// Fixtures are SVG drawings where every <circle> is a point. They live in
// fixtures/ and are loaded by name, sans extension. If anything goes wrong,
// loading fails the whole test binary.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) PointList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make(PointList, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value in fixture %q: %v", name, err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value in fixture %q: %v", name, err)
		}
		points = append(points, Point{x, y})
	}
	return points
}
