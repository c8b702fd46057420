package closest

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Distance is the Euclidean distance between two points. Every solver uses
// this exact function, so results from different solvers are bitwise
// comparable.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func ByX(p Point) float64 { return p.X }
func ByY(p Point) float64 { return p.Y }

// SortedBy returns a copy of points sorted ascending by key. The sort is
// stable, so points with equal keys keep their input order.
func SortedBy(points PointList, key Key) PointList {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return cmp.Compare(key(a), key(b))
	})
	return sorted
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Translate returns the point moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Scale returns the point with both coordinates multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Bounds gives the bounding box of the list. For an empty list, min is +Inf and
// max is -Inf on both axes.
func (pl PointList) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range pl {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return
}

// Found reports whether the pair holds two real points.
func (pr Pair) Found() bool {
	return !math.IsInf(pr.Distance, 1)
}

// Less reports whether pr is strictly closer than other. Equal distances are
// never "less", so the pair found first always survives a tie.
func (pr Pair) Less(other Pair) bool {
	return pr.Distance < other.Distance
}

func (pr Pair) String() string {
	if !pr.Found() {
		return "no pair"
	}
	return fmt.Sprintf("%v-%v (%g)", pr.A, pr.B, pr.Distance)
}

func newPair(a, b Point) Pair {
	return Pair{Distance(a, b), a, b}
}

// minOf picks the closer of two pairs. The first argument wins ties.
func minOf(a, b Pair) Pair {
	if b.Less(a) {
		return b
	}
	return a
}
