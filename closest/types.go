package closest

import "math"

// Point is a location in the plane. Points are plain values; nothing in this
// package ever modifies a point it was given.
type Point struct {
	X float64
	Y float64
}

type PointList []Point

// Pair is the closest pair found so far, together with its distance. A Pair
// returned from a solver always satisfies Distance == Distance(A, B), except
// for NoPair.
type Pair struct {
	Distance float64
	A, B     Point
}

// NoPair is returned when there is nothing to compare, i.e. for inputs with
// fewer than two points. Callers should check Found() rather than assume a
// pair exists.
var NoPair = Pair{Distance: math.Inf(1)}

// Key extracts the coordinate a PointList is sorted by.
type Key func(p Point) float64
