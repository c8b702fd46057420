// Closest pair of points in the plane, for Go.
//
// Given a set of 2D points, this package finds the two that are nearest to
// each other. Two solvers are provided: an exhaustive O(n²) search, which is
// simple and fast for small inputs, and an O(n log n) divide and conquer
// solver for everything else. Both return the same distance for the same
// input.
//
// The solvers never fail. Fewer than two points simply yields NoPair, which has
// infinite distance; check Pair.Found() before using the points.
package closestpair

import "github.com/osuushi/closestpair/closest"

type Point = closest.Point
type PointList = closest.PointList
type Pair = closest.Pair

var NoPair = closest.NoPair

// Compare every pair of points. O(n²), but with no allocation at all.
func BruteForceClosestPair(points []Point) Pair {
	return closest.BruteForce(points)
}

// Find the closest pair by divide and conquer in O(n log n).
//
// When several pairs are tied for closest, which of them is returned is
// unspecified, but the distance always matches BruteForceClosestPair exactly.
func DivideAndConquerClosestPair(points []Point) Pair {
	return closest.DivideAndConquer(points)
}
