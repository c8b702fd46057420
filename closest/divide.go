package closest

import (
	"cmp"
	"math"
	"slices"
)

// Divide and conquer closest pair, O(n log n).
//
// The points are sorted once by x and once by y. Each level splits the
// x-sorted list in half at a vertical line, partitions the y-sorted list to
// match, solves both halves, and then checks the strip around the line for a
// pair that crosses it. The strip scan only looks ahead while the y gap is
// smaller than the best distance, which bounds the work per point by a
// constant.
//
// Recursion works on read-only views. The x-sorted list is only ever
// resliced, and every partition of the y-sorted list is a fresh slice, so the
// two halves never share anything writable.

// At or below this many points, the strip geometry no longer pays for itself
// and we fall back to BruteForce.
const bruteForceThreshold = 3

// entry is a point tagged with its position in the x-sorted order. The rank is
// what lets us partition the y-sorted list with exactly the same membership as
// the x split, even when many points share the split line's x coordinate.
type entry struct {
	Point
	rank int
}

// DivideAndConquer finds the closest pair in O(n log n). Inputs with fewer
// than two points return NoPair. The input is never modified.
func DivideAndConquer(points PointList) Pair {
	if len(points) < 2 {
		return NoPair
	}
	byX, byY := presort(points)
	return closestPair(byX, byY)
}

func presort(points PointList) (byX, byY []entry) {
	byX = make([]entry, len(points))
	for i, p := range SortedBy(points, ByX) {
		byX[i] = entry{p, i}
	}
	byY = slices.Clone(byX)
	slices.SortStableFunc(byY, func(a, b entry) int {
		return cmp.Compare(a.Y, b.Y)
	})
	return byX, byY
}

// byX and byY must hold the same points, sorted by x and y respectively.
func closestPair(byX, byY []entry) Pair {
	if len(byX) <= bruteForceThreshold {
		return bruteForceEntries(byX)
	}
	left, right, leftY, rightY, line := split(byX, byY)
	// Left side wins ties
	best := minOf(closestPair(left, leftY), closestPair(right, rightY))
	return mergeStrip(byY, line, best)
}

// split halves byX at ceil(n/2) and partitions byY to match, preserving y
// order. Points on the split line go left unless the x split put them on the
// right.
func split(byX, byY []entry) (left, right, leftY, rightY []entry, line float64) {
	m := (len(byX) + 1) / 2
	left, right = byX[:m:m], byX[m:]
	line = left[m-1].X

	boundary := right[0].rank
	leftY = make([]entry, 0, len(left))
	rightY = make([]entry, 0, len(right))
	for _, e := range byY {
		if e.rank < boundary {
			leftY = append(leftY, e)
		} else {
			rightY = append(rightY, e)
		}
	}
	return left, right, leftY, rightY, line
}

// mergeStrip looks for a pair straddling the split line that beats best.
func mergeStrip(byY []entry, line float64, best Pair) Pair {
	strip := make([]entry, 0, len(byY))
	for _, e := range byY {
		if math.Abs(e.X-line) < best.Distance {
			strip = append(strip, e)
		}
	}

	for i := 0; i < len(strip)-1; i++ {
		for k := i + 1; k < len(strip) && strip[k].Y-strip[i].Y < best.Distance; k++ {
			if d := Distance(strip[i].Point, strip[k].Point); d < best.Distance {
				best = Pair{d, strip[i].Point, strip[k].Point}
			}
		}
	}
	return best
}

func bruteForceEntries(entries []entry) Pair {
	var buf [bruteForceThreshold]Point
	points := buf[:0]
	for _, e := range entries {
		points = append(points, e.Point)
	}
	return BruteForce(points)
}
