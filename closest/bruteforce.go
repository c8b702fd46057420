package closest

// Exhaustive O(n²) search. This is the ground truth the divide and conquer
// solver is checked against, and also its base case.

// BruteForce compares every unordered pair of points. On ties, the pair with
// the lowest first index (then lowest second index) wins.
func BruteForce(points PointList) Pair {
	if len(points) < 2 {
		return NoPair
	}

	best := newPair(points[0], points[1])
	for i := 0; i < len(points)-1; i++ {
		for j := i + 1; j < len(points); j++ {
			if d := Distance(points[i], points[j]); d < best.Distance {
				best = Pair{d, points[i], points[j]}
			}
		}
	}
	return best
}
