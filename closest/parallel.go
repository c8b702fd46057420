package closest

import (
	"math/bits"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// The two halves of each divide and conquer level are independent, so the
// left half can run on its own goroutine. Below the cutoff, or past the fork
// depth limit, we drop back to the sequential solver since goroutine overhead
// dominates.

// DefaultCutoff is the smallest subproblem that is forked onto a goroutine.
const DefaultCutoff = 2048

type parallelOptions struct {
	cutoff   int
	maxDepth int
}

// Option configures DivideAndConquerParallel.
type Option func(*parallelOptions)

// WithCutoff sets the smallest subproblem size that still forks. Values below
// the brute force threshold are raised to it.
func WithCutoff(n int) Option {
	return func(o *parallelOptions) {
		o.cutoff = max(n, bruteForceThreshold)
	}
}

// WithMaxDepth limits how many levels of the recursion fork. Zero disables
// forking entirely.
func WithMaxDepth(depth int) Option {
	return func(o *parallelOptions) {
		o.maxDepth = max(depth, 0)
	}
}

// DivideAndConquerParallel is DivideAndConquer with the upper levels of the
// recursion running concurrently. It returns the same distance as the
// sequential solver. When several pairs tie for the minimum, the pair returned
// is the same one the sequential solver returns, since the merge order does
// not change.
func DivideAndConquerParallel(points PointList, opts ...Option) Pair {
	o := parallelOptions{
		cutoff:   DefaultCutoff,
		maxDepth: bits.Len(uint(runtime.GOMAXPROCS(0))) + 1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(points) < 2 {
		return NoPair
	}
	byX, byY := presort(points)
	return o.closestPair(byX, byY, 0)
}

func (o parallelOptions) closestPair(byX, byY []entry, depth int) Pair {
	if len(byX) <= o.cutoff || depth >= o.maxDepth {
		return closestPair(byX, byY)
	}
	left, right, leftY, rightY, line := split(byX, byY)

	var minLeft Pair
	var g errgroup.Group
	g.Go(func() error {
		minLeft = o.closestPair(left, leftY, depth+1)
		return nil
	})
	minRight := o.closestPair(right, rightY, depth+1)
	_ = g.Wait()

	return mergeStrip(byY, line, minOf(minLeft, minRight))
}
