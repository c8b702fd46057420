package closest

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every solver must give the same answers on these, so they are run against
// each of them.
var solvers = map[string]func(PointList) Pair{
	"brute force":        BruteForce,
	"divide and conquer": DivideAndConquer,
	"parallel": func(points PointList) Pair {
		return DivideAndConquerParallel(points, WithCutoff(4), WithMaxDepth(8))
	},
}

func TestSolvers_Scenarios(t *testing.T) {
	for name, solve := range solvers {
		solve := solve
		t.Run(name, func(t *testing.T) {
			t.Run("fewer than two points", func(t *testing.T) {
				assert.Equal(t, NoPair, solve(nil))
				assert.Equal(t, NoPair, solve(PointList{{1, 2}}))
			})

			t.Run("two points", func(t *testing.T) {
				result := solve(PointList{{7, 1}, {4, 5}})
				assert.Equal(t, 5.0, result.Distance)
				assert.ElementsMatch(t, []Point{{7, 1}, {4, 5}}, []Point{result.A, result.B})
			})

			t.Run("coincident points", func(t *testing.T) {
				result := solve(PointList{{0, 0}, {3, 4}, {0, 0}})
				assert.Equal(t, Pair{0, Point{0, 0}, Point{0, 0}}, result)
			})

			t.Run("one close pair", func(t *testing.T) {
				result := solve(PointList{{0, 0}, {1, 0}, {10, 10}})
				assert.Equal(t, 1.0, result.Distance)
				assert.ElementsMatch(t, []Point{{0, 0}, {1, 0}}, []Point{result.A, result.B})
			})

			t.Run("unit grid", func(t *testing.T) {
				var points PointList
				for x := 0; x < 10; x++ {
					for y := 0; y < 10; y++ {
						points = append(points, Point{float64(x), float64(y)})
					}
				}
				result := solve(points)
				assert.Equal(t, 1.0, result.Distance)
				assertValidPair(t, points, result)
			})

			fixtureDistances := map[string]float64{
				"coincident": 0,
				"near_line":  math.Sqrt(5),
				"vertical":   2.5,
			}
			for fixtureName, expected := range fixtureDistances {
				fixtureName, expected := fixtureName, expected
				t.Run(fixtureName+" fixture", func(t *testing.T) {
					points := LoadFixture(fixtureName)
					result := solve(points)
					assert.Equal(t, expected, result.Distance)
					assertValidPair(t, points, result)
				})
			}
		})
	}
}

func TestDivideAndConquer_NearLinePair(t *testing.T) {
	// The winning pair sits on opposite sides of the first split line, so only
	// the strip merge can find it.
	result := DivideAndConquer(LoadFixture("near_line"))
	assert.ElementsMatch(t, []Point{{99, 250}, {101, 251}}, []Point{result.A, result.B})
}

func TestDivideAndConquer_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	generators := map[string]func(n int) PointList{
		"uniform": func(n int) PointList {
			return randomPoints(rng, n, 1000)
		},
		// Small integer grids produce lots of shared x values and exact ties
		"crowded integers": func(n int) PointList {
			return randomIntPoints(rng, n, 12)
		},
		"sparse integers": func(n int) PointList {
			return randomIntPoints(rng, n, 1000)
		},
		"vertical line": func(n int) PointList {
			points := randomIntPoints(rng, n, 10000)
			for i := range points {
				points[i].X = 3
			}
			return points
		},
		"two columns": func(n int) PointList {
			points := randomPoints(rng, n, 100)
			for i := range points {
				points[i].X = float64(i % 2)
			}
			return points
		},
	}

	for name, generate := range generators {
		generate := generate
		t.Run(name, func(t *testing.T) {
			for n := 0; n < 150; n++ {
				points := generate(n)
				expected := BruteForce(points)
				actual := DivideAndConquer(points)
				require.Equal(t, expected.Distance, actual.Distance, "n=%d points=%v", n, points)
				if n >= 2 {
					assertValidPair(t, points, actual)
				}
			}
		})
	}
}

func TestDivideAndConquer_Invariance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		points := randomIntPoints(rng, 200, 5000)
		expected := DivideAndConquer(points)

		t.Run(fmt.Sprintf("trial %d", trial), func(t *testing.T) {
			t.Run("permutation", func(t *testing.T) {
				shuffled := append(PointList(nil), points...)
				rng.Shuffle(len(shuffled), func(i, j int) {
					shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
				})
				assert.Equal(t, expected.Distance, DivideAndConquer(shuffled).Distance)
			})

			t.Run("translation", func(t *testing.T) {
				dx := float64(rng.Intn(20000) - 10000)
				dy := float64(rng.Intn(20000) - 10000)
				moved := make(PointList, len(points))
				for i, p := range points {
					moved[i] = p.Translate(dx, dy)
				}
				assert.Equal(t, expected.Distance, DivideAndConquer(moved).Distance)
			})

			t.Run("scaling", func(t *testing.T) {
				for _, s := range []float64{0.5, 2, 3.75, 1000} {
					scaled := make(PointList, len(points))
					for i, p := range points {
						scaled[i] = p.Scale(s)
					}
					assert.InDelta(t, s*expected.Distance, DivideAndConquer(scaled).Distance, 1e-9*s*expected.Distance)
				}
			})
		})
	}
}

func TestDivideAndConquer_DoesNotModifyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	points := randomPoints(rng, 500, 100)
	original := append(PointList(nil), points...)
	DivideAndConquer(points)
	assert.Equal(t, original, points)
}

func TestDivideAndConquer_Stress(t *testing.T) {
	rng := rand.New(rand.NewSource(10000))
	points := randomPoints(rng, 10000, 1e6)

	result := DivideAndConquer(points)
	require.True(t, result.Found())
	assertValidPair(t, points, result)

	// Any subsample's closest pair can only be farther apart
	sample := make(PointList, 0, 1000)
	for _, i := range rng.Perm(len(points))[:1000] {
		sample = append(sample, points[i])
	}
	assert.LessOrEqual(t, result.Distance, BruteForce(sample).Distance)
	assert.Equal(t, BruteForce(sample).Distance, DivideAndConquer(sample).Distance)

	if testing.Short() {
		t.Skip("skipping full brute force comparison in short mode")
	}
	assert.Equal(t, BruteForce(points).Distance, result.Distance)
}

func TestSplit(t *testing.T) {
	// Five points on the line x=1 straddle the midpoint; the y partition must
	// follow the x split rather than send all of them left.
	points := PointList{{0, 0}, {1, 5}, {1, 1}, {1, 3}, {1, 2}, {1, 4}, {2, 0}}
	byX, byY := presort(points)
	left, right, leftY, rightY, line := split(byX, byY)

	assert.Equal(t, 1.0, line)
	assert.Len(t, left, 4)
	assert.Len(t, right, 3)
	assert.ElementsMatch(t, left, leftY)
	assert.ElementsMatch(t, right, rightY)
	for _, half := range [][]entry{leftY, rightY} {
		for i := 1; i < len(half); i++ {
			assert.LessOrEqual(t, half[i-1].Y, half[i].Y)
		}
	}
}

// Helpers

func randomPoints(rng *rand.Rand, n int, scale float64) PointList {
	points := make(PointList, n)
	for i := range points {
		points[i] = Point{rng.Float64() * scale, rng.Float64() * scale}
	}
	return points
}

func randomIntPoints(rng *rand.Rand, n int, max int) PointList {
	points := make(PointList, n)
	for i := range points {
		points[i] = Point{float64(rng.Intn(max)), float64(rng.Intn(max))}
	}
	return points
}

// Check that the pair really comes from the input, and that its distance is
// consistent. Coincident pairs need the point to appear at least twice.
func assertValidPair(t *testing.T, points PointList, pair Pair) {
	t.Helper()
	require.True(t, pair.Found(), "expected a pair")
	assert.Equal(t, Distance(pair.A, pair.B), pair.Distance)

	counts := make(map[Point]int)
	for _, p := range points {
		counts[p]++
	}
	assert.Positive(t, counts[pair.A], "%v is not in the input", pair.A)
	assert.Positive(t, counts[pair.B], "%v is not in the input", pair.B)
	if pair.A == pair.B {
		assert.GreaterOrEqual(t, counts[pair.A], 2, "%v only appears once", pair.A)
	}
}
