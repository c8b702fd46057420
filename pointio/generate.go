package pointio

import (
	"math/rand"
	"sync"

	"github.com/osuushi/closestpair/closest"
)

// Defaults for generated point sets, sized to land inside a 500x500 image with
// a small margin.
const (
	DefaultCount    = 26
	DefaultMinCoord = 5
	DefaultMaxCoord = 490

	// Integers beyond ±2^52 stop being exactly representable once they are
	// added or subtracted as float64, so generated coordinates stay inside.
	MaxAbsCoord = 1 << 52
)

// Generator produces random integer-valued points inside a square. It is safe
// for concurrent use.
type Generator struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex

	Min, Max int
}

// NewGenerator creates a Generator with the given seed and the default bounds.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
		Min:  DefaultMinCoord,
		Max:  DefaultMaxCoord,
	}
}

// Seed returns the initial seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Reset rewinds the generator to its initial seed.
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rand.Seed(g.seed)
}

// Points returns n points with both coordinates in [Min, Max]. If Max < Min the
// bounds are swapped. Bounds are clamped to ±MaxAbsCoord.
func (g *Generator) Points(n int) closest.PointList {
	lo, hi := clampCoord(g.Min), clampCoord(g.Max)
	if hi < lo {
		lo, hi = hi, lo
	}
	span := int64(hi) - int64(lo) + 1

	g.mu.Lock()
	defer g.mu.Unlock()
	points := make(closest.PointList, n)
	for i := range points {
		points[i] = closest.Point{
			X: float64(int64(lo) + g.rand.Int63n(span)),
			Y: float64(int64(lo) + g.rand.Int63n(span)),
		}
	}
	return points
}

func clampCoord(v int) int {
	return min(max(v, -MaxAbsCoord), MaxAbsCoord)
}
