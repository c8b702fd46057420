package closest

import (
	"strings"

	"github.com/pkg/errors"
)

// Algorithm names a solver, for callers that pick one at runtime.
type Algorithm string

const (
	AlgorithmBruteForce Algorithm = "brute"
	AlgorithmDivide     Algorithm = "dac"
	AlgorithmParallel   Algorithm = "parallel"
)

var Algorithms = []Algorithm{AlgorithmBruteForce, AlgorithmDivide, AlgorithmParallel}

type Solver func(points PointList) Pair

// ParseAlgorithm accepts any of Algorithms, case insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(s, string(a)) {
			return a, nil
		}
	}
	return "", errors.Errorf("unknown algorithm %q", s)
}

// Solver returns the solver for a, or nil if a is not one of Algorithms.
func (a Algorithm) Solver() Solver {
	switch a {
	case AlgorithmBruteForce:
		return BruteForce
	case AlgorithmDivide:
		return DivideAndConquer
	case AlgorithmParallel:
		return func(points PointList) Pair {
			return DivideAndConquerParallel(points)
		}
	}
	return nil
}

func AlgorithmNames() []string {
	names := make([]string, len(Algorithms))
	for i, a := range Algorithms {
		names[i] = string(a)
	}
	return names
}
