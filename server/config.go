package server

import (
	"github.com/osuushi/closestpair/closest"
	"github.com/osuushi/closestpair/pointio"
	"github.com/osuushi/closestpair/render"
	"github.com/pkg/errors"
)

type Config struct {
	Addr string

	// Points is how many points are generated when a request doesn't say, and
	// MaxPoints caps what a request may ask for.
	Points    int
	MaxPoints int

	// Brute force is quadratic, so it gets a much lower cap than MaxPoints.
	MaxBrutePoints int

	// Generated coordinates fall in [MinCoord, MaxCoord].
	MinCoord, MaxCoord int

	Width, Height int
	Algorithm     closest.Algorithm

	// Requests beyond this rate get 429. Zero or less disables limiting.
	RatePerSecond float64
	Burst         int
}

func DefaultConfig() Config {
	opts := render.DefaultOptions()
	return Config{
		Addr:           ":8080",
		Points:         pointio.DefaultCount,
		MaxPoints:      100000,
		MaxBrutePoints: 5000,
		MinCoord:       pointio.DefaultMinCoord,
		MaxCoord:       pointio.DefaultMaxCoord,
		Width:          opts.Width,
		Height:         opts.Height,
		Algorithm:      closest.AlgorithmDivide,
		RatePerSecond:  10,
		Burst:          20,
	}
}

func (c Config) Validate() error {
	if c.Points < 0 || c.MaxPoints < 0 {
		return errors.New("point counts must not be negative")
	}
	if c.MaxBrutePoints < 0 {
		return errors.New("brute force point limit must not be negative")
	}
	if c.Points > c.MaxPoints {
		return errors.Errorf("default point count %d exceeds maximum %d", c.Points, c.MaxPoints)
	}
	if c.Algorithm == closest.AlgorithmBruteForce && c.Points > c.MaxBrutePoints {
		return errors.Errorf("default point count %d exceeds brute force maximum %d", c.Points, c.MaxBrutePoints)
	}
	if c.MinCoord > c.MaxCoord {
		return errors.Errorf("coordinate range [%d, %d] is empty", c.MinCoord, c.MaxCoord)
	}
	if c.MinCoord < -pointio.MaxAbsCoord || c.MaxCoord > pointio.MaxAbsCoord {
		return errors.Errorf("coordinate range [%d, %d] exceeds ±%d", c.MinCoord, c.MaxCoord, int64(pointio.MaxAbsCoord))
	}
	if c.Burst < 0 {
		return errors.Errorf("invalid rate limiter burst %d", c.Burst)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.Algorithm.Solver() == nil {
		return errors.Errorf("unknown algorithm %q", c.Algorithm)
	}
	return nil
}
