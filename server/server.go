// Package server serves randomly generated point sets, with their closest pair
// drawn in, as PNG images over HTTP.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/osuushi/closestpair/closest"
	"github.com/osuushi/closestpair/dbg"
	"github.com/osuushi/closestpair/internal/logging"
	"github.com/osuushi/closestpair/pointio"
	"github.com/osuushi/closestpair/render"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// SeedHeader carries the seed a response was generated from, so the same
// image can be requested again.
const SeedHeader = "X-Closestpair-Seed"

type Server struct {
	cfg      Config
	logger   *logging.Logger
	limiter  *rate.Limiter
	registry *prometheus.Registry
	metrics  *metrics
	mux      *http.ServeMux

	// Overridable for tests
	now func() time.Time
}

func New(cfg Config, logger *logging.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid server config")
	}
	if logger == nil {
		logger = logging.NoopLogger()
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		mux:      http.NewServeMux(),
		now:      time.Now,
	}
	if cfg.RatePerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), max(cfg.Burst, 1))
	}
	s.metrics = newMetrics(s.registry)

	s.mux.Handle("/closest.png", s.instrument("/closest.png", s.handlePNG))
	s.mux.Handle("/closest.json", s.instrument("/closest.json", s.handleJSON))
	s.mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.InfoContext(ctx, "listening", "addr", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutting down")
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serving")
	}
}

// A request that failed with a particular status code.
type statusError struct {
	code int
	err  error
}

func (e *statusError) Error() string { return e.err.Error() }

func badRequest(format string, args ...interface{}) error {
	return &statusError{http.StatusBadRequest, errors.Errorf(format, args...)}
}

type handlerFunc func(w http.ResponseWriter, r *http.Request, logger *logging.Logger) error

// instrument wraps a handler with rate limiting, error responses, logging and
// request metrics. Every request gets its own run name in the logs.
func (s *Server) instrument(path string, h handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		logger := s.logger.WithRun(dbg.RunName())

		var err error
		status := http.StatusOK
		if s.limiter != nil && !s.limiter.Allow() {
			s.metrics.rateLimited.Inc()
			err = &statusError{http.StatusTooManyRequests, errors.New("rate limit exceeded")}
		} else if r.Method != http.MethodGet && r.Method != http.MethodHead {
			err = &statusError{http.StatusMethodNotAllowed, errors.Errorf("method %s not allowed", r.Method)}
		} else {
			err = h(w, r, logger)
		}

		if err != nil {
			status = http.StatusInternalServerError
			var se *statusError
			if errors.As(err, &se) {
				status = se.code
			}
			http.Error(w, err.Error(), status)
		}

		s.metrics.requests.WithLabelValues(path, strconv.Itoa(status)).Inc()
		logger.LogRequest(r.Context(), r.Method, path, status, s.now().Sub(start), err)
	})
}

type request struct {
	n         int
	seed      int64
	algorithm closest.Algorithm
}

func (s *Server) parseRequest(r *http.Request) (request, error) {
	q := r.URL.Query()
	req := request{
		n:         s.cfg.Points,
		seed:      s.now().UnixNano(),
		algorithm: s.cfg.Algorithm,
	}

	if v := q.Get("n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return req, badRequest("invalid point count %q", v)
		}
		if n > s.cfg.MaxPoints {
			return req, badRequest("point count %d exceeds maximum %d", n, s.cfg.MaxPoints)
		}
		req.n = n
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, badRequest("invalid seed %q", v)
		}
		req.seed = seed
	}
	if v := q.Get("algo"); v != "" {
		a, err := closest.ParseAlgorithm(v)
		if err != nil {
			return req, &statusError{http.StatusBadRequest, err}
		}
		req.algorithm = a
	}
	if req.algorithm == closest.AlgorithmBruteForce && req.n > s.cfg.MaxBrutePoints {
		return req, badRequest("point count %d exceeds brute force maximum %d", req.n, s.cfg.MaxBrutePoints)
	}
	return req, nil
}

// solve generates the requested points and finds their closest pair.
func (s *Server) solve(ctx context.Context, req request, logger *logging.Logger) (closest.PointList, closest.Pair) {
	g := pointio.NewGenerator(req.seed)
	g.Min, g.Max = s.cfg.MinCoord, s.cfg.MaxCoord
	points := g.Points(req.n)

	start := s.now()
	pair := req.algorithm.Solver()(points)
	elapsed := s.now().Sub(start)

	s.metrics.observeSolve(req.algorithm, len(points), pair, elapsed)
	logger.LogSolve(ctx, string(req.algorithm), len(points), pair.Distance, pair.Found(), elapsed)
	return points, pair
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request, logger *logging.Logger) error {
	req, err := s.parseRequest(r)
	if err != nil {
		return err
	}
	points, pair := s.solve(r.Context(), req, logger)

	opts := render.DefaultOptions()
	opts.Width, opts.Height = s.cfg.Width, s.cfg.Height
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set(SeedHeader, strconv.FormatInt(req.seed, 10))
	// Headers are out once the encoder writes, so a failure here can only be
	// logged.
	if err := render.EncodePNG(w, points, pair, opts); err != nil {
		logger.ErrorContext(r.Context(), "writing png", "error", err)
	}
	return nil
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request, logger *logging.Logger) error {
	req, err := s.parseRequest(r)
	if err != nil {
		return err
	}
	points, pair := s.solve(r.Context(), req, logger)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(SeedHeader, strconv.FormatInt(req.seed, 10))
	if err := pointio.WriteJSON(w, pointio.NewResult(string(req.algorithm), len(points), pair)); err != nil {
		logger.ErrorContext(r.Context(), "writing json", "error", err)
	}
	return nil
}
