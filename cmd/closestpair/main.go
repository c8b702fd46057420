package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/closestpair/closest"
	"github.com/osuushi/closestpair/dbg"
	"github.com/osuushi/closestpair/internal/logging"
	"github.com/osuushi/closestpair/pointio"
	"github.com/osuushi/closestpair/render"
	"github.com/osuushi/closestpair/server"
	"github.com/pkg/errors"
)

// Find the closest pair in a set of points, draw it, or serve drawings over
// HTTP.
//
// Point files have one "x y" pair per line, or are SVG documents where every
// <circle> is a point. With no file, points are read from stdin.

var renderSeedSet bool

var (
	app       = kingpin.New("closestpair", "Find the closest pair of points in the plane.")
	logLevel  = app.Flag("log-level", "Log level (debug, info, warn, error).").Default("warn").Envar("CLOSESTPAIR_LOG_LEVEL").String()
	logFormat = app.Flag("log-format", "Log format.").Default("text").Envar("CLOSESTPAIR_LOG_FORMAT").Enum("text", "json")
	noColor   = app.Flag("no-color", "Disable colored output.").Envar("NO_COLOR").Bool()

	solveCmd    = app.Command("solve", "Find the closest pair in a point file.")
	solveFile   = solveCmd.Arg("file", "Point file. Reads stdin if omitted.").ExistingFile()
	solveFormat = solveCmd.Flag("format", "Input format. Guessed from the file extension if omitted.").Enum(pointio.Formats...)
	solveAlgo   = solveCmd.Flag("algo", "Solver to use.").Short('a').Default(string(closest.AlgorithmDivide)).Enum(closest.AlgorithmNames()...)
	solveJSON   = solveCmd.Flag("json", "Print the result as JSON.").Bool()

	renderCmd     = app.Command("render", "Draw points and their closest pair to a PNG file.")
	renderFile    = renderCmd.Arg("file", "Point file. Random points are generated if omitted.").ExistingFile()
	renderFormat  = renderCmd.Flag("format", "Input format. Guessed from the file extension if omitted.").Enum(pointio.Formats...)
	renderCount   = renderCmd.Flag("n", "Number of random points to generate.").Default(fmt.Sprint(pointio.DefaultCount)).Int()
	renderSeed    = renderCmd.Flag("seed", "Random seed. Defaults to the current time.").IsSetByUser(&renderSeedSet).Int64()
	renderOut     = renderCmd.Flag("out", "Output file. A random name is picked if omitted.").Short('o').String()
	renderWidth   = renderCmd.Flag("width", "Image width.").Default("500").Int()
	renderHeight  = renderCmd.Flag("height", "Image height.").Default("500").Int()
	renderFit     = renderCmd.Flag("fit", "Scale the points to fill the image.").Bool()
	renderPreview = renderCmd.Flag("preview", "Print the image in the terminal (iTerm only).").Bool()

	serveCmd       = app.Command("serve", "Serve random closest pair drawings over HTTP.")
	serveAddr      = serveCmd.Flag("addr", "Listen address.").Default(server.DefaultConfig().Addr).Envar("CLOSESTPAIR_ADDR").String()
	servePoints    = serveCmd.Flag("points", "Default number of points per request.").Default(fmt.Sprint(server.DefaultConfig().Points)).Envar("CLOSESTPAIR_POINTS").Int()
	serveMaxPoints = serveCmd.Flag("max-points", "Largest point count a request may ask for.").Default(fmt.Sprint(server.DefaultConfig().MaxPoints)).Envar("CLOSESTPAIR_MAX_POINTS").Int()
	serveMaxBrute  = serveCmd.Flag("max-brute-points", "Largest point count a brute force request may ask for.").Default(fmt.Sprint(server.DefaultConfig().MaxBrutePoints)).Envar("CLOSESTPAIR_MAX_BRUTE_POINTS").Int()
	serveAlgo      = serveCmd.Flag("algo", "Default solver.").Default(string(server.DefaultConfig().Algorithm)).Envar("CLOSESTPAIR_ALGO").Enum(closest.AlgorithmNames()...)
	serveRate      = serveCmd.Flag("rate", "Requests per second before returning 429. Zero disables limiting.").Default(fmt.Sprint(server.DefaultConfig().RatePerSecond)).Envar("CLOSESTPAIR_RATE").Float64()
	serveBurst     = serveCmd.Flag("burst", "Rate limiter burst size.").Default(fmt.Sprint(server.DefaultConfig().Burst)).Envar("CLOSESTPAIR_BURST").Int()
)

func main() {
	app.Version("0.1.0")
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level, err := logging.ParseLevel(*logLevel)
	app.FatalIfError(err, "")
	logger, err := logging.New(os.Stderr, *logFormat, level)
	app.FatalIfError(err, "")
	au := aurora.NewAurora(!*noColor)

	switch command {
	case solveCmd.FullCommand():
		err = runSolve(os.Stdout, au, logger)
	case renderCmd.FullCommand():
		err = runRender(os.Stdout, au, logger)
	case serveCmd.FullCommand():
		err = runServe(logger)
	}
	app.FatalIfError(err, "%s", command)
}

func runSolve(out io.Writer, au aurora.Aurora, logger *logging.Logger) error {
	points, err := readPoints(*solveFile, *solveFormat)
	if err != nil {
		return err
	}

	algorithm := closest.Algorithm(*solveAlgo)
	pair := timedSolve(logger, algorithm, points)
	if *solveJSON {
		return pointio.WriteJSON(out, pointio.NewResult(string(algorithm), len(points), pair))
	}
	printSummary(out, au, len(points), pair)
	return nil
}

func runRender(out io.Writer, au aurora.Aurora, logger *logging.Logger) error {
	var points closest.PointList
	if *renderFile != "" {
		var err error
		points, err = readPoints(*renderFile, *renderFormat)
		if err != nil {
			return err
		}
	} else {
		seed := *renderSeed
		if !renderSeedSet {
			seed = time.Now().UnixNano()
		}
		points = pointio.NewGenerator(seed).Points(*renderCount)
		fmt.Fprintf(out, "Generated %d points with seed %d\n", len(points), seed)
	}

	pair := timedSolve(logger, closest.AlgorithmDivide, points)
	printSummary(out, au, len(points), pair)

	path := *renderOut
	if path == "" {
		path = dbg.FileName("closest", dbg.RunName(), ".png")
	}
	opts := render.DefaultOptions()
	opts.Width, opts.Height = *renderWidth, *renderHeight
	opts.Fit = *renderFit
	if err := render.SavePNG(path, points, pair, opts); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", au.Bold(path))

	if *renderPreview {
		render.Preview(path)
	}
	return nil
}

func runServe(logger *logging.Logger) error {
	cfg := server.DefaultConfig()
	cfg.Addr = *serveAddr
	cfg.Points = *servePoints
	cfg.MaxPoints = *serveMaxPoints
	cfg.MaxBrutePoints = *serveMaxBrute
	cfg.Algorithm = closest.Algorithm(*serveAlgo)
	cfg.RatePerSecond = *serveRate
	cfg.Burst = *serveBurst

	s, err := server.New(cfg, logger)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.ListenAndServe(ctx)
}

func readPoints(path, format string) (closest.PointList, error) {
	var in io.Reader = os.Stdin
	name := "stdin"
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening point file")
		}
		defer f.Close()
		in = f
		name = path
	}

	f := pointio.Format(format)
	if f == "" {
		f = pointio.FormatForPath(path)
	}
	points, err := pointio.Read(in, f)
	return points, errors.Wrapf(err, "reading %s", name)
}

func timedSolve(logger *logging.Logger, algorithm closest.Algorithm, points closest.PointList) closest.Pair {
	start := time.Now()
	pair := algorithm.Solver()(points)
	logger.LogSolve(context.Background(), string(algorithm), len(points), pair.Distance, pair.Found(), time.Since(start))
	return pair
}

func printSummary(out io.Writer, au aurora.Aurora, n int, pair closest.Pair) {
	fmt.Fprintf(out, "Points:       %d\n", n)
	if !pair.Found() {
		fmt.Fprintln(out, au.Yellow("Fewer than two points, no closest pair"))
		return
	}
	fmt.Fprintf(out, "Closest pair: %v %v\n", au.Cyan(pair.A), au.Cyan(pair.B))
	fmt.Fprintf(out, "Distance:     %v\n", au.Bold(au.Green(pair.Distance)))
}
