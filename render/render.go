// Package render draws a point set and its closest pair onto a raster image.
package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/osuushi/closestpair/closest"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

type Options struct {
	Width, Height int

	// Points are drawn as filled circles of this radius, and the closest pair
	// is joined by a line of this width.
	PointRadius float64
	LineWidth   float64

	Background color.Color
	PointColor color.Color
	LineColor  color.Color

	// When Fit is set, the bounding box of the points is scaled to fill the
	// image, less Padding on each side, and the y axis points up. Otherwise
	// point coordinates are used as pixel coordinates directly.
	Fit     bool
	Padding float64
}

// DefaultOptions draws white dots and a red line on a 500x500 black canvas,
// using point coordinates as pixels.
func DefaultOptions() Options {
	return Options{
		Width:       500,
		Height:      500,
		PointRadius: 2,
		LineWidth:   1,
		Background:  colornames.Black,
		PointColor:  colornames.White,
		LineColor:   colornames.Red,
		Padding:     10,
	}
}

// Draw renders the points, then a line between the two points of pair. No
// line is drawn if pair is closest.NoPair.
func Draw(points closest.PointList, pair closest.Pair, opts Options) image.Image {
	return draw(points, pair, opts).Image()
}

func draw(points closest.PointList, pair closest.Pair, opts Options) *gg.Context {
	c := gg.NewContext(opts.Width, opts.Height)
	c.SetColor(opts.Background)
	c.Clear()

	if opts.Fit {
		fit(c, points, opts)
	}

	c.SetColor(opts.PointColor)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, opts.PointRadius/currentScale(c))
	}
	c.Fill()

	if pair.Found() {
		c.SetColor(opts.LineColor)
		c.SetLineWidth(opts.LineWidth)
		c.DrawLine(pair.A.X, pair.A.Y, pair.B.X, pair.B.Y)
		c.Stroke()
	}
	return c
}

// Set up the context transform so the bounding box of the points fills the
// canvas, with the origin at the bottom left.
func fit(c *gg.Context, points closest.PointList, opts Options) {
	if len(points) == 0 {
		return
	}
	min, max := points.Bounds()

	// A single point, or points on one axis-aligned line, have no extent on
	// at least one axis. Give them a unit extent so the scale is finite.
	spanX := max.X - min.X
	spanY := max.Y - min.Y
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	innerWidth := float64(opts.Width) - 2*opts.Padding
	innerHeight := float64(opts.Height) - 2*opts.Padding
	scale := innerWidth / spanX
	if s := innerHeight / spanY; s < scale {
		scale = s
	}

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(opts.Height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(opts.Padding, opts.Padding)
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)
}

// gg scales path geometry along with the transform, so radii have to be
// divided by the current scale to stay a fixed size in pixels. Line widths are
// applied in device space and need no correction.
func currentScale(c *gg.Context) float64 {
	x0, y0 := c.TransformPoint(0, 0)
	x1, y1 := c.TransformPoint(1, 0)
	return closest.Distance(closest.Point{X: x0, Y: y0}, closest.Point{X: x1, Y: y1})
}

// EncodePNG renders and writes the image as PNG.
func EncodePNG(w io.Writer, points closest.PointList, pair closest.Pair, opts Options) error {
	return errors.Wrap(draw(points, pair, opts).EncodePNG(w), "encoding png")
}

// SavePNG renders the image to a PNG file at path.
func SavePNG(path string, points closest.PointList, pair closest.Pair, opts Options) error {
	return errors.Wrapf(draw(points, pair, opts).SavePNG(path), "saving %s", path)
}
