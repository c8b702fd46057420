package pointio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/closestpair/closest"
	"github.com/pkg/errors"
)

// ReadText reads one point per line, in the form "x y" or "x,y". Blank lines
// and lines starting with '#' are skipped.
func ReadText(r io.Reader) (points closest.PointList, err error) {
	defer func() {
		recoveredErr := handleParsePanicRecover(recover())
		if recoveredErr != nil {
			points = nil
			err = recoveredErr
		}
	}()

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		points = append(points, parsePoint(atLine(lineNumber), line))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(pos position, line string) closest.Point {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		fatalf(pos, "expected 2 coordinates, got %d in %q", len(parts), line)
	}
	return closest.Point{
		X: parseCoordinate(pos, parts[0]),
		Y: parseCoordinate(pos, parts[1]),
	}
}

func parseCoordinate(pos position, s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatalf(pos, "invalid coordinate %q", s)
	}
	if isNonFinite(v) {
		fatalf(pos, "coordinate %q is not finite", s)
	}
	return v
}

// WriteText writes points in the format ReadText accepts.
func WriteText(w io.Writer, points closest.PointList) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		bw.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "writing points")
}
