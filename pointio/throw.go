package pointio

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors through every little parsing helper would add a lot of
// noise. Instead, the helpers panic with a *ParseError, and the exported
// readers recover it into a normal error return.

// Where a malformed point was found. Kind is "line" for text input, where
// Index is the 1-based source line, and "circle" for SVG input, where Index is
// the 1-based position of the <circle> element in document order.
type position struct {
	Kind  string
	Index int
}

func atLine(n int) position   { return position{"line", n} }
func atCircle(n int) position { return position{"circle", n} }

// ParseError reports a malformed point and where it was found.
type ParseError struct {
	Kind  string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Kind, e.Index, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Cause lets errors.Cause see through to the underlying problem.
func (e *ParseError) Cause() error { return e.Err }

// Panic with a *ParseError.
func fatalf(pos position, format string, args ...interface{}) {
	panic(&ParseError{Kind: pos.Kind, Index: pos.Index, Err: errors.Errorf(format, args...)})
}

func handleParsePanicRecover(r interface{}) error {
	if r != nil {
		if parseErr, ok := r.(*ParseError); ok {
			return parseErr
		}
		panic(r)
	}
	return nil
}
