// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/towermaze/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell is not on the grid.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned when no exit is reachable from the start.
	ErrNoPath = errors.New("bfs: no exit reachable")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a cell is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c gridgraph.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(gridgraph.Coord, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c gridgraph.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a successful search:
//   - Distance: steps from the start to the nearest exit.
//   - Exit: the exit that was reached first.
//   - Cells: every cell on any tied-shortest route, start and exit excluded,
//     sorted row-major.
//   - Order: cells in visit sequence, up to and including the exit.
type Result struct {
	Distance int
	Exit     gridgraph.Coord
	Cells    []gridgraph.Coord
	Order    []gridgraph.Coord
}

// Contains reports whether c lies on some tied-shortest route.
// The start and exit cells are not reported.
func (r *Result) Contains(c gridgraph.Coord) bool {
	for _, x := range r.Cells {
		if x == c {
			return true
		}
	}
	return false
}
