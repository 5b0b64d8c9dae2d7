// Package cutoff defines options, results and sentinel errors
// for the cutoff placement search.
package cutoff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/towermaze/gridgraph"
)

// Sentinel errors for placement search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("cutoff: grid is nil")

	// ErrNoSpawn is returned when the grid has no Spawn tile.
	ErrNoSpawn = errors.New("cutoff: grid has no spawn")

	// ErrNoExit is returned when the grid has no Exit tile.
	ErrNoExit = errors.New("cutoff: grid has no exit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cutoff: invalid option supplied")

	// ErrIllegalPlacement is returned by Verify for a placement that puts a
	// tower on a non-buildable, occupied or off-grid cell.
	ErrIllegalPlacement = errors.New("cutoff: illegal placement")
)

// DefaultMaxTowers is the tower budget used when WithMaxTowers is not given.
const DefaultMaxTowers = 8

// CandidateMode selects where candidate tower cells come from at each step.
type CandidateMode int

const (
	// OnePath uses the cells of one optimal route found by A*.
	OnePath CandidateMode = iota
	// AllShortestPaths uses every cell of every tied-shortest route found by BFS.
	AllShortestPaths
)

// String returns the flag spelling of the mode.
func (m CandidateMode) String() string {
	switch m {
	case OnePath:
		return "one-path"
	case AllShortestPaths:
		return "all-paths"
	default:
		return fmt.Sprintf("CandidateMode(%d)", int(m))
	}
}

// ParseCandidateMode is the inverse of CandidateMode.String.
func ParseCandidateMode(s string) (CandidateMode, error) {
	switch s {
	case "one-path", "":
		return OnePath, nil
	case "all-paths":
		return AllShortestPaths, nil
	default:
		return OnePath, fmt.Errorf("%w: unknown candidate mode %q", ErrOptionViolation, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m CandidateMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *CandidateMode) UnmarshalText(b []byte) error {
	v, err := ParseCandidateMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Option configures Build via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// MaxTowers is the tower budget (≥ 0).
	MaxTowers int

	// Candidates picks the candidate cell source.
	Candidates CandidateMode

	// Logger receives a debug summary when the search finishes.
	Logger zerolog.Logger

	// Ctx, if cancelled, stops the search at the next scored configuration.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultMaxTowers, OnePath candidates,
// a no-op logger and a background context.
func DefaultOptions() Options {
	return Options{
		MaxTowers:  DefaultMaxTowers,
		Candidates: OnePath,
		Logger:     zerolog.Nop(),
		Ctx:        context.Background(),
	}
}

// WithMaxTowers sets the tower budget. n < 0 → ErrOptionViolation.
func WithMaxTowers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxTowers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTowers = n
	}
}

// WithCandidates selects the candidate cell source.
func WithCandidates(m CandidateMode) Option {
	return func(o *Options) {
		if m != OnePath && m != AllShortestPaths {
			o.err = fmt.Errorf("%w: unknown candidate mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Candidates = m
	}
}

// WithLogger sets the logger used for the search summary.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithContext sets a context whose cancellation aborts the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Placement is a sequence of tower cells, in the order they were placed.
type Placement []gridgraph.Coord

// clone returns a non-nil copy of p.
func (p Placement) clone() Placement {
	out := make(Placement, len(p))
	copy(out, p)
	return out
}

// Result is the aggregate handed to presentation layers.
//   - Distance: the best minimum route length, shared by all Placements.
//   - Solved: false only when the map has no route even without towers;
//     Placements is then empty.
//   - Placements: every distinct placement tied for Distance, in discovery
//     order. The same cells placed in a different order count once.
//   - Combinations: configurations scored.
//   - Duration: wall-clock time of the search.
type Result struct {
	Distance     int           `json:"distance"`
	Solved       bool          `json:"solved"`
	Placements   []Placement   `json:"placements"`
	Combinations uint64        `json:"combinations"`
	Duration     time.Duration `json:"duration_ns"`
	MaxTowers    int           `json:"max_towers"`
	Candidates   CandidateMode `json:"candidates"`
}

// Best returns the first tied-best placement, or nil when none exists.
func (r *Result) Best() Placement {
	if len(r.Placements) == 0 {
		return nil
	}
	return r.Placements[0]
}
