package cutoff

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/towermaze/astar"
	"github.com/katalvlaran/towermaze/bfs"
	"github.com/katalvlaran/towermaze/gridgraph"
)

// Build searches tower placements of at most MaxTowers towers on g that
// maximize the shortest spawn→exit distance.
//
// Preconditions, checked in order: g non-nil (ErrGridNil), valid options
// (ErrOptionViolation), a Spawn tile (ErrNoSpawn, the first one in row-major
// order is used), at least one Exit tile (ErrNoExit).
//
// If the context given with WithContext is cancelled, Build stops at the
// next configuration and returns the partial result together with the
// context's error. g is restored to its original kinds in every case.
//
// Complexity: exponential in MaxTowers in the worst case; every scored
// configuration costs one A* (or BFS) run, O(V log V).
func Build(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start, ok := g.Spawn()
	if !ok {
		return nil, ErrNoSpawn
	}
	goals := g.Exits()
	if len(goals) == 0 {
		return nil, ErrNoExit
	}

	s := &searcher{
		grid:      g,
		start:     start,
		goals:     goals,
		opts:      o,
		exhausted: newExhaustion(o.MaxTowers),
	}

	began := time.Now()
	s.recurse(Placement{}, o.MaxTowers)
	took := time.Since(began)

	res := s.result(took)
	o.Logger.Debug().
		Uint64("combinations", res.Combinations).
		Dur("took", took).
		Int("max_towers", o.MaxTowers).
		Str("candidates", o.Candidates.String()).
		Int("distance", res.Distance).
		Int("placements", len(res.Placements)).
		Msg("cutoff search finished")

	if s.err != nil {
		return res, s.err
	}
	return res, nil
}

// searcher is the state of one Build call.
type searcher struct {
	grid  *gridgraph.Grid
	start gridgraph.Coord
	goals []gridgraph.Coord
	opts  Options

	combinations uint64
	best         int
	bestSet      bool
	placements   []Placement
	exhausted    *exhaustion

	err error // context error, stops the search
}

// recurse scores the current occupancy, records it, and branches on one
// more tower per candidate cell while towers are left.
// Invariant: the Occupied cells added by the search are exactly placed.
func (s *searcher) recurse(placed Placement, towersLeft int) {
	if err := s.opts.Ctx.Err(); err != nil {
		s.err = err
		return
	}
	s.combinations++

	dist, route, ok := s.score()
	if !ok {
		if towersLeft > 0 && len(placed) > 0 {
			s.exhausted.mark(towersLeft, placed[len(placed)-1])
		}
		return
	}
	s.record(dist, placed)

	if towersLeft == 0 {
		return
	}

	for _, c := range s.exhausted.filter(towersLeft, route) {
		if !s.grid.Buildable(c) {
			continue
		}
		next := append(placed[:len(placed):len(placed)], c)
		s.withTower(c, func() {
			s.recurse(next, towersLeft-1)
		})
		if s.err != nil {
			return
		}
		s.exhausted.mark(towersLeft, c)
		if towersLeft > 1 {
			s.exhausted.clear(towersLeft - 1)
		}
	}
}

// score runs the configured primitive on the current occupancy and returns
// the distance and the candidate cells.
func (s *searcher) score() (int, []gridgraph.Coord, bool) {
	if s.opts.Candidates == AllShortestPaths {
		res, err := bfs.ShortestPaths(s.grid, s.start)
		if err != nil {
			return 0, nil, false
		}
		return res.Distance, res.Cells, true
	}
	res, ok := astar.Search(s.grid, s.start, s.goals)
	if !ok {
		return 0, nil, false
	}
	return res.Distance, res.Path, true
}

// withTower occupies c for the duration of fn and restores its prior kind
// however fn returns.
func (s *searcher) withTower(c gridgraph.Coord, fn func()) {
	n := s.grid.Node(c)
	prior := n.Kind
	n.Kind = gridgraph.Occupied
	defer func() { n.Kind = prior }()
	fn()
}

// record compares dist with the best so far.
func (s *searcher) record(dist int, placed Placement) {
	switch {
	case !s.bestSet || dist > s.best:
		s.best, s.bestSet = dist, true
		s.placements = []Placement{placed.clone()}
	case dist == s.best:
		s.placements = append(s.placements, placed.clone())
	}
}

// result builds the aggregate, dropping placements that repeat an earlier
// one's cell set.
func (s *searcher) result(took time.Duration) *Result {
	res := &Result{
		Distance:     s.best,
		Solved:       s.bestSet,
		Placements:   make([]Placement, 0, len(s.placements)),
		Combinations: s.combinations,
		Duration:     took,
		MaxTowers:    s.opts.MaxTowers,
		Candidates:   s.opts.Candidates,
	}
	seen := make(map[string]struct{}, len(s.placements))
	for _, p := range s.placements {
		k := s.key(p)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		res.Placements = append(res.Placements, p)
	}
	return res
}

// key is the order-independent identity of a placement: its sorted cell
// indices.
func (s *searcher) key(p Placement) string {
	idx := make([]int, len(p))
	for i, c := range p {
		idx[i] = s.grid.Index(c)
	}
	sort.Ints(idx)
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
