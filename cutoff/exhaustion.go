package cutoff

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/towermaze/gridgraph"
)

// exhaustion records, per "towers left" level, the cells already fully
// explored from the current ancestor placement. levels[0] is never used:
// nodes with no towers left do not generate candidates.
type exhaustion struct {
	levels []mapset.Set[gridgraph.Coord]
}

func newExhaustion(maxTowers int) *exhaustion {
	e := &exhaustion{levels: make([]mapset.Set[gridgraph.Coord], maxTowers+1)}
	for l := range e.levels {
		e.levels[l] = mapset.New[gridgraph.Coord]()
	}
	return e
}

// top is the highest level, equal to the tower budget.
func (e *exhaustion) top() int { return len(e.levels) - 1 }

// mark records c as exhausted at level. Level 0 and out-of-range levels
// are ignored.
func (e *exhaustion) mark(level int, c gridgraph.Coord) {
	if level < 1 || level > e.top() {
		return
	}
	e.levels[level].Put(c)
}

// exhausted reports whether c is marked at level or any level above it.
func (e *exhaustion) exhausted(level int, c gridgraph.Coord) bool {
	if level < 1 {
		level = 1
	}
	for l := level; l <= e.top(); l++ {
		if e.levels[l].Has(c) {
			return true
		}
	}
	return false
}

// clear forgets every cell marked at level.
func (e *exhaustion) clear(level int) {
	if level < 1 || level > e.top() {
		return
	}
	e.levels[level] = mapset.New[gridgraph.Coord]()
}

// size is the number of cells marked at level.
func (e *exhaustion) size(level int) int {
	if level < 0 || level > e.top() {
		return 0
	}
	return e.levels[level].Size()
}

// filter returns cells minus everything exhausted at level..top, keeping
// the input order and dropping repeats.
func (e *exhaustion) filter(level int, cells []gridgraph.Coord) []gridgraph.Coord {
	out := make([]gridgraph.Coord, 0, len(cells))
	seen := mapset.New[gridgraph.Coord]()
	for _, c := range cells {
		if seen.Has(c) || e.exhausted(level, c) {
			continue
		}
		seen.Put(c)
		out = append(out, c)
	}
	return out
}
