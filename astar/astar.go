package astar

import (
	"container/heap"

	"github.com/katalvlaran/towermaze/gridgraph"
)

// Search runs A* on g from start towards the nearest of goals under the
// current tile kinds.
//
// Returns (Result, true) with the optimal distance and one optimal path, or
// (Result{}, false) when g is nil, goals is empty, start is out of bounds or
// not traversable, or no goal can be reached.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Search(g *gridgraph.Grid, start gridgraph.Coord, goals []gridgraph.Coord) (Result, bool) {
	if g == nil || len(goals) == 0 || !g.Traversable(start) {
		return Result{}, false
	}

	n := g.Len()
	r := &runner{
		grid:   g,
		goals:  goals,
		isGoal: make([]bool, n),
		gScore: make([]int, n),
		parent: make([]int, n),
		closed: make([]bool, n),
		open:   make(openList, 0, 64),
	}
	for _, c := range goals {
		if g.Contains(c) {
			r.isGoal[g.Index(c)] = true
		}
	}
	for i := range r.gScore {
		r.gScore[i] = -1
		r.parent[i] = -1
	}

	goal, ok := r.run(g.Index(start))
	if !ok {
		return Result{}, false
	}

	return Result{Distance: r.gScore[goal], Path: r.path(goal)}, true
}

// runner holds the mutable state for a single Search.
type runner struct {
	grid   *gridgraph.Grid
	goals  []gridgraph.Coord
	isGoal []bool
	gScore []int // -1 until discovered
	parent []int // -1 for start and undiscovered cells
	closed []bool
	open   openList
	seq    int
}

// heuristic is the Manhattan distance from idx to the closest goal.
func (r *runner) heuristic(idx int) int {
	c := r.grid.Coordinate(idx)
	best := -1
	for _, goal := range r.goals {
		if d := c.Manhattan(goal); best < 0 || d < best {
			best = d
		}
	}
	return best
}

func (r *runner) push(idx, g int) {
	h := r.heuristic(idx)
	heap.Push(&r.open, openItem{idx: idx, g: g, f: g + h, h: h, seq: r.seq})
	r.seq++
}

// run expands nodes until a goal is popped or the open list drains.
func (r *runner) run(start int) (int, bool) {
	r.gScore[start] = 0
	r.push(start, 0)

	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(openItem)
		u := item.idx
		if r.closed[u] || item.g != r.gScore[u] {
			continue // stale entry
		}
		if r.isGoal[u] {
			return u, true
		}
		r.closed[u] = true

		for _, nb := range r.grid.Neighbors(r.grid.Coordinate(u)) {
			if !r.grid.Traversable(nb) {
				continue
			}
			v := r.grid.Index(nb)
			if r.closed[v] {
				continue
			}
			ng := r.gScore[u] + 1
			if r.gScore[v] >= 0 && ng >= r.gScore[v] {
				continue
			}
			r.gScore[v] = ng
			r.parent[v] = u
			r.push(v, ng)
		}
	}

	return -1, false
}

// path walks parent links back from goal and returns start→goal order.
func (r *runner) path(goal int) []gridgraph.Coord {
	var rev []gridgraph.Coord
	for at := goal; at >= 0; at = r.parent[at] {
		rev = append(rev, r.grid.Coordinate(at))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
