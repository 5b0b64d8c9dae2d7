// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning the shortest exit distance and all tied-shortest route cells.
package bfs

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/towermaze/gridgraph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	queue []gridgraph.Coord
	order []gridgraph.Coord
}

// ShortestPaths runs breadth-first search on g from start to the nearest
// Exit tile, applying any number of functional Options.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, ErrNoPath when no exit is reachable
// (within MaxDepth), or any user-supplied hook error.
//
// The scratch fields of every node in g are reset first and left holding
// this search's distances afterwards.
func ShortestPaths(g *gridgraph.Grid, start gridgraph.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	g.ResetScratch()
	w := &walker{
		grid:  g,
		opts:  o,
		queue: make([]gridgraph.Coord, 0, g.Len()),
		order: make([]gridgraph.Coord, 0, g.Len()),
	}
	if !g.Traversable(start) {
		return nil, ErrNoPath
	}

	exit, err := w.loop(start)
	if err != nil {
		return nil, err
	}

	end := g.Node(exit)
	cells := mapset.New[gridgraph.Coord]()
	w.collect(end, &cells)

	res := &Result{
		Distance: end.Distance(),
		Exit:     exit,
		Cells:    make([]gridgraph.Coord, 0, cells.Size()),
		Order:    w.order,
	}
	cells.Each(func(c gridgraph.Coord) {
		res.Cells = append(res.Cells, c)
	})
	sort.Slice(res.Cells, func(i, j int) bool {
		return g.Index(res.Cells[i]) < g.Index(res.Cells[j])
	})

	return res, nil
}

// Distance is a convenience wrapper returning only the shortest exit
// distance, or false when no exit is reachable.
func Distance(g *gridgraph.Grid, start gridgraph.Coord) (int, bool) {
	res, err := ShortestPaths(g, start)
	if err != nil {
		return 0, false
	}
	return res.Distance, true
}

// loop processes the queue until an exit is dequeued, the queue drains,
// or the hook fails.
func (w *walker) loop(start gridgraph.Coord) (gridgraph.Coord, error) {
	w.grid.Node(start).Mark(0)
	w.queue = append(w.queue, start)

	for len(w.queue) > 0 {
		c := w.queue[0]
		w.queue = w.queue[1:]
		n := w.grid.Node(c)

		w.order = append(w.order, c)
		if err := w.opts.OnVisit(c, n.Distance()); err != nil {
			return gridgraph.Coord{}, fmt.Errorf("bfs: OnVisit error at %v: %w", c, err)
		}
		if n.Kind == gridgraph.Exit {
			return c, nil
		}
		w.enqueueNeighbors(n)
	}

	return gridgraph.Coord{}, ErrNoPath
}

// enqueueNeighbors marks and enqueues every unseen traversable neighbor
// within MaxDepth.
func (w *walker) enqueueNeighbors(n *gridgraph.Node) {
	next := n.Distance() + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, c := range n.Neighbors {
		nb := w.grid.Node(c)
		if nb.Visited() || !nb.Kind.Traversable() {
			continue
		}
		nb.Mark(next)
		w.queue = append(w.queue, c)
	}
}

// collect walks backwards from n through visited neighbors whose distance
// is exactly one less, adding each to cells. The start (distance 0) is not
// added.
func (w *walker) collect(n *gridgraph.Node, cells *mapset.Set[gridgraph.Coord]) {
	for _, c := range n.Neighbors {
		nb := w.grid.Node(c)
		if !nb.Visited() || nb.Distance() != n.Distance()-1 || cells.Has(c) {
			continue
		}
		if nb.Distance() == 0 {
			continue
		}
		cells.Put(c)
		w.collect(nb, cells)
	}
}
