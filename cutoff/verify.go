package cutoff

import (
	"fmt"

	"github.com/katalvlaran/towermaze/bfs"
	"github.com/katalvlaran/towermaze/gridgraph"
)

// Verify places p on g, re-scores the map with breadth-first search and
// restores g before returning.
//
// Every cell of p must be on the grid and buildable at the moment it is
// placed, which also rules out placing two towers on the same cell;
// otherwise ErrIllegalPlacement is returned. An unsolvable result yields
// bfs.ErrNoPath.
func Verify(g *gridgraph.Grid, p Placement) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	start, ok := g.Spawn()
	if !ok {
		return 0, ErrNoSpawn
	}

	type saved struct {
		node  *gridgraph.Node
		prior gridgraph.TileKind
	}
	undo := make([]saved, 0, len(p))
	defer func() {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i].node.Kind = undo[i].prior
		}
	}()

	for i, c := range p {
		n := g.Node(c)
		if n == nil || !n.Kind.Buildable() {
			return 0, fmt.Errorf("%w: tower %d at %v on %v", ErrIllegalPlacement, i, c, g.Kind(c))
		}
		undo = append(undo, saved{node: n, prior: n.Kind})
		n.Kind = gridgraph.Occupied
	}

	res, err := bfs.ShortestPaths(g, start)
	if err != nil {
		return 0, err
	}
	return res.Distance, nil
}
