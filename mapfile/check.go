package mapfile

import "github.com/katalvlaran/towermaze/gridgraph"

// Check reports whether g is ready for a placement search: it needs a
// spawn, at least one exit, and a route between them with no towers.
func Check(g *gridgraph.Grid) error {
	spawn, ok := g.Spawn()
	if !ok {
		return ErrNoSpawn
	}
	exits := g.Exits()
	if len(exits) == 0 {
		return ErrNoExit
	}
	if !g.Connected(spawn, exits) {
		return ErrUnsolvable
	}
	return nil
}
