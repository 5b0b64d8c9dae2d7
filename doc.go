// Package towermaze finds tower placements that make a tower-defense maze
// as long as possible for the enemies walking it.
//
// Given a tile map with a spawn, one or more exits and buildable ground,
// and a budget of k towers, towermaze searches placements of at most k
// towers that maximize the shortest spawn→exit route, keeping every
// placement tied for the best distance.
//
// Everything is organized into small subpackages:
//
//	gridgraph/ tile kinds, coordinates and the 4-connected grid
//	astar/     A* with Manhattan heuristic, the search's scoring step
//	bfs/       breadth-first search collecting all tied-shortest cells
//	cutoff/    the pruned backtracking placement search and Verify
//	mapfile/   JSON/YAML map documents with schema validation
//
// Quick ASCII example (S spawn, E exit, # tower):
//
//	S . E        S # E
//	. . .   →    . . .
//
// One tower raises the route from 2 steps to 4.
//
// The towermaze command (cmd/towermaze) loads data.json, runs the search
// and opens a terminal viewer to step through the tied placements.
//
//	go install github.com/katalvlaran/towermaze/cmd/towermaze@latest
package towermaze
