// Package bfs provides breadth-first search over a gridgraph.Grid from a
// spawn tile to the nearest exit, returning the shortest distance and the
// full set of cells lying on any tied-shortest route.
//
// What
//
//   - Resets the grid's per-node scratch fields (visited, distance).
//   - Explores tiles level by level from the start, reading tile kinds at
//     query time, so Occupied tiles act as walls just like Void.
//   - Stops at the first Exit dequeued; breadth-first order guarantees it is
//     a nearest one.
//   - Walks back from that exit through neighbors whose recorded distance is
//     exactly one less, collecting every cell of every tied-shortest route.
//   - Supports an OnVisit hook (may abort with an error) and a MaxDepth limit
//     (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Validates placements found by the A*-driven search in package cutoff.
//   - Supplies the complete tied-path candidate set when the cheaper one-path
//     approximation is not wanted.
//
// Determinism
//
//	Neighbor lists are fixed at grid construction (down, left, right, up), so
//	the visit order is fully reproducible. Result.Cells is sorted row-major.
//
// Complexity (V = W×H)
//
//   - Time:   O(V)   (each tile and each of its ≤4 edges seen at most once)
//   - Memory: O(V)   for the queue, visit order and the collected cell set
//
// Errors
//
//   - ErrGridNil if the grid pointer is nil.
//   - ErrStartOutOfBounds if the start cell is not on the grid.
//   - ErrOptionViolation for invalid options (e.g. negative MaxDepth).
//   - ErrNoPath if no exit is reachable.
//   - Any error returned by the OnVisit hook, wrapped.
//
// The grid's scratch fields are shared, so at most one search may run on a
// grid at a time.
package bfs
