// Package astar finds one shortest enemy route on a gridgraph.Grid with
// the A* algorithm.
//
// Every step costs 1 and the heuristic is the Manhattan distance to the
// nearest goal. On a 4-connected unit grid that heuristic is admissible and
// consistent, so the first goal popped from the open list is optimal and no
// node needs reopening.
//
// The search reads tile kinds at query time: a tile that became Occupied
// after the grid was built is a wall even though it still appears in the
// fixed neighbor lists.
//
// Only one optimal path is returned, not the union of all tied paths.
// Callers that need every tied-shortest cell use package bfs instead.
//
// Complexity:
//
//   - Time:   O(V log V) with V = W×H (lazy decrease-key heap).
//   - Memory: O(V) for g-scores, parents and closed flags.
//
// Search is the hot path of the placement search in package cutoff and
// allocates its working arrays once per call.
package astar
