// Package gridgraph treats a rectangular tower-defense map as a
// 4-connected graph of tiles, the model every search in towermaze runs on.
//
// What:
//
//   - Grid wraps a row-major arena of Nodes built from a [][]TileKind table.
//   - Each TileKind carries two derived properties: Traversable (an enemy may
//     step on it) and Buildable (a tower may be placed on it).
//   - Neighbor lists are computed once at construction and only reference
//     tiles that were traversable at that moment. Later occupancy changes
//     (Free/Path ↔ Occupied) are seen through Traversable at query time; the
//     lists themselves never change.
//   - ReachableFrom flood-fills the tiles an enemy can reach right now.
//   - Overlay and Render draw a placement on top of the map.
//
// Why:
//
//   - Maze building: the placement search toggles tiles in place and must
//     restore them, so the grid is a single mutable owner-held value.
//   - Level design: spawn/exit lookup and reachability checks for map editors.
//
// Complexity:
//
//   - NewGrid:        O(W×H), Memory: O(W×H).
//   - ReachableFrom:  O(W×H), Memory: O(W×H).
//   - Kind/SetKind:   O(1).
//
// Tile codes (as stored in map files):
//
//	0 Free  1 Unbuildable  2 Void  3 Spawn  4 Exit  5 Occupied  6 Path
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTile: a tile code outside 0..6.
//   - ErrOutOfBounds: a coordinate outside the grid.
//
// A Grid is not safe for concurrent use. One search owns it at a time.
package gridgraph
