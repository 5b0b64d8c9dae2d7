// Package gridgraph provides the tile grid every towermaze search runs on.
// It supports:
//
//   - Four-connectivity with boundary clipping (no wraparound)
//   - Traversable/buildable queries against the current tile kinds
//   - In-place kind mutation for tower placement and backtracking
//   - Spawn and exit lookup
package gridgraph

import "fmt"

// offsets4 lists neighbor deltas in the order down, left, right, up.
var offsets4 = [][2]int{{0, 1}, {-1, 0}, {1, 0}, {0, -1}}

// NewGrid constructs a Grid from a non-empty, rectangular table of kinds,
// indexed kinds[y][x]. The input is copied.
// Returns ErrEmptyGrid if kinds has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrUnknownTile if any kind is outside the known range.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(kinds [][]TileKind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(kinds), len(kinds[0])
	for y, row := range kinds {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, k := range row {
			if !k.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownTile, uint8(k), x, y)
			}
		}
	}

	g := &Grid{
		Width:           w,
		Height:          h,
		nodes:           make([]Node, w*h),
		neighborOffsets: offsets4,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.nodes[g.index(x, y)] = Node{Coord: Coord{X: x, Y: y}, Kind: kinds[y][x]}
		}
	}
	g.fillNeighbors()

	return g, nil
}

// FromCodes builds a Grid from raw map-file codes (0..6).
// Codes outside that range yield ErrUnknownTile.
func FromCodes(codes [][]int) (*Grid, error) {
	kinds := make([][]TileKind, len(codes))
	for y, row := range codes {
		kinds[y] = make([]TileKind, len(row))
		for x, c := range row {
			if c < 0 || c >= int(kindCount) {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownTile, c, x, y)
			}
			kinds[y][x] = TileKind(c)
		}
	}

	return NewGrid(kinds)
}

// fillNeighbors links every traversable node to its traversable 4-neighbors.
// Non-traversable nodes get no neighbors and are never listed as one.
func (g *Grid) fillNeighbors() {
	for i := range g.nodes {
		n := &g.nodes[i]
		if !n.Kind.Traversable() {
			continue
		}
		n.Neighbors = make([]Coord, 0, len(g.neighborOffsets))
		for _, d := range g.neighborOffsets {
			nx, ny := n.Coord.X+d[0], n.Coord.Y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			if !g.nodes[g.index(nx, ny)].Kind.Traversable() {
				continue
			}
			n.Neighbors = append(n.Neighbors, Coord{X: nx, Y: ny})
		}
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether c lies within the grid boundaries.
func (g *Grid) Contains(c Coord) bool { return g.InBounds(c.X, c.Y) }

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.nodes) }

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Index maps c to its row-major index. c must be in bounds.
func (g *Grid) Index(c Coord) int { return g.index(c.X, c.Y) }

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}

// Node returns the node at c, or nil when c is out of bounds.
// The pointer stays valid for the grid's lifetime.
func (g *Grid) Node(c Coord) *Node {
	if !g.Contains(c) {
		return nil
	}
	return &g.nodes[g.index(c.X, c.Y)]
}

// Kind returns the current kind at c. Out-of-bounds cells read as Void.
func (g *Grid) Kind(c Coord) TileKind {
	if !g.Contains(c) {
		return Void
	}
	return g.nodes[g.index(c.X, c.Y)].Kind
}

// SetKind overwrites the kind at c. Neighbor lists are not recomputed.
func (g *Grid) SetKind(c Coord, k TileKind) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTile, uint8(k))
	}
	g.nodes[g.index(c.X, c.Y)].Kind = k
	return nil
}

// Traversable reports whether c can be stepped on now.
func (g *Grid) Traversable(c Coord) bool { return g.Kind(c).Traversable() }

// Buildable reports whether a tower may be placed on c now.
func (g *Grid) Buildable(c Coord) bool { return g.Kind(c).Buildable() }

// Neighbors returns the fixed neighbor list of c. Callers must still check
// Traversable, since tiles may have become Occupied since construction.
func (g *Grid) Neighbors(c Coord) []Coord {
	n := g.Node(c)
	if n == nil {
		return nil
	}
	return n.Neighbors
}

// NodesOfKind returns all coordinates currently of kind k, row-major.
func (g *Grid) NodesOfKind(k TileKind) []Coord {
	var out []Coord
	for i := range g.nodes {
		if g.nodes[i].Kind == k {
			out = append(out, g.nodes[i].Coord)
		}
	}
	return out
}

// Spawn returns the first Spawn tile in row-major order.
func (g *Grid) Spawn() (Coord, bool) {
	for i := range g.nodes {
		if g.nodes[i].Kind == Spawn {
			return g.nodes[i].Coord, true
		}
	}
	return Coord{}, false
}

// Exits returns every Exit tile, row-major.
func (g *Grid) Exits() []Coord { return g.NodesOfKind(Exit) }

// ResetScratch clears the breadth-first scratch fields of every node.
func (g *Grid) ResetScratch() {
	for i := range g.nodes {
		g.nodes[i].visited = false
		g.nodes[i].distance = 0
	}
}

// Kinds returns a deep copy of the current kinds, indexed [y][x].
func (g *Grid) Kinds() [][]TileKind {
	out := make([][]TileKind, g.Height)
	for y := 0; y < g.Height; y++ {
		out[y] = make([]TileKind, g.Width)
		for x := 0; x < g.Width; x++ {
			out[y][x] = g.nodes[g.index(x, y)].Kind
		}
	}
	return out
}

// Codes returns the current kinds as map-file codes, indexed [y][x].
func (g *Grid) Codes() [][]int {
	out := make([][]int, g.Height)
	for y := 0; y < g.Height; y++ {
		out[y] = make([]int, g.Width)
		for x := 0; x < g.Width; x++ {
			out[y][x] = int(g.nodes[g.index(x, y)].Kind)
		}
	}
	return out
}

// Overlay returns a copy of the current kinds with every in-bounds cell of
// placement drawn as Occupied. The grid itself is not modified.
func (g *Grid) Overlay(placement []Coord) [][]TileKind {
	out := g.Kinds()
	for _, c := range placement {
		if g.Contains(c) {
			out[c.Y][c.X] = Occupied
		}
	}
	return out
}
