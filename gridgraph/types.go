// Package gridgraph defines tile kinds, coordinates and nodes
// for the gridgraph subpackage of github.com/katalvlaran/towermaze.
package gridgraph

import "fmt"

// TileKind is the category of a grid cell. Its numeric value is the code
// used in map files.
type TileKind uint8

const (
	// Free is open ground: walkable and buildable.
	Free TileKind = iota
	// Unbuildable is walkable ground that cannot hold a tower.
	Unbuildable
	// Void is neither walkable nor buildable.
	Void
	// Spawn is where enemies enter the maze.
	Spawn
	// Exit is where enemies leave the maze.
	Exit
	// Occupied holds a tower and blocks movement.
	Occupied
	// Path is a marked route tile: walkable and buildable.
	Path

	kindCount
)

var kindNames = [kindCount]string{
	Free:        "Free",
	Unbuildable: "Unbuildable",
	Void:        "Void",
	Spawn:       "Spawn",
	Exit:        "Exit",
	Occupied:    "Occupied",
	Path:        "Path",
}

// Valid reports whether k is one of the known kinds.
func (k TileKind) Valid() bool { return k < kindCount }

// String returns the kind name, or "TileKind(n)" for unknown values.
func (k TileKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("TileKind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Traversable reports whether an enemy may step on a tile of this kind.
func (k TileKind) Traversable() bool {
	switch k {
	case Free, Unbuildable, Spawn, Exit, Path:
		return true
	default:
		return false
	}
}

// Buildable reports whether a tower may be placed on a tile of this kind.
func (k TileKind) Buildable() bool {
	return k == Free || k == Path
}

// Glyph is the single-rune ASCII form used by Render.
func (k TileKind) Glyph() rune {
	switch k {
	case Free:
		return '.'
	case Unbuildable:
		return ','
	case Void:
		return ' '
	case Spawn:
		return 'S'
	case Exit:
		return 'E'
	case Occupied:
		return '#'
	case Path:
		return '+'
	default:
		return '?'
	}
}

// Coord identifies a cell by column X and row Y. It is a comparable value
// and can be used directly as a map key.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Manhattan returns |c.X-o.X| + |c.Y-o.Y|.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Node is one cell's record inside a Grid.
// Neighbors is fixed at construction; visited and distance are scratch
// fields owned by breadth-first searches and reset by Grid.ResetScratch.
type Node struct {
	Coord     Coord
	Kind      TileKind
	Neighbors []Coord

	visited  bool
	distance int
}

// Visited reports whether the last breadth-first search reached this node.
func (n *Node) Visited() bool { return n.visited }

// Distance is the breadth-first depth recorded by the last search.
// Meaningful only when Visited is true.
func (n *Node) Distance() int { return n.distance }

// Mark records a breadth-first visit at depth d.
func (n *Node) Mark(d int) {
	n.visited = true
	n.distance = d
}

// Grid is a rectangular, row-major arena of Nodes.
// Width and Height define dimensions; nodes[y*Width+x] holds cell (x, y).
// neighborOffsets is fixed to 4-connectivity.
type Grid struct {
	Width, Height   int
	nodes           []Node
	neighborOffsets [][2]int
}
