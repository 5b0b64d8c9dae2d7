package astar

import "github.com/katalvlaran/towermaze/gridgraph"

// Result is the outcome of a successful Search.
//   - Distance: number of steps from start to the goal reached.
//   - Path: the cells of one optimal route, start and goal included, in
//     walking order.
type Result struct {
	Distance int
	Path     []gridgraph.Coord
}

// Goal returns the last cell of the path.
func (r Result) Goal() gridgraph.Coord {
	return r.Path[len(r.Path)-1]
}

// openItem is one open-list entry.
// seq is the push counter, used to break ties deterministically.
type openItem struct {
	idx int
	g   int
	f   int
	h   int
	seq int
}

// openList is a min-heap of openItem ordered by f, then h, then seq.
// Stale entries are skipped on pop (lazy decrease-key).
type openList []openItem

func (pq openList) Len() int { return len(pq) }

func (pq openList) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

func (pq openList) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openList) Push(x interface{}) { *pq = append(*pq, x.(openItem)) }

func (pq *openList) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
