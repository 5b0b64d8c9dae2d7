package gridgraph

// ReachableFrom returns every cell an enemy standing on start can reach
// under the current tile kinds, in breadth-first order, start included.
// A non-traversable or out-of-bounds start yields nil.
//
// Occupied tiles block the fill even when they still appear in a fixed
// neighbor list.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) ReachableFrom(start Coord) []Coord {
	if !g.Traversable(start) {
		return nil
	}
	seen := make([]bool, len(g.nodes))
	i0 := g.index(start.X, start.Y)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := &g.nodes[queue[qi]]
		for _, nb := range u.Neighbors {
			vi := g.index(nb.X, nb.Y)
			if seen[vi] || !g.nodes[vi].Kind.Traversable() {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	out := make([]Coord, len(queue))
	for i, idx := range queue {
		out[i] = g.Coordinate(idx)
	}
	return out
}

// Connected reports whether any of goals is reachable from start now.
func (g *Grid) Connected(start Coord, goals []Coord) bool {
	if len(goals) == 0 {
		return false
	}
	want := make(map[Coord]struct{}, len(goals))
	for _, c := range goals {
		want[c] = struct{}{}
	}
	for _, c := range g.ReachableFrom(start) {
		if _, ok := want[c]; ok {
			return true
		}
	}
	return false
}
