// Package cutoff searches tower placements that make the enemies' shortest
// spawn→exit route as long as possible, using at most MaxTowers towers.
//
// 🚀 How it works
//
//	Build scores the current map with a shortest-path primitive, records the
//	score against the best seen so far, then tries one more tower on every
//	cell of the route it just found and recurses. A tower placed anywhere
//	off the current shortest route cannot lengthen it, so route cells are
//	the only candidates worth trying at each step.
//
//	Two further cuts keep the exponential space small:
//	  • a cell already fully explored at a recursion level is "exhausted" for
//	    that level and every level above it (more towers left), so siblings
//	    never retry it;
//	  • once a child subtree is done, the exhaustion set one level below is
//	    cleared, since conclusions drawn under one ancestor placement do not
//	    carry over to the next sibling.
//
// ✨ Objective
//
//   - Maximize the minimum route length; every placement tied for the best
//     length is kept.
//   - Configurations with no route at all are dead leaves, never results.
//
// ⚙️ Usage
//
//	res, err := cutoff.Build(g, cutoff.WithMaxTowers(4))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Distance, len(res.Placements))
//
// Candidates
//
//   - OnePath (default): cells of the single optimal route returned by A*.
//     Fast, but with several disjoint shortest routes it may under-explore.
//   - AllShortestPaths: every cell of every tied-shortest route from BFS.
//
// The grid is mutated in place during the search and always restored,
// including when the optional context is cancelled. The search is strictly
// sequential; sibling order matters to the exhaustion cache.
package cutoff
