package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/towermaze/bfs"
	"github.com/katalvlaran/towermaze/gridgraph"
)

func mustGrid(t testing.TB, codes [][]int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromCodes(codes)
	require.NoError(t, err)
	return g
}

func c(x, y int) gridgraph.Coord { return gridgraph.Coord{X: x, Y: y} }

// TestShortestPaths_Errors verifies that invalid inputs and options are rejected.
func TestShortestPaths_Errors(t *testing.T) {
	_, err := bfs.ShortestPaths(nil, c(0, 0))
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	g := mustGrid(t, [][]int{{3, 0, 4}})
	_, err = bfs.ShortestPaths(g, c(3, 0))
	assert.ErrorIs(t, err, bfs.ErrStartOutOfBounds)

	_, err = bfs.ShortestPaths(g, c(0, 0), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestShortestPaths_NoPath(t *testing.T) {
	g := mustGrid(t, [][]int{{3, 2, 4}})
	_, err := bfs.ShortestPaths(g, c(0, 0))
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	_, ok := bfs.Distance(g, c(0, 0))
	assert.False(t, ok)

	// A blocked start never reaches anything.
	g2 := mustGrid(t, [][]int{{5, 4}})
	_, err = bfs.ShortestPaths(g2, c(0, 0))
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestShortestPaths_Corridor(t *testing.T) {
	g := mustGrid(t, [][]int{{3, 0, 0, 4}})

	res, err := bfs.ShortestPaths(g, c(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Distance)
	assert.Equal(t, c(3, 0), res.Exit)
	assert.Equal(t, []gridgraph.Coord{c(1, 0), c(2, 0)}, res.Cells)
	assert.Equal(t, []gridgraph.Coord{c(0, 0), c(1, 0), c(2, 0), c(3, 0)}, res.Order)
	assert.True(t, res.Contains(c(1, 0)))
	assert.False(t, res.Contains(c(0, 0)), "start is excluded")
	assert.False(t, res.Contains(c(3, 0)), "exit is excluded")
}

// TestShortestPaths_AllTiedCells checks that every cell of every tied route
// is collected on an open 3×3 map (six monotone routes cover all cells).
func TestShortestPaths_AllTiedCells(t *testing.T) {
	g := mustGrid(t, [][]int{
		{3, 0, 0},
		{0, 0, 0},
		{0, 0, 4},
	})

	res, err := bfs.ShortestPaths(g, c(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Distance)
	assert.Equal(t, []gridgraph.Coord{
		c(1, 0), c(2, 0),
		c(0, 1), c(1, 1), c(2, 1),
		c(0, 2), c(1, 2),
	}, res.Cells)
}

// TestShortestPaths_DetourCellsOnly verifies that cells off every shortest
// route are not collected.
//
//	S . E
//	. . .
func TestShortestPaths_DetourCellsOnly(t *testing.T) {
	g := mustGrid(t, [][]int{
		{3, 0, 4},
		{0, 0, 0},
	})

	res, err := bfs.ShortestPaths(g, c(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Distance)
	assert.Equal(t, []gridgraph.Coord{c(1, 0)}, res.Cells)

	require.NoError(t, g.SetKind(c(1, 0), gridgraph.Occupied))
	res, err = bfs.ShortestPaths(g, c(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Distance)
	assert.Equal(t, []gridgraph.Coord{c(0, 1), c(1, 1), c(2, 1)}, res.Cells)
}

// TestShortestPaths_ScratchReset ensures a second run does not reuse stale
// visited flags from the first.
func TestShortestPaths_ScratchReset(t *testing.T) {
	g := mustGrid(t, [][]int{{3, 0, 0, 4}})

	first, err := bfs.ShortestPaths(g, c(0, 0))
	require.NoError(t, err)
	second, err := bfs.ShortestPaths(g, c(0, 0))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestShortestPaths_MaxDepth(t *testing.T) {
	g := mustGrid(t, [][]int{{3, 0, 0, 4}})

	_, err := bfs.ShortestPaths(g, c(0, 0), bfs.WithMaxDepth(2))
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	res, err := bfs.ShortestPaths(g, c(0, 0), bfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Distance)

	res, err = bfs.ShortestPaths(g, c(0, 0), bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Distance)
}

func TestShortestPaths_OnVisit(t *testing.T) {
	g := mustGrid(t, [][]int{{3, 0, 0, 4}})

	var depths []int
	_, err := bfs.ShortestPaths(g, c(0, 0), bfs.WithOnVisit(func(_ gridgraph.Coord, d int) error {
		depths = append(depths, d)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, depths)

	stop := errors.New("stop")
	_, err = bfs.ShortestPaths(g, c(0, 0), bfs.WithOnVisit(func(cell gridgraph.Coord, _ int) error {
		if cell == c(2, 0) {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestShortestPaths_NearestExit picks the closer of two exits.
func TestShortestPaths_NearestExit(t *testing.T) {
	g := mustGrid(t, [][]int{{4, 0, 0, 3, 0, 4}})

	res, err := bfs.ShortestPaths(g, c(3, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Distance)
	assert.Equal(t, c(5, 0), res.Exit)
	assert.Equal(t, []gridgraph.Coord{c(4, 0)}, res.Cells)
}
