package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/towermaze/cutoff"
	"github.com/katalvlaran/towermaze/gridgraph"
	"github.com/katalvlaran/towermaze/internal/store"
)

func openTemp(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache", "results.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := store.Open("")
	assert.ErrorIs(t, err, store.ErrEmptyPath)
}

func TestKey(t *testing.T) {
	a := [][]gridgraph.TileKind{{gridgraph.Spawn, gridgraph.Free, gridgraph.Exit}}
	b := [][]gridgraph.TileKind{{gridgraph.Spawn}, {gridgraph.Free}, {gridgraph.Exit}}

	k := store.Key(a, 2, cutoff.OnePath)
	assert.Len(t, k, 64)
	assert.Equal(t, k, store.Key(a, 2, cutoff.OnePath))
	assert.NotEqual(t, k, store.Key(b, 2, cutoff.OnePath), "shape matters")
	assert.NotEqual(t, k, store.Key(a, 3, cutoff.OnePath))
	assert.NotEqual(t, k, store.Key(a, 2, cutoff.AllShortestPaths))
}

func TestStore_PutGet(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	g, err := gridgraph.FromCodes([][]int{{3, 0, 4}, {0, 0, 0}})
	require.NoError(t, err)
	res, err := cutoff.Build(g, cutoff.WithMaxTowers(1))
	require.NoError(t, err)
	res.Duration = 1500 * time.Millisecond

	key := store.Key(g.Kinds(), 1, cutoff.OnePath)
	require.NoError(t, s.Put(ctx, key, res))

	got, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, res, got)
}

func TestStore_PutReplaces(t *testing.T) {
	s, path := openTemp(t)
	ctx := context.Background()

	first := &cutoff.Result{Distance: 3, Solved: true, Placements: []cutoff.Placement{{}}, Combinations: 3}
	second := &cutoff.Result{Placements: []cutoff.Placement{}, Combinations: 1, Candidates: cutoff.AllShortestPaths}
	require.NoError(t, s.Put(ctx, "k", first))
	require.NoError(t, s.Put(ctx, "k", second))

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, got)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	ctx := context.Background()
	res := &cutoff.Result{Distance: 7, Solved: true, Placements: []cutoff.Placement{{{X: 1, Y: 2}, {X: 3, Y: 4}}}, MaxTowers: 2}

	s, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "k", res))
	require.NoError(t, s.Close())

	s, err = store.Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, res, got)
}
