// Package store caches placement search results in a local sqlite file so
// a repeated run on the same map and budget skips the search.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/towermaze/cutoff"
	"github.com/katalvlaran/towermaze/gridgraph"
)

// ErrEmptyPath is returned by Open for an empty database path.
var ErrEmptyPath = errors.New("store: empty db path")

// Store is a result cache backed by one sqlite database.
type Store struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open opens or creates the cache at path, creating parent directories.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = enc.Close()
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, enc: enc, dec: dec}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS results (
		key TEXT PRIMARY KEY,
		max_towers INTEGER NOT NULL,
		candidates TEXT NOT NULL,
		distance INTEGER NOT NULL,
		solved INTEGER NOT NULL,
		combinations INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		placements BLOB NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Close releases the database and codec resources.
func (s *Store) Close() error {
	s.dec.Close()
	if err := s.enc.Close(); err != nil {
		_ = s.db.Close()
		return err
	}
	return s.db.Close()
}

// Key is the cache identity of a search: the map's kinds, the tower budget
// and the candidate mode, hashed with sha256.
func Key(kinds [][]gridgraph.TileKind, maxTowers int, candidates cutoff.CandidateMode) string {
	h := sha256.New()
	for _, row := range kinds {
		line := make([]byte, len(row))
		for x, k := range row {
			line[x] = byte(k)
		}
		h.Write(line)
		h.Write([]byte{0xff})
	}
	h.Write([]byte(strconv.Itoa(maxTowers)))
	h.Write([]byte{0})
	h.Write([]byte(candidates.String()))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached result for key. ok is false on a miss.
func (s *Store) Get(ctx context.Context, key string) (*cutoff.Result, bool, error) {
	var (
		res        cutoff.Result
		candidates string
		solved     int
		combos     int64
		durationMS int64
		blob       []byte
	)
	row := s.db.QueryRowContext(ctx,
		`SELECT max_towers, candidates, distance, solved, combinations, duration_ms, placements
		 FROM results WHERE key = ?`, key)
	err := row.Scan(&res.MaxTowers, &candidates, &res.Distance, &solved, &combos, &durationMS, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	mode, err := cutoff.ParseCandidateMode(candidates)
	if err != nil {
		return nil, false, fmt.Errorf("store: row %s: %w", key, err)
	}
	raw, err := s.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, false, fmt.Errorf("store: row %s: decompress: %w", key, err)
	}
	if err := json.Unmarshal(raw, &res.Placements); err != nil {
		return nil, false, fmt.Errorf("store: row %s: decode placements: %w", key, err)
	}

	res.Candidates = mode
	res.Solved = solved != 0
	res.Combinations = uint64(combos)
	res.Duration = time.Duration(durationMS) * time.Millisecond
	if res.Placements == nil {
		res.Placements = []cutoff.Placement{}
	}
	return &res, true, nil
}

// Put stores res under key, replacing any earlier entry.
func (s *Store) Put(ctx context.Context, key string, res *cutoff.Result) error {
	raw, err := json.Marshal(res.Placements)
	if err != nil {
		return err
	}
	blob := s.enc.EncodeAll(raw, nil)

	solved := 0
	if res.Solved {
		solved = 1
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (key, max_towers, candidates, distance, solved, combinations, duration_ms, placements, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   max_towers=excluded.max_towers,
		   candidates=excluded.candidates,
		   distance=excluded.distance,
		   solved=excluded.solved,
		   combinations=excluded.combinations,
		   duration_ms=excluded.duration_ms,
		   placements=excluded.placements,
		   created_at=excluded.created_at`,
		key, res.MaxTowers, res.Candidates.String(), res.Distance, solved,
		int64(res.Combinations), res.Duration.Milliseconds(), blob,
		time.Now().UTC().Format(time.RFC3339))
	return err
}
