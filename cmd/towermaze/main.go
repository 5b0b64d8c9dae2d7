// Command towermaze searches tower placements that lengthen the enemies'
// shortest route through a maze and shows them.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/towermaze/cutoff"
	"github.com/katalvlaran/towermaze/gridgraph"
	"github.com/katalvlaran/towermaze/internal/config"
	"github.com/katalvlaran/towermaze/internal/store"
	"github.com/katalvlaran/towermaze/internal/viewer"
	"github.com/katalvlaran/towermaze/mapfile"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("towermaze failed")
	}
}

func run(cfg config.Config, stdout io.Writer) error {
	g, err := mapfile.Load(cfg.MapPath)
	if err != nil {
		return err
	}
	switch err := mapfile.Check(g); {
	case errors.Is(err, mapfile.ErrNoSpawn):
		log.Warn().Str("map", cfg.MapPath).Msg("map has no spawn, nothing to do")
		return nil
	case errors.Is(err, mapfile.ErrUnsolvable):
		log.Warn().Str("map", cfg.MapPath).Msg("no exit reachable from spawn")
	case err != nil:
		return err
	}
	log.Debug().Str("map", cfg.MapPath).Int("width", g.Width).Int("height", g.Height).Msg("map loaded")

	res, err := search(cfg, g)
	if err != nil {
		return err
	}
	log.Info().
		Int("distance", res.Distance).
		Int("placements", len(res.Placements)).
		Uint64("combinations", res.Combinations).
		Dur("took", res.Duration).
		Msg("search done")

	if cfg.Verify {
		if err := verify(g, res); err != nil {
			return err
		}
	}
	if cfg.OutPath != "" {
		if err := writeResult(cfg.OutPath, res); err != nil {
			return err
		}
	}
	if cfg.Plain {
		printPlain(stdout, g, res)
		return nil
	}
	return view(g, res)
}

// search answers from the cache when one is configured, and runs the
// placement search otherwise.
func search(cfg config.Config, g *gridgraph.Grid) (*cutoff.Result, error) {
	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var (
		st  *store.Store
		key string
	)
	if cfg.CachePath != "" {
		var err error
		if st, err = store.Open(cfg.CachePath); err != nil {
			return nil, err
		}
		defer st.Close()

		key = store.Key(g.Kinds(), cfg.Towers, cfg.Candidates)
		res, ok, err := st.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			log.Debug().Str("key", key).Msg("cache hit")
			return res, nil
		}
	}

	res, err := cutoff.Build(g,
		cutoff.WithMaxTowers(cfg.Towers),
		cutoff.WithCandidates(cfg.Candidates),
		cutoff.WithLogger(log.Logger),
		cutoff.WithContext(ctx),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn().Dur("timeout", cfg.Timeout).Msg("search timed out, showing partial result")
		return res, nil
	}
	if err != nil {
		return nil, err
	}

	if st != nil {
		if err := st.Put(context.Background(), key, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func verify(g *gridgraph.Grid, res *cutoff.Result) error {
	for i, p := range res.Placements {
		d, err := cutoff.Verify(g, p)
		if err != nil {
			return fmt.Errorf("placement %d %v: %w", i, p, err)
		}
		if d != res.Distance {
			return fmt.Errorf("placement %d %v: distance %d, recorded %d", i, p, d, res.Distance)
		}
	}
	log.Info().Int("placements", len(res.Placements)).Msg("all placements verified")
	return nil
}

func writeResult(path string, res *cutoff.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printPlain(w io.Writer, g *gridgraph.Grid, res *cutoff.Result) {
	fmt.Fprintf(w, "distance %d, %d placement(s), %d combinations, %s\n",
		res.Distance, len(res.Placements), res.Combinations, res.Duration)
	for i, p := range res.Placements {
		fmt.Fprintf(w, "\n#%d %v\n", i+1, p)
		fmt.Fprint(w, g.Render(p))
	}
}

func view(g *gridgraph.Grid, res *cutoff.Result) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return viewer.New(screen, g, res).Run()
}
