// Package config resolves towermaze run settings from an env file, the
// process environment and command-line flags, in increasing priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/towermaze/cutoff"
)

var (
	ErrBadTowers     = errors.New("config: tower budget must be a non-negative integer")
	ErrBadCandidates = errors.New("config: unknown candidate mode")
	ErrBadLogLevel   = errors.New("config: unknown log level")
)

// Environment variable names.
const (
	EnvFile       = "TOWERMAZE_ENV_FILE"
	EnvMap        = "TOWERMAZE_MAP"
	EnvTowers     = "TOWERMAZE_TOWERS"
	EnvLogLevel   = "TOWERMAZE_LOG_LEVEL"
	EnvCache      = "TOWERMAZE_CACHE"
	EnvCandidates = "TOWERMAZE_CANDIDATES"
)

// Config is one resolved run.
type Config struct {
	MapPath    string
	Towers     int
	LogLevel   zerolog.Level
	CachePath  string // empty disables the result cache
	Candidates cutoff.CandidateMode
	Plain      bool
	Verify     bool
	Timeout    time.Duration // zero means no limit
	OutPath    string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		MapPath:    "data.json",
		Towers:     cutoff.DefaultMaxTowers,
		LogLevel:   zerolog.InfoLevel,
		Candidates: cutoff.OnePath,
	}
}

// Load resolves the configuration for args (without the program name).
//
// The env file named by TOWERMAZE_ENV_FILE (default ".env") is read first
// and may be missing. Real environment variables win over the file, flags
// win over both. The process environment is not modified.
func Load(args []string) (Config, error) {
	return load(args, os.Stderr)
}

func load(args []string, usage io.Writer) (Config, error) {
	cfg := Default()

	envPath := os.Getenv(EnvFile)
	if envPath == "" {
		envPath = ".env"
	}
	file, err := godotenv.Read(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("config: read %s: %w", envPath, err)
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return file[key]
	}

	if v := lookup(EnvMap); v != "" {
		cfg.MapPath = v
	}
	if v := lookup(EnvCache); v != "" {
		cfg.CachePath = v
	}
	if v := lookup(EnvTowers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrBadTowers, EnvTowers, v)
		}
		cfg.Towers = n
	}
	level := lookup(EnvLogLevel)
	candidates := lookup(EnvCandidates)

	fs := flag.NewFlagSet("towermaze", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&cfg.MapPath, "map", cfg.MapPath, "map file (.json, .yaml or .yml)")
	fs.IntVar(&cfg.Towers, "towers", cfg.Towers, "maximum number of towers to place")
	fs.StringVar(&level, "log-level", level, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "sqlite result cache path (empty disables)")
	fs.StringVar(&candidates, "candidates", candidates, "candidate cells: one-path or all-paths")
	fs.BoolVar(&cfg.Plain, "plain", false, "print the result instead of opening the viewer")
	fs.BoolVar(&cfg.Verify, "verify", false, "re-score every placement with BFS")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	fs.StringVar(&cfg.OutPath, "out", "", "write the result as JSON to this file")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.Towers < 0 {
		return cfg, fmt.Errorf("%w: %d", ErrBadTowers, cfg.Towers)
	}
	if level != "" {
		lvl, err := zerolog.ParseLevel(level)
		if err != nil || lvl == zerolog.NoLevel {
			return cfg, fmt.Errorf("%w: %q", ErrBadLogLevel, level)
		}
		cfg.LogLevel = lvl
	}
	mode, err := cutoff.ParseCandidateMode(candidates)
	if err != nil {
		return cfg, fmt.Errorf("%w: %q", ErrBadCandidates, candidates)
	}
	cfg.Candidates = mode

	return cfg, nil
}
