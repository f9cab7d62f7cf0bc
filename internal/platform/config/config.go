package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	platformstrings "mockdata/pkg/platform/strings"
)

// Config is the process configuration, read once from the environment.
type Config struct {
	// Environment selects the acquisition strategy: server, browser or embedded.
	Environment string `env:"MOCKDATA_ENV" envDefault:"server"`

	// LocalPaths are candidate dataset files for the server environment, tried
	// in order. Empty means DefaultLocalPaths.
	LocalPaths []string `env:"MOCKDATA_LOCAL_PATHS" envSeparator:","`

	Endpoint         string        `env:"MOCKDATA_ENDPOINT" envDefault:"http://localhost:5001/api/mockdata"`
	Timeout          time.Duration `env:"MOCKDATA_TIMEOUT" envDefault:"30s"`
	AssembleSections bool          `env:"MOCKDATA_ASSEMBLE_SECTIONS" envDefault:"false"`
	Asset            string        `env:"MOCKDATA_ASSET" envDefault:"mockdata.json"`

	Server Server
	Redis  RedisConfig
	Log    Log
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"MOCKDATA_ADDR" envDefault:":5001"`
	ReadTimeout     time.Duration `env:"MOCKDATA_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"MOCKDATA_WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"MOCKDATA_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// RedisConfig enables the Redis snapshot attempt when URL is set.
type RedisConfig struct {
	URL          string        `env:"MOCKDATA_REDIS_URL"`
	Key          string        `env:"MOCKDATA_REDIS_KEY" envDefault:"mockdata:api"`
	PoolSize     int           `env:"MOCKDATA_REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"MOCKDATA_REDIS_MIN_IDLE_CONNS" envDefault:"0"`
	DialTimeout  time.Duration `env:"MOCKDATA_REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"MOCKDATA_REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"MOCKDATA_REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

type Log struct {
	Level  string `env:"MOCKDATA_LOG_LEVEL" envDefault:"info"`
	Format string `env:"MOCKDATA_LOG_FORMAT" envDefault:"json"`
}

// FromEnv builds a Config from environment variables so main stays lean.
// Local paths are made absolute, trimmed and de-duplicated.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	paths, err := ResolveLocalPaths(cfg.LocalPaths)
	if err != nil {
		return Config{}, err
	}
	cfg.LocalPaths = paths
	return cfg, nil
}

// DefaultLocalPaths lists where a server process looks for the dataset when
// no paths are configured: under the working directory, under its parent,
// and next to the executable.
func DefaultLocalPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths,
			filepath.Join(cwd, "backend", "mockData", "api.json"),
			filepath.Join(cwd, "..", "backend", "mockData", "api.json"),
		)
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, "api.json"),
			filepath.Join(dir, "..", "mockData", "api.json"),
		)
	}
	return paths
}

// ResolveLocalPaths falls back to DefaultLocalPaths for an empty list and
// returns cleaned absolute paths with blanks and duplicates removed.
func ResolveLocalPaths(paths []string) ([]string, error) {
	paths = platformstrings.DedupeAndTrim(paths)
	if len(paths) == 0 {
		paths = DefaultLocalPaths()
	}

	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve local path %q: %w", p, err)
		}
		resolved = append(resolved, abs)
	}
	return platformstrings.DedupeAndTrim(resolved), nil
}
