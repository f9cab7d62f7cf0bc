package source

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/redis/go-redis/v9"
)

// Environment is the consumer environment a process runs in. It is decided
// once at construction and never re-inspected per call.
type Environment string

const (
	EnvironmentServer   Environment = "server"
	EnvironmentBrowser  Environment = "browser"
	EnvironmentEmbedded Environment = "embedded"
)

// ParseEnvironment validates an environment tag.
func ParseEnvironment(tag string) (Environment, error) {
	switch env := Environment(tag); env {
	case EnvironmentServer, EnvironmentBrowser, EnvironmentEmbedded:
		return env, nil
	}
	return "", fmt.Errorf("unknown environment %q (want server, browser or embedded)", tag)
}

// Options carries everything a strategy might need. Each environment only
// reads the fields that apply to it.
type Options struct {
	// Server
	Filesystem billy.Filesystem
	LocalPaths []string
	Redis      redis.Cmdable
	RedisKey   string

	// Browser
	Endpoint         string
	Timeout          time.Duration
	HTTPClient       *http.Client
	AssembleSections bool

	// Embedded
	Assets    fs.FS
	AssetName string
}

// Strategy is the immutable, ordered list of attempts for one environment.
type Strategy struct {
	env      Environment
	attempts []Attempt
}

// NewStrategy builds the attempts for env:
//
//	server:   one local attempt per candidate path, then Redis when configured
//	browser:  one network attempt against the endpoint
//	embedded: one attempt against the bundled asset
func NewStrategy(env Environment, opts Options) (*Strategy, error) {
	var attempts []Attempt

	switch env {
	case EnvironmentServer:
		if opts.Filesystem == nil {
			return nil, fmt.Errorf("server strategy: filesystem is required")
		}
		for _, candidate := range opts.LocalPaths {
			attempts = append(attempts, NewLocalAttempt(opts.Filesystem, candidate))
		}
		if opts.Redis != nil && opts.RedisKey != "" {
			attempts = append(attempts, NewRedisAttempt(opts.Redis, opts.RedisKey))
		}
	case EnvironmentBrowser:
		if opts.Endpoint == "" {
			return nil, fmt.Errorf("browser strategy: endpoint is required")
		}
		networkOpts := []NetworkOption{
			WithTimeout(opts.Timeout),
			WithSectionAssembly(opts.AssembleSections),
		}
		if opts.HTTPClient != nil {
			networkOpts = append(networkOpts, WithHTTPClient(opts.HTTPClient))
		}
		attempts = append(attempts, NewNetworkAttempt(opts.Endpoint, networkOpts...))
	case EnvironmentEmbedded:
		if opts.Assets == nil || opts.AssetName == "" {
			return nil, fmt.Errorf("embedded strategy: asset reference is required")
		}
		attempts = append(attempts, NewEmbeddedAttempt(opts.Assets, opts.AssetName))
	default:
		return nil, fmt.Errorf("unknown environment %q", env)
	}

	return Of(env, attempts...)
}

// Of builds a strategy from explicit attempts, tried in the given order.
func Of(env Environment, attempts ...Attempt) (*Strategy, error) {
	if len(attempts) == 0 {
		return nil, fmt.Errorf("%s strategy: %w", env, ErrNoAttempts)
	}
	owned := make([]Attempt, len(attempts))
	copy(owned, attempts)
	return &Strategy{env: env, attempts: owned}, nil
}

func (s *Strategy) Environment() Environment {
	return s.env
}

// Attempts returns a copy of the attempts in order.
func (s *Strategy) Attempts() []Attempt {
	out := make([]Attempt, len(s.attempts))
	copy(out, s.attempts)
	return out
}

// SectionFetcher returns the network attempt that can serve single sections,
// if the strategy has one.
func (s *Strategy) SectionFetcher() (*NetworkAttempt, bool) {
	for _, a := range s.attempts {
		if n, ok := a.(*NetworkAttempt); ok {
			return n, true
		}
	}
	return nil, false
}
