// Package loader coordinates dataset acquisition: at most one acquisition is
// in flight per Coordinator, concurrent callers share its outcome, and a
// successful payload is cached until invalidated.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"mockdata/internal/dataset"
	"mockdata/internal/provisioning/metrics"
)

// Resolver produces a fresh payload. *source.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context) (*dataset.Payload, error)
}

// ErrResolverPanic wraps a panic raised while resolving a payload.
var ErrResolverPanic = errors.New("resolver panicked")

// State is the lifecycle of the cache entry.
type State int

const (
	StateAbsent State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// flight is one acquisition cycle. payload and err are written once, before
// done is closed, and only read after.
type flight struct {
	id      uuid.UUID
	done    chan struct{}
	payload *dataset.Payload
	err     error
}

type Coordinator struct {
	resolver Resolver
	logger   *slog.Logger
	metrics  *metrics.Metrics

	mu       sync.Mutex
	state    State
	payload  *dataset.Payload
	lastErr  error
	inflight *flight
}

type Option func(*Coordinator)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Coordinator) {
		c.metrics = m
	}
}

func New(resolver Resolver, opts ...Option) (*Coordinator, error) {
	if resolver == nil {
		return nil, errors.New("resolver is required")
	}

	c := &Coordinator{
		resolver: resolver,
		logger:   slog.New(slog.DiscardHandler),
		state:    StateAbsent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Load returns the cached payload, or starts an acquisition when none is
// cached and none is running, or attaches to the running one. Every caller
// attached to the same cycle gets the same payload pointer or the same error.
//
// ctx only carries values into the acquisition. Cancelling it neither stops
// the acquisition nor releases a waiting caller.
func (c *Coordinator) Load(ctx context.Context) (*dataset.Payload, error) {
	c.mu.Lock()
	switch c.state {
	case StateLoaded:
		payload := c.payload
		c.mu.Unlock()
		if c.metrics != nil {
			c.metrics.IncrementCacheHits()
		}
		return payload, nil
	case StateLoading:
		f := c.inflight
		c.mu.Unlock()
		if c.metrics != nil {
			c.metrics.IncrementAttachedCallers()
		}
		c.logger.DebugContext(ctx, "attached to in-flight load", "cycle_id", f.id)
		<-f.done
		return f.payload, f.err
	}

	f := &flight{id: uuid.New(), done: make(chan struct{})}
	c.state = StateLoading
	c.inflight = f
	c.mu.Unlock()

	go c.run(context.WithoutCancel(ctx), f)

	<-f.done
	return f.payload, f.err
}

func (c *Coordinator) run(ctx context.Context, f *flight) {
	start := time.Now()
	c.logger.InfoContext(ctx, "dataset load started", "cycle_id", f.id)

	payload, err := c.resolve(ctx)
	elapsed := time.Since(start)

	c.mu.Lock()
	current := c.inflight == f
	if current {
		c.inflight = nil
		if err != nil {
			c.state = StateFailed
			c.lastErr = err
			c.payload = nil
		} else {
			c.state = StateLoaded
			c.payload = payload
			c.lastErr = nil
		}
	}
	if err != nil {
		f.err = err
	} else {
		f.payload = payload
	}
	close(f.done)
	c.mu.Unlock()

	result := "ok"
	if err != nil {
		result = "error"
	}
	if c.metrics != nil {
		c.metrics.RecordLoad(result, elapsed)
	}

	switch {
	case err != nil:
		c.logger.ErrorContext(ctx, "dataset load failed",
			"cycle_id", f.id,
			"duration_ms", elapsed.Milliseconds(),
			"cached", false,
			"error", err,
		)
	case !current:
		c.logger.InfoContext(ctx, "dataset load finished after invalidation, result not cached",
			"cycle_id", f.id,
			"duration_ms", elapsed.Milliseconds(),
		)
	default:
		c.logger.InfoContext(ctx, "dataset loaded",
			"cycle_id", f.id,
			"duration_ms", elapsed.Milliseconds(),
		)
	}
}

// resolve turns a panicking resolver into the cycle's error so the flight
// still completes and the entry can be retried.
func (c *Coordinator) resolve(ctx context.Context) (payload *dataset.Payload, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload = nil
			err = fmt.Errorf("%w: %v", ErrResolverPanic, r)
			c.logger.ErrorContext(ctx, "resolver panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	payload, err = c.resolver.Resolve(ctx)
	if err == nil && payload == nil {
		err = errors.New("resolver returned no payload")
	}
	return payload, err
}

// Loaded returns the cached payload without triggering a load.
func (c *Coordinator) Loaded() (*dataset.Payload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateLoaded {
		return nil, false
	}
	return c.payload, true
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError is the error of the most recent failed cycle while the entry is
// in the failed state.
func (c *Coordinator) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateFailed {
		return nil
	}
	return c.lastErr
}

// Invalidate drops the cached payload and the in-flight reference. Callers
// already waiting on a running cycle still receive its result, but that
// result is not cached. The next Load starts a new cycle.
func (c *Coordinator) Invalidate() {
	c.mu.Lock()
	c.state = StateAbsent
	c.payload = nil
	c.lastErr = nil
	c.inflight = nil
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.IncrementInvalidations()
	}
	c.logger.Info("dataset cache invalidated")
}
