package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mockdata/internal/dataset"
	"mockdata/internal/provisioning/metrics"
	"mockdata/pkg/platform/sentinel"
)

const tracerName = "mockdata/internal/provisioning/source"

// Resolver runs a strategy's attempts strictly in order and returns the first
// payload that satisfies the dataset contract.
type Resolver struct {
	strategy *Strategy
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Resolver)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(r *Resolver) {
		r.tracer = tracer
	}
}

func NewResolver(strategy *Strategy, opts ...Option) (*Resolver, error) {
	if strategy == nil {
		return nil, errors.New("strategy is required")
	}

	r := &Resolver{
		strategy: strategy,
		logger:   slog.New(slog.DiscardHandler),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Resolver) Strategy() *Strategy {
	return r.strategy
}

// Resolve tries each attempt once. Attempts after the first success are not
// run. When all attempts fail the error is a *SourceExhausted listing every
// failure in attempt order.
func (r *Resolver) Resolve(ctx context.Context) (*dataset.Payload, error) {
	ctx, span := r.tracer.Start(ctx, "source.Resolve",
		trace.WithAttributes(attribute.String("environment", string(r.strategy.env))))
	defer span.End()

	failures := make([]*AttemptFailed, 0, len(r.strategy.attempts))
	for i, attempt := range r.strategy.attempts {
		payload, failed := r.try(ctx, i, attempt)
		if failed == nil {
			return payload, nil
		}
		failures = append(failures, failed)
	}

	err := &SourceExhausted{Environment: r.strategy.env, Failures: failures}
	span.RecordError(err)
	span.SetStatus(codes.Error, "source exhausted")
	r.logger.ErrorContext(ctx, "all acquisition attempts failed",
		"environment", r.strategy.env,
		"attempts", len(failures),
		"error", err,
	)
	return nil, err
}

func (r *Resolver) try(ctx context.Context, position int, attempt Attempt) (*dataset.Payload, *AttemptFailed) {
	ctx, span := r.tracer.Start(ctx, "source.Attempt", trace.WithAttributes(
		attribute.String("attempt.name", attempt.Name()),
		attribute.String("attempt.kind", string(attempt.Kind())),
		attribute.Int("attempt.position", position),
	))
	defer span.End()

	start := time.Now()
	payload, err := attempt.Acquire(ctx)
	if err == nil && payload == nil {
		err = fmt.Errorf("%w: attempt returned no payload", sentinel.ErrInvalidState)
	}

	if err != nil {
		failed := newAttemptFailed(attempt, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(failed.Category))
		if r.metrics != nil {
			r.metrics.RecordAttempt(string(attempt.Kind()), string(failed.Category))
		}
		r.logger.WarnContext(ctx, "acquisition attempt failed",
			"attempt", attempt.Name(),
			"kind", attempt.Kind(),
			"category", failed.Category,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, failed
	}

	if r.metrics != nil {
		r.metrics.RecordAttempt(string(attempt.Kind()), "ok")
	}
	r.logger.InfoContext(ctx, "dataset acquired",
		"attempt", attempt.Name(),
		"kind", attempt.Kind(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return payload, nil
}
