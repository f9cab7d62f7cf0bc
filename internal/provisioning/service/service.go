// Package service is the typed section API over the load coordinator. Every
// environment gets the same surface; only the strategy behind the
// coordinator differs.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mockdata/internal/dataset"
	"mockdata/pkg/platform/circuit"
)

// Loader is the load coordinator as seen by the service.
type Loader interface {
	Load(ctx context.Context) (*dataset.Payload, error)
	Invalidate()
}

// SectionFetcher reads a single section straight from a backend.
type SectionFetcher interface {
	FetchSection(ctx context.Context, s dataset.Section) (any, error)
}

type Service struct {
	loader  Loader
	fetcher SectionFetcher
	breaker *circuit.Breaker
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithSectionFetcher enables direct per-section reads in Fetch.
func WithSectionFetcher(fetcher SectionFetcher) Option {
	return func(s *Service) {
		s.fetcher = fetcher
	}
}

// WithBreaker skips direct section fetches while the breaker is open.
func WithBreaker(breaker *circuit.Breaker) Option {
	return func(s *Service) {
		s.breaker = breaker
	}
}

func New(loader Loader, opts ...Option) (*Service, error) {
	if loader == nil {
		return nil, errors.New("loader is required")
	}

	svc := &Service{
		loader: loader,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// GetAll returns the whole payload, loading it on first use.
func (s *Service) GetAll(ctx context.Context) (*dataset.Payload, error) {
	return s.loader.Load(ctx)
}

// Get returns the named section of the loaded payload.
func (s *Service) Get(ctx context.Context, section dataset.Section) (any, error) {
	if !section.IsValid() {
		return nil, fmt.Errorf("%w: %q", dataset.ErrSectionNotFound, section)
	}
	payload, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return payload.Section(section)
}

func (s *Service) GetUser(ctx context.Context) (*dataset.User, error) {
	return get[*dataset.User](ctx, s, dataset.SectionUser)
}

func (s *Service) GetDashboard(ctx context.Context) (*dataset.Dashboard, error) {
	return get[*dataset.Dashboard](ctx, s, dataset.SectionDashboard)
}

func (s *Service) GetInvoices(ctx context.Context) (*dataset.Invoices, error) {
	return get[*dataset.Invoices](ctx, s, dataset.SectionInvoices)
}

func (s *Service) GetExpenses(ctx context.Context) (*dataset.Expenses, error) {
	return get[*dataset.Expenses](ctx, s, dataset.SectionExpenses)
}

func (s *Service) GetWallet(ctx context.Context) (*dataset.Wallet, error) {
	return get[*dataset.Wallet](ctx, s, dataset.SectionWallet)
}

func (s *Service) GetProfile(ctx context.Context) (*dataset.Profile, error) {
	return get[*dataset.Profile](ctx, s, dataset.SectionProfile)
}

// Fetch reads one section directly from the backend when a section fetcher
// is configured, and falls back to the cached section on any failure or
// while the breaker is open. Directly fetched sections are never cached.
func (s *Service) Fetch(ctx context.Context, section dataset.Section) (any, error) {
	if !section.IsValid() {
		return nil, fmt.Errorf("%w: %q", dataset.ErrSectionNotFound, section)
	}
	if s.fetcher == nil || (s.breaker != nil && !s.breaker.Allow()) {
		return s.Get(ctx, section)
	}

	value, err := s.fetcher.FetchSection(ctx, section)
	if err == nil {
		s.recordFetch(ctx, nil)
		return value, nil
	}
	s.recordFetch(ctx, err)
	s.logger.WarnContext(ctx, "direct section fetch failed, using cached dataset",
		"section", section,
		"error", err,
	)
	return s.Get(ctx, section)
}

func (s *Service) recordFetch(ctx context.Context, err error) {
	if s.breaker == nil {
		return
	}
	var change circuit.StateChange
	if err != nil {
		_, change = s.breaker.RecordFailure()
	} else {
		_, change = s.breaker.RecordSuccess()
	}
	switch {
	case change.Opened:
		s.logger.WarnContext(ctx, "section fetch circuit opened", "breaker", s.breaker.Name())
	case change.Closed:
		s.logger.InfoContext(ctx, "section fetch circuit closed", "breaker", s.breaker.Name())
	}
}

// Invalidate forces the next access to acquire the dataset again.
func (s *Service) Invalidate() {
	s.loader.Invalidate()
}

func get[T any](ctx context.Context, s *Service, section dataset.Section) (T, error) {
	var zero T
	value, err := s.Get(ctx, section)
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("section %s has unexpected type %T", section, value)
	}
	return typed, nil
}
