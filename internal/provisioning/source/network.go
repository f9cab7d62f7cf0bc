package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"mockdata/internal/dataset"
	"mockdata/pkg/platform/sentinel"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 8 << 20

// NetworkAttempt requests the dataset from a backend. By default it fetches the
// combined document at the endpoint; with section assembly it fetches
// {endpoint}/{section} for all sections concurrently and assembles them.
type NetworkAttempt struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
	assemble bool
}

type NetworkOption func(*NetworkAttempt)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(client *http.Client) NetworkOption {
	return func(a *NetworkAttempt) {
		a.client = client
	}
}

// WithTimeout bounds the whole attempt, including section assembly.
func WithTimeout(timeout time.Duration) NetworkOption {
	return func(a *NetworkAttempt) {
		a.timeout = timeout
	}
}

// WithSectionAssembly switches to per-section requests.
func WithSectionAssembly(enabled bool) NetworkOption {
	return func(a *NetworkAttempt) {
		a.assemble = enabled
	}
}

func NewNetworkAttempt(endpoint string, opts ...NetworkOption) *NetworkAttempt {
	a := &NetworkAttempt{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *NetworkAttempt) Name() string {
	return "network:" + a.endpoint
}

func (a *NetworkAttempt) Kind() Kind {
	return KindNetwork
}

func (a *NetworkAttempt) Acquire(ctx context.Context) (*dataset.Payload, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if a.assemble {
		return a.acquireSections(ctx)
	}
	raw, err := a.get(ctx, a.endpoint)
	if err != nil {
		return nil, err
	}
	return dataset.Decode(raw)
}

// FetchSection requests a single section from {endpoint}/{section}.
func (a *NetworkAttempt) FetchSection(ctx context.Context, s dataset.Section) (any, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	target, err := a.sectionURL(s)
	if err != nil {
		return nil, err
	}
	raw, err := a.get(ctx, target)
	if err != nil {
		return nil, err
	}
	return dataset.DecodeSection(s, raw)
}

func (a *NetworkAttempt) acquireSections(ctx context.Context) (*dataset.Payload, error) {
	sections := dataset.Sections()
	bodies := make([][]byte, len(sections))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range sections {
		g.Go(func() error {
			target, err := a.sectionURL(s)
			if err != nil {
				return err
			}
			raw, err := a.get(gctx, target)
			if err != nil {
				return fmt.Errorf("section %s: %w", s, err)
			}
			bodies[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	parts := make(map[dataset.Section][]byte, len(sections))
	for i, s := range sections {
		parts[s] = bodies[i]
	}
	return dataset.Assemble(parts)
}

func (a *NetworkAttempt) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", target, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("GET %s: %w", target, ctx.Err())
		}
		return nil, fmt.Errorf("GET %s: %w: %w", target, sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{URL: target, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body from %s: %w", target, err)
	}
	return raw, nil
}

func (a *NetworkAttempt) sectionURL(s dataset.Section) (string, error) {
	target, err := url.JoinPath(a.endpoint, string(s))
	if err != nil {
		return "", fmt.Errorf("section url for %s: %w", s, err)
	}
	return target, nil
}

func (a *NetworkAttempt) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}
