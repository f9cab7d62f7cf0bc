// Package provisioning wires configuration into a ready Service: it builds
// the environment's strategy, the resolver over it, the load coordinator and
// the section accessor.
package provisioning

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/redis/go-redis/v9"

	"mockdata/internal/dataset/embedded"
	"mockdata/internal/platform/config"
	"mockdata/internal/provisioning/loader"
	"mockdata/internal/provisioning/metrics"
	"mockdata/internal/provisioning/service"
	"mockdata/internal/provisioning/source"
	"mockdata/pkg/platform/circuit"
)

// Deps are the process-level collaborators. Zero values get defaults: the
// host filesystem, the bundled assets, a discarding logger and no metrics.
type Deps struct {
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Redis      redis.Cmdable
	Filesystem billy.Filesystem
	Assets     fs.FS
	HTTPClient *http.Client
}

// Provisioner holds the constructed layer. Service is the only part most
// callers need; the rest is exposed for diagnostics.
type Provisioner struct {
	Strategy    *source.Strategy
	Resolver    *source.Resolver
	Coordinator *loader.Coordinator
	Service     *service.Service
}

func Build(cfg config.Config, deps Deps) (*Provisioner, error) {
	env, err := source.ParseEnvironment(cfg.Environment)
	if err != nil {
		return nil, err
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	filesystem := deps.Filesystem
	if filesystem == nil {
		filesystem = osfs.New("/")
	}
	assets := deps.Assets
	if assets == nil {
		assets = embedded.FS()
	}

	strategy, err := source.NewStrategy(env, source.Options{
		Filesystem:       filesystem,
		LocalPaths:       cfg.LocalPaths,
		Redis:            deps.Redis,
		RedisKey:         cfg.Redis.Key,
		Endpoint:         cfg.Endpoint,
		Timeout:          cfg.Timeout,
		HTTPClient:       deps.HTTPClient,
		AssembleSections: cfg.AssembleSections,
		Assets:           assets,
		AssetName:        cfg.Asset,
	})
	if err != nil {
		return nil, fmt.Errorf("build %s strategy: %w", env, err)
	}

	resolver, err := source.NewResolver(strategy,
		source.WithLogger(logger),
		source.WithMetrics(deps.Metrics),
	)
	if err != nil {
		return nil, err
	}

	coordinator, err := loader.New(resolver,
		loader.WithLogger(logger),
		loader.WithMetrics(deps.Metrics),
	)
	if err != nil {
		return nil, err
	}

	opts := []service.Option{service.WithLogger(logger)}
	if fetcher, ok := strategy.SectionFetcher(); ok {
		opts = append(opts,
			service.WithSectionFetcher(fetcher),
			service.WithBreaker(circuit.New("section-fetch")),
		)
	}
	svc, err := service.New(coordinator, opts...)
	if err != nil {
		return nil, err
	}

	logger.Info("data provisioning configured",
		"environment", env,
		"attempts", len(strategy.Attempts()),
	)

	return &Provisioner{
		Strategy:    strategy,
		Resolver:    resolver,
		Coordinator: coordinator,
		Service:     svc,
	}, nil
}
