package source_test

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockdata/internal/dataset/embedded"
	"mockdata/internal/provisioning/source"
)

func kinds(s *source.Strategy) []source.Kind {
	out := make([]source.Kind, 0, len(s.Attempts()))
	for _, a := range s.Attempts() {
		out = append(out, a.Kind())
	}
	return out
}

func TestParseEnvironment(t *testing.T) {
	for _, tag := range []string{"server", "browser", "embedded"} {
		env, err := source.ParseEnvironment(tag)
		require.NoError(t, err)
		assert.Equal(t, tag, string(env))
	}

	_, err := source.ParseEnvironment("desktop")
	assert.ErrorContains(t, err, `unknown environment "desktop"`)
}

func TestNewStrategy(t *testing.T) {
	t.Run("server tries every local path in order", func(t *testing.T) {
		s, err := source.NewStrategy(source.EnvironmentServer, source.Options{
			Filesystem: memfs.New(),
			LocalPaths: []string{"/a/api.json", "/b/api.json", "/c/api.json"},
		})
		require.NoError(t, err)
		assert.Equal(t, source.EnvironmentServer, s.Environment())
		assert.Equal(t, []source.Kind{source.KindLocal, source.KindLocal, source.KindLocal}, kinds(s))

		names := make([]string, 0, 3)
		for _, a := range s.Attempts() {
			names = append(names, a.Name())
		}
		assert.Equal(t, []string{"local:/a/api.json", "local:/b/api.json", "local:/c/api.json"}, names)
	})

	t.Run("server appends redis after local paths", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
		t.Cleanup(func() { _ = client.Close() })

		s, err := source.NewStrategy(source.EnvironmentServer, source.Options{
			Filesystem: memfs.New(),
			LocalPaths: []string{"/a/api.json"},
			Redis:      client,
			RedisKey:   "mockdata:api",
		})
		require.NoError(t, err)
		assert.Equal(t, []source.Kind{source.KindLocal, source.KindRedis}, kinds(s))
	})

	t.Run("server without paths has nothing to try", func(t *testing.T) {
		_, err := source.NewStrategy(source.EnvironmentServer, source.Options{Filesystem: memfs.New()})
		assert.ErrorIs(t, err, source.ErrNoAttempts)
	})

	t.Run("server requires a filesystem", func(t *testing.T) {
		_, err := source.NewStrategy(source.EnvironmentServer, source.Options{LocalPaths: []string{"/a"}})
		assert.ErrorContains(t, err, "filesystem is required")
	})

	t.Run("browser has a single network attempt", func(t *testing.T) {
		s, err := source.NewStrategy(source.EnvironmentBrowser, source.Options{
			Endpoint: "http://localhost:5001/api/mockdata",
			Timeout:  time.Second,
		})
		require.NoError(t, err)
		assert.Equal(t, []source.Kind{source.KindNetwork}, kinds(s))

		fetcher, ok := s.SectionFetcher()
		require.True(t, ok)
		assert.Equal(t, "network:http://localhost:5001/api/mockdata", fetcher.Name())
	})

	t.Run("browser requires an endpoint", func(t *testing.T) {
		_, err := source.NewStrategy(source.EnvironmentBrowser, source.Options{})
		assert.ErrorContains(t, err, "endpoint is required")
	})

	t.Run("embedded has a single asset attempt", func(t *testing.T) {
		s, err := source.NewStrategy(source.EnvironmentEmbedded, source.Options{
			Assets:    embedded.FS(),
			AssetName: embedded.DefaultAsset,
		})
		require.NoError(t, err)
		assert.Equal(t, []source.Kind{source.KindEmbedded}, kinds(s))

		_, ok := s.SectionFetcher()
		assert.False(t, ok)
	})

	t.Run("embedded requires an asset", func(t *testing.T) {
		_, err := source.NewStrategy(source.EnvironmentEmbedded, source.Options{Assets: embedded.FS()})
		assert.ErrorContains(t, err, "asset reference is required")
	})

	t.Run("unknown environment", func(t *testing.T) {
		_, err := source.NewStrategy(source.Environment("desktop"), source.Options{})
		assert.Error(t, err)
	})
}

func TestStrategyAttemptsIsACopy(t *testing.T) {
	s, err := source.NewStrategy(source.EnvironmentEmbedded, source.Options{
		Assets:    embedded.FS(),
		AssetName: embedded.DefaultAsset,
	})
	require.NoError(t, err)

	attempts := s.Attempts()
	attempts[0] = nil
	assert.NotNil(t, s.Attempts()[0])
}
