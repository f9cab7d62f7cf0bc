package source_test

import (
	"context"
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockdata/internal/dataset"
	"mockdata/internal/dataset/embedded"
	"mockdata/internal/provisioning/source"
)

func bundledRaw(t *testing.T) []byte {
	t.Helper()
	raw, err := fs.ReadFile(embedded.FS(), embedded.DefaultAsset)
	require.NoError(t, err)
	return raw
}

func writeFile(t *testing.T, filesystem billy.Filesystem, name string, data []byte) {
	t.Helper()
	require.NoError(t, util.WriteFile(filesystem, name, data, 0o644))
}

// writeSplitLayout writes a manifest at dir/api.json plus one file per section.
func writeSplitLayout(t *testing.T, filesystem billy.Filesystem, dir string) {
	t.Helper()
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(bundledRaw(t), &doc))

	manifest := make(map[string]string)
	for _, s := range dataset.Sections() {
		file := string(s) + ".json"
		manifest[string(s)] = file
		writeFile(t, filesystem, dir+"/"+file, doc[string(s)])
	}
	raw, err := json.Marshal(manifest)
	require.NoError(t, err)
	writeFile(t, filesystem, dir+"/api.json", raw)
}

func TestLocalAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("reads a combined payload", func(t *testing.T) {
		filesystem := memfs.New()
		writeFile(t, filesystem, "/srv/backend/mockData/api.json", bundledRaw(t))

		a := source.NewLocalAttempt(filesystem, "/srv/backend/mockData/api.json")
		assert.Equal(t, "local:/srv/backend/mockData/api.json", a.Name())
		assert.Equal(t, source.KindLocal, a.Kind())

		p, err := a.Acquire(ctx)
		require.NoError(t, err)
		assert.Equal(t, "usr_001", p.User.ID)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		a := source.NewLocalAttempt(memfs.New(), "/nowhere/api.json")
		_, err := a.Acquire(ctx)
		assert.Equal(t, source.CategoryNotFound, source.Categorize(err))
	})

	t.Run("garbage is bad data", func(t *testing.T) {
		filesystem := memfs.New()
		writeFile(t, filesystem, "/data/api.json", []byte("not json"))

		_, err := source.NewLocalAttempt(filesystem, "/data/api.json").Acquire(ctx)
		assert.Equal(t, source.CategoryBadData, source.Categorize(err))
	})

	t.Run("assembles the split manifest layout", func(t *testing.T) {
		filesystem := memfs.New()
		writeSplitLayout(t, filesystem, "/srv/mockData")

		p, err := source.NewLocalAttempt(filesystem, "/srv/mockData/api.json").Acquire(ctx)
		require.NoError(t, err)
		assert.Equal(t, "BrightPath Design Studio", p.User.BusinessName)
		assert.Len(t, p.Wallet.Accounts, 3)
	})

	t.Run("manifest with a missing section file is not found", func(t *testing.T) {
		filesystem := memfs.New()
		writeSplitLayout(t, filesystem, "/srv/mockData")
		require.NoError(t, filesystem.Remove("/srv/mockData/wallet.json"))

		_, err := source.NewLocalAttempt(filesystem, "/srv/mockData/api.json").Acquire(ctx)
		require.Error(t, err)
		assert.Equal(t, source.CategoryNotFound, source.Categorize(err))
		assert.Contains(t, err.Error(), "section wallet")
	})

	t.Run("incomplete manifest is a schema violation", func(t *testing.T) {
		filesystem := memfs.New()
		writeFile(t, filesystem, "/srv/api.json", []byte(`{"user": "user.json"}`))

		_, err := source.NewLocalAttempt(filesystem, "/srv/api.json").Acquire(ctx)
		assert.Equal(t, source.CategorySchemaViolation, source.Categorize(err))
	})
}

// recorder wraps an attempt and keeps the error of every Acquire call.
type recorder struct {
	source.Attempt
	errs []error
}

func (r *recorder) Acquire(ctx context.Context) (*dataset.Payload, error) {
	p, err := r.Attempt.Acquire(ctx)
	r.errs = append(r.errs, err)
	return p, err
}

func TestLocalStrategy_SecondCandidateWins(t *testing.T) {
	filesystem := memfs.New()
	writeFile(t, filesystem, "/app/backend/mockData/api.json", bundledRaw(t))

	first := &recorder{Attempt: source.NewLocalAttempt(filesystem, "/app/server/backend/mockData/api.json")}
	second := &recorder{Attempt: source.NewLocalAttempt(filesystem, "/app/backend/mockData/api.json")}

	strategy, err := source.Of(source.EnvironmentServer, first, second)
	require.NoError(t, err)
	resolver, err := source.NewResolver(strategy)
	require.NoError(t, err)

	p, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "usr_001", p.User.ID)

	require.Len(t, first.errs, 1)
	assert.Equal(t, source.CategoryNotFound, source.Categorize(first.errs[0]))
	require.Len(t, second.errs, 1)
	assert.NoError(t, second.errs[0])
}
