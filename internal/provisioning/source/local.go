package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"mockdata/internal/dataset"
	"mockdata/pkg/platform/sentinel"
)

// LocalAttempt reads the dataset from one candidate path. The file holds either
// the full payload or a manifest naming one file per section, resolved relative
// to the manifest.
type LocalAttempt struct {
	fs   billy.Filesystem
	path string
}

func NewLocalAttempt(filesystem billy.Filesystem, candidate string) *LocalAttempt {
	return &LocalAttempt{fs: filesystem, path: candidate}
}

func (a *LocalAttempt) Name() string {
	return "local:" + a.path
}

func (a *LocalAttempt) Kind() Kind {
	return KindLocal
}

func (a *LocalAttempt) Path() string {
	return a.path
}

func (a *LocalAttempt) Acquire(ctx context.Context) (*dataset.Payload, error) {
	raw, err := a.read(a.path)
	if err != nil {
		return nil, err
	}

	manifest, ok := dataset.ParseManifest(raw)
	if !ok {
		return dataset.Decode(raw)
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", a.path, err)
	}

	dir := path.Dir(a.path)
	parts := make(map[dataset.Section][]byte, len(manifest))
	for _, s := range dataset.Sections() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, err := a.read(a.fs.Join(dir, manifest[s]))
		if err != nil {
			return nil, fmt.Errorf("manifest %s, section %s: %w", a.path, s, err)
		}
		parts[s] = part
	}
	return dataset.Assemble(parts)
}

func (a *LocalAttempt) read(name string) ([]byte, error) {
	raw, err := util.ReadFile(a.fs, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return raw, nil
}
