package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"mockdata/internal/dataset"
	"mockdata/pkg/platform/sentinel"
)

// EmbeddedAttempt decodes a dataset compiled into the running binary.
type EmbeddedAttempt struct {
	fsys fs.FS
	name string
}

func NewEmbeddedAttempt(fsys fs.FS, name string) *EmbeddedAttempt {
	return &EmbeddedAttempt{fsys: fsys, name: name}
}

func (a *EmbeddedAttempt) Name() string {
	return "embedded:" + a.name
}

func (a *EmbeddedAttempt) Kind() Kind {
	return KindEmbedded
}

func (a *EmbeddedAttempt) Acquire(_ context.Context) (*dataset.Payload, error) {
	raw, err := fs.ReadFile(a.fsys, a.name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("asset %s: %w", a.name, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", a.name, err)
	}
	return dataset.Decode(raw)
}
