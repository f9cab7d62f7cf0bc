// Package source turns an environment into an ordered list of acquisition
// attempts and runs them until one produces a payload that satisfies the
// dataset contract. Nothing is cached here.
package source

import (
	"context"

	"mockdata/internal/dataset"
)

// Kind identifies how an attempt acquires raw data.
type Kind string

const (
	KindLocal    Kind = "local"
	KindNetwork  Kind = "network"
	KindEmbedded Kind = "embedded"
	KindRedis    Kind = "redis"
)

// Attempt is one concrete try at obtaining the dataset from one candidate source.
type Attempt interface {
	// Name identifies the candidate, e.g. "local:/srv/backend/mockData/api.json".
	Name() string

	// Kind reports the acquisition path.
	Kind() Kind

	// Acquire reads the source and returns a validated payload. Data that parses
	// but does not conform must come back as a *dataset.SchemaViolation.
	Acquire(ctx context.Context) (*dataset.Payload, error)
}
