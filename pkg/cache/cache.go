// Package cache stores rendered artifacts keyed by content hash.
//
// A render is a pure function of the element JSON and the render options,
// so the SHA-256 of the input plus a hash of the options identifies its
// output exactly and entries never need invalidation, only expiry.
//
// Backends:
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for multi-instance servers
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer]. [ScopedKeyer] prefixes every key, which lets
// several tenants share one Redis without collisions.
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLFrame    = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts are the option fields that change a rendered artifact.
type ArtifactKeyOpts struct {
	View        string `json:"view"`
	Format      string `json:"format"`
	OptionsHash string `json:"options_hash"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey keys a rendered output of the input with hash inputHash.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
	// FrameKey keys the resolved bounds and viewport of an input.
	FrameKey(inputHash, optionsHash string) string
}

// DefaultKeyer is the unscoped Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the unscoped Keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}

func (DefaultKeyer) FrameKey(inputHash, optionsHash string) string {
	return hashKey("frame", inputHash, optionsHash)
}
