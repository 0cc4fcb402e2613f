package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitsvg/pkg/bounds"
	"github.com/matzehuels/circuitsvg/pkg/cache"
	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the artifact expiry. Zero means cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute decodes input and renders it with caching.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{InputHash: cache.Hash(input)}

	decodeStart := time.Now()
	els, err := circuit.Decode(input)
	result.Stats.DecodeTime = time.Since(decodeStart)
	observability.Pipeline().OnDecodeComplete(ctx, len(els), result.Stats.DecodeTime, err)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	result.Elements = els
	result.Stats.ElementCount = len(els)
	result.Stats.SkippedCount = countSkipped(els, opts.View)

	r.Logger.Debug("decoded elements",
		"elements", len(els),
		"skipped", result.Stats.SkippedCount,
		"duration", result.Stats.DecodeTime)

	renderStart := time.Now()
	artifacts, info, err := r.RenderWithCacheInfo(ctx, els, result.InputHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo = info
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"view", opts.View,
		"formats", opts.Formats,
		"cached", info.RenderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders els, serving each format from the cache when
// possible. inputHash identifies els; Execute passes the hash of the raw
// input bytes.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, els circuit.Elements, inputHash string, opts Options) (map[string][]byte, CacheInfo, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, CacheInfo{}, err
	}

	optionsHash, err := cache.HashJSON(opts)
	if err != nil {
		return nil, CacheInfo{}, fmt.Errorf("hash options: %w", err)
	}
	keyFor := func(format string) string {
		return r.Keyer.ArtifactKey(inputHash, cache.ArtifactKeyOpts{
			View:        opts.View,
			Format:      format,
			OptionsHash: optionsHash,
		})
	}

	var info CacheInfo
	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, keyFor(format))
			if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "error", err)
			}
			if err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				info.Hits = append(info.Hits, format)
				continue
			}
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		info.RenderHit = true
		return artifacts, info, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.View, missing)
	start := time.Now()
	rendered, err := Render(ctx, els, renderOpts)
	hooks.OnRenderComplete(ctx, opts.View, missing, time.Since(start), err)
	if err != nil {
		return nil, CacheInfo{}, err
	}

	ttl := r.TTL
	if ttl <= 0 {
		ttl = cache.TTLArtifact
	}
	for format, data := range rendered {
		artifacts[format] = data
		if err := r.Cache.Set(ctx, keyFor(format), data, ttl); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return artifacts, info, nil
}

// Render is a convenience wrapper that hashes els itself and discards the
// cache info.
func (r *Runner) Render(ctx context.Context, els circuit.Elements, opts Options) (map[string][]byte, error) {
	data, err := circuit.Encode(els)
	if err != nil {
		return nil, err
	}
	artifacts, _, err := r.RenderWithCacheInfo(ctx, els, cache.Hash(data), opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// countSkipped returns how many elements contribute no geometry to view.
func countSkipped(els circuit.Elements, view string) int {
	switch view {
	case ViewPCB:
		return len(bounds.Aggregate(els).Skipped)
	case ViewSchematic:
		return len(bounds.AggregateSchematic(els).Skipped)
	}
	return 0
}
