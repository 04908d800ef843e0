// Package prefetch reads image metadata for the cells the cursor is about
// to show, so the grid can print dimensions without blocking on disk.
package prefetch

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"gridgazer/internal/config"
	"gridgazer/internal/domain"
	"gridgazer/internal/eventbus"
	"gridgazer/internal/paginator"
)

// Cursor is the part of the paginator the prefetcher reads
type Cursor interface {
	CurrentIndexWith(delta int) (paginator.Index, bool)
}

// Upcoming lists the real indexes on the current page followed by the
// next ahead cells, skipping fly leaves and cells past the end
func Upcoming(c Cursor, sight paginator.SightSize, ahead int) []int {
	var indexes []int
	for delta := 0; delta < int(sight)+ahead; delta++ {
		if index, ok := c.CurrentIndexWith(delta); ok {
			indexes = append(indexes, int(index))
		}
	}
	return indexes
}

// Prefetcher decodes metadata with a bounded number of workers and keeps
// the results in an LRU cache
type Prefetcher struct {
	cache   *lru.Cache[string, domain.Metadata]
	workers int
	bus     eventbus.EventBus
	logger  zerolog.Logger
	decode  func(domain.Entry) domain.Metadata

	mu       sync.Mutex
	inflight map[string]struct{}
}

// New creates a prefetcher; bus may be nil
func New(cfg config.PrefetchConfig, bus eventbus.EventBus, logger zerolog.Logger) (*Prefetcher, error) {
	cache, err := lru.New[string, domain.Metadata](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata cache: %w", err)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	return &Prefetcher{
		cache:    cache,
		workers:  workers,
		bus:      bus,
		logger:   logger.With().Str("component", "prefetch").Logger(),
		decode:   Decode,
		inflight: make(map[string]struct{}),
	}, nil
}

// Lookup returns cached metadata for an entry key
func (p *Prefetcher) Lookup(key string) (domain.Metadata, bool) {
	return p.cache.Get(key)
}

// Len returns the number of cached entries
func (p *Prefetcher) Len() int {
	return p.cache.Len()
}

// Prefetch decodes every entry not yet cached or in flight. Decode
// failures are cached, not returned; only cancellation is an error.
func (p *Prefetcher) Prefetch(ctx context.Context, entries []domain.Entry) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for _, entry := range entries {
		if !p.claim(entry.Key) {
			continue
		}

		g.Go(func() error {
			defer p.release(entry.Key)

			if err := ctx.Err(); err != nil {
				return err
			}

			md := p.decode(entry)
			if md.Err != nil {
				p.logger.Debug().Err(md.Err).Str("key", entry.Key).Msg("metadata decode failed")
			}
			p.cache.Add(entry.Key, md)

			if p.bus != nil {
				p.bus.Publish(domain.MetadataLoadedEvent{Key: entry.Key, Metadata: md})
			}
			return nil
		})
	}

	return g.Wait()
}

func (p *Prefetcher) claim(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cache.Contains(key) {
		return false
	}
	if _, ok := p.inflight[key]; ok {
		return false
	}
	p.inflight[key] = struct{}{}
	return true
}

func (p *Prefetcher) release(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inflight, key)
}
