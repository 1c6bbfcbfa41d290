// Package hub is the single entry point consumers use to read the
// aggregated content list. It orchestrates the pipeline: cache check,
// concurrent feed and catalog retrieval, merge, cache write.
package hub

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/PriKalra/priyata-universe/internal/cache"
	"github.com/PriKalra/priyata-universe/internal/content"
	"github.com/PriKalra/priyata-universe/internal/merge"
)

// ErrNoContent is surfaced only when a real load attempt produced zero
// items and no cached snapshot exists to fall back on. The message is
// what consumers show users, so it stays generic.
var ErrNoContent = errors.New("unable to load latest content")

// DefaultWindow is how long a cached snapshot is served without a
// refresh attempt.
const DefaultWindow = 15 * time.Minute

// Fetcher retrieves the remote feed. Implementations absorb their own
// failures and return an empty list instead of an error.
type Fetcher interface {
	Fetch(ctx context.Context) []content.Item
}

// Catalog supplies the static curated items.
type Catalog interface {
	Items() []content.Item
}

// CatalogFunc adapts a plain function to the Catalog interface.
type CatalogFunc func() []content.Item

func (f CatalogFunc) Items() []content.Item { return f() }

// Store persists merged snapshots between loads.
type Store interface {
	Read() (cache.Record, bool)
	Write(items []content.Item) error
}

// Hub wires the pipeline components together. All dependencies are
// injected, so each can be faked in tests.
type Hub struct {
	fetcher Fetcher
	catalog Catalog
	store   Store
	window  time.Duration
}

func New(fetcher Fetcher, catalog Catalog, store Store, window time.Duration) *Hub {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Hub{fetcher: fetcher, catalog: catalog, store: store, window: window}
}

// Load returns the current content list.
//
// Policy: a fresh cached snapshot is served as-is and the pipeline stops
// there; no background refresh runs behind it. Otherwise the feed and
// catalog are read concurrently with an all-settled join, merged, cached,
// and returned. When the attempt comes back empty, a stale snapshot still
// counts as a fallback; only with nothing at all to serve does Load
// return ErrNoContent.
func (h *Hub) Load(ctx context.Context) ([]content.Item, error) {
	rec, ok := h.store.Read()
	if ok && rec.Fresh(h.window) {
		return rec.Items, nil
	}

	items := h.refresh(ctx)
	if len(items) == 0 {
		if ok && len(rec.Items) > 0 {
			logrus.Warn("refresh came back empty, serving stale snapshot")
			return rec.Items, nil
		}
		return nil, ErrNoContent
	}

	if err := h.store.Write(items); err != nil {
		// Caching is an optimization; the result still stands.
		logrus.WithError(err).Warn("caching snapshot failed")
	}
	return items, nil
}

// refresh runs the feed fetch and catalog read as independent tasks and
// waits for both to settle, so a feed outage degrades to catalog-only
// output instead of total failure. The feed list carries precedence in
// the merge: on duplicate links with equal dates the live version wins.
func (h *Hub) refresh(ctx context.Context) []content.Item {
	var (
		feedItems    []content.Item
		catalogItems []content.Item
		wg           sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		feedItems = h.fetcher.Fetch(ctx)
	}()
	go func() {
		defer wg.Done()
		catalogItems = h.catalog.Items()
	}()
	wg.Wait()

	return merge.Merge(feedItems, catalogItems)
}
