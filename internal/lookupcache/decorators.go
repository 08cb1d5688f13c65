package lookupcache

import (
	"context"
	"encoding/json"
	"fmt"

	"marquee/internal/logging"
	"marquee/internal/textutil"
)

// TrailerSearcher matches the trailer client's search operation.
type TrailerSearcher interface {
	SearchTrailer(ctx context.Context, query string) (string, error)
}

// RelatedFinder matches the metadata client's director lookup.
type RelatedFinder interface {
	TopFilmsByDirector(ctx context.Context, name string, limit int) ([]string, error)
}

// CachedTrailerSearcher consults the store before delegating and records
// found trailers. A nil store degrades to a plain passthrough.
type CachedTrailerSearcher struct {
	store *Store
	inner TrailerSearcher
}

// WrapTrailer decorates a trailer searcher with the cache.
func WrapTrailer(store *Store, inner TrailerSearcher) *CachedTrailerSearcher {
	return &CachedTrailerSearcher{store: store, inner: inner}
}

// SearchTrailer returns the cached video identifier when available and
// otherwise delegates, caching a positive result.
func (c *CachedTrailerSearcher) SearchTrailer(ctx context.Context, query string) (string, error) {
	if c.store == nil {
		return c.inner.SearchTrailer(ctx, query)
	}
	key := textutil.Fold(query)
	if value, ok, err := c.store.Get(ctx, KindTrailer, key); err != nil {
		c.store.logger.Warn("cache read failed", logging.Error(err))
	} else if ok {
		c.store.logger.Debug("trailer cache hit", logging.String("key", key))
		return value, nil
	}

	id, err := c.inner.SearchTrailer(ctx, query)
	if err != nil {
		return "", err
	}
	if id != "" {
		if err := c.store.Put(ctx, KindTrailer, key, id); err != nil {
			c.store.logger.Warn("cache write failed", logging.Error(err))
		}
	}
	return id, nil
}

// CachedRelatedFinder consults the store before delegating and records
// non-empty film lists. A nil store degrades to a plain passthrough.
type CachedRelatedFinder struct {
	store *Store
	inner RelatedFinder
}

// WrapRelated decorates a related film finder with the cache.
func WrapRelated(store *Store, inner RelatedFinder) *CachedRelatedFinder {
	return &CachedRelatedFinder{store: store, inner: inner}
}

// TopFilmsByDirector returns the cached title list when available and
// otherwise delegates, caching a non-empty result.
func (c *CachedRelatedFinder) TopFilmsByDirector(ctx context.Context, name string, limit int) ([]string, error) {
	if c.store == nil {
		return c.inner.TopFilmsByDirector(ctx, name, limit)
	}
	key := relatedKey(name, limit)
	if value, ok, err := c.store.Get(ctx, KindRelated, key); err != nil {
		c.store.logger.Warn("cache read failed", logging.Error(err))
	} else if ok {
		var titles []string
		if err := json.Unmarshal([]byte(value), &titles); err != nil {
			c.store.logger.Warn("cache entry corrupt", logging.String("key", key), logging.Error(err))
		} else {
			c.store.logger.Debug("related cache hit", logging.String("key", key))
			return titles, nil
		}
	}

	titles, err := c.inner.TopFilmsByDirector(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	if len(titles) > 0 {
		encoded, err := json.Marshal(titles)
		if err != nil {
			return titles, nil
		}
		if err := c.store.Put(ctx, KindRelated, key, string(encoded)); err != nil {
			c.store.logger.Warn("cache write failed", logging.Error(err))
		}
	}
	return titles, nil
}

func relatedKey(name string, limit int) string {
	return fmt.Sprintf("%s|limit=%d", textutil.Fold(name), limit)
}
