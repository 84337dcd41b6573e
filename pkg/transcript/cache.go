package transcript

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachingFetcher layers a redis cache over another Fetcher. A cold cache or
// an unreachable redis falls through to the inner fetch; cache writes are
// best-effort.
type CachingFetcher struct {
	inner Fetcher
	rdb   *redis.Client
	ttl   time.Duration
}

var _ Fetcher = &CachingFetcher{}

func NewCachingFetcher(inner Fetcher, rdb *redis.Client, ttl time.Duration) *CachingFetcher {
	return &CachingFetcher{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func cacheKey(videoRef string) string {
	id, err := ExtractVideoID(videoRef)
	if err != nil {
		return "transcript:" + videoRef
	}
	return "transcript:" + id
}

func (c *CachingFetcher) Fetch(ctx context.Context, videoRef string) ([]Segment, error) {
	key := cacheKey(videoRef)

	if c.rdb != nil {
		if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
			var segments []Segment
			if err := json.Unmarshal(raw, &segments); err == nil && len(segments) > 0 {
				return segments, nil
			}
		}
	}

	segments, err := c.inner.Fetch(ctx, videoRef)
	if err != nil {
		return nil, err
	}

	if c.rdb != nil {
		if raw, err := json.Marshal(segments); err == nil {
			c.rdb.Set(ctx, key, raw, c.ttl)
		}
	}

	return segments, nil
}
