package webcache

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/amirrezaask/cachetrace/env"
	"github.com/amirrezaask/cachetrace/errors"
	"github.com/amirrezaask/cachetrace/kv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
)

// DefaultTTL is how long a fetched page stays served from cache.
const DefaultTTL = 10 * time.Second

var tracer = otel.Tracer("github.com/amirrezaask/cachetrace/webcache")

var pageOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cachetrace",
	Name:      "webcache_lookups_total",
	Help:      "Page lookups by outcome",
}, []string{"outcome"})

// PageCache is a read-through cache of fetched page bodies. Cached entries
// and per-URL access counters live in redis; expiration is redis's job.
type PageCache struct {
	rdb    *kv.Redis
	client *http.Client
	ttl    time.Duration
	log    *slog.Logger
}

// New builds a PageCache. A nil client falls back to http.DefaultClient and
// a non-positive ttl falls back to DefaultTTL.
func New(rdb *kv.Redis, client *http.Client, ttl time.Duration) *PageCache {
	if client == nil {
		client = http.DefaultClient
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PageCache{rdb: rdb, client: client, ttl: ttl, log: slog.Default()}
}

// TTLFromEnv reads WEBCACHE_TTL_SECONDS, defaulting to DefaultTTL.
func TTLFromEnv() time.Duration {
	return time.Duration(env.GetEnvIntDefault("WEBCACHE_TTL_SECONDS", int(DefaultTTL/time.Second))) * time.Second
}

func countKey(url string) string { return "count:" + url }
func cacheKey(url string) string { return "cache:" + url }

// GetPage returns the body of url, served from cache while the entry lives,
// fetched and cached for the configured TTL otherwise. The access counter
// advances on every call, hits included, and is never reset by a refresh.
func (p *PageCache) GetPage(ctx context.Context, url string) (string, error) {
	ctx, span := tracer.Start(ctx, "webcache.GetPage")
	defer span.End()

	if err := p.rdb.Incr(ctx, countKey(url)).Err(); err != nil {
		return "", errors.Wrap(err, "cannot advance access counter for %q", url)
	}

	page, err := p.rdb.Get(ctx, cacheKey(url)).Result()
	if err == nil {
		pageOutcomes.WithLabelValues("hit").Inc()
		p.log.DebugContext(ctx, "page served from cache", "url", url)
		return page, nil
	}
	if !errors.Is(err, redis.Nil) {
		return "", errors.Wrap(err, "cannot read cache entry for %q", url)
	}

	pageOutcomes.WithLabelValues("miss").Inc()
	p.log.DebugContext(ctx, "page not cached, fetching", "url", url)
	page, err = p.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if err := p.rdb.Set(ctx, cacheKey(url), page, p.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "cannot cache page for %q", url)
	}
	return page, nil
}

// Count reports how many times url has been requested through GetPage.
func (p *PageCache) Count(ctx context.Context, url string) (int64, error) {
	n, err := p.rdb.Get(ctx, countKey(url)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "cannot read access counter for %q", url)
	}
	return n, nil
}

func (p *PageCache) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "cannot build request for %q", url)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "cannot fetch %q", url)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "cannot read body of %q", url)
	}
	return string(body), nil
}
