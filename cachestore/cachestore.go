package cachestore

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/amirrezaask/cachetrace/errors"
	"github.com/amirrezaask/cachetrace/kv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/amirrezaask/cachetrace/cachestore")

// Transform decodes the raw bytes fetched for a key.
type Transform func(raw []byte) (any, error)

func AsString(raw []byte) (any, error) { return string(raw), nil }

func AsInt(raw []byte) (any, error) {
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "record is not an integer")
	}
	return n, nil
}

// Cache stores opaque scalar values in redis under random keys and
// instruments every operation with a redis-backed call counter; Store also
// records an input/output history. Counters and history share the store's
// lifetime and atomicity, nothing is held locally beyond the handle.
type Cache struct {
	rdb *kv.Redis
	log *slog.Logger

	storeFn  opFunc[any, string]
	getFn    opFunc[string, []byte]
	getStrFn opFunc[string, string]
	getIntFn opFunc[string, int64]
}

// New flushes the backing database synchronously. Every Cache starts from a
// clean namespace; counters and history from earlier runs are gone.
func New(ctx context.Context, rdb *kv.Redis) (*Cache, error) {
	if err := rdb.FlushDB(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "cannot reset store namespace")
	}

	c := &Cache{rdb: rdb, log: slog.Default()}
	c.storeFn = callHistory(rdb, OpStore, countCalls(rdb, OpStore, c.persist))
	c.getFn = countCalls(rdb, OpGet, c.fetch)
	c.getStrFn = countCalls(rdb, OpGetStr, func(ctx context.Context, key string) (string, error) {
		v, err := c.Get(ctx, key, AsString)
		if err != nil || v == nil {
			return "", err
		}
		return v.(string), nil
	})
	c.getIntFn = countCalls(rdb, OpGetInt, func(ctx context.Context, key string) (int64, error) {
		v, err := c.Get(ctx, key, AsInt)
		if err != nil || v == nil {
			return 0, err
		}
		return v.(int64), nil
	})
	return c, nil
}

// Store persists data under a fresh random key and returns the key. data
// must be a scalar: string, []byte, integer or float.
func (c *Cache) Store(ctx context.Context, data any) (string, error) {
	ctx, span := tracer.Start(ctx, "cachestore.Store")
	defer span.End()
	return c.storeFn(ctx, data)
}

func (c *Cache) persist(ctx context.Context, data any) (string, error) {
	if !isScalar(data) {
		return "", errors.Newf("unsupported record type %T", data)
	}
	key := uuid.NewString()
	if err := c.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return "", errors.Wrap(err, "cannot persist record")
	}
	c.log.DebugContext(ctx, "stored record", "key", key)
	return key, nil
}

// Get returns the raw bytes stored under key, or fn applied to them when fn
// is given. An unknown or expired key yields (nil, nil).
func (c *Cache) Get(ctx context.Context, key string, fn Transform) (any, error) {
	ctx, span := tracer.Start(ctx, "cachestore.Get")
	defer span.End()

	raw, err := c.getFn(ctx, key)
	if err != nil || raw == nil {
		return nil, err
	}
	if fn != nil {
		return fn(raw)
	}
	return raw, nil
}

func (c *Cache) fetch(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "cannot fetch record %q", key)
	}
	return raw, nil
}

// GetStr decodes the record as text. Absent keys yield "".
func (c *Cache) GetStr(ctx context.Context, key string) (string, error) {
	ctx, span := tracer.Start(ctx, "cachestore.GetStr")
	defer span.End()
	return c.getStrFn(ctx, key)
}

// GetInt decodes the record as an integer. Absent keys yield 0.
func (c *Cache) GetInt(ctx context.Context, key string) (int64, error) {
	ctx, span := tracer.Start(ctx, "cachestore.GetInt")
	defer span.End()
	return c.getIntFn(ctx, key)
}

func isScalar(data any) bool {
	switch data.(type) {
	case string, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
