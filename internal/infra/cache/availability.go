package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "availability:disabled-days:"
	versionPrefix = "availability:version:"
)

// setIfVersion writes the days only while the listing's version is still the one the
// caller read before loading them. An absent version counts as 0.
var setIfVersion = redis.NewScript(`
local current = redis.call("GET", KEYS[1]) or "0"
if current ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`)

// RedisAvailabilityCache stores a listing's disabled days as a JSON array of "2006-01-02" strings,
// next to a per-listing version counter that every invalidation bumps.
type RedisAvailabilityCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisAvailabilityCache(rdb redis.Cmdable, ttl time.Duration) *RedisAvailabilityCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisAvailabilityCache{rdb: rdb, ttl: ttl}
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, listingID uuid.UUID) ([]time.Time, bool, error) {
	raw, err := c.rdb.Get(ctx, key(listingID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "redis get")
	}
	days, err := decodeDays(raw)
	if err != nil {
		return nil, false, err
	}
	return days, true, nil
}

func (c *RedisAvailabilityCache) Version(ctx context.Context, listingID uuid.UUID) (int64, error) {
	v, err := c.rdb.Get(ctx, versionKey(listingID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "redis get version")
	}
	return v, nil
}

// Set stores the days unless an invalidation happened after version was read.
func (c *RedisAvailabilityCache) Set(ctx context.Context, listingID uuid.UUID, version int64, days []time.Time) error {
	raw, err := encodeDays(days)
	if err != nil {
		return err
	}
	keys := []string{versionKey(listingID), key(listingID)}
	args := []any{strconv.FormatInt(version, 10), raw, c.ttl.Milliseconds()}
	if err := setIfVersion.Run(ctx, c.rdb, keys, args...).Err(); err != nil {
		return errs.Wrap(err, "redis set")
	}
	return nil
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, listingID uuid.UUID) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(listingID))
		pipe.Del(ctx, key(listingID))
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "redis invalidate")
	}
	return nil
}

func key(listingID uuid.UUID) string {
	return keyPrefix + listingID.String()
}

func versionKey(listingID uuid.UUID) string {
	return versionPrefix + listingID.String()
}

func encodeDays(days []time.Time) ([]byte, error) {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.UTC().Format(daterange.Layout)
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, errs.Wrap(err, "encode disabled days")
	}
	return raw, nil
}

func decodeDays(raw []byte) ([]time.Time, error) {
	var in []string
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, errs.Wrap(err, "decode disabled days")
	}
	days := make([]time.Time, len(in))
	for i, s := range in {
		d, err := time.Parse(daterange.Layout, s)
		if err != nil {
			return nil, errs.Wrapf(err, "decode disabled day %q", s)
		}
		days[i] = d
	}
	return days, nil
}

// Noop never stores anything; every Get is a miss.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) Get(context.Context, uuid.UUID) ([]time.Time, bool, error) { return nil, false, nil }
func (Noop) Version(context.Context, uuid.UUID) (int64, error)         { return 0, nil }
func (Noop) Set(context.Context, uuid.UUID, int64, []time.Time) error  { return nil }
func (Noop) Invalidate(context.Context, uuid.UUID) error               { return nil }
