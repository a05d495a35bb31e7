package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"villanest/internal/pkg/errs"
	"villanest/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	villaKeyPrefix        = "villa:detail:"
	villaGenerationPrefix = "villa:gen:"

	// generationTTL keeps the invalidation counter alive far longer than any
	// read that could race with it.
	generationTTL = 24 * time.Hour
)

// fillScript writes the detail entry only while the villa's generation still
// equals the one observed at the miss.
var fillScript = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[2] then
  return 0
end
if tonumber(ARGV[3]) > 0 then
  redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
  redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// RedisVillaCache stores villa detail views as JSON. Errors are logged and
// reported as misses so a Redis outage only costs a database read.
//
// Every Invalidate bumps a per-villa generation. A miss reports the
// generation it saw and Set is a no-op once it has moved, so a view loaded
// before a write commits is never cached after that write's Invalidate.
type RedisVillaCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisVillaCache(client redis.Cmdable, ttl time.Duration) *RedisVillaCache {
	return &RedisVillaCache{client: client, ttl: ttl}
}

func villaKey(id uuid.UUID) string {
	return villaKeyPrefix + id.String()
}

func generationKey(id uuid.UUID) string {
	return villaGenerationPrefix + id.String()
}

func (c *RedisVillaCache) Get(ctx context.Context, id uuid.UUID) (*queries.VillaView, queries.CacheVersion, bool) {
	vals, err := c.client.MGet(ctx, villaKey(id), generationKey(id)).Result()
	if err != nil {
		slog.Warn("villa cache get failed", "villa_id", id.String(), "error", err.Error())
		return nil, 0, false
	}

	version, err := parseGeneration(vals[1])
	if err != nil {
		slog.Warn("villa cache generation corrupt", "villa_id", id.String(), "error", err.Error())
		return nil, 0, false
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, false
	}
	var v queries.VillaView
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Warn("villa cache entry corrupt", "villa_id", id.String(), "error", err.Error())
		return nil, version, false
	}
	return &v, version, true
}

func (c *RedisVillaCache) Set(ctx context.Context, v *queries.VillaView, version queries.CacheVersion) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("villa cache encode failed", "villa_id", v.ID.String(), "error", err.Error())
		return
	}
	keys := []string{villaKey(v.ID), generationKey(v.ID)}
	err = fillScript.Run(ctx, c.client, keys, raw, strconv.FormatInt(int64(version), 10), c.ttl.Milliseconds()).Err()
	if err != nil {
		slog.Warn("villa cache set failed", "villa_id", v.ID.String(), "error", err.Error())
	}
}

func (c *RedisVillaCache) Invalidate(ctx context.Context, id uuid.UUID) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(id))
		pipe.Expire(ctx, generationKey(id), generationTTL)
		pipe.Del(ctx, villaKey(id))
		return nil
	})
	if err != nil {
		slog.Warn("villa cache invalidate failed", "villa_id", id.String(), "error", err.Error())
	}
}

func parseGeneration(val any) (queries.CacheVersion, error) {
	s, ok := val.(string)
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Wrapf(err, "generation %q", s)
	}
	return queries.CacheVersion(n), nil
}

// NoopVillaCache is used when no Redis address is configured.
type NoopVillaCache struct{}

func (NoopVillaCache) Get(context.Context, uuid.UUID) (*queries.VillaView, queries.CacheVersion, bool) {
	return nil, 0, false
}

func (NoopVillaCache) Set(context.Context, *queries.VillaView, queries.CacheVersion) {}

func (NoopVillaCache) Invalidate(context.Context, uuid.UUID) {}
