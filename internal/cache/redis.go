package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/models"
)

var errMiss = errors.New("cache miss")

// RedisClient is the subset of Redis the stats cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Incr(ctx context.Context, key string) error
}

type goRedis struct {
	c *redis.Client
}

// NewRedisClient connects to addr and checks the connection.
func NewRedisClient(ctx context.Context, addr string) (RedisClient, func() error, error) {
	c := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	if err := c.Ping(ctx).Err(); err != nil {
		c.Close()
		return nil, nil, err
	}

	return goRedis{c: c}, c.Close, nil
}

func (g goRedis) Get(ctx context.Context, key string) (string, error) {
	v, err := g.c.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", errMiss
	}
	return v, err
}

func (g goRedis) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return g.c.Set(ctx, key, value, ttl).Err()
}

func (g goRedis) Del(ctx context.Context, key string) error {
	return g.c.Del(ctx, key).Err()
}

func (g goRedis) Incr(ctx context.Context, key string) error {
	return g.c.Incr(ctx, key).Err()
}

// redisEntry tags cached stats with the generation they were computed at.
type redisEntry struct {
	Gen   uint64           `json:"gen"`
	Stats models.LinkStats `json:"stats"`
}

// Redis shares cached stats between replicas. Redis failures are logged and
// treated as misses.
type Redis struct {
	client    RedisClient
	ttl       time.Duration
	keyPrefix string
	logger    *zap.Logger
}

func NewRedis(client RedisClient, ttl time.Duration, logger *zap.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{
		client:    client,
		ttl:       ttl,
		keyPrefix: "shortlink:stats:",
		logger:    logger,
	}
}

func (r *Redis) Get(ctx context.Context, linkID string) (*models.LinkStats, bool) {
	data, err := r.client.Get(ctx, r.keyPrefix+linkID)
	if err != nil {
		if !errors.Is(err, errMiss) {
			r.logger.Warn("stats cache read failed", zap.String("link_id", linkID), zap.Error(err))
		}
		return nil, false
	}

	var e redisEntry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		r.logger.Warn("stats cache entry unreadable", zap.String("link_id", linkID), zap.Error(err))
		return nil, false
	}

	gen, err := r.generation(ctx, linkID)
	if err != nil || gen != e.Gen {
		return nil, false
	}
	return &e.Stats, true
}

// Generation returns the link's invalidation counter. On a read error it
// returns a value no entry carries, so the following Set is dropped.
func (r *Redis) Generation(ctx context.Context, linkID string) uint64 {
	gen, err := r.generation(ctx, linkID)
	if err != nil {
		return ^uint64(0)
	}
	return gen
}

func (r *Redis) generation(ctx context.Context, linkID string) (uint64, error) {
	v, err := r.client.Get(ctx, r.genKey(linkID))
	if errors.Is(err, errMiss) {
		return 0, nil
	}
	if err != nil {
		r.logger.Warn("stats cache generation read failed", zap.String("link_id", linkID), zap.Error(err))
		return 0, err
	}
	return strconv.ParseUint(v, 10, 64)
}

func (r *Redis) Set(ctx context.Context, linkID string, gen uint64, stats *models.LinkStats) {
	current, err := r.generation(ctx, linkID)
	if err != nil || current != gen {
		return
	}

	data, err := json.Marshal(redisEntry{Gen: gen, Stats: *stats})
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, r.keyPrefix+linkID, string(data), r.ttl); err != nil {
		r.logger.Warn("stats cache write failed", zap.String("link_id", linkID), zap.Error(err))
	}
}

// Invalidate bumps the generation before dropping the entry, so a racing
// Set either sees the new generation or writes an entry Get rejects.
func (r *Redis) Invalidate(ctx context.Context, linkID string) {
	if err := r.client.Incr(ctx, r.genKey(linkID)); err != nil {
		r.logger.Warn("stats cache generation bump failed", zap.String("link_id", linkID), zap.Error(err))
	}
	if err := r.client.Del(ctx, r.keyPrefix+linkID); err != nil {
		r.logger.Warn("stats cache invalidate failed", zap.String("link_id", linkID), zap.Error(err))
	}
}

func (r *Redis) genKey(linkID string) string {
	return r.keyPrefix + "gen:" + linkID
}
