package limiter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rockpoolstays/innboard/pkg/idx"
)

const redisKeyPrefix = "ratelimit:login:"

// Redis is a sliding-window limiter backed by a redis sorted set per key.
// Each attempt is a member scored by its timestamp; counting the window is
// a range count after pruning aged-out members. The whole sequence runs in
// one transactional pipeline so concurrent attempts from the same address
// never undercount.
type Redis struct {
	rdb redis.UniversalClient
	cfg Config
}

func NewRedis(rdb redis.UniversalClient, cfg Config) *Redis {
	return &Redis{rdb: rdb, cfg: cfg}
}

func (l *Redis) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	k := redisKeyPrefix + key
	cutoff := strconv.FormatInt(now.Add(-l.cfg.Window).UnixNano(), 10)

	pipe := l.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, k, "0", cutoff)
	pipe.ZAdd(ctx, k, redis.Z{
		Score: float64(now.UnixNano()),
		// ULID member keeps simultaneous attempts distinct.
		Member: idx.New().String(),
	})
	count := pipe.ZCard(ctx, k)
	pipe.Expire(ctx, k, l.cfg.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("%w: %v", ErrBackend, err)
	}

	return count.Val() <= int64(l.cfg.Attempts), nil
}

// Ping reports whether the backend is reachable, for readiness checks.
func (l *Redis) Ping(ctx context.Context) error {
	if err := l.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return nil
}
