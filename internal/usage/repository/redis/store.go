package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"snowboarding-assistant/internal/usage"
	"snowboarding-assistant/internal/usage/repository"
)

const (
	keyPrefix        = "snowboarding:usage:"
	fieldCount       = "count"
	fieldWindowStart = "window_start_ms"
)

type implStore struct {
	rdb *goredis.Client
}

var _ repository.Store = (*implStore)(nil)

// New returns a counter store shared by every process pointed at rdb.
func New(rdb *goredis.Client) *implStore {
	return &implStore{rdb: rdb}
}

// NewClient parses a redis:// URL into a client.
func NewClient(url string) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	return goredis.NewClient(opt), nil
}

func key(r usage.Resource) string { return keyPrefix + string(r) }

func (s *implStore) Get(ctx context.Context, r usage.Resource) (usage.Counter, error) {
	vals, err := s.rdb.HGetAll(ctx, key(r)).Result()
	if err != nil {
		return usage.Counter{}, fmt.Errorf("get counter %s: %w", r, err)
	}
	if len(vals) == 0 {
		return usage.Counter{}, usage.ErrCounterNotFound
	}
	return parseCounter(vals)
}

func (s *implStore) Put(ctx context.Context, r usage.Resource, c usage.Counter) error {
	if c.Count < 0 {
		c.Count = 0
	}
	err := s.rdb.HSet(ctx, key(r),
		fieldCount, c.Count,
		fieldWindowStart, c.WindowStart.UnixMilli(),
	).Err()
	if err != nil {
		return fmt.Errorf("put counter %s: %w", r, err)
	}
	return nil
}

// incrScript increments only existing counters and clamps at zero.
var incrScript = goredis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return -1
end
local n = redis.call("HINCRBY", KEYS[1], "count", ARGV[1])
if n < 0 then
	redis.call("HSET", KEYS[1], "count", 0)
end
return 1
`)

func (s *implStore) Incr(ctx context.Context, r usage.Resource, delta int) (usage.Counter, error) {
	res, err := incrScript.Run(ctx, s.rdb, []string{key(r)}, delta).Int()
	if err != nil {
		return usage.Counter{}, fmt.Errorf("incr counter %s: %w", r, err)
	}
	if res < 0 {
		return usage.Counter{}, usage.ErrCounterNotFound
	}
	return s.Get(ctx, r)
}

func parseCounter(vals map[string]string) (usage.Counter, error) {
	count, err := strconv.Atoi(vals[fieldCount])
	if err != nil {
		return usage.Counter{}, errors.New("malformed counter count")
	}
	startMS, err := strconv.ParseInt(vals[fieldWindowStart], 10, 64)
	if err != nil {
		return usage.Counter{}, errors.New("malformed counter window")
	}
	if count < 0 {
		count = 0
	}
	return usage.Counter{Count: count, WindowStart: time.UnixMilli(startMS)}, nil
}
