package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rendau/apic/adapters/logger"
)

type St struct {
	lg     logger.WarnAndError
	prefix string

	r *redis.Client
}

func New(lg logger.WarnAndError, url, psw string, db int, prefix string) *St {
	return &St{
		lg:     lg,
		prefix: prefix,

		r: redis.NewClient(&redis.Options{
			Addr:     url,
			Password: psw,
			DB:       db,
		}),
	}
}

func (c *St) Ping(ctx context.Context) error {
	return c.r.Ping(ctx).Err()
}

func (c *St) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.r.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		c.lg.Errorw("Redis: fail to 'get'", err)
		return nil, false, err
	}

	return data, true, nil
}

func (c *St) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	err := c.r.Set(ctx, c.prefix+key, value, expiration).Err()
	if err != nil {
		c.lg.Errorw("Redis: fail to 'set'", err)
	}

	return err
}

func (c *St) Del(ctx context.Context, key string) error {
	err := c.r.Del(ctx, c.prefix+key).Err()
	if err != nil {
		c.lg.Errorw("Redis: fail to 'del'", err)
	}

	return err
}

// Keys returns matching keys without the prefix.
func (c *St) Keys(ctx context.Context, pattern string) []string {
	var err error
	var cursor uint64
	var keys []string

	resKeys := make([]string, 0)
	for {
		keys, cursor, err = c.r.Scan(ctx, cursor, c.prefix+pattern, 30).Result()
		if err != nil {
			c.lg.Errorw("Redis: fail to 'scan'", err)
			break
		}
		for _, k := range keys {
			resKeys = append(resKeys, k[len(c.prefix):])
		}
		if cursor == 0 {
			break
		}
	}

	return resKeys
}

func (c *St) Close() error {
	return c.r.Close()
}
