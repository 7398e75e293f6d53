package mem

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"
)

type itemSt struct {
	value     []byte
	expiresAt time.Time
}

type St struct {
	data map[string]itemSt
	mu   sync.RWMutex

	now func() time.Time
}

func New() *St {
	return &St{
		data: map[string]itemSt{},
		now:  time.Now,
	}
}

func (c *St) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.data[key]
	if !ok || c.expired(item) {
		return nil, false, nil
	}

	return append([]byte(nil), item.value...), true, nil
}

// Set stores value under key; a zero expiration means no expiry.
func (c *St) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := itemSt{value: append([]byte(nil), value...)}
	if expiration > 0 {
		item.expiresAt = c.now().Add(expiration)
	}

	c.data[key] = item

	return nil
}

func (c *St) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)

	return nil
}

// Keys returns unexpired keys matching a redis-style glob (`*` and `?`).
func (c *St) Keys(ctx context.Context, pattern string) []string {
	re := globToRegexp(pattern)

	c.mu.RLock()
	defer c.mu.RUnlock()

	resKeys := make([]string, 0, len(c.data))
	for k, item := range c.data {
		if c.expired(item) {
			continue
		}
		if re.MatchString(k) {
			resKeys = append(resKeys, k)
		}
	}

	return resKeys
}

func (c *St) expired(item itemSt) bool {
	return !item.expiresAt.IsZero() && !c.now().Before(item.expiresAt)
}

func globToRegexp(pattern string) *regexp.Regexp {
	expr := regexp.QuoteMeta(pattern)
	expr = strings.ReplaceAll(expr, `\*`, ".*")
	expr = strings.ReplaceAll(expr, `\?`, ".")
	return regexp.MustCompile("^" + expr + "$")
}
