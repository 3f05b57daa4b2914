package fetchcache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a completed fetch keeps serving callers. It only
// needs to absorb duplicate mount effects and rapid re-navigation, so it is
// deliberately short.
const DefaultTTL = 5 * time.Second

type entry struct {
	data     any
	storedAt time.Time
	gen      uint64
}

// Coordinator deduplicates fetches per logical key: at most one underlying
// call is in flight per key, concurrent callers share its result, and a
// completed result is served from cache until the TTL elapses. Failures are
// never cached. Construct one per process (or per test) with New; there is
// no package-level instance.
type Coordinator struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu    sync.Mutex
	fresh map[string]entry
	gen   uint64
}

func New(ttl time.Duration) *Coordinator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Coordinator{
		ttl:   ttl,
		now:   time.Now,
		fresh: make(map[string]entry),
	}
}

// WithClock replaces the coordinator's clock. Tests use it to step through
// TTL expiry without sleeping.
func (c *Coordinator) WithClock(now func() time.Time) *Coordinator {
	c.now = now
	return c
}

// Do returns the cached result for key when one is still fresh, otherwise
// runs fn, sharing a single invocation among all concurrent callers of the
// same key. A failed fn is not cached: the next caller retries cleanly.
func (c *Coordinator) Do(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	if data, ok := c.lookup(key); ok {
		return data, nil
	}

	gen := c.generation()

	// the in-flight call is shared, so the caller that happened to start it
	// must not be able to cancel it for everyone else
	callCtx := context.WithoutCancel(ctx)

	v, err, _ := c.group.Do(key, func() (any, error) {
		data, err := fn(callCtx)
		if err != nil {
			return nil, err
		}
		c.store(key, data, gen)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Forget drops the cached entry for key so the next Do refetches.
func (c *Coordinator) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fresh, key)
}

// Reset clears every cached entry. Results of fetches already in flight are
// discarded on arrival: a mutation that triggered the reset must not be
// shadowed by stale data.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fresh = make(map[string]entry)
	c.gen++
}

func (c *Coordinator) lookup(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.fresh[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.fresh, key)
		return nil, false
	}
	return e.data, true
}

func (c *Coordinator) store(key string, data any, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}
	c.fresh[key] = entry{data: data, storedAt: c.now(), gen: gen}
}

func (c *Coordinator) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Get is a typed wrapper over (*Coordinator).Do.
func Get[T any](ctx context.Context, c *Coordinator, key string, fn func(context.Context) (T, error)) (T, error) {
	v, err := c.Do(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
