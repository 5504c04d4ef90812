package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCacheContract(t *testing.T, c Cache) {
	_, err := c.Get("missing")
	assert.ErrorIs(t, err, ErrorCacheMiss)

	require.NoError(t, c.Set("session:1", "iotlab", 0))
	value, err := c.Get("session:1")
	require.NoError(t, err)
	assert.Equal(t, "iotlab", value)

	require.NoError(t, c.Set("session:1", "project", 0))
	value, err = c.Get("session:1")
	require.NoError(t, err)
	assert.Equal(t, "project", value)

	require.NoError(t, c.Del("session:1"))
	_, err = c.Get("session:1")
	assert.ErrorIs(t, err, ErrorCacheMiss)

	require.NoError(t, c.Del("never-existed"))
	assert.NoError(t, c.Ping())
}

func TestMemoryCache(t *testing.T) {
	testCacheContract(t, NewMemory(nil))
}

func TestRedisCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	redisCache, err := NewRedis(NewRedisOpts{Client: client})
	require.NoError(t, err)
	testCacheContract(t, redisCache)
}

func TestNewRedisRequiresClient(t *testing.T) {
	_, err := NewRedis(NewRedisOpts{})
	assert.Error(t, err)
}

func TestMemoryCacheExpiry(t *testing.T) {
	memory := NewMemory(nil)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	memory.now = func() time.Time { return now }

	require.NoError(t, memory.Set("short", "lived", time.Minute))
	require.NoError(t, memory.Set("forever", "kept", 0))

	now = now.Add(2 * time.Minute)
	_, err := memory.Get("short")
	assert.ErrorIs(t, err, ErrorCacheMiss)
	value, err := memory.Get("forever")
	require.NoError(t, err)
	assert.Equal(t, "kept", value)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	memory := NewMemory(nil)
	var waiter sync.WaitGroup
	for i := 0; i < 50; i++ {
		waiter.Add(1)
		go func() {
			defer waiter.Done()
			memory.Set("shared", "value", 0)
			memory.Get("shared")
			memory.Del("shared")
		}()
	}
	waiter.Wait()
}
