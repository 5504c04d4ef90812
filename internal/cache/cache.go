package cache

import (
	"errors"
	"time"
)

// ErrorCacheMiss is returned by Get when the key does not exist or has
// expired
var ErrorCacheMiss = errors.New("cache_miss")

// Cache is a string key/value store with optional per-key expiry; a
// ttl of 0 keeps the key until it is deleted
type Cache interface {
	Set(key string, value string, ttl time.Duration) (err error)
	Get(key string) (value string, err error)
	Del(key string) (err error)
	Ping() (err error)
}
