package cache

import (
	"errors"
	"fmt"
	"soilgate/internal/common"
	"soilgate/internal/integrations/redis"
	"time"

	goredis "github.com/go-redis/redis/v7"
)

// NewRedisOpts configures the NewRedis method
type NewRedisOpts struct {
	Client      *goredis.Client
	ServiceLogs chan<- common.ServiceLog
}

// NewRedis returns a Cache backed by the provided redis client
func NewRedis(opts NewRedisOpts) (*Redis, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("failed to receive a redis client")
	}
	serviceLogs := opts.ServiceLogs
	instance, err := redis.New(redis.NewOpts{
		Client:      opts.Client,
		ServiceLogs: &serviceLogs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	return &Redis{instance: instance}, nil
}

type Redis struct {
	instance *redis.Instance
}

func (r *Redis) Set(key string, value string, ttl time.Duration) error {
	return r.instance.Set(key, value, ttl)
}

func (r *Redis) Get(key string) (string, error) {
	value, err := r.instance.Get(key)
	if errors.Is(err, redis.ErrorKeyNotFound) {
		return "", ErrorCacheMiss
	}
	return value, err
}

func (r *Redis) Del(key string) error {
	return r.instance.Del(key)
}

func (r *Redis) Ping() error {
	return r.instance.Ping()
}
