package redis

import (
	"errors"
	"fmt"
	"soilgate/internal/common"
	"time"

	"github.com/go-redis/redis/v7"
)

const (
	DefaultNetworkTimeout     = 5 * time.Second
	DefaultNetworkIdleTimeout = 30 * time.Second
)

// ErrorKeyNotFound is returned by Get when redis reports a nil reply
var ErrorKeyNotFound = errors.New("key_not_found")

type Instance struct {
	Client      *redis.Client
	ServiceLogs chan<- common.ServiceLog
}

func (i *Instance) Set(key string, value string, ttl time.Duration) error {
	status := i.Client.Set(key, value, ttl)
	if status.Err() != nil {
		return fmt.Errorf("failed to set key[%s]: %w", key, status.Err())
	}
	i.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "set key[%s] with ttl[%v]", key, ttl)
	return nil
}

func (i *Instance) Get(key string) (string, error) {
	value, err := i.Client.Get(key).Result()
	if errors.Is(err, redis.Nil) {
		i.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "get key[%s] found nothing", key)
		return "", ErrorKeyNotFound
	} else if err != nil {
		return "", fmt.Errorf("failed to get key[%s]: %w", key, err)
	}
	i.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "get key[%s] found a value", key)
	return value, nil
}

func (i *Instance) Del(key string) error {
	response := i.Client.Unlink(key)
	if response.Err() != nil {
		return fmt.Errorf("failed to delete key[%s]: %w", key, response.Err())
	}
	i.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "delete key[%s] removed %v key(s)", key, response.Val())
	return nil
}

func (i *Instance) Ping() error {
	if err := i.Client.Ping().Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

type NewOpts struct {
	// Client, when defined, is used as-is and the connection options
	// below are ignored
	Client *redis.Client

	Addr     string
	DB       int
	Username string
	Password string

	CheckRwEnabled bool
	ServiceLogs    *chan<- common.ServiceLog
}

func New(opts NewOpts) (*Instance, error) {
	instance := &Instance{}

	if opts.ServiceLogs == nil || *opts.ServiceLogs == nil {
		instance.ServiceLogs = common.GetNoopServiceLog()
	} else {
		instance.ServiceLogs = *opts.ServiceLogs
	}

	ownsClient := opts.Client == nil
	if !ownsClient {
		instance.Client = opts.Client
	} else {
		instance.Client = redis.NewClient(&redis.Options{
			Addr:         opts.Addr,
			Username:     opts.Username,
			Password:     opts.Password,
			DB:           opts.DB,
			DialTimeout:  DefaultNetworkTimeout,
			ReadTimeout:  DefaultNetworkTimeout,
			WriteTimeout: DefaultNetworkTimeout,
			IdleTimeout:  DefaultNetworkIdleTimeout,
		})
	}
	if err := instance.Client.Ping().Err(); err != nil {
		if ownsClient {
			instance.Client.Close()
		}
		return nil, fmt.Errorf("failed to connect to redis at addr[%s]: %w", instance.Client.Options().Addr, err)
	}
	if opts.CheckRwEnabled {
		testKey := "init-test-" + time.Now().Format("20060102150405")
		testValue := "test"
		if err := instance.Set(testKey, testValue, 5*time.Second); err != nil {
			return nil, err
		}
		if value, err := instance.Get(testKey); err != nil {
			return nil, err
		} else if value != testValue {
			return nil, fmt.Errorf("failed to receive the correct test value, received '%s'", value)
		}
		if err := instance.Del(testKey); err != nil {
			return nil, err
		}
	}

	return instance, nil
}
