package persistence

import (
	"fmt"
	"soilgate/internal/common"
	"soilgate/internal/integrations/redis"
	"sync"
	"time"
)

type RedisConnectionOpts struct {
	AppName             string
	Addr                string
	DB                  int
	RetryInterval       time.Duration
	HealthcheckInterval time.Duration
}

type RedisAuthOpts struct {
	Username string
	Password string
}

func NewRedis(
	connectionOpts RedisConnectionOpts,
	authOpts RedisAuthOpts,
	serviceLogs *chan common.ServiceLog,
) *Redis {
	logs := getServiceLogs(serviceLogs)
	output := &Redis{
		opts: redis.NewOpts{
			Addr:           connectionOpts.Addr,
			DB:             connectionOpts.DB,
			Username:       authOpts.Username,
			Password:       authOpts.Password,
			CheckRwEnabled: true,
			ServiceLogs:    &logs,
		},
		supervisor: newSupervisor(
			"redis",
			getAppName(connectionOpts.AppName),
			connectionOpts.HealthcheckInterval,
			connectionOpts.RetryInterval,
			logs,
		),
	}
	output.supervisor.connect = output.connect
	output.supervisor.ping = output.ping
	return output
}

type Redis struct {
	instance      *redis.Instance
	instanceMutex sync.RWMutex
	opts          redis.NewOpts
	supervisor    *supervisor
}

// GetInstance returns the read/write checked redis instance, it is
// only valid after Init succeeds
func (r *Redis) GetInstance() *redis.Instance {
	r.instanceMutex.RLock()
	defer r.instanceMutex.RUnlock()
	return r.instance
}

func (r *Redis) GetId() string {
	return r.supervisor.id
}

func (r *Redis) GetStatus() *Status {
	return r.supervisor.status.clone()
}

func (r *Redis) Init() error {
	return r.supervisor.init()
}

func (r *Redis) Shutdown() error {
	r.supervisor.halt()
	r.instanceMutex.Lock()
	defer r.instanceMutex.Unlock()
	if r.instance == nil {
		return nil
	}
	if err := r.instance.Client.Close(); err != nil {
		return fmt.Errorf("failed to disconnect redis[%s]: %w", r.supervisor.id, err)
	}
	r.instance = nil
	return nil
}

// connect keeps the first client for the lifetime of the process, the
// go-redis pool redials by itself so reconnects only re-verify it
func (r *Redis) connect() error {
	r.instanceMutex.Lock()
	defer r.instanceMutex.Unlock()
	opts := r.opts
	if r.instance != nil {
		opts.Client = r.instance.Client
	}
	instance, err := redis.New(opts)
	if err != nil {
		r.supervisor.status.set(StatusCodeConnectError, fmt.Errorf("redis[%s] failed to connect: %w", r.supervisor.id, err))
		return r.supervisor.status.GetError()
	}
	r.instance = instance
	r.supervisor.status.set(StatusCodeOk, nil)
	return nil
}

func (r *Redis) ping() error {
	instance := r.GetInstance()
	if instance == nil {
		return fmt.Errorf("failed to ping redis, there is no connection")
	}
	return instance.Ping()
}
