package common

import "time"

const (
	DefaultDurationConnectionTimeout = 10 * time.Second
)

type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var LogLevels = []LogLevel{
	LogLevelTrace,
	LogLevelDebug,
	LogLevelInfo,
	LogLevelWarn,
	LogLevelError,
}

const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendMysql  = "mysql"
	BackendRedis  = "redis"
)

// SessionBackends lists the stores a session can be kept in
var SessionBackends = []string{
	BackendMemory,
	BackendRedis,
}

// ReadingsBackends lists the stores moisture readings can be kept in
var ReadingsBackends = []string{
	BackendMemory,
	BackendMongo,
	BackendMysql,
}
