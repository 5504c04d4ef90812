package persistence

import (
	"fmt"
	"sync"
	"time"
)

type statusCode string

const (
	StatusCodeConnectError statusCode = "connect_error"
	StatusCodeInitialising statusCode = "init"
	StatusCodeShuttingDown statusCode = "shutdown"
	StatusCodeOk           statusCode = "ok"
	StatusCodePingError    statusCode = "ping_error"
)

// Connection is a supervised connection to a backing service whose
// health is tracked in the background once Init returns
type Connection interface {
	GetId() string
	GetStatus() *Status
	Init() error
	Shutdown() error
}

func newStatus() *Status {
	return &Status{
		code:          StatusCodeInitialising,
		lastChangedAt: time.Now(),
		lastUpdatedAt: time.Now(),
	}
}

type Status struct {
	code          statusCode
	lastChangedAt time.Time
	lastUpdatedAt time.Time
	err           error
	mutex         sync.Mutex
}

func (ms *Status) GetCode() statusCode {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	return ms.code
}

func (ms *Status) GetError() error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	return ms.err
}

func (ms *Status) GetLastChangedAt() time.Time {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	return ms.lastChangedAt
}

func (ms *Status) GetLastUpdatedAt() time.Time {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	return ms.lastUpdatedAt
}

// Ready returns nil only when the last check succeeded, it is used
// as a readiness probe
func (ms *Status) Ready() error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	if ms.code == StatusCodeOk {
		return nil
	}
	if ms.err != nil {
		return fmt.Errorf("status[%s]: %w", ms.code, ms.err)
	}
	return fmt.Errorf("status[%s]", ms.code)
}

func (ms *Status) clone() *Status {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	return &Status{
		code:          ms.code,
		lastChangedAt: ms.lastChangedAt,
		lastUpdatedAt: ms.lastUpdatedAt,
		err:           ms.err,
	}
}

func (ms *Status) set(code statusCode, err error) {
	ms.mutex.Lock()
	if code != ms.code {
		ms.lastChangedAt = time.Now()
	}
	ms.code = code
	ms.err = err
	ms.lastUpdatedAt = time.Now()
	ms.mutex.Unlock()
}
