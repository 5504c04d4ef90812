package persistence

import (
	"soilgate/internal/common"
	"sync"
	"time"
)

// supervisor holds the reconnect/ping loop shared by every supervised
// connection, `connect` must leave the status set and `ping` is only
// called after a successful connect
type supervisor struct {
	id   string
	kind string

	connect func() error
	ping    func() error

	healthcheckInterval time.Duration
	retryInterval       time.Duration
	retryCount          int

	serviceLogs chan<- common.ServiceLog
	status      *Status
	stop        chan common.Done
	stopOnce    sync.Once
}

func (s *supervisor) init() error {
	s.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "%s[%s] is initialising...", s.kind, s.id)
	if err := s.connect(); err != nil {
		return err
	}
	if err := s.checkedPing(); err != nil {
		return err
	}
	go s.run()
	return nil
}

// run pings the connection every healthcheck interval and reconnects
// whenever the last check failed, it exits once stopped
func (s *supervisor) run() {
	s.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "%s[%s] supervisor starting...", s.kind, s.id)
	for {
		if s.status.GetCode() == StatusCodeShuttingDown {
			return
		}
		interval := s.healthcheckInterval
		if s.status.GetError() != nil {
			interval = s.retryInterval
			if err := s.reconnect(); err != nil {
				s.retryCount++
				s.serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "failed to reconnect to %s[%s] after %v attempts: %s", s.kind, s.id, s.retryCount, err)
			} else {
				s.serviceLogs <- common.ServiceLogf(common.LogLevelInfo, "reconnected to %s[%s] after %v attempts", s.kind, s.id, s.retryCount+1)
				s.retryCount = 0
				interval = s.healthcheckInterval
			}
		} else if err := s.checkedPing(); err != nil {
			s.serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "failed to ping %s[%s]: %s", s.kind, s.id, err)
		}
		select {
		case <-s.stop:
			return
		case <-time.After(interval):
		}
	}
}

func (s *supervisor) reconnect() error {
	if err := s.connect(); err != nil {
		return err
	}
	return s.checkedPing()
}

func (s *supervisor) checkedPing() error {
	if s.status.GetCode() == StatusCodeConnectError {
		s.serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "not pinging %s[%s] because last error was a connect error", s.kind, s.id)
		return s.status.GetError()
	}
	if err := s.ping(); err != nil {
		s.status.set(StatusCodePingError, err)
		return err
	}
	s.status.set(StatusCodeOk, nil)
	return nil
}

func (s *supervisor) halt() {
	s.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "shutting down %s[%s] connection...", s.kind, s.id)
	s.status.set(StatusCodeShuttingDown, nil)
	s.stopOnce.Do(func() { close(s.stop) })
}

func newSupervisor(kind, id string, healthcheckInterval, retryInterval time.Duration, serviceLogs chan<- common.ServiceLog) *supervisor {
	return &supervisor{
		id:                  id,
		kind:                kind,
		healthcheckInterval: getInterval(healthcheckInterval, DefaultHealthcheckInterval),
		retryInterval:       getInterval(retryInterval, DefaultRetryInterval),
		serviceLogs:         serviceLogs,
		status:              newStatus(),
		stop:                make(chan common.Done),
	}
}
