package cache

import (
	"soilgate/internal/common"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) isExpired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// NewMemory returns a process-local cache, entries are lost when the
// process exits
func NewMemory(serviceLogs chan<- common.ServiceLog) *Memory {
	if serviceLogs == nil {
		serviceLogs = common.GetNoopServiceLog()
	}
	return &Memory{
		entries:     map[string]memoryEntry{},
		now:         time.Now,
		serviceLogs: serviceLogs,
	}
}

type Memory struct {
	entries     map[string]memoryEntry
	mutex       sync.RWMutex
	now         func() time.Time
	serviceLogs chan<- common.ServiceLog
}

func (m *Memory) Set(key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.mutex.Lock()
	m.entries[key] = entry
	m.mutex.Unlock()
	m.serviceLogs <- common.ServiceLogf(common.LogLevelTrace, "memory cache set key[%s]", key)
	return nil
}

func (m *Memory) Get(key string) (string, error) {
	m.mutex.RLock()
	entry, ok := m.entries[key]
	m.mutex.RUnlock()
	if !ok {
		return "", ErrorCacheMiss
	}
	if entry.isExpired(m.now()) {
		m.mutex.Lock()
		if current, ok := m.entries[key]; ok && current.isExpired(m.now()) {
			delete(m.entries, key)
		}
		m.mutex.Unlock()
		return "", ErrorCacheMiss
	}
	return entry.value, nil
}

func (m *Memory) Del(key string) error {
	m.mutex.Lock()
	delete(m.entries, key)
	m.mutex.Unlock()
	m.serviceLogs <- common.ServiceLogf(common.LogLevelTrace, "memory cache deleted key[%s]", key)
	return nil
}

func (m *Memory) Ping() error {
	return nil
}
