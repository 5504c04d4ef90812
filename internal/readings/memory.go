package readings

import (
	"context"
	"sort"
	"sync"
)

func NewMemory() *Memory {
	return &Memory{readings: map[string][]Reading{}}
}

// Memory keeps readings in process memory, grouped by username
type Memory struct {
	mutex    sync.RWMutex
	readings map[string][]Reading
}

func (m *Memory) Append(ctx context.Context, reading Reading) error {
	if err := validateReading(reading); err != nil {
		return err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.readings[reading.Username] = append(m.readings[reading.Username], reading)
	return nil
}

func (m *Memory) ListByUser(ctx context.Context, username string) ([]HistoryEntry, error) {
	m.mutex.RLock()
	owned := m.readings[username]
	output := make([]HistoryEntry, 0, len(owned))
	for _, reading := range owned {
		output = append(output, reading.ToHistoryEntry())
	}
	m.mutex.RUnlock()
	sort.SliceStable(output, func(i, j int) bool {
		return output[i].Timestamp < output[j].Timestamp
	})
	return output, nil
}
