package readings

import (
	"context"
	"fmt"
	"soilgate/internal/types"
)

// Reading is a single soil moisture measurement taken on behalf of a
// user
type Reading struct {
	Username      string   `json:"username" bson:"username"`
	Timestamp     int64    `json:"timestamp" bson:"timestamp"`
	MoistureValue float64  `json:"moisture_value" bson:"moisture_value"`
	Latitude      *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
}

// HistoryEntry is the view of a Reading returned to its owner
type HistoryEntry struct {
	Timestamp     int64   `json:"timestamp" bson:"timestamp" yaml:"timestamp"`
	MoistureValue float64 `json:"moisture_value" bson:"moisture_value" yaml:"moisture_value"`
}

func (r Reading) ToHistoryEntry() HistoryEntry {
	return HistoryEntry{
		Timestamp:     r.Timestamp,
		MoistureValue: r.MoistureValue,
	}
}

// Repository stores readings; implementations must be safe for
// concurrent use and must return ListByUser results in ascending
// timestamp order with ties kept in insertion order
type Repository interface {
	Append(ctx context.Context, reading Reading) error
	ListByUser(ctx context.Context, username string) ([]HistoryEntry, error)
}

func validateReading(reading Reading) error {
	if reading.Username == "" {
		return fmt.Errorf("failed to receive a username for the reading: %w", types.ErrorInvalidInput)
	}
	return nil
}

func storageError(operation string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", operation, types.ErrorStorageUnavailable, err)
}
