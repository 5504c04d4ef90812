package audit

import (
	"context"
	"fmt"
	"soilgate/internal/common"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const DefaultCollection = "audit_logs"

// NewMongo returns a Logger that inserts one document per entry into
// `collection` of `db`
func NewMongo(db *mongo.Database, collection string) (*MongoLogger, error) {
	if db == nil {
		return nil, fmt.Errorf("failed to receive a mongo database")
	}
	if collection == "" {
		collection = DefaultCollection
	}
	return &MongoLogger{collection: db.Collection(collection)}, nil
}

type MongoLogger struct {
	collection *mongo.Collection
}

func (c *MongoLogger) Log(ctx context.Context, entry LogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	entry.Timestamp = time.Now()
	if _, err := c.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("audit log insert failed: %w", err)
	}
	return nil
}

// NewServiceLogger returns a Logger that writes each entry to the
// service logs, used when no audit database is configured
func NewServiceLogger(serviceLogs chan<- common.ServiceLog) *ServiceLogger {
	return &ServiceLogger{serviceLogs: serviceLogs}
}

type ServiceLogger struct {
	serviceLogs chan<- common.ServiceLog
}

func (s *ServiceLogger) Log(ctx context.Context, entry LogEntry) error {
	level := common.LogLevelInfo
	if entry.Status == Failed {
		level = common.LogLevelWarn
	}
	s.serviceLogs <- common.ServiceLogf(level, "audit: %s", Interpret(entry))
	return nil
}

// Interpret renders an entry as a sentence
func Interpret(entry LogEntry) string {
	var action string
	switch entry.Verb {
	case Login:
		action = "logged in"
	case Logout:
		action = "logged out"
	case Get:
		switch entry.ResourceType {
		case MoistureResource:
			action = "fetched the moisture level"
		default:
			action = fmt.Sprintf("retrieved %s", entry.ResourceType)
		}
	case Update:
		switch entry.ResourceType {
		case MotorResource:
			action = fmt.Sprintf("set the motor to %v", entry.Data["motorStatus"])
		case MonitoringResource:
			action = fmt.Sprintf("set continuous monitoring to %v", entry.Data["continuousMonitoring"])
		default:
			action = fmt.Sprintf("updated %s", entry.ResourceType)
		}
	case Voice:
		action = fmt.Sprintf("gave voice command %q", entry.Data["transcript"])
	default:
		action = fmt.Sprintf("performed %s on %s", entry.Verb, entry.ResourceType)
	}
	output := fmt.Sprintf("user[%s] %s", entry.Username, action)
	if entry.Status == Failed {
		output += " (failed)"
	}
	return output
}

// Record logs `entry` to `logger` when one is configured, failures
// only reach the service logs
func Record(ctx context.Context, logger Logger, entry LogEntry, serviceLogs chan<- common.ServiceLog) {
	if logger == nil {
		return
	}
	if err := logger.Log(ctx, entry); err != nil {
		serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "failed to record audit entry for user[%s]: %s", entry.Username, err)
	}
}
