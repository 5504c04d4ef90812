package audit

import (
	"context"
	"time"
)

type Verb string

const (
	Login  Verb = "login"
	Logout Verb = "logout"
	Get    Verb = "get"
	Update Verb = "update"
	Voice  Verb = "voice"
)

type ResourceType string

const (
	SessionResource    ResourceType = "session"
	MoistureResource   ResourceType = "moisture"
	MotorResource      ResourceType = "motor"
	MonitoringResource ResourceType = "monitoring"
	VoiceResource      ResourceType = "voice_command"
)

type Status string

const (
	Success Status = "success"
	Failed  Status = "failed"
)

type LogEntry struct {
	Username     string         `bson:"username"`
	Verb         Verb           `bson:"verb"`
	ResourceType ResourceType   `bson:"resourceType"`
	Status       Status         `bson:"status"`
	SrcIp        *string        `bson:"srcIp,omitempty"`
	Timestamp    time.Time      `bson:"timestamp"`
	Data         map[string]any `bson:"data,omitempty"`
}

// Logger records gateway actions, implementations set the timestamp
type Logger interface {
	Log(ctx context.Context, entry LogEntry) error
}
