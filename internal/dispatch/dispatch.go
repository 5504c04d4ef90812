package dispatch

import (
	"context"
	"errors"
	"fmt"
	"soilgate/internal/audit"
	"soilgate/internal/common"
	"soilgate/internal/readings"
	"soilgate/pkg/sensor"
	"sync"
	"time"
)

// Sensor is the part of the sensor service client the dispatcher uses
type Sensor interface {
	FetchMoisture(ctx context.Context) (*sensor.Moisture, error)
	SetMotor(ctx context.Context, on bool) (bool, error)
	SetMonitoring(ctx context.Context, enabled bool) (string, error)
}

// Voice is the part of the voice service client the dispatcher uses
type Voice interface {
	RecordAndTranscribe(ctx context.Context, dataDirPath string) (string, error)
}

type NewOpts struct {
	Sensor   Sensor
	Voice    Voice
	Readings readings.Repository

	// DataDir is where the voice service keeps its recordings
	DataDir string

	// Audit is optional
	Audit audit.Logger

	ServiceLogs chan<- common.ServiceLog
}

func (o NewOpts) Validate() error {
	errs := []error{}
	if o.Sensor == nil {
		errs = append(errs, fmt.Errorf("failed to receive a sensor client"))
	}
	if o.Voice == nil {
		errs = append(errs, fmt.Errorf("failed to receive a voice client"))
	}
	if o.Readings == nil {
		errs = append(errs, fmt.Errorf("failed to receive a readings repository"))
	}
	if o.DataDir == "" {
		errs = append(errs, fmt.Errorf("failed to receive a data directory"))
	}
	return errors.Join(errs...)
}

func New(opts NewOpts) (*Dispatcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}
	serviceLogs := opts.ServiceLogs
	if serviceLogs == nil {
		serviceLogs = common.GetNoopServiceLog()
	}
	return &Dispatcher{
		audit:       opts.Audit,
		dataDir:     opts.DataDir,
		now:         time.Now,
		readings:    opts.Readings,
		sensor:      opts.Sensor,
		serviceLogs: serviceLogs,
		voice:       opts.Voice,
	}, nil
}

// Dispatcher turns gateway actions into calls on the rig's services,
// downstream calls made for one action are always sequential
type Dispatcher struct {
	audit       audit.Logger
	dataDir     string
	now         func() time.Time
	readings    readings.Repository
	sensor      Sensor
	serviceLogs chan<- common.ServiceLog
	voice       Voice

	rig      RigStatus
	rigMutex sync.RWMutex
}

// RigStatus holds the last states the sensor service confirmed
type RigStatus struct {
	MotorStatus          bool       `json:"motorStatus"`
	ContinuousMonitoring bool       `json:"continuousMonitoring"`
	MotorUpdatedAt       *time.Time `json:"motorUpdatedAt,omitempty"`
	MonitoringUpdatedAt  *time.Time `json:"monitoringUpdatedAt,omitempty"`
}

// VoiceResult is the outcome of a voice command, an unrecognised
// transcript leaves every field empty
type VoiceResult struct {
	Mode          Intent   `json:"mode,omitempty"`
	MoistureValue *float64 `json:"moisture_value,omitempty"`
	MotorStatus   *bool    `json:"motorStatus,omitempty"`
}

// FetchMoisture reads the sensor and stores the reading for `username`,
// nothing is stored when the sensor call fails
func (d *Dispatcher) FetchMoisture(ctx context.Context, username string) (float64, error) {
	value, err := d.fetchMoisture(ctx, username)
	d.record(ctx, username, audit.Get, audit.MoistureResource, err, nil)
	return value, err
}

func (d *Dispatcher) fetchMoisture(ctx context.Context, username string) (float64, error) {
	moisture, err := d.sensor.FetchMoisture(ctx)
	recordUpstreamCall("sensor", "fetch_moisture", err)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch moisture: %w", err)
	}
	timestamp := moisture.Timestamp
	if timestamp <= 0 {
		timestamp = d.now().Unix()
	}
	if err := d.readings.Append(ctx, readings.Reading{
		Username:      username,
		Timestamp:     timestamp,
		MoistureValue: moisture.MoistureValue,
		Latitude:      moisture.Latitude,
		Longitude:     moisture.Longitude,
	}); err != nil {
		return 0, fmt.Errorf("failed to store reading: %w", err)
	}
	readingsStoredCounter.Inc()
	d.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "stored moisture[%v] for user[%s]", moisture.MoistureValue, username)
	return moisture.MoistureValue, nil
}

// SetMotor asks for the pump to be switched to `desired` and returns
// the state the sensor service confirmed, which may differ
func (d *Dispatcher) SetMotor(ctx context.Context, username string, desired bool) (bool, error) {
	confirmed, err := d.setMotor(ctx, desired)
	d.record(ctx, username, audit.Update, audit.MotorResource, err, map[string]any{
		"motorStatus": desired,
	})
	return confirmed, err
}

func (d *Dispatcher) setMotor(ctx context.Context, desired bool) (bool, error) {
	confirmed, err := d.sensor.SetMotor(ctx, desired)
	recordUpstreamCall("sensor", "set_motor", err)
	if err != nil {
		return false, fmt.Errorf("failed to set motor: %w", err)
	}
	now := d.now()
	d.rigMutex.Lock()
	d.rig.MotorStatus = confirmed
	d.rig.MotorUpdatedAt = &now
	d.rigMutex.Unlock()
	return confirmed, nil
}

// SetMonitoring toggles continuous monitoring and returns the sensor
// service's message unchanged
func (d *Dispatcher) SetMonitoring(ctx context.Context, username string, enabled bool) (string, error) {
	message, err := d.sensor.SetMonitoring(ctx, enabled)
	recordUpstreamCall("sensor", "set_monitoring", err)
	d.record(ctx, username, audit.Update, audit.MonitoringResource, err, map[string]any{
		"continuousMonitoring": enabled,
	})
	if err != nil {
		return "", fmt.Errorf("failed to set monitoring: %w", err)
	}
	now := d.now()
	d.rigMutex.Lock()
	d.rig.ContinuousMonitoring = enabled
	d.rig.MonitoringUpdatedAt = &now
	d.rigMutex.Unlock()
	return message, nil
}

// VoiceCommand records and transcribes a command, then performs at
// most one rig action for it
func (d *Dispatcher) VoiceCommand(ctx context.Context, username string) (*VoiceResult, error) {
	transcript, err := d.voice.RecordAndTranscribe(ctx, d.dataDir)
	recordUpstreamCall("voice", "record_and_transcribe", err)
	if err != nil {
		d.record(ctx, username, audit.Voice, audit.VoiceResource, err, nil)
		return nil, fmt.Errorf("failed to transcribe voice command: %w", err)
	}
	intent := ResolveIntent(transcript)
	voiceIntentsCounter.WithLabelValues(intent.label()).Inc()
	d.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "user[%s] said %q, resolved to intent[%s]", username, transcript, intent.label())

	result := &VoiceResult{Mode: intent}
	switch intent {
	case IntentFetchMoisture:
		var value float64
		if value, err = d.fetchMoisture(ctx, username); err == nil {
			result.MoistureValue = &value
		}
	case IntentMotorOn, IntentMotorOff:
		var confirmed bool
		if confirmed, err = d.setMotor(ctx, intent == IntentMotorOn); err == nil {
			result.MotorStatus = &confirmed
		}
	}
	d.record(ctx, username, audit.Voice, audit.VoiceResource, err, map[string]any{
		"transcript": transcript,
		"intent":     intent.label(),
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// History returns every reading of `username`, oldest first
func (d *Dispatcher) History(ctx context.Context, username string) ([]readings.HistoryEntry, error) {
	history, err := d.readings.ListByUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	return history, nil
}

func (d *Dispatcher) GetRigStatus() RigStatus {
	d.rigMutex.RLock()
	defer d.rigMutex.RUnlock()
	return d.rig
}

func (d *Dispatcher) record(ctx context.Context, username string, verb audit.Verb, resource audit.ResourceType, err error, data map[string]any) {
	status := audit.Success
	if err != nil {
		status = audit.Failed
	}
	audit.Record(ctx, d.audit, audit.LogEntry{
		Username:     username,
		Verb:         verb,
		ResourceType: resource,
		Status:       status,
		Data:         data,
	}, d.serviceLogs)
}
