package config

import (
	"soilgate/internal/cli"
	"time"
)

const (
	SensorUrl        = "sensor-url"
	SensorTimeout    = "sensor-timeout"
	VoiceUrl         = "voice-url"
	VoiceTimeout     = "voice-timeout"
	VoiceDuration    = "voice-duration"
	VoiceInputDevice = "voice-input-device"
	DataDir          = "data-dir"
)

// GetSensorFlags configures the client of the sensor/actuator service
// that reads the soil probe and switches the pump
func GetSensorFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         SensorUrl,
			DefaultValue: "http://127.0.0.1:5000",
			Usage:        "the url of the sensor/actuator service",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         SensorTimeout,
			DefaultValue: 10 * time.Second,
			Usage:        "the maximum time to wait for the sensor/actuator service to respond",
			Type:         cli.FlagTypeDuration,
		},
	}
}

// GetVoiceFlags configures the client of the voice service that records
// and transcribes spoken commands
func GetVoiceFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         VoiceUrl,
			DefaultValue: "http://127.0.0.1:6000",
			Usage:        "the url of the voice service",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         VoiceTimeout,
			DefaultValue: 60 * time.Second,
			Usage:        "the maximum time to wait for a recording to be transcribed",
			Type:         cli.FlagTypeDuration,
		},
		{
			Name:         VoiceDuration,
			DefaultValue: 5,
			Usage:        "the number of seconds the voice service should record for",
			Type:         cli.FlagTypeInteger,
		},
		{
			Name:         VoiceInputDevice,
			DefaultValue: 0,
			Usage:        "the index of the input device the voice service should record from, negative values leave it to the voice service",
			Type:         cli.FlagTypeInteger,
		},
		{
			Name:         DataDir,
			DefaultValue: "./data",
			Usage:        "the directory the voice service saves recordings in, created if missing",
			Type:         cli.FlagTypeString,
		},
	}
}
