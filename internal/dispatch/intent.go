package dispatch

import "strings"

// Intent is what a voice transcript asks the rig to do, the value is
// the `mode` reported back to the dashboard
type Intent string

const (
	IntentUnrecognised  Intent = ""
	IntentFetchMoisture Intent = "1"
	IntentMotorOn       Intent = "2"
	IntentMotorOff      Intent = "3"
)

var intentPhrases = map[string]Intent{
	"soil":          IntentFetchMoisture,
	"moisture":      IntentFetchMoisture,
	"soil moisture": IntentFetchMoisture,
	"motor on":      IntentMotorOn,
	"on motor":      IntentMotorOn,
	"motor off":     IntentMotorOff,
	"off motor":     IntentMotorOff,
}

// ResolveIntent matches the trimmed transcript exactly, case included
func ResolveIntent(transcript string) Intent {
	if intent, ok := intentPhrases[strings.TrimSpace(transcript)]; ok {
		return intent
	}
	return IntentUnrecognised
}

func (i Intent) label() string {
	switch i {
	case IntentFetchMoisture:
		return "fetch_moisture"
	case IntentMotorOn:
		return "motor_on"
	case IntentMotorOff:
		return "motor_off"
	}
	return "unrecognised"
}
