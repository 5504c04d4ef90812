package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIntent(t *testing.T) {
	assert.Equal(t, IntentFetchMoisture, ResolveIntent("soil"))
	assert.Equal(t, IntentFetchMoisture, ResolveIntent("\tsoil moisture\n"))
	assert.Equal(t, IntentMotorOn, ResolveIntent("on motor"))
	assert.Equal(t, IntentMotorOff, ResolveIntent("motor off"))
	assert.Equal(t, IntentUnrecognised, ResolveIntent("SOIL"))
	assert.Equal(t, IntentUnrecognised, ResolveIntent("soil  moisture"))
	assert.Equal(t, IntentUnrecognised, ResolveIntent("motor"))
}
