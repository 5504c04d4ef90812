package redis

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceRoundTrip(t *testing.T) {
	server := miniredis.RunT(t)
	instance, err := New(NewOpts{Addr: server.Addr(), CheckRwEnabled: true})
	require.NoError(t, err)

	require.NoError(t, instance.Set("session:abc", "iotlab", 0))
	value, err := instance.Get("session:abc")
	require.NoError(t, err)
	assert.Equal(t, "iotlab", value)

	require.NoError(t, instance.Del("session:abc"))
	_, err = instance.Get("session:abc")
	assert.ErrorIs(t, err, ErrorKeyNotFound)
}

func TestInstanceExpiry(t *testing.T) {
	server := miniredis.RunT(t)
	instance, err := New(NewOpts{Addr: server.Addr()})
	require.NoError(t, err)

	require.NoError(t, instance.Set("short", "lived", time.Minute))
	server.FastForward(2 * time.Minute)
	_, err = instance.Get("short")
	assert.ErrorIs(t, err, ErrorKeyNotFound)
}

func TestNewFailsWhenUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()
	_, err := New(NewOpts{Addr: addr})
	assert.Error(t, err)
}
