package persistence

import (
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusReady(t *testing.T) {
	status := newStatus()
	assert.Error(t, status.Ready())

	status.set(StatusCodeOk, nil)
	assert.NoError(t, status.Ready())

	pingErr := errors.New("i/o timeout")
	status.set(StatusCodePingError, pingErr)
	assert.ErrorIs(t, status.Ready(), pingErr)
	assert.Equal(t, StatusCodePingError, status.GetCode())
}

func TestStatusTracksChanges(t *testing.T) {
	status := newStatus()
	status.set(StatusCodeOk, nil)
	changedAt := status.GetLastChangedAt()
	time.Sleep(5 * time.Millisecond)
	status.set(StatusCodeOk, nil)
	assert.Equal(t, changedAt, status.GetLastChangedAt())
	assert.True(t, status.GetLastUpdatedAt().After(changedAt))
}

func TestRedisSupervisor(t *testing.T) {
	server := miniredis.RunT(t)
	connection := NewRedis(
		RedisConnectionOpts{
			AppName:             "test",
			Addr:                server.Addr(),
			HealthcheckInterval: 10 * time.Millisecond,
			RetryInterval:       10 * time.Millisecond,
		},
		RedisAuthOpts{},
		nil,
	)
	require.NoError(t, connection.Init())
	assert.Equal(t, "test", connection.GetId())
	assert.NoError(t, connection.GetStatus().Ready())
	require.NotNil(t, connection.GetInstance())

	server.SetError("LOADING")
	assert.Eventually(t, func() bool {
		return connection.GetStatus().Ready() != nil
	}, time.Second, 10*time.Millisecond)

	server.SetError("")
	assert.Eventually(t, func() bool {
		return connection.GetStatus().Ready() == nil
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, connection.Shutdown())
	assert.Equal(t, StatusCodeShuttingDown, connection.GetStatus().GetCode())
}

func TestRedisSupervisorConnectError(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	connection := NewRedis(RedisConnectionOpts{Addr: addr}, RedisAuthOpts{}, nil)
	assert.Error(t, connection.Init())
	assert.Equal(t, StatusCodeConnectError, connection.GetStatus().GetCode())
	assert.NoError(t, connection.Shutdown())
}
