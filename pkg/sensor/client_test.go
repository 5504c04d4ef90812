package sensor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"soilgate/internal/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(NewClientOpts{SensorUrl: server.URL, Id: "test"})
	require.NoError(t, err)
	return client
}

func decodeAction(t *testing.T, r *http.Request) string {
	var request actionRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
	return request.Action
}

func TestNewClientRejectsBadUrl(t *testing.T) {
	_, err := NewClient(NewClientOpts{SensorUrl: "127.0.0.1:5000"})
	assert.Error(t, err)
}

func TestFetchMoisture(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PathFetchMoisture, r.URL.Path)
		w.Write([]byte(`{"timestamp":1700000000,"moisture_value":512,"latitude":1.3,"longitude":null}`))
	})
	moisture, err := client.FetchMoisture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), moisture.Timestamp)
	assert.Equal(t, 512.0, moisture.MoistureValue)
	require.NotNil(t, moisture.Latitude)
	assert.Equal(t, 1.3, *moisture.Latitude)
	assert.Nil(t, moisture.Longitude)
}

func TestSetMotorEncodesAction(t *testing.T) {
	var actions []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathMotorControl, r.URL.Path)
		actions = append(actions, decodeAction(t, r))
		w.Write([]byte(`{"motorStatus":true}`))
	})
	confirmed, err := client.SetMotor(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, confirmed)
	_, err = client.SetMotor(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"True", "False"}, actions)
}

func TestSetMotorFallsBackToActionEcho(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Motor_action":"` + decodeAction(t, r) + `"}`))
	})
	confirmed, err := client.SetMotor(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, confirmed)
	confirmed, err = client.SetMotor(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, confirmed)
}

func TestSetMotorWithoutStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	_, err := client.SetMotor(context.Background(), true)
	assert.ErrorIs(t, err, types.ErrorUpstreamError)
}

func TestSetMonitoringPassesMessageThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathToggleMonitoring, r.URL.Path)
		assert.Equal(t, "True", decodeAction(t, r))
		w.Write([]byte(`{"message":"Continuous monitoring started"}`))
	})
	message, err := client.SetMonitoring(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "Continuous monitoring started", message)
}

func TestUpstreamErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid action parameter"}`))
	})
	_, err := client.SetMonitoring(context.Background(), true)
	assert.ErrorIs(t, err, types.ErrorUpstreamError)

	client = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	_, err = client.FetchMoisture(context.Background())
	assert.ErrorIs(t, err, types.ErrorUpstreamError)
}

func TestUpstreamUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	serverUrl := server.URL
	server.Close()
	client, err := NewClient(NewClientOpts{SensorUrl: serverUrl})
	require.NoError(t, err)
	_, err = client.FetchMoisture(context.Background())
	assert.ErrorIs(t, err, types.ErrorUpstreamUnavailable)
}

func TestUpstreamTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)
	client, err := NewClient(NewClientOpts{SensorUrl: server.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)
	_, err = client.SetMotor(context.Background(), true)
	assert.ErrorIs(t, err, types.ErrorUpstreamUnavailable)
}
