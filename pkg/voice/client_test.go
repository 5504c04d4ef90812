package voice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"soilgate/internal/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndTranscribe(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathStartRecording, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"text":"  motor on \n"}`))
	}))
	defer server.Close()

	inputDevice := 0
	client, err := NewClient(NewClientOpts{VoiceUrl: server.URL, Duration: 5, InputDeviceIndex: &inputDevice})
	require.NoError(t, err)
	text, err := client.RecordAndTranscribe(context.Background(), "/var/lib/soilgate/data")
	require.NoError(t, err)
	assert.Equal(t, "motor on", text)
	assert.Equal(t, map[string]any{
		"data_dir_path":      "/var/lib/soilgate/data",
		"duration":           5.0,
		"input_device_index": 0.0,
	}, received)
}

func TestRecordAndTranscribeKeepsCase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text":"Soil Moisture"}`))
	}))
	defer server.Close()

	client, err := NewClient(NewClientOpts{VoiceUrl: server.URL})
	require.NoError(t, err)
	text, err := client.RecordAndTranscribe(context.Background(), "data")
	require.NoError(t, err)
	assert.Equal(t, "Soil Moisture", text)
}

func TestRecordAndTranscribeErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"no input device"}`))
	}))
	client, err := NewClient(NewClientOpts{VoiceUrl: server.URL})
	require.NoError(t, err)
	_, err = client.RecordAndTranscribe(context.Background(), "data")
	assert.ErrorIs(t, err, types.ErrorUpstreamError)
	assert.Contains(t, err.Error(), "no input device")

	server.Close()
	_, err = client.RecordAndTranscribe(context.Background(), "data")
	assert.ErrorIs(t, err, types.ErrorUpstreamUnavailable)
}

func TestRecordAndTranscribeWithoutText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	client, err := NewClient(NewClientOpts{VoiceUrl: server.URL})
	require.NoError(t, err)
	_, err = client.RecordAndTranscribe(context.Background(), "data")
	assert.ErrorIs(t, err, types.ErrorUpstreamError)
}
