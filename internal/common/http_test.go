package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendHttpFailResponse(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	SendHttpFailResponse(w, r, http.StatusUnauthorized, "Invalid username", errors.New("invalid_credentials"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var body HttpResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid username", body.Message)
	assert.False(t, body.Success)
	assert.Equal(t, "invalid_credentials", body.Data)
}

func TestSendHttpFailResponseWithoutErrorCode(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed")

	var body HttpResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "generic_error", body.Data)
}

func TestSendHttpJsonResponse(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	SendHttpJsonResponse(w, r, http.StatusOK, map[string]float64{"moisture_value": 42.5})
	assert.JSONEq(t, `{"moisture_value":42.5}`, w.Body.String())
}

func TestRequestLoggerMiddleware(t *testing.T) {
	serviceLogs := make(chan ServiceLog, 16)
	var seenRequestId string
	var hasLogger bool
	handler := GetRequestLoggerMiddleware(serviceLogs)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestId, _ = r.Context().Value(HttpContextRequestId).(string)
		_, hasLogger = r.Context().Value(HttpContextLogger).(HttpRequestLogger)
		GetRequestLogger(r)(LogLevelInfo, "hello")
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Trace-Id", "trace-123")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "trace-123", seenRequestId)
	assert.True(t, hasLogger)
	close(serviceLogs)
	messages := []string{}
	for serviceLog := range serviceLogs {
		messages = append(messages, serviceLog.Message)
	}
	assert.Contains(t, messages, "req[trace-123] hello")
}

func TestProbeEndpoints(t *testing.T) {
	router := mux.NewRouter()
	RegisterCommonHttpEndpoints(CommonHttpEndpointsOpts{
		Router:          router,
		ServiceLogs:     GetNoopServiceLog(),
		LivenessChecks:  []func() error{func() error { return nil }},
		ReadinessChecks: []func() error{func() error { return errors.New("mongo is down") }},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "mongo is down")
}

func TestMetricsMiddlewareRecordsStatus(t *testing.T) {
	router := mux.NewRouter()
	router.Use(GetCommonMetricsMiddleware(GetNoopServiceLog()))
	router.HandleFunc("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestNewHttpServerRejectsEmptyAllowlist(t *testing.T) {
	_, err := NewHttpServer(NewHttpServerOpts{
		Addr:        "127.0.0.1:0",
		Handler:     http.NotFoundHandler(),
		IpAllowlist: &NewHttpServerIpAllowlistOpts{AllowedIps: []string{"not-an-ip"}},
		ServiceLogs: GetNoopServiceLog(),
	})
	assert.Error(t, err)
}
