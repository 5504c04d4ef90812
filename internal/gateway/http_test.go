package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"soilgate/internal/cache"
	"soilgate/internal/common"
	"soilgate/internal/dispatch"
	"soilgate/internal/readings"
	"soilgate/internal/session"
	"soilgate/internal/testutils"
	"soilgate/internal/types"
	"soilgate/internal/users"
	"soilgate/pkg/sensor"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSensor struct {
	err        error
	fetchCalls int
	motorCalls []bool
}

func (f *fakeSensor) FetchMoisture(ctx context.Context) (*sensor.Moisture, error) {
	f.fetchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &sensor.Moisture{Timestamp: int64(1700000000 + f.fetchCalls), MoistureValue: 512}, nil
}

func (f *fakeSensor) SetMotor(ctx context.Context, on bool) (bool, error) {
	f.motorCalls = append(f.motorCalls, on)
	return on, f.err
}

func (f *fakeSensor) SetMonitoring(ctx context.Context, enabled bool) (string, error) {
	if enabled {
		return "Continuous monitoring started", f.err
	}
	return "Continuous monitoring stopped", f.err
}

type fakeVoice struct {
	transcript string
}

func (f *fakeVoice) RecordAndTranscribe(ctx context.Context, dataDirPath string) (string, error) {
	return f.transcript, nil
}

type testGateway struct {
	handler  http.Handler
	sensor   *fakeSensor
	voice    *fakeVoice
	readings *readings.Memory
}

func newTestGateway(t *testing.T) *testGateway {
	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>dashboard</html>"), 0644))

	store, err := session.NewStore(session.NewStoreOpts{
		Cache:        cache.NewMemory(nil),
		SigningToken: "test-signing-token",
	})
	require.NoError(t, err)
	directory, err := users.NewFixedDirectory([]string{"iotlab", "a", "project"})
	require.NoError(t, err)

	output := &testGateway{
		sensor:   &fakeSensor{},
		voice:    &fakeVoice{},
		readings: readings.NewMemory(),
	}
	dispatcher, err := dispatch.New(dispatch.NewOpts{
		Sensor:   output.sensor,
		Voice:    output.voice,
		Readings: output.readings,
		DataDir:  t.TempDir(),
	})
	require.NoError(t, err)

	handler, err := GetHttpApplication(HttpApplicationOpts{
		Dispatcher:  dispatcher,
		ServiceLogs: common.GetNoopServiceLog(),
		Sessions:    store,
		StaticDir:   staticDir,
		Users:       directory,
	})
	require.NoError(t, err)
	output.handler = handler
	return output
}

func (g *testGateway) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if cookie != nil {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	g.handler.ServeHTTP(recorder, request)
	return recorder
}

func (g *testGateway) login(t *testing.T, username string) *http.Cookie {
	response := g.do(http.MethodPost, "/login", `{"username":"`+username+`"}`, nil)
	require.Equal(t, http.StatusOK, response.Code)
	for _, cookie := range response.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatalf("failed to receive a session cookie")
	return nil
}

func decodeFailure(t *testing.T, response *httptest.ResponseRecorder) common.HttpResponse {
	var body common.HttpResponse
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	return body
}

func TestGetHttpApplicationValidatesOpts(t *testing.T) {
	_, err := GetHttpApplication(HttpApplicationOpts{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session store")
}

func TestLogin(t *testing.T) {
	gateway := newTestGateway(t)

	response := gateway.do(http.MethodPost, "/login", `{"username":"iotlab"}`, nil)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"message":"Login successful"}`, response.Body.String())
	cookies := response.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginRejectsUnknownUsers(t *testing.T) {
	gateway := newTestGateway(t)
	for _, username := range []string{"IOTLAB", "nobody", "", "<script>alert(1)</script>"} {
		response := gateway.do(http.MethodPost, "/login", `{"username":"`+username+`"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, response.Code, username)
		body := decodeFailure(t, response)
		assert.Equal(t, "Invalid username", body.Message)
		assert.Equal(t, types.ErrorInvalidCredentials.Error(), body.Data)
		assert.Empty(t, response.Result().Cookies())
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	gateway := newTestGateway(t)
	response := gateway.do(http.MethodPost, "/login", `{"username":`, nil)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	gateway := newTestGateway(t)
	for _, path := range []string{
		"/moisture-level",
		"/update-motor-status",
		"/update-continuous-monitoring",
		"/give-voice-command",
		"/get-past-moisture-details",
	} {
		response := gateway.do(http.MethodPost, path, `{}`, nil)
		assert.Equal(t, http.StatusUnauthorized, response.Code, path)
		assert.Equal(t, types.ErrorAuthRequired.Error(), decodeFailure(t, response).Data)
	}
	response := gateway.do(http.MethodPost, "/moisture-level", ``, &http.Cookie{Name: session.CookieName, Value: "forged"})
	assert.Equal(t, http.StatusUnauthorized, response.Code)
	assert.Zero(t, gateway.sensor.fetchCalls)
}

func TestRag(t *testing.T) {
	gateway := newTestGateway(t)

	response := gateway.do(http.MethodGet, "/rag", ``, nil)
	assert.Equal(t, http.StatusFound, response.Code)
	assert.Equal(t, "/", response.Header().Get("Location"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", response.Header().Get("Cache-Control"))

	response = gateway.do(http.MethodGet, "/rag", ``, gateway.login(t, "a"))
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "dashboard")
	assert.Equal(t, "0", response.Header().Get("Expires"))
}

func TestEntryPage(t *testing.T) {
	gateway := newTestGateway(t)
	response := gateway.do(http.MethodGet, "/", ``, nil)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "dashboard")
}

func TestMoistureLevelAndHistory(t *testing.T) {
	gateway := newTestGateway(t)
	iotlab := gateway.login(t, "iotlab")
	project := gateway.login(t, "project")

	response := gateway.do(http.MethodPost, "/moisture-level", ``, iotlab)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"moisture_value":512}`, response.Body.String())
	gateway.do(http.MethodPost, "/moisture-level", ``, iotlab)

	response = gateway.do(http.MethodPost, "/get-past-moisture-details", ``, iotlab)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"moistureDetailsCursor":[
		{"timestamp":1700000001,"moisture_value":512},
		{"timestamp":1700000002,"moisture_value":512}
	]}`, response.Body.String())

	response = gateway.do(http.MethodPost, "/get-past-moisture-details", ``, project)
	assert.JSONEq(t, `{"moistureDetailsCursor":[]}`, response.Body.String())
}

func TestMoistureLevelUpstreamFailure(t *testing.T) {
	gateway := newTestGateway(t)
	cookie := gateway.login(t, "iotlab")
	gateway.sensor.err = types.ErrorUpstreamUnavailable

	response := gateway.do(http.MethodPost, "/moisture-level", ``, cookie)
	assert.Equal(t, http.StatusInternalServerError, response.Code)
	assert.Equal(t, types.ErrorUpstreamUnavailable.Error(), decodeFailure(t, response).Data)

	history, err := gateway.readings.ListByUser(context.Background(), "iotlab")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUpdateMotorStatus(t *testing.T) {
	gateway := newTestGateway(t)
	cookie := gateway.login(t, "iotlab")

	response := gateway.do(http.MethodPost, "/update-motor-status", `{"motorStatus":true}`, cookie)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"newMotorStatus":true}`, response.Body.String())
	assert.Equal(t, []bool{true}, gateway.sensor.motorCalls)

	response = gateway.do(http.MethodGet, "/rig-status", ``, cookie)
	assert.Equal(t, http.StatusOK, response.Code)
	var rig dispatch.RigStatus
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &rig))
	assert.True(t, rig.MotorStatus)
	assert.False(t, rig.ContinuousMonitoring)

	response = gateway.do(http.MethodPost, "/update-motor-status", `{"motorStatus":"yes"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestUpdateContinuousMonitoring(t *testing.T) {
	gateway := newTestGateway(t)
	cookie := gateway.login(t, "a")

	response := gateway.do(http.MethodPost, "/update-continuous-monitoring", `{"continuousMonitoring":false}`, cookie)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"newMonitoringStatus":"Continuous monitoring stopped"}`, response.Body.String())
}

func TestGiveVoiceCommand(t *testing.T) {
	gateway := newTestGateway(t)
	cookie := gateway.login(t, "iotlab")

	gateway.voice.transcript = "motor off"
	response := gateway.do(http.MethodPost, "/give-voice-command", ``, cookie)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"mode":"3","motorStatus":false}`, response.Body.String())

	gateway.voice.transcript = "sing a song"
	response = gateway.do(http.MethodPost, "/give-voice-command", ``, cookie)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{}`, response.Body.String())
	assert.Equal(t, []bool{false}, gateway.sensor.motorCalls)
}

func TestLogout(t *testing.T) {
	gateway := newTestGateway(t)
	cookie := gateway.login(t, "iotlab")

	response := gateway.do(http.MethodPost, "/logout", ``, cookie)
	assert.Equal(t, http.StatusOK, response.Code)
	cleared := response.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)

	response = gateway.do(http.MethodPost, "/moisture-level", ``, cookie)
	assert.Equal(t, http.StatusUnauthorized, response.Code)
}

func TestProbes(t *testing.T) {
	gateway := newTestGateway(t)
	assert.Equal(t, http.StatusOK, gateway.do(http.MethodGet, "/healthz", ``, nil).Code)
	assert.Equal(t, http.StatusOK, gateway.do(http.MethodGet, "/metrics", ``, nil).Code)
}

func TestHistoryEntryMatchesSensorReading(t *testing.T) {
	testutils.ValidateModelContract(readings.HistoryEntry{}, sensor.Moisture{}, t)
}

func TestApiDocsDescribeEveryRoute(t *testing.T) {
	gateway := newTestGateway(t)
	response := gateway.do(http.MethodGet, "/docs/doc.json", ``, nil)
	require.Equal(t, http.StatusOK, response.Code)

	var apiDocs struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &apiDocs))
	for path, method := range map[string]string{
		"/login":                        "post",
		"/logout":                       "post",
		"/moisture-level":               "post",
		"/update-motor-status":          "post",
		"/update-continuous-monitoring": "post",
		"/give-voice-command":           "post",
		"/get-past-moisture-details":    "post",
		"/rig-status":                   "get",
	} {
		assert.Contains(t, apiDocs.Paths[path], method, "path[%s]", path)
	}
}

func TestApiDocsUi(t *testing.T) {
	gateway := newTestGateway(t)
	response := gateway.do(http.MethodGet, "/docs/index.html", ``, nil)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "swagger")
}
