package sensor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"soilgate/internal/types"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	PathFetchMoisture    = "/fetch-soil-moisture"
	PathMotorControl     = "/motor-control"
	PathToggleMonitoring = "/toggle-monitoring"
)

type NewClientOpts struct {
	SensorUrl string
	Timeout   time.Duration
	Id        string
}

func NewClient(opts NewClientOpts) (*Client, error) {
	sensorUrl, err := url.Parse(opts.SensorUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provided SensorUrl[%s]: %w", opts.SensorUrl, err)
	}
	if sensorUrl.Scheme == "" || sensorUrl.Host == "" {
		return nil, fmt.Errorf("failed to determine url scheme and host of SensorUrl[%s]", opts.SensorUrl)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HttpClient: &http.Client{Timeout: timeout},
		Id:         opts.Id,
		SensorUrl:  sensorUrl,
	}, nil
}

// Client talks to the sensor/actuator service that sits next to the
// rig's microcontroller
type Client struct {
	HttpClient *http.Client

	// Id will be included in the user-agent for identification
	Id string

	// SensorUrl is the base URL of the sensor service
	SensorUrl *url.URL
}

// FetchMoisture asks the rig for a fresh moisture reading
func (c *Client) FetchMoisture(ctx context.Context) (*Moisture, error) {
	var output Moisture
	if err := c.post(ctx, PathFetchMoisture, struct{}{}, &output); err != nil {
		return nil, err
	}
	return &output, nil
}

// SetMotor switches the irrigation pump and returns the state the
// service confirmed
func (c *Client) SetMotor(ctx context.Context, on bool) (bool, error) {
	var response motorResponse
	if err := c.post(ctx, PathMotorControl, actionRequest{Action: encodeBool(on)}, &response); err != nil {
		return false, err
	}
	if response.MotorStatus != nil {
		return *response.MotorStatus, nil
	}
	if response.MotorAction != nil {
		confirmed, err := decodeBool(*response.MotorAction)
		if err != nil {
			return false, fmt.Errorf("failed to decode Motor_action: %w: %w", types.ErrorUpstreamError, err)
		}
		return confirmed, nil
	}
	return false, fmt.Errorf("failed to receive a motor status: %w", types.ErrorUpstreamError)
}

// SetMonitoring toggles the rig's own moisture-driven pump control and
// returns the service's message as-is
func (c *Client) SetMonitoring(ctx context.Context, enabled bool) (string, error) {
	var response monitoringResponse
	if err := c.post(ctx, PathToggleMonitoring, actionRequest{Action: encodeBool(enabled)}, &response); err != nil {
		return "", err
	}
	return response.Message, nil
}

func (c *Client) post(ctx context.Context, path string, input any, output any) error {
	requestData, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrorClientMarshalInput, err)
	}
	targetUrl := c.SensorUrl.JoinPath(path)
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, targetUrl.String(), bytes.NewBuffer(requestData))
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrorClientRequestCreation, err)
	}
	httpRequest.Header.Add("Content-Type", "application/json")
	httpRequest.Header.Add("User-Agent", fmt.Sprintf("soilgate/sensor-client-%s", c.Id))

	httpResponse, err := c.HttpClient.Do(httpRequest)
	if err != nil {
		return fmt.Errorf("failed to reach sensor service at %s: %w: %w", path, types.ErrorUpstreamUnavailable, err)
	}
	defer httpResponse.Body.Close()
	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w: %w", path, types.ErrorUpstreamUnavailable, err)
	}
	if httpResponse.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to receive a successful response from %s (status code: %v): %w", path, httpResponse.StatusCode, types.ErrorUpstreamError)
	}
	if err := json.Unmarshal(responseBody, output); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w: %w", path, types.ErrorUpstreamError, err)
	}
	return nil
}

// encodeBool produces the literal the sensor service compares against
func encodeBool(value bool) string {
	if value {
		return "True"
	}
	return "False"
}

func decodeBool(value string) (bool, error) {
	switch value {
	case "True":
		return true, nil
	case "False":
		return false, nil
	}
	return false, errors.New("expected True or False")
}
